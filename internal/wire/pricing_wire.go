package wire

import (
	"pricing-cms/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wirePricing(r chi.Router, pricingHandler *adaptor.PricingHandler) {
	r.Get("/api/pricing-submission/pricing-items", pricingHandler.GetPricingItems)
}
