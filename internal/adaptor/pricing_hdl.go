package adaptor

import (
	"net/http"

	"pricing-cms/internal/usecase"
	"pricing-cms/pkg/utils"

	"go.uber.org/zap"
)

type PricingHandler struct {
	service usecase.PricingService
	log     *zap.Logger
}

func NewPricingHandler(service usecase.PricingService, log *zap.Logger) *PricingHandler {
	return &PricingHandler{
		service: service,
		log:     log.With(zap.String("handler", "pricing")),
	}
}

// GetPricingItems handles GET /api/pricing-submission/pricing-items
func (h *PricingHandler) GetPricingItems(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "", h.service.GetPricingItems(r.Context()))
}
