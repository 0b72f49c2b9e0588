package response

import "pricing-cms/internal/data/entity"

type PricingCatalogResponse struct {
	Plans  []entity.PricingItem `json:"plans"`
	AddOns []entity.PricingItem `json:"addOns"`
}
