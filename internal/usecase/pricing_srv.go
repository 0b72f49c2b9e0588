package usecase

import (
	"context"

	"pricing-cms/internal/data/catalog"
	"pricing-cms/internal/dto/response"

	"go.uber.org/zap"
)

type PricingService interface {
	GetPricingItems(ctx context.Context) *response.PricingCatalogResponse
}

type pricingService struct {
	catalog *catalog.Catalog
	log     *zap.Logger
}

func NewPricingService(c *catalog.Catalog, log *zap.Logger) PricingService {
	return &pricingService{
		catalog: c,
		log:     log.With(zap.String("service", "pricing")),
	}
}

// GetPricingItems returns a fresh copy of the static catalog
func (s *pricingService) GetPricingItems(ctx context.Context) *response.PricingCatalogResponse {
	snap := s.catalog.Snapshot()

	s.log.Debug("Pricing catalog served",
		zap.Int("plans", len(snap.Plans)),
		zap.Int("add_ons", len(snap.AddOns)),
	)

	return &response.PricingCatalogResponse{
		Plans:  snap.Plans,
		AddOns: snap.AddOns,
	}
}
