package usecase

import (
	"pricing-cms/internal/data/catalog"
	"pricing-cms/internal/data/repository"
	"pricing-cms/pkg/mailer"

	"go.uber.org/zap"
)

type Service struct {
	Submission SubmissionService
	Pricing    PricingService
}

func NewService(
	repo *repository.Repository,
	mail mailer.Mailer,
	pricing *catalog.Catalog,
	log *zap.Logger,
) *Service {
	return &Service{
		Submission: NewSubmissionService(repo, mail, log),
		Pricing:    NewPricingService(pricing, log),
	}
}
