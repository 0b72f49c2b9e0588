package adaptor

import (
	"pricing-cms/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Submission *SubmissionHandler
	Pricing    *PricingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Submission: NewSubmissionHandler(service.Submission, log),
		Pricing:    NewPricingHandler(service.Pricing, log),
	}
}
