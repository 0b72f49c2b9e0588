package wire

import (
	"pricing-cms/internal/adaptor"
	"pricing-cms/pkg/middleware"
	"pricing-cms/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireSubmission(
	r chi.Router,
	submissionHandler *adaptor.SubmissionHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/pricing-submission/request-otp", submissionHandler.RequestOTP)
	r.Post("/api/pricing-submission/verify-otp", submissionHandler.VerifyOTP)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/pricing-submissions", func(r chi.Router) {
		r.Use(middleware.AdminToken(config.Admin.TokenHash, log))

		r.Get("/", submissionHandler.ListSubmissions)
		r.Delete("/{id}", submissionHandler.DeleteSubmission)
	})
}
