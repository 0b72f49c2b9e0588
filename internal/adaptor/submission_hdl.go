package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"pricing-cms/internal/dto/request"
	"pricing-cms/internal/usecase"
	"pricing-cms/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// maxBodyBytes caps JSON request bodies
const maxBodyBytes = 16 << 10

type SubmissionHandler struct {
	service usecase.SubmissionService
	log     *zap.Logger
}

func NewSubmissionHandler(service usecase.SubmissionService, log *zap.Logger) *SubmissionHandler {
	return &SubmissionHandler{
		service: service,
		log:     log.With(zap.String("handler", "submission")),
	}
}

// RequestOTP handles POST /api/pricing-submission/request-otp
func (h *SubmissionHandler) RequestOTP(w http.ResponseWriter, r *http.Request) {
	var req request.RequestOTPRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.service.RequestOTP(r.Context(), &req); err != nil {
		h.handleServiceError(w, err, "request OTP")
		return
	}

	utils.ResponseSuccess(w, "OTP sent successfully.", nil)
}

// VerifyOTP handles POST /api/pricing-submission/verify-otp
func (h *SubmissionHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyOTPRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	data, err := h.service.VerifyOTP(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "verify OTP")
		return
	}

	utils.ResponseSuccess(w, "OTP verified successfully.", data)
}

// ListSubmissions handles GET /api/admin/pricing-submissions
func (h *SubmissionHandler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &request.SubmissionListRequest{
		PaginatedRequest: request.PaginatedRequest{
			Page:    utils.ParseInt(query.Get("page"), 1),
			PerPage: utils.ParseInt(query.Get("per_page"), 10),
		},
		Verified: utils.ParseBool(query.Get("verified")),
		Search:   query.Get("search"),
	}

	page, err := h.service.ListSubmissions(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err, "list submissions")
		return
	}

	utils.ResponseSuccess(w, "Submissions retrieved successfully", page)
}

// DeleteSubmission handles DELETE /api/admin/pricing-submissions/{id}
func (h *SubmissionHandler) DeleteSubmission(w http.ResponseWriter, r *http.Request) {
	submissionID := chi.URLParam(r, "id")

	if err := h.service.DeleteSubmission(r.Context(), submissionID); err != nil {
		h.handleServiceError(w, err, "delete submission")
		return
	}

	utils.ResponseSuccess(w, "Submission deleted successfully", nil)
}

// handleServiceError maps service errors to responses. Messages are short and
// safe to show to the visitor; causes stay in the log.
func (h *SubmissionHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	var validationErr *usecase.ValidationError

	switch {
	case errors.As(err, &validationErr):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, validationErr.Message, validationErr.Fields)

	case errors.Is(err, usecase.ErrInvalidOTP):
		h.log.Warn(operation+" failed - invalid OTP", zap.Error(err))
		utils.ResponseBadRequest(w, usecase.ErrInvalidOTP.Error(), nil)

	case errors.Is(err, usecase.ErrOTPExpired):
		h.log.Warn(operation+" failed - expired OTP", zap.Error(err))
		utils.ResponseBadRequest(w, usecase.ErrOTPExpired.Error(), nil)

	case errors.Is(err, usecase.ErrInvalidID):
		h.log.Warn(operation+" failed - bad id", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid submission ID.", nil)

	case errors.Is(err, usecase.ErrSubmissionNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, "Submission not found.")

	case errors.Is(err, usecase.ErrEmailDelivery):
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Failed to send OTP email. Please try again.")

	case errors.Is(err, usecase.ErrStorage):
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Unable to process your request. Please try again.")

	default:
		h.log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return false
	}
	return true
}
