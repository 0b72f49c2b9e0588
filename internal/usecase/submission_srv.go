package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"pricing-cms/internal/data/entity"
	"pricing-cms/internal/data/repository"
	"pricing-cms/internal/dto/request"
	"pricing-cms/internal/dto/response"
	"pricing-cms/pkg/mailer"
	"pricing-cms/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	OTPEmailSubject = "Your Cloud MLM Software pricing access code"

	// codes are always six digits and live fifteen minutes; not configurable
	otpLength = 6
	otpExpiry = 15 * time.Minute

	msgMissingContactFields = "Name, contact, email and country are required."
	msgInvalidEmail         = "Please provide a valid email address."
	msgMissingVerifyFields  = "Email and OTP are required."
)

type SubmissionService interface {
	RequestOTP(ctx context.Context, req *request.RequestOTPRequest) error
	VerifyOTP(ctx context.Context, req *request.VerifyOTPRequest) (*response.VerifiedSubmissionResponse, error)
	ListSubmissions(ctx context.Context, req *request.SubmissionListRequest) (*response.PaginatedResponse[response.SubmissionResponse], error)
	DeleteSubmission(ctx context.Context, submissionID string) error
}

type submissionService struct {
	repo *repository.Repository
	mail mailer.Mailer
	log  *zap.Logger
	now  func() time.Time
}

func NewSubmissionService(
	repo *repository.Repository,
	mail mailer.Mailer,
	log *zap.Logger,
) SubmissionService {
	return &submissionService{
		repo: repo,
		mail: mail,
		log:  log.With(zap.String("service", "submission")),
		now:  time.Now,
	}
}

// RequestOTP stores the contact details with a fresh code hash and emails the
// code. The email is sent only after the record is saved; if sending fails the
// saved record keeps a code the visitor never received.
func (s *submissionService) RequestOTP(ctx context.Context, req *request.RequestOTPRequest) error {
	// 1. Validate
	req.Trim()
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Request OTP validation failed", zap.Any("errors", errs))
		return contactValidationError(errs)
	}

	email := utils.NormalizeEmail(req.Email)

	// 2. Generate code
	code, err := utils.GenerateOTP(otpLength)
	if err != nil {
		s.log.Error("Failed to generate OTP", zap.Error(err), zap.String("email", email))
		return ErrStorage
	}

	now := s.now()
	otpHash := utils.HashOTP(code)
	expiresAt := now.Add(otpExpiry)

	// 3. Upsert by email, overwriting any pending code and the verified flag
	submission := &entity.Submission{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         req.Name,
		Contact:      req.Contact,
		Email:        email,
		Country:      req.Country,
		OTPHash:      &otpHash,
		OTPExpiresAt: &expiresAt,
		Verified:     false,
	}

	if err := s.repo.Submission.Upsert(ctx, submission); err != nil {
		s.log.Error("Failed to save submission", zap.Error(err), zap.String("email", email))
		return ErrStorage
	}

	// 4. Send email on the request path
	if err := s.mail.Send(ctx, otpEmail(email, code)); err != nil {
		s.log.Error("Failed to send OTP email",
			zap.Error(err),
			zap.String("email", email),
			zap.String("submission_id", submission.ID.String()),
		)
		return ErrEmailDelivery
	}

	s.log.Info("OTP issued",
		zap.String("email", email),
		zap.String("submission_id", submission.ID.String()),
		zap.Time("expires_at", expiresAt),
	)

	return nil
}

// VerifyOTP confirms a pending code. A repeat call after success finds no
// pending code and gets ErrInvalidOTP like any other mismatch.
func (s *submissionService) VerifyOTP(ctx context.Context, req *request.VerifyOTPRequest) (*response.VerifiedSubmissionResponse, error) {
	// 1. Validate
	req.Trim()
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Verify OTP validation failed", zap.Any("errors", errs))
		return nil, &ValidationError{Message: msgMissingVerifyFields, Fields: errs}
	}

	email := utils.NormalizeEmail(req.Email)
	otpHash := utils.HashOTP(req.OTP)

	// 2. Find submission
	submission, err := s.repo.Submission.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to find submission", zap.Error(err), zap.String("email", email))
		return nil, ErrStorage
	}

	// 3. Missing, not pending and mismatching all look the same to the caller
	if submission == nil || !submission.HasPendingOTP() ||
		subtle.ConstantTimeCompare([]byte(*submission.OTPHash), []byte(otpHash)) != 1 {
		s.log.Warn("OTP verification rejected", zap.String("email", email))
		return nil, ErrInvalidOTP
	}

	// 4. Expiry is only reported once the code itself matched
	if s.now().After(*submission.OTPExpiresAt) {
		s.log.Warn("Expired OTP presented",
			zap.String("email", email),
			zap.Time("expired_at", *submission.OTPExpiresAt),
		)
		return nil, ErrOTPExpired
	}

	// 5. Mark verified and clear the code
	ok, err := s.repo.Submission.MarkVerified(ctx, submission.ID, otpHash)
	if err != nil {
		s.log.Error("Failed to mark submission verified",
			zap.Error(err),
			zap.String("submission_id", submission.ID.String()),
		)
		return nil, ErrStorage
	}
	if !ok {
		// a concurrent re-request replaced the code between read and update; the old code loses
		s.log.Warn("OTP superseded before verification", zap.String("email", email))
		return nil, ErrInvalidOTP
	}

	submission.Verified = true
	submission.OTPHash = nil
	submission.OTPExpiresAt = nil

	s.log.Info("Submission verified",
		zap.String("email", email),
		zap.String("submission_id", submission.ID.String()),
	)

	resp := response.VerifiedSubmissionToResponse(submission)
	return &resp, nil
}

func (s *submissionService) ListSubmissions(ctx context.Context, req *request.SubmissionListRequest) (*response.PaginatedResponse[response.SubmissionResponse], error) {
	filter := repository.SubmissionFilter{
		Verified: req.Verified,
		Search:   req.Search,
	}
	limit := req.Limit()
	offset := req.Offset()

	submissions, err := s.repo.Submission.FindAll(ctx, filter, limit, offset)
	if err != nil {
		s.log.Error("Failed to list submissions",
			zap.Error(err),
			zap.Int("page", req.CurrentPage()),
			zap.Int("per_page", limit),
		)
		return nil, fmt.Errorf("list submissions: %w", err)
	}

	total, err := s.repo.Submission.CountAll(ctx, filter)
	if err != nil {
		s.log.Error("Failed to count submissions", zap.Error(err))
		return nil, fmt.Errorf("count submissions: %w", err)
	}

	items := make([]response.SubmissionResponse, len(submissions))
	for i, submission := range submissions {
		items[i] = response.SubmissionToResponse(submission)
	}

	return response.NewPaginatedResponse(items, req.CurrentPage(), limit, total), nil
}

func (s *submissionService) DeleteSubmission(ctx context.Context, submissionID string) error {
	id, err := uuid.Parse(submissionID)
	if err != nil {
		s.log.Warn("Invalid submission ID format", zap.String("submission_id", submissionID))
		return ErrInvalidID
	}

	if err := s.repo.Submission.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrSubmissionNotFound
		}
		s.log.Error("Failed to delete submission", zap.Error(err), zap.String("submission_id", submissionID))
		return fmt.Errorf("delete submission: %w", err)
	}

	s.log.Info("Submission deleted by admin", zap.String("submission_id", submissionID))
	return nil
}

// ==================== HELPER METHODS ====================

func contactValidationError(errs map[string]string) *ValidationError {
	if len(errs) == 1 && errs["email"] != "" && errs["email"] != "This field is required" {
		return &ValidationError{Message: msgInvalidEmail, Fields: errs}
	}
	return &ValidationError{Message: msgMissingContactFields, Fields: errs}
}

func otpEmail(to, code string) mailer.Message {
	body := fmt.Sprintf(
		"Your Cloud MLM Software pricing access code is: %s\n\n"+
			"This code will expire in %d minutes.\n\n"+
			"If you did not request this code, you can ignore this email.\n",
		code, int(otpExpiry.Minutes()))

	return mailer.Message{
		To:      to,
		Subject: OTPEmailSubject,
		Body:    body,
	}
}
