package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pricing-cms/internal/data/entity"
	"pricing-cms/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// SubmissionFilter narrows admin listings. Zero value matches everything.
type SubmissionFilter struct {
	Verified *bool
	Search   string
}

type SubmissionRepository interface {
	Upsert(ctx context.Context, submission *entity.Submission) error
	FindByEmail(ctx context.Context, email string) (*entity.Submission, error)
	MarkVerified(ctx context.Context, id uuid.UUID, otpHash string) (bool, error)
	FindAll(ctx context.Context, filter SubmissionFilter, limit, offset int) ([]*entity.Submission, error)
	CountAll(ctx context.Context, filter SubmissionFilter) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type submissionRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSubmissionRepository(db database.PgxIface, log *zap.Logger) SubmissionRepository {
	return &submissionRepository{
		db:  db,
		log: log.With(zap.String("repository", "submission")),
	}
}

const submissionColumns = `id, name, contact, email, country,
		       otp_hash, otp_expires_at, verified, created_at, updated_at`

// Upsert inserts the submission or overwrites the row holding the same email.
// Concurrent calls for one email are last-writer-wins. On return ID and
// CreatedAt reflect the stored row.
func (r *submissionRepository) Upsert(ctx context.Context, s *entity.Submission) error {
	query := `
		INSERT INTO pricing_submissions (id, name, contact, email, country,
		                                 otp_hash, otp_expires_at, verified,
		                                 created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (email) DO UPDATE
		SET name = EXCLUDED.name,
		    contact = EXCLUDED.contact,
		    country = EXCLUDED.country,
		    otp_hash = EXCLUDED.otp_hash,
		    otp_expires_at = EXCLUDED.otp_expires_at,
		    verified = EXCLUDED.verified,
		    updated_at = EXCLUDED.updated_at
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		s.ID,
		s.Name,
		s.Contact,
		s.Email,
		s.Country,
		s.OTPHash,
		s.OTPExpiresAt,
		s.Verified,
		s.CreatedAt,
		s.UpdatedAt,
	).Scan(&s.ID, &s.CreatedAt)

	if err != nil {
		r.log.Error("Failed to upsert submission",
			zap.Error(err),
			zap.String("email", s.Email),
		)
		return fmt.Errorf("upsert submission %s: %w", s.Email, err)
	}

	return nil
}

func (r *submissionRepository) FindByEmail(ctx context.Context, email string) (*entity.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM pricing_submissions WHERE email = $1`

	s, err := scanSubmission(r.db.QueryRow(ctx, query, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find submission by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find submission by email %s: %w", email, err)
	}

	return s, nil
}

// MarkVerified confirms the pending code and clears it. Returns false when
// nothing matched.
func (r *submissionRepository) MarkVerified(ctx context.Context, id uuid.UUID, otpHash string) (bool, error) {
	// otp_hash = $2 rejects a code replaced by a concurrent re-request instead of verifying over it
	query := `
		UPDATE pricing_submissions
		SET verified = true, otp_hash = NULL, otp_expires_at = NULL, updated_at = NOW()
		WHERE id = $1 AND otp_hash = $2
	`

	result, err := r.db.Exec(ctx, query, id, otpHash)
	if err != nil {
		r.log.Error("Failed to mark submission verified",
			zap.Error(err),
			zap.String("submission_id", id.String()),
		)
		return false, fmt.Errorf("mark submission %s verified: %w", id.String(), err)
	}

	return result.RowsAffected() == 1, nil
}

// FindAll lists submissions newest first
func (r *submissionRepository) FindAll(ctx context.Context, filter SubmissionFilter, limit, offset int) ([]*entity.Submission, error) {
	where, args := buildSubmissionWhere(filter)
	query := fmt.Sprintf(`SELECT %s FROM pricing_submissions%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		submissionColumns, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list submissions",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all submissions limit %d offset %d: %w", limit, offset, err)
	}
	defer rows.Close()

	var submissions []*entity.Submission
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			r.log.Error("Failed to scan submission row", zap.Error(err))
			return nil, fmt.Errorf("scan submission row: %w", err)
		}
		submissions = append(submissions, s)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate submission rows: %w", err)
	}

	return submissions, nil
}

func (r *submissionRepository) CountAll(ctx context.Context, filter SubmissionFilter) (int64, error) {
	where, args := buildSubmissionWhere(filter)

	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM pricing_submissions`+where, args...).Scan(&count); err != nil {
		r.log.Error("Database error counting submissions", zap.Error(err))
		return 0, fmt.Errorf("count submissions: %w", err)
	}

	return count, nil
}

func (r *submissionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM pricing_submissions WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete submission",
			zap.Error(err),
			zap.String("submission_id", id.String()),
		)
		return fmt.Errorf("delete submission %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("submission %s: %w", id.String(), ErrNotFound)
	}

	r.log.Info("Submission deleted", zap.String("submission_id", id.String()))
	return nil
}

func scanSubmission(row pgx.Row) (*entity.Submission, error) {
	var s entity.Submission
	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.Contact,
		&s.Email,
		&s.Country,
		&s.OTPHash,
		&s.OTPExpiresAt,
		&s.Verified,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func buildSubmissionWhere(filter SubmissionFilter) (string, []any) {
	var conds []string
	var args []any

	if filter.Verified != nil {
		args = append(args, *filter.Verified)
		conds = append(conds, fmt.Sprintf("verified = $%d", len(args)))
	}

	if search := strings.TrimSpace(filter.Search); search != "" {
		args = append(args, "%"+escapeLike(search)+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(name ILIKE $%d OR email ILIKE $%d OR country ILIKE $%d)", n, n, n))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
