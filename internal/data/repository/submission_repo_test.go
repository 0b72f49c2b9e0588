package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"pricing-cms/internal/data/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBuildSubmissionWhere(t *testing.T) {
	verified := true

	cases := []struct {
		name      string
		filter    SubmissionFilter
		wantWhere string
		wantArgs  []any
	}{
		{"empty", SubmissionFilter{}, "", nil},
		{"blank search", SubmissionFilter{Search: "   "}, "", nil},
		{"verified", SubmissionFilter{Verified: &verified}, " WHERE verified = $1", []any{true}},
		{
			"search",
			SubmissionFilter{Search: "jane"},
			" WHERE (name ILIKE $1 OR email ILIKE $1 OR country ILIKE $1)",
			[]any{"%jane%"},
		},
		{
			"both with wildcard escaping",
			SubmissionFilter{Verified: &verified, Search: "50%_off"},
			" WHERE verified = $1 AND (name ILIKE $2 OR email ILIKE $2 OR country ILIKE $2)",
			[]any{true, `%50\%\_off%`},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			where, args := buildSubmissionWhere(tc.filter)
			assert.Equal(t, tc.wantWhere, where)
			assert.Equal(t, tc.wantArgs, args)
		})
	}
}

func newTestSubmissionRepo() (*fakeDB, SubmissionRepository) {
	db := &fakeDB{}
	return db, NewSubmissionRepository(db, zap.NewNop())
}

func sampleSubmission() *entity.Submission {
	hash := "5994471abb01112afcc18159f6cc74b4f511b99806da59b3caf5a9c173cacfc5"
	expires := time.Date(2026, 3, 1, 12, 15, 0, 0, time.UTC)
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	return &entity.Submission{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: created,
			UpdatedAt: created,
		},
		Name:         "Jane",
		Contact:      "+1555",
		Email:        "jane@example.com",
		Country:      "US",
		OTPHash:      &hash,
		OTPExpiresAt: &expires,
	}
}

// submissionRow lays out s in table column order
func submissionRow(s *entity.Submission) []any {
	return []any{
		s.ID, s.Name, s.Contact, s.Email, s.Country,
		s.OTPHash, s.OTPExpiresAt, s.Verified, s.CreatedAt, s.UpdatedAt,
	}
}

func TestSubmissionRepo_Upsert(t *testing.T) {
	db, repo := newTestSubmissionRepo()

	existingID := uuid.New()
	firstSeen := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	db.row = fakeRow{values: []any{existingID, firstSeen}}

	s := sampleSubmission()
	s.Verified = false
	newID := s.ID

	require.NoError(t, repo.Upsert(context.Background(), s))

	call := db.lastCall()
	assert.Contains(t, call.sql, "INSERT INTO pricing_submissions")
	assert.Contains(t, call.sql, "ON CONFLICT (email) DO UPDATE")
	for _, col := range []string{"name", "contact", "country", "otp_hash", "otp_expires_at", "verified", "updated_at"} {
		assert.Contains(t, call.sql, col+" = EXCLUDED."+col)
	}
	assert.NotContains(t, call.sql, "created_at = EXCLUDED")
	assert.Contains(t, call.sql, "RETURNING id, created_at")
	assert.Equal(t, []any{
		newID, "Jane", "+1555", "jane@example.com", "US",
		s.OTPHash, s.OTPExpiresAt, false, s.UpdatedAt, s.UpdatedAt,
	}, call.args)

	// the stored row keeps its original id and creation time
	assert.Equal(t, existingID, s.ID)
	assert.Equal(t, firstSeen, s.CreatedAt)
}

func TestSubmissionRepo_UpsertError(t *testing.T) {
	db, repo := newTestSubmissionRepo()
	cause := errors.New("connection refused")
	db.row = fakeRow{err: cause}

	err := repo.Upsert(context.Background(), sampleSubmission())

	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "upsert submission jane@example.com")
}

func TestSubmissionRepo_FindByEmail(t *testing.T) {
	db, repo := newTestSubmissionRepo()
	want := sampleSubmission()
	db.row = fakeRow{values: submissionRow(want)}

	got, err := repo.FindByEmail(context.Background(), "jane@example.com")

	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Contains(t, db.lastCall().sql, "FROM pricing_submissions WHERE email = $1")
	assert.Equal(t, []any{"jane@example.com"}, db.lastCall().args)
}

func TestSubmissionRepo_FindByEmailClearedCode(t *testing.T) {
	db, repo := newTestSubmissionRepo()
	want := sampleSubmission()
	want.OTPHash, want.OTPExpiresAt, want.Verified = nil, nil, true
	db.row = fakeRow{values: submissionRow(want)}

	got, err := repo.FindByEmail(context.Background(), "jane@example.com")

	require.NoError(t, err)
	assert.Nil(t, got.OTPHash)
	assert.Nil(t, got.OTPExpiresAt)
	assert.True(t, got.Verified)
	assert.False(t, got.HasPendingOTP())
}

func TestSubmissionRepo_FindByEmailNoRows(t *testing.T) {
	db, repo := newTestSubmissionRepo()
	db.row = fakeRow{err: pgx.ErrNoRows}

	got, err := repo.FindByEmail(context.Background(), "nobody@example.com")

	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestSubmissionRepo_FindByEmailError(t *testing.T) {
	db, repo := newTestSubmissionRepo()
	cause := errors.New("connection reset")
	db.row = fakeRow{err: cause}

	got, err := repo.FindByEmail(context.Background(), "jane@example.com")

	assert.Nil(t, got)
	assert.ErrorIs(t, err, cause)
}

func TestSubmissionRepo_MarkVerified(t *testing.T) {
	id := uuid.New()
	hash := "abc123"

	cases := []struct {
		name    string
		tag     string
		execErr error
		want    bool
		wantErr bool
	}{
		{"code still pending", "UPDATE 1", nil, true, false},
		{"code replaced or already cleared", "UPDATE 0", nil, false, false},
		{"database error", "", errors.New("deadlock detected"), false, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db, repo := newTestSubmissionRepo()
			db.tag = pgconn.NewCommandTag(tc.tag)
			db.execErr = tc.execErr

			ok, err := repo.MarkVerified(context.Background(), id, hash)

			assert.Equal(t, tc.want, ok)
			if tc.wantErr {
				assert.ErrorIs(t, err, tc.execErr)
			} else {
				assert.NoError(t, err)
			}

			call := db.lastCall()
			assert.Contains(t, call.sql, "SET verified = true, otp_hash = NULL, otp_expires_at = NULL")
			assert.Contains(t, call.sql, "WHERE id = $1 AND otp_hash = $2")
			assert.Equal(t, []any{id, hash}, call.args)
		})
	}
}

func TestSubmissionRepo_FindAll(t *testing.T) {
	db, repo := newTestSubmissionRepo()
	first := sampleSubmission()
	second := sampleSubmission()
	second.Email = "john@example.com"
	second.Verified = true
	second.OTPHash, second.OTPExpiresAt = nil, nil
	db.rows = &fakeRows{values: [][]any{submissionRow(first), submissionRow(second)}}

	verified := true
	got, err := repo.FindAll(context.Background(), SubmissionFilter{Verified: &verified}, 10, 20)

	require.NoError(t, err)
	assert.Equal(t, []*entity.Submission{first, second}, got)
	assert.True(t, db.rows.closed)

	call := db.lastCall()
	assert.Contains(t, call.sql, "WHERE verified = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3")
	assert.Equal(t, []any{true, 10, 20}, call.args)
}

func TestSubmissionRepo_FindAllErrors(t *testing.T) {
	t.Run("query", func(t *testing.T) {
		db, repo := newTestSubmissionRepo()
		cause := errors.New("relation does not exist")
		db.queryErr = cause

		got, err := repo.FindAll(context.Background(), SubmissionFilter{}, 10, 0)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("iteration", func(t *testing.T) {
		db, repo := newTestSubmissionRepo()
		cause := errors.New("conn closed")
		db.rows = &fakeRows{err: cause}

		got, err := repo.FindAll(context.Background(), SubmissionFilter{}, 10, 0)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("column type mismatch", func(t *testing.T) {
		db, repo := newTestSubmissionRepo()
		row := submissionRow(sampleSubmission())
		row[0], row[1] = row[1], row[0]
		db.rows = &fakeRows{values: [][]any{row}}

		got, err := repo.FindAll(context.Background(), SubmissionFilter{}, 10, 0)

		assert.Nil(t, got)
		assert.ErrorContains(t, err, "scan submission row")
	})
}

func TestSubmissionRepo_CountAll(t *testing.T) {
	db, repo := newTestSubmissionRepo()
	db.row = fakeRow{values: []any{int64(3)}}

	count, err := repo.CountAll(context.Background(), SubmissionFilter{Search: "jane"})

	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.Equal(t, "SELECT COUNT(*) FROM pricing_submissions WHERE (name ILIKE $1 OR email ILIKE $1 OR country ILIKE $1)", db.lastCall().sql)
	assert.Equal(t, []any{"%jane%"}, db.lastCall().args)
}

func TestSubmissionRepo_Delete(t *testing.T) {
	id := uuid.New()

	t.Run("deleted", func(t *testing.T) {
		db, repo := newTestSubmissionRepo()
		db.tag = pgconn.NewCommandTag("DELETE 1")

		require.NoError(t, repo.Delete(context.Background(), id))
		assert.Equal(t, "DELETE FROM pricing_submissions WHERE id = $1", db.lastCall().sql)
		assert.Equal(t, []any{id}, db.lastCall().args)
	})

	t.Run("missing", func(t *testing.T) {
		db, repo := newTestSubmissionRepo()
		db.tag = pgconn.NewCommandTag("DELETE 0")

		err := repo.Delete(context.Background(), id)

		assert.ErrorIs(t, err, ErrNotFound)
		assert.Contains(t, err.Error(), id.String())
	})

	t.Run("database error", func(t *testing.T) {
		db, repo := newTestSubmissionRepo()
		cause := errors.New("connection refused")
		db.execErr = cause

		err := repo.Delete(context.Background(), id)

		assert.ErrorIs(t, err, cause)
		assert.NotErrorIs(t, err, ErrNotFound)
	})
}
