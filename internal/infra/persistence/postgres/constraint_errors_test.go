package postgres

import (
	"context"
	"testing"

	"tube/internal/domain/entity"
	"tube/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestUniqueViolation(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantOK     bool
		wantDetail string
	}{
		{name: "postgres unique", err: errors.Wrap(&pgconn.PgError{Code: "23505", ConstraintName: "idx_users_email"}, "insert"), wantOK: true, wantDetail: "idx_users_email"},
		{name: "postgres too long", err: &pgconn.PgError{Code: "22001"}},
		{name: "sqlite unique", err: errors.New("UNIQUE constraint failed: users.username"), wantOK: true, wantDetail: "unique constraint failed: users.username"},
		{name: "other", err: errors.New("connection reset")},
		{name: "nil"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detail, ok := uniqueViolation(tt.err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantDetail, detail)
		})
	}
}

func TestTranslateWriteError_ValueTooLong(t *testing.T) {
	repo := &userRepository{db: newTestDB(t)}
	tooLong := errors.Wrap(&pgconn.PgError{Code: "22001", Message: "value too long for type character varying(100)"}, "insert")

	err := repo.translateWriteError(context.Background(), tooLong, &entity.User{Username: "x"})

	assert.ErrorIs(t, err, repository.ErrValueTooLong)
	assert.True(t, valueTooLong(tooLong))
	assert.False(t, valueTooLong(errors.New("value too long")))
}
