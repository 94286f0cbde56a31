package helper

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestUniqueViolationDetection(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "idx_users_email"}

	assert.True(t, IsUniqueViolation(dup))
	assert.True(t, IsUniqueViolationOn(dup, "idx_users_email"))
	assert.False(t, IsUniqueViolationOn(dup, "idx_users_phone"))

	// wrapped errors are still recognized
	wrapped := fmt.Errorf("create user: %w", dup)
	assert.True(t, IsUniqueViolation(wrapped))
	assert.True(t, IsUniqueViolationOn(wrapped, "idx_users_email"))

	other := &pgconn.PgError{Code: "23503"}
	assert.False(t, IsUniqueViolation(other))
	assert.False(t, IsUniqueViolationOn(other, "idx_users_email"))

	assert.False(t, IsUniqueViolation(errors.New("boom")))
}
