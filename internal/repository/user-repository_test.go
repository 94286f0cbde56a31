package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/medwellsolutions/Medwell-Backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniqueConflictNamesField(t *testing.T) {
	emailDup := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "idx_users_email"})
	err := uniqueConflict(emailDup)
	require.ErrorIs(t, err, domain.ErrConflict)
	assert.Contains(t, err.Error(), "email")

	phoneDup := &pgconn.PgError{Code: "23505", ConstraintName: "idx_users_phone"}
	err = uniqueConflict(phoneDup)
	require.ErrorIs(t, err, domain.ErrConflict)
	assert.Contains(t, err.Error(), "phone")

	// other unique indexes still map to a bare conflict
	otherDup := &pgconn.PgError{Code: "23505", ConstraintName: "uidx_submission_step"}
	assert.Equal(t, domain.ErrConflict, uniqueConflict(otherDup))

	// non-constraint failures pass through untouched
	boom := errors.New("connection reset")
	assert.Equal(t, boom, uniqueConflict(boom))
}
