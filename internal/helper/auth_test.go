package helper

import (
	"testing"

	"github.com/medwellsolutions/Medwell-Backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestTokenRoundTrip(t *testing.T) {
	auth := SetupAuth("unit-test-secret")

	token, err := auth.GenerateToken(42, "dana@example.com", domain.RoleDoctor)
	require.NoError(t, err)

	claims, err := auth.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "dana@example.com", claims.Email)
	assert.Equal(t, "doctor", claims.Role)

	// Bearer prefix is accepted too
	claims, err = auth.VerifyToken("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
}

func TestVerifyTokenRejectsBadInput(t *testing.T) {
	auth := SetupAuth("unit-test-secret")

	_, err := auth.VerifyToken("")
	require.Error(t, err)

	_, err = auth.VerifyToken("not.a.jwt")
	require.Error(t, err)

	// token signed with a different secret
	other := SetupAuth("other-secret")
	token, err := other.GenerateToken(7, "x@example.com", domain.RoleAdmin)
	require.NoError(t, err)
	_, err = auth.VerifyToken(token)
	require.Error(t, err)
}

func TestGenerateTokenRequiresInputs(t *testing.T) {
	auth := SetupAuth("unit-test-secret")

	_, err := auth.GenerateToken(0, "x@example.com", domain.RoleDoctor)
	require.Error(t, err)

	_, err = auth.GenerateToken(1, "", domain.RoleDoctor)
	require.Error(t, err)
}

func TestVerifyPassword(t *testing.T) {
	auth := SetupAuth("unit-test-secret")

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cretpass"), bcrypt.DefaultCost)
	require.NoError(t, err)

	require.NoError(t, auth.VerifyPassword("s3cretpass", string(hash)))
	require.Error(t, auth.VerifyPassword("wrong", string(hash)))
}
