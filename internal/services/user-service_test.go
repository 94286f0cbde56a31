package services

import (
	"testing"

	"github.com/medwellsolutions/Medwell-Backend/internal/domain"
	"github.com/medwellsolutions/Medwell-Backend/internal/dto"
	"github.com/medwellsolutions/Medwell-Backend/internal/helper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserFixture(t *testing.T) (UserService, *stubUserRepo, *stubProducer) {
	t.Helper()
	users := newStubUserRepo()
	prod := &stubProducer{}
	auth := helper.SetupAuth("test-secret")
	return NewUserService(users, auth, prod), users, prod
}

func validSignup(role string) dto.SignupRequest {
	return dto.SignupRequest{
		FirstName: "Jordan",
		LastName:  "Reyes",
		Email:     "jordan@example.com",
		Password:  "s3cretpass",
		Phone:     "5125550142",
		Age:       29,
		Gender:    "female",
		Role:      role,
	}
}

func TestSignupParticipantAccepted(t *testing.T) {
	svc, _, prod := newUserFixture(t)

	user, err := svc.Signup(validSignup("participant"))
	require.NoError(t, err)
	assert.Equal(t, domain.UserStatusAccepted, user.Status)
	assert.NotEmpty(t, user.PasswordHash)
	assert.Contains(t, prod.keys, "user.registered")
}

func TestSignupOtherRolesHold(t *testing.T) {
	svc, _, _ := newUserFixture(t)

	for _, role := range []string{"doctor", "supplier", "sponsor", "non-profit"} {
		req := validSignup(role)
		req.Email = role + "@example.com"
		req.Phone = "52555501" + role[:2]

		user, err := svc.Signup(req)
		require.NoError(t, err, role)
		assert.Equal(t, domain.UserStatusHold, user.Status, role)
	}
}

func TestSignupValidation(t *testing.T) {
	svc, _, _ := newUserFixture(t)

	cases := []struct {
		name   string
		mutate func(*dto.SignupRequest)
	}{
		{"short first name", func(r *dto.SignupRequest) { r.FirstName = "Al" }},
		{"bad email", func(r *dto.SignupRequest) { r.Email = "not-an-email" }},
		{"short password", func(r *dto.SignupRequest) { r.Password = "short" }},
		{"short phone", func(r *dto.SignupRequest) { r.Phone = "12345" }},
		{"underage", func(r *dto.SignupRequest) { r.Age = 16 }},
		{"bad gender", func(r *dto.SignupRequest) { r.Gender = "unspecified" }},
		{"unknown role", func(r *dto.SignupRequest) { r.Role = "wizard" }},
		{"admin self-signup", func(r *dto.SignupRequest) { r.Role = "admin" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validSignup("participant")
			tc.mutate(&req)
			_, err := svc.Signup(req)
			require.Error(t, err)
			assert.True(t, domain.IsValidationError(err))
		})
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc, _, _ := newUserFixture(t)

	_, err := svc.Signup(validSignup("participant"))
	require.NoError(t, err)

	_, err = svc.Signup(validSignup("participant"))
	require.ErrorIs(t, err, domain.ErrConflict)
}

func TestLogin(t *testing.T) {
	svc, users, _ := newUserFixture(t)

	created, err := svc.Signup(validSignup("doctor"))
	require.NoError(t, err)

	// hold accounts can sign in, they still need to submit vetting
	user, token, err := svc.Login(dto.LoginRequest{Email: "jordan@example.com", Password: "s3cretpass"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, created.ID, user.ID)

	_, _, err = svc.Login(dto.LoginRequest{Email: "jordan@example.com", Password: "wrongpass"})
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	// rejected accounts are locked out
	created.Status = domain.UserStatusRejected
	require.NoError(t, users.SaveUser(created))
	_, _, err = svc.Login(dto.LoginRequest{Email: "jordan@example.com", Password: "s3cretpass"})
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestUpdateProfileRestrictedFields(t *testing.T) {
	svc, _, _ := newUserFixture(t)

	created, err := svc.Signup(validSignup("participant"))
	require.NoError(t, err)

	newName := "Morgan"
	newAge := 35
	user, err := svc.UpdateProfile(created.ID, dto.UpdateProfileRequest{FirstName: &newName, Age: &newAge})
	require.NoError(t, err)
	assert.Equal(t, "Morgan", user.FirstName)
	assert.Equal(t, 35, user.Age)
	// untouched fields survive
	assert.Equal(t, "jordan@example.com", user.Email)

	bad := "Al"
	_, err = svc.UpdateProfile(created.ID, dto.UpdateProfileRequest{FirstName: &bad})
	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))
}

func TestChangePassword(t *testing.T) {
	svc, _, _ := newUserFixture(t)

	created, err := svc.Signup(validSignup("participant"))
	require.NoError(t, err)

	err = svc.ChangePassword(created.ID, dto.ChangePasswordRequest{
		OldPassword: "wrongpass",
		NewPassword: "an0therpass",
	})
	require.Error(t, err)

	err = svc.ChangePassword(created.ID, dto.ChangePasswordRequest{
		OldPassword: "s3cretpass",
		NewPassword: "an0therpass",
	})
	require.NoError(t, err)

	_, _, err = svc.Login(dto.LoginRequest{Email: "jordan@example.com", Password: "an0therpass"})
	require.NoError(t, err)
}
