package services

import (
	"errors"
	"fmt"
	"log"
	"net/mail"
	"strings"
	"time"

	"github.com/medwellsolutions/Medwell-Backend/internal/domain"
	"github.com/medwellsolutions/Medwell-Backend/internal/dto"
	"github.com/medwellsolutions/Medwell-Backend/internal/helper"
	"github.com/medwellsolutions/Medwell-Backend/internal/interfaces"
	"github.com/medwellsolutions/Medwell-Backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	Signup(input dto.SignupRequest) (*domain.User, error)
	Login(input dto.LoginRequest) (*domain.User, string, error)
	GetProfile(userID uint) (*domain.User, error)
	UpdateProfile(userID uint, input dto.UpdateProfileRequest) (*domain.User, error)
	ChangePassword(userID uint, input dto.ChangePasswordRequest) error
}

type userService struct {
	repo     repository.UserRepository
	auth     helper.Auth
	producer interfaces.ProducerHandler
}

func NewUserService(repo repository.UserRepository, auth helper.Auth, producer interfaces.ProducerHandler) UserService {
	return &userService{
		repo:     repo,
		auth:     auth,
		producer: producer,
	}
}

func (u *userService) Signup(input dto.SignupRequest) (*domain.User, error) {
	firstName := strings.TrimSpace(input.FirstName)
	lastName := strings.TrimSpace(input.LastName)
	email := strings.TrimSpace(strings.ToLower(input.Email))
	phone := strings.TrimSpace(input.Phone)
	gender := strings.TrimSpace(strings.ToLower(input.Gender))
	role := domain.Role(strings.TrimSpace(strings.ToLower(input.Role)))

	if len(firstName) < 4 || len(firstName) > 20 {
		return nil, domain.NewValidationError("firstName", "must be 4-20 characters")
	}
	if lastName == "" || len(lastName) > 20 {
		return nil, domain.NewValidationError("lastName", "must be up to 20 characters")
	}
	if email == "" || len(email) > 30 {
		return nil, domain.NewValidationError("emailId", "is invalid or too long")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, domain.NewValidationError("emailId", "is invalid or too long")
	}
	if len(input.Password) < 8 {
		return nil, domain.NewValidationError("password", "must be at least 8 characters")
	}
	if len(phone) < 10 || len(phone) > 15 {
		return nil, domain.NewValidationError("phone", "must be 10-15 digits")
	}
	if input.Age < 18 || input.Age > 150 {
		return nil, domain.NewValidationError("age", "must be an integer between 18 and 150")
	}
	if gender != "male" && gender != "female" && gender != "others" {
		return nil, domain.NewValidationError("gender", "is invalid")
	}
	if !domain.IsValidRole(role) || role == domain.RoleAdmin {
		return nil, domain.NewValidationError("role", "is invalid")
	}

	// participants start accepted; every other role waits for vetting
	status := domain.UserStatusHold
	if role == domain.RoleParticipant {
		status = domain.UserStatusAccepted
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("failed to hash password")
	}

	newUser := &domain.User{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		Phone:        phone,
		Age:          input.Age,
		Gender:       gender,
		Role:         role,
		Status:       status,
		PasswordHash: string(hashedPassword),
	}

	// repo names the offending field on duplicate email/phone
	usr, err := u.repo.CreateUser(newUser)
	if err != nil {
		return nil, err
	}

	if u.producer != nil {
		payload := fmt.Sprintf(
			`{"user_id":%d,"email":"%s","role":"%s","status":"%s"}`,
			usr.ID, usr.Email, usr.Role, usr.Status,
		)
		if err := u.producer.PublishMessage([]byte("user.registered"), []byte(payload)); err != nil {
			log.Printf("publish user.registered failed: %v", err)
		}
	}

	return usr, nil
}

func (u *userService) Login(input dto.LoginRequest) (*domain.User, string, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))
	password := strings.TrimSpace(input.Password)

	if email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: invalid email or password", domain.ErrUnauthorized)
	}

	user, err := u.repo.FindUserByEmail(email)
	if err != nil || user == nil || user.ID == 0 {
		return nil, "", fmt.Errorf("%w: invalid email or password", domain.ErrUnauthorized)
	}

	if err := u.auth.VerifyPassword(password, user.PasswordHash); err != nil {
		return nil, "", fmt.Errorf("%w: invalid email or password", domain.ErrUnauthorized)
	}

	// hold users may still sign in to submit their vetting form
	if user.Status == domain.UserStatusRejected {
		return nil, "", fmt.Errorf("%w: account has been rejected", domain.ErrUnauthorized)
	}

	token, err := u.auth.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (u *userService) GetProfile(userID uint) (*domain.User, error) {
	if userID == 0 {
		return nil, domain.ErrUnauthorized
	}
	return u.repo.FindUserByID(userID)
}

func (u *userService) UpdateProfile(userID uint, input dto.UpdateProfileRequest) (*domain.User, error) {
	if userID == 0 {
		return nil, domain.ErrUnauthorized
	}

	user, err := u.repo.FindUserByID(userID)
	if err != nil {
		return nil, err
	}

	// restricted field set: never email, phone, password, role or status
	if input.FirstName != nil {
		fn := strings.TrimSpace(*input.FirstName)
		if len(fn) < 4 || len(fn) > 20 {
			return nil, domain.NewValidationError("firstName", "must be 4-20 characters")
		}
		user.FirstName = fn
	}
	if input.LastName != nil {
		ln := strings.TrimSpace(*input.LastName)
		if ln == "" || len(ln) > 20 {
			return nil, domain.NewValidationError("lastName", "must be up to 20 characters")
		}
		user.LastName = ln
	}
	if input.Age != nil {
		if *input.Age < 18 || *input.Age > 150 {
			return nil, domain.NewValidationError("age", "must be an integer between 18 and 150")
		}
		user.Age = *input.Age
	}

	if err := u.repo.SaveUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *userService) ChangePassword(userID uint, input dto.ChangePasswordRequest) error {
	oldPassword := strings.TrimSpace(input.OldPassword)
	newPassword := strings.TrimSpace(input.NewPassword)

	if oldPassword == "" || newPassword == "" {
		return domain.NewValidationError("password", "both current and new passwords are required")
	}
	if oldPassword == newPassword {
		return domain.NewValidationError("newPassword", "cannot be same as current password")
	}
	if len(newPassword) < 8 {
		return domain.NewValidationError("newPassword", "must be at least 8 characters")
	}

	user, err := u.repo.FindUserByID(userID)
	if err != nil {
		return err
	}

	if err := u.auth.VerifyPassword(oldPassword, user.PasswordHash); err != nil {
		return domain.NewValidationError("oldPassword", "your current password is wrong")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return errors.New("failed to hash password")
	}

	user.PasswordHash = string(hashed)
	user.UpdatedAt = time.Now()
	return u.repo.SaveUser(user)
}
