package repository

import (
	"errors"
	"fmt"

	"github.com/medwellsolutions/Medwell-Backend/internal/domain"
	"github.com/medwellsolutions/Medwell-Backend/internal/helper"
	"gorm.io/gorm"
)

// uniqueConflict names the offending field when one of the users table's
// unique indexes rejects a write.
func uniqueConflict(err error) error {
	switch {
	case helper.IsUniqueViolationOn(err, "idx_users_email"):
		return fmt.Errorf("%w: email already registered", domain.ErrConflict)
	case helper.IsUniqueViolationOn(err, "idx_users_phone"):
		return fmt.Errorf("%w: phone already registered", domain.ErrConflict)
	case helper.IsUniqueViolation(err):
		return domain.ErrConflict
	default:
		return err
	}
}

type UserRepository interface {
	CreateUser(user *domain.User) (*domain.User, error)
	FindUserByEmail(email string) (*domain.User, error)
	FindUserByID(userID uint) (*domain.User, error)
	SaveUser(user *domain.User) error
	ListByStatus(status domain.UserStatus, role domain.Role, limit, offset int) ([]domain.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(user *domain.User) (*domain.User, error) {
	if user == nil {
		return nil, errors.New("nil user")
	}

	if err := r.db.Create(user).Error; err != nil {
		return nil, uniqueConflict(err)
	}

	return user, nil
}

func (r *userRepository) FindUserByEmail(email string) (*domain.User, error) {
	user := &domain.User{}

	if err := r.db.First(user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return user, nil
}

func (r *userRepository) FindUserByID(userID uint) (*domain.User, error) {
	user := &domain.User{}

	if err := r.db.First(user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return user, nil
}

func (r *userRepository) SaveUser(user *domain.User) error {
	if user == nil {
		return errors.New("nil user")
	}

	if err := r.db.Save(user).Error; err != nil {
		return uniqueConflict(err)
	}
	return nil
}

func (r *userRepository) ListByStatus(status domain.UserStatus, role domain.Role, limit, offset int) ([]domain.User, error) {
	var users []domain.User

	q := r.db.Where("status = ?", status)
	if role != "" {
		q = q.Where("role = ?", role)
	}

	err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
