package repository

import (
	"errors"
	"time"

	"github.com/medwellsolutions/Medwell-Backend/internal/domain"
	"github.com/medwellsolutions/Medwell-Backend/internal/helper"
	"gorm.io/gorm"
)

type SubmissionRepository interface {
	Create(sub *domain.EventSubmission) error
	FindByID(id uint) (*domain.EventSubmission, error)
	ListByUser(userID uint, limit, offset int) ([]domain.EventSubmission, error)
	ListPending(limit, offset int) ([]domain.EventSubmission, error)

	// FindLatestForUser prefers the most recent pending submission and
	// falls back to the most recent of any status.
	FindLatestForUser(userID uint) (*domain.EventSubmission, error)

	Review(id uint, status domain.SubmissionStatus, reviewerID uint, comment string, hours float64, points int) (*domain.EventSubmission, error)
}

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (s *submissionRepository) Create(sub *domain.EventSubmission) error {
	if err := s.db.Create(sub).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return domain.ErrConflict
		}
		return err
	}
	return nil
}

func (s *submissionRepository) FindByID(id uint) (*domain.EventSubmission, error) {
	var sub domain.EventSubmission
	err := s.db.Preload("Event").First(&sub, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &sub, nil
}

func (s *submissionRepository) ListByUser(userID uint, limit, offset int) ([]domain.EventSubmission, error) {
	var subs []domain.EventSubmission
	err := s.db.Preload("Event").
		Where("user_id = ?", userID).
		Order("created_at DESC").Limit(limit).Offset(offset).
		Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}

func (s *submissionRepository) ListPending(limit, offset int) ([]domain.EventSubmission, error) {
	var subs []domain.EventSubmission
	err := s.db.Preload("User").Preload("Event").
		Where("status = ?", domain.SubmissionStatusPending).
		Order("created_at DESC").Limit(limit).Offset(offset).
		Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}

func (s *submissionRepository) FindLatestForUser(userID uint) (*domain.EventSubmission, error) {
	var sub domain.EventSubmission
	err := s.db.Preload("Event").
		Where("user_id = ? AND status = ?", userID, domain.SubmissionStatusPending).
		Order("created_at DESC").
		First(&sub).Error
	if err == nil {
		return &sub, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	err = s.db.Preload("Event").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &sub, nil
}

func (s *submissionRepository) Review(id uint, status domain.SubmissionStatus, reviewerID uint, comment string, hours float64, points int) (*domain.EventSubmission, error) {
	now := time.Now()

	res := s.db.Model(&domain.EventSubmission{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":         status,
			"reviewed_by":    reviewerID,
			"reviewed_at":    now,
			"review_comment": comment,
			"hours_awarded":  hours,
			"points_awarded": points,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}

	return s.FindByID(id)
}
