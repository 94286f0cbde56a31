package repository

import (
	"errors"
	"time"

	"github.com/medwellsolutions/Medwell-Backend/internal/domain"
	"github.com/medwellsolutions/Medwell-Backend/internal/helper"
	"gorm.io/gorm"
)

type VettingRepository interface {
	// CreateIfAbsent persists rec unless the user already has a record.
	// Returns the stored record and whether this call created it.
	CreateIfAbsent(rec *domain.VettingRecord) (*domain.VettingRecord, bool, error)
	FindByUserID(userID uint) (*domain.VettingRecord, error)

	// UpdateReviewStatus writes the review envelope and mirrors the
	// coarse status onto the user row in the same transaction.
	UpdateReviewStatus(userID uint, status domain.ReviewStatus, reviewerID uint, notes string) error
}

type vettingRepository struct {
	db *gorm.DB
}

func NewVettingRepository(db *gorm.DB) VettingRepository {
	return &vettingRepository{db: db}
}

func (v *vettingRepository) CreateIfAbsent(rec *domain.VettingRecord) (*domain.VettingRecord, bool, error) {
	existing := &domain.VettingRecord{}
	err := v.db.Where("user_id = ?", rec.UserID).First(existing).Error
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	if err := v.db.Create(rec).Error; err != nil {
		// concurrent duplicate: the unique index on user_id won the race,
		// fetch and return the winner
		if helper.IsUniqueViolation(err) {
			if err := v.db.Where("user_id = ?", rec.UserID).First(existing).Error; err != nil {
				return nil, false, err
			}
			return existing, false, nil
		}
		return nil, false, err
	}
	return rec, true, nil
}

func (v *vettingRepository) FindByUserID(userID uint) (*domain.VettingRecord, error) {
	var rec domain.VettingRecord
	err := v.db.Where("user_id = ?", userID).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (v *vettingRepository) UpdateReviewStatus(userID uint, status domain.ReviewStatus, reviewerID uint, notes string) error {
	now := time.Now()

	return v.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.VettingRecord{}).
			Where("user_id = ?", userID).
			Updates(map[string]any{
				"review_status":  status,
				"reviewed_by":    reviewerID,
				"reviewed_at":    now,
				"reviewer_notes": notes,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrNotFound
		}

		return tx.Model(&domain.User{}).
			Where("id = ?", userID).
			Update("status", domain.UserStatus(status)).Error
	})
}
