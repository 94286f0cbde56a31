package repository

import (
	"errors"

	"github.com/medwellsolutions/Medwell-Backend/internal/domain"
	"gorm.io/gorm"
)

type EventRepository interface {
	Create(event *domain.Event) error
	FindByID(eventID uint) (*domain.Event, error)
	ListByMonth(month string) ([]domain.Event, error)
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (e *eventRepository) Create(event *domain.Event) error {
	return e.db.Create(event).Error
}

func (e *eventRepository) FindByID(eventID uint) (*domain.Event, error) {
	var event domain.Event
	if err := e.db.First(&event, eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &event, nil
}

func (e *eventRepository) ListByMonth(month string) ([]domain.Event, error) {
	var events []domain.Event
	err := e.db.Where("month = ? AND is_active = ?", month, true).
		Order("starts_at ASC").Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}
