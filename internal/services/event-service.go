package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/medwellsolutions/Medwell-Backend/internal/domain"
	"github.com/medwellsolutions/Medwell-Backend/internal/dto"
	"github.com/medwellsolutions/Medwell-Backend/internal/repository"
)

type EventService interface {
	CreateEvent(input dto.EventCreateRequest) (*domain.Event, error)
	GetEvent(eventID uint) (*domain.Event, error)
	ListEventsByMonth(month string) ([]domain.Event, error)

	CreateSubmission(userID, eventID uint, input dto.SubmissionCreateRequest) (*domain.EventSubmission, error)
	ListMySubmissions(userID uint, limit, offset int) ([]domain.EventSubmission, error)
}

type eventService struct {
	events      repository.EventRepository
	submissions repository.SubmissionRepository
	users       repository.UserRepository
}

func NewEventService(events repository.EventRepository, submissions repository.SubmissionRepository, users repository.UserRepository) EventService {
	return &eventService{
		events:      events,
		submissions: submissions,
		users:       users,
	}
}

func (e *eventService) CreateEvent(input dto.EventCreateRequest) (*domain.Event, error) {
	if err := checkRequired("name", input.Name, 160); err != nil {
		return nil, err
	}
	if err := checkRequired("caption", input.Caption, 300); err != nil {
		return nil, err
	}
	if err := checkRequired("month", input.Month, 20); err != nil {
		return nil, err
	}
	if err := checkRequired("imageUrl", input.ImageURL, 500); err != nil {
		return nil, err
	}
	if err := checkURLs("imageUrl", []string{input.ImageURL}); err != nil {
		return nil, err
	}

	seen := map[int]struct{}{}
	for _, step := range input.Steps {
		if step.Number < 1 {
			return nil, domain.NewValidationError("steps", "step numbers start at 1")
		}
		if _, dup := seen[step.Number]; dup {
			return nil, domain.NewValidationError("steps", fmt.Sprintf("duplicate step number %d", step.Number))
		}
		seen[step.Number] = struct{}{}
		if strings.TrimSpace(step.Title) == "" {
			return nil, domain.NewValidationError("steps", "every step needs a title")
		}
	}

	event := &domain.Event{
		Name:           strings.TrimSpace(input.Name),
		Caption:        strings.TrimSpace(input.Caption),
		Month:          strings.TrimSpace(strings.ToLower(input.Month)),
		ImageURL:       input.ImageURL,
		ThumbURL:       input.ThumbURL,
		Description:    input.Description,
		Steps:          input.Steps,
		EstimatedTime:  input.EstimatedTime,
		VolunteerHours: input.VolunteerHours,
		Checklist:      input.Checklist,
		FAQs:           input.FAQs,
		IsActive:       true,
	}

	if input.StartsAt != "" {
		t, err := time.Parse(time.RFC3339, input.StartsAt)
		if err != nil {
			return nil, domain.NewValidationError("startsAt", "must be an RFC3339 timestamp")
		}
		event.StartsAt = &t
	}
	if input.EndsAt != "" {
		t, err := time.Parse(time.RFC3339, input.EndsAt)
		if err != nil {
			return nil, domain.NewValidationError("endsAt", "must be an RFC3339 timestamp")
		}
		event.EndsAt = &t
	}
	if event.StartsAt != nil && event.EndsAt != nil && event.EndsAt.Before(*event.StartsAt) {
		return nil, domain.NewValidationError("endsAt", "must not be before startsAt")
	}

	if err := e.events.Create(event); err != nil {
		return nil, err
	}
	return event, nil
}

func (e *eventService) GetEvent(eventID uint) (*domain.Event, error) {
	return e.events.FindByID(eventID)
}

func (e *eventService) ListEventsByMonth(month string) ([]domain.Event, error) {
	month = strings.TrimSpace(strings.ToLower(month))
	if month == "" {
		return nil, domain.NewValidationError("month", "is required")
	}
	return e.events.ListByMonth(month)
}

func (e *eventService) CreateSubmission(userID, eventID uint, input dto.SubmissionCreateRequest) (*domain.EventSubmission, error) {
	if userID == 0 {
		return nil, domain.ErrUnauthorized
	}
	user, err := e.users.FindUserByID(userID)
	if err != nil {
		return nil, err
	}
	if user.Role != domain.RoleParticipant {
		return nil, fmt.Errorf("%w: only participants submit event activities", domain.ErrForbidden)
	}

	event, err := e.events.FindByID(eventID)
	if err != nil {
		return nil, err
	}

	if input.StepNumber < 1 {
		return nil, domain.NewValidationError("stepNumber", "must be at least 1")
	}
	if len(event.Steps) > 0 && input.StepNumber > len(event.Steps) {
		return nil, domain.NewValidationError("stepNumber", fmt.Sprintf("event has %d steps", len(event.Steps)))
	}

	socialLink := strings.TrimSpace(input.SocialLink)
	hasMedia := len(input.Media) > 0
	hasLink := socialLink != ""
	if hasMedia == hasLink {
		return nil, domain.NewValidationError("media", "provide exactly one of media or socialLink as proof")
	}
	if hasLink {
		if err := checkURLs("socialLink", []string{socialLink}); err != nil {
			return nil, err
		}
	}
	for _, m := range input.Media {
		if m.Kind != "image" && m.Kind != "video" {
			return nil, domain.NewValidationError("media", "kind must be image or video")
		}
		if err := checkURLs("media", []string{m.URL}); err != nil {
			return nil, err
		}
	}

	experience := strings.TrimSpace(input.Experience)
	if experience == "" {
		return nil, domain.NewValidationError("experience", "is required")
	}
	if len(experience) > 10000 {
		return nil, domain.NewValidationError("experience", "must be at most 10000 characters")
	}

	visibility := strings.TrimSpace(strings.ToLower(input.Visibility))
	switch visibility {
	case "":
		visibility = "public"
	case "public", "private":
	default:
		return nil, domain.NewValidationError("visibility", "must be public or private")
	}

	tags := uniqStrings(input.Tags)
	if len(tags) > 10 {
		return nil, domain.NewValidationError("tags", "at most 10 tags")
	}
	for _, tag := range tags {
		if err := checkRequired("tags", tag, 40); err != nil {
			return nil, err
		}
	}

	sub := &domain.EventSubmission{
		UserID:     userID,
		EventID:    eventID,
		StepNumber: input.StepNumber,
		Media:      input.Media,
		SocialLink: socialLink,
		Experience: experience,
		Status:     domain.SubmissionStatusPending,
		Visibility: visibility,
		Tags:       tags,
	}

	if err := e.submissions.Create(sub); err != nil {
		if err == domain.ErrConflict {
			return nil, fmt.Errorf("%w: this step has already been submitted for this event", domain.ErrConflict)
		}
		return nil, err
	}
	return sub, nil
}

func (e *eventService) ListMySubmissions(userID uint, limit, offset int) ([]domain.EventSubmission, error) {
	if userID == 0 {
		return nil, domain.ErrUnauthorized
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return e.submissions.ListByUser(userID, limit, offset)
}
