package dto

import "github.com/medwellsolutions/Medwell-Backend/internal/domain"

type EventCreateRequest struct {
	Name           string             `json:"name"`
	Caption        string             `json:"caption"`
	Month          string             `json:"month"`
	ImageURL       string             `json:"imageUrl"`
	ThumbURL       string             `json:"thumbUrl,omitempty"`
	StartsAt       string             `json:"startsAt,omitempty"`
	EndsAt         string             `json:"endsAt,omitempty"`
	Description    string             `json:"description,omitempty"`
	Steps          []domain.EventStep `json:"steps,omitempty"`
	EstimatedTime  string             `json:"estimatedTime,omitempty"`
	VolunteerHours float64            `json:"volunteerHours,omitempty"`
	Checklist      []string           `json:"checklist,omitempty"`
	FAQs           []domain.FAQ       `json:"faqs,omitempty"`
}

type SubmissionCreateRequest struct {
	StepNumber int            `json:"stepNumber"`
	Media      []domain.Media `json:"media,omitempty"`
	SocialLink string         `json:"socialLink,omitempty"`
	Experience string         `json:"experience"`
	Visibility string         `json:"visibility,omitempty"`
	Tags       []string       `json:"tags,omitempty"`
}
