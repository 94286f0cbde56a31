package dto

import (
	"time"

	"github.com/medwellsolutions/Medwell-Backend/internal/domain"
)

func ProfileFrom(u *domain.User) UserProfile {
	return UserProfile{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     u.Phone,
		Age:       u.Age,
		Gender:    u.Gender,
		Role:      string(u.Role),
		Status:    string(u.Status),
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

func SubmissionSummaryFrom(s *domain.EventSubmission) SubmissionSummary {
	return SubmissionSummary{
		ID:          s.ID,
		UserID:      s.UserID,
		FirstName:   s.User.FirstName,
		LastName:    s.User.LastName,
		EventID:     s.EventID,
		EventName:   s.Event.Name,
		StepNumber:  s.StepNumber,
		Status:      string(s.Status),
		SubmittedAt: s.CreatedAt.Format(time.RFC3339),
	}
}

func SubmissionDetailFrom(s *domain.EventSubmission) *SubmissionDetail {
	d := &SubmissionDetail{
		ID:            s.ID,
		UserID:        s.UserID,
		EventID:       s.EventID,
		EventName:     s.Event.Name,
		EventCaption:  s.Event.Caption,
		StepNumber:    s.StepNumber,
		SocialLink:    s.SocialLink,
		Experience:    s.Experience,
		Status:        string(s.Status),
		ReviewedBy:    s.ReviewedBy,
		ReviewComment: s.ReviewComment,
		HoursAwarded:  s.HoursAwarded,
		PointsAwarded: s.PointsAwarded,
		Visibility:    s.Visibility,
		Tags:          s.Tags,
		SubmittedAt:   s.CreatedAt.Format(time.RFC3339),
	}
	if len(s.Media) > 0 {
		d.Media = s.Media
	}
	if s.ReviewedAt != nil {
		at := s.ReviewedAt.Format(time.RFC3339)
		d.ReviewedAt = &at
	}
	return d
}
