package services

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/medwellsolutions/Medwell-Backend/internal/domain"
	"github.com/medwellsolutions/Medwell-Backend/internal/dto"
	"github.com/medwellsolutions/Medwell-Backend/internal/interfaces"
	"github.com/medwellsolutions/Medwell-Backend/internal/repository"
)

// ReviewService is the admin side of onboarding: the pending queue,
// application detail, and the accept/hold/reject transitions. Participant
// applications are reviewed per event submission, every other role per
// vetting record.
type ReviewService interface {
	ListPendingApplications(roleFilter string, limit, offset int) ([]dto.ApplicationSummary, error)
	GetApplicationDetail(userID uint) (*dto.ApplicationDetail, error)
	SetApplicationStatus(adminID, userID uint, input dto.SetApplicationStatusRequest) error

	ListPendingSubmissions(limit, offset int) ([]dto.SubmissionSummary, error)
	GetSubmissionDetail(submissionID uint) (*dto.SubmissionDetail, error)
	SetSubmissionStatus(adminID, submissionID uint, input dto.ReviewSubmissionRequest) (*dto.SubmissionDetail, error)
}

type reviewService struct {
	users       repository.UserRepository
	vetting     repository.VettingRepository
	submissions repository.SubmissionRepository
	producer    interfaces.ProducerHandler
}

func NewReviewService(users repository.UserRepository, vetting repository.VettingRepository, submissions repository.SubmissionRepository, producer interfaces.ProducerHandler) ReviewService {
	return &reviewService{
		users:       users,
		vetting:     vetting,
		submissions: submissions,
		producer:    producer,
	}
}

func (r *reviewService) ListPendingApplications(roleFilter string, limit, offset int) ([]dto.ApplicationSummary, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	role := domain.Role(strings.TrimSpace(strings.ToLower(roleFilter)))
	if role != "" && !domain.IsValidRole(role) {
		return nil, domain.NewValidationError("role", "is invalid")
	}

	// both sources feed one newest-first list, so pull everything up to
	// the requested window from each and page after merging
	fetch := offset + limit

	type entry struct {
		summary dto.ApplicationSummary
		at      time.Time
	}
	var entries []entry

	if role != domain.RoleParticipant {
		users, err := r.users.ListByStatus(domain.UserStatusHold, role, fetch, 0)
		if err != nil {
			return nil, err
		}
		for i := range users {
			u := users[i]
			entries = append(entries, entry{
				summary: dto.ApplicationSummary{
					UserID:      u.ID,
					FirstName:   u.FirstName,
					LastName:    u.LastName,
					Role:        string(u.Role),
					Status:      string(u.Status),
					SubmittedAt: u.CreatedAt.Format(time.RFC3339),
				},
				at: u.CreatedAt,
			})
		}
	}

	if role == "" || role == domain.RoleParticipant {
		subs, err := r.submissions.ListPending(fetch, 0)
		if err != nil {
			return nil, err
		}
		for i := range subs {
			s := subs[i]
			sid, eid := s.ID, s.EventID
			entries = append(entries, entry{
				summary: dto.ApplicationSummary{
					UserID:       s.UserID,
					FirstName:    s.User.FirstName,
					LastName:     s.User.LastName,
					Role:         string(domain.RoleParticipant),
					Status:       string(s.Status),
					SubmittedAt:  s.CreatedAt.Format(time.RFC3339),
					SubmissionID: &sid,
					EventID:      &eid,
				},
				at: s.CreatedAt,
			})
		}
	}

	sort.SliceStable(entries, func(i, j int) bool { return entries[i].at.After(entries[j].at) })

	if offset >= len(entries) {
		return []dto.ApplicationSummary{}, nil
	}
	end := offset + limit
	if end > len(entries) {
		end = len(entries)
	}

	out := make([]dto.ApplicationSummary, 0, end-offset)
	for _, e := range entries[offset:end] {
		out = append(out, e.summary)
	}
	return out, nil
}

func (r *reviewService) GetApplicationDetail(userID uint) (*dto.ApplicationDetail, error) {
	user, err := r.users.FindUserByID(userID)
	if err != nil {
		return nil, err
	}

	detail := &dto.ApplicationDetail{User: dto.ProfileFrom(user)}

	if user.Role == domain.RoleParticipant {
		sub, err := r.submissions.FindLatestForUser(userID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return detail, nil
			}
			return nil, err
		}
		detail.Submission = dto.SubmissionDetailFrom(sub)
		return detail, nil
	}

	rec, err := r.vetting.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return detail, nil
		}
		return nil, err
	}

	form, err := rec.DecodePayload()
	if err != nil {
		// stored payload predates the current form shape, serve the envelope
		log.Printf("decode vetting payload for user %d failed: %v", userID, err)
		detail.Vetting = rec
		return detail, nil
	}

	detail.Vetting = struct {
		*domain.VettingRecord
		Form any `json:"form"`
	}{rec, form}
	return detail, nil
}

func (r *reviewService) SetApplicationStatus(adminID, userID uint, input dto.SetApplicationStatusRequest) error {
	status := domain.ReviewStatus(strings.TrimSpace(strings.ToLower(input.Status)))
	notes := strings.TrimSpace(input.Notes)

	if !domain.IsValidReviewStatus(status) {
		return domain.NewValidationError("status", "must be one of hold, accepted, rejected")
	}
	if status == domain.ReviewStatusRejected && notes == "" {
		return domain.NewValidationError("notes", "a reason is required when rejecting")
	}
	// notes only accompany a rejection
	if status != domain.ReviewStatusRejected {
		notes = ""
	}

	user, err := r.users.FindUserByID(userID)
	if err != nil {
		return err
	}
	if user.Role == domain.RoleAdmin {
		return fmt.Errorf("%w: admin accounts are not reviewable", domain.ErrForbidden)
	}
	if user.Role == domain.RoleParticipant {
		return domain.NewValidationError("role", "participants are reviewed per activity submission")
	}

	if err := r.vetting.UpdateReviewStatus(userID, status, adminID, notes); err != nil {
		return err
	}

	if r.producer != nil {
		payload := fmt.Sprintf(
			`{"user_id":%d,"role":"%s","status":"%s","reviewed_by":%d}`,
			userID, user.Role, status, adminID,
		)
		if err := r.producer.PublishMessage([]byte("vetting.reviewed"), []byte(payload)); err != nil {
			log.Printf("publish vetting.reviewed failed: %v", err)
		}
	}
	return nil
}

func (r *reviewService) ListPendingSubmissions(limit, offset int) ([]dto.SubmissionSummary, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	subs, err := r.submissions.ListPending(limit, offset)
	if err != nil {
		return nil, err
	}

	out := make([]dto.SubmissionSummary, 0, len(subs))
	for i := range subs {
		out = append(out, dto.SubmissionSummaryFrom(&subs[i]))
	}
	return out, nil
}

func (r *reviewService) GetSubmissionDetail(submissionID uint) (*dto.SubmissionDetail, error) {
	sub, err := r.submissions.FindByID(submissionID)
	if err != nil {
		return nil, err
	}
	return dto.SubmissionDetailFrom(sub), nil
}

func (r *reviewService) SetSubmissionStatus(adminID, submissionID uint, input dto.ReviewSubmissionRequest) (*dto.SubmissionDetail, error) {
	status := domain.SubmissionStatus(strings.TrimSpace(strings.ToLower(input.Status)))
	comment := strings.TrimSpace(input.Comment)

	if !domain.IsValidSubmissionStatus(status) {
		return nil, domain.NewValidationError("status", "must be one of pending, approved, rejected")
	}
	if status == domain.SubmissionStatusRejected && comment == "" {
		return nil, domain.NewValidationError("comment", "a reason is required when rejecting")
	}
	// comments only accompany a rejection
	if status != domain.SubmissionStatusRejected {
		comment = ""
	}
	if input.HoursAwarded != nil && *input.HoursAwarded < 0 {
		return nil, domain.NewValidationError("hoursAwarded", "cannot be negative")
	}
	if input.PointsAwarded < 0 {
		return nil, domain.NewValidationError("pointsAwarded", "cannot be negative")
	}

	sub, err := r.submissions.FindByID(submissionID)
	if err != nil {
		return nil, err
	}

	// awards only exist on approval; any other outcome zeroes them, which
	// also claws back a prior approval's hours on re-review
	hours, points := 0.0, 0
	if status == domain.SubmissionStatusApproved {
		points = input.PointsAwarded
		if input.HoursAwarded != nil {
			hours = *input.HoursAwarded
		} else {
			hours = sub.Event.VolunteerHours
		}
	}

	updated, err := r.submissions.Review(submissionID, status, adminID, comment, hours, points)
	if err != nil {
		return nil, err
	}

	if r.producer != nil {
		payload := fmt.Sprintf(
			`{"submission_id":%d,"user_id":%d,"event_id":%d,"status":"%s","hours_awarded":%g,"points_awarded":%d}`,
			updated.ID, updated.UserID, updated.EventID, status, hours, points,
		)
		if err := r.producer.PublishMessage([]byte("submission.reviewed"), []byte(payload)); err != nil {
			log.Printf("publish submission.reviewed failed: %v", err)
		}
	}

	return dto.SubmissionDetailFrom(updated), nil
}
