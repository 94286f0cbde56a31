package services

import (
	"sort"
	"time"

	"github.com/medwellsolutions/Medwell-Backend/internal/domain"
)

// In-memory repository stubs. They honor the same contracts as the gorm
// implementations (sentinel errors, unique constraints) so services can
// be exercised without a database.

type stubUserRepo struct {
	users  map[uint]*domain.User
	nextID uint
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: map[uint]*domain.User{}, nextID: 1}
}

func (s *stubUserRepo) CreateUser(user *domain.User) (*domain.User, error) {
	for _, u := range s.users {
		if u.Email == user.Email || u.Phone == user.Phone {
			return nil, domain.ErrConflict
		}
	}
	user.ID = s.nextID
	user.CreatedAt = time.Now()
	s.nextID++
	s.users[user.ID] = user
	return user, nil
}

func (s *stubUserRepo) FindUserByEmail(email string) (*domain.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubUserRepo) FindUserByID(userID uint) (*domain.User, error) {
	u, ok := s.users[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func (s *stubUserRepo) SaveUser(user *domain.User) error {
	s.users[user.ID] = user
	return nil
}

func (s *stubUserRepo) ListByStatus(status domain.UserStatus, role domain.Role, limit, offset int) ([]domain.User, error) {
	var out []domain.User
	for _, u := range s.users {
		if u.Status != status {
			continue
		}
		if role != "" && u.Role != role {
			continue
		}
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type stubVettingRepo struct {
	recs   map[uint]*domain.VettingRecord // keyed by user id
	nextID uint
	users  *stubUserRepo // status mirror target, optional
}

func newStubVettingRepo(users *stubUserRepo) *stubVettingRepo {
	return &stubVettingRepo{recs: map[uint]*domain.VettingRecord{}, nextID: 1, users: users}
}

func (s *stubVettingRepo) CreateIfAbsent(rec *domain.VettingRecord) (*domain.VettingRecord, bool, error) {
	if existing, ok := s.recs[rec.UserID]; ok {
		return existing, false, nil
	}
	rec.ID = s.nextID
	rec.CreatedAt = time.Now()
	s.nextID++
	s.recs[rec.UserID] = rec
	return rec, true, nil
}

func (s *stubVettingRepo) FindByUserID(userID uint) (*domain.VettingRecord, error) {
	rec, ok := s.recs[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return rec, nil
}

func (s *stubVettingRepo) UpdateReviewStatus(userID uint, status domain.ReviewStatus, reviewerID uint, notes string) error {
	rec, ok := s.recs[userID]
	if !ok {
		return domain.ErrNotFound
	}
	now := time.Now()
	rec.ReviewStatus = status
	rec.ReviewedBy = &reviewerID
	rec.ReviewedAt = &now
	rec.ReviewerNotes = notes

	if s.users != nil {
		if u, ok := s.users.users[userID]; ok {
			u.Status = domain.UserStatus(status)
		}
	}
	return nil
}

type stubEventRepo struct {
	events map[uint]*domain.Event
	nextID uint
}

func newStubEventRepo() *stubEventRepo {
	return &stubEventRepo{events: map[uint]*domain.Event{}, nextID: 1}
}

func (s *stubEventRepo) Create(event *domain.Event) error {
	event.ID = s.nextID
	event.CreatedAt = time.Now()
	s.nextID++
	s.events[event.ID] = event
	return nil
}

func (s *stubEventRepo) FindByID(eventID uint) (*domain.Event, error) {
	e, ok := s.events[eventID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return e, nil
}

func (s *stubEventRepo) ListByMonth(month string) ([]domain.Event, error) {
	var out []domain.Event
	for _, e := range s.events {
		if e.Month == month && e.IsActive {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type stubSubmissionRepo struct {
	subs   map[uint]*domain.EventSubmission
	nextID uint
	events *stubEventRepo
	users  *stubUserRepo
}

func newStubSubmissionRepo(events *stubEventRepo, users *stubUserRepo) *stubSubmissionRepo {
	return &stubSubmissionRepo{subs: map[uint]*domain.EventSubmission{}, nextID: 1, events: events, users: users}
}

func (s *stubSubmissionRepo) preload(sub *domain.EventSubmission) {
	if s.events != nil {
		if e, ok := s.events.events[sub.EventID]; ok {
			sub.Event = *e
		}
	}
	if s.users != nil {
		if u, ok := s.users.users[sub.UserID]; ok {
			sub.User = *u
		}
	}
}

func (s *stubSubmissionRepo) Create(sub *domain.EventSubmission) error {
	for _, existing := range s.subs {
		if existing.UserID == sub.UserID && existing.EventID == sub.EventID && existing.StepNumber == sub.StepNumber {
			return domain.ErrConflict
		}
	}
	sub.ID = s.nextID
	sub.CreatedAt = time.Now()
	s.nextID++
	s.subs[sub.ID] = sub
	return nil
}

func (s *stubSubmissionRepo) FindByID(id uint) (*domain.EventSubmission, error) {
	sub, ok := s.subs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	s.preload(sub)
	return sub, nil
}

func (s *stubSubmissionRepo) ListByUser(userID uint, limit, offset int) ([]domain.EventSubmission, error) {
	var out []domain.EventSubmission
	for _, sub := range s.subs {
		if sub.UserID == userID {
			s.preload(sub)
			out = append(out, *sub)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *stubSubmissionRepo) ListPending(limit, offset int) ([]domain.EventSubmission, error) {
	var out []domain.EventSubmission
	for _, sub := range s.subs {
		if sub.Status == domain.SubmissionStatusPending {
			s.preload(sub)
			out = append(out, *sub)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *stubSubmissionRepo) FindLatestForUser(userID uint) (*domain.EventSubmission, error) {
	var latest *domain.EventSubmission
	for _, sub := range s.subs {
		if sub.UserID != userID {
			continue
		}
		if sub.Status == domain.SubmissionStatusPending {
			if latest == nil || sub.ID > latest.ID {
				latest = sub
			}
		}
	}
	if latest == nil {
		for _, sub := range s.subs {
			if sub.UserID == userID && (latest == nil || sub.ID > latest.ID) {
				latest = sub
			}
		}
	}
	if latest == nil {
		return nil, domain.ErrNotFound
	}
	s.preload(latest)
	return latest, nil
}

func (s *stubSubmissionRepo) Review(id uint, status domain.SubmissionStatus, reviewerID uint, comment string, hours float64, points int) (*domain.EventSubmission, error) {
	sub, ok := s.subs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	sub.Status = status
	sub.ReviewedBy = &reviewerID
	sub.ReviewedAt = &now
	sub.ReviewComment = comment
	sub.HoursAwarded = hours
	sub.PointsAwarded = points
	s.preload(sub)
	return sub, nil
}

type stubProducer struct {
	keys []string
}

func (p *stubProducer) PublishMessage(key, value []byte) error {
	p.keys = append(p.keys, string(key))
	return nil
}
