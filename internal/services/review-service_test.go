package services

import (
	"context"
	"testing"

	"github.com/medwellsolutions/Medwell-Backend/internal/domain"
	"github.com/medwellsolutions/Medwell-Backend/internal/dto"
	"github.com/medwellsolutions/Medwell-Backend/pkg/filestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reviewFixture struct {
	svc    ReviewService
	users  *stubUserRepo
	recs   *stubVettingRepo
	subs   *stubSubmissionRepo
	events *stubEventRepo
	prod   *stubProducer
}

func newReviewFixture(t *testing.T) *reviewFixture {
	t.Helper()
	users := newStubUserRepo()
	recs := newStubVettingRepo(users)
	events := newStubEventRepo()
	subs := newStubSubmissionRepo(events, users)
	prod := &stubProducer{}
	return &reviewFixture{
		svc:    NewReviewService(users, recs, subs, prod),
		users:  users,
		recs:   recs,
		subs:   subs,
		events: events,
		prod:   prod,
	}
}

// seedVettedDoctor registers a doctor and pushes their vetting form
// through the real submission path.
func (f *reviewFixture) seedVettedDoctor(t *testing.T) *domain.User {
	t.Helper()
	u, err := f.users.CreateUser(&domain.User{
		FirstName: "Dana",
		LastName:  "Whitfield",
		Email:     "dana@example.com",
		Phone:     "5125550101",
		Age:       41,
		Gender:    "female",
		Role:      domain.RoleDoctor,
		Status:    domain.UserStatusHold,
	})
	require.NoError(t, err)

	vetSvc := NewVettingService(f.recs, f.users, filestore.NewMemory(), nil)
	_, err = vetSvc.SubmitDoctor(context.Background(), u.ID, validDoctorRequest(), doctorFiles())
	require.NoError(t, err)
	return u
}

func TestSetApplicationStatusAcceptMirrorsUser(t *testing.T) {
	f := newReviewFixture(t)
	u := f.seedVettedDoctor(t)

	err := f.svc.SetApplicationStatus(99, u.ID, dto.SetApplicationStatusRequest{Status: "accepted"})
	require.NoError(t, err)

	rec, err := f.recs.FindByUserID(u.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ReviewStatusAccepted, rec.ReviewStatus)
	require.NotNil(t, rec.ReviewedBy)
	assert.Equal(t, uint(99), *rec.ReviewedBy)

	user, err := f.users.FindUserByID(u.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.UserStatusAccepted, user.Status)
	assert.Contains(t, f.prod.keys, "vetting.reviewed")
}

func TestSetApplicationStatusAcceptClearsNotes(t *testing.T) {
	f := newReviewFixture(t)
	u := f.seedVettedDoctor(t)

	err := f.svc.SetApplicationStatus(99, u.ID, dto.SetApplicationStatusRequest{
		Status: "accepted",
		Notes:  "looks great",
	})
	require.NoError(t, err)

	rec, err := f.recs.FindByUserID(u.ID)
	require.NoError(t, err)
	// notes only persist with a rejection
	assert.Empty(t, rec.ReviewerNotes)

	// re-opening after a rejection clears the rejection reason too
	require.NoError(t, f.svc.SetApplicationStatus(99, u.ID, dto.SetApplicationStatusRequest{
		Status: "rejected",
		Notes:  "license expired",
	}))
	require.NoError(t, f.svc.SetApplicationStatus(99, u.ID, dto.SetApplicationStatusRequest{
		Status: "hold",
		Notes:  "second look",
	}))
	rec, _ = f.recs.FindByUserID(u.ID)
	assert.Empty(t, rec.ReviewerNotes)
}

func TestSetApplicationStatusRejectNeedsNotes(t *testing.T) {
	f := newReviewFixture(t)
	u := f.seedVettedDoctor(t)

	err := f.svc.SetApplicationStatus(99, u.ID, dto.SetApplicationStatusRequest{Status: "rejected"})
	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))

	err = f.svc.SetApplicationStatus(99, u.ID, dto.SetApplicationStatusRequest{
		Status: "rejected",
		Notes:  "license could not be verified",
	})
	require.NoError(t, err)

	user, _ := f.users.FindUserByID(u.ID)
	assert.Equal(t, domain.UserStatusRejected, user.Status)
}

func TestSetApplicationStatusInvalid(t *testing.T) {
	f := newReviewFixture(t)
	u := f.seedVettedDoctor(t)

	err := f.svc.SetApplicationStatus(99, u.ID, dto.SetApplicationStatusRequest{Status: "approved"})
	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))
}

func TestSetApplicationStatusReopen(t *testing.T) {
	f := newReviewFixture(t)
	u := f.seedVettedDoctor(t)

	require.NoError(t, f.svc.SetApplicationStatus(99, u.ID, dto.SetApplicationStatusRequest{Status: "accepted"}))
	require.NoError(t, f.svc.SetApplicationStatus(99, u.ID, dto.SetApplicationStatusRequest{Status: "hold"}))

	user, _ := f.users.FindUserByID(u.ID)
	assert.Equal(t, domain.UserStatusHold, user.Status)
}

func TestListPendingApplications(t *testing.T) {
	f := newReviewFixture(t)
	f.seedVettedDoctor(t)

	apps, err := f.svc.ListPendingApplications("", 50, 0)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, "doctor", apps[0].Role)
	assert.Nil(t, apps[0].SubmissionID)

	apps, err = f.svc.ListPendingApplications("doctor", 50, 0)
	require.NoError(t, err)
	assert.Len(t, apps, 1)

	apps, err = f.svc.ListPendingApplications("supplier", 50, 0)
	require.NoError(t, err)
	assert.Empty(t, apps)

	_, err = f.svc.ListPendingApplications("ghost", 50, 0)
	require.Error(t, err)
}

func TestListPendingApplicationsMergedNewestFirst(t *testing.T) {
	f := newReviewFixture(t)
	doctor := f.seedVettedDoctor(t)
	sub := f.seedPendingSubmission(t) // created after the doctor

	apps, err := f.svc.ListPendingApplications("", 50, 0)
	require.NoError(t, err)
	require.Len(t, apps, 2)
	// the later participant submission outranks the earlier hold user
	assert.Equal(t, sub.UserID, apps[0].UserID)
	require.NotNil(t, apps[0].SubmissionID)
	assert.Equal(t, doctor.ID, apps[1].UserID)

	// paging spans the merged list, not each source separately
	page, err := f.svc.ListPendingApplications("", 1, 0)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, sub.UserID, page[0].UserID)

	page, err = f.svc.ListPendingApplications("", 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, doctor.ID, page[0].UserID)

	page, err = f.svc.ListPendingApplications("", 1, 2)
	require.NoError(t, err)
	assert.Empty(t, page)
}

func TestGetApplicationDetailDecodesForm(t *testing.T) {
	f := newReviewFixture(t)
	u := f.seedVettedDoctor(t)

	detail, err := f.svc.GetApplicationDetail(u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.ID, detail.User.ID)
	require.NotNil(t, detail.Vetting)
	assert.Nil(t, detail.Submission)
}

func (f *reviewFixture) seedPendingSubmission(t *testing.T) *domain.EventSubmission {
	t.Helper()
	u, err := f.users.CreateUser(&domain.User{
		FirstName: "Riley",
		LastName:  "Nguyen",
		Email:     "riley@example.com",
		Phone:     "5125550188",
		Age:       22,
		Gender:    "male",
		Role:      domain.RoleParticipant,
		Status:    domain.UserStatusAccepted,
	})
	require.NoError(t, err)

	event := &domain.Event{
		Name:           "Autism Awareness 5K",
		Caption:        "Walk together",
		Month:          "april",
		ImageURL:       "https://cdn.example.com/5k.jpg",
		VolunteerHours: 3,
		IsActive:       true,
	}
	require.NoError(t, f.events.Create(event))

	sub := &domain.EventSubmission{
		UserID:     u.ID,
		EventID:    event.ID,
		StepNumber: 1,
		SocialLink: "https://instagram.com/p/abc123",
		Experience: "Walked with twenty classmates.",
		Status:     domain.SubmissionStatusPending,
		Visibility: "public",
	}
	require.NoError(t, f.subs.Create(sub))
	return sub
}

func hoursPtr(h float64) *float64 { return &h }

func TestSetSubmissionStatusApproveAwards(t *testing.T) {
	f := newReviewFixture(t)
	sub := f.seedPendingSubmission(t)

	detail, err := f.svc.SetSubmissionStatus(7, sub.ID, dto.ReviewSubmissionRequest{
		Status:        "approved",
		Comment:       "great turnout",
		HoursAwarded:  hoursPtr(2.5),
		PointsAwarded: 40,
	})
	require.NoError(t, err)
	assert.Equal(t, "approved", detail.Status)
	assert.Equal(t, 2.5, detail.HoursAwarded)
	assert.Equal(t, 40, detail.PointsAwarded)
	// comments only persist with a rejection
	assert.Empty(t, detail.ReviewComment)
	assert.Contains(t, f.prod.keys, "submission.reviewed")
}

func TestSetSubmissionStatusApproveExplicitZeroHours(t *testing.T) {
	f := newReviewFixture(t)
	sub := f.seedPendingSubmission(t)

	detail, err := f.svc.SetSubmissionStatus(7, sub.ID, dto.ReviewSubmissionRequest{
		Status:        "approved",
		HoursAwarded:  hoursPtr(0),
		PointsAwarded: 10,
	})
	require.NoError(t, err)
	// an explicit 0 is kept, only an omitted value falls back
	assert.Equal(t, 0.0, detail.HoursAwarded)
	assert.Equal(t, 10, detail.PointsAwarded)
}

func TestSetSubmissionStatusApproveDefaultsEventHours(t *testing.T) {
	f := newReviewFixture(t)
	sub := f.seedPendingSubmission(t)

	detail, err := f.svc.SetSubmissionStatus(7, sub.ID, dto.ReviewSubmissionRequest{
		Status:        "approved",
		PointsAwarded: 10,
	})
	require.NoError(t, err)
	// falls back to the event's volunteer hours when none given
	assert.Equal(t, 3.0, detail.HoursAwarded)
}

func TestSetSubmissionStatusRejectZeroesAwards(t *testing.T) {
	f := newReviewFixture(t)
	sub := f.seedPendingSubmission(t)

	_, err := f.svc.SetSubmissionStatus(7, sub.ID, dto.ReviewSubmissionRequest{Status: "rejected"})
	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))

	detail, err := f.svc.SetSubmissionStatus(7, sub.ID, dto.ReviewSubmissionRequest{
		Status:        "rejected",
		Comment:       "proof link is broken",
		HoursAwarded:  hoursPtr(5),
		PointsAwarded: 100,
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, detail.HoursAwarded)
	assert.Equal(t, 0, detail.PointsAwarded)
	assert.Equal(t, "proof link is broken", detail.ReviewComment)
}

func TestListPendingSubmissionsAndParticipantQueue(t *testing.T) {
	f := newReviewFixture(t)
	sub := f.seedPendingSubmission(t)

	subs, err := f.svc.ListPendingSubmissions(50, 0)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "Autism Awareness 5K", subs[0].EventName)

	apps, err := f.svc.ListPendingApplications("participant", 50, 0)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	require.NotNil(t, apps[0].SubmissionID)
	assert.Equal(t, sub.ID, *apps[0].SubmissionID)

	detail, err := f.svc.GetApplicationDetail(sub.UserID)
	require.NoError(t, err)
	require.NotNil(t, detail.Submission)
	assert.Equal(t, sub.ID, detail.Submission.ID)
}

func TestSetApplicationStatusParticipantNotAllowed(t *testing.T) {
	f := newReviewFixture(t)
	sub := f.seedPendingSubmission(t)

	err := f.svc.SetApplicationStatus(7, sub.UserID, dto.SetApplicationStatusRequest{Status: "accepted"})
	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))
}
