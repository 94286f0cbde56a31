package domain

import (
	"database/sql/driver"
	"time"

	"gorm.io/gorm"
)

type SubmissionStatus string

const (
	SubmissionStatusPending  SubmissionStatus = "pending"
	SubmissionStatusApproved SubmissionStatus = "approved"
	SubmissionStatusRejected SubmissionStatus = "rejected"
)

func IsValidSubmissionStatus(s SubmissionStatus) bool {
	switch s {
	case SubmissionStatusPending, SubmissionStatusApproved, SubmissionStatusRejected:
		return true
	}
	return false
}

type Media struct {
	Kind        string `json:"kind"` // image | video
	URL         string `json:"url"`
	ThumbURL    string `json:"thumbUrl,omitempty"`
	ContentType string `json:"contentType,omitempty"`
	SizeBytes   int64  `json:"sizeBytes,omitempty"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
	DurationSec int    `json:"durationSec,omitempty"`
	Checksum    string `json:"checksum,omitempty"`
}

type MediaList []Media

func (l MediaList) Value() (driver.Value, error) { return jsonbValue(l) }
func (l *MediaList) Scan(v any) error            { return jsonbScan(v, l) }

// EventSubmission is a participant's proof of completing one step of an
// event. The composite unique index blocks a second submission for the
// same (user, event, step) at the database level.
type EventSubmission struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	UserID     uint `gorm:"not null;index;uniqueIndex:uidx_submission_step" json:"user_id"`
	EventID    uint `gorm:"not null;index;uniqueIndex:uidx_submission_step" json:"event_id"`
	StepNumber int  `gorm:"not null;uniqueIndex:uidx_submission_step" json:"step_number"`

	Media      MediaList `gorm:"type:jsonb" json:"media,omitempty"`
	SocialLink string    `json:"social_link,omitempty"`
	Experience string    `gorm:"type:text;not null" json:"experience"`

	Status        SubmissionStatus `gorm:"type:varchar(20);not null;default:pending;index" json:"status"`
	ReviewedBy    *uint            `json:"reviewed_by,omitempty"`
	ReviewComment string           `gorm:"type:text" json:"review_comment,omitempty"`
	ReviewedAt    *time.Time       `json:"reviewed_at,omitempty"`

	HoursAwarded  float64 `gorm:"default:0" json:"hours_awarded"`
	PointsAwarded int     `gorm:"default:0;index" json:"points_awarded"`

	Visibility string     `gorm:"type:varchar(20);not null;default:public" json:"visibility"`
	Tags       StringList `gorm:"type:jsonb" json:"tags,omitempty"`

	User  User  `gorm:"foreignKey:UserID" json:"-"`
	Event Event `gorm:"foreignKey:EventID" json:"-"`

	gorm.Model
}
