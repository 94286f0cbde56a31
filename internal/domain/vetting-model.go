package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

type ReviewStatus string

const (
	ReviewStatusHold     ReviewStatus = "hold"
	ReviewStatusAccepted ReviewStatus = "accepted"
	ReviewStatusRejected ReviewStatus = "rejected"
)

func IsValidReviewStatus(s ReviewStatus) bool {
	switch s {
	case ReviewStatusHold, ReviewStatusAccepted, ReviewStatusRejected:
		return true
	}
	return false
}

// FileRef points at a stored blob. FileID is opaque to the core; the
// configured FileStore knows how to resolve it back to bytes.
type FileRef struct {
	FileID      string    `json:"fileId"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"contentType"`
	Length      int64     `json:"length"`
	UploadDate  time.Time `json:"uploadDate"`
}

// VettingRecord is the shared review envelope. The role-specific form
// lives in Payload (jsonb) as one of the *Form variants; Role picks which.
// user_id carries a unique index: at most one record per user, enforced
// by the database rather than an application pre-check.
type VettingRecord struct {
	ID            uint         `gorm:"primaryKey" json:"id"`
	UserID        uint         `gorm:"uniqueIndex;not null" json:"user_id"`
	Email         string       `gorm:"not null" json:"email"`
	Role          Role         `gorm:"type:varchar(20);not null;index" json:"role"`
	ReviewStatus  ReviewStatus `gorm:"type:varchar(20);not null;default:hold;index" json:"review_status"`
	ReviewedBy    *uint        `json:"reviewed_by,omitempty"`
	ReviewedAt    *time.Time   `json:"reviewed_at,omitempty"`
	ReviewerNotes string       `gorm:"type:text" json:"reviewer_notes,omitempty"`
	Payload       JSONPayload  `gorm:"type:jsonb;not null" json:"payload"`
	gorm.Model
}

// JSONPayload stores an already-encoded JSON document in a jsonb column.
type JSONPayload []byte

func (p JSONPayload) Value() (driver.Value, error) {
	if len(p) == 0 {
		return []byte("{}"), nil
	}
	return []byte(p), nil
}

func (p *JSONPayload) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*p = nil
		return nil
	case []byte:
		*p = append((*p)[:0], v...)
		return nil
	case string:
		*p = JSONPayload(v)
		return nil
	}
	return errors.New("unsupported jsonb source")
}

func (p JSONPayload) MarshalJSON() ([]byte, error) {
	if len(p) == 0 {
		return []byte("null"), nil
	}
	return p, nil
}

func (p *JSONPayload) UnmarshalJSON(data []byte) error {
	*p = append((*p)[:0], data...)
	return nil
}

// DecodePayload unmarshals the record's payload into the variant struct
// for its role.
func (r *VettingRecord) DecodePayload() (any, error) {
	var out any
	switch r.Role {
	case RoleParticipant:
		out = &ParticipantForm{}
	case RoleDoctor:
		out = &DoctorForm{}
	case RoleSupplier:
		out = &SupplierForm{}
	case RoleSponsor:
		out = &SponsorForm{}
	case RoleNonProfit:
		out = &NonProfitForm{}
	default:
		return nil, errors.New("no vetting variant for role " + string(r.Role))
	}
	if err := json.Unmarshal(r.Payload, out); err != nil {
		return nil, err
	}
	return out, nil
}
