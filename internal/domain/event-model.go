package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

type ContentBlock struct {
	Kind string `json:"kind"` // text | image | video | link
	Text string `json:"text,omitempty"`
	URL  string `json:"url,omitempty"`
}

type EventStep struct {
	Number   int            `json:"number"`
	Title    string         `json:"title"`
	Required bool           `json:"required"`
	Blocks   []ContentBlock `json:"blocks,omitempty"`
}

type EventSteps []EventStep

func (s EventSteps) Value() (driver.Value, error) { return jsonbValue(s) }
func (s *EventSteps) Scan(v any) error            { return jsonbScan(v, s) }

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type FAQList []FAQ

func (l FAQList) Value() (driver.Value, error) { return jsonbValue(l) }
func (l *FAQList) Scan(v any) error            { return jsonbScan(v, l) }

type StringList []string

func (l StringList) Value() (driver.Value, error) { return jsonbValue(l) }
func (l *StringList) Scan(v any) error            { return jsonbScan(v, l) }

// Event is a time-boxed campaign participants act within. Admin-created,
// read-mostly afterward.
type Event struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	Name           string     `gorm:"not null;index" json:"name"`
	Caption        string     `gorm:"not null" json:"caption"`
	Month          string     `gorm:"not null;index" json:"month"`
	ImageURL       string     `gorm:"not null" json:"imageUrl"`
	ThumbURL       string     `json:"thumbUrl,omitempty"`
	StartsAt       *time.Time `json:"startsAt,omitempty"`
	EndsAt         *time.Time `json:"endsAt,omitempty"`
	Description    string     `gorm:"type:text" json:"description,omitempty"`
	Steps          EventSteps `gorm:"type:jsonb" json:"steps,omitempty"`
	EstimatedTime  string     `json:"estimatedTime,omitempty"`
	VolunteerHours float64    `json:"volunteerHours,omitempty"`
	Checklist      StringList `gorm:"type:jsonb" json:"checklist,omitempty"`
	FAQs           FAQList    `gorm:"type:jsonb" json:"faqs,omitempty"`
	IsActive       bool       `gorm:"default:true" json:"isActive"`
	gorm.Model
}

func jsonbValue(v any) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func jsonbScan(src, dst any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	}
	return errors.New("unsupported jsonb source")
}
