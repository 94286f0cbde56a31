package dto

type ApplicationSummary struct {
	UserID      uint   `json:"user_id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Role        string `json:"role"`
	Status      string `json:"status"`
	SubmittedAt string `json:"submitted_at"`

	// set for participant rows, which come from event submissions
	SubmissionID *uint `json:"submission_id,omitempty"`
	EventID      *uint `json:"event_id,omitempty"`
}

type ApplicationDetail struct {
	User    UserProfile `json:"user"`
	Vetting any         `json:"vetting,omitempty"`

	// participant applications are reviewed per activity submission
	Submission *SubmissionDetail `json:"submission,omitempty"`
}

type SetApplicationStatusRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes,omitempty"`
}

type ReviewSubmissionRequest struct {
	Status  string `json:"status"`
	Comment string `json:"comment,omitempty"`

	// nil means "use the event's volunteer hours"; an explicit 0 is kept
	HoursAwarded  *float64 `json:"hoursAwarded,omitempty"`
	PointsAwarded int      `json:"pointsAwarded,omitempty"`
}

type SubmissionSummary struct {
	ID          uint   `json:"id"`
	UserID      uint   `json:"user_id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	EventID     uint   `json:"event_id"`
	EventName   string `json:"event_name"`
	StepNumber  int    `json:"step_number"`
	Status      string `json:"status"`
	SubmittedAt string `json:"submitted_at"`
}

type SubmissionDetail struct {
	ID            uint     `json:"id"`
	UserID        uint     `json:"user_id"`
	EventID       uint     `json:"event_id"`
	EventName     string   `json:"event_name,omitempty"`
	EventCaption  string   `json:"event_caption,omitempty"`
	StepNumber    int      `json:"step_number"`
	Media         any      `json:"media,omitempty"`
	SocialLink    string   `json:"social_link,omitempty"`
	Experience    string   `json:"experience"`
	Status        string   `json:"status"`
	ReviewedBy    *uint    `json:"reviewed_by,omitempty"`
	ReviewComment string   `json:"review_comment,omitempty"`
	ReviewedAt    *string  `json:"reviewed_at,omitempty"`
	HoursAwarded  float64  `json:"hours_awarded"`
	PointsAwarded int      `json:"points_awarded"`
	Visibility    string   `json:"visibility"`
	Tags          []string `json:"tags,omitempty"`
	SubmittedAt   string   `json:"submitted_at"`
}
