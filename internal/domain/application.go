package domain

import (
	"time"
)

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationAccepted ApplicationStatus = "accepted"
	ApplicationRejected ApplicationStatus = "rejected"
)

type Application struct {
	ID          int64             `json:"id"`
	UserID      int64             `json:"userId"`
	JobID       int64             `json:"jobId"`
	CoverLetter string            `json:"coverLetter"`
	Resume      *string           `json:"resume,omitempty"`
	Status      ApplicationStatus `json:"status"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`

	// User is populated by queries that join the applicant.
	User *User `json:"user,omitempty"`
	// Job is populated by queries that join the job (and its employer).
	Job *Job `json:"job,omitempty"`
}

// IsDecision reports whether s is a status an employer may set on an
// application. Applications start out pending and cannot be moved back.
func (s ApplicationStatus) IsDecision() bool {
	return s == ApplicationAccepted || s == ApplicationRejected
}

// IsTerminal reports whether s is a final decision. A terminal application
// may still be re-decided to the other terminal state: employers are allowed
// to revisit a decision, there is just no way back to pending.
func (s ApplicationStatus) IsTerminal() bool {
	return s != ApplicationPending
}
