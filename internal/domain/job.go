package domain

import (
	"time"
)

type Job struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Company        string    `json:"company"`
	Location       string    `json:"location"`
	Description    string    `json:"description"`
	Requirements   *string   `json:"requirements,omitempty"`
	Salary         *string   `json:"salary,omitempty"`
	EmploymentType *string   `json:"employmentType,omitempty"`
	Category       *string   `json:"category,omitempty"`
	EmployerID     int64     `json:"employerId"`
	IsActive       bool      `json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`

	// Employer is populated by queries that join the owning user.
	Employer *User `json:"employer,omitempty"`
	// ApplicationsCount is populated by the employer job listing only.
	ApplicationsCount *int64 `json:"applicationsCount,omitempty"`
}

// ManagedBy reports whether the given caller may mutate this job or act on
// its applications: the owning employer or an admin.
func (j *Job) ManagedBy(userID int64, role Role) bool {
	return j.EmployerID == userID || role == RoleAdmin
}
