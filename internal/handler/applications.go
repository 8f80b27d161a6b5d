package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/test309-web/job-platform/internal/domain"
)

func (h *Handler) Apply(w http.ResponseWriter, r *http.Request) {
	var req struct {
		JobID       int64   `json:"jobId" validate:"required"`
		CoverLetter string  `json:"coverLetter" validate:"required"`
		Resume      *string `json:"resume"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.unprocessable(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.unprocessable(w, r, err)
		return
	}

	if _, err := h.repository.GetJobByID(req.JobID); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "Job not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	application := &domain.Application{
		UserID:      r.Context().Value(UserIDCtxKey).(int64),
		JobID:       req.JobID,
		CoverLetter: req.CoverLetter,
		Resume:      req.Resume,
	}

	// the unique constraint on (user_id, job_id) is the source of truth for
	// duplicates, a prior existence check would race with concurrent applies
	if err := h.repository.CreateApplication(application); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "applications_user_id_job_id_key":
			h.unprocessable(w, r, errors.New("You have already applied for this job"))
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.createdResponse(w, r, "Application submitted successfully", application)
}

func (h *Handler) MyApplications(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(UserIDCtxKey).(int64)

	applications, err := h.repository.ListUserApplications(userID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "Applications retrieved successfully", applications)
}

func (h *Handler) JobApplications(w http.ResponseWriter, r *http.Request) {
	job := r.Context().Value(JobCtx).(*domain.Job)
	userID := r.Context().Value(UserIDCtxKey).(int64)
	role := r.Context().Value(RoleCtxKey).(domain.Role)

	if !job.ManagedBy(userID, role) {
		h.forbidden(w, r, "You are not allowed to manage this job")
		return
	}

	applications, err := h.repository.ListJobApplications(job.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "Applications retrieved successfully", applications)
}

// UpdateApplicationStatus accepts or rejects an application. An application
// that already has a decision can still be moved to the other decision (a
// re-review), but never back to pending.
func (h *Handler) UpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	application := r.Context().Value(ApplicationCtx).(*domain.Application)
	userID := r.Context().Value(UserIDCtxKey).(int64)
	role := r.Context().Value(RoleCtxKey).(domain.Role)

	if !application.Job.ManagedBy(userID, role) {
		h.forbidden(w, r, "You are not allowed to manage applications for this job")
		return
	}

	var req struct {
		Status string `json:"status" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.unprocessable(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.unprocessable(w, r, err)
		return
	}

	status := domain.ApplicationStatus(req.Status)
	if !status.IsDecision() {
		h.unprocessable(w, r, errors.New("Status must be accepted or rejected"))
		return
	}

	application.Status = status

	if err := h.repository.UpdateApplicationStatus(application); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	applicant, err := h.repository.GetUserByID(application.UserID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	mailMessage := domain.MailMessage{
		Type: "application_status",
		To:   applicant.Email,
		Data: domain.ApplicationStatusMailData{
			Name:     applicant.Name,
			JobTitle: application.Job.Title,
			Company:  application.Job.Company,
			Status:   string(application.Status),
		},
	}

	if err := h.mailQueue.Publish(r.Context(), mailMessage); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "Application status updated successfully", application)
}
