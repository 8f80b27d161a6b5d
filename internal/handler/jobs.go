package handler

import (
	"net/http"

	"github.com/test309-web/job-platform/internal/domain"
)

func (h *Handler) ListJobs(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	page := parsePage(r)

	jobs, total, err := h.repository.ListActiveJobs(search, page)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "Jobs retrieved successfully", paginateJobs(jobs, page, total))
}

func (h *Handler) GetJob(w http.ResponseWriter, r *http.Request) {
	job := r.Context().Value(JobCtx).(*domain.Job)
	h.successResponse(w, r, "Job retrieved successfully", job)
}

func (h *Handler) CreateJob(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title          string  `json:"title" validate:"required,max=255"`
		Company        string  `json:"company" validate:"required,max=255"`
		Location       string  `json:"location" validate:"required,max=255"`
		Description    string  `json:"description" validate:"required"`
		Requirements   *string `json:"requirements"`
		Salary         *string `json:"salary" validate:"omitempty,max=100"`
		EmploymentType *string `json:"employmentType" validate:"omitempty,max=100"`
		Category       *string `json:"category" validate:"omitempty,max=100"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.unprocessable(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.unprocessable(w, r, err)
		return
	}

	// the owner is always the caller and new jobs are always active,
	// whatever the request says
	job := &domain.Job{
		Title:          req.Title,
		Company:        req.Company,
		Location:       req.Location,
		Description:    req.Description,
		Requirements:   req.Requirements,
		Salary:         req.Salary,
		EmploymentType: req.EmploymentType,
		Category:       req.Category,
		EmployerID:     r.Context().Value(UserIDCtxKey).(int64),
		IsActive:       true,
	}

	if err := h.repository.CreateJob(job); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.createdResponse(w, r, "Job created successfully", job)
}

func (h *Handler) UpdateJob(w http.ResponseWriter, r *http.Request) {
	job := r.Context().Value(JobCtx).(*domain.Job)
	userID := r.Context().Value(UserIDCtxKey).(int64)
	role := r.Context().Value(RoleCtxKey).(domain.Role)

	if !job.ManagedBy(userID, role) {
		h.forbidden(w, r, "You are not allowed to manage this job")
		return
	}

	var req struct {
		Title          string  `json:"title" validate:"required,max=255"`
		Company        string  `json:"company" validate:"required,max=255"`
		Location       string  `json:"location" validate:"required,max=255"`
		Description    string  `json:"description" validate:"required"`
		Requirements   *string `json:"requirements"`
		Salary         *string `json:"salary" validate:"omitempty,max=100"`
		EmploymentType *string `json:"employmentType" validate:"omitempty,max=100"`
		Category       *string `json:"category" validate:"omitempty,max=100"`
		IsActive       *bool   `json:"isActive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.unprocessable(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.unprocessable(w, r, err)
		return
	}

	job.Title = req.Title
	job.Company = req.Company
	job.Location = req.Location
	job.Description = req.Description
	if req.Requirements != nil {
		job.Requirements = req.Requirements
	}
	if req.Salary != nil {
		job.Salary = req.Salary
	}
	if req.EmploymentType != nil {
		job.EmploymentType = req.EmploymentType
	}
	if req.Category != nil {
		job.Category = req.Category
	}
	if req.IsActive != nil {
		job.IsActive = *req.IsActive
	}

	if err := h.repository.UpdateJob(job); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "Job updated successfully", job)
}

func (h *Handler) DeleteJob(w http.ResponseWriter, r *http.Request) {
	job := r.Context().Value(JobCtx).(*domain.Job)
	userID := r.Context().Value(UserIDCtxKey).(int64)
	role := r.Context().Value(RoleCtxKey).(domain.Role)

	if !job.ManagedBy(userID, role) {
		h.forbidden(w, r, "You are not allowed to manage this job")
		return
	}

	// hard delete; applications go with the job via ON DELETE CASCADE
	if err := h.repository.DeleteJob(job.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "Job deleted successfully", nil)
}

func (h *Handler) EmployerJobs(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(UserIDCtxKey).(int64)

	jobs, err := h.repository.ListEmployerJobs(userID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "Jobs retrieved successfully", jobs)
}
