package handler_test

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/test309-web/job-platform/internal/domain"
)

func TestApplyForbiddenForEmployer(t *testing.T) {
	h, _, _, _ := newTestHandler(t)

	body := `{"jobId":5,"coverLetter":"I would like to apply."}`
	rec := doRequest(t, h, http.MethodPost, "/api/applications", tokenFor(t, 7, domain.RoleEmployer), body)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestApplyJobNotFound(t *testing.T) {
	h, repo, _, _ := newTestHandler(t)

	repo.On("GetJobByID", int64(5)).Return(nil, sql.ErrNoRows)

	body := `{"jobId":5,"coverLetter":"I would like to apply."}`
	rec := doRequest(t, h, http.MethodPost, "/api/applications", tokenFor(t, 9, domain.RoleUser), body)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "Job not found", env.Message)
}

func TestApply(t *testing.T) {
	h, repo, _, _ := newTestHandler(t)

	repo.On("GetJobByID", int64(5)).Return(&domain.Job{ID: 5, EmployerID: 7, IsActive: true}, nil)
	repo.On("CreateApplication", mock.AnythingOfType("*domain.Application")).Run(func(args mock.Arguments) {
		application := args.Get(0).(*domain.Application)
		application.ID = 1
		application.Status = domain.ApplicationPending
	}).Return(nil)

	body := `{"jobId":5,"coverLetter":"I would like to apply."}`
	rec := doRequest(t, h, http.MethodPost, "/api/applications", tokenFor(t, 9, domain.RoleUser), body)

	require.Equal(t, http.StatusCreated, rec.Code)
	env := decodeEnvelope(t, rec)

	var application domain.Application
	require.NoError(t, json.Unmarshal(env.Data, &application))
	assert.Equal(t, int64(9), application.UserID)
	assert.Equal(t, int64(5), application.JobID)
	assert.Equal(t, domain.ApplicationPending, application.Status)

	repo.AssertExpectations(t)
}

func TestApplyTwiceConflicts(t *testing.T) {
	h, repo, _, _ := newTestHandler(t)

	repo.On("GetJobByID", int64(5)).Return(&domain.Job{ID: 5, EmployerID: 7, IsActive: true}, nil)
	repo.On("CreateApplication", mock.AnythingOfType("*domain.Application")).Return(&pgconn.PgError{
		Code:           "23505",
		ConstraintName: "applications_user_id_job_id_key",
	})

	body := `{"jobId":5,"coverLetter":"I would like to apply."}`
	rec := doRequest(t, h, http.MethodPost, "/api/applications", tokenFor(t, 9, domain.RoleUser), body)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "You have already applied for this job", env.Message)
}

func TestMyApplications(t *testing.T) {
	h, repo, _, _ := newTestHandler(t)

	repo.On("ListUserApplications", int64(9)).Return([]*domain.Application{
		{ID: 2, UserID: 9, JobID: 5, Status: domain.ApplicationPending},
	}, nil)

	rec := doRequest(t, h, http.MethodGet, "/api/my-applications", tokenFor(t, 9, domain.RoleUser), "")

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)

	var applications []*domain.Application
	require.NoError(t, json.Unmarshal(env.Data, &applications))
	assert.Len(t, applications, 1)
}

func TestJobApplicationsByOwner(t *testing.T) {
	h, repo, _, _ := newTestHandler(t)

	repo.On("GetJobByID", int64(5)).Return(&domain.Job{ID: 5, EmployerID: 7}, nil)
	repo.On("ListJobApplications", int64(5)).Return([]*domain.Application{
		{ID: 2, UserID: 9, JobID: 5, Status: domain.ApplicationPending},
	}, nil)

	rec := doRequest(t, h, http.MethodGet, "/api/jobs/5/applications", tokenFor(t, 7, domain.RoleEmployer), "")

	assert.Equal(t, http.StatusOK, rec.Code)
	repo.AssertExpectations(t)
}

func TestJobApplicationsByStranger(t *testing.T) {
	h, repo, _, _ := newTestHandler(t)

	repo.On("GetJobByID", int64(5)).Return(&domain.Job{ID: 5, EmployerID: 7}, nil)

	rec := doRequest(t, h, http.MethodGet, "/api/jobs/5/applications", tokenFor(t, 8, domain.RoleUser), "")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	repo.AssertNotCalled(t, "ListJobApplications", mock.Anything)
}

func TestUpdateApplicationStatusByOwner(t *testing.T) {
	h, repo, _, mailQueue := newTestHandler(t)

	repo.On("GetApplicationByID", int64(3)).Return(&domain.Application{
		ID:     3,
		UserID: 9,
		JobID:  5,
		Status: domain.ApplicationPending,
		Job:    &domain.Job{ID: 5, Title: "Backend Engineer", Company: "Acme", EmployerID: 7},
	}, nil)
	repo.On("UpdateApplicationStatus", mock.AnythingOfType("*domain.Application")).Return(nil)
	repo.On("GetUserByID", int64(9)).Return(&domain.User{ID: 9, Name: "Alice", Email: "alice@example.com", Role: domain.RoleUser}, nil)

	rec := doRequest(t, h, http.MethodPut, "/api/applications/3/status", tokenFor(t, 7, domain.RoleEmployer), `{"status":"accepted"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)

	var application domain.Application
	require.NoError(t, json.Unmarshal(env.Data, &application))
	assert.Equal(t, domain.ApplicationAccepted, application.Status)

	require.Len(t, mailQueue.published, 1)
	assert.Equal(t, "application_status", mailQueue.published[0].Type)
	assert.Equal(t, "alice@example.com", mailQueue.published[0].To)

	repo.AssertExpectations(t)
}

func TestUpdateApplicationStatusByStranger(t *testing.T) {
	h, repo, _, _ := newTestHandler(t)

	repo.On("GetApplicationByID", int64(3)).Return(&domain.Application{
		ID:     3,
		UserID: 9,
		JobID:  5,
		Status: domain.ApplicationPending,
		Job:    &domain.Job{ID: 5, EmployerID: 7},
	}, nil)

	rec := doRequest(t, h, http.MethodPut, "/api/applications/3/status", tokenFor(t, 8, domain.RoleUser), `{"status":"accepted"}`)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	repo.AssertNotCalled(t, "UpdateApplicationStatus", mock.Anything)
}

func TestUpdateApplicationStatusRejectsPending(t *testing.T) {
	h, repo, _, _ := newTestHandler(t)

	repo.On("GetApplicationByID", int64(3)).Return(&domain.Application{
		ID:     3,
		UserID: 9,
		JobID:  5,
		Status: domain.ApplicationAccepted,
		Job:    &domain.Job{ID: 5, EmployerID: 7},
	}, nil)

	rec := doRequest(t, h, http.MethodPut, "/api/applications/3/status", tokenFor(t, 7, domain.RoleEmployer), `{"status":"pending"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	repo.AssertNotCalled(t, "UpdateApplicationStatus", mock.Anything)
}

// A decided application may be re-decided to the other terminal state.
func TestUpdateApplicationStatusReDecision(t *testing.T) {
	h, repo, _, _ := newTestHandler(t)

	repo.On("GetApplicationByID", int64(3)).Return(&domain.Application{
		ID:     3,
		UserID: 9,
		JobID:  5,
		Status: domain.ApplicationAccepted,
		Job:    &domain.Job{ID: 5, Title: "Backend Engineer", Company: "Acme", EmployerID: 7},
	}, nil)
	repo.On("UpdateApplicationStatus", mock.AnythingOfType("*domain.Application")).Return(nil)
	repo.On("GetUserByID", int64(9)).Return(&domain.User{ID: 9, Name: "Alice", Email: "alice@example.com", Role: domain.RoleUser}, nil)

	rec := doRequest(t, h, http.MethodPut, "/api/applications/3/status", tokenFor(t, 7, domain.RoleEmployer), `{"status":"rejected"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)

	var application domain.Application
	require.NoError(t, json.Unmarshal(env.Data, &application))
	assert.Equal(t, domain.ApplicationRejected, application.Status)
}

func TestUpdateApplicationStatusNotFound(t *testing.T) {
	h, repo, _, _ := newTestHandler(t)

	repo.On("GetApplicationByID", int64(3)).Return(nil, sql.ErrNoRows)

	rec := doRequest(t, h, http.MethodPut, "/api/applications/3/status", tokenFor(t, 7, domain.RoleEmployer), `{"status":"accepted"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
