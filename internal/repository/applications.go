package repository

import (
	"github.com/test309-web/job-platform/internal/domain"
)

// CreateApplication inserts the application with status pending. A duplicate
// (user, job) pair surfaces as a unique-constraint violation from the
// database, which is the authoritative duplicate-application signal.
func (r *Repository) CreateApplication(application *domain.Application) error {
	query := `
		INSERT INTO applications (user_id, job_id, cover_letter, resume)
		VALUES ($1, $2, $3, $4)
		RETURNING id, status, created_at, updated_at
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	args := []any{application.UserID, application.JobID, application.CoverLetter, application.Resume}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&application.ID, &application.Status, &application.CreatedAt, &application.UpdatedAt); err != nil {
		return err
	}

	return nil
}

// GetApplicationByID returns the application with its job joined, so that
// callers can check ownership of the job before acting on the application.
func (r *Repository) GetApplicationByID(id int64) (*domain.Application, error) {
	query := `
		SELECT a.user_id, a.job_id, a.cover_letter, a.resume, a.status, a.created_at, a.updated_at,
		       j.title, j.company, j.location, j.description, j.employer_id, j.is_active, j.created_at, j.updated_at
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		WHERE a.id = $1
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	application := &domain.Application{
		ID:  id,
		Job: &domain.Job{},
	}

	dst := []any{
		&application.UserID, &application.JobID, &application.CoverLetter, &application.Resume, &application.Status, &application.CreatedAt, &application.UpdatedAt,
		&application.Job.Title, &application.Job.Company, &application.Job.Location, &application.Job.Description,
		&application.Job.EmployerID, &application.Job.IsActive, &application.Job.CreatedAt, &application.Job.UpdatedAt,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}
	application.Job.ID = application.JobID

	return application, nil
}

// ListUserApplications returns the caller's applications, newest first, with
// the job and the job's employer joined.
func (r *Repository) ListUserApplications(userID int64) ([]*domain.Application, error) {
	query := `
		SELECT a.id, a.job_id, a.cover_letter, a.resume, a.status, a.created_at, a.updated_at,
		       j.title, j.company, j.location, j.description, j.employer_id, j.is_active, j.created_at, j.updated_at,
		       u.name, u.email, u.role, u.company_name, u.created_at, u.updated_at
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		JOIN users u ON u.id = j.employer_id
		WHERE a.user_id = $1
		ORDER BY a.created_at DESC, a.id DESC
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applications := make([]*domain.Application, 0)
	for rows.Next() {
		application := &domain.Application{
			UserID: userID,
			Job: &domain.Job{
				Employer: &domain.User{},
			},
		}
		dst := []any{
			&application.ID, &application.JobID, &application.CoverLetter, &application.Resume, &application.Status, &application.CreatedAt, &application.UpdatedAt,
			&application.Job.Title, &application.Job.Company, &application.Job.Location, &application.Job.Description,
			&application.Job.EmployerID, &application.Job.IsActive, &application.Job.CreatedAt, &application.Job.UpdatedAt,
			&application.Job.Employer.Name, &application.Job.Employer.Email, &application.Job.Employer.Role, &application.Job.Employer.CompanyName,
			&application.Job.Employer.CreatedAt, &application.Job.Employer.UpdatedAt,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		application.Job.ID = application.JobID
		application.Job.Employer.ID = application.Job.EmployerID
		applications = append(applications, application)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return applications, nil
}

// ListJobApplications returns all applications for one job, newest first,
// with the applicant joined.
func (r *Repository) ListJobApplications(jobID int64) ([]*domain.Application, error) {
	query := `
		SELECT a.id, a.user_id, a.cover_letter, a.resume, a.status, a.created_at, a.updated_at,
		       u.name, u.email, u.role, u.company_name, u.created_at, u.updated_at
		FROM applications a
		JOIN users u ON u.id = a.user_id
		WHERE a.job_id = $1
		ORDER BY a.created_at DESC, a.id DESC
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applications := make([]*domain.Application, 0)
	for rows.Next() {
		application := &domain.Application{
			JobID: jobID,
			User:  &domain.User{},
		}
		dst := []any{
			&application.ID, &application.UserID, &application.CoverLetter, &application.Resume, &application.Status, &application.CreatedAt, &application.UpdatedAt,
			&application.User.Name, &application.User.Email, &application.User.Role, &application.User.CompanyName,
			&application.User.CreatedAt, &application.User.UpdatedAt,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		application.User.ID = application.UserID
		applications = append(applications, application)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return applications, nil
}

func (r *Repository) GetAllApplications() ([]*domain.Application, error) {
	query := `
		SELECT a.id, a.user_id, a.job_id, a.cover_letter, a.resume, a.status, a.created_at, a.updated_at,
		       au.name, au.email, au.role, au.company_name, au.created_at, au.updated_at,
		       j.title, j.company, j.location, j.description, j.employer_id, j.is_active, j.created_at, j.updated_at,
		       eu.name, eu.email, eu.role, eu.company_name, eu.created_at, eu.updated_at
		FROM applications a
		JOIN users au ON au.id = a.user_id
		JOIN jobs j ON j.id = a.job_id
		JOIN users eu ON eu.id = j.employer_id
		ORDER BY a.created_at DESC, a.id DESC
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applications := make([]*domain.Application, 0)
	for rows.Next() {
		application := &domain.Application{
			User: &domain.User{},
			Job: &domain.Job{
				Employer: &domain.User{},
			},
		}
		dst := []any{
			&application.ID, &application.UserID, &application.JobID, &application.CoverLetter, &application.Resume, &application.Status, &application.CreatedAt, &application.UpdatedAt,
			&application.User.Name, &application.User.Email, &application.User.Role, &application.User.CompanyName,
			&application.User.CreatedAt, &application.User.UpdatedAt,
			&application.Job.Title, &application.Job.Company, &application.Job.Location, &application.Job.Description,
			&application.Job.EmployerID, &application.Job.IsActive, &application.Job.CreatedAt, &application.Job.UpdatedAt,
			&application.Job.Employer.Name, &application.Job.Employer.Email, &application.Job.Employer.Role, &application.Job.Employer.CompanyName,
			&application.Job.Employer.CreatedAt, &application.Job.Employer.UpdatedAt,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		application.User.ID = application.UserID
		application.Job.ID = application.JobID
		application.Job.Employer.ID = application.Job.EmployerID
		applications = append(applications, application)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return applications, nil
}

func (r *Repository) UpdateApplicationStatus(application *domain.Application) error {
	query := `
		UPDATE applications
		SET status = $1, updated_at = now()
		WHERE id = $2
		RETURNING updated_at
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	if err := r.dbpool.QueryRowContext(ctx, query, application.Status, application.ID).Scan(&application.UpdatedAt); err != nil {
		return err
	}

	return nil
}
