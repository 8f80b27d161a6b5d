package repository

import (
	"github.com/test309-web/job-platform/internal/domain"
)

// JobsPerPage is the fixed page size of the public job listing.
const JobsPerPage = 10

func (r *Repository) CreateJob(job *domain.Job) error {
	query := `
		INSERT INTO jobs (title, company, location, description, requirements, salary, employment_type, category, employer_id, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	args := []any{job.Title, job.Company, job.Location, job.Description, job.Requirements, job.Salary, job.EmploymentType, job.Category, job.EmployerID, job.IsActive}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&job.ID, &job.CreatedAt, &job.UpdatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetJobByID(id int64) (*domain.Job, error) {
	query := `
		SELECT j.title, j.company, j.location, j.description, j.requirements, j.salary, j.employment_type, j.category,
		       j.employer_id, j.is_active, j.created_at, j.updated_at,
		       u.name, u.email, u.role, u.company_name, u.created_at, u.updated_at
		FROM jobs j
		JOIN users u ON u.id = j.employer_id
		WHERE j.id = $1
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	job := &domain.Job{
		ID:       id,
		Employer: &domain.User{},
	}

	dst := []any{
		&job.Title, &job.Company, &job.Location, &job.Description, &job.Requirements, &job.Salary, &job.EmploymentType, &job.Category,
		&job.EmployerID, &job.IsActive, &job.CreatedAt, &job.UpdatedAt,
		&job.Employer.Name, &job.Employer.Email, &job.Employer.Role, &job.Employer.CompanyName, &job.Employer.CreatedAt, &job.Employer.UpdatedAt,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}
	job.Employer.ID = job.EmployerID

	return job, nil
}

// ListActiveJobs returns one page of active jobs, newest first, together with
// the total number of matching rows. An empty search term matches everything;
// a non-empty one is matched case-insensitively as a substring of the title,
// company, location or description.
func (r *Repository) ListActiveJobs(search string, page int) ([]*domain.Job, int64, error) {
	countQuery := `
		SELECT COUNT(*) FROM jobs
		WHERE is_active = TRUE
		  AND ($1 = '' OR title ILIKE '%' || $1 || '%' OR company ILIKE '%' || $1 || '%' OR location ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')
	`
	query := `
		SELECT j.id, j.title, j.company, j.location, j.description, j.requirements, j.salary, j.employment_type, j.category,
		       j.employer_id, j.is_active, j.created_at, j.updated_at,
		       u.name, u.email, u.role, u.company_name, u.created_at, u.updated_at
		FROM jobs j
		JOIN users u ON u.id = j.employer_id
		WHERE j.is_active = TRUE
		  AND ($1 = '' OR j.title ILIKE '%' || $1 || '%' OR j.company ILIKE '%' || $1 || '%' OR j.location ILIKE '%' || $1 || '%' OR j.description ILIKE '%' || $1 || '%')
		ORDER BY j.created_at DESC, j.id DESC
		LIMIT $2 OFFSET $3
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	var total int64
	if err := r.dbpool.QueryRowContext(ctx, countQuery, search).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.dbpool.QueryContext(ctx, query, search, JobsPerPage, (page-1)*JobsPerPage)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	jobs := make([]*domain.Job, 0)
	for rows.Next() {
		job := &domain.Job{
			Employer: &domain.User{},
		}
		dst := []any{
			&job.ID, &job.Title, &job.Company, &job.Location, &job.Description, &job.Requirements, &job.Salary, &job.EmploymentType, &job.Category,
			&job.EmployerID, &job.IsActive, &job.CreatedAt, &job.UpdatedAt,
			&job.Employer.Name, &job.Employer.Email, &job.Employer.Role, &job.Employer.CompanyName, &job.Employer.CreatedAt, &job.Employer.UpdatedAt,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, 0, err
		}
		job.Employer.ID = job.EmployerID
		jobs = append(jobs, job)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

// ListEmployerJobs returns all jobs owned by the given employer, newest
// first, each carrying its application count.
func (r *Repository) ListEmployerJobs(employerID int64) ([]*domain.Job, error) {
	query := `
		SELECT j.id, j.title, j.company, j.location, j.description, j.requirements, j.salary, j.employment_type, j.category,
		       j.employer_id, j.is_active, j.created_at, j.updated_at,
		       COUNT(a.id)
		FROM jobs j
		LEFT JOIN applications a ON a.job_id = j.id
		WHERE j.employer_id = $1
		GROUP BY j.id
		ORDER BY j.created_at DESC, j.id DESC
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, employerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := make([]*domain.Job, 0)
	for rows.Next() {
		job := &domain.Job{}
		var count int64
		dst := []any{
			&job.ID, &job.Title, &job.Company, &job.Location, &job.Description, &job.Requirements, &job.Salary, &job.EmploymentType, &job.Category,
			&job.EmployerID, &job.IsActive, &job.CreatedAt, &job.UpdatedAt,
			&count,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		job.ApplicationsCount = &count
		jobs = append(jobs, job)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return jobs, nil
}

func (r *Repository) GetAllJobs() ([]*domain.Job, error) {
	query := `
		SELECT j.id, j.title, j.company, j.location, j.description, j.requirements, j.salary, j.employment_type, j.category,
		       j.employer_id, j.is_active, j.created_at, j.updated_at,
		       u.name, u.email, u.role, u.company_name, u.created_at, u.updated_at
		FROM jobs j
		JOIN users u ON u.id = j.employer_id
		ORDER BY j.created_at DESC, j.id DESC
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := make([]*domain.Job, 0)
	for rows.Next() {
		job := &domain.Job{
			Employer: &domain.User{},
		}
		dst := []any{
			&job.ID, &job.Title, &job.Company, &job.Location, &job.Description, &job.Requirements, &job.Salary, &job.EmploymentType, &job.Category,
			&job.EmployerID, &job.IsActive, &job.CreatedAt, &job.UpdatedAt,
			&job.Employer.Name, &job.Employer.Email, &job.Employer.Role, &job.Employer.CompanyName, &job.Employer.CreatedAt, &job.Employer.UpdatedAt,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		job.Employer.ID = job.EmployerID
		jobs = append(jobs, job)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return jobs, nil
}

func (r *Repository) UpdateJob(job *domain.Job) error {
	query := `
		UPDATE jobs
		SET
			title = $1,
			company = $2,
			location = $3,
			description = $4,
			requirements = $5,
			salary = $6,
			employment_type = $7,
			category = $8,
			is_active = $9,
			updated_at = now()
		WHERE id = $10
		RETURNING updated_at
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	args := []any{job.Title, job.Company, job.Location, job.Description, job.Requirements, job.Salary, job.EmploymentType, job.Category, job.IsActive, job.ID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&job.UpdatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteJob(id int64) error {
	query := `
		DELETE FROM jobs WHERE id = $1
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
