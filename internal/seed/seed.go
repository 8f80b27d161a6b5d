package seed

import (
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/test309-web/job-platform/internal/domain"
	"github.com/test309-web/job-platform/internal/repository"
	"github.com/test309-web/job-platform/internal/utils"
)

// SeedCuratedJobs imports the curated demo jobs from the bundled CSV file
// and assigns each to a freshly created employer account.
//
// CSV columns: title, company, location, description, requirements, salary,
// employment_type, category.
func SeedCuratedJobs(r *repository.Repository, password string) {
	file, err := os.Open("./internal/seed/data/jobs.csv")
	if err != nil {
		slog.Error("unable to open the seed file", "error", err)
		return
	}
	defer file.Close()

	reader := csv.NewReader(file)

	// skip the header row
	if _, err := reader.Read(); err != nil {
		slog.Error("unable to read the seed file header", "error", err)
		return
	}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			slog.Error("unable to read a seed record", "error", err)
			return
		}
		if len(record) != 8 {
			slog.Error("unexpected number of columns in seed record", "columns", len(record))
			return
		}

		employer, err := utils.GenerateRandomUser(domain.RoleEmployer, password)
		if err != nil {
			slog.Error("unable to generate an employer", "error", err)
			return
		}
		employer.CompanyName = &record[1]
		if err := r.CreateUser(employer); err != nil {
			slog.Error("unable to insert an employer", "error", err)
			return
		}

		job := &domain.Job{
			Title:       record[0],
			Company:     record[1],
			Location:    record[2],
			Description: record[3],
			EmployerID:  employer.ID,
			IsActive:    true,
		}
		if record[4] != "" {
			job.Requirements = &record[4]
		}
		if record[5] != "" {
			job.Salary = &record[5]
		}
		if record[6] != "" {
			job.EmploymentType = &record[6]
		}
		if record[7] != "" {
			job.Category = &record[7]
		}

		if err := r.CreateJob(job); err != nil {
			slog.Error("unable to insert a job", "error", err)
			return
		}

		slog.Info("seeded job", "title", job.Title, "company", job.Company)
	}
}
