package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/test309-web/job-platform/internal/config"
	"github.com/test309-web/job-platform/internal/domain"
	"github.com/test309-web/job-platform/internal/repository"
	"github.com/test309-web/job-platform/internal/seed"
	"github.com/test309-web/job-platform/internal/utils"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int
	var employerID int64
	var jobID int64

	flag.IntVar(&op, "op", 0, "operation to run (1: insert random employers, 2: insert random job seekers, 3: insert random jobs, 4: insert random applications, 5: import curated jobs)")
	flag.IntVar(&n, "n", 5, "number of records to insert")
	flag.Int64Var(&employerID, "employer-id", 0, "employer to own the random jobs (0 picks one at random per job)")
	flag.Int64Var(&jobID, "job-id", 0, "job to attach the random applications to (0 picks one at random per application)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("unable to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("unable to create database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbpool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("unable to connect to the database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repo := repository.NewRepository(cfg, dbpool)

	if err := repo.Migrate(ctx); err != nil {
		logger.Error("unable to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	switch op {
	case 1:
		insertRandomUsers(repo, cfg, domain.RoleEmployer, n)
	case 2:
		insertRandomUsers(repo, cfg, domain.RoleUser, n)
	case 3:
		insertRandomJobs(repo, employerID, n)
	case 4:
		insertRandomApplications(repo, jobID, n)
	case 5:
		seed.SeedCuratedJobs(repo, cfg.Seed.Password)
	default:
		flag.Usage()
		os.Exit(1)
	}
}

func insertRandomUsers(repo *repository.Repository, cfg *config.Config, role domain.Role, n int) {
	for i := 0; i < n; i++ {
		user, err := utils.GenerateRandomUser(role, cfg.Seed.Password)
		if err != nil {
			slog.Error("unable to generate a user", "error", err)
			return
		}
		if err := repo.CreateUser(user); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.ConstraintName == "users_email_key" {
				// generated email collided, try again
				i--
				continue
			}
			slog.Error("unable to insert a user", "error", err)
			return
		}
		slog.Info("seeded user", "id", user.ID, "email", user.Email, "role", user.Role)
	}
}

func insertRandomJobs(repo *repository.Repository, employerID int64, n int) {
	employers := pickUsers(repo, domain.RoleEmployer, employerID)
	if len(employers) == 0 {
		slog.Error("no employers available, seed employers first")
		return
	}

	for i := 0; i < n; i++ {
		employer := employers[rand.Intn(len(employers))]
		job := utils.GenerateRandomJob(employer)
		if err := repo.CreateJob(job); err != nil {
			slog.Error("unable to insert a job", "error", err)
			return
		}
		slog.Info("seeded job", "id", job.ID, "title", job.Title, "employer", employer.Email)
	}
}

func insertRandomApplications(repo *repository.Repository, jobID int64, n int) {
	applicants := pickUsers(repo, domain.RoleUser, 0)
	if len(applicants) == 0 {
		slog.Error("no job seekers available, seed job seekers first")
		return
	}

	jobs, err := repo.GetAllJobs()
	if err != nil {
		slog.Error("unable to list jobs", "error", err)
		return
	}
	if jobID != 0 {
		jobs = nil
		job, err := repo.GetJobByID(jobID)
		if err != nil {
			slog.Error("unable to load the job", "error", err)
			return
		}
		jobs = append(jobs, job)
	}
	if len(jobs) == 0 {
		slog.Error("no jobs available, seed jobs first")
		return
	}

	for i := 0; i < n; i++ {
		applicant := applicants[rand.Intn(len(applicants))]
		job := jobs[rand.Intn(len(jobs))]
		application := utils.GenerateRandomApplication(applicant.ID, job.ID)
		if err := repo.CreateApplication(application); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.ConstraintName == "applications_user_id_job_id_key" {
				// this applicant already applied to this job, try another pair
				i--
				continue
			}
			slog.Error("unable to insert an application", "error", err)
			return
		}
		slog.Info("seeded application", "id", application.ID, "job", job.Title, "applicant", applicant.Email)
	}
}

func pickUsers(repo *repository.Repository, role domain.Role, onlyID int64) []*domain.User {
	if onlyID != 0 {
		user, err := repo.GetUserByID(onlyID)
		if err != nil {
			slog.Error("unable to load the user", "error", err)
			return nil
		}
		return []*domain.User{user}
	}

	users, err := repo.GetAllUsers()
	if err != nil {
		slog.Error("unable to list users", "error", err)
		return nil
	}

	picked := make([]*domain.User, 0, len(users))
	for _, user := range users {
		if user.Role == role {
			picked = append(picked, user)
		}
	}
	return picked
}
