package handler

import (
	"context"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/test309-web/job-platform/internal/config"
	"github.com/test309-web/job-platform/internal/domain"
)

// Repository is the data access surface the handlers depend on. It is
// implemented by *repository.Repository and mocked in tests.
type Repository interface {
	CreateUser(user *domain.User) error
	GetUserByID(id int64) (*domain.User, error)
	GetUserByEmail(email string) (*domain.User, error)
	GetAllUsers() ([]*domain.User, error)

	CreateJob(job *domain.Job) error
	GetJobByID(id int64) (*domain.Job, error)
	ListActiveJobs(search string, page int) ([]*domain.Job, int64, error)
	ListEmployerJobs(employerID int64) ([]*domain.Job, error)
	GetAllJobs() ([]*domain.Job, error)
	UpdateJob(job *domain.Job) error
	DeleteJob(id int64) error

	CreateApplication(application *domain.Application) error
	GetApplicationByID(id int64) (*domain.Application, error)
	ListUserApplications(userID int64) ([]*domain.Application, error)
	ListJobApplications(jobID int64) ([]*domain.Application, error)
	GetAllApplications() ([]*domain.Application, error)
	UpdateApplicationStatus(application *domain.Application) error

	GetDashboardStats() (*domain.DashboardStats, error)
}

// TokenStore keeps revoked token IDs until the tokens would have expired
// anyway.
type TokenStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// MailQueue publishes outgoing mail messages for the mail worker.
type MailQueue interface {
	Publish(ctx context.Context, message domain.MailMessage) error
}

type Handler struct {
	validate   *validator.Validate
	config     *config.Config
	repository Repository
	translator ut.Translator
	tokens     TokenStore
	mailQueue  MailQueue

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo Repository, tokens TokenStore, mailQueue MailQueue) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	en := en.New()
	uni := ut.New(en, en)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:   validate,
		config:     cfg,
		repository: repo,
		translator: trans,
		tokens:     tokens,
		mailQueue:  mailQueue,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Route("/api", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)

		r.Route("/jobs", func(r chi.Router) {
			r.Get("/", h.ListJobs)
			r.With(h.auth, h.RequiredRole([]domain.Role{domain.RoleEmployer})).Post("/", h.CreateJob)
			r.Route("/{jobID}", func(r chi.Router) {
				r.Use(h.jobCtx)
				r.Get("/", h.GetJob)
				r.With(h.auth).Put("/", h.UpdateJob)
				r.With(h.auth).Delete("/", h.DeleteJob)
				r.With(h.auth).Get("/applications", h.JobApplications)
			})
		})

		// everything below requires a valid token
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Post("/logout", h.Logout)

			r.With(h.RequiredRole([]domain.Role{domain.RoleEmployer})).Get("/employer/jobs", h.EmployerJobs)

			r.With(h.RequiredRole([]domain.Role{domain.RoleUser})).Post("/applications", h.Apply)
			r.Get("/my-applications", h.MyApplications)
			r.With(h.applicationCtx).Put("/applications/{applicationID}/status", h.UpdateApplicationStatus)

			r.Route("/admin", func(r chi.Router) {
				r.Use(h.RequiredRole([]domain.Role{domain.RoleAdmin}))
				r.Get("/dashboard", h.Dashboard)
				r.Get("/users", h.AdminUsers)
				r.Post("/users", h.AdminCreateUser)
				r.Get("/jobs", h.AdminJobs)
				r.Get("/applications", h.AdminApplications)
			})
		})
	})
}
