package handler

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/test309-web/job-platform/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.repository.GetDashboardStats()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "Dashboard stats retrieved successfully", stats)
}

func (h *Handler) AdminUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.repository.GetAllUsers()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "Users retrieved successfully", users)
}

func (h *Handler) AdminJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.repository.GetAllJobs()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "Jobs retrieved successfully", jobs)
}

func (h *Handler) AdminApplications(w http.ResponseWriter, r *http.Request) {
	applications, err := h.repository.GetAllApplications()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "Applications retrieved successfully", applications)
}

func (h *Handler) AdminCreateUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string  `json:"name" validate:"required,max=255"`
		Email       string  `json:"email" validate:"required,email,max=255"`
		Password    string  `json:"password" validate:"required,min=8"`
		Role        string  `json:"role" validate:"required,oneof=admin employer user"`
		CompanyName *string `json:"companyName" validate:"required_if=Role employer,omitempty,max=255"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.unprocessable(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.unprocessable(w, r, err)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	user := &domain.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		Role:         domain.Role(req.Role),
	}
	if user.Role == domain.RoleEmployer {
		user.CompanyName = req.CompanyName
	}

	if err := h.repository.CreateUser(user); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "users_email_key":
			h.unprocessable(w, r, errors.New("Email is already in use"))
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	mailMessage := domain.MailMessage{
		Type: "account_created",
		To:   user.Email,
		Data: domain.AccountCreatedMailData{
			Name:     user.Name,
			Email:    user.Email,
			Password: req.Password,
		},
	}

	if err := h.mailQueue.Publish(r.Context(), mailMessage); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.createdResponse(w, r, "User created successfully", user)
}
