package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/test309-web/job-platform/internal/config"
	"github.com/test309-web/job-platform/internal/domain"
	"github.com/test309-web/job-platform/internal/handler"
)

const testJWTSecret = "test-secret"

type MockRepository struct{ mock.Mock }

func (m *MockRepository) CreateUser(user *domain.User) error {
	return m.Called(user).Error(0)
}

func (m *MockRepository) GetUserByID(id int64) (*domain.User, error) {
	args := m.Called(id)
	var user *domain.User
	if v := args.Get(0); v != nil {
		user = v.(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockRepository) GetUserByEmail(email string) (*domain.User, error) {
	args := m.Called(email)
	var user *domain.User
	if v := args.Get(0); v != nil {
		user = v.(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockRepository) GetAllUsers() ([]*domain.User, error) {
	args := m.Called()
	var users []*domain.User
	if v := args.Get(0); v != nil {
		users = v.([]*domain.User)
	}
	return users, args.Error(1)
}

func (m *MockRepository) CreateJob(job *domain.Job) error {
	return m.Called(job).Error(0)
}

func (m *MockRepository) GetJobByID(id int64) (*domain.Job, error) {
	args := m.Called(id)
	var job *domain.Job
	if v := args.Get(0); v != nil {
		job = v.(*domain.Job)
	}
	return job, args.Error(1)
}

func (m *MockRepository) ListActiveJobs(search string, page int) ([]*domain.Job, int64, error) {
	args := m.Called(search, page)
	var jobs []*domain.Job
	if v := args.Get(0); v != nil {
		jobs = v.([]*domain.Job)
	}
	return jobs, args.Get(1).(int64), args.Error(2)
}

func (m *MockRepository) ListEmployerJobs(employerID int64) ([]*domain.Job, error) {
	args := m.Called(employerID)
	var jobs []*domain.Job
	if v := args.Get(0); v != nil {
		jobs = v.([]*domain.Job)
	}
	return jobs, args.Error(1)
}

func (m *MockRepository) GetAllJobs() ([]*domain.Job, error) {
	args := m.Called()
	var jobs []*domain.Job
	if v := args.Get(0); v != nil {
		jobs = v.([]*domain.Job)
	}
	return jobs, args.Error(1)
}

func (m *MockRepository) UpdateJob(job *domain.Job) error {
	return m.Called(job).Error(0)
}

func (m *MockRepository) DeleteJob(id int64) error {
	return m.Called(id).Error(0)
}

func (m *MockRepository) CreateApplication(application *domain.Application) error {
	return m.Called(application).Error(0)
}

func (m *MockRepository) GetApplicationByID(id int64) (*domain.Application, error) {
	args := m.Called(id)
	var application *domain.Application
	if v := args.Get(0); v != nil {
		application = v.(*domain.Application)
	}
	return application, args.Error(1)
}

func (m *MockRepository) ListUserApplications(userID int64) ([]*domain.Application, error) {
	args := m.Called(userID)
	var applications []*domain.Application
	if v := args.Get(0); v != nil {
		applications = v.([]*domain.Application)
	}
	return applications, args.Error(1)
}

func (m *MockRepository) ListJobApplications(jobID int64) ([]*domain.Application, error) {
	args := m.Called(jobID)
	var applications []*domain.Application
	if v := args.Get(0); v != nil {
		applications = v.([]*domain.Application)
	}
	return applications, args.Error(1)
}

func (m *MockRepository) GetAllApplications() ([]*domain.Application, error) {
	args := m.Called()
	var applications []*domain.Application
	if v := args.Get(0); v != nil {
		applications = v.([]*domain.Application)
	}
	return applications, args.Error(1)
}

func (m *MockRepository) UpdateApplicationStatus(application *domain.Application) error {
	return m.Called(application).Error(0)
}

func (m *MockRepository) GetDashboardStats() (*domain.DashboardStats, error) {
	args := m.Called()
	var stats *domain.DashboardStats
	if v := args.Get(0); v != nil {
		stats = v.(*domain.DashboardStats)
	}
	return stats, args.Error(1)
}

type stubTokenStore struct {
	revoked map[string]time.Duration
}

func (s *stubTokenStore) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	if s.revoked == nil {
		s.revoked = make(map[string]time.Duration)
	}
	s.revoked[tokenID] = ttl
	return nil
}

func (s *stubTokenStore) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	_, ok := s.revoked[tokenID]
	return ok, nil
}

type stubMailQueue struct {
	published []domain.MailMessage
}

func (q *stubMailQueue) Publish(_ context.Context, message domain.MailMessage) error {
	q.published = append(q.published, message)
	return nil
}

func newTestHandler(t *testing.T) (*handler.Handler, *MockRepository, *stubTokenStore, *stubMailQueue) {
	t.Helper()

	cfg := &config.Config{}
	cfg.JWT.Secret = testJWTSecret
	cfg.JWT.Expiration = 3600

	repo := &MockRepository{}
	tokens := &stubTokenStore{}
	mailQueue := &stubMailQueue{}

	h, err := handler.NewHandler(cfg, repo, tokens, mailQueue)
	require.NoError(t, err)
	h.RegisterRoutes()

	return h, repo, tokens, mailQueue
}

// tokenFor signs a token the way the login handler does, so that tests can
// call authenticated endpoints as an arbitrary caller.
func tokenFor(t *testing.T, userID int64, role domain.Role) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, handler.AuthClaims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "test-token-" + strconv.FormatInt(userID, 10),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Subject:   strconv.FormatInt(userID, 10),
		},
	})
	ss, err := token.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)

	return ss
}

func doRequest(t *testing.T, h *handler.Handler, method, path, token string, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.Mux.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}
