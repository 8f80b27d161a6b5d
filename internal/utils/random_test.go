package utils_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/test309-web/job-platform/internal/domain"
	"github.com/test309-web/job-platform/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

func TestGenerateRandomPassword(t *testing.T) {
	password := utils.GenerateRandomPassword(12)
	assert.Len(t, password, 12)
}

func TestGenerateRandomID(t *testing.T) {
	id := utils.GenerateRandomID(6, 4)
	assert.Len(t, id, 10)

	for _, c := range id[6:] {
		assert.True(t, c >= '0' && c <= '9', "trailing characters are digits")
	}
}

func TestGenerateEmailFromName(t *testing.T) {
	email := utils.GenerateEmailFromName("Alice Smith", "example.com")

	assert.True(t, strings.HasPrefix(email, "alice.smith"), email)
	assert.True(t, strings.HasSuffix(email, "@example.com"), email)
}

func TestGenerateRandomUser(t *testing.T) {
	employer, err := utils.GenerateRandomUser(domain.RoleEmployer, "secret-password")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleEmployer, employer.Role)
	require.NotNil(t, employer.CompanyName, "employers carry a company name")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(employer.PasswordHash), []byte("secret-password")))

	seeker, err := utils.GenerateRandomUser(domain.RoleUser, "secret-password")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, seeker.Role)
	assert.Nil(t, seeker.CompanyName, "job seekers do not")
}

func TestGenerateRandomJob(t *testing.T) {
	companyName := "Acme"
	employer := &domain.User{ID: 7, Role: domain.RoleEmployer, CompanyName: &companyName}

	job := utils.GenerateRandomJob(employer)

	assert.Equal(t, int64(7), job.EmployerID)
	assert.Equal(t, "Acme", job.Company)
	assert.True(t, job.IsActive)
	assert.NotEmpty(t, job.Title)
	assert.NotEmpty(t, job.Location)
	assert.NotEmpty(t, job.Description)
}
