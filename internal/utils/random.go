package utils

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/test309-web/job-platform/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

var firstNames = []string{
	"James", "Mary", "John", "Patricia", "Robert", "Jennifer", "Michael", "Linda",
	"William", "Elizabeth", "David", "Susan", "Richard", "Jessica", "Joseph", "Sarah",
	"Thomas", "Karen", "Daniel", "Nancy",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson",
	"Thomas", "Taylor", "Moore", "Jackson", "Martin",
}

var companySuffixes = []string{"Labs", "Systems", "Technologies", "Software", "Solutions", "Group", "Works"}

func GenerateRandomName() string {
	return firstNames[rand.Intn(len(firstNames))] + " " + lastNames[rand.Intn(len(lastNames))]
}

func GenerateRandomCompanyName() string {
	return lastNames[rand.Intn(len(lastNames))] + " " + companySuffixes[rand.Intn(len(companySuffixes))]
}

var digits = "0123456789"

// GenerateEmailFromName derives a plausible unique-ish email address from a
// full name by lowercasing it and appending a few random digits.
func GenerateEmailFromName(name string, emailDomain string) string {
	local := strings.ToLower(strings.ReplaceAll(name, " ", "."))

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		local += string(digits[rand.Intn(len(digits))])
	}

	return local + "@" + emailDomain
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

func GenerateRandomPassword(length int) string {
	random_password := make([]rune, length)
	for i := range random_password {
		random_password[i] = letters[rand.Intn(len(letters))]
	}
	return string(random_password)
}

func GenerateRandomID(letterLength int, digitLength int) string {
	random_id := make([]rune, letterLength+digitLength)
	for i := range random_id {
		if i < letterLength {
			random_id[i] = letters[rand.Intn(len(letters))]
		} else {
			random_id[i] = rune(digits[rand.Intn(len(digits))])
		}
	}
	return string(random_id)
}

func GenerateRandomUser(role domain.Role, password string) (*domain.User, error) {
	name := GenerateRandomName()
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         name,
		Email:        GenerateEmailFromName(name, "example.com"),
		PasswordHash: string(passwordHash),
		Role:         role,
	}

	if role == domain.RoleEmployer {
		companyName := GenerateRandomCompanyName()
		user.CompanyName = &companyName
	}

	return user, nil
}

var jobTitles = []string{
	"Software Engineer", "Backend Developer", "Frontend Developer", "Data Analyst",
	"Product Manager", "DevOps Engineer", "QA Engineer", "UX Designer",
	"Customer Success Manager", "Account Executive",
}

var jobLocations = []string{
	"Remote", "New York, NY", "San Francisco, CA", "Austin, TX", "Seattle, WA",
	"Boston, MA", "Chicago, IL", "Denver, CO",
}

var employmentTypes = []string{"full-time", "part-time", "contract", "internship"}

var jobCategories = []string{"engineering", "design", "product", "sales", "support"}

func GenerateRandomJob(employer *domain.User) *domain.Job {
	title := jobTitles[rand.Intn(len(jobTitles))]
	company := GenerateRandomCompanyName()
	if employer.CompanyName != nil {
		company = *employer.CompanyName
	}

	salary := fmt.Sprintf("$%d,000 - $%d,000", 60+rand.Intn(40), 100+rand.Intn(80))
	employmentType := employmentTypes[rand.Intn(len(employmentTypes))]
	category := jobCategories[rand.Intn(len(jobCategories))]
	requirements := fmt.Sprintf("%d+ years of relevant experience", 1+rand.Intn(7))

	return &domain.Job{
		Title:          title,
		Company:        company,
		Location:       jobLocations[rand.Intn(len(jobLocations))],
		Description:    fmt.Sprintf("We are hiring a %s to join %s.", title, company),
		Requirements:   &requirements,
		Salary:         &salary,
		EmploymentType: &employmentType,
		Category:       &category,
		EmployerID:     employer.ID,
		IsActive:       true,
	}
}

func GenerateRandomApplication(userID int64, jobID int64) *domain.Application {
	resume := "https://example.com/resumes/" + GenerateRandomID(6, 4) + ".pdf"

	return &domain.Application{
		UserID:      userID,
		JobID:       jobID,
		CoverLetter: "I believe my background makes me a strong fit for this position.",
		Resume:      &resume,
	}
}
