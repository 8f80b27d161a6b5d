package handler

import (
	"net/http"
	"strconv"

	"github.com/test309-web/job-platform/internal/domain"
	"github.com/test309-web/job-platform/internal/repository"
)

type PaginatedJobs struct {
	Items      []*domain.Job `json:"items"`
	Page       int           `json:"page"`
	PerPage    int           `json:"perPage"`
	Total      int64         `json:"total"`
	TotalPages int           `json:"totalPages"`
}

// parsePage reads the 1-based "page" query parameter, defaulting to 1.
// Anything non-numeric or below 1 falls back to the first page.
func parsePage(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func paginateJobs(jobs []*domain.Job, page int, total int64) *PaginatedJobs {
	perPage := repository.JobsPerPage
	totalPages := int((total + int64(perPage) - 1) / int64(perPage))

	return &PaginatedJobs{
		Items:      jobs,
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}
}
