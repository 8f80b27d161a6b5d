package repository

import (
	"github.com/test309-web/job-platform/internal/domain"
)

// GetDashboardStats computes all dashboard counts in a single round trip.
// Counts are always computed at call time, never cached.
func (r *Repository) GetDashboardStats() (*domain.DashboardStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM users WHERE role = 'employer'),
			(SELECT COUNT(*) FROM jobs),
			(SELECT COUNT(*) FROM applications),
			(SELECT COUNT(*) FROM jobs WHERE is_active = TRUE),
			(SELECT COUNT(*) FROM applications WHERE status = 'pending')
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	stats := &domain.DashboardStats{}
	dst := []any{&stats.TotalUsers, &stats.TotalEmployers, &stats.TotalJobs, &stats.TotalApplications, &stats.ActiveJobs, &stats.PendingApplications}
	if err := r.dbpool.QueryRowContext(ctx, query).Scan(dst...); err != nil {
		return nil, err
	}

	return stats, nil
}
