package domain

type DashboardStats struct {
	TotalUsers          int64 `json:"totalUsers"`
	TotalEmployers      int64 `json:"totalEmployers"`
	TotalJobs           int64 `json:"totalJobs"`
	TotalApplications   int64 `json:"totalApplications"`
	ActiveJobs          int64 `json:"activeJobs"`
	PendingApplications int64 `json:"pendingApplications"`
}
