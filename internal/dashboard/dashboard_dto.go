package dashboard

type OverallStatusResponse struct {
	TotalEmployees       int64 `json:"totalEmployees"`
	ActiveEmployees      int64 `json:"activeEmployees"`
	OnLeaveToday         int64 `json:"onLeaveToday"`
	PendingLeaveRequests int64 `json:"pendingLeaveRequests"`
}

type SummaryResponse struct {
	DepartmentDistribution map[string]int64 `json:"departmentDistribution"`
}
