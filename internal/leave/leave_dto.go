package leave

type FullDayLeaveRequest struct {
	EmployeeID      string `json:"employeeId" binding:"required,uuid"`
	LeaveTypeID     int    `json:"leaveTypeId" binding:"required"`
	FromDate        string `json:"fromDate" binding:"required"`
	ToDate          string `json:"toDate" binding:"required"`
	Reason          string `json:"reason" binding:"required"`
	FinancialYearID int    `json:"financialYearId" binding:"required"`
}

type HalfDayLeaveRequest struct {
	EmployeeID   string `json:"employeeId" binding:"required,uuid"`
	LeaveTypeID  int    `json:"leaveTypeId" binding:"required"`
	LeaveDate    string `json:"leaveDate" binding:"required"`
	LeaveSession string `json:"leaveSession" binding:"required,oneof=FirstHalf SecondHalf"`
	Reason       string `json:"reason" binding:"required"`
}

type LeaveApprovalRequest struct {
	LeaveRequestID   string `json:"hrEmployeeFullDayLeaveDetailsId" binding:"required,uuid"`
	ApprovedBy       string `json:"approvedBy" binding:"required,uuid"`
	ApprovalComments string `json:"approvalComments"`
	IsApproved       *bool  `json:"isApproved" binding:"required"`
}

type LeaveResponse struct {
	ID               string  `json:"id"`
	EmployeeID       string  `json:"employeeId"`
	LeaveTypeID      int     `json:"leaveTypeId"`
	FromDate         string  `json:"fromDate"`
	ToDate           string  `json:"toDate"`
	LeaveSession     *string `json:"leaveSession,omitempty"`
	Reason           string  `json:"reason"`
	Status           string  `json:"status"`
	FinancialYearID  int     `json:"financialYearId,omitempty"`
	ApprovedBy       *string `json:"approvedBy,omitempty"`
	ApprovalComments *string `json:"approvalComments,omitempty"`
}

type LeaveTypeBreakdown struct {
	LeaveType string `json:"leaveType"`
	Total     int    `json:"total"`
	Used      int    `json:"used"`
	Available int    `json:"available"`
}

type LeaveSummaryResponse struct {
	TotalLeaves        int                  `json:"totalLeaves"`
	UsedLeaves         int                  `json:"usedLeaves"`
	PendingLeaves      int                  `json:"pendingLeaves"`
	AvailableLeaves    int                  `json:"availableLeaves"`
	LeaveTypeBreakdown []LeaveTypeBreakdown `json:"leaveTypeBreakdown"`
}
