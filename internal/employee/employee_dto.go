package employee

type CreateEmployeeRequest struct {
	FirstName          string   `json:"firstName" binding:"required"`
	LastName           string   `json:"lastName" binding:"required"`
	Email              string   `json:"email" binding:"required,email"`
	Password           string   `json:"password" binding:"required,min=8"`
	MobileNo           string   `json:"mobileNo"`
	CenterID           int      `json:"centerId"`
	Department         string   `json:"department"`
	Designation        string   `json:"designation"`
	Roles              []string `json:"roles" binding:"omitempty,dive,oneof=Employee 'HR Admin' SuperAdmin"`
	ReportingOfficerID *string  `json:"reportingOfficerId" binding:"omitempty,uuid"`
}

// UpdateEmployeeRequest carries partial-update semantics: nil fields
// are left untouched.
type UpdateEmployeeRequest struct {
	FirstName          *string   `json:"firstName"`
	LastName           *string   `json:"lastName"`
	MobileNo           *string   `json:"mobileNo"`
	CenterID           *int      `json:"centerId"`
	Department         *string   `json:"department"`
	Designation        *string   `json:"designation"`
	Roles              *[]string `json:"roles" binding:"omitempty,dive,oneof=Employee 'HR Admin' SuperAdmin"`
	ReportingOfficerID *string   `json:"reportingOfficerId" binding:"omitempty,uuid"`
}

type EmployeeResponse struct {
	ID                 string   `json:"employeeId"`
	Email              string   `json:"email"`
	FirstName          string   `json:"firstName"`
	LastName           string   `json:"lastName"`
	MobileNo           string   `json:"mobileNo,omitempty"`
	CenterID           int      `json:"centerId"`
	Department         string   `json:"department,omitempty"`
	Designation        string   `json:"designation,omitempty"`
	OnboardingStatus   string   `json:"onBoardingStatus"`
	Roles              []string `json:"roles"`
	ReportingOfficerID *string  `json:"reportingOfficerId,omitempty"`
	IsActive           bool     `json:"isActive"`
}
