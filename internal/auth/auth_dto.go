package auth

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type TokenData struct {
	JWToken    string   `json:"jwToken"`
	Email      string   `json:"email"`
	UserName   string   `json:"userName"`
	Roles      []string `json:"roles"`
	IsVerified bool     `json:"isVerified"`
	UID        string   `json:"uid"`
}

type SuperAdminSetupRequest struct {
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	MobileNo    string `json:"mobileNo"`
	CenterID    int    `json:"centerId"`
	Department  string `json:"department"`
	Designation string `json:"designation"`
}
