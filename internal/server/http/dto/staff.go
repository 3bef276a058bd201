package dto

// StaffLoginRequest carries the shared staff password.
type StaffLoginRequest struct {
	Password string `json:"password" form:"password"`
}

// StaffLoginResponse returns the issued session token.
type StaffLoginResponse struct {
	Token string `json:"token"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
