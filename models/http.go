package models

// RegisterRequest is the body of POST /api/user/register.
type RegisterRequest struct {
	UserName    string `json:"user_name"`
	Password    string `json:"password"`
	CharacterID int    `json:"character_id"`
}

// LoginRequest is the body of POST /api/user/login.
type LoginRequest struct {
	UserName string `json:"user_name"`
	Password string `json:"password"`
}

// ErrorResponse is the JSON body written for failed API calls.
type ErrorResponse struct {
	Error string `json:"error"`
}
