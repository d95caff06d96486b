package domain

// User represents an authenticated session
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

// LoginRequest is the request to obtain a session token
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
