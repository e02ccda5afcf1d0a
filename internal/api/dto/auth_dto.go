package dto

// AuthRequest is the payload of both register and login.
type AuthRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthUser is the only user data returned to clients.
type AuthUser struct {
	ID string `json:"id"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	User  AuthUser `json:"user"`
	Token string   `json:"token"`
}
