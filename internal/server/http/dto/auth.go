package dto

// AuthRequest describes username/password payload.
type AuthRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
