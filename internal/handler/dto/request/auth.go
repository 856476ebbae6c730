package request

// LoginRequest selects one of the seeded demo users; there is no password.
type LoginRequest struct {
	UserID string `json:"userId" binding:"required"`
}
