package dto

// RefreshReq represents the request body for the /refresh and /logout endpoints.
type RefreshReq struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}
