package dto

import (
	"time"

	"github.com/yash5749/ONI-LIBRARY/internal/feature/auth/domain/entity"
	"github.com/yash5749/ONI-LIBRARY/internal/shared/role"
)

// UserResp is the password-free view of a user returned by auth and user
// endpoints.
type UserResp struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      role.Role `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserRespFromEntity converts a user entity to its response form.
func UserRespFromEntity(u *entity.User) UserResp {
	return UserResp{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// LoginResp is the body returned by /login and /refresh.
type LoginResp struct {
	Message      string   `json:"message"`
	Token        string   `json:"token"`
	RefreshToken string   `json:"refreshToken"`
	User         UserResp `json:"user"`
}
