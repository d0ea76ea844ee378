// Package dto はユーザー管理APIのレスポンス型を定義します。
package dto

import (
	"time"

	"github.com/yash5749/ONI-LIBRARY/internal/feature/auth/domain/entity"
	"github.com/yash5749/ONI-LIBRARY/internal/shared/role"
)

// UserResp はパスワードを含まないユーザーのビューです。
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

// UserRespsFromEntities converts a slice of user entities.
func UserRespsFromEntities(users []entity.User) []UserResp {
	out := make([]UserResp, 0, len(users))
	for i := range users {
		out = append(out, UserRespFromEntity(&users[i]))
	}
	return out
}
