// Package usecase はユーザー管理フィーチャーのビジネスロジックを提供します。
package usecase

import (
	"context"

	"github.com/yash5749/ONI-LIBRARY/internal/feature/auth/domain/entity"
	"github.com/yash5749/ONI-LIBRARY/internal/shared/role"
)

// UserRepository はユーザー管理の永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// FindAll は全ユーザーをID順で返します。
	FindAll(ctx context.Context) ([]entity.User, error)
	// FindByID は指定されたIDのユーザーを取得します。
	// 見つからない場合はErrUserNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)
	// UpdateRole はユーザーのロールを更新します。
	UpdateRole(ctx context.Context, id uint, r role.Role) error
	// Delete はユーザーを削除します。
	Delete(ctx context.Context, id uint) error
}

// UserUsecase はユーザー管理操作のビジネスロジックを実装します。
type UserUsecase struct {
	users UserRepository
}

// NewUserUsecase はUserUsecaseの新しいインスタンスを生成します。
func NewUserUsecase(users UserRepository) *UserUsecase {
	return &UserUsecase{users: users}
}

// List は全ユーザーを返します。管理者専用の操作です。
func (u *UserUsecase) List(ctx context.Context) ([]entity.User, error) {
	return u.users.FindAll(ctx)
}

// Get は指定されたIDのユーザーを返します。
func (u *UserUsecase) Get(ctx context.Context, id uint) (*entity.User, error) {
	return u.users.FindByID(ctx, id)
}

// Promote はユーザーを管理者に昇格させます。
//   - ユーザーが存在しない場合はErrUserNotFound
//   - すでに管理者の場合はErrAlreadyAdmin
func (u *UserUsecase) Promote(ctx context.Context, id uint) (*entity.User, error) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.Role == role.Admin {
		return nil, ErrAlreadyAdmin
	}

	if err := u.users.UpdateRole(ctx, id, role.Admin); err != nil {
		return nil, err
	}
	return u.users.FindByID(ctx, id)
}

// Delete はユーザーを削除します。
func (u *UserUsecase) Delete(ctx context.Context, id uint) error {
	if _, err := u.users.FindByID(ctx, id); err != nil {
		return err
	}
	return u.users.Delete(ctx, id)
}
