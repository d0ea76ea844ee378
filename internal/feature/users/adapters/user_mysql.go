// Package adapters はユーザー管理フィーチャーの永続化実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/yash5749/ONI-LIBRARY/internal/feature/auth/domain/entity"
	"github.com/yash5749/ONI-LIBRARY/internal/feature/users/usecase"
	"github.com/yash5749/ONI-LIBRARY/internal/shared/role"
)

// userMySQL はusecase.UserRepositoryのGORM実装です。
// authフィーチャーと同じusersテーブルを読み書きします。
type userMySQL struct {
	db *gorm.DB
}

// NewUserMySQL はuserMySQLの新しいインスタンスを生成します。
func NewUserMySQL(db *gorm.DB) usecase.UserRepository {
	return &userMySQL{db: db}
}

// コンパイル時にインターフェースを満たしているか検証
var _ usecase.UserRepository = (*userMySQL)(nil)

// FindAll は全ユーザーをID順で返します。
func (r *userMySQL) FindAll(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	if err := r.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// FindByID は指定されたIDのユーザーを取得します。
func (r *userMySQL) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, usecase.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateRole はユーザーのロールを更新します。
func (r *userMySQL) UpdateRole(ctx context.Context, id uint, newRole role.Role) error {
	res := r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("id = ?", id).
		Update("role", newRole)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrUserNotFound
	}
	return nil
}

// Delete はユーザーを削除します。
func (r *userMySQL) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.User{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrUserNotFound
	}
	return nil
}
