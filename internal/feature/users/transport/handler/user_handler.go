// Package handler はユーザー管理フィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yash5749/ONI-LIBRARY/internal/api"
	"github.com/yash5749/ONI-LIBRARY/internal/feature/auth/domain/entity"
	"github.com/yash5749/ONI-LIBRARY/internal/feature/users/transport/http/dto"
	"github.com/yash5749/ONI-LIBRARY/internal/feature/users/usecase"
	jwtmw "github.com/yash5749/ONI-LIBRARY/internal/platform/jwt"
)

// UserUsecase はユーザー管理操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type UserUsecase interface {
	List(ctx context.Context) ([]entity.User, error)
	Get(ctx context.Context, id uint) (*entity.User, error)
	Promote(ctx context.Context, id uint) (*entity.User, error)
	Delete(ctx context.Context, id uint) error
}

// UserHandler はユーザー管理のHTTPリクエストを処理します。
type UserHandler struct {
	users UserUsecase
}

// NewUserHandler はUserHandlerの新しいインスタンスを生成します。
func NewUserHandler(users UserUsecase) *UserHandler {
	return &UserHandler{users: users}
}

// pathID は:idパスパラメータをuintとして解析します。
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// List はユーザー一覧APIエンドポイントを処理します。管理者専用です。
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		slog.Error("failed to list users", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to list users"})
		return
	}
	c.JSON(http.StatusOK, dto.UserRespsFromEntities(users))
}

// Me は認証済みユーザー自身のプロフィールAPIエンドポイントを処理します。
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication required"})
		return
	}

	user, err := h.users.Get(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			// トークンは有効だがユーザーが削除済み
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "user not found"})
			return
		}
		slog.Error("failed to get user", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to get user"})
		return
	}
	c.JSON(http.StatusOK, dto.UserRespFromEntity(user))
}

// Promote はユーザーの管理者昇格APIエンドポイントを処理します。管理者専用です。
func (h *UserHandler) Promote(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	user, err := h.users.Promote(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "user not found"})
		case errors.Is(err, usecase.ErrAlreadyAdmin):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "user is already an admin"})
		default:
			slog.Error("failed to promote user", "error", err, "user_id", id)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to promote user"})
		}
		return
	}
	slog.Info("user promoted to admin", "user_id", id)
	c.JSON(http.StatusOK, gin.H{
		"message": "User promoted to admin",
		"user":    dto.UserRespFromEntity(user),
	})
}

// Delete はユーザー削除APIエンドポイントを処理します。管理者専用です。
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "user not found"})
			return
		}
		slog.Error("failed to delete user", "error", err, "user_id", id)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to delete user"})
		return
	}
	slog.Info("user deleted", "user_id", id)
	c.JSON(http.StatusOK, api.MessageResponse{Message: "User deleted"})
}
