// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yash5749/ONI-LIBRARY/internal/api"
	"github.com/yash5749/ONI-LIBRARY/internal/feature/auth/domain/entity"
	"github.com/yash5749/ONI-LIBRARY/internal/feature/auth/transport/http/dto"
	"github.com/yash5749/ONI-LIBRARY/internal/feature/auth/usecase"
	"github.com/yash5749/ONI-LIBRARY/internal/shared/ratelimiter"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Signup は指定されたメールアドレスとパスワードで新規ユーザーを登録します。
	Signup(ctx context.Context, email, password, name string) (*entity.User, error)
	// Login はユーザーを認証し、成功時にトークンペアを返します。
	Login(ctx context.Context, email, password, userAgent, ipAddress string) (*usecase.LoginResult, error)
	// Refresh はリフレッシュトークンを検証し、新しいトークンペアを発行します。
	Refresh(ctx context.Context, refreshToken, userAgent, ipAddress string) (*usecase.LoginResult, error)
	// Logout は提示されたリフレッシュトークンのセッションを失効させます。
	Logout(ctx context.Context, refreshToken string) error
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
type AuthHandler struct {
	auth         AuthUsecase
	loginLimiter ratelimiter.RateLimiterInterface
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
// loginLimiterがnilの場合、ログインのスロットリングは無効になります。
func NewAuthHandler(auth AuthUsecase, loginLimiter ratelimiter.RateLimiterInterface) *AuthHandler {
	return &AuthHandler{auth: auth, loginLimiter: loginLimiter}
}

// Signup はユーザー登録APIエンドポイントを処理します。
// - バリデーションエラー時は400を返却
// - ユーザー作成失敗時（メール重複等）は409を返却
// - 成功時は201を返却
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	user, err := h.auth.Signup(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		// ユーザー列挙攻撃を防止するため、実際のエラーを公開しない
		slog.Warn("signup failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: "signup failed"})
		return
	}
	slog.Info("user signup successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered",
		"user":    dto.UserRespFromEntity(user),
	})
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - スロットリング超過時は429を返却
// - バリデーションエラー時は400を返却
// - 認証失敗時は401を返却
// - 認証成功時はトークンペア付きで200を返却
func (h *AuthHandler) Login(c *gin.Context) {
	if h.loginLimiter != nil && !h.loginLimiter.Allow() {
		slog.Warn("login throttled", "remote_addr", c.ClientIP())
		c.JSON(http.StatusTooManyRequests, api.ErrorResponse{Error: "too many login attempts"})
		return
	}

	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	result, err := h.auth.Login(c.Request.Context(), req.Email, req.Password, c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		// ユーザー列挙攻撃を防止するため、実際のエラーを公開しない
		slog.Warn("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid email or password"})
		return
	}
	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.LoginResp{
		Message:      "Login successful",
		Token:        result.Token,
		RefreshToken: result.RefreshToken,
		User:         dto.UserRespFromEntity(result.User),
	})
}

// Refresh はトークンローテーションAPIエンドポイントを処理します。
// 無効・失効・期限切れトークンはすべて401として扱います。
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	result, err := h.auth.Refresh(c.Request.Context(), req.RefreshToken, c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		slog.Warn("token refresh failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid refresh token"})
		return
	}
	c.JSON(http.StatusOK, dto.LoginResp{
		Message:      "Token refreshed",
		Token:        result.Token,
		RefreshToken: result.RefreshToken,
		User:         dto.UserRespFromEntity(result.User),
	})
}

// Logout はログアウトAPIエンドポイントを処理します。
// 存在しないトークンでも成功として扱い、トークンの有効性を漏らしません。
func (h *AuthHandler) Logout(c *gin.Context) {
	var req dto.RefreshReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	if err := h.auth.Logout(c.Request.Context(), req.RefreshToken); err != nil && !errors.Is(err, usecase.ErrSessionNotFound) {
		slog.Error("logout failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "logout failed"})
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "ok"})
}
