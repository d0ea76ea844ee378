// Package handler はカタログフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yash5749/ONI-LIBRARY/internal/api"
	"github.com/yash5749/ONI-LIBRARY/internal/feature/catalog/domain/entity"
	"github.com/yash5749/ONI-LIBRARY/internal/feature/catalog/transport/http/dto"
	"github.com/yash5749/ONI-LIBRARY/internal/feature/catalog/usecase"
)

// AuthorUsecase は著者カタログ操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthorUsecase interface {
	Create(ctx context.Context, name string, bio *string) (*entity.Author, error)
	List(ctx context.Context) ([]entity.Author, error)
	Get(ctx context.Context, id uint) (*entity.Author, error)
	Update(ctx context.Context, id uint, in usecase.UpdateAuthorInput) (*entity.Author, error)
	Delete(ctx context.Context, id uint) error
}

// AuthorHandler は著者カタログのHTTPリクエストを処理します。
type AuthorHandler struct {
	authors AuthorUsecase
}

// NewAuthorHandler はAuthorHandlerの新しいインスタンスを生成します。
func NewAuthorHandler(authors AuthorUsecase) *AuthorHandler {
	return &AuthorHandler{authors: authors}
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

// Create は著者登録APIエンドポイントを処理します。管理者専用です。
func (h *AuthorHandler) Create(c *gin.Context) {
	var req dto.CreateAuthorReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	author, err := h.authors.Create(c.Request.Context(), req.Name, req.Bio)
	if err != nil {
		slog.Error("failed to create author", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to create author"})
		return
	}
	c.JSON(http.StatusCreated, author)
}

// List は著者一覧APIエンドポイントを処理します。認証不要です。
func (h *AuthorHandler) List(c *gin.Context) {
	authors, err := h.authors.List(c.Request.Context())
	if err != nil {
		slog.Error("failed to list authors", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to list authors"})
		return
	}
	if authors == nil {
		authors = []entity.Author{}
	}
	c.JSON(http.StatusOK, authors)
}

// Get は著者詳細APIエンドポイントを処理します。書籍一覧が含まれます。
func (h *AuthorHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	author, err := h.authors.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrAuthorNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "author not found"})
			return
		}
		slog.Error("failed to get author", "error", err, "author_id", id)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to get author"})
		return
	}
	c.JSON(http.StatusOK, author)
}

// Update は著者更新APIエンドポイントを処理します。管理者専用です。
func (h *AuthorHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateAuthorReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	author, err := h.authors.Update(c.Request.Context(), id, usecase.UpdateAuthorInput{
		Name: req.Name,
		Bio:  req.Bio,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrAuthorNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "author not found"})
			return
		}
		slog.Error("failed to update author", "error", err, "author_id", id)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to update author"})
		return
	}
	c.JSON(http.StatusOK, author)
}

// Delete は著者削除APIエンドポイントを処理します。管理者専用です。
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.authors.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrAuthorNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "author not found"})
			return
		}
		slog.Error("failed to delete author", "error", err, "author_id", id)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to delete author"})
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Author deleted"})
}
