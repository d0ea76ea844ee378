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

// BookUsecase は書籍カタログ操作のユースケースを定義します。
type BookUsecase interface {
	Create(ctx context.Context, title string, isbn *string, authorID uint) (*entity.Book, error)
	List(ctx context.Context, filter usecase.BookFilter) ([]entity.Book, error)
	Get(ctx context.Context, id uint) (*entity.Book, error)
	Update(ctx context.Context, id uint, in usecase.UpdateBookInput) (*entity.Book, error)
	Delete(ctx context.Context, id uint) error
}

// BookHandler は書籍カタログのHTTPリクエストを処理します。
type BookHandler struct {
	books BookUsecase
}

// NewBookHandler はBookHandlerの新しいインスタンスを生成します。
func NewBookHandler(books BookUsecase) *BookHandler {
	return &BookHandler{books: books}
}

// Create は書籍登録APIエンドポイントを処理します。管理者専用です。
// 存在しない著者IDの場合は400を返却します。
func (h *BookHandler) Create(c *gin.Context) {
	var req dto.CreateBookReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	book, err := h.books.Create(c.Request.Context(), req.Title, req.ISBN, req.AuthorID)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidAuthorID) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid authorId"})
			return
		}
		slog.Error("failed to create book", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to create book"})
		return
	}
	c.JSON(http.StatusCreated, book)
}

// List は書籍一覧APIエンドポイントを処理します。認証不要です。
// クエリパラメータ: authorId（著者で絞り込み）、search（タイトル部分一致、
// 大文字小文字を区別しない）、isBorrowed（貸出状態で絞り込み）。
func (h *BookHandler) List(c *gin.Context) {
	filter, ok := h.parseFilter(c)
	if !ok {
		return
	}

	books, err := h.books.List(c.Request.Context(), filter)
	if err != nil {
		slog.Error("failed to list books", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to list books"})
		return
	}
	if books == nil {
		books = []entity.Book{}
	}
	c.JSON(http.StatusOK, books)
}

// Get は書籍詳細APIエンドポイントを処理します。著者が含まれます。
func (h *BookHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	book, err := h.books.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrBookNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "book not found"})
			return
		}
		slog.Error("failed to get book", "error", err, "book_id", id)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to get book"})
		return
	}
	c.JSON(http.StatusOK, book)
}

// Update は書籍更新APIエンドポイントを処理します。管理者専用です。
// カタログ項目（title, isbn, authorId）のみ変更でき、貸出状態には触れません。
func (h *BookHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateBookReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	book, err := h.books.Update(c.Request.Context(), id, usecase.UpdateBookInput{
		Title:    req.Title,
		ISBN:     req.ISBN,
		AuthorID: req.AuthorID,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrBookNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "book not found"})
		case errors.Is(err, usecase.ErrInvalidAuthorID):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid authorId"})
		default:
			slog.Error("failed to update book", "error", err, "book_id", id)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to update book"})
		}
		return
	}
	c.JSON(http.StatusOK, book)
}

// Delete は書籍削除APIエンドポイントを処理します。管理者専用です。
func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.books.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrBookNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "book not found"})
			return
		}
		slog.Error("failed to delete book", "error", err, "book_id", id)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to delete book"})
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Book deleted"})
}

// parseFilter は一覧クエリパラメータをBookFilterに変換します。
func (h *BookHandler) parseFilter(c *gin.Context) (usecase.BookFilter, bool) {
	var filter usecase.BookFilter

	if raw := c.Query("authorId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid authorId"})
			return filter, false
		}
		v := uint(id)
		filter.AuthorID = &v
	}

	filter.Search = c.Query("search")

	if raw := c.Query("isBorrowed"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid isBorrowed"})
			return filter, false
		}
		filter.IsBorrowed = &v
	}

	return filter, true
}
