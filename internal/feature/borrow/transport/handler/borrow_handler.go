// Package handler は貸出フィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yash5749/ONI-LIBRARY/internal/api"
	"github.com/yash5749/ONI-LIBRARY/internal/feature/borrow/transport/http/dto"
	"github.com/yash5749/ONI-LIBRARY/internal/feature/borrow/usecase"
	"github.com/yash5749/ONI-LIBRARY/internal/feature/catalog/domain/entity"
	jwtmw "github.com/yash5749/ONI-LIBRARY/internal/platform/jwt"
)

// BorrowUsecase は貸出操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type BorrowUsecase interface {
	// Borrow は書籍を呼び出しユーザーに貸し出します。
	Borrow(ctx context.Context, userID, bookID uint) (*entity.Book, error)
	// Return は書籍を返却します。借りた本人のみが返却できます。
	Return(ctx context.Context, userID, bookID uint) (*entity.Book, error)
	// ListBorrowedBy は指定ユーザーが貸出中の書籍一覧を返します。
	ListBorrowedBy(ctx context.Context, userID uint) ([]entity.Book, error)
}

// BorrowHandler は貸出操作のHTTPリクエストを処理します。
type BorrowHandler struct {
	borrow BorrowUsecase
}

// NewBorrowHandler はBorrowHandlerの新しいインスタンスを生成します。
func NewBorrowHandler(borrow BorrowUsecase) *BorrowHandler {
	return &BorrowHandler{borrow: borrow}
}

// Borrow は書籍貸出APIエンドポイントを処理します。
// - 書籍が存在しない場合は404を返却
// - すでに貸出中の場合は409を返却
// - 成功時は更新後の書籍付きで200を返却
func (h *BorrowHandler) Borrow(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication required"})
		return
	}

	var req dto.BorrowReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	book, err := h.borrow.Borrow(c.Request.Context(), userID, req.BookID)
	if err != nil {
		h.respondBorrowError(c, err, userID, req.BookID)
		return
	}
	slog.Info("book borrowed", "book_id", book.ID, "user_id", userID)
	c.JSON(http.StatusOK, gin.H{
		"message": "Book borrowed",
		"book":    book,
	})
}

// Return は書籍返却APIエンドポイントを処理します。
// - 書籍が存在しない場合は404を返却
// - 貸出中でない場合は409を返却
// - 借りた本人以外の場合は403を返却
// - 成功時は更新後の書籍付きで200を返却
func (h *BorrowHandler) Return(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication required"})
		return
	}

	var req dto.BorrowReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	book, err := h.borrow.Return(c.Request.Context(), userID, req.BookID)
	if err != nil {
		h.respondBorrowError(c, err, userID, req.BookID)
		return
	}
	slog.Info("book returned", "book_id", book.ID, "user_id", userID)
	c.JSON(http.StatusOK, gin.H{
		"message": "Book returned",
		"book":    book,
	})
}

// ListMine は呼び出しユーザーが貸出中の書籍一覧APIエンドポイントを処理します。
func (h *BorrowHandler) ListMine(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication required"})
		return
	}

	books, err := h.borrow.ListBorrowedBy(c.Request.Context(), userID)
	if err != nil {
		slog.Error("failed to list borrowed books", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to list borrowed books"})
		return
	}
	if books == nil {
		books = []entity.Book{}
	}
	c.JSON(http.StatusOK, books)
}

// respondBorrowError はユースケースのエラーをHTTPステータスに変換します。
func (h *BorrowHandler) respondBorrowError(c *gin.Context, err error, userID, bookID uint) {
	switch {
	case errors.Is(err, usecase.ErrBookNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "book not found"})
	case errors.Is(err, usecase.ErrBookAlreadyBorrowed):
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: "book is already borrowed"})
	case errors.Is(err, usecase.ErrBookNotBorrowed):
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: "book is not borrowed"})
	case errors.Is(err, usecase.ErrNotBorrower):
		c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "book is borrowed by another user"})
	default:
		slog.Error("borrow operation failed", "error", err, "book_id", bookID, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
	}
}
