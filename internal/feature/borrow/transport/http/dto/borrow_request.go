// Package dto は貸出APIのリクエスト・レスポンス型を定義します。
package dto

// BorrowReq は貸出・返却リクエストのボディを表します。
type BorrowReq struct {
	BookID uint `json:"bookId" binding:"required"`
}
