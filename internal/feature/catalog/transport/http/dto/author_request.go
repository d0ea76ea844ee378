// Package dto はカタログAPIのリクエスト型を定義します。
package dto

// CreateAuthorReq は著者登録リクエストのボディを表します。
type CreateAuthorReq struct {
	Name string  `json:"name" binding:"required"`
	Bio  *string `json:"bio"`
}

// UpdateAuthorReq は著者更新リクエストのボディを表します。
// nilのフィールドは変更されません。
type UpdateAuthorReq struct {
	Name *string `json:"name"`
	Bio  *string `json:"bio"`
}
