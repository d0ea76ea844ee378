package dto

// CreateBookReq は書籍登録リクエストのボディを表します。
type CreateBookReq struct {
	Title    string  `json:"title" binding:"required"`
	ISBN     *string `json:"isbn"`
	AuthorID uint    `json:"authorId" binding:"required"`
}

// UpdateBookReq は書籍更新リクエストのボディを表します。
// nilのフィールドは変更されません。貸出状態はこのAPIでは変更できません。
type UpdateBookReq struct {
	Title    *string `json:"title"`
	ISBN     *string `json:"isbn"`
	AuthorID *uint   `json:"authorId"`
}
