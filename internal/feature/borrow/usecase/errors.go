package usecase

import "errors"

var (
	// ErrBookNotFound は指定されたIDの書籍が存在しない場合に返されます。
	ErrBookNotFound = errors.New("book not found")
	// ErrBookAlreadyBorrowed は書籍がすでに貸出中の場合に返されます。
	ErrBookAlreadyBorrowed = errors.New("book is already borrowed")
	// ErrBookNotBorrowed は貸出中でない書籍を返却しようとした場合に返されます。
	ErrBookNotBorrowed = errors.New("book is not borrowed")
	// ErrNotBorrower は借りた本人以外が返却しようとした場合に返されます。
	ErrNotBorrower = errors.New("book is borrowed by another user")
)
