package usecase

import "errors"

var (
	// ErrUserNotFound は指定されたIDのユーザーが存在しない場合に返されます。
	ErrUserNotFound = errors.New("user not found")
	// ErrAlreadyAdmin はすでに管理者のユーザーを昇格しようとした場合に返されます。
	ErrAlreadyAdmin = errors.New("user is already an admin")
)
