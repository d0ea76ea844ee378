// Package usecase は貸出フィーチャーのビジネスロジックを提供します。
package usecase

import (
	"context"

	"github.com/yash5749/ONI-LIBRARY/internal/feature/catalog/domain/entity"
)

// LoanState は書籍の貸出状態のスナップショットを表します。
type LoanState struct {
	IsBorrowed       bool
	BorrowedByUserID *uint
}

// BookLoanRepository は書籍の貸出状態を永続化するリポジトリを定義します。
// Goの慣例に従い、インターフェースはプロバイダーではなくコンシューマー（usecase）が定義します。
type BookLoanRepository interface {
	// FindByID は指定されたIDの書籍を取得します。
	// 見つからない場合はErrBookNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.Book, error)
	// UpdateLoanState は貸出状態がexpectedPriorと一致する場合のみnextへ更新します。
	// 条件付き更新により、読み取りと書き込みの間の競合を検出します。
	// 状態が一致せず更新されなかった場合はfalseを返します。
	UpdateLoanState(ctx context.Context, bookID uint, next, expectedPrior LoanState) (bool, error)
	// FindByBorrower は指定されたユーザーが貸出中の書籍一覧を返します。
	FindByBorrower(ctx context.Context, userID uint) ([]entity.Book, error)
}

// BorrowUsecase は書籍の貸出・返却操作のビジネスロジックを実装します。
type BorrowUsecase struct {
	books BookLoanRepository
}

// NewBorrowUsecase はBorrowUsecaseの新しいインスタンスを生成します。
func NewBorrowUsecase(books BookLoanRepository) *BorrowUsecase {
	return &BorrowUsecase{books: books}
}

// Borrow は書籍をuserIDのユーザーに貸し出します。
//   - 書籍が存在しない場合はErrBookNotFound
//   - すでに貸出中の場合はErrBookAlreadyBorrowed
//
// 更新は条件付きで行われるため、同じ書籍への同時貸出は
// どちらか一方だけが成功し、もう一方はErrBookAlreadyBorrowedを受け取ります。
func (u *BorrowUsecase) Borrow(ctx context.Context, userID, bookID uint) (*entity.Book, error) {
	book, err := u.books.FindByID(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if book.IsBorrowed {
		return nil, ErrBookAlreadyBorrowed
	}

	next := LoanState{IsBorrowed: true, BorrowedByUserID: &userID}
	prior := LoanState{IsBorrowed: false, BorrowedByUserID: nil}
	ok, err := u.books.UpdateLoanState(ctx, bookID, next, prior)
	if err != nil {
		return nil, err
	}
	if !ok {
		// 読み取り後に別のリクエストが先に貸出を完了した
		return nil, ErrBookAlreadyBorrowed
	}

	return u.books.FindByID(ctx, bookID)
}

// Return は書籍を返却し、貸出状態をクリアします。
//   - 書籍が存在しない場合はErrBookNotFound
//   - 貸出中でない場合はErrBookNotBorrowed
//   - 借りた本人以外の場合はErrNotBorrower（管理者でも代理返却は不可）
func (u *BorrowUsecase) Return(ctx context.Context, userID, bookID uint) (*entity.Book, error) {
	book, err := u.books.FindByID(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if !book.IsBorrowed {
		return nil, ErrBookNotBorrowed
	}
	if book.BorrowedByUserID == nil || *book.BorrowedByUserID != userID {
		return nil, ErrNotBorrower
	}

	next := LoanState{IsBorrowed: false, BorrowedByUserID: nil}
	prior := LoanState{IsBorrowed: true, BorrowedByUserID: &userID}
	ok, err := u.books.UpdateLoanState(ctx, bookID, next, prior)
	if err != nil {
		return nil, err
	}
	if !ok {
		// 読み取り後に状態が変化したので、現在の状態から原因を判定する
		return nil, u.classifyReturnConflict(ctx, userID, bookID)
	}

	return u.books.FindByID(ctx, bookID)
}

// ListBorrowedBy はuserIDのユーザーが貸出中の書籍一覧を返します。
func (u *BorrowUsecase) ListBorrowedBy(ctx context.Context, userID uint) ([]entity.Book, error) {
	return u.books.FindByBorrower(ctx, userID)
}

// classifyReturnConflict は条件付き更新が失敗した際の現在の状態からエラーを決定します。
func (u *BorrowUsecase) classifyReturnConflict(ctx context.Context, userID, bookID uint) error {
	book, err := u.books.FindByID(ctx, bookID)
	if err != nil {
		return err
	}
	if !book.IsBorrowed {
		return ErrBookNotBorrowed
	}
	if book.BorrowedByUserID == nil || *book.BorrowedByUserID != userID {
		return ErrNotBorrower
	}
	return ErrBookNotBorrowed
}
