// Package adapters は貸出フィーチャーの永続化実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/yash5749/ONI-LIBRARY/internal/feature/borrow/usecase"
	"github.com/yash5749/ONI-LIBRARY/internal/feature/catalog/domain/entity"
)

// bookLoanMySQL はusecase.BookLoanRepositoryのGORM実装です。
type bookLoanMySQL struct {
	db *gorm.DB
}

// NewBookLoanMySQL はbookLoanMySQLの新しいインスタンスを生成します。
func NewBookLoanMySQL(db *gorm.DB) usecase.BookLoanRepository {
	return &bookLoanMySQL{db: db}
}

// コンパイル時にインターフェースを満たしているか検証
var _ usecase.BookLoanRepository = (*bookLoanMySQL)(nil)

// FindByID は指定されたIDの書籍を著者付きで取得します。
func (r *bookLoanMySQL) FindByID(ctx context.Context, id uint) (*entity.Book, error) {
	var book entity.Book
	err := r.db.WithContext(ctx).Preload("Author").First(&book, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, usecase.ErrBookNotFound
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// UpdateLoanState は貸出状態の条件付き更新を行います。
// WHERE句に期待する現在状態を含めることで、単一のUPDATE文として
// アトミックに実行され、読み取り後の競合はRowsAffected=0として現れます。
func (r *bookLoanMySQL) UpdateLoanState(ctx context.Context, bookID uint, next, prior usecase.LoanState) (bool, error) {
	q := r.db.WithContext(ctx).
		Model(&entity.Book{}).
		Where("id = ? AND is_borrowed = ?", bookID, prior.IsBorrowed)
	if prior.BorrowedByUserID != nil {
		q = q.Where("borrowed_by_user_id = ?", *prior.BorrowedByUserID)
	} else {
		q = q.Where("borrowed_by_user_id IS NULL")
	}

	res := q.Updates(map[string]interface{}{
		"is_borrowed":         next.IsBorrowed,
		"borrowed_by_user_id": next.BorrowedByUserID,
	})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// FindByBorrower は指定されたユーザーが貸出中の書籍一覧を著者付きで返します。
func (r *bookLoanMySQL) FindByBorrower(ctx context.Context, userID uint) ([]entity.Book, error) {
	var books []entity.Book
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("is_borrowed = ? AND borrowed_by_user_id = ?", true, userID).
		Order("id").
		Find(&books).Error
	if err != nil {
		return nil, err
	}
	return books, nil
}
