package adapters

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/yash5749/ONI-LIBRARY/internal/feature/catalog/domain/entity"
	"github.com/yash5749/ONI-LIBRARY/internal/feature/catalog/usecase"
)

// bookMySQL はBookRepositoryインターフェースのMySQL実装です。
// ローン状態のカラムには一切書き込みません（borrowフィーチャーの所有）。
type bookMySQL struct {
	db *gorm.DB
}

// bookMySQLがBookRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.BookRepository = (*bookMySQL)(nil)

// NewBookMySQL は指定されたgorm.DB接続でbookMySQLの新しいインスタンスを生成します。
func NewBookMySQL(db *gorm.DB) *bookMySQL {
	return &bookMySQL{db: db}
}

// Create は書籍をデータベースに追加します。
func (r *bookMySQL) Create(ctx context.Context, book *entity.Book) error {
	return r.db.WithContext(ctx).Create(book).Error
}

// FindAll はフィルタに一致する書籍を著者付きで取得します。
func (r *bookMySQL) FindAll(ctx context.Context, filter usecase.BookFilter) ([]entity.Book, error) {
	q := r.db.WithContext(ctx).Preload("Author").Order("id ASC")

	if filter.AuthorID != nil {
		q = q.Where("author_id = ?", *filter.AuthorID)
	}
	if filter.IsBorrowed != nil {
		q = q.Where("is_borrowed = ?", *filter.IsBorrowed)
	}
	if filter.Search != "" {
		// LOWER同士の比較でMySQLとSQLite双方で大文字小文字を無視する
		q = q.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}

	var books []entity.Book
	if err := q.Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}

// FindByID はIDで書籍を著者付きで取得します。
// 書籍が存在しない場合、usecase.ErrBookNotFoundを返します。
func (r *bookMySQL) FindByID(ctx context.Context, id uint) (*entity.Book, error) {
	var book entity.Book
	if err := r.db.WithContext(ctx).Preload("Author").Where("id = ?", id).First(&book).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrBookNotFound
		}
		return nil, err
	}
	return &book, nil
}

// Update はカタログ項目（title, isbn, author_id）だけを更新します。
func (r *bookMySQL) Update(ctx context.Context, book *entity.Book) error {
	return r.db.WithContext(ctx).
		Model(&entity.Book{}).
		Where("id = ?", book.ID).
		Select("title", "isbn", "author_id").
		Updates(map[string]interface{}{
			"title":     book.Title,
			"isbn":      book.ISBN,
			"author_id": book.AuthorID,
		}).Error
}

// Delete はIDで書籍を削除します。
func (r *bookMySQL) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Book{}, id).Error
}
