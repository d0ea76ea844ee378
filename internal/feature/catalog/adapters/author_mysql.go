// Package adapters はcatalogフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/yash5749/ONI-LIBRARY/internal/feature/catalog/domain/entity"
	"github.com/yash5749/ONI-LIBRARY/internal/feature/catalog/usecase"
)

// authorMySQL はAuthorRepositoryインターフェースのMySQL実装です。
type authorMySQL struct {
	db *gorm.DB
}

// authorMySQLがAuthorRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.AuthorRepository = (*authorMySQL)(nil)

// NewAuthorMySQL は指定されたgorm.DB接続でauthorMySQLの新しいインスタンスを生成します。
func NewAuthorMySQL(db *gorm.DB) *authorMySQL {
	return &authorMySQL{db: db}
}

// Create は著者をデータベースに追加します。
func (r *authorMySQL) Create(ctx context.Context, author *entity.Author) error {
	return r.db.WithContext(ctx).Create(author).Error
}

// FindAll は全著者を取得します。書籍はプリロードしません。
func (r *authorMySQL) FindAll(ctx context.Context) ([]entity.Author, error) {
	var authors []entity.Author
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&authors).Error; err != nil {
		return nil, err
	}
	return authors, nil
}

// FindByID はIDで著者を取得します。書籍も一緒にロードします。
// 著者が存在しない場合、usecase.ErrAuthorNotFoundを返します。
func (r *authorMySQL) FindByID(ctx context.Context, id uint) (*entity.Author, error) {
	var author entity.Author
	if err := r.db.WithContext(ctx).Preload("Books").Where("id = ?", id).First(&author).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrAuthorNotFound
		}
		return nil, err
	}
	return &author, nil
}

// Update は著者の名前とbioを更新します。
func (r *authorMySQL) Update(ctx context.Context, author *entity.Author) error {
	return r.db.WithContext(ctx).
		Model(&entity.Author{}).
		Where("id = ?", author.ID).
		Select("name", "bio").
		Updates(map[string]interface{}{"name": author.Name, "bio": author.Bio}).Error
}

// Delete はIDで著者を削除します。
func (r *authorMySQL) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Author{}, id).Error
}
