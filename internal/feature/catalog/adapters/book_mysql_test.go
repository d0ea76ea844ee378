package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/yash5749/ONI-LIBRARY/internal/feature/catalog/domain/entity"
	"github.com/yash5749/ONI-LIBRARY/internal/feature/catalog/usecase"
)

func uintPtr(v uint) *uint { return &v }

func boolptr(v bool) *bool { return &v }

// seedCatalog creates an author and a few books for filter tests.
func seedCatalog(t *testing.T, db *gorm.DB) (authorID uint) {
	t.Helper()

	author := entity.Author{Name: "Seed Author"}
	require.NoError(t, db.Create(&author).Error)

	books := []entity.Book{
		{Title: "The Left Hand of Darkness", AuthorID: author.ID},
		{Title: "The Dispossessed", AuthorID: author.ID},
		{Title: "Unrelated Title", AuthorID: author.ID, IsBorrowed: true, BorrowedByUserID: uintPtr(7)},
	}
	require.NoError(t, db.Create(&books).Error)
	return author.ID
}

func TestBookMySQL_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBookMySQL(db)

	author := entity.Author{Name: "A"}
	require.NoError(t, db.Create(&author).Error)

	book := &entity.Book{Title: "New Book", ISBN: strptr("978-0"), AuthorID: author.ID}
	err := repo.Create(context.Background(), book)

	assert.NoError(t, err)
	assert.NotZero(t, book.ID)
	assert.False(t, book.IsBorrowed, "new books start available")
	assert.Nil(t, book.BorrowedByUserID)
}

func TestBookMySQL_FindAll(t *testing.T) {
	tests := []struct {
		name       string
		filter     usecase.BookFilter
		wantTitles []string
	}{
		{
			name:       "no filter returns everything",
			filter:     usecase.BookFilter{},
			wantTitles: []string{"The Left Hand of Darkness", "The Dispossessed", "Unrelated Title"},
		},
		{
			name:       "search matches case-insensitively",
			filter:     usecase.BookFilter{Search: "the"},
			wantTitles: []string{"The Left Hand of Darkness", "The Dispossessed"},
		},
		{
			name:       "borrowed filter",
			filter:     usecase.BookFilter{IsBorrowed: boolptr(true)},
			wantTitles: []string{"Unrelated Title"},
		},
		{
			name:       "available filter",
			filter:     usecase.BookFilter{IsBorrowed: boolptr(false)},
			wantTitles: []string{"The Left Hand of Darkness", "The Dispossessed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB(t)
			repo := NewBookMySQL(db)
			seedCatalog(t, db)

			books, err := repo.FindAll(context.Background(), tt.filter)

			require.NoError(t, err)
			titles := make([]string, len(books))
			for i, b := range books {
				titles[i] = b.Title
				assert.NotNil(t, b.Author, "author should be preloaded")
			}
			assert.ElementsMatch(t, tt.wantTitles, titles)
		})
	}

	t.Run("author filter", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewBookMySQL(db)
		authorID := seedCatalog(t, db)

		other := entity.Author{Name: "Other"}
		require.NoError(t, db.Create(&other).Error)
		require.NoError(t, db.Create(&entity.Book{Title: "Other Book", AuthorID: other.ID}).Error)

		books, err := repo.FindAll(context.Background(), usecase.BookFilter{AuthorID: &authorID})

		require.NoError(t, err)
		assert.Len(t, books, 3)
	})
}

func TestBookMySQL_FindByID(t *testing.T) {
	t.Run("found with author preloaded", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewBookMySQL(db)

		author := entity.Author{Name: "A"}
		require.NoError(t, db.Create(&author).Error)
		book := entity.Book{Title: "B", AuthorID: author.ID}
		require.NoError(t, db.Create(&book).Error)

		got, err := repo.FindByID(context.Background(), book.ID)

		require.NoError(t, err)
		require.NotNil(t, got.Author)
		assert.Equal(t, "A", got.Author.Name)
	})

	t.Run("not found", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewBookMySQL(db)

		_, err := repo.FindByID(context.Background(), 999)

		assert.ErrorIs(t, err, usecase.ErrBookNotFound)
	})
}

func TestBookMySQL_Update_DoesNotTouchLoanState(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBookMySQL(db)

	author := entity.Author{Name: "A"}
	require.NoError(t, db.Create(&author).Error)
	book := entity.Book{Title: "Old", AuthorID: author.ID, IsBorrowed: true, BorrowedByUserID: uintPtr(7)}
	require.NoError(t, db.Create(&book).Error)

	book.Title = "New"
	require.NoError(t, repo.Update(context.Background(), &book))

	got, err := repo.FindByID(context.Background(), book.ID)
	require.NoError(t, err)
	assert.Equal(t, "New", got.Title)
	// 借用状態はカタログ更新で変わってはならない
	assert.True(t, got.IsBorrowed)
	require.NotNil(t, got.BorrowedByUserID)
	assert.Equal(t, uint(7), *got.BorrowedByUserID)
}

func TestBookMySQL_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBookMySQL(db)

	author := entity.Author{Name: "A"}
	require.NoError(t, db.Create(&author).Error)
	book := entity.Book{Title: "B", AuthorID: author.ID}
	require.NoError(t, db.Create(&book).Error)

	require.NoError(t, repo.Delete(context.Background(), book.ID))

	_, err := repo.FindByID(context.Background(), book.ID)
	assert.ErrorIs(t, err, usecase.ErrBookNotFound)
}
