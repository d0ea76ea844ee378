package usecase

import (
	"context"

	"github.com/yash5749/ONI-LIBRARY/internal/feature/catalog/domain/entity"
)

// BookRepository はBookエンティティのカタログ側の永続化層を抽象化します。
// ローン状態（IsBorrowed / BorrowedByUserID）はborrowフィーチャーが所有するため、
// このリポジトリは決して書き込みません。
type BookRepository interface {
	// Create persists a new book.
	Create(ctx context.Context, book *entity.Book) error

	// FindAll returns books matching the filter, authors preloaded.
	FindAll(ctx context.Context, filter BookFilter) ([]entity.Book, error)

	// FindByID returns the book with its author preloaded.
	// It returns ErrBookNotFound if the book does not exist.
	FindByID(ctx context.Context, id uint) (*entity.Book, error)

	// Update persists changes to the book's catalog fields only
	// (title, isbn, authorId).
	Update(ctx context.Context, book *entity.Book) error

	// Delete removes the book.
	Delete(ctx context.Context, id uint) error
}

// BookFilter narrows a book listing. Zero values mean "no constraint".
type BookFilter struct {
	AuthorID   *uint
	Search     string // case-insensitive title substring
	IsBorrowed *bool
}

// UpdateBookInput carries the mutable catalog fields of a book; nil means
// "leave unchanged". Loan state is deliberately absent.
type UpdateBookInput struct {
	Title    *string
	ISBN     *string
	AuthorID *uint
}

// bookUsecase implements the book catalog operations.
type bookUsecase struct {
	books   BookRepository
	authors AuthorRepository
}

// NewBookUsecase はbookUsecaseの新しいインスタンスを生成します。
func NewBookUsecase(books BookRepository, authors AuthorRepository) *bookUsecase {
	return &bookUsecase{books: books, authors: authors}
}

// Create registers a new book. The referenced author must exist.
func (u *bookUsecase) Create(ctx context.Context, title string, isbn *string, authorID uint) (*entity.Book, error) {
	if _, err := u.authors.FindByID(ctx, authorID); err != nil {
		if err == ErrAuthorNotFound {
			return nil, ErrInvalidAuthorID
		}
		return nil, err
	}

	book := &entity.Book{Title: title, ISBN: isbn, AuthorID: authorID}
	if err := u.books.Create(ctx, book); err != nil {
		return nil, err
	}
	return u.books.FindByID(ctx, book.ID)
}

// List returns books matching the filter.
func (u *bookUsecase) List(ctx context.Context, filter BookFilter) ([]entity.Book, error) {
	return u.books.FindAll(ctx, filter)
}

// Get returns one book with its author.
func (u *bookUsecase) Get(ctx context.Context, id uint) (*entity.Book, error) {
	return u.books.FindByID(ctx, id)
}

// Update applies the given catalog changes to an existing book. A new
// authorId is validated against the authors table first.
func (u *bookUsecase) Update(ctx context.Context, id uint, in UpdateBookInput) (*entity.Book, error) {
	book, err := u.books.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.AuthorID != nil {
		if _, err := u.authors.FindByID(ctx, *in.AuthorID); err != nil {
			if err == ErrAuthorNotFound {
				return nil, ErrInvalidAuthorID
			}
			return nil, err
		}
		book.AuthorID = *in.AuthorID
	}
	if in.Title != nil {
		book.Title = *in.Title
	}
	if in.ISBN != nil {
		book.ISBN = in.ISBN
	}

	if err := u.books.Update(ctx, book); err != nil {
		return nil, err
	}
	return u.books.FindByID(ctx, id)
}

// Delete removes an existing book.
func (u *bookUsecase) Delete(ctx context.Context, id uint) error {
	if _, err := u.books.FindByID(ctx, id); err != nil {
		return err
	}
	return u.books.Delete(ctx, id)
}
