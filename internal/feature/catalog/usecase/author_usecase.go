package usecase

import (
	"context"

	"github.com/yash5749/ONI-LIBRARY/internal/feature/catalog/domain/entity"
)

// AuthorRepository はAuthorエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type AuthorRepository interface {
	// Create persists a new author.
	Create(ctx context.Context, author *entity.Author) error

	// FindAll returns every author, without their books.
	FindAll(ctx context.Context) ([]entity.Author, error)

	// FindByID returns the author with its books preloaded.
	// It returns ErrAuthorNotFound if the author does not exist.
	FindByID(ctx context.Context, id uint) (*entity.Author, error)

	// Update persists changes to the author's name and bio.
	Update(ctx context.Context, author *entity.Author) error

	// Delete removes the author.
	Delete(ctx context.Context, id uint) error
}

// UpdateAuthorInput carries the mutable author fields; nil means "leave
// unchanged".
type UpdateAuthorInput struct {
	Name *string
	Bio  *string
}

// authorUsecase implements the author catalog operations.
type authorUsecase struct {
	authors AuthorRepository
}

// NewAuthorUsecase はauthorUsecaseの新しいインスタンスを生成します。
func NewAuthorUsecase(authors AuthorRepository) *authorUsecase {
	return &authorUsecase{authors: authors}
}

// Create registers a new author.
func (u *authorUsecase) Create(ctx context.Context, name string, bio *string) (*entity.Author, error) {
	author := &entity.Author{Name: name, Bio: bio}
	if err := u.authors.Create(ctx, author); err != nil {
		return nil, err
	}
	return author, nil
}

// List returns all authors.
func (u *authorUsecase) List(ctx context.Context) ([]entity.Author, error) {
	return u.authors.FindAll(ctx)
}

// Get returns one author with its books.
func (u *authorUsecase) Get(ctx context.Context, id uint) (*entity.Author, error) {
	return u.authors.FindByID(ctx, id)
}

// Update applies the given changes to an existing author.
func (u *authorUsecase) Update(ctx context.Context, id uint, in UpdateAuthorInput) (*entity.Author, error) {
	author, err := u.authors.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		author.Name = *in.Name
	}
	if in.Bio != nil {
		author.Bio = in.Bio
	}

	if err := u.authors.Update(ctx, author); err != nil {
		return nil, err
	}
	return author, nil
}

// Delete removes an existing author.
func (u *authorUsecase) Delete(ctx context.Context, id uint) error {
	if _, err := u.authors.FindByID(ctx, id); err != nil {
		return err
	}
	return u.authors.Delete(ctx, id)
}
