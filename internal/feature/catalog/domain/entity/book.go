package entity

import "time"

// Book represents a catalog book together with its loan state.
//
// The catalog feature owns Title, ISBN and AuthorID. IsBorrowed and
// BorrowedByUserID are owned exclusively by the borrow feature; no other
// component writes them. The pair always satisfies the invariant
// IsBorrowed == false <=> BorrowedByUserID == nil.
type Book struct {
	// ID is the unique identifier for the book.
	ID uint `gorm:"primaryKey" json:"id"`

	// Title is the book's title.
	Title string `gorm:"size:255;not null" json:"title"`

	// ISBN is optional and not validated for format.
	ISBN *string `gorm:"size:64" json:"isbn,omitempty"`

	// AuthorID references the owning author. Validated against the
	// authors table on create and update.
	AuthorID uint `gorm:"index;not null" json:"authorId"`

	// Author is the owning author, loaded on demand.
	Author *Author `gorm:"foreignKey:AuthorID" json:"author,omitempty"`

	// IsBorrowed reports whether the book is currently on loan.
	IsBorrowed bool `gorm:"not null;default:false" json:"isBorrowed"`

	// BorrowedByUserID is the borrowing user's ID, nil when available.
	BorrowedByUserID *uint `gorm:"index" json:"borrowedByUserId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
