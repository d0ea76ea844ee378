// Package entity defines the catalog domain entities: authors and books.
// They live in one package because a Book always references its Author.
package entity

import "time"

// Author represents a book author in the catalog.
type Author struct {
	// ID is the unique identifier for the author.
	ID uint `gorm:"primaryKey" json:"id"`

	// Name is the author's display name.
	Name string `gorm:"size:255;not null" json:"name"`

	// Bio is an optional short biography.
	Bio *string `gorm:"size:1024" json:"bio,omitempty"`

	// Books are the author's books, loaded on demand.
	Books []Book `gorm:"foreignKey:AuthorID" json:"books,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
