package main

import (
	"fmt"
	"log"
	"math/rand"

	"golang.org/x/crypto/bcrypt"

	authentity "github.com/yash5749/ONI-LIBRARY/internal/feature/auth/domain/entity"
	catalogentity "github.com/yash5749/ONI-LIBRARY/internal/feature/catalog/domain/entity"
	"github.com/yash5749/ONI-LIBRARY/internal/platform/config"
	platformdb "github.com/yash5749/ONI-LIBRARY/internal/platform/db"
	"github.com/yash5749/ONI-LIBRARY/internal/shared/role"
)

const (
	userCount   = 100
	authorCount = 20
	bookCount   = 150
)

// 開発用データ投入コマンド。既存データがある場合は何もしません。
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load configuration:", err)
	}
	db := platformdb.OpenDB(cfg)

	var existing int64
	if err := db.Model(&authentity.User{}).Count(&existing).Error; err != nil {
		log.Fatal("failed to count users:", err)
	}
	if existing > 0 {
		log.Println("database already seeded, nothing to do")
		return
	}

	// 再現性のため固定シード
	rng := rand.New(rand.NewSource(42))

	hash := func(password string) string {
		h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal("failed to hash password:", err)
		}
		return string(h)
	}

	// 管理者1名＋一般ユーザー99名
	users := []authentity.User{{
		Email:    "admin@example.com",
		Name:     "Admin",
		Password: hash("admin123"),
		Role:     role.Admin,
	}}
	for i := 1; i < userCount; i++ {
		users = append(users, authentity.User{
			Email:    fmt.Sprintf("user%d@example.com", i),
			Name:     fmt.Sprintf("User %d", i),
			Password: hash("password123"),
			Role:     role.User,
		})
	}
	if err := db.CreateInBatches(&users, 50).Error; err != nil {
		log.Fatal("failed to seed users:", err)
	}

	authors := make([]catalogentity.Author, 0, authorCount)
	for i := 1; i <= authorCount; i++ {
		bio := fmt.Sprintf("Biography of author %d.", i)
		authors = append(authors, catalogentity.Author{
			Name: fmt.Sprintf("Author %d", i),
			Bio:  &bio,
		})
	}
	if err := db.CreateInBatches(&authors, 50).Error; err != nil {
		log.Fatal("failed to seed authors:", err)
	}

	// 書籍の2〜4割を貸出中にする
	borrowedTarget := bookCount*20/100 + rng.Intn(bookCount*20/100)
	books := make([]catalogentity.Book, 0, bookCount)
	for i := 1; i <= bookCount; i++ {
		isbn := fmt.Sprintf("978-4-%04d-%04d-%d", rng.Intn(10000), rng.Intn(10000), rng.Intn(10))
		book := catalogentity.Book{
			Title:    fmt.Sprintf("Book %d", i),
			ISBN:     &isbn,
			AuthorID: authors[rng.Intn(authorCount)].ID,
		}
		if i <= borrowedTarget {
			borrower := users[rng.Intn(userCount)].ID
			book.IsBorrowed = true
			book.BorrowedByUserID = &borrower
		}
		books = append(books, book)
	}
	if err := db.CreateInBatches(&books, 50).Error; err != nil {
		log.Fatal("failed to seed books:", err)
	}

	log.Printf("seed ok: %d users, %d authors, %d books (%d borrowed)",
		len(users), len(authors), len(books), borrowedTarget)
}
