package db

import (
	"log"
	"time"

	gmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	authadapters "github.com/yash5749/ONI-LIBRARY/internal/feature/auth/adapters"
	authentity "github.com/yash5749/ONI-LIBRARY/internal/feature/auth/domain/entity"
	catalogentity "github.com/yash5749/ONI-LIBRARY/internal/feature/catalog/domain/entity"
	"github.com/yash5749/ONI-LIBRARY/internal/platform/config"
)

// OpenDB connects to MySQL, retrying until the database becomes reachable.
// Migrations run only when RUN_MIGRATIONS is set, so production schemas
// stay under operator control.
func OpenDB(cfg *config.Config) *gorm.DB {
	dsn := cfg.DSN()

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(gmysql.Open(dsn), &gorm.Config{})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if cfg.RunMigrations {
		// マイグレーション（User, Session, Author, Book）
		if err := db.AutoMigrate(
			&authentity.User{},
			&authadapters.SessionModel{},
			&catalogentity.Author{},
			&catalogentity.Book{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
