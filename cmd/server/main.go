package main

import (
	"log"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"github.com/yash5749/ONI-LIBRARY/internal/app/di"
	"github.com/yash5749/ONI-LIBRARY/internal/app/router"
	authadapters "github.com/yash5749/ONI-LIBRARY/internal/feature/auth/adapters"
	authhandler "github.com/yash5749/ONI-LIBRARY/internal/feature/auth/transport/handler"
	authusecase "github.com/yash5749/ONI-LIBRARY/internal/feature/auth/usecase"
	borrowadapters "github.com/yash5749/ONI-LIBRARY/internal/feature/borrow/adapters"
	borrowhandler "github.com/yash5749/ONI-LIBRARY/internal/feature/borrow/transport/handler"
	borrowusecase "github.com/yash5749/ONI-LIBRARY/internal/feature/borrow/usecase"
	catalogadapters "github.com/yash5749/ONI-LIBRARY/internal/feature/catalog/adapters"
	cataloghandler "github.com/yash5749/ONI-LIBRARY/internal/feature/catalog/transport/handler"
	catalogusecase "github.com/yash5749/ONI-LIBRARY/internal/feature/catalog/usecase"
	usersadapters "github.com/yash5749/ONI-LIBRARY/internal/feature/users/adapters"
	usershandler "github.com/yash5749/ONI-LIBRARY/internal/feature/users/transport/handler"
	usersusecase "github.com/yash5749/ONI-LIBRARY/internal/feature/users/usecase"
	"github.com/yash5749/ONI-LIBRARY/internal/platform/cache"
	"github.com/yash5749/ONI-LIBRARY/internal/platform/config"
	platformdb "github.com/yash5749/ONI-LIBRARY/internal/platform/db"
	jwtmw "github.com/yash5749/ONI-LIBRARY/internal/platform/jwt"
	platformredis "github.com/yash5749/ONI-LIBRARY/internal/platform/redis"
	"github.com/yash5749/ONI-LIBRARY/internal/shared/ratelimiter"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load configuration:", err)
	}

	// db
	db := platformdb.OpenDB(cfg)

	// Redis
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(cfg); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserMySQL(db)
	sessionRepo := di.NewSessionRepository(rdb, db)
	usersRepo := usersadapters.NewUserMySQL(db)
	authorRepo := catalogadapters.NewAuthorMySQL(db)
	bookRepo := catalogadapters.NewBookMySQL(db)
	loanRepo := borrowadapters.NewBookLoanMySQL(db)

	// 著者一覧はRedisキャッシュでラップ
	cachedAuthorRepo := cache.NewCachingAuthorRepository(rdb, 10*time.Minute, authorRepo, "authors")

	// Usecase
	jwtGen := jwtmw.NewGenerator(cfg.JWTSecret, cfg.AccessTokenTTL)
	authUC := authusecase.NewAuthUsecase(userRepo, sessionRepo, jwtGen, cfg.RefreshTokenTTL)
	usersUC := usersusecase.NewUserUsecase(usersRepo)
	authorUC := catalogusecase.NewAuthorUsecase(cachedAuthorRepo)
	bookUC := catalogusecase.NewBookUsecase(bookRepo, cachedAuthorRepo)
	borrowUC := borrowusecase.NewBorrowUsecase(loanRepo)

	// Handler
	loginLimiter := ratelimiter.NewRateLimiter(cfg.LoginRateLimit, time.Minute)
	h := router.Handlers{
		Auth:    authhandler.NewAuthHandler(authUC, loginLimiter),
		Users:   usershandler.NewUserHandler(usersUC),
		Authors: cataloghandler.NewAuthorHandler(authorUC),
		Books:   cataloghandler.NewBookHandler(bookUC),
		Borrow:  borrowhandler.NewBorrowHandler(borrowUC),
	}

	// ルータ生成
	r := router.NewRouter(h, cfg.JWTSecret)

	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal(err)
	}
}
