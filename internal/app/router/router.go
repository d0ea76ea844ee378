package router

import (
	"github.com/gin-gonic/gin"

	authhandler "github.com/yash5749/ONI-LIBRARY/internal/feature/auth/transport/handler"
	borrowhandler "github.com/yash5749/ONI-LIBRARY/internal/feature/borrow/transport/handler"
	cataloghandler "github.com/yash5749/ONI-LIBRARY/internal/feature/catalog/transport/handler"
	usershandler "github.com/yash5749/ONI-LIBRARY/internal/feature/users/transport/handler"
	"github.com/yash5749/ONI-LIBRARY/internal/platform/http/handler"
	jwtmw "github.com/yash5749/ONI-LIBRARY/internal/platform/jwt"
	"github.com/yash5749/ONI-LIBRARY/internal/shared/requestid"
)

// Handlers bundles every HTTP handler the router mounts.
type Handlers struct {
	Auth    *authhandler.AuthHandler
	Users   *usershandler.UserHandler
	Authors *cataloghandler.AuthorHandler
	Books   *cataloghandler.BookHandler
	Borrow  *borrowhandler.BorrowHandler
}

// NewRouter はHTTPルートを組み立てます。
// jwtSecretはトークン検証ミドルウェアに渡されます。
func NewRouter(h Handlers, jwtSecret string) *gin.Engine {
	r := gin.Default()
	r.Use(requestid.New())

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)
	// 新規ユーザー登録
	r.POST("/signup", h.Auth.Signup)
	// ログイン（JWT＋リフレッシュトークン発行）
	r.POST("/login", h.Auth.Login)
	// トークンローテーション
	r.POST("/refresh", h.Auth.Refresh)
	// ログアウト（セッション失効）
	r.POST("/logout", h.Auth.Logout)

	// カタログの参照は公開
	r.GET("/authors", h.Authors.List)
	r.GET("/authors/:id", h.Authors.Get)
	r.GET("/books", h.Books.List)
	r.GET("/books/:id", h.Books.Get)

	// 認証必須のルート
	auth := r.Group("/")
	auth.Use(jwtmw.AuthRequired(jwtSecret))
	{
		auth.GET("/users/me", h.Users.Me)
		auth.POST("/borrow", h.Borrow.Borrow)
		auth.POST("/borrow/return", h.Borrow.Return)
		auth.GET("/borrow/user/me", h.Borrow.ListMine)
	}

	// 管理者専用のルート
	admin := r.Group("/")
	admin.Use(jwtmw.AuthRequired(jwtSecret), jwtmw.AdminRequired())
	{
		admin.GET("/users", h.Users.List)
		admin.PATCH("/users/promote/:id", h.Users.Promote)
		admin.DELETE("/users/:id", h.Users.Delete)

		admin.POST("/authors", h.Authors.Create)
		admin.PATCH("/authors/:id", h.Authors.Update)
		admin.DELETE("/authors/:id", h.Authors.Delete)

		admin.POST("/books", h.Books.Create)
		admin.PATCH("/books/:id", h.Books.Update)
		admin.DELETE("/books/:id", h.Books.Delete)
	}

	return r
}
