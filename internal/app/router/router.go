package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "mflix_backend/internal/feature/auth/transport/handler"
	complainthandler "mflix_backend/internal/feature/complaints/transport/handler"
	moviehandler "mflix_backend/internal/feature/movies/transport/handler"
	"mflix_backend/internal/platform/http/handler"
	jwtmw "mflix_backend/internal/platform/jwt"
)

func NewRouter(authHandler *authhandler.AuthHandler, movies *moviehandler.MovieHandler,
	complaints *complainthandler.ComplaintHandler, verifier jwtmw.Verifier) *gin.Engine {
	r := gin.Default()

	// CORS（すべてのエンドポイントで許可）
	r.Use(cors.Default())

	// 認証不要
	// 導通確認用
	r.GET("/api/health", handler.Health)
	// 映画カタログ
	r.GET("/api/movies", movies.List)
	r.GET("/api/movies/search", movies.Search)
	// 新規ユーザー登録
	r.POST("/api/register", authHandler.Register)
	// ログイン（トークン発行）
	r.POST("/api/login", authHandler.Login)
	// 苦情の公開参照
	r.GET("/api/complaints", complaints.ListAll)
	r.GET("/api/complaints/:id", complaints.Get)
	r.PATCH("/api/complaints/:id/status", complaints.UpdateStatus)
	r.DELETE("/api/complaints/:id", complaints.Delete)

	// 認証必須のルート
	// r.Group("/") でルートグループを作成
	auth := r.Group("/")
	// jwtmw.AuthRequired() ミドルウェアを適用
	// → リクエストヘッダーにBearerトークンが必要になる
	auth.Use(jwtmw.AuthRequired(verifier))
	{
		auth.POST("/api/complaints", complaints.Create)
		auth.GET("/api/complaints/my", complaints.ListMine)
	}

	return r
}
