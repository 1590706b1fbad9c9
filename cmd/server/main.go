package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"mflix_backend/internal/app/router"
	"mflix_backend/internal/config"
	authadapters "mflix_backend/internal/feature/auth/adapters"
	authhandler "mflix_backend/internal/feature/auth/transport/handler"
	authusecase "mflix_backend/internal/feature/auth/usecase"
	complaintadapters "mflix_backend/internal/feature/complaints/adapters"
	complainthandler "mflix_backend/internal/feature/complaints/transport/handler"
	complaintsusecase "mflix_backend/internal/feature/complaints/usecase"
	movieadapters "mflix_backend/internal/feature/movies/adapters"
	moviehandler "mflix_backend/internal/feature/movies/transport/handler"
	moviesusecase "mflix_backend/internal/feature/movies/usecase"
	"mflix_backend/internal/platform/cache"
	"mflix_backend/internal/platform/db"
	jwtmw "mflix_backend/internal/platform/jwt"
	"mflix_backend/internal/platform/password"
	platformredis "mflix_backend/internal/platform/redis"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatal(err)
	}

	// db
	client := db.OpenMongo(cfg.Mongo.URI)
	database := client.Database(cfg.Mongo.Database)

	// Redis
	var rdb *redisv9.Client
	if cfg.Redis.Addr == "" {
		log.Println("[WARN] REDIS_ADDR is not set. Running without cache.")
	} else if tmp, err := platformredis.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserMongo(database)
	movieRepo := movieadapters.NewMovieMongo(database)
	complaintRepo := complaintadapters.NewComplaintMongo(database)

	// ユニークインデックス（email）を保証
	idxCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := userRepo.EnsureIndexes(idxCtx); err != nil {
		log.Println("[WARN] Failed to ensure user indexes:", err)
	}
	cancel()

	// Redisキャッシュでラップ
	cachedMovieRepo := cache.NewCachingMovieRepository(rdb, cfg.Redis.CacheTTL, movieRepo, "movies")

	// Platform
	hasher := password.NewHasher(cfg.BcryptCost)
	codec := jwtmw.NewCodec(cfg.JWT.Secret, cfg.JWT.TTL)

	// JWT_SECRETチェック（開発中の注意喚起）
	if cfg.JWT.Secret == config.DevJWTSecret {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, hasher, codec)
	moviesUC := moviesusecase.NewMoviesUsecase(cachedMovieRepo)
	complaintsUC := complaintsusecase.NewComplaintsUsecase(complaintRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	movieH := moviehandler.NewMovieHandler(moviesUC)
	complaintH := complainthandler.NewComplaintHandler(complaintsUC)

	// ルータ生成
	r := router.NewRouter(authH, movieH, complaintH, codec)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Println("listening on", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	// シグナルでグレースフルシャットダウン
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Println("[ERROR] Server shutdown:", err)
	}
	if err := client.Disconnect(shutdownCtx); err != nil {
		log.Println("[ERROR] MongoDB disconnect:", err)
	}
}
