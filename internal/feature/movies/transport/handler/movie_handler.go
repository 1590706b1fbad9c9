// Package handler はmoviesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"mflix_backend/internal/api"
	"mflix_backend/internal/feature/movies/domain/entity"
	"mflix_backend/internal/feature/movies/usecase"
)

// MoviesUsecase は映画カタログ照会のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type MoviesUsecase interface {
	List(ctx context.Context) ([]entity.Movie, error)
	Search(ctx context.Context, title string) ([]entity.Movie, error)
}

// MovieHandler は映画カタログのHTTPリクエストを処理します。
type MovieHandler struct {
	uc MoviesUsecase
}

// NewMovieHandler は指定されたusecaseでMovieHandlerの新しいインスタンスを生成します。
func NewMovieHandler(uc MoviesUsecase) *MovieHandler {
	return &MovieHandler{uc: uc}
}

// List は GET /api/movies を処理し、カタログ先頭の映画を返します。
func (h *MovieHandler) List(c *gin.Context) {
	movies, err := h.uc.List(c.Request.Context())
	if err != nil {
		slog.Error("failed to list movies", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to fetch movies"})
		return
	}

	c.JSON(http.StatusOK, api.ListResponse{Count: len(movies), Data: movies})
}

// Search は GET /api/movies/search?title= を処理し、タイトル部分一致の映画を返します。
// titleパラメータがない場合は400を返します。
func (h *MovieHandler) Search(c *gin.Context) {
	title := c.Query("title")

	movies, err := h.uc.Search(c.Request.Context(), title)
	if err != nil {
		if errors.Is(err, usecase.ErrTitleRequired) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "title query parameter is required"})
			return
		}
		slog.Error("failed to search movies", "error", err, "title", title)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to search movies"})
		return
	}

	c.JSON(http.StatusOK, api.ListResponse{Count: len(movies), Data: movies})
}
