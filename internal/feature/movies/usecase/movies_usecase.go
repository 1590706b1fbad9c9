// Package usecase は映画カタログ照会のビジネスロジックを実装します。
package usecase

import (
	"context"
	"strings"

	"mflix_backend/internal/feature/movies/domain/entity"
)

const (
	// DefaultLimit は1回の照会で返す映画の最大件数です。
	DefaultLimit = 20
)

// MovieRepository は映画データの読み取りレイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type MovieRepository interface {
	// Find はタイトルの部分一致（大文字小文字無視）で映画を検索します。
	// titleが空の場合はフィルタなしで先頭limit件を返します。
	Find(ctx context.Context, title string, limit int) ([]entity.Movie, error)
}

// moviesUsecase は映画カタログ照会のユースケースを定義します。
type moviesUsecase struct {
	movies MovieRepository
}

// NewMoviesUsecase はmoviesUsecaseの新しいインスタンスを生成します。
func NewMoviesUsecase(movies MovieRepository) *moviesUsecase {
	return &moviesUsecase{movies: movies}
}

// List はカタログの先頭からDefaultLimit件の映画を取得します。
func (u *moviesUsecase) List(ctx context.Context) ([]entity.Movie, error) {
	return u.movies.Find(ctx, "", DefaultLimit)
}

// Search はタイトルに部分一致する映画を取得します。
// 検索語が空白のみの場合はErrTitleRequiredを返します。
func (u *moviesUsecase) Search(ctx context.Context, title string) ([]entity.Movie, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrTitleRequired
	}
	return u.movies.Find(ctx, title, DefaultLimit)
}
