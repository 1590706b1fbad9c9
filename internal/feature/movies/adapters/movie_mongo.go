// Package adapters はmoviesフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"mflix_backend/internal/feature/movies/domain/entity"
	"mflix_backend/internal/feature/movies/usecase"
)

// movieMongo はMovieRepositoryインターフェースのMongoDB実装です。
type movieMongo struct {
	col *mongo.Collection
}

// movieMongoがMovieRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.MovieRepository = (*movieMongo)(nil)

// NewMovieMongo は指定されたデータベースのmoviesコレクションを参照するリポジトリを生成します。
func NewMovieMongo(database *mongo.Database) *movieMongo {
	return &movieMongo{col: database.Collection("movies")}
}

// Find はタイトルの部分一致（大文字小文字無視の正規表現）で映画を検索します。
// 公開フィールドのみを射影し、_idは返しません。
func (r *movieMongo) Find(ctx context.Context, title string, limit int) ([]entity.Movie, error) {
	filter := bson.M{}
	if title != "" {
		filter["title"] = bson.M{"$regex": title, "$options": "i"}
	}

	opts := options.Find().
		SetLimit(int64(limit)).
		SetProjection(bson.M{
			"title":  1,
			"year":   1,
			"plot":   1,
			"genres": 1,
			"rated":  1,
			"cast":   1,
			"_id":    0,
		})

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	out := []entity.Movie{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
