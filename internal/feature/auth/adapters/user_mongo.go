// Package adapters はauthフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"mflix_backend/internal/feature/auth/domain/entity"
	"mflix_backend/internal/feature/auth/usecase"
)

// userMongo はUserRepositoryインターフェースのMongoDB実装です。
type userMongo struct {
	col *mongo.Collection
}

// userMongoがUserRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.UserRepository = (*userMongo)(nil)

// NewUserMongo は指定されたデータベースのusersコレクションを参照するリポジトリを生成します。
// 依存性注入用のコンストラクタです。
func NewUserMongo(database *mongo.Database) *userMongo {
	return &userMongo{col: database.Collection("users")}
}

// EnsureIndexes はemailのユニークインデックスを作成します。
// 登録フローの事前チェックを同時に通過した二重登録は、このインデックスが弾きます。
func (r *userMongo) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// Create はユーザーをデータベースに追加し、採番されたIDの16進表現を返します。
// 同じメールアドレスのユーザーが既に存在する場合、usecase.ErrEmailAlreadyExistsを返します。
func (r *userMongo) Create(ctx context.Context, u *entity.User) (string, error) {
	res, err := r.col.InsertOne(ctx, u)
	if err != nil {
		// ユニークインデックス違反: メールアドレスの重複
		if mongo.IsDuplicateKeyError(err) {
			return "", usecase.ErrEmailAlreadyExists
		}
		return "", err
	}

	oid, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// FindByEmail はメールアドレスでユーザーを取得します。
// ユーザーが存在しない場合、usecase.ErrUserNotFoundを返します。
func (r *userMongo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}
