// Package adapters はcomplaintsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"mflix_backend/internal/feature/complaints/domain/entity"
	"mflix_backend/internal/feature/complaints/usecase"
)

// complaintMongo はComplaintRepositoryインターフェースのMongoDB実装です。
type complaintMongo struct {
	col *mongo.Collection
}

// complaintMongoがComplaintRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.ComplaintRepository = (*complaintMongo)(nil)

// NewComplaintMongo は指定されたデータベースのcomplaintsコレクションを参照するリポジトリを生成します。
func NewComplaintMongo(database *mongo.Database) *complaintMongo {
	return &complaintMongo{col: database.Collection("complaints")}
}

// Insert は苦情をデータベースに追加し、採番されたIDの16進表現を返します。
func (r *complaintMongo) Insert(ctx context.Context, complaint *entity.Complaint) (string, error) {
	res, err := r.col.InsertOne(ctx, complaint)
	if err != nil {
		return "", err
	}

	oid, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// FindAll はすべての苦情を取得します。
func (r *complaintMongo) FindAll(ctx context.Context) ([]entity.Complaint, error) {
	return r.find(ctx, bson.M{})
}

// FindByUser は指定されたユーザーが所有する苦情のみを取得します。
// フィルタはクエリ自体に適用されるため、他ユーザーのレコードは一時的にも取得されません。
func (r *complaintMongo) FindByUser(ctx context.Context, userID string) ([]entity.Complaint, error) {
	return r.find(ctx, bson.M{"userId": userID})
}

// find は指定されたフィルタで苦情を検索します。
func (r *complaintMongo) find(ctx context.Context, filter bson.M) ([]entity.Complaint, error) {
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := []entity.Complaint{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FindByID はIDで苦情を取得します。
// IDが不正な形式の場合も、存在しない場合と同様にusecase.ErrComplaintNotFoundを返します。
func (r *complaintMongo) FindByID(ctx context.Context, id string) (*entity.Complaint, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, usecase.ErrComplaintNotFound
	}

	var complaint entity.Complaint
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&complaint); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, usecase.ErrComplaintNotFound
		}
		return nil, err
	}
	return &complaint, nil
}

// UpdateStatus は苦情のステータスとupdatedAtを更新します。
// 存在判定はMatchedCountで行うため、同じステータスの再送信は404になりません。
func (r *complaintMongo) UpdateStatus(ctx context.Context, id, status string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return usecase.ErrComplaintNotFound
	}

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return usecase.ErrComplaintNotFound
	}
	return nil
}

// Delete は苦情を削除します。
func (r *complaintMongo) Delete(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return usecase.ErrComplaintNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return usecase.ErrComplaintNotFound
	}
	return nil
}
