// Package entity はcomplaintsフィーチャーのドメインエンティティを定義します。
package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// StatusOpen は新規作成された苦情の初期ステータスです。
// ステータスは閉じた列挙ではなく自由形式の文字列です。
const StatusOpen = "open"

// Complaint はユーザーが投稿した苦情を表します。
type Complaint struct {
	// ID is the unique identifier for the complaint.
	ID bson.ObjectID `bson:"_id,omitempty" json:"id"`

	// UserID は作成者のユーザーID（ObjectIDの16進表現）です。
	// 作成時に一度だけ設定され、以後変更されません。所有権チェックの基準になります。
	UserID string `bson:"userId" json:"userId"`

	Title       string   `bson:"title" json:"title"`
	Description string   `bson:"description" json:"description"`
	Attachments []string `bson:"attachments,omitempty" json:"attachments,omitempty"`

	// Status は苦情の処理状態です。
	Status string `bson:"status" json:"status"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
