// Package db はMongoDB接続のセットアップを提供します。
package db

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// OpenMongo は指定されたURIに接続し、疎通確認済みのクライアントを返します。
// 起動直後のDB未準備に備え、60秒を上限に3秒間隔でリトライします。
func OpenMongo(uri string) *mongo.Client {
	var (
		client *mongo.Client
		err    error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		client, err = connect(uri)
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("MongoDB connect failed after 60s: %v", err)
		}
		log.Printf("MongoDB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	return client
}

// connect はクライアントを生成し、プライマリへのPingで疎通を確認します。
func connect(uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return client, nil
}
