// Package jwtmw はJWTトークンの発行・検証とGin認証ミドルウェアを提供します。
package jwtmw

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL はトークンの有効期限のデフォルト値です。
const DefaultTTL = 12 * time.Hour

// ErrInvalidToken is returned for every verification failure.
// 署名不正・構造不正・期限切れを呼び出し側に区別させません。
var ErrInvalidToken = errors.New("invalid token")

// Claims はトークンに埋め込まれる最小限のクレームセットです。
type Claims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Codec はサーバー保持のシークレットで署名付きトークンを発行・検証します。
// シークレットは構築時に注入され、以後変更されません。
type Codec struct {
	secret []byte
	ttl    time.Duration
}

// NewCodec は指定されたシークレットと有効期限でCodecを生成します。
// ttlが0以下の場合はDefaultTTL（12時間）を使用します。
func NewCodec(secret string, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Codec{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue は指定されたユーザーの署名済みトークンを生成します。
// 有効期限は発行時刻 + TTLです。
func (c *Codec) Issue(userID, email, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify はトークンの署名と有効期限を検証し、クレームを返します。
// あらゆる失敗はErrInvalidTokenに集約されます。
func (c *Codec) Verify(tokenStr string) (*Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		// 署名アルゴリズムを確認（HMACのみ許可）
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return &claims, nil
}
