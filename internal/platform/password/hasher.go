// Package password はbcryptによるパスワードハッシュ化を提供します。
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher はソルト付きの一方向パスワードハッシュを生成・検証します。
type Hasher struct {
	cost int
}

// NewHasher は指定されたコストファクターでHasherを生成します。
// bcryptの有効範囲外のコストはデフォルト（10）に丸められます。
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash は平文パスワードのbcryptダイジェストを返します。
// ソルトは呼び出しごとにランダムなので、同じ平文でも毎回異なるダイジェストになります。
func (h *Hasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(b), nil
}

// Verify は平文パスワードが保存済みダイジェストと一致するかを報告します。
// 比較はbcryptの定数時間比較で行われます。ダイジェストが不正な形式の場合もfalseを返します。
func (h *Hasher) Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
