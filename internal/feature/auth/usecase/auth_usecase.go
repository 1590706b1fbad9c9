// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mflix_backend/internal/feature/auth/domain/entity"
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化し、採番されたIDを返します。
	// 同じメールアドレスのユーザーが既に存在する場合、ErrEmailAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) (string, error)

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

// PasswordHasher はパスワードのハッシュ化・検証のインターフェースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/password）ではなくコンシューマー（usecase）が定義します。
type PasswordHasher interface {
	// Hash は平文パスワードのソルト付きダイジェストを返します。
	Hash(plain string) (string, error)
	// Verify は平文パスワードがダイジェストと一致するかを報告します。
	Verify(plain, digest string) bool
}

// TokenIssuer はトークン発行のインターフェースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/jwt）ではなくコンシューマー（usecase）が定義します。
type TokenIssuer interface {
	// Issue は指定されたユーザーの署名済みトークンを生成します。
	Issue(userID, email, role string) (string, error)
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users  UserRepository
	hasher PasswordHasher
	tokens TokenIssuer
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, hasher PasswordHasher, tokens TokenIssuer) *authUsecase {
	return &authUsecase{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

// Register はハッシュ化されたパスワードで新規ユーザーを登録し、採番されたIDを返します。
// 存在チェックとINSERTの間にトランザクション保護はありません。同一メールの同時登録は
// 事前チェックを同時に通過し得ますが、ストア側のユニークインデックスが最終的に弾き、
// その場合もErrEmailAlreadyExistsが返ります。
func (u *authUsecase) Register(ctx context.Context, name, email, password string) (string, error) {
	// メールアドレスの重複を事前チェック
	if _, err := u.users.FindByEmail(ctx, email); err == nil {
		return "", ErrEmailAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return "", fmt.Errorf("failed to check existing user: %w", err)
	}

	hashed, err := u.hasher.Hash(password)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashed,
		Role:         entity.RoleUser,
		CreatedAt:    time.Now(),
	}
	return u.users.Create(ctx, user)
}

// Login はユーザーを認証し、成功時に署名済みトークンを返します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもハッシュ比較を実行します。
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, error) {
	// メールアドレスでユーザーを検索
	user, err := u.users.FindByEmail(ctx, email)

	// ユーザーが存在しない場合のタイミング攻撃緩和用ダミーハッシュ
	// ハッシュ比較が常に実行されることを保証する
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy" // ダミーハッシュ
	if err == nil {
		passwordHash = user.PasswordHash
	}

	// タイミング攻撃防止のため、常にパスワードを検証
	ok := u.hasher.Verify(password, passwordHash)

	// ユーザー未検出またはパスワード不一致の場合、同一の汎用エラーを返す
	if err != nil || !ok {
		return "", ErrInvalidCredentials
	}

	// 注入されたコーデックでトークンを発行
	token, tokenErr := u.tokens.Issue(user.ID.Hex(), user.Email, user.Role)
	if tokenErr != nil {
		return "", fmt.Errorf("failed to generate token: %w", tokenErr)
	}

	return token, nil
}
