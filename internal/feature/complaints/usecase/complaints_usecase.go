// Package usecase は苦情管理のビジネスロジックを実装します。
package usecase

import (
	"context"
	"time"

	"mflix_backend/internal/feature/complaints/domain/entity"
)

// ComplaintRepository は苦情エンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type ComplaintRepository interface {
	// Insert は新しい苦情をストレージに永続化し、採番されたIDを返します。
	Insert(ctx context.Context, complaint *entity.Complaint) (string, error)

	// FindAll はすべての苦情を取得します。
	FindAll(ctx context.Context) ([]entity.Complaint, error)

	// FindByUser は指定されたユーザーが所有する苦情のみを取得します。
	// 所有権フィルタはここ（データ取得境界）で適用され、取得後の絞り込みは行いません。
	FindByUser(ctx context.Context, userID string) ([]entity.Complaint, error)

	// FindByID はIDで苦情を取得します。存在しない場合、ErrComplaintNotFoundを返します。
	FindByID(ctx context.Context, id string) (*entity.Complaint, error)

	// UpdateStatus は苦情のステータスを更新します。対象が存在しない場合、ErrComplaintNotFoundを返します。
	UpdateStatus(ctx context.Context, id, status string) error

	// Delete は苦情を削除します。対象が存在しない場合、ErrComplaintNotFoundを返します。
	Delete(ctx context.Context, id string) error
}

// complaintsUsecase は苦情管理のユースケースを定義します。
type complaintsUsecase struct {
	complaints ComplaintRepository
}

// NewComplaintsUsecase はcomplaintsUsecaseの新しいインスタンスを生成します。
func NewComplaintsUsecase(complaints ComplaintRepository) *complaintsUsecase {
	return &complaintsUsecase{complaints: complaints}
}

// Create は認証済みユーザーの新しい苦情を登録し、採番されたIDを返します。
// ステータスはopenで初期化されます。
func (u *complaintsUsecase) Create(ctx context.Context, userID, title, description string, attachments []string) (string, error) {
	now := time.Now()
	complaint := &entity.Complaint{
		UserID:      userID,
		Title:       title,
		Description: description,
		Attachments: attachments,
		Status:      entity.StatusOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return u.complaints.Insert(ctx, complaint)
}

// ListAll はすべての苦情を取得します。
func (u *complaintsUsecase) ListAll(ctx context.Context) ([]entity.Complaint, error) {
	return u.complaints.FindAll(ctx)
}

// ListByUser は指定されたユーザーが所有する苦情のみを取得します。
func (u *complaintsUsecase) ListByUser(ctx context.Context, userID string) ([]entity.Complaint, error) {
	return u.complaints.FindByUser(ctx, userID)
}

// Get はIDで苦情を取得します。
func (u *complaintsUsecase) Get(ctx context.Context, id string) (*entity.Complaint, error) {
	return u.complaints.FindByID(ctx, id)
}

// UpdateStatus は苦情のステータスを更新します。
func (u *complaintsUsecase) UpdateStatus(ctx context.Context, id, status string) error {
	return u.complaints.UpdateStatus(ctx, id, status)
}

// Delete は苦情を削除します。
func (u *complaintsUsecase) Delete(ctx context.Context, id string) error {
	return u.complaints.Delete(ctx, id)
}
