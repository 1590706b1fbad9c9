// Package handler はcomplaintsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"mflix_backend/internal/api"
	"mflix_backend/internal/feature/complaints/domain/entity"
	"mflix_backend/internal/feature/complaints/transport/http/dto"
	"mflix_backend/internal/feature/complaints/usecase"
	jwtmw "mflix_backend/internal/platform/jwt"
)

// ComplaintsUsecase は苦情管理のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type ComplaintsUsecase interface {
	Create(ctx context.Context, userID, title, description string, attachments []string) (string, error)
	ListAll(ctx context.Context) ([]entity.Complaint, error)
	ListByUser(ctx context.Context, userID string) ([]entity.Complaint, error)
	Get(ctx context.Context, id string) (*entity.Complaint, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

// ComplaintHandler は苦情管理のHTTPリクエストを処理します。
type ComplaintHandler struct {
	uc ComplaintsUsecase
}

// NewComplaintHandler は指定されたusecaseでComplaintHandlerの新しいインスタンスを生成します。
func NewComplaintHandler(uc ComplaintsUsecase) *ComplaintHandler {
	return &ComplaintHandler{uc: uc}
}

// Create は POST /api/complaints を処理します。認証必須です。
// 作成者のユーザーIDは認証ミドルウェアが注入したアイデンティティから取得します。
func (h *ComplaintHandler) Create(c *gin.Context) {
	var req dto.CreateComplaintReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.ValidationMessage(err)})
		return
	}

	userID := c.GetString(jwtmw.ContextUserID)

	id, err := h.uc.Create(c.Request.Context(), userID, req.Title, req.Description, req.Attachments)
	if err != nil {
		slog.Error("failed to create complaint", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to create complaint"})
		return
	}

	slog.Info("complaint created", "id", id, "user_id", userID)
	c.JSON(http.StatusOK, api.CreatedResponse{Success: true, ID: id})
}

// ListAll は GET /api/complaints を処理し、すべての苦情を返します。
func (h *ComplaintHandler) ListAll(c *gin.Context) {
	complaints, err := h.uc.ListAll(c.Request.Context())
	if err != nil {
		slog.Error("failed to list complaints", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to fetch complaints"})
		return
	}

	c.JSON(http.StatusOK, api.ListResponse{Count: len(complaints), Data: complaints})
}

// ListMine は GET /api/complaints/my を処理します。認証必須です。
// 認証済みユーザーが所有する苦情のみを返します。
func (h *ComplaintHandler) ListMine(c *gin.Context) {
	userID := c.GetString(jwtmw.ContextUserID)

	complaints, err := h.uc.ListByUser(c.Request.Context(), userID)
	if err != nil {
		slog.Error("failed to list user complaints", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to fetch complaints"})
		return
	}

	c.JSON(http.StatusOK, api.ListResponse{Count: len(complaints), Data: complaints})
}

// Get は GET /api/complaints/:id を処理し、苦情の詳細を返します。
func (h *ComplaintHandler) Get(c *gin.Context) {
	id := c.Param("id")

	complaint, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrComplaintNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "complaint not found"})
			return
		}
		slog.Error("failed to get complaint", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to fetch complaint"})
		return
	}

	c.JSON(http.StatusOK, complaint)
}

// UpdateStatus は PATCH /api/complaints/:id/status を処理します。
func (h *ComplaintHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.ValidationMessage(err)})
		return
	}

	if err := h.uc.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		if errors.Is(err, usecase.ErrComplaintNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "complaint not found"})
			return
		}
		slog.Error("failed to update complaint status", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to update complaint"})
		return
	}

	c.JSON(http.StatusOK, api.SuccessResponse{Success: true})
}

// Delete は DELETE /api/complaints/:id を処理します。
func (h *ComplaintHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.uc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrComplaintNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "complaint not found"})
			return
		}
		slog.Error("failed to delete complaint", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to delete complaint"})
		return
	}

	c.JSON(http.StatusOK, api.SuccessResponse{Success: true})
}
