// Package dto はcomplaintsフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// CreateComplaintReq は POST /api/complaints のリクエストボディを表します。
// タイトルと説明は必須、添付は任意です。
type CreateComplaintReq struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Attachments []string `json:"attachments"`
}

// UpdateStatusReq は PATCH /api/complaints/:id/status のリクエストボディを表します。
type UpdateStatusReq struct {
	Status string `json:"status" binding:"required"`
}
