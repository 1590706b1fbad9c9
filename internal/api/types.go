// Package api はHTTPレスポンスの共通型を定義します。
package api

// ErrorResponse はエラー応答の共通ボディです。
type ErrorResponse struct {
	Error string `json:"error"`
}

// TokenResponse はログイン成功時に発行されたトークンを返します。
type TokenResponse struct {
	Token string `json:"token"`
}

// CreatedResponse はリソース作成成功時のボディです。
// IDには作成されたドキュメントの識別子（ObjectIDの16進表現）が入ります。
type CreatedResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// SuccessResponse は更新・削除など、返すデータのない成功応答のボディです。
type SuccessResponse struct {
	Success bool `json:"success"`
}

// ListResponse は一覧系エンドポイントの共通ボディです。
type ListResponse struct {
	Count int `json:"count"`
	Data  any `json:"data"`
}
