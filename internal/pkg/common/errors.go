package common

import (
	"net/http"
)

// ErrorResponse API エラーレスポンスの構造
type ErrorResponse struct {
	Code    string `json:"code"`              // エラーコード
	Message string `json:"message"`           // エラーメッセージ
	Details string `json:"details,omitempty"` // 詳細（開発モードのみ）
}

// CustomError アプリケーション共通のエラー型
type CustomError struct {
	Code    string // エラーコード
	Message string // エラーメッセージ
	Err     error  // 元のエラー
	Status  int    // HTTP ステータスコード
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// NewError CustomError を生成する
func NewError(code string, message string, status int, err error) *CustomError {
	return &CustomError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

// ValidationError 入力検証エラー
type ValidationError struct {
	message string
}

func (e *ValidationError) Error() string {
	return e.message
}

// NewValidationError 検証エラーを生成する
func NewValidationError(message string) error {
	return &ValidationError{
		message: message,
	}
}

// IsValidationError 検証エラーかどうかを判定する
func IsValidationError(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}

// 定義済みエラーコード
const (
	// クライアントエラー (4xx)
	ErrCodeInvalidRequest   = "INVALID_REQUEST"    // 400
	ErrCodeUnauthorized     = "UNAUTHORIZED"       // 401
	ErrCodeForbidden        = "FORBIDDEN"          // 403
	ErrCodeNotFound         = "NOT_FOUND"          // 404
	ErrCodeMethodNotAllowed = "METHOD_NOT_ALLOWED" // 405
	ErrCodeRequestTimeout   = "REQUEST_TIMEOUT"    // 408
	ErrCodeConflict         = "CONFLICT"           // 409
	ErrCodeTooManyRequests  = "TOO_MANY_REQUESTS"  // 429

	// サーバーエラー (5xx)
	ErrCodeInternalError      = "INTERNAL_ERROR"      // 500
	ErrCodeNotImplemented     = "NOT_IMPLEMENTED"     // 501
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE" // 503
	ErrCodeGatewayTimeout     = "GATEWAY_TIMEOUT"     // 504
)

// 定義済みエラー
var (
	// クライアントエラー
	ErrInvalidRequest   = NewError(ErrCodeInvalidRequest, "無効なリクエストです", http.StatusBadRequest, nil)
	ErrUnauthorized     = NewError(ErrCodeUnauthorized, "認証されていません", http.StatusUnauthorized, nil)
	ErrForbidden        = NewError(ErrCodeForbidden, "アクセスが禁止されています", http.StatusForbidden, nil)
	ErrNotFound         = NewError(ErrCodeNotFound, "リソースが見つかりません", http.StatusNotFound, nil)
	ErrMethodNotAllowed = NewError(ErrCodeMethodNotAllowed, "許可されていないメソッドです", http.StatusMethodNotAllowed, nil)
	ErrRequestTimeout   = NewError(ErrCodeRequestTimeout, "リクエストがタイムアウトしました", http.StatusRequestTimeout, nil)
	ErrConflict         = NewError(ErrCodeConflict, "リソースが競合しています", http.StatusConflict, nil)
	ErrTooManyRequests  = NewError(ErrCodeTooManyRequests, "リクエストが多すぎます", http.StatusTooManyRequests, nil)

	// サーバーエラー
	ErrInternalError      = NewError(ErrCodeInternalError, "サーバー内部エラー", http.StatusInternalServerError, nil)
	ErrNotImplemented     = NewError(ErrCodeNotImplemented, "未実装の機能です", http.StatusNotImplemented, nil)
	ErrServiceUnavailable = NewError(ErrCodeServiceUnavailable, "サービスが一時的に利用できません", http.StatusServiceUnavailable, nil)
	ErrGatewayTimeout     = NewError(ErrCodeGatewayTimeout, "ゲートウェイがタイムアウトしました", http.StatusGatewayTimeout, nil)

	// 業務エラー
	ErrInvalidImageFormat = NewError("INVALID_IMAGE_FORMAT", "無効な画像形式です", http.StatusBadRequest, nil)
	ErrInvalidImageSize   = NewError("INVALID_IMAGE_SIZE", "画像サイズが上限を超えています", http.StatusBadRequest, nil)
	ErrInvalidImageType   = NewError("INVALID_IMAGE_TYPE", "対応していない画像タイプです", http.StatusBadRequest, nil)
	ErrCacheFull          = NewError("CACHE_FULL", "キャッシュが満杯です", http.StatusServiceUnavailable, nil)
	ErrCacheDisabled      = NewError("CACHE_DISABLED", "キャッシュが無効化されています", http.StatusServiceUnavailable, nil)
	ErrAIServiceError     = NewError("AI_SERVICE_ERROR", "AI サービスでエラーが発生しました", http.StatusServiceUnavailable, nil)
	ErrAIResponseInvalid  = NewError("AI_RESPONSE_INVALID", "AI 応答の形式が不正です", http.StatusBadGateway, nil)
	ErrMenuNotFound       = NewError("MENU_NOT_FOUND", "献立が見つかりません", http.StatusNotFound, nil)
	ErrStoreUnavailable   = NewError("STORE_UNAVAILABLE", "保存ストレージが利用できません", http.StatusServiceUnavailable, nil)
)
