// internal/model/error.go
package model

import "errors"

// アプリケーション固有のエラー
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrValidation     = errors.New("validation failed")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrConflict       = errors.New("resource conflict") // 重複エラー用
	ErrInternalServer = errors.New("internal server error")
)

// ErrorDetail はクライアントに返すエラー情報
type ErrorDetail struct {
	Code     string   `json:"code"`
	Message  string   `json:"message"`
	Field    string   `json:"field,omitempty"`
	Messages []string `json:"messages,omitempty"` // バリデーションエラーの一覧
}

// APIErrorResponse は {"error": {...}} 形式のレスポンス
type APIErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// AppError はクライアント向けの詳細と、判定用のセンチネルエラーを持つ
type AppError struct {
	Detail ErrorDetail
	Err    error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Detail.Message + ": " + e.Err.Error()
	}
	return e.Detail.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{
		Detail: ErrorDetail{
			Code:    code,
			Message: message,
			Field:   field,
		},
		Err: err,
	}
}

// NewValidationError は複数のメッセージを持つ 422 用のエラー
func NewValidationError(messages []string, field string) *AppError {
	msg := "Validation failed"
	if len(messages) > 0 {
		msg = messages[0]
	}
	return &AppError{
		Detail: ErrorDetail{
			Code:     "VALIDATION_ERROR",
			Message:  msg,
			Field:    field,
			Messages: messages,
		},
		Err: ErrValidation,
	}
}
