package apiclient

import (
	"errors"
	"net/http"
)

// APIError はAPI呼び出しの失敗を分類情報付きで表します。
// IsAuthError はコンストラクタでステータスから導出され、後から
// 個別に設定することはできません。
type APIError struct {
	Message        string
	Status         int
	Code           string
	IsNetworkError bool
	IsAuthError    bool
	FieldErrors    map[string]string
}

// NewAPIError はAPIErrorを作成します。
func NewAPIError(message string, status int, code string, isNetworkError bool, fieldErrors map[string]string) *APIError {
	return &APIError{
		Message:        message,
		Status:         status,
		Code:           code,
		IsNetworkError: isNetworkError,
		IsAuthError:    status == http.StatusUnauthorized || status == http.StatusForbidden,
		FieldErrors:    fieldErrors,
	}
}

func (e *APIError) Error() string {
	return e.Message
}

// IsTemporary はリトライ可能な一時的エラーかどうかを返します。
// ネットワーク障害・5xx・408が対象です。
func (e *APIError) IsTemporary() bool {
	return e.IsNetworkError || e.Status >= 500 || e.Status == http.StatusRequestTimeout
}

// HasFieldErrors はフィールド単位のエラーを持つかどうかを返します。
func (e *APIError) HasFieldErrors() bool {
	return len(e.FieldErrors) > 0
}

// FieldError は指定フィールドのエラーメッセージを返します。
func (e *APIError) FieldError(field string) string {
	return e.FieldErrors[field]
}

// IsTemporaryError は任意のエラーが一時的エラーかどうかを判定します。
func IsTemporaryError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.IsTemporary()
}

// IsAuthError は任意のエラーが認証エラー(401/403)かどうかを判定します。
func IsAuthError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.IsAuthError
}

// IsNetworkError は任意のエラーがネットワークエラーかどうかを判定します。
func IsNetworkError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.IsNetworkError
}

// IsValidationError はフィールドエラー付きのバリデーションエラーか
// どうかを判定します。
func IsValidationError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.HasFieldErrors()
}

// ExtractFieldErrors はエラーからフィールドエラーを取り出します。
// フィールドエラーがなければ空のマップを返します。
func ExtractFieldErrors(err error) map[string]string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.HasFieldErrors() {
		return apiErr.FieldErrors
	}
	return map[string]string{}
}

// ErrorMessage はユーザー向けメッセージを返します。
func ErrorMessage(err error, defaultMessage string) string {
	if err == nil || err.Error() == "" {
		return defaultMessage
	}
	return err.Error()
}
