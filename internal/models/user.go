// Package modelsはバックエンドAPIとやり取りするデータ構造を定義します。
package models

// User はバックエンドが返すユーザー情報を表します。
// 取得後は不変で、プロフィール更新や再取得時に丸ごと置き換えます。
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User    User   `json:"user"`
	Message string `json:"message"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse は登録直後のレスポンスです。
// トークンは含まれないため、セッション確立には続けてログインが必要です。
type RegisterResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Message  string `json:"message"`
}

type UpdateProfileRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	CurrentPassword string `json:"current_password,omitempty"`
	NewPassword     string `json:"new_password,omitempty"`
}

type UpdateProfileResponse struct {
	User    User   `json:"user"`
	Message string `json:"message"`
}

// StatusResponse はログアウトなどの汎用レスポンスです。
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ErrorResponse はバックエンドのエラーレスポンス形式を表します。
// Errors はフィールド名→メッセージのマップです。
type ErrorResponse struct {
	Message string            `json:"message"`
	Code    string            `json:"code,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}
