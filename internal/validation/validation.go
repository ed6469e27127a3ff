// Package validationはフォーム入力の検証を行います。
// 同じルールを送信側クライアントとBFFの再検証の両方で使うため、
// I/Oを持たない純粋関数のみで構成します。
package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	emailRegex    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	letterRegex   = regexp.MustCompile(`[a-zA-Z]`)
	numberRegex   = regexp.MustCompile(`[0-9]`)
)

// ValidateUsername はユーザー名を検証します。空文字列が返れば有効です。
func ValidateUsername(username string) string {
	if strings.TrimSpace(username) == "" {
		return "ユーザー名は必須です"
	}
	length := utf8.RuneCountInString(username)
	if length < 3 || length > 20 {
		return "ユーザー名は3-20文字で入力してください"
	}
	if !usernameRegex.MatchString(username) {
		return "ユーザー名は英数字とアンダースコアのみ使用できます"
	}
	return ""
}

// ValidateEmail はメールアドレスを検証します。
// RFC完全準拠ではなく local@domain.tld の形のみ確認します。
func ValidateEmail(email string) string {
	if email == "" {
		return "メールアドレスは必須です"
	}
	if !emailRegex.MatchString(email) {
		return "有効なメールアドレスを入力してください"
	}
	return ""
}

// ValidatePassword はパスワードを検証します。英字と数字の両方が必要です。
func ValidatePassword(password string) string {
	if password == "" {
		return "パスワードは必須です"
	}
	if utf8.RuneCountInString(password) < 8 {
		return "パスワードは8文字以上で入力してください"
	}
	if !letterRegex.MatchString(password) || !numberRegex.MatchString(password) {
		return "パスワードは英数字の両方を含む必要があります"
	}
	return ""
}

// ValidateConfirmPassword は確認用パスワードの一致を検証します。
func ValidateConfirmPassword(password, confirmPassword string) string {
	if confirmPassword == "" {
		return "パスワード確認は必須です"
	}
	if password != confirmPassword {
		return "パスワードが一致しません"
	}
	return ""
}

// ValidateLoginForm はログインフォームを検証します。
// ログインでは形式チェックを行わず、入力の有無のみ確認します。
func ValidateLoginForm(username, password string) map[string]string {
	errors := map[string]string{}
	if username == "" {
		errors["username"] = "ユーザー名は必須です"
	}
	if password == "" {
		errors["password"] = "パスワードは必須です"
	}
	return errors
}

// ValidateRegistrationForm は登録フォームを検証します。
func ValidateRegistrationForm(username, email, password, confirmPassword string) map[string]string {
	errors := map[string]string{}
	if msg := ValidateUsername(username); msg != "" {
		errors["username"] = msg
	}
	if msg := ValidateEmail(email); msg != "" {
		errors["email"] = msg
	}
	if msg := ValidatePassword(password); msg != "" {
		errors["password"] = msg
	}
	if msg := ValidateConfirmPassword(password, confirmPassword); msg != "" {
		errors["confirm_password"] = msg
	}
	return errors
}

// ValidateProfileRequest はプロフィール更新リクエストを検証します。
// BFFが転送前に行う再検証でも使われます。新しいパスワードが指定された
// 場合のみパスワード関連の検証を行います。
func ValidateProfileRequest(username, email, currentPassword, newPassword string) map[string]string {
	errors := map[string]string{}
	if msg := ValidateUsername(username); msg != "" {
		errors["username"] = msg
	}
	if msg := ValidateEmail(email); msg != "" {
		errors["email"] = msg
	}
	if newPassword != "" {
		if currentPassword == "" {
			errors["current_password"] = "現在のパスワードを入力してください"
		}
		if msg := ValidatePassword(newPassword); msg != "" {
			errors["new_password"] = msg
		}
	}
	return errors
}

// ValidateProfileUpdate はプロフィール更新フォームを検証します。
// 確認用パスワードの検証を含む、フォーム送信側用の集約関数です。
func ValidateProfileUpdate(username, email, currentPassword, newPassword, confirmPassword string) map[string]string {
	errors := ValidateProfileRequest(username, email, currentPassword, newPassword)
	if newPassword != "" {
		if msg := ValidateConfirmPassword(newPassword, confirmPassword); msg != "" {
			errors["confirm_password"] = msg
		}
	}
	return errors
}
