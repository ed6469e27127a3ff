// Package credentialは認証クレデンシャルを保持します。
package credential

import (
	"net/http"
	"strings"
	"sync"
)

// CookieName はバックエンドが発行する認証Cookieの名前です。
const CookieName = "auth_token"

// FromRequest は受信リクエストからクレデンシャルを取り出します。
// Cookieを基本とし、互換のためBearerヘッダーも確認します。
// どちらにもなければ空文字列を返します。
func FromRequest(r *http.Request) string {
	if cookie, err := r.Cookie(CookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

// Store は1ブラウザセッション分のクレデンシャルを保持する単一スロットの
// ストアです。値はCookie値またはBearerトークンとして送信されます。
type Store struct {
	mu    sync.RWMutex
	value string
}

// NewStore は空のStoreを作成します。
func NewStore() *Store {
	return &Store{}
}

// Get は保持中のクレデンシャルを返します。未設定なら空文字列です。
func (s *Store) Get() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set はクレデンシャルを置き換えます。
func (s *Store) Set(value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = value
}

// Clear はクレデンシャルを破棄します。
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = ""
}

// Has はクレデンシャルが設定されているかどうかを返します。
func (s *Store) Has() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value != ""
}
