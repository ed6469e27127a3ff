// Package sessionはブラウザタブ相当の認証セッション状態を管理します。
package session

import (
	"context"
	"log"
	"sync"

	"go-todo-bff/internal/apiclient"
	"go-todo-bff/internal/credential"
	"go-todo-bff/internal/models"
)

// Session は認証済みユーザーのキャッシュを保持するセッションコンテキスト
// です。キャッシュは最適化にすぎず、正となるのは常にバックエンドの
// 現在ユーザー取得結果です。テストから独立したインスタンスを作れるよう、
// パッケージ変数ではなく明示的に生成します。
type Session struct {
	client      *apiclient.Client
	credentials *credential.Store

	mu      sync.RWMutex
	user    *models.User
	loading bool
}

// New は新しいSessionを作成します。
func New(client *apiclient.Client, credentials *credential.Store) *Session {
	return &Session{client: client, credentials: credentials}
}

// User はキャッシュ中のユーザーを返します。未認証ならnilです。
func (s *Session) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// IsLoading は認証処理中かどうかを返します。
func (s *Session) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *Session) setUser(user *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
}

func (s *Session) setLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = loading
}

// CheckAuth は現在のユーザーを再取得してキャッシュを更新します。
// クレデンシャルがなければ何もせずユーザーをnilにします。
// 一時的エラーの場合はクレデンシャルを残し、再試行でログインし直さずに
// 済むようにします。
func (s *Session) CheckAuth(ctx context.Context) error {
	s.setLoading(true)
	defer s.setLoading(false)

	if !s.credentials.Has() {
		s.setUser(nil)
		return nil
	}

	user, err := s.client.CurrentUser(ctx)
	if err != nil {
		s.setUser(nil)
		if !apiclient.IsTemporaryError(err) {
			s.credentials.Clear()
		}
		return err
	}

	s.setUser(user)
	return nil
}

// Login はログインし、返されたユーザーとクレデンシャルを採用します。
// 失敗時はユーザーをnilに戻してエラーを呼び出し元へ伝播します。
func (s *Session) Login(ctx context.Context, username, password string) error {
	s.setLoading(true)
	defer s.setLoading(false)

	resp, err := s.client.Login(ctx, username, password)
	if err != nil {
		s.setUser(nil)
		return err
	}

	s.setUser(&resp.User)
	return nil
}

// Register はユーザーを登録します。登録レスポンスにはトークンが
// 含まれないため、続けてログインしてセッションを確立します。
func (s *Session) Register(ctx context.Context, username, email, password string) error {
	s.setLoading(true)
	defer s.setLoading(false)

	resp, err := s.client.Register(ctx, username, email, password)
	if err != nil {
		s.setUser(nil)
		return err
	}
	s.setUser(&models.User{ID: resp.ID, Username: resp.Username, Email: resp.Email})

	loginResp, err := s.client.Login(ctx, username, password)
	if err != nil {
		s.setUser(nil)
		return err
	}
	s.setUser(&loginResp.User)
	return nil
}

// Logout はバックエンドのログアウトを呼び出した後、結果にかかわらず
// ローカルのユーザーとクレデンシャルをクリアします。ネットワーク状態に
// よらずログアウトは必ずローカルで有効になります。
func (s *Session) Logout(ctx context.Context) {
	s.setLoading(true)
	defer s.setLoading(false)

	if _, err := s.client.Logout(ctx); err != nil {
		log.Printf("logout request failed: %v", err)
	}

	s.setUser(nil)
	s.credentials.Clear()
}
