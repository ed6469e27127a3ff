// Package apiclientはBFFエンドポイントへのリトライ付きHTTPクライアントを
// 提供します。リトライはこの層だけが行い、上位層は失敗を最終結果として
// 扱います。
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go-todo-bff/internal/credential"
	"go-todo-bff/internal/models"
)

const (
	defaultMaxRetries = 2
	retryBaseDelay    = 1000 * time.Millisecond
)

// Client はリトライ付きのAPIクライアントです。
// クレデンシャルはStoreの単一スロットから取得し、Cookieを基本として
// 互換性のためBearerヘッダーにも同じ値を載せます。
type Client struct {
	baseURL     string
	httpClient  *http.Client
	credentials *credential.Store

	// MaxRetries は一時的エラー時の最大リトライ回数です。
	// 総試行回数は MaxRetries+1 回になります。
	MaxRetries int

	// Sleep はリトライ待機に使用します。テストで差し替え可能です。
	Sleep func(time.Duration)
}

// New は新しいClientを作成します。
func New(baseURL string, credentials *credential.Store) *Client {
	return &Client{
		baseURL:     baseURL,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		credentials: credentials,
		MaxRetries:  defaultMaxRetries,
		Sleep:       time.Sleep,
	}
}

// request はリクエストを送信し、一時的エラーの場合は線形バックオフ
// (1000ms * 試行回数) でリトライします。outがnilの場合は本文を捨てます。
func (c *Client) request(ctx context.Context, method, endpoint string, body interface{}, requiresAuth bool, out interface{}) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	var lastErr error
	for attempt := 0; attempt <= c.MaxRetries; attempt++ {
		if attempt > 0 {
			c.Sleep(retryBaseDelay * time.Duration(attempt))
		}

		err := c.do(ctx, method, endpoint, payload, requiresAuth, out)
		if err == nil {
			return nil
		}
		lastErr = err

		if !IsTemporaryError(err) {
			return err
		}
	}
	return lastErr
}

// do は1回分のリクエストを実行します。
func (c *Client) do(ctx context.Context, method, endpoint string, payload []byte, requiresAuth bool, out interface{}) error {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return NewAPIError("Network error or server unavailable", 0, "NETWORK_ERROR", true, nil)
	}
	req.Header.Set("Content-Type", "application/json")

	if token := c.credentials.Get(); token != "" {
		req.AddCookie(&http.Cookie{Name: credential.CookieName, Value: token})
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// 応答が全く得られない輸送路障害。ステータス0として扱い、
		// 同じリトライポリシーの対象にする。
		return NewAPIError("Network error or server unavailable", 0, "NETWORK_ERROR", true, nil)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return NewAPIError("Network error or server unavailable", 0, "NETWORK_ERROR", true, nil)
	}

	// バックエンドが発行したSet-CookieをStoreに反映し、ブラウザの
	// Cookieストア相当の状態を保つ。
	c.syncCookies(resp)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp models.ErrorResponse
		if err := json.Unmarshal(data, &errResp); err != nil {
			errResp = models.ErrorResponse{Message: "Invalid server response"}
		}
		message := errResp.Message
		if message == "" {
			message = fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
		}

		apiErr := NewAPIError(message, resp.StatusCode, errResp.Code, resp.StatusCode >= 500, errResp.Errors)

		// 401の場合はクレデンシャルが無効なので破棄する
		if resp.StatusCode == http.StatusUnauthorized && requiresAuth {
			c.credentials.Clear()
		}
		return apiErr
	}

	// 204は本文を持たないためデコードしない
	if resp.StatusCode == http.StatusNoContent || out == nil {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return NewAPIError("Invalid server response", resp.StatusCode, "", false, nil)
	}
	return nil
}

// syncCookies はレスポンスの認証Cookieをクレデンシャルストアに反映します。
// 失効Cookie(空値または負のMaxAge)はクリアとして扱います。
func (c *Client) syncCookies(resp *http.Response) {
	for _, cookie := range resp.Cookies() {
		if cookie.Name != credential.CookieName {
			continue
		}
		if cookie.Value == "" || cookie.MaxAge < 0 {
			c.credentials.Clear()
		} else {
			c.credentials.Set(cookie.Value)
		}
	}
}
