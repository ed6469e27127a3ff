// Package servicesはバックエンドAPIへの転送処理を提供します。
package services

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"
)

// BackendResponse はバックエンドからの応答を表します。
type BackendResponse struct {
	StatusCode int
	Body       []byte
	SetCookies []string
}

// ProxyService はBFFのハンドラーからバックエンドAPIへリクエストを
// 転送します。転送時はリトライせず、失敗は呼び出し元が最終結果として
// 扱います。
type ProxyService struct {
	baseURL    string
	httpClient *http.Client
}

// NewProxyService は新しいProxyServiceを作成します。
func NewProxyService(baseURL string) *ProxyService {
	return &ProxyService{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Forward は受信リクエストのクレデンシャル(Cookieヘッダー)をそのまま
// 付けてバックエンドへ転送し、ステータス・本文・Set-Cookieを返します。
func (s *ProxyService) Forward(ctx context.Context, method, path, rawQuery, cookie string, body []byte) (*BackendResponse, error) {
	target := s.baseURL + path
	if rawQuery != "" {
		target += "?" + rawQuery
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &BackendResponse{
		StatusCode: resp.StatusCode,
		Body:       data,
		SetCookies: resp.Header.Values("Set-Cookie"),
	}, nil
}

// Ping はバックエンドのヘルスチェックエンドポイントで疎通を確認します。
// HTTP応答が返れば到達できている証拠として成功扱いにします。
func (s *ProxyService) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/health", nil)
	if err != nil {
		return err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}
