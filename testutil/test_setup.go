// Package testutilはテスト用のセットアップヘルパーを提供します。
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"go-todo-bff/internal/routes"
)

// SetupTestServer はフェイクバックエンドとBFFルーターをセットアップします。
// backendにはバックエンドAPIを模したハンドラーを渡します。
func SetupTestServer(t *testing.T, backend http.Handler) (*httptest.Server, *gin.Engine) {
	gin.SetMode(gin.TestMode)

	backendServer := httptest.NewServer(backend)
	t.Cleanup(backendServer.Close)

	router := routes.SetupRouter(backendServer.URL, "http://localhost:3000")
	return backendServer, router
}

// TestToken はuser_idクレーム入りのテスト用JWTを生成します。
// BFFは署名を検証しないため、秘密鍵はテスト専用の固定値で構いません。
func TestToken(t *testing.T, userID int) string {
	claims := jwt.MapClaims{
		"user_id": userID,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

// NewRequest はJSONボディ付きのテストリクエストを作成します。
func NewRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, target, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// NewAuthenticatedRequest は認証Cookie付きのテストリクエストを作成します。
func NewAuthenticatedRequest(t *testing.T, method, target string, body interface{}, token string) *http.Request {
	req := NewRequest(t, method, target, body)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: token})
	return req
}
