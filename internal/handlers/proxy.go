package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-todo-bff/internal/credential"
	"go-todo-bff/internal/services"
)

// credentialCookie は転送用のCookieヘッダーを組み立てます。認証Cookieが
// あれば受信Cookieヘッダーをそのまま使い、Bearerヘッダーのみで認証された
// 場合はauth_token Cookieに変換してバックエンドへ届けます。
func credentialCookie(c *gin.Context) string {
	if cookie, err := c.Request.Cookie(credential.CookieName); err == nil && cookie.Value != "" {
		return c.GetHeader("Cookie")
	}
	if token := credential.FromRequest(c.Request); token != "" {
		return credential.CookieName + "=" + token
	}
	return c.GetHeader("Cookie")
}

// forwardSetCookies はバックエンドのSet-Cookieヘッダーをそのまま転送し、
// ブラウザのCookieストアをバックエンドのセッション状態と同期させます。
func forwardSetCookies(c *gin.Context, resp *services.BackendResponse) {
	for _, value := range resp.SetCookies {
		c.Writer.Header().Add("Set-Cookie", value)
	}
}

// writeBackendResponse はバックエンドのステータスと本文をそのまま返します。
// 204は本文を持たないためJSONとして扱いません。
func writeBackendResponse(c *gin.Context, resp *services.BackendResponse) {
	if resp.StatusCode == http.StatusNoContent {
		c.Status(http.StatusNoContent)
		return
	}
	c.Data(resp.StatusCode, "application/json; charset=utf-8", resp.Body)
}
