package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-todo-bff/internal/models"
	"go-todo-bff/internal/services"
	"go-todo-bff/internal/validation"
)

// AuthHandler は認証関連のBFFハンドラーを管理します。
type AuthHandler struct {
	proxy *services.ProxyService
}

// NewAuthHandler は新しいAuthHandlerを作成します。
func NewAuthHandler(proxy *services.ProxyService) *AuthHandler {
	return &AuthHandler{proxy: proxy}
}

// LoginHandler はログインリクエストをバックエンドへ転送します。
// バックエンドが発行するSet-Cookieをそのままブラウザへ返します。
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	resp, err := h.proxy.Forward(c.Request.Context(), http.MethodPost, "/api/v1/login", "", "", body)
	if err != nil {
		log.Printf("Login proxy error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	forwardSetCookies(c, resp)
	writeBackendResponse(c, resp)
}

// RegisterHandler はユーザー登録リクエストをバックエンドへ転送します。
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	resp, err := h.proxy.Forward(c.Request.Context(), http.MethodPost, "/api/v1/register", "", "", body)
	if err != nil {
		log.Printf("Register proxy error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	forwardSetCookies(c, resp)
	writeBackendResponse(c, resp)
}

// LogoutHandler はログアウトリクエストをバックエンドへ転送します。
// バックエンドが返すCookie失効のSet-Cookieもそのまま転送します。
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	resp, err := h.proxy.Forward(c.Request.Context(), http.MethodPost, "/api/v1/logout", "", credentialCookie(c), nil)
	if err != nil {
		log.Printf("Logout proxy error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	forwardSetCookies(c, resp)
	writeBackendResponse(c, resp)
}

// MeHandler は現在のユーザー取得リクエストをバックエンドへ転送します。
func (h *AuthHandler) MeHandler(c *gin.Context) {
	resp, err := h.proxy.Forward(c.Request.Context(), http.MethodGet, "/api/v1/me", "", credentialCookie(c), nil)
	if err != nil {
		log.Printf("Me proxy error (user_id=%d): %v", c.GetInt("user_id"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	forwardSetCookies(c, resp)
	writeBackendResponse(c, resp)
}

// UpdateProfileHandler はプロフィール更新を処理します。
// 転送前にフォームと同じルールで再検証し、バックエンドの409は
// 重複エラー、401は現在のパスワード誤り(認証エラーではない)として
// フィールドエラーに変換します。
func (h *AuthHandler) UpdateProfileHandler(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	var req models.UpdateProfileRequest
	if err := json.Unmarshal(body, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if errs := validation.ValidateProfileRequest(req.Username, req.Email, req.CurrentPassword, req.NewPassword); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "バリデーションエラーです",
			Errors:  errs,
		})
		return
	}

	resp, err := h.proxy.Forward(c.Request.Context(), http.MethodPut, "/api/v1/profile", "", credentialCookie(c), body)
	if err != nil {
		log.Printf("Profile update proxy error (user_id=%d): %v", c.GetInt("user_id"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	switch resp.StatusCode {
	case http.StatusConflict:
		// ユーザー名またはメールアドレスの重複
		var backendErr models.ErrorResponse
		if err := json.Unmarshal(resp.Body, &backendErr); err != nil {
			backendErr = models.ErrorResponse{}
		}
		if backendErr.Message == "" {
			backendErr.Message = "ユーザー名またはメールアドレスが既に使用されています"
		}
		if backendErr.Errors == nil {
			backendErr.Errors = map[string]string{}
		}
		c.JSON(http.StatusConflict, backendErr)
		return
	case http.StatusUnauthorized:
		// 現在のパスワード誤り。セッション切れではないため401は返さない。
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "現在のパスワードが正しくありません",
			Errors:  map[string]string{"current_password": "現在のパスワードが正しくありません"},
		})
		return
	}

	forwardSetCookies(c, resp)
	writeBackendResponse(c, resp)
}
