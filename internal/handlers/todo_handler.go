// Package handlersはBFFのHTTPハンドラーを管理します。
// 各ハンドラーは薄いフォワーダーで、受信リクエストのクレデンシャルを
// 付けてバックエンドへ転送し、ステータスコードをそのまま返します。
package handlers

import (
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-todo-bff/internal/services"
)

// TodoHandler はTodo関連のBFFハンドラーを管理します。
type TodoHandler struct {
	proxy *services.ProxyService
}

// NewTodoHandler は新しいTodoHandlerを作成します。
func NewTodoHandler(proxy *services.ProxyService) *TodoHandler {
	return &TodoHandler{proxy: proxy}
}

// ListTodosHandler はTodo一覧取得をバックエンドへ転送します。
// sortクエリパラメータは解釈せずそのまま渡します。
func (h *TodoHandler) ListTodosHandler(c *gin.Context) {
	rawQuery := ""
	if sort := c.Query("sort"); sort != "" {
		rawQuery = "sort=" + url.QueryEscape(sort)
	}

	resp, err := h.proxy.Forward(c.Request.Context(), http.MethodGet, "/api/v1/todos", rawQuery, credentialCookie(c), nil)
	if err != nil {
		log.Printf("Get todos proxy error (user_id=%d): %v", c.GetInt("user_id"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	forwardSetCookies(c, resp)
	writeBackendResponse(c, resp)
}

// CreateTodoHandler はTodo作成をバックエンドへ転送します。
func (h *TodoHandler) CreateTodoHandler(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	resp, err := h.proxy.Forward(c.Request.Context(), http.MethodPost, "/api/v1/todos", "", credentialCookie(c), body)
	if err != nil {
		log.Printf("Create todo proxy error (user_id=%d): %v", c.GetInt("user_id"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	forwardSetCookies(c, resp)
	writeBackendResponse(c, resp)
}

// GetTodoHandler は指定IDのTodo取得をバックエンドへ転送します。
func (h *TodoHandler) GetTodoHandler(c *gin.Context) {
	id, ok := todoID(c)
	if !ok {
		return
	}

	resp, err := h.proxy.Forward(c.Request.Context(), http.MethodGet, "/api/v1/todos/"+id, "", credentialCookie(c), nil)
	if err != nil {
		log.Printf("Get todo proxy error (user_id=%d): %v", c.GetInt("user_id"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	forwardSetCookies(c, resp)
	writeBackendResponse(c, resp)
}

// UpdateTodoHandler はTodoの部分更新をバックエンドへ転送します。
func (h *TodoHandler) UpdateTodoHandler(c *gin.Context) {
	id, ok := todoID(c)
	if !ok {
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	resp, err := h.proxy.Forward(c.Request.Context(), http.MethodPut, "/api/v1/todos/"+id, "", credentialCookie(c), body)
	if err != nil {
		log.Printf("Update todo proxy error (user_id=%d): %v", c.GetInt("user_id"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	forwardSetCookies(c, resp)
	writeBackendResponse(c, resp)
}

// DeleteTodoHandler はTodo削除をバックエンドへ転送します。
// バックエンドの204は本文なしでそのまま返します。
func (h *TodoHandler) DeleteTodoHandler(c *gin.Context) {
	id, ok := todoID(c)
	if !ok {
		return
	}

	resp, err := h.proxy.Forward(c.Request.Context(), http.MethodDelete, "/api/v1/todos/"+id, "", credentialCookie(c), nil)
	if err != nil {
		log.Printf("Delete todo proxy error (user_id=%d): %v", c.GetInt("user_id"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	forwardSetCookies(c, resp)
	writeBackendResponse(c, resp)
}

// ToggleTodoHandler は完了状態の反転をバックエンドへ転送します。
// このエンドポイントは本文を受け付けません。
func (h *TodoHandler) ToggleTodoHandler(c *gin.Context) {
	id, ok := todoID(c)
	if !ok {
		return
	}

	resp, err := h.proxy.Forward(c.Request.Context(), http.MethodPatch, "/api/v1/todos/"+id+"/toggle", "", credentialCookie(c), nil)
	if err != nil {
		log.Printf("Toggle todo proxy error (user_id=%d): %v", c.GetInt("user_id"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	forwardSetCookies(c, resp)
	writeBackendResponse(c, resp)
}

// todoID はパスパラメータのIDを検証して返します。
func todoID(c *gin.Context) (string, bool) {
	idStr := c.Param("id")
	if _, err := strconv.Atoi(idStr); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return "", false
	}
	return idStr, true
}
