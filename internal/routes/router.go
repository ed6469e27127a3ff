// Package routesはroutingを行います。
package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"go-todo-bff/internal/handlers"
	"go-todo-bff/internal/services"
)

// SetupRouter はGinルーターをセットアップし、すべてのエンドポイントを登録します。
func SetupRouter(backendURL, frontendOrigin string) *gin.Engine {
	r := gin.Default()

	// CORS対策
	config := cors.DefaultConfig()
	config.AllowOrigins = []string{frontendOrigin}
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	config.AllowCredentials = true
	r.Use(cors.New(config))

	// サービス
	proxy := services.NewProxyService(backendURL)

	// ハンドラー
	authHandler := handlers.NewAuthHandler(proxy)
	todoHandler := handlers.NewTodoHandler(proxy)

	// ルーティング
	r.GET("/api/health", func(c *gin.Context) {
		if err := proxy.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Backend connection failed", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Backend connection is healthy"})
	})
	r.POST("/api/auth/login", authHandler.LoginHandler)
	r.POST("/api/auth/register", authHandler.RegisterHandler)
	r.POST("/api/auth/logout", authHandler.LogoutHandler)

	authorized := r.Group("/")
	authorized.Use(RequireAuth())
	{
		authorized.GET("/api/users/me", authHandler.MeHandler)
		authorized.PUT("/api/auth/profile", authHandler.UpdateProfileHandler)
		authorized.GET("/api/todos", todoHandler.ListTodosHandler)
		authorized.POST("/api/todos", todoHandler.CreateTodoHandler)
		authorized.GET("/api/todos/:id", todoHandler.GetTodoHandler)
		authorized.PUT("/api/todos/:id", todoHandler.UpdateTodoHandler)
		authorized.DELETE("/api/todos/:id", todoHandler.DeleteTodoHandler)
		authorized.PATCH("/api/todos/:id/toggle", todoHandler.ToggleTodoHandler)
	}

	return r
}
