package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"go-todo-bff/internal/routes"
)

func main() {
	// .envファイルの読み込み (存在しない場合は環境変数をそのまま使用)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	backendURL := os.Getenv("BACKEND_URL")
	if backendURL == "" {
		backendURL = "http://localhost:8080"
	}
	frontendOrigin := os.Getenv("FRONTEND_ORIGIN")
	if frontendOrigin == "" {
		frontendOrigin = "http://localhost:3000"
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	r := routes.SetupRouter(backendURL, frontendOrigin)

	// サーバー起動
	log.Printf("BFF server listening on port %s (backend: %s)", port, backendURL)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
