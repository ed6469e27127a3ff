package apiclient

import (
	"context"
	"net/http"

	"go-todo-bff/internal/models"
)

// Login はログインし、ユーザー情報を返します。
// 成功時のSet-Cookieはクレデンシャルストアに反映されます。
func (c *Client) Login(ctx context.Context, username, password string) (*models.LoginResponse, error) {
	body := models.LoginRequest{Username: username, Password: password}

	var resp models.LoginResponse
	if err := c.request(ctx, http.MethodPost, "/api/auth/login", body, false, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register はユーザーを登録します。
func (c *Client) Register(ctx context.Context, username, email, password string) (*models.RegisterResponse, error) {
	body := models.RegisterRequest{Username: username, Email: email, Password: password}

	var resp models.RegisterResponse
	if err := c.request(ctx, http.MethodPost, "/api/auth/register", body, false, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logout はログアウトします。
func (c *Client) Logout(ctx context.Context) (*models.StatusResponse, error) {
	var resp models.StatusResponse
	if err := c.request(ctx, http.MethodPost, "/api/auth/logout", nil, false, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CurrentUser は現在のユーザーを取得します。
func (c *Client) CurrentUser(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.request(ctx, http.MethodGet, "/api/users/me", nil, true, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile はプロフィールを更新します。
func (c *Client) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.UpdateProfileResponse, error) {
	var resp models.UpdateProfileResponse
	if err := c.request(ctx, http.MethodPut, "/api/auth/profile", req, true, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
