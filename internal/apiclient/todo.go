package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"go-todo-bff/internal/models"
)

// Todos はTodo一覧を取得します。sortは空ならデフォルト順(新しい順)です。
func (c *Client) Todos(ctx context.Context, sort string) ([]models.Todo, error) {
	endpoint := "/api/todos"
	if sort != "" {
		endpoint += "?sort=" + url.QueryEscape(sort)
	}

	var todos []models.Todo
	if err := c.request(ctx, http.MethodGet, endpoint, nil, true, &todos); err != nil {
		return nil, err
	}
	return todos, nil
}

// CreateTodo は新しいTodoを作成します。
func (c *Client) CreateTodo(ctx context.Context, req models.CreateTodoRequest) (*models.Todo, error) {
	var todo models.Todo
	if err := c.request(ctx, http.MethodPost, "/api/todos", req, true, &todo); err != nil {
		return nil, err
	}
	return &todo, nil
}

// Todo は指定IDのTodoを取得します。
func (c *Client) Todo(ctx context.Context, id int) (*models.Todo, error) {
	var todo models.Todo
	if err := c.request(ctx, http.MethodGet, fmt.Sprintf("/api/todos/%d", id), nil, true, &todo); err != nil {
		return nil, err
	}
	return &todo, nil
}

// UpdateTodo はTodoを部分更新します。
func (c *Client) UpdateTodo(ctx context.Context, id int, req models.UpdateTodoRequest) (*models.Todo, error) {
	var todo models.Todo
	if err := c.request(ctx, http.MethodPut, fmt.Sprintf("/api/todos/%d", id), req, true, &todo); err != nil {
		return nil, err
	}
	return &todo, nil
}

// DeleteTodo はTodoを削除します。204応答は本文を持ちません。
func (c *Client) DeleteTodo(ctx context.Context, id int) error {
	return c.request(ctx, http.MethodDelete, fmt.Sprintf("/api/todos/%d", id), nil, true, nil)
}

// ToggleTodo は完了状態を反転します。本文は送信しません。
func (c *Client) ToggleTodo(ctx context.Context, id int) (*models.Todo, error) {
	var todo models.Todo
	if err := c.request(ctx, http.MethodPatch, fmt.Sprintf("/api/todos/%d/toggle", id), nil, true, &todo); err != nil {
		return nil, err
	}
	return &todo, nil
}
