// Package modelsはTodoを定義します。
package models

import "time"

// 優先度
const (
	PriorityLow    = 0
	PriorityMedium = 1
	PriorityHigh   = 2
)

// ソート指定（バックエンドにそのまま渡す規約値）
const (
	SortDefault     = ""
	SortDueDateAsc  = "due_date_asc"
	SortDueDateDesc = "due_date_desc"
	SortPriority    = "priority_desc"
	SortCreated     = "created_desc"
)

// dueDateLayout は期限日のワイヤーフォーマットです。
const dueDateLayout = "2006-01-02"

type Todo struct {
	ID          int    `json:"id"`                 // 主キー
	UserID      int    `json:"user_id"`            // 所有ユーザーID
	Title       string `json:"title"`              // タスクのタイトル（100文字以内）
	DueDate     string `json:"due_date,omitempty"` // 期限日 (YYYY-MM-DD、省略可)
	Priority    int    `json:"priority"`           // 優先度 (0=Low, 1=Medium, 2=High)
	IsCompleted bool   `json:"is_completed"`       // 完了状態
	CreatedAt   string `json:"created_at"`         // 作成日時
	UpdatedAt   string `json:"updated_at"`         // 更新日時
}

type CreateTodoRequest struct {
	Title    string `json:"title"`
	DueDate  string `json:"due_date,omitempty"`
	Priority int    `json:"priority"`
}

// UpdateTodoRequest は部分更新用です。nilのフィールドは変更されません。
type UpdateTodoRequest struct {
	Title       *string `json:"title,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
	Priority    *int    `json:"priority,omitempty"`
	IsCompleted *bool   `json:"is_completed,omitempty"`
}

// PriorityLabel は優先度の表示ラベルを返します。範囲外はLow扱いです。
func PriorityLabel(priority int) string {
	switch priority {
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	default:
		return "Low"
	}
}

// IsOverdue は期限日が基準日の前日以前かどうかを判定します。
// 期限なし・解析不能な日付は期限切れ扱いにしません。
func IsOverdue(dueDate string, now time.Time) bool {
	if dueDate == "" {
		return false
	}
	due, err := time.Parse(dueDateLayout, dueDate)
	if err != nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return due.Before(today)
}

// CompletionStats はTodoリストの完了率を表します。
type CompletionStats struct {
	Total      int
	Completed  int
	Percentage float64
}

// CalculateCompletionRate はTodoリストの完了率を計算します。
func CalculateCompletionRate(todos []Todo) CompletionStats {
	stats := CompletionStats{Total: len(todos)}
	for _, todo := range todos {
		if todo.IsCompleted {
			stats.Completed++
		}
	}
	if stats.Total > 0 {
		stats.Percentage = float64(stats.Completed) / float64(stats.Total) * 100
	}
	return stats
}
