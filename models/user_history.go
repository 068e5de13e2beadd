package models

import "time"

type HistoryAction string

const (
	ActionView HistoryAction = "view"
	ActionLike HistoryAction = "like"
)

type UserHistory struct {
	ID        uint          `json:"id" gorm:"primarykey"`
	UserID    uint          `json:"user_id" gorm:"not null;index"`
	ModelID   uint          `json:"model_id" gorm:"not null;index"`
	Model     *Model        `json:"model,omitempty" gorm:"foreignKey:ModelID"`
	ContentID *uint         `json:"content_id"`
	Content   *Content      `json:"content,omitempty" gorm:"foreignKey:ContentID"`
	Action    HistoryAction `json:"action" gorm:"default:'view'"`
	CreatedAt time.Time     `json:"created_at"`
}
