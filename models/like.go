package models

import "time"

type LikeType string

const (
	LikeTypeModel   LikeType = "model"
	LikeTypeContent LikeType = "content"
)

type Like struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_likes_target"`
	ModelID   *uint     `json:"model_id" gorm:"uniqueIndex:idx_likes_target"`
	ContentID *uint     `json:"content_id" gorm:"uniqueIndex:idx_likes_target"`
	Type      LikeType  `json:"type" gorm:"not null;uniqueIndex:idx_likes_target"`
	CreatedAt time.Time `json:"created_at"`
}
