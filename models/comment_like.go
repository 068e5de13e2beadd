package models

import "time"

type CommentLike struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_comment_likes_user_comment"`
	CommentID uint      `json:"comment_id" gorm:"not null;uniqueIndex:idx_comment_likes_user_comment"`
	CreatedAt time.Time `json:"created_at"`
}
