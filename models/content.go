package models

import "time"

type ContentType string

const (
	ContentTypePhoto ContentType = "photo"
	ContentTypeVideo ContentType = "video"
)

type Content struct {
	ID           uint        `json:"id" gorm:"primarykey"`
	ModelID      uint        `json:"model_id" gorm:"not null;index"`
	Model        *Model      `json:"model,omitempty" gorm:"foreignKey:ModelID"`
	Title        string      `json:"title" gorm:"not null"`
	Type         ContentType `json:"type" gorm:"default:'photo'"`
	URL          string      `json:"url"`
	ThumbnailURL string      `json:"thumbnail_url"`
	Views        int64       `json:"views" gorm:"default:0"`
	IsActive     bool        `json:"is_active" gorm:"default:true;index"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
