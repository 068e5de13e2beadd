package models

import (
	"time"

	"github.com/lib/pq"
)

type Model struct {
	ID          uint           `json:"id" gorm:"primarykey"`
	Name        string         `json:"name" gorm:"not null"`
	Slug        string         `json:"slug" gorm:"uniqueIndex;not null"`
	Description string         `json:"description" gorm:"type:text"`
	PhotoURL    string         `json:"photo_url"`
	Ethnicity   string         `json:"ethnicity"`
	HairColor   string         `json:"hair_color"`
	EyeColor    string         `json:"eye_color"`
	BodyType    string         `json:"body_type"`
	Age         *int           `json:"age"`
	Tags        pq.StringArray `json:"tags" gorm:"type:text[]"`
	Views       int64          `json:"views" gorm:"default:0"`
	IsActive    bool           `json:"is_active" gorm:"default:true;index"`
	Contents    []Content      `json:"contents,omitempty" gorm:"foreignKey:ModelID"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
