package models

import "time"

type Comment struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	User      *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	ModelID   *uint     `json:"model_id" gorm:"index"`
	Model     *Model    `json:"model,omitempty" gorm:"foreignKey:ModelID"`
	ContentID *uint     `json:"content_id" gorm:"index"`
	Content   *Content  `json:"content,omitempty" gorm:"foreignKey:ContentID"`
	Text      string    `json:"text" gorm:"type:text;not null"`
	Likes     int64     `json:"likes" gorm:"default:0"`
	IsActive  bool      `json:"is_active" gorm:"default:true;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
