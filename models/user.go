package models

import "time"

type User struct {
	ID             uint       `json:"id" gorm:"primarykey"`
	Name           string     `json:"name" gorm:"not null"`
	Email          string     `json:"email" gorm:"uniqueIndex;not null"`
	Password       string     `json:"-" gorm:"not null"`
	IsPremium      bool       `json:"is_premium" gorm:"default:false"`
	IsAdmin        bool       `json:"is_admin" gorm:"default:false"`
	ExpiredPremium *time.Time `json:"expired_premium"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
