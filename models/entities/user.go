package entities

import "time"

type User struct {
	ID              uint   `gorm:"primaryKey"`
	TelegramID      int64  `json:"telegramId" gorm:"uniqueIndex;not null"`
	Username        string `json:"username,omitempty"`
	IsPremium       bool   `json:"isPremium" gorm:"not null;default:false"`
	PremiumExpires  *time.Time
	RequestsToday   int    `json:"requestsToday" gorm:"not null;default:0"`
	LastRequestDate string `json:"lastRequestDate,omitempty"`
	CreatedAt       time.Time
}
