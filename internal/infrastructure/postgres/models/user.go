package models

import "time"

type UserModel struct {
	ID             string  `gorm:"primaryKey;type:uuid"`
	Balance        float64 `gorm:"not null;default:0"`
	BalanceVersion int64   `gorm:"not null;default:1"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
