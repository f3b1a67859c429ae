package models

import (
	"time"

	"github.com/duobao-games/lottery-draw-service/internal/domain"
)

type OrderModel struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	OrderNumber string `gorm:"uniqueIndex"`
	UserID      string `gorm:"type:uuid;index"`
	RoundID     string `gorm:"type:uuid;index"`
	ProductID   string `gorm:"type:uuid"`
	Type        domain.OrderType
	TotalAmount float64
	Status      domain.OrderStatus `gorm:"index"`
	Version     int64              `gorm:"not null;default:1"`
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
