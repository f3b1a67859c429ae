package models

import "time"

type ProductModel struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	Name        string
	SharePrice  float64
	MarketPrice float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
