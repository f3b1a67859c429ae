package models

import (
	"time"

	"github.com/lib/pq"
)

type ParticipationModel struct {
	ID          string        `gorm:"primaryKey;type:uuid"`
	UserID      string        `gorm:"type:uuid;index"`
	RoundID     string        `gorm:"type:uuid;index"`
	ProductID   string        `gorm:"type:uuid"`
	Numbers     pq.Int64Array `gorm:"type:bigint[]"`
	SharesCount int64
	Cost        float64
	IsWinner    bool      `gorm:"default:false"`
	CreatedAt   time.Time `gorm:"index"`
}
