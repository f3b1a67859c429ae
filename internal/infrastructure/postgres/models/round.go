package models

import (
	"time"

	"github.com/duobao-games/lottery-draw-service/internal/domain"
)

type RoundModel struct {
	ID                string `gorm:"primaryKey;type:uuid"`
	ProductID         string `gorm:"type:uuid;index"`
	RoundNumber       int64
	TotalShares       int64
	SoldShares        int64
	SoldSharesVersion int64              `gorm:"not null;default:1"`
	Status            domain.RoundStatus `gorm:"index:idx_round_status"`
	WinningNumber     *int64
	WinnerUserID      *string    `gorm:"type:uuid"`
	DrawTime          *time.Time
	DrawProof         string     `gorm:"type:jsonb"`
	CreatedAt         time.Time  `gorm:"index:idx_round_created_at"`
	UpdatedAt         time.Time
}
