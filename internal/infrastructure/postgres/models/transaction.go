package models

import (
	"time"

	"github.com/duobao-games/lottery-draw-service/internal/domain"
)

// TransactionModel rows are append-only: created inside ledger units,
// never updated or deleted.
type TransactionModel struct {
	ID           string                 `gorm:"primaryKey;type:uuid"`
	UserID       string                 `gorm:"type:uuid;index"`
	Type         domain.TransactionType `gorm:"index"`
	Amount       float64
	BalanceAfter float64
	RelatedID    string `gorm:"type:uuid"`
	Description  string
	CreatedAt    time.Time `gorm:"index"`
}
