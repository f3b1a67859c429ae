package domain

import "time"

type User struct {
	ID             string
	Balance        float64
	BalanceVersion int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type BalanceDirection string

const (
	BalanceCredit BalanceDirection = "credit"
	BalanceDebit  BalanceDirection = "debit"
)
