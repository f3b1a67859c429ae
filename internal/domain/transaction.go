package domain

import "time"

type TransactionType string

const (
	TxLotteryParticipation TransactionType = "lottery_participation"
	TxLotteryWin           TransactionType = "lottery_win"
	TxBalanceCredit        TransactionType = "balance_credit"
	TxBalanceDebit         TransactionType = "balance_debit"
)

// Transaction is an append-only ledger entry. Rows are never updated or
// deleted after creation.
type Transaction struct {
	ID           string
	UserID       string
	Type         TransactionType
	Amount       float64
	BalanceAfter float64
	RelatedID    string
	Description  string
	CreatedAt    time.Time
}
