package domain

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

type OrderType string

const (
	OrderTypeLotteryWin OrderType = "lottery_win"
)

type Order struct {
	ID          string
	OrderNumber string
	UserID      string
	RoundID     string
	ProductID   string
	Type        OrderType
	TotalAmount float64
	Status      OrderStatus
	Version     int64
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsTerminal reports whether the status accepts no further transitions.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}
