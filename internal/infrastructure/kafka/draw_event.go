package kafka

import "time"

// DrawEvent is published after a settlement commits. Downstream consumers
// (chat bots, mailers) format the actual user-facing notification.
type DrawEvent struct {
	RoundID       string    `json:"round_id"`
	RoundNumber   int64     `json:"round_number"`
	ProductID     string    `json:"product_id"`
	WinnerUserID  string    `json:"winner_user_id"`
	WinningNumber int64     `json:"winning_number"`
	OrderNumber   string    `json:"order_number"`
	DrawTime      time.Time `json:"draw_time"`
}
