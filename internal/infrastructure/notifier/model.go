package notifier

import "time"

type WinnerCallbackPayload struct {
	RoundID       string    `json:"round_id"`
	RoundNumber   int64     `json:"round_number"`
	WinnerUserID  string    `json:"winner_user_id"`
	WinningNumber int64     `json:"winning_number"`
	OrderNumber   string    `json:"order_number"`
	DrawTime      time.Time `json:"draw_time"`
}
