package domain

import "time"

// Product is the read-only catalog entry a round is drawn for. SharePrice
// prices one share; MarketPrice is the amount stamped on the win transaction.
type Product struct {
	ID          string
	Name        string
	SharePrice  float64
	MarketPrice float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
