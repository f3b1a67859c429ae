package domain

import "time"

// Participation is immutable once created except for the single IsWinner
// flip performed at settlement.
type Participation struct {
	ID          string
	UserID      string
	RoundID     string
	ProductID   string
	Numbers     []int64
	SharesCount int64
	Cost        float64
	IsWinner    bool
	CreatedAt   time.Time
}

func (p *Participation) HoldsNumber(n int64) bool {
	for _, num := range p.Numbers {
		if num == n {
			return true
		}
	}
	return false
}
