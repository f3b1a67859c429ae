package domain

import "time"

type RoundStatus string

const (
	RoundStatusPending   RoundStatus = "pending"
	RoundStatusActive    RoundStatus = "active"
	RoundStatusFull      RoundStatus = "full"
	RoundStatusCompleted RoundStatus = "completed"
	RoundStatusCancelled RoundStatus = "cancelled"
)

// Round is one prize pool with a fixed share count. soldShares only moves
// through version-guarded updates; winningNumber is set exactly when the
// round transitions to completed.
type Round struct {
	ID                string
	ProductID         string
	RoundNumber       int64
	TotalShares       int64
	SoldShares        int64
	SoldSharesVersion int64
	Status            RoundStatus
	WinningNumber     *int64
	WinnerUserID      *string
	DrawTime          *time.Time
	DrawProof         *DrawProof
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (r *Round) RemainingShares() int64 {
	return r.TotalShares - r.SoldShares
}
