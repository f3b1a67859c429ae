package domain

import "time"

type RoundRepository interface {
	GetRoundByID(roundID string) (*Round, error)
	// UpdateSoldSharesGuarded writes newSold and newStatus only if
	// soldSharesVersion still equals expectedVersion. Returns
	// ErrVersionConflict on a stale version.
	UpdateSoldSharesGuarded(roundID string, newSold int64, newStatus RoundStatus, expectedVersion int64) error
	FindFullRounds(limit int) ([]*Round, error)
	FindStuckFullRounds(olderThan time.Time) ([]*Round, error)
	// SettleDraw applies the whole settlement unit atomically. The
	// full -> completed status flip guards the unit: if another caller
	// settled first, ErrRoundAlreadyDrawn is returned and nothing changes.
	SettleDraw(settlement *DrawSettlement) error
}
