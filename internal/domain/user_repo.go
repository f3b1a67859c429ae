package domain

type UserRepository interface {
	GetUserByID(userID string) (*User, error)
	// UpdateBalanceGuarded writes newBalance only if balanceVersion still
	// equals expectedVersion, bumping the version and appending entry in the
	// same transaction. Returns ErrVersionConflict on a stale version.
	UpdateBalanceGuarded(userID string, newBalance float64, expectedVersion int64, entry *Transaction) error
}
