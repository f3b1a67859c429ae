package domain

// ParticipateUnit carries one fully validated purchase. The controller
// pre-reads both version counters and pre-computes the resulting row values;
// the repository only has to apply the guarded writes in one transaction.
type ParticipateUnit struct {
	UserID                 string
	NewBalance             float64
	ExpectedBalanceVersion int64

	RoundID               string
	NewSoldShares         int64
	NewRoundStatus        RoundStatus
	ExpectedSharesVersion int64

	Participation *Participation
	Entry         *Transaction
}

type LedgerRepository interface {
	// Participate commits the balance debit, share increment, participation
	// insert and transaction append as one unit, or nothing at all. Either
	// stale version counter aborts the unit with ErrVersionConflict.
	Participate(unit *ParticipateUnit) error
}
