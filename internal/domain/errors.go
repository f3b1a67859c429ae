package domain

import "errors"

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInsufficientShares  = errors.New("insufficient shares")
	ErrRoundNotActive      = errors.New("round is not active")
	ErrVersionConflict     = errors.New("version conflict")
	ErrRoundAlreadyDrawn   = errors.New("round already drawn")
	ErrNoParticipants      = errors.New("round has no participations")
	ErrWinnerNotFound      = errors.New("winning number matched no participation")
	ErrOrderTerminal       = errors.New("order status is terminal")
	ErrInvalidNumbers      = errors.New("invalid ticket numbers")
	ErrMissingDrawProof    = errors.New("round has no draw proof")
)
