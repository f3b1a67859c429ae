package domain

import (
	"context"
	"time"
)

// DrawProof is the persisted record of every input an independent party
// needs to recompute the winning number. Stored as a single jsonb column on
// the round and parsed back into this struct on read.
type DrawProof struct {
	AlgorithmVersion  string `json:"algorithm_version"`
	CommitmentHash    string `json:"commitment_hash"`
	Seed              string `json:"seed"`
	Entropy           string `json:"entropy"`
	FinalHash         string `json:"final_hash"`
	TotalShares       int64  `json:"total_shares"`
	WinningNumber     int64  `json:"winning_number"`
	ParticipantCount  int    `json:"participant_count"`
	VerificationNotes string `json:"verification_notes"`
}

// DrawSettlement is the one atomic unit that closes a round: the
// full -> completed status flip is the serialization point, everything else
// rides in the same transaction.
type DrawSettlement struct {
	RoundID              string
	WinnerParticipationID string
	WinnerUserID         string
	WinningNumber        int64
	DrawTime             time.Time
	Proof                *DrawProof
	Order                *Order
	WinTransaction       *Transaction
}

// DrawOutcome reports what a trigger attempt did. A skipped outcome is a
// success, not an error: redundant triggers on a drawn round are expected.
type DrawOutcome struct {
	RoundID       string
	Skipped       bool
	SkipReason    string
	WinningNumber int64
	WinnerUserID  string
	DrawTime      time.Time
}

// DrawTrigger lets the ledger side kick off an immediate draw when a
// participation fills a round, without depending on the orchestrator package.
type DrawTrigger interface {
	TriggerDraw(ctx context.Context, roundID string) (*DrawOutcome, error)
}
