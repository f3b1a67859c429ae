// Package vrf implements the verifiable draw algorithm: commitment over the
// participation set, fresh system entropy, HMAC-based seed derivation and
// uniform winning-number expansion. Every function is pure apart from
// NewEntropy; nothing here touches storage.
package vrf

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
	"sort"
	"strconv"
	"time"

	"github.com/duobao-games/lottery-draw-service/internal/domain"
)

const (
	// AlgorithmVersion tags every proof so a verifier knows which scheme
	// produced it.
	AlgorithmVersion = "2.0-secure"

	// TicketNumberBase offsets the zero-based winning index into the
	// canonical ticket-number space.
	TicketNumberBase = 10000001

	vrfKeyLabel       = "lottery-vrf-key"
	verificationNotes = "HMAC-SHA256-HKDF/SHA-256"
)

// NewEntropy returns 32 bytes of fresh cryptographic randomness, hex
// encoded. Generated once per draw and never derivable from round data.
func NewEntropy() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("reading system entropy: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// canonicalParticipation is the normalized form a participation takes inside
// the commitment. Field order is fixed by the struct definition, numbers are
// sorted ascending, timestamps are UTC RFC3339.
type canonicalParticipation struct {
	ID        string  `json:"id"`
	UserID    string  `json:"userId"`
	Numbers   []int64 `json:"numbers"`
	CreatedAt string  `json:"createdAt"`
	Cost      string  `json:"cost"`
}

// Commit canonicalizes the participation set and digests it. Any added,
// removed or altered record changes the result; the same set always
// reproduces it.
func Commit(participations []*domain.Participation) string {
	records := make([]canonicalParticipation, len(participations))
	for i, p := range participations {
		numbers := append([]int64(nil), p.Numbers...)
		sort.Slice(numbers, func(a, b int) bool { return numbers[a] < numbers[b] })
		records[i] = canonicalParticipation{
			ID:        p.ID,
			UserID:    p.UserID,
			Numbers:   numbers,
			CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339Nano),
			Cost:      strconv.FormatFloat(p.Cost, 'f', -1, 64),
		}
	}
	sort.Slice(records, func(a, b int) bool { return records[a].ID < records[b].ID })

	data, _ := json.Marshal(records)
	digest := sha256.Sum256(data)
	return hex.EncodeToString(digest[:])
}

type seedInput struct {
	RoundID           string `json:"roundId"`
	ProductID         string `json:"productId"`
	ParticipationHash string `json:"participationHash"`
	SystemEntropy     string `json:"systemEntropy"`
	Version           string `json:"version"`
}

// DeriveSeed binds the round, the product, the committed participation set
// and the fresh entropy into one seed. Without the entropy the seed cannot
// be forged after the fact; before the entropy exists it cannot be predicted.
func DeriveSeed(roundID, productID, commitmentHash, entropy string) string {
	data, _ := json.Marshal(seedInput{
		RoundID:           roundID,
		ProductID:         productID,
		ParticipationHash: commitmentHash,
		SystemEntropy:     entropy,
		Version:           AlgorithmVersion,
	})
	digest := sha256.Sum256(data)
	return hex.EncodeToString(digest[:])
}

// WinningNumber expands the seed into a ticket number in
// [TicketNumberBase, TicketNumberBase+totalShares). The 256-bit digest
// domain makes modulo bias negligible at any realistic share count.
func WinningNumber(seed, roundID string, totalShares int64) (int64, error) {
	if totalShares <= 0 {
		return 0, fmt.Errorf("total shares must be positive, got %d", totalShares)
	}

	mac := hmac.New(sha256.New, []byte(seed))
	mac.Write([]byte(vrfKeyLabel))
	prk := mac.Sum(nil)

	h := sha256.New()
	h.Write(prk)
	h.Write([]byte(roundID))
	digest := h.Sum(nil)

	n := new(big.Int).SetBytes(digest)
	n.Mod(n, big.NewInt(totalShares))
	return n.Int64() + TicketNumberBase, nil
}

// FindWinner scans for the participation holding winningNumber. A miss is an
// invariant violation on a full round, surfaced as ErrWinnerNotFound.
func FindWinner(participations []*domain.Participation, winningNumber int64) (*domain.Participation, error) {
	for _, p := range participations {
		if p.HoldsNumber(winningNumber) {
			return p, nil
		}
	}
	return nil, domain.ErrWinnerNotFound
}

// BuildProof assembles the persisted draw record. Together with the
// participation set it contains everything Verify needs.
func BuildProof(seed, entropy, commitmentHash string, totalShares, winningNumber int64, participantCount int) *domain.DrawProof {
	return &domain.DrawProof{
		AlgorithmVersion:  AlgorithmVersion,
		CommitmentHash:    commitmentHash,
		Seed:              seed,
		Entropy:           entropy,
		FinalHash:         finalHash(seed, winningNumber),
		TotalShares:       totalShares,
		WinningNumber:     winningNumber,
		ParticipantCount:  participantCount,
		VerificationNotes: verificationNotes,
	}
}

func finalHash(seed string, winningNumber int64) string {
	digest := sha256.Sum256([]byte(fmt.Sprintf("%s-%d", seed, winningNumber)))
	return hex.EncodeToString(digest[:])
}
