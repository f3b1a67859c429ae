package vrf

import (
	"fmt"
	"strconv"

	"github.com/duobao-games/lottery-draw-service/internal/domain"
)

// Diagnostic names one field that diverged during verification, so an audit
// can tell data tampering apart from an algorithm or input error.
type Diagnostic struct {
	Field    string `json:"field"`
	Expected string `json:"expected"`
	Actual   string `json:"actual"`
}

type VerifyResult struct {
	Valid       bool         `json:"valid"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

func (r *VerifyResult) add(field, expected, actual string) {
	r.Valid = false
	r.Diagnostics = append(r.Diagnostics, Diagnostic{Field: field, Expected: expected, Actual: actual})
}

// Verify recomputes every field of the proof from the participation set and
// the proof's own recorded inputs. It never fails with an error: any
// divergence lands in the diagnostics instead.
//
// A commitment_hash diagnostic means the participation data no longer
// matches what was drawn against (tampering); seed or winning_number
// diagnostics mean the recorded inputs do not reproduce the recorded
// outcome (algorithm or input error).
func Verify(proof *domain.DrawProof, roundID, productID string, participations []*domain.Participation) *VerifyResult {
	result := &VerifyResult{Valid: true}

	if proof == nil {
		result.add("proof", "present", "missing")
		return result
	}
	if proof.AlgorithmVersion != AlgorithmVersion {
		result.add("algorithm_version", AlgorithmVersion, proof.AlgorithmVersion)
		return result
	}

	if recomputed := Commit(participations); recomputed != proof.CommitmentHash {
		result.add("commitment_hash", proof.CommitmentHash, recomputed)
	}

	if seed := DeriveSeed(roundID, productID, proof.CommitmentHash, proof.Entropy); seed != proof.Seed {
		result.add("seed", proof.Seed, seed)
	}

	number, err := WinningNumber(proof.Seed, roundID, proof.TotalShares)
	if err != nil {
		result.add("total_shares", "positive", fmt.Sprintf("%d", proof.TotalShares))
		return result
	}
	if number != proof.WinningNumber {
		result.add("winning_number", strconv.FormatInt(proof.WinningNumber, 10), strconv.FormatInt(number, 10))
	}

	if fh := finalHash(proof.Seed, proof.WinningNumber); fh != proof.FinalHash {
		result.add("final_hash", proof.FinalHash, fh)
	}

	return result
}
