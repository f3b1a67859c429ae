package draw

import (
	"context"
	"fmt"
	"strconv"

	"github.com/duobao-games/lottery-draw-service/internal/domain"
	"github.com/duobao-games/lottery-draw-service/internal/vrf"
)

// VerifyDraw recomputes a completed round's outcome from its stored proof
// and participation set. It also cross-checks the proof against the row
// itself, so a proof that is internally consistent but detached from the
// round it claims to settle still fails.
func (uc *DefaultDrawUsecase) VerifyDraw(ctx context.Context, roundID string) (*vrf.VerifyResult, error) {
	round, err := uc.RoundRepo.GetRoundByID(roundID)
	if err != nil {
		return nil, fmt.Errorf("loading round %s: %w", roundID, err)
	}
	if round.Status != domain.RoundStatusCompleted {
		return nil, fmt.Errorf("round %s has status %s, expected completed", round.ID, round.Status)
	}
	if round.DrawProof == nil {
		return nil, fmt.Errorf("round %s: %w", round.ID, domain.ErrMissingDrawProof)
	}

	participations, err := uc.ParticipationRepo.GetParticipationsByRoundID(round.ID)
	if err != nil {
		return nil, fmt.Errorf("loading participations for round %s: %w", round.ID, err)
	}

	result := vrf.Verify(round.DrawProof, round.ID, round.ProductID, participations)

	if round.WinningNumber != nil && *round.WinningNumber != round.DrawProof.WinningNumber {
		result.Valid = false
		result.Diagnostics = append(result.Diagnostics, vrf.Diagnostic{
			Field:    "round_winning_number",
			Expected: strconv.FormatInt(round.DrawProof.WinningNumber, 10),
			Actual:   strconv.FormatInt(*round.WinningNumber, 10),
		})
	}

	return result, nil
}
