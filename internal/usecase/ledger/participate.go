package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/duobao-games/lottery-draw-service/internal/domain"
	"github.com/duobao-games/lottery-draw-service/internal/vrf"
	"github.com/google/uuid"
)

type ParticipateInput struct {
	UserID      string
	RoundID     string
	ProductID   string
	SharesCount int64
	// Numbers is optional; when nil the block is allocated from the round's
	// current soldShares watermark. A supplied slice (replay and verification
	// tooling) must be exactly that watermark block, or the purchase is
	// rejected with domain.ErrInvalidNumbers.
	Numbers []int64
}

type ParticipateOutput struct {
	ParticipationID string
	Numbers         []int64
	Cost            float64
	NewBalance      float64
	SoldShares      int64
	RoundStatus     domain.RoundStatus
	RoundFull       bool
}

// Participate validates the purchase against current versions and applies it
// as one atomic unit. Any precondition failure or stale version aborts with
// zero observable effect. The share-version guard is what makes the
// pre-computed number block safe: if soldShares moved, the unit fails with
// domain.ErrVersionConflict instead of issuing duplicate ticket numbers.
func (uc *DefaultLedgerUsecase) Participate(input *ParticipateInput) (*ParticipateOutput, error) {
	if input.SharesCount < 1 {
		return nil, fmt.Errorf("shares count must be at least 1, got %d", input.SharesCount)
	}

	user, err := uc.UserRepo.GetUserByID(input.UserID)
	if err != nil {
		return nil, fmt.Errorf("loading user %s: %w", input.UserID, err)
	}

	round, err := uc.RoundRepo.GetRoundByID(input.RoundID)
	if err != nil {
		return nil, fmt.Errorf("loading round %s: %w", input.RoundID, err)
	}

	product, err := uc.ProductRepo.GetProductByID(input.ProductID)
	if err != nil {
		return nil, fmt.Errorf("loading product %s: %w", input.ProductID, err)
	}

	if round.Status != domain.RoundStatusActive {
		uc.recordParticipationError("round_not_active")
		return nil, domain.ErrRoundNotActive
	}
	if input.SharesCount > round.RemainingShares() {
		uc.recordParticipationError("insufficient_shares")
		return nil, domain.ErrInsufficientShares
	}

	cost := float64(input.SharesCount) * product.SharePrice
	if user.Balance < cost {
		uc.recordParticipationError("insufficient_balance")
		return nil, domain.ErrInsufficientBalance
	}

	numbers := input.Numbers
	if numbers == nil {
		numbers = allocateNumbers(round.SoldShares, input.SharesCount)
	} else if err := validateNumbers(numbers, round.SoldShares, input.SharesCount); err != nil {
		uc.recordParticipationError("invalid_numbers")
		return nil, err
	}

	newSold := round.SoldShares + input.SharesCount
	newStatus := domain.RoundStatusActive
	if newSold == round.TotalShares {
		newStatus = domain.RoundStatusFull
	}

	participationID := uuid.NewString()
	now := time.Now()
	unit := &domain.ParticipateUnit{
		UserID:                 user.ID,
		NewBalance:             user.Balance - cost,
		ExpectedBalanceVersion: user.BalanceVersion,

		RoundID:               round.ID,
		NewSoldShares:         newSold,
		NewRoundStatus:        newStatus,
		ExpectedSharesVersion: round.SoldSharesVersion,

		Participation: &domain.Participation{
			ID:          participationID,
			UserID:      user.ID,
			RoundID:     round.ID,
			ProductID:   product.ID,
			Numbers:     numbers,
			SharesCount: input.SharesCount,
			Cost:        cost,
			CreatedAt:   now,
		},
		Entry: &domain.Transaction{
			ID:           uuid.NewString(),
			UserID:       user.ID,
			Type:         domain.TxLotteryParticipation,
			Amount:       cost,
			BalanceAfter: user.Balance - cost,
			RelatedID:    participationID,
			Description:  fmt.Sprintf("lottery participation - %d shares", input.SharesCount),
			CreatedAt:    now,
		},
	}

	if err := uc.LedgerRepo.Participate(unit); err != nil {
		if errors.Is(err, domain.ErrVersionConflict) {
			uc.recordVersionConflict("participate")
		}
		return nil, err
	}

	uc.recordParticipation(product.ID, input.SharesCount)
	slog.Info("participation committed",
		"participation_id", participationID,
		"user_id", user.ID,
		"round_id", round.ID,
		"shares", input.SharesCount,
		"sold_shares", newSold,
		"round_full", newStatus == domain.RoundStatusFull,
	)

	if newStatus == domain.RoundStatusFull && uc.drawTrigger != nil {
		// Immediate draw, off the purchase path. The periodic sweep is the
		// safety net if this attempt loses or the process dies.
		go func(roundID string) {
			if _, err := uc.drawTrigger.TriggerDraw(context.Background(), roundID); err != nil {
				slog.Error("immediate draw failed", "round_id", roundID, "error", err.Error())
			}
		}(round.ID)
	}

	return &ParticipateOutput{
		ParticipationID: participationID,
		Numbers:         numbers,
		Cost:            cost,
		NewBalance:      user.Balance - cost,
		SoldShares:      newSold,
		RoundStatus:     newStatus,
		RoundFull:       newStatus == domain.RoundStatusFull,
	}, nil
}

// allocateNumbers hands out the next contiguous block of ticket numbers,
// starting at the canonical base offset.
func allocateNumbers(soldShares, count int64) []int64 {
	numbers := make([]int64, count)
	for i := int64(0); i < count; i++ {
		numbers[i] = soldShares + vrf.TicketNumberBase + i
	}
	return numbers
}

// validateNumbers accepts only the exact block allocateNumbers would issue at
// the current watermark. The share-version guard pins soldShares, so any
// other block would collide with committed numbers or leave a hole in the
// round's ticket space.
func validateNumbers(numbers []int64, soldShares, count int64) error {
	if int64(len(numbers)) != count {
		return fmt.Errorf("%w: got %d numbers for %d shares", domain.ErrInvalidNumbers, len(numbers), count)
	}
	for i, n := range numbers {
		if n != soldShares+vrf.TicketNumberBase+int64(i) {
			return fmt.Errorf("%w: number %d is outside the round's next allocation block", domain.ErrInvalidNumbers, n)
		}
	}
	return nil
}
