package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/duobao-games/lottery-draw-service/internal/domain"
	"github.com/google/uuid"
)

// AdjustBalance applies a version-guarded credit or debit and appends the
// matching ledger entry in the same transaction. A debit below zero fails
// with ErrInsufficientBalance before any write.
func (uc *DefaultLedgerUsecase) AdjustBalance(userID string, amount float64, direction domain.BalanceDirection) (*domain.Snapshot, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("adjustment amount must be positive, got %v", amount)
	}

	user, err := uc.UserRepo.GetUserByID(userID)
	if err != nil {
		return nil, fmt.Errorf("loading user %s: %w", userID, err)
	}

	var newBalance float64
	var txType domain.TransactionType
	switch direction {
	case domain.BalanceCredit:
		newBalance = user.Balance + amount
		txType = domain.TxBalanceCredit
	case domain.BalanceDebit:
		if user.Balance < amount {
			return nil, domain.ErrInsufficientBalance
		}
		newBalance = user.Balance - amount
		txType = domain.TxBalanceDebit
	default:
		return nil, fmt.Errorf("unknown balance direction %q", direction)
	}

	entry := &domain.Transaction{
		ID:           uuid.NewString(),
		UserID:       user.ID,
		Type:         txType,
		Amount:       amount,
		BalanceAfter: newBalance,
		Description:  fmt.Sprintf("balance %s", direction),
		CreatedAt:    time.Now(),
	}

	if err := uc.UserRepo.UpdateBalanceGuarded(user.ID, newBalance, user.BalanceVersion, entry); err != nil {
		if errors.Is(err, domain.ErrVersionConflict) {
			uc.recordVersionConflict("user")
		}
		return nil, err
	}

	return &domain.Snapshot{
		Kind:    domain.EntityUser,
		ID:      user.ID,
		Version: user.BalanceVersion + 1,
		Balance: newBalance,
	}, nil
}

// AdjustSoldShares moves the share counter by delta under the version guard.
// Operational tooling uses it to back out mistaken allocations; the regular
// purchase path goes through Participate. Reaching the cap flips the round to
// full, and a negative delta on a full round reopens it.
func (uc *DefaultLedgerUsecase) AdjustSoldShares(roundID string, delta int64) (*domain.Snapshot, error) {
	if delta == 0 {
		return nil, fmt.Errorf("share delta must be non-zero")
	}

	round, err := uc.RoundRepo.GetRoundByID(roundID)
	if err != nil {
		return nil, fmt.Errorf("loading round %s: %w", roundID, err)
	}
	if round.Status != domain.RoundStatusActive && round.Status != domain.RoundStatusFull {
		return nil, domain.ErrRoundNotActive
	}

	newSold := round.SoldShares + delta
	if newSold < 0 || newSold > round.TotalShares {
		return nil, domain.ErrInsufficientShares
	}

	newStatus := domain.RoundStatusActive
	if newSold == round.TotalShares {
		newStatus = domain.RoundStatusFull
	}

	if err := uc.RoundRepo.UpdateSoldSharesGuarded(round.ID, newSold, newStatus, round.SoldSharesVersion); err != nil {
		if errors.Is(err, domain.ErrVersionConflict) {
			uc.recordVersionConflict("round")
		}
		return nil, err
	}

	if newStatus == domain.RoundStatusFull && uc.drawTrigger != nil {
		go func(roundID string) {
			if _, err := uc.drawTrigger.TriggerDraw(context.Background(), roundID); err != nil {
				slog.Error("immediate draw failed", "round_id", roundID, "error", err.Error())
			}
		}(round.ID)
	}

	return &domain.Snapshot{
		Kind:        domain.EntityRound,
		ID:          round.ID,
		Version:     round.SoldSharesVersion + 1,
		SoldShares:  newSold,
		TotalShares: round.TotalShares,
		Status:      string(newStatus),
	}, nil
}
