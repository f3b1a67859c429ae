package draw

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/duobao-games/lottery-draw-service/internal/domain"
	"github.com/duobao-games/lottery-draw-service/internal/infrastructure/kafka"
	"github.com/duobao-games/lottery-draw-service/internal/infrastructure/logger"
	"github.com/duobao-games/lottery-draw-service/internal/infrastructure/notifier"
	"github.com/duobao-games/lottery-draw-service/internal/vrf"
	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
)

const (
	SkipReasonAlreadyDrawn = "already_drawn"
	SkipReasonNotFull      = "not_full"
	SkipReasonCancelled    = "cancelled"
)

// TriggerDraw runs the verifiable draw for a full round and commits the
// settlement. Safe to call any number of times from any number of callers:
// the status flip inside SettleDraw guarantees at most one attempt lands,
// every other one reports a skipped outcome.
func (uc *DefaultDrawUsecase) TriggerDraw(ctx context.Context, roundID string) (*domain.DrawOutcome, error) {
	started := time.Now()

	round, err := uc.RoundRepo.GetRoundByID(roundID)
	if err != nil {
		return nil, fmt.Errorf("loading round %s: %w", roundID, err)
	}

	switch round.Status {
	case domain.RoundStatusCompleted:
		uc.recordDrawSkipped(SkipReasonAlreadyDrawn)
		return skippedOutcome(round, SkipReasonAlreadyDrawn), nil
	case domain.RoundStatusCancelled:
		uc.recordDrawSkipped(SkipReasonCancelled)
		return skippedOutcome(round, SkipReasonCancelled), nil
	case domain.RoundStatusFull:
		// proceed
	default:
		uc.recordDrawSkipped(SkipReasonNotFull)
		return skippedOutcome(round, SkipReasonNotFull), nil
	}

	participations, err := uc.ParticipationRepo.GetParticipationsByRoundID(round.ID)
	if err != nil {
		uc.recordDrawFailure("load_participations")
		return nil, fmt.Errorf("loading participations for round %s: %w", round.ID, err)
	}
	if len(participations) == 0 {
		uc.recordDrawFailure("no_participants")
		uc.audit(ctx, logger.DrawAuditEvent{
			RoundID:   round.ID,
			EventType: logger.EventDrawFailed,
			Detail:    domain.ErrNoParticipants.Error(),
		})
		return nil, fmt.Errorf("round %s is full: %w", round.ID, domain.ErrNoParticipants)
	}

	product, err := uc.ProductRepo.GetProductByID(round.ProductID)
	if err != nil {
		uc.recordDrawFailure("load_product")
		return nil, fmt.Errorf("loading product %s: %w", round.ProductID, err)
	}

	entropy, err := vrf.NewEntropy()
	if err != nil {
		uc.recordDrawFailure("entropy")
		return nil, err
	}
	commitment := vrf.Commit(participations)
	seed := vrf.DeriveSeed(round.ID, round.ProductID, commitment, entropy)
	winningNumber, err := vrf.WinningNumber(seed, round.ID, round.TotalShares)
	if err != nil {
		uc.recordDrawFailure("winning_number")
		return nil, err
	}

	winner, err := vrf.FindWinner(participations, winningNumber)
	if err != nil {
		// A full round must cover [base, base+totalShares). A miss means
		// corrupted participation data and must surface loudly.
		uc.recordDrawFailure("winner_not_found")
		uc.audit(ctx, logger.DrawAuditEvent{
			RoundID:       round.ID,
			EventType:     logger.EventDrawFailed,
			WinningNumber: winningNumber,
			Detail:        err.Error(),
		})
		return nil, fmt.Errorf("round %s, number %d: %w", round.ID, winningNumber, err)
	}

	proof := vrf.BuildProof(seed, entropy, commitment, round.TotalShares, winningNumber, len(participations))
	drawTime := time.Now()

	orderNumber, err := newOrderNumber()
	if err != nil {
		uc.recordDrawFailure("order_number")
		return nil, err
	}
	order := &domain.Order{
		ID:          uuid.NewString(),
		OrderNumber: orderNumber,
		UserID:      winner.UserID,
		RoundID:     round.ID,
		ProductID:   round.ProductID,
		Type:        domain.OrderTypeLotteryWin,
		TotalAmount: product.MarketPrice,
		Status:      domain.OrderStatusPending,
		Version:     1,
		Notes:       fmt.Sprintf("lottery win - round %d, number %d", round.RoundNumber, winningNumber),
		CreatedAt:   drawTime,
		UpdatedAt:   drawTime,
	}

	settlement := &domain.DrawSettlement{
		RoundID:               round.ID,
		WinnerParticipationID: winner.ID,
		WinnerUserID:          winner.UserID,
		WinningNumber:         winningNumber,
		DrawTime:              drawTime,
		Proof:                 proof,
		Order:                 order,
		WinTransaction: &domain.Transaction{
			ID:          uuid.NewString(),
			UserID:      winner.UserID,
			Type:        domain.TxLotteryWin,
			Amount:      product.MarketPrice,
			RelatedID:   order.ID,
			Description: fmt.Sprintf("lottery win - %s", product.Name),
			CreatedAt:   drawTime,
		},
	}

	if err := uc.RoundRepo.SettleDraw(settlement); err != nil {
		if errors.Is(err, domain.ErrRoundAlreadyDrawn) {
			// Lost the race to a concurrent trigger. Their settlement is
			// the valid one; this attempt's entropy and proof are discarded.
			uc.recordDrawSkipped(SkipReasonAlreadyDrawn)
			uc.audit(ctx, logger.DrawAuditEvent{
				RoundID:   round.ID,
				EventType: logger.EventDrawSkipped,
				Detail:    SkipReasonAlreadyDrawn,
			})
			return &domain.DrawOutcome{
				RoundID:    round.ID,
				Skipped:    true,
				SkipReason: SkipReasonAlreadyDrawn,
			}, nil
		}
		uc.recordDrawFailure("settlement")
		return nil, fmt.Errorf("settling round %s: %w", round.ID, err)
	}

	uc.recordDrawCompleted(round.ProductID, time.Since(started).Seconds())
	uc.audit(ctx, logger.DrawAuditEvent{
		RoundID:       round.ID,
		EventType:     logger.EventDrawSettled,
		WinningNumber: winningNumber,
		WinnerUserID:  winner.UserID,
		Detail:        orderNumber,
	})
	slog.Info("round settled",
		"round_id", round.ID,
		"winning_number", winningNumber,
		"winner_user_id", winner.UserID,
		"order_number", orderNumber,
	)

	uc.notifyWinner(round, winner.UserID, winningNumber, orderNumber, drawTime)

	return &domain.DrawOutcome{
		RoundID:       round.ID,
		WinningNumber: winningNumber,
		WinnerUserID:  winner.UserID,
		DrawTime:      drawTime,
	}, nil
}

// notifyWinner fans the committed settlement out to the event bus and the
// messaging callback. Both are best-effort: the settlement already holds.
func (uc *DefaultDrawUsecase) notifyWinner(round *domain.Round, winnerUserID string, winningNumber int64, orderNumber string, drawTime time.Time) {
	if uc.Publisher != nil {
		go func() {
			event := kafka.DrawEvent{
				RoundID:       round.ID,
				RoundNumber:   round.RoundNumber,
				ProductID:     round.ProductID,
				WinnerUserID:  winnerUserID,
				WinningNumber: winningNumber,
				OrderNumber:   orderNumber,
				DrawTime:      drawTime,
			}
			if err := uc.Publisher.PublishDraw(event); err != nil {
				slog.Error("failed to publish draw event", "round_id", round.ID, "error", err.Error())
			}
		}()
	}

	if uc.Cfg.WinnerCallbackURL != "" {
		notifier.SendWinnerCallback(uc.Cfg.WinnerCallbackURL, notifier.WinnerCallbackPayload{
			RoundID:       round.ID,
			RoundNumber:   round.RoundNumber,
			WinnerUserID:  winnerUserID,
			WinningNumber: winningNumber,
			OrderNumber:   orderNumber,
			DrawTime:      drawTime,
		})
	}
}

func newOrderNumber() (string, error) {
	gen, err := nanoid.Standard(15)
	if err != nil {
		return "", fmt.Errorf("creating order number generator: %w", err)
	}
	return "LM" + gen(), nil
}

func skippedOutcome(round *domain.Round, reason string) *domain.DrawOutcome {
	outcome := &domain.DrawOutcome{
		RoundID:    round.ID,
		Skipped:    true,
		SkipReason: reason,
	}
	if round.WinningNumber != nil {
		outcome.WinningNumber = *round.WinningNumber
	}
	if round.WinnerUserID != nil {
		outcome.WinnerUserID = *round.WinnerUserID
	}
	if round.DrawTime != nil {
		outcome.DrawTime = *round.DrawTime
	}
	return outcome
}
