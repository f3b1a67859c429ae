package draw

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/duobao-games/lottery-draw-service/internal/infrastructure/logger"
)

// SweepReport summarizes one pass over the full rounds backlog.
type SweepReport struct {
	Found   int
	Settled int
	Skipped int
	Failed  int
}

// Sweep settles every round stuck in full status, up to the per-pass cap.
// It is the safety net behind the immediate trigger: a crashed process or a
// lost race leaves the round in full, and the next sweep picks it up. A
// failed round is logged and skipped so one bad round never starves the
// rest of the backlog.
func (uc *DefaultDrawUsecase) Sweep(ctx context.Context) (*SweepReport, error) {
	rounds, err := uc.RoundRepo.FindFullRounds(uc.Cfg.MaxRoundsPerSweep)
	if err != nil {
		return nil, fmt.Errorf("listing full rounds: %w", err)
	}

	report := &SweepReport{Found: len(rounds)}
	if uc.Metrics != nil {
		uc.Metrics.SetRoundsFull(len(rounds))
	}
	if len(rounds) == 0 {
		return report, nil
	}

	uc.audit(ctx, logger.DrawAuditEvent{
		EventType: logger.EventSweepStarted,
		Detail:    fmt.Sprintf("%d full rounds", len(rounds)),
	})

	for _, round := range rounds {
		select {
		case <-ctx.Done():
			return report, ctx.Err()
		default:
		}

		outcome, err := uc.TriggerDraw(ctx, round.ID)
		switch {
		case err != nil:
			report.Failed++
			slog.Error("sweep: draw failed", "round_id", round.ID, "error", err.Error())
		case outcome.Skipped:
			report.Skipped++
		default:
			report.Settled++
		}

		// Small randomized gap between rounds keeps concurrent sweepers
		// from marching through the backlog in lockstep.
		uc.sweepDelay(ctx)
	}

	slog.Info("sweep finished",
		"found", report.Found,
		"settled", report.Settled,
		"skipped", report.Skipped,
		"failed", report.Failed,
	)
	return report, nil
}

func (uc *DefaultDrawUsecase) sweepDelay(ctx context.Context) {
	min, max := uc.Cfg.MinSweepDelay, uc.Cfg.MaxSweepDelay
	if max <= min {
		return
	}
	delay := min + time.Duration(rand.Int63n(int64(max-min)))
	select {
	case <-time.After(delay):
	case <-ctx.Done():
	}
}

// MonitorStuckRounds flags rounds that have sat in full status beyond the
// configured age. They stay in the sweep backlog; this only raises the
// operational signal.
func (uc *DefaultDrawUsecase) MonitorStuckRounds(ctx context.Context) error {
	cutoff := time.Now().Add(-uc.Cfg.StuckRoundAge)
	rounds, err := uc.RoundRepo.FindStuckFullRounds(cutoff)
	if err != nil {
		return fmt.Errorf("listing stuck rounds: %w", err)
	}

	for _, round := range rounds {
		slog.Warn("round stuck in full status",
			"round_id", round.ID,
			"product_id", round.ProductID,
			"updated_at", round.UpdatedAt,
		)
		uc.audit(ctx, logger.DrawAuditEvent{
			RoundID:   round.ID,
			EventType: logger.EventRoundStuck,
			Detail:    fmt.Sprintf("full since %s", round.UpdatedAt.Format(time.RFC3339)),
		})
	}
	return nil
}
