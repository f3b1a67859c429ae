// Package draw orchestrates round settlement: it detects full rounds, runs
// the verifiable draw and commits the winner exactly once. The
// full -> completed status flip inside the settlement transaction is the
// only serialization point; everything after the commit is fire-and-forget.
package draw

import (
	"context"

	"github.com/duobao-games/lottery-draw-service/internal/config"
	"github.com/duobao-games/lottery-draw-service/internal/domain"
	"github.com/duobao-games/lottery-draw-service/internal/infrastructure/kafka"
	"github.com/duobao-games/lottery-draw-service/internal/infrastructure/logger"
	"github.com/duobao-games/lottery-draw-service/internal/infrastructure/metrics"
	"github.com/duobao-games/lottery-draw-service/internal/vrf"
)

// DrawPublisher is what the orchestrator needs from the event bus.
type DrawPublisher interface {
	PublishDraw(event kafka.DrawEvent) error
}

type DrawUsecase interface {
	domain.DrawTrigger
	Sweep(ctx context.Context) (*SweepReport, error)
	MonitorStuckRounds(ctx context.Context) error
	VerifyDraw(ctx context.Context, roundID string) (*vrf.VerifyResult, error)
}

type DefaultDrawUsecase struct {
	RoundRepo         domain.RoundRepository
	ParticipationRepo domain.ParticipationRepository
	ProductRepo       domain.ProductRepository
	Publisher         DrawPublisher
	AuditLogger       logger.DrawAuditLogger
	Metrics           *metrics.LotteryMetrics
	Cfg               config.DrawConfig
}

func NewDefaultDrawUsecase(
	roundRepo domain.RoundRepository,
	participationRepo domain.ParticipationRepository,
	productRepo domain.ProductRepository,
	publisher DrawPublisher,
	auditLogger logger.DrawAuditLogger,
	lotteryMetrics *metrics.LotteryMetrics,
	cfg config.DrawConfig) *DefaultDrawUsecase {

	return &DefaultDrawUsecase{
		RoundRepo:         roundRepo,
		ParticipationRepo: participationRepo,
		ProductRepo:       productRepo,
		Publisher:         publisher,
		AuditLogger:       auditLogger,
		Metrics:           lotteryMetrics,
		Cfg:               cfg,
	}
}

func (uc *DefaultDrawUsecase) recordDrawCompleted(productID string, seconds float64) {
	if uc.Metrics != nil {
		uc.Metrics.RecordDrawCompleted(productID, seconds)
	}
}

func (uc *DefaultDrawUsecase) recordDrawSkipped(reason string) {
	if uc.Metrics != nil {
		uc.Metrics.RecordDrawSkipped(reason)
	}
}

func (uc *DefaultDrawUsecase) recordDrawFailure(reason string) {
	if uc.Metrics != nil {
		uc.Metrics.RecordDrawFailure(reason)
	}
}

func (uc *DefaultDrawUsecase) audit(ctx context.Context, event logger.DrawAuditEvent) {
	if uc.AuditLogger == nil {
		return
	}
	// Audit rows ride outside the settlement transaction; a write failure
	// must never undo or block a draw.
	_ = uc.AuditLogger.LogDrawEvent(ctx, event)
}
