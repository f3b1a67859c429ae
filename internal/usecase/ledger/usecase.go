// Package ledger is the optimistic concurrency controller: every mutation of
// a contended row (balance, share counter, order status) goes through here,
// version-guarded, whole-unit atomic, and conflict-returning rather than
// blocking. Conflicts are never retried internally; callers own the retry
// policy.
package ledger

import (
	"github.com/duobao-games/lottery-draw-service/internal/domain"
	"github.com/duobao-games/lottery-draw-service/internal/infrastructure/metrics"
)

type LedgerUsecase interface {
	Participate(input *ParticipateInput) (*ParticipateOutput, error)
	AdjustBalance(userID string, amount float64, direction domain.BalanceDirection) (*domain.Snapshot, error)
	AdjustSoldShares(roundID string, delta int64) (*domain.Snapshot, error)
	TransitionOrderStatus(orderID string, newStatus domain.OrderStatus) (*domain.Snapshot, error)
	Batch(ops []BatchOp) []BatchResult
	Inspect(ref domain.EntityRef) (*domain.Snapshot, error)

	AttachDrawTrigger(trigger domain.DrawTrigger)
}

type DefaultLedgerUsecase struct {
	UserRepo    domain.UserRepository
	RoundRepo   domain.RoundRepository
	ProductRepo domain.ProductRepository
	OrderRepo   domain.OrderRepository
	LedgerRepo  domain.LedgerRepository
	Metrics     *metrics.LotteryMetrics

	drawTrigger domain.DrawTrigger
}

func NewDefaultLedgerUsecase(
	userRepo domain.UserRepository,
	roundRepo domain.RoundRepository,
	productRepo domain.ProductRepository,
	orderRepo domain.OrderRepository,
	ledgerRepo domain.LedgerRepository,
	lotteryMetrics *metrics.LotteryMetrics) *DefaultLedgerUsecase {

	return &DefaultLedgerUsecase{
		UserRepo:    userRepo,
		RoundRepo:   roundRepo,
		ProductRepo: productRepo,
		OrderRepo:   orderRepo,
		LedgerRepo:  ledgerRepo,
		Metrics:     lotteryMetrics,
	}
}

// AttachDrawTrigger wires the orchestrator in after construction; the two
// usecases reference each other only through this narrow port.
func (uc *DefaultLedgerUsecase) AttachDrawTrigger(trigger domain.DrawTrigger) {
	uc.drawTrigger = trigger
}

func (uc *DefaultLedgerUsecase) recordParticipation(productID string, shares int64) {
	if uc.Metrics != nil {
		uc.Metrics.RecordParticipation(productID, shares)
	}
}

func (uc *DefaultLedgerUsecase) recordParticipationError(reason string) {
	if uc.Metrics != nil {
		uc.Metrics.RecordParticipationError(reason)
	}
}

func (uc *DefaultLedgerUsecase) recordVersionConflict(entity string) {
	if uc.Metrics != nil {
		uc.Metrics.RecordVersionConflict(entity)
	}
}
