package ledger

import (
	"fmt"

	"github.com/duobao-games/lottery-draw-service/internal/domain"
)

type BatchOpKind string

const (
	BatchOpAdjustBalance BatchOpKind = "adjust_balance"
	BatchOpAdjustShares  BatchOpKind = "adjust_shares"
	BatchOpOrderStatus   BatchOpKind = "order_status"
	BatchOpParticipate   BatchOpKind = "participate"
)

type BatchOp struct {
	Kind BatchOpKind

	UserID    string
	Amount    float64
	Direction domain.BalanceDirection

	RoundID    string
	ShareDelta int64

	OrderID     string
	OrderStatus domain.OrderStatus

	Participate *ParticipateInput
}

type BatchResult struct {
	Index    int
	Kind     BatchOpKind
	Snapshot *domain.Snapshot
	Output   *ParticipateOutput
	Err      error
}

// Batch applies each operation independently and in order. There is no
// cross-operation atomicity: a failed op records its error and the batch
// moves on, so one stale version never poisons the rest.
func (uc *DefaultLedgerUsecase) Batch(ops []BatchOp) []BatchResult {
	results := make([]BatchResult, 0, len(ops))
	for i, op := range ops {
		res := BatchResult{Index: i, Kind: op.Kind}
		switch op.Kind {
		case BatchOpAdjustBalance:
			res.Snapshot, res.Err = uc.AdjustBalance(op.UserID, op.Amount, op.Direction)
		case BatchOpAdjustShares:
			res.Snapshot, res.Err = uc.AdjustSoldShares(op.RoundID, op.ShareDelta)
		case BatchOpOrderStatus:
			res.Snapshot, res.Err = uc.TransitionOrderStatus(op.OrderID, op.OrderStatus)
		case BatchOpParticipate:
			res.Output, res.Err = uc.Participate(op.Participate)
		default:
			res.Err = fmt.Errorf("unknown batch operation kind %q", op.Kind)
		}
		results = append(results, res)
	}
	return results
}
