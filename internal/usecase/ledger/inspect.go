package ledger

import (
	"fmt"

	"github.com/duobao-games/lottery-draw-service/internal/domain"
)

// Inspect returns the current value and version of a contended row without
// touching it. Tooling reads the version here before building a guarded
// mutation.
func (uc *DefaultLedgerUsecase) Inspect(ref domain.EntityRef) (*domain.Snapshot, error) {
	switch ref.Kind {
	case domain.EntityUser:
		user, err := uc.UserRepo.GetUserByID(ref.ID)
		if err != nil {
			return nil, err
		}
		return &domain.Snapshot{
			Kind:    domain.EntityUser,
			ID:      user.ID,
			Version: user.BalanceVersion,
			Balance: user.Balance,
		}, nil
	case domain.EntityRound:
		round, err := uc.RoundRepo.GetRoundByID(ref.ID)
		if err != nil {
			return nil, err
		}
		return &domain.Snapshot{
			Kind:        domain.EntityRound,
			ID:          round.ID,
			Version:     round.SoldSharesVersion,
			SoldShares:  round.SoldShares,
			TotalShares: round.TotalShares,
			Status:      string(round.Status),
		}, nil
	case domain.EntityOrder:
		order, err := uc.OrderRepo.GetOrderByID(ref.ID)
		if err != nil {
			return nil, err
		}
		return &domain.Snapshot{
			Kind:    domain.EntityOrder,
			ID:      order.ID,
			Version: order.Version,
			Status:  string(order.Status),
		}, nil
	default:
		return nil, fmt.Errorf("unknown entity kind %q", ref.Kind)
	}
}
