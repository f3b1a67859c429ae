package ledger

import (
	"errors"
	"fmt"

	"github.com/duobao-games/lottery-draw-service/internal/domain"
)

// TransitionOrderStatus moves an order to newStatus under the version guard.
// Terminal orders (completed, cancelled) reject every further transition.
func (uc *DefaultLedgerUsecase) TransitionOrderStatus(orderID string, newStatus domain.OrderStatus) (*domain.Snapshot, error) {
	order, err := uc.OrderRepo.GetOrderByID(orderID)
	if err != nil {
		return nil, fmt.Errorf("loading order %s: %w", orderID, err)
	}

	if order.Status.IsTerminal() {
		return nil, fmt.Errorf("order %s is %s: %w", order.ID, order.Status, domain.ErrOrderTerminal)
	}
	if order.Status == newStatus {
		return nil, fmt.Errorf("order %s already has status %s", order.ID, newStatus)
	}

	if err := uc.OrderRepo.UpdateStatusGuarded(order.ID, newStatus, order.Version); err != nil {
		if errors.Is(err, domain.ErrVersionConflict) {
			uc.recordVersionConflict("order")
		}
		return nil, err
	}

	return &domain.Snapshot{
		Kind:    domain.EntityOrder,
		ID:      order.ID,
		Version: order.Version + 1,
		Status:  string(newStatus),
	}, nil
}
