package domain

type OrderRepository interface {
	GetOrderByID(orderID string) (*Order, error)
	CreateOrder(order *Order) error
	// UpdateStatusGuarded writes newStatus only if version still equals
	// expectedVersion. Returns ErrVersionConflict on a stale version.
	UpdateStatusGuarded(orderID string, newStatus OrderStatus, expectedVersion int64) error
}
