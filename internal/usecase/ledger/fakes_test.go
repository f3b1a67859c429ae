package ledger

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/duobao-games/lottery-draw-service/internal/domain"
)

// fakeStore backs all repository ports with mutex-guarded maps. Guarded
// writes compare versions under the lock, exactly like the SQL predicates.
type fakeStore struct {
	mu             sync.Mutex
	users          map[string]*domain.User
	rounds         map[string]*domain.Round
	products       map[string]*domain.Product
	orders         map[string]*domain.Order
	participations map[string]*domain.Participation
	transactions   []*domain.Transaction

	// beforeParticipate and beforeShareUpdate run at the top of their guarded
	// write, outside the lock. Tests use them to interleave a competing write.
	beforeParticipate func()
	beforeShareUpdate func()
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:          make(map[string]*domain.User),
		rounds:         make(map[string]*domain.Round),
		products:       make(map[string]*domain.Product),
		orders:         make(map[string]*domain.Order),
		participations: make(map[string]*domain.Participation),
	}
}

func (s *fakeStore) GetUserByID(userID string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[userID]
	if !ok {
		return nil, fmt.Errorf("user %s not found", userID)
	}
	copied := *user
	return &copied, nil
}

func (s *fakeStore) UpdateBalanceGuarded(userID string, newBalance float64, expectedVersion int64, entry *domain.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[userID]
	if !ok {
		return fmt.Errorf("user %s not found", userID)
	}
	if user.BalanceVersion != expectedVersion {
		return domain.ErrVersionConflict
	}
	user.Balance = newBalance
	user.BalanceVersion++
	s.transactions = append(s.transactions, entry)
	return nil
}

func (s *fakeStore) GetRoundByID(roundID string) (*domain.Round, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	round, ok := s.rounds[roundID]
	if !ok {
		return nil, fmt.Errorf("round %s not found", roundID)
	}
	copied := *round
	return &copied, nil
}

func (s *fakeStore) UpdateSoldSharesGuarded(roundID string, newSold int64, newStatus domain.RoundStatus, expectedVersion int64) error {
	if s.beforeShareUpdate != nil {
		s.beforeShareUpdate()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	round, ok := s.rounds[roundID]
	if !ok {
		return fmt.Errorf("round %s not found", roundID)
	}
	if round.SoldSharesVersion != expectedVersion ||
		(round.Status != domain.RoundStatusActive && round.Status != domain.RoundStatusFull) {
		return domain.ErrVersionConflict
	}
	round.SoldShares = newSold
	round.Status = newStatus
	round.SoldSharesVersion++
	return nil
}

func (s *fakeStore) FindFullRounds(limit int) ([]*domain.Round, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var rounds []*domain.Round
	for _, r := range s.rounds {
		if r.Status == domain.RoundStatusFull && len(rounds) < limit {
			copied := *r
			rounds = append(rounds, &copied)
		}
	}
	return rounds, nil
}

func (s *fakeStore) FindStuckFullRounds(olderThan time.Time) ([]*domain.Round, error) {
	return nil, nil
}

func (s *fakeStore) SettleDraw(settlement *domain.DrawSettlement) error {
	return nil
}

func (s *fakeStore) GetProductByID(productID string) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	product, ok := s.products[productID]
	if !ok {
		return nil, fmt.Errorf("product %s not found", productID)
	}
	copied := *product
	return &copied, nil
}

func (s *fakeStore) GetOrderByID(orderID string) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[orderID]
	if !ok {
		return nil, fmt.Errorf("order %s not found", orderID)
	}
	copied := *order
	return &copied, nil
}

func (s *fakeStore) CreateOrder(order *domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *order
	s.orders[order.ID] = &copied
	return nil
}

func (s *fakeStore) UpdateStatusGuarded(orderID string, newStatus domain.OrderStatus, expectedVersion int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[orderID]
	if !ok {
		return fmt.Errorf("order %s not found", orderID)
	}
	if order.Version != expectedVersion {
		return domain.ErrVersionConflict
	}
	order.Status = newStatus
	order.Version++
	return nil
}

func (s *fakeStore) Participate(unit *domain.ParticipateUnit) error {
	if s.beforeParticipate != nil {
		s.beforeParticipate()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[unit.UserID]
	if !ok {
		return fmt.Errorf("user %s not found", unit.UserID)
	}
	round, ok := s.rounds[unit.RoundID]
	if !ok {
		return fmt.Errorf("round %s not found", unit.RoundID)
	}

	if user.BalanceVersion != unit.ExpectedBalanceVersion {
		return domain.ErrVersionConflict
	}
	if round.SoldSharesVersion != unit.ExpectedSharesVersion || round.Status != domain.RoundStatusActive {
		return domain.ErrVersionConflict
	}

	user.Balance = unit.NewBalance
	user.BalanceVersion++
	round.SoldShares = unit.NewSoldShares
	round.Status = unit.NewRoundStatus
	round.SoldSharesVersion++

	copied := *unit.Participation
	s.participations[copied.ID] = &copied
	s.transactions = append(s.transactions, unit.Entry)
	return nil
}

// fakeTrigger records draw trigger calls and signals each one.
type fakeTrigger struct {
	mu       sync.Mutex
	roundIDs []string
	fired    chan string
}

func newFakeTrigger() *fakeTrigger {
	return &fakeTrigger{fired: make(chan string, 16)}
}

func (f *fakeTrigger) TriggerDraw(ctx context.Context, roundID string) (*domain.DrawOutcome, error) {
	f.mu.Lock()
	f.roundIDs = append(f.roundIDs, roundID)
	f.mu.Unlock()
	f.fired <- roundID
	return &domain.DrawOutcome{RoundID: roundID}, nil
}
