package draw

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/duobao-games/lottery-draw-service/internal/domain"
	"github.com/duobao-games/lottery-draw-service/internal/infrastructure/kafka"
	"github.com/duobao-games/lottery-draw-service/internal/infrastructure/logger"
)

// fakeDrawStore implements the round, participation and product ports. The
// settlement path mirrors the SQL unit: the status flip is checked and
// applied under one lock, so concurrent settlements race exactly like they
// do against the real guard.
type fakeDrawStore struct {
	mu             sync.Mutex
	rounds         map[string]*domain.Round
	products       map[string]*domain.Product
	participations map[string][]*domain.Participation
	settlements    []*domain.DrawSettlement
	stuck          []*domain.Round
}

func newFakeDrawStore() *fakeDrawStore {
	return &fakeDrawStore{
		rounds:         make(map[string]*domain.Round),
		products:       make(map[string]*domain.Product),
		participations: make(map[string][]*domain.Participation),
	}
}

func (s *fakeDrawStore) GetRoundByID(roundID string) (*domain.Round, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	round, ok := s.rounds[roundID]
	if !ok {
		return nil, fmt.Errorf("round %s not found", roundID)
	}
	copied := *round
	return &copied, nil
}

func (s *fakeDrawStore) UpdateSoldSharesGuarded(roundID string, newSold int64, newStatus domain.RoundStatus, expectedVersion int64) error {
	return fmt.Errorf("not used by draw tests")
}

func (s *fakeDrawStore) FindFullRounds(limit int) ([]*domain.Round, error) {
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

func (s *fakeDrawStore) FindStuckFullRounds(olderThan time.Time) ([]*domain.Round, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stuck, nil
}

func (s *fakeDrawStore) SettleDraw(settlement *domain.DrawSettlement) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	round, ok := s.rounds[settlement.RoundID]
	if !ok {
		return fmt.Errorf("round %s not found", settlement.RoundID)
	}
	if round.Status != domain.RoundStatusFull {
		return domain.ErrRoundAlreadyDrawn
	}

	round.Status = domain.RoundStatusCompleted
	round.WinningNumber = &settlement.WinningNumber
	round.WinnerUserID = &settlement.WinnerUserID
	round.DrawTime = &settlement.DrawTime
	round.DrawProof = settlement.Proof

	for _, p := range s.participations[settlement.RoundID] {
		if p.ID == settlement.WinnerParticipationID {
			p.IsWinner = true
		}
	}

	s.settlements = append(s.settlements, settlement)
	return nil
}

func (s *fakeDrawStore) GetParticipationByID(participationID string) (*domain.Participation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, parts := range s.participations {
		for _, p := range parts {
			if p.ID == participationID {
				copied := *p
				return &copied, nil
			}
		}
	}
	return nil, fmt.Errorf("participation %s not found", participationID)
}

func (s *fakeDrawStore) GetParticipationsByRoundID(roundID string) ([]*domain.Participation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	parts := make([]*domain.Participation, len(s.participations[roundID]))
	for i, p := range s.participations[roundID] {
		copied := *p
		parts[i] = &copied
	}
	return parts, nil
}

func (s *fakeDrawStore) GetProductByID(productID string) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	product, ok := s.products[productID]
	if !ok {
		return nil, fmt.Errorf("product %s not found", productID)
	}
	copied := *product
	return &copied, nil
}

type fakePublisher struct {
	mu     sync.Mutex
	events []kafka.DrawEvent
	sent   chan kafka.DrawEvent
}

func newFakePublisher() *fakePublisher {
	return &fakePublisher{sent: make(chan kafka.DrawEvent, 16)}
}

func (p *fakePublisher) PublishDraw(event kafka.DrawEvent) error {
	p.mu.Lock()
	p.events = append(p.events, event)
	p.mu.Unlock()
	p.sent <- event
	return nil
}

type fakeAuditLogger struct {
	mu     sync.Mutex
	events []logger.DrawAuditEvent
}

func (l *fakeAuditLogger) LogDrawEvent(ctx context.Context, event logger.DrawAuditEvent) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, event)
	return nil
}

func (l *fakeAuditLogger) eventTypes() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	types := make([]string, len(l.events))
	for i, e := range l.events {
		types[i] = e.EventType
	}
	return types
}
