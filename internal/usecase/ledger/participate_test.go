package ledger

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/duobao-games/lottery-draw-service/internal/domain"
	"github.com/duobao-games/lottery-draw-service/internal/retry"
	"github.com/duobao-games/lottery-draw-service/internal/vrf"
)

func seededStore() *fakeStore {
	store := newFakeStore()
	store.users["u-alice"] = &domain.User{ID: "u-alice", Balance: 100, BalanceVersion: 1}
	store.users["u-bob"] = &domain.User{ID: "u-bob", Balance: 100, BalanceVersion: 1}
	store.products["prod-1"] = &domain.Product{ID: "prod-1", Name: "Mechanical Keyboard", SharePrice: 1, MarketPrice: 120}
	store.rounds["round-1"] = &domain.Round{
		ID:                "round-1",
		ProductID:         "prod-1",
		RoundNumber:       7,
		TotalShares:       10,
		SoldShares:        0,
		SoldSharesVersion: 1,
		Status:            domain.RoundStatusActive,
	}
	return store
}

func newTestUsecase(store *fakeStore) *DefaultLedgerUsecase {
	return NewDefaultLedgerUsecase(store, store, store, store, store, nil)
}

func TestParticipate(t *testing.T) {
	t.Run("Test successful purchase", func(t *testing.T) {
		store := seededStore()
		uc := newTestUsecase(store)

		output, err := uc.Participate(&ParticipateInput{
			UserID:      "u-alice",
			RoundID:     "round-1",
			ProductID:   "prod-1",
			SharesCount: 3,
		})
		if err != nil {
			t.Fatalf("Expected no error, but got %v", err)
		}

		if output.Cost != 3 {
			t.Errorf("Expected cost 3, but got %v", output.Cost)
		}
		if output.NewBalance != 97 {
			t.Errorf("Expected balance 97, but got %v", output.NewBalance)
		}
		if output.SoldShares != 3 {
			t.Errorf("Expected 3 sold shares, but got %d", output.SoldShares)
		}
		if output.RoundFull {
			t.Error("Expected round to stay open")
		}

		want := []int64{vrf.TicketNumberBase, vrf.TicketNumberBase + 1, vrf.TicketNumberBase + 2}
		for i, n := range output.Numbers {
			if n != want[i] {
				t.Errorf("Expected number %d at index %d, but got %d", want[i], i, n)
			}
		}

		if store.users["u-alice"].Balance != 97 {
			t.Errorf("Expected stored balance 97, but got %v", store.users["u-alice"].Balance)
		}
		if store.users["u-alice"].BalanceVersion != 2 {
			t.Errorf("Expected balance version 2, but got %d", store.users["u-alice"].BalanceVersion)
		}
		if len(store.transactions) != 1 {
			t.Fatalf("Expected 1 ledger entry, but got %d", len(store.transactions))
		}
		entry := store.transactions[0]
		if entry.Type != domain.TxLotteryParticipation || entry.Amount != 3 || entry.BalanceAfter != 97 {
			t.Errorf("Unexpected ledger entry: %+v", entry)
		}
		if len(store.participations) != 1 {
			t.Errorf("Expected 1 stored participation, but got %d", len(store.participations))
		}
	})

	t.Run("Test number blocks are contiguous across purchases", func(t *testing.T) {
		store := seededStore()
		uc := newTestUsecase(store)

		first, err := uc.Participate(&ParticipateInput{UserID: "u-alice", RoundID: "round-1", ProductID: "prod-1", SharesCount: 4})
		if err != nil {
			t.Fatalf("Expected no error, but got %v", err)
		}
		second, err := uc.Participate(&ParticipateInput{UserID: "u-bob", RoundID: "round-1", ProductID: "prod-1", SharesCount: 2})
		if err != nil {
			t.Fatalf("Expected no error, but got %v", err)
		}

		if first.Numbers[3]+1 != second.Numbers[0] {
			t.Errorf("Expected second block to continue at %d, but got %d", first.Numbers[3]+1, second.Numbers[0])
		}
	})

	t.Run("Test filling the round triggers a draw", func(t *testing.T) {
		store := seededStore()
		uc := newTestUsecase(store)
		trigger := newFakeTrigger()
		uc.AttachDrawTrigger(trigger)

		output, err := uc.Participate(&ParticipateInput{UserID: "u-alice", RoundID: "round-1", ProductID: "prod-1", SharesCount: 10})
		if err != nil {
			t.Fatalf("Expected no error, but got %v", err)
		}
		if !output.RoundFull || output.RoundStatus != domain.RoundStatusFull {
			t.Errorf("Expected full round, but got status %s", output.RoundStatus)
		}

		select {
		case roundID := <-trigger.fired:
			if roundID != "round-1" {
				t.Errorf("Expected trigger for round-1, but got %s", roundID)
			}
		case <-time.After(time.Second):
			t.Fatal("Expected draw trigger to fire")
		}
	})

	t.Run("Test insufficient balance", func(t *testing.T) {
		store := seededStore()
		store.users["u-alice"].Balance = 2
		uc := newTestUsecase(store)

		_, err := uc.Participate(&ParticipateInput{UserID: "u-alice", RoundID: "round-1", ProductID: "prod-1", SharesCount: 3})
		if !errors.Is(err, domain.ErrInsufficientBalance) {
			t.Fatalf("Expected ErrInsufficientBalance, but got %v", err)
		}
		if store.users["u-alice"].Balance != 2 || len(store.participations) != 0 {
			t.Error("Expected no state change after rejection")
		}
	})

	t.Run("Test insufficient shares", func(t *testing.T) {
		store := seededStore()
		store.rounds["round-1"].SoldShares = 9
		uc := newTestUsecase(store)

		_, err := uc.Participate(&ParticipateInput{UserID: "u-alice", RoundID: "round-1", ProductID: "prod-1", SharesCount: 2})
		if !errors.Is(err, domain.ErrInsufficientShares) {
			t.Fatalf("Expected ErrInsufficientShares, but got %v", err)
		}
	})

	t.Run("Test round not active", func(t *testing.T) {
		store := seededStore()
		store.rounds["round-1"].Status = domain.RoundStatusFull
		store.rounds["round-1"].SoldShares = 10
		uc := newTestUsecase(store)

		_, err := uc.Participate(&ParticipateInput{UserID: "u-alice", RoundID: "round-1", ProductID: "prod-1", SharesCount: 1})
		if !errors.Is(err, domain.ErrRoundNotActive) {
			t.Fatalf("Expected ErrRoundNotActive, but got %v", err)
		}
	})

	t.Run("Test explicit numbers must match share count", func(t *testing.T) {
		store := seededStore()
		uc := newTestUsecase(store)

		_, err := uc.Participate(&ParticipateInput{
			UserID:      "u-alice",
			RoundID:     "round-1",
			ProductID:   "prod-1",
			SharesCount: 3,
			Numbers:     []int64{vrf.TicketNumberBase},
		})
		if !errors.Is(err, domain.ErrInvalidNumbers) {
			t.Fatalf("Expected ErrInvalidNumbers, but got %v", err)
		}
	})

	t.Run("Test explicit numbers matching the watermark accepted", func(t *testing.T) {
		store := seededStore()
		store.rounds["round-1"].SoldShares = 4
		uc := newTestUsecase(store)

		output, err := uc.Participate(&ParticipateInput{
			UserID:      "u-alice",
			RoundID:     "round-1",
			ProductID:   "prod-1",
			SharesCount: 2,
			Numbers:     []int64{vrf.TicketNumberBase + 4, vrf.TicketNumberBase + 5},
		})
		if err != nil {
			t.Fatalf("Expected no error, but got %v", err)
		}
		if output.SoldShares != 6 {
			t.Errorf("Expected 6 sold shares, but got %d", output.SoldShares)
		}
	})

	t.Run("Test explicit numbers outside the watermark block rejected", func(t *testing.T) {
		store := seededStore()
		store.rounds["round-1"].SoldShares = 4
		uc := newTestUsecase(store)

		// Already-issued numbers and numbers past the block are both refused;
		// honoring either would break disjointness of the ticket space.
		for _, numbers := range [][]int64{
			{vrf.TicketNumberBase, vrf.TicketNumberBase + 1},
			{vrf.TicketNumberBase + 5, vrf.TicketNumberBase + 6},
			{vrf.TicketNumberBase + 4, vrf.TicketNumberBase + 4},
		} {
			_, err := uc.Participate(&ParticipateInput{
				UserID:      "u-alice",
				RoundID:     "round-1",
				ProductID:   "prod-1",
				SharesCount: 2,
				Numbers:     numbers,
			})
			if !errors.Is(err, domain.ErrInvalidNumbers) {
				t.Errorf("Expected ErrInvalidNumbers for %v, but got %v", numbers, err)
			}
		}
		if len(store.participations) != 0 || store.users["u-alice"].Balance != 100 {
			t.Error("Expected no state change after rejection")
		}
	})

	t.Run("Test competing write surfaces as version conflict", func(t *testing.T) {
		store := seededStore()
		uc := newTestUsecase(store)

		interfered := false
		store.beforeParticipate = func() {
			if interfered {
				return
			}
			interfered = true
			store.mu.Lock()
			store.users["u-alice"].BalanceVersion++
			store.mu.Unlock()
		}

		_, err := uc.Participate(&ParticipateInput{UserID: "u-alice", RoundID: "round-1", ProductID: "prod-1", SharesCount: 1})
		if !errors.Is(err, domain.ErrVersionConflict) {
			t.Fatalf("Expected ErrVersionConflict, but got %v", err)
		}
		if len(store.participations) != 0 {
			t.Error("Expected no participation after conflict")
		}
	})
}

// Five buyers race for the last five shares of a 100-share round, two shares
// each, every call wrapped in the caller-side retry policy. Exactly two can
// win; the rest must fail with the typed shares error, never a stale final
// count.
func TestParticipateConcurrencyBound(t *testing.T) {
	store := seededStore()
	store.rounds["round-1"].TotalShares = 100
	store.rounds["round-1"].SoldShares = 95
	buyers := []string{"b-1", "b-2", "b-3", "b-4", "b-5"}
	for _, id := range buyers {
		store.users[id] = &domain.User{ID: id, Balance: 50, BalanceVersion: 1}
	}
	uc := newTestUsecase(store)
	policy := retry.New(20, time.Millisecond, 3*time.Millisecond)

	var wg sync.WaitGroup
	results := make(chan error, len(buyers))
	for _, id := range buyers {
		wg.Add(1)
		go func(userID string) {
			defer wg.Done()
			results <- policy.Do(context.Background(), func() error {
				_, err := uc.Participate(&ParticipateInput{
					UserID:      userID,
					RoundID:     "round-1",
					ProductID:   "prod-1",
					SharesCount: 2,
				})
				return err
			})
		}(id)
	}
	wg.Wait()
	close(results)

	succeeded, rejected := 0, 0
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, domain.ErrInsufficientShares):
			rejected++
		default:
			t.Errorf("Unexpected error: %v", err)
		}
	}

	if succeeded != 2 {
		t.Errorf("Expected 2 successful buyers, but got %d", succeeded)
	}
	if rejected != 3 {
		t.Errorf("Expected 3 rejected buyers, but got %d", rejected)
	}
	if store.rounds["round-1"].SoldShares != 99 {
		t.Errorf("Expected 99 sold shares, but got %d", store.rounds["round-1"].SoldShares)
	}
}
