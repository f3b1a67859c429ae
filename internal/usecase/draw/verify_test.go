package draw

import (
	"context"
	"errors"
	"testing"

	"github.com/duobao-games/lottery-draw-service/internal/domain"
)

func TestVerifyDraw(t *testing.T) {
	t.Run("Test settled round verifies", func(t *testing.T) {
		store := newFakeDrawStore()
		seedFullRound(store, "round-1", 10)
		uc := newTestDrawUsecase(store, newFakePublisher(), &fakeAuditLogger{})

		if _, err := uc.TriggerDraw(context.Background(), "round-1"); err != nil {
			t.Fatalf("Expected no error, but got %v", err)
		}

		result, err := uc.VerifyDraw(context.Background(), "round-1")
		if err != nil {
			t.Fatalf("Expected no error, but got %v", err)
		}
		if !result.Valid {
			t.Fatalf("Expected valid result, but got diagnostics %+v", result.Diagnostics)
		}
	})

	t.Run("Test tampered participation detected", func(t *testing.T) {
		store := newFakeDrawStore()
		seedFullRound(store, "round-1", 10)
		uc := newTestDrawUsecase(store, newFakePublisher(), &fakeAuditLogger{})

		if _, err := uc.TriggerDraw(context.Background(), "round-1"); err != nil {
			t.Fatalf("Expected no error, but got %v", err)
		}
		store.participations["round-1"][0].Cost += 1

		result, err := uc.VerifyDraw(context.Background(), "round-1")
		if err != nil {
			t.Fatalf("Expected no error, but got %v", err)
		}
		if result.Valid {
			t.Fatal("Expected invalid result after tampering")
		}
	})

	t.Run("Test proof detached from round detected", func(t *testing.T) {
		store := newFakeDrawStore()
		seedFullRound(store, "round-1", 10)
		uc := newTestDrawUsecase(store, newFakePublisher(), &fakeAuditLogger{})

		if _, err := uc.TriggerDraw(context.Background(), "round-1"); err != nil {
			t.Fatalf("Expected no error, but got %v", err)
		}
		forged := *store.rounds["round-1"].WinningNumber + 1
		store.rounds["round-1"].WinningNumber = &forged

		result, err := uc.VerifyDraw(context.Background(), "round-1")
		if err != nil {
			t.Fatalf("Expected no error, but got %v", err)
		}
		if result.Valid {
			t.Fatal("Expected invalid result")
		}
		found := false
		for _, d := range result.Diagnostics {
			if d.Field == "round_winning_number" {
				found = true
			}
		}
		if !found {
			t.Errorf("Expected round_winning_number diagnostic, but got %+v", result.Diagnostics)
		}
	})

	t.Run("Test uncompleted round rejected", func(t *testing.T) {
		store := newFakeDrawStore()
		seedFullRound(store, "round-1", 10)
		uc := newTestDrawUsecase(store, newFakePublisher(), &fakeAuditLogger{})

		if _, err := uc.VerifyDraw(context.Background(), "round-1"); err == nil {
			t.Fatal("Expected an error for a full round, but got nil")
		}
	})

	t.Run("Test completed round without proof rejected", func(t *testing.T) {
		store := newFakeDrawStore()
		seedFullRound(store, "round-1", 10)
		store.rounds["round-1"].Status = domain.RoundStatusCompleted
		uc := newTestDrawUsecase(store, newFakePublisher(), &fakeAuditLogger{})

		_, err := uc.VerifyDraw(context.Background(), "round-1")
		if !errors.Is(err, domain.ErrMissingDrawProof) {
			t.Fatalf("Expected ErrMissingDrawProof, but got %v", err)
		}
	})
}
