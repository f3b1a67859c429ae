package repository

import (
	"fmt"
	"time"

	"github.com/duobao-games/lottery-draw-service/internal/domain"
	"github.com/duobao-games/lottery-draw-service/internal/infrastructure/postgres/mappers"
	"github.com/duobao-games/lottery-draw-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultRoundRepository struct {
	db *gorm.DB
}

func NewDefaultRoundRepository(db *gorm.DB) *DefaultRoundRepository {
	return &DefaultRoundRepository{db: db}
}

func (r *DefaultRoundRepository) GetRoundByID(roundID string) (*domain.Round, error) {
	var model models.RoundModel
	if err := r.db.First(&model, "id = ?", roundID).Error; err != nil {
		return nil, err
	}
	return mappers.ToDomainRound(&model)
}

// UpdateSoldSharesGuarded compares the share version and the status in the
// same predicate. SettleDraw flips the status without touching the share
// version, so the version check alone would let a stale adjustment reopen a
// settled round.
func (r *DefaultRoundRepository) UpdateSoldSharesGuarded(roundID string, newSold int64, newStatus domain.RoundStatus, expectedVersion int64) error {
	res := r.db.Model(&models.RoundModel{}).
		Where("id = ? AND sold_shares_version = ? AND status IN ?",
			roundID, expectedVersion,
			[]domain.RoundStatus{domain.RoundStatusActive, domain.RoundStatusFull}).
		Updates(map[string]interface{}{
			"sold_shares":         newSold,
			"status":              newStatus,
			"sold_shares_version": gorm.Expr("sold_shares_version + 1"),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrVersionConflict
	}
	return nil
}

func (r *DefaultRoundRepository) FindFullRounds(limit int) ([]*domain.Round, error) {
	var roundModels []models.RoundModel
	if err := r.db.
		Where("status = ?", domain.RoundStatusFull).
		Order("round_number ASC").
		Limit(limit).
		Find(&roundModels).Error; err != nil {
		return nil, err
	}
	return toDomainRounds(roundModels)
}

func (r *DefaultRoundRepository) FindStuckFullRounds(olderThan time.Time) ([]*domain.Round, error) {
	var roundModels []models.RoundModel
	if err := r.db.
		Where("status = ?", domain.RoundStatusFull).
		Where("updated_at < ?", olderThan).
		Find(&roundModels).Error; err != nil {
		return nil, err
	}
	return toDomainRounds(roundModels)
}

// SettleDraw commits the whole settlement unit. The status predicate on the
// round update is the idempotency guard: a second settlement attempt sees
// zero affected rows and backs out with ErrRoundAlreadyDrawn.
func (r *DefaultRoundRepository) SettleDraw(s *domain.DrawSettlement) error {
	proofJSON, err := mappers.MarshalDrawProof(s.Proof)
	if err != nil {
		return err
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.RoundModel{}).
			Where("id = ? AND status = ?", s.RoundID, domain.RoundStatusFull).
			Updates(map[string]interface{}{
				"status":         domain.RoundStatusCompleted,
				"winning_number": s.WinningNumber,
				"winner_user_id": s.WinnerUserID,
				"draw_time":      s.DrawTime,
				"draw_proof":     proofJSON,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrRoundAlreadyDrawn
		}

		winnerRes := tx.Model(&models.ParticipationModel{}).
			Where("id = ?", s.WinnerParticipationID).
			Update("is_winner", true)
		if winnerRes.Error != nil {
			return winnerRes.Error
		}
		if winnerRes.RowsAffected == 0 {
			return fmt.Errorf("winning participation %s not found", s.WinnerParticipationID)
		}

		if err := tx.Create(mappers.ToGORMOrder(s.Order)).Error; err != nil {
			return err
		}
		if err := tx.Create(mappers.ToGORMTransaction(s.WinTransaction)).Error; err != nil {
			return err
		}
		return nil
	})
}

func toDomainRounds(roundModels []models.RoundModel) ([]*domain.Round, error) {
	rounds := make([]*domain.Round, len(roundModels))
	for i := range roundModels {
		round, err := mappers.ToDomainRound(&roundModels[i])
		if err != nil {
			return nil, err
		}
		rounds[i] = round
	}
	return rounds, nil
}
