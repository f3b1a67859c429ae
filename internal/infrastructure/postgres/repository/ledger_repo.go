package repository

import (
	"github.com/duobao-games/lottery-draw-service/internal/domain"
	"github.com/duobao-games/lottery-draw-service/internal/infrastructure/postgres/mappers"
	"github.com/duobao-games/lottery-draw-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultLedgerRepository struct {
	db *gorm.DB
}

func NewDefaultLedgerRepository(db *gorm.DB) *DefaultLedgerRepository {
	return &DefaultLedgerRepository{db: db}
}

// Participate applies one purchase as a single transaction. Both version
// guards must hold; a stale balance or share counter rolls the whole unit
// back with ErrVersionConflict and zero observable effect.
func (r *DefaultLedgerRepository) Participate(unit *domain.ParticipateUnit) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		balRes := tx.Model(&models.UserModel{}).
			Where("id = ? AND balance_version = ?", unit.UserID, unit.ExpectedBalanceVersion).
			Updates(map[string]interface{}{
				"balance":         unit.NewBalance,
				"balance_version": gorm.Expr("balance_version + 1"),
			})
		if balRes.Error != nil {
			return balRes.Error
		}
		if balRes.RowsAffected == 0 {
			return domain.ErrVersionConflict
		}

		// The status predicate keeps a racing cancel/complete from taking
		// more purchases even with a current share version.
		shareRes := tx.Model(&models.RoundModel{}).
			Where("id = ? AND sold_shares_version = ? AND status = ?",
				unit.RoundID, unit.ExpectedSharesVersion, domain.RoundStatusActive).
			Updates(map[string]interface{}{
				"sold_shares":         unit.NewSoldShares,
				"status":              unit.NewRoundStatus,
				"sold_shares_version": gorm.Expr("sold_shares_version + 1"),
			})
		if shareRes.Error != nil {
			return shareRes.Error
		}
		if shareRes.RowsAffected == 0 {
			return domain.ErrVersionConflict
		}

		if err := tx.Create(mappers.ToGORMParticipation(unit.Participation)).Error; err != nil {
			return err
		}
		if err := tx.Create(mappers.ToGORMTransaction(unit.Entry)).Error; err != nil {
			return err
		}
		return nil
	})
}
