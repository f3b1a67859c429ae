package repository

import (
	"github.com/duobao-games/lottery-draw-service/internal/domain"
	"github.com/duobao-games/lottery-draw-service/internal/infrastructure/postgres/mappers"
	"github.com/duobao-games/lottery-draw-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultUserRepository struct {
	db *gorm.DB
}

func NewDefaultUserRepository(db *gorm.DB) *DefaultUserRepository {
	return &DefaultUserRepository{db: db}
}

func (r *DefaultUserRepository) GetUserByID(userID string) (*domain.User, error) {
	var model models.UserModel
	if err := r.db.First(&model, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	return mappers.ToDomainUser(&model), nil
}

func (r *DefaultUserRepository) UpdateBalanceGuarded(userID string, newBalance float64, expectedVersion int64, entry *domain.Transaction) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.UserModel{}).
			Where("id = ? AND balance_version = ?", userID, expectedVersion).
			Updates(map[string]interface{}{
				"balance":         newBalance,
				"balance_version": gorm.Expr("balance_version + 1"),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrVersionConflict
		}

		if entry != nil {
			if err := tx.Create(mappers.ToGORMTransaction(entry)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
