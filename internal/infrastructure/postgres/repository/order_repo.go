package repository

import (
	"github.com/duobao-games/lottery-draw-service/internal/domain"
	"github.com/duobao-games/lottery-draw-service/internal/infrastructure/postgres/mappers"
	"github.com/duobao-games/lottery-draw-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultOrderRepository struct {
	db *gorm.DB
}

func NewDefaultOrderRepository(db *gorm.DB) *DefaultOrderRepository {
	return &DefaultOrderRepository{db: db}
}

func (r *DefaultOrderRepository) GetOrderByID(orderID string) (*domain.Order, error) {
	var model models.OrderModel
	if err := r.db.First(&model, "id = ?", orderID).Error; err != nil {
		return nil, err
	}
	return mappers.ToDomainOrder(&model), nil
}

func (r *DefaultOrderRepository) CreateOrder(order *domain.Order) error {
	return r.db.Create(mappers.ToGORMOrder(order)).Error
}

func (r *DefaultOrderRepository) UpdateStatusGuarded(orderID string, newStatus domain.OrderStatus, expectedVersion int64) error {
	res := r.db.Model(&models.OrderModel{}).
		Where("id = ? AND version = ?", orderID, expectedVersion).
		Updates(map[string]interface{}{
			"status":  newStatus,
			"version": gorm.Expr("version + 1"),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrVersionConflict
	}
	return nil
}
