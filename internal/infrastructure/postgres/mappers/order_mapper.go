package mappers

import (
	"github.com/duobao-games/lottery-draw-service/internal/domain"
	"github.com/duobao-games/lottery-draw-service/internal/infrastructure/postgres/models"
)

func ToGORMOrder(order *domain.Order) *models.OrderModel {
	return &models.OrderModel{
		ID:          order.ID,
		OrderNumber: order.OrderNumber,
		UserID:      order.UserID,
		RoundID:     order.RoundID,
		ProductID:   order.ProductID,
		Type:        order.Type,
		TotalAmount: order.TotalAmount,
		Status:      order.Status,
		Version:     order.Version,
		Notes:       order.Notes,
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
	}
}

func ToDomainOrder(model *models.OrderModel) *domain.Order {
	return &domain.Order{
		ID:          model.ID,
		OrderNumber: model.OrderNumber,
		UserID:      model.UserID,
		RoundID:     model.RoundID,
		ProductID:   model.ProductID,
		Type:        model.Type,
		TotalAmount: model.TotalAmount,
		Status:      model.Status,
		Version:     model.Version,
		Notes:       model.Notes,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}
