package mappers

import (
	"github.com/duobao-games/lottery-draw-service/internal/domain"
	"github.com/duobao-games/lottery-draw-service/internal/infrastructure/postgres/models"
)

func ToDomainProduct(model *models.ProductModel) *domain.Product {
	return &domain.Product{
		ID:          model.ID,
		Name:        model.Name,
		SharePrice:  model.SharePrice,
		MarketPrice: model.MarketPrice,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}
