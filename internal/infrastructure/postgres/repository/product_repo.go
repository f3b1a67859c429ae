package repository

import (
	"github.com/duobao-games/lottery-draw-service/internal/domain"
	"github.com/duobao-games/lottery-draw-service/internal/infrastructure/postgres/mappers"
	"github.com/duobao-games/lottery-draw-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultProductRepository struct {
	db *gorm.DB
}

func NewDefaultProductRepository(db *gorm.DB) *DefaultProductRepository {
	return &DefaultProductRepository{db: db}
}

func (r *DefaultProductRepository) GetProductByID(productID string) (*domain.Product, error) {
	var model models.ProductModel
	if err := r.db.First(&model, "id = ?", productID).Error; err != nil {
		return nil, err
	}
	return mappers.ToDomainProduct(&model), nil
}
