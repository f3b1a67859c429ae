package mappers

import (
	"github.com/duobao-games/lottery-draw-service/internal/domain"
	"github.com/duobao-games/lottery-draw-service/internal/infrastructure/postgres/models"
)

func ToGORMUser(user *domain.User) *models.UserModel {
	return &models.UserModel{
		ID:             user.ID,
		Balance:        user.Balance,
		BalanceVersion: user.BalanceVersion,
		CreatedAt:      user.CreatedAt,
		UpdatedAt:      user.UpdatedAt,
	}
}

func ToDomainUser(model *models.UserModel) *domain.User {
	return &domain.User{
		ID:             model.ID,
		Balance:        model.Balance,
		BalanceVersion: model.BalanceVersion,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	}
}
