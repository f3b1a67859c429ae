package mappers

import (
	"github.com/duobao-games/lottery-draw-service/internal/domain"
	"github.com/duobao-games/lottery-draw-service/internal/infrastructure/postgres/models"
)

func ToGORMTransaction(tx *domain.Transaction) *models.TransactionModel {
	return &models.TransactionModel{
		ID:           tx.ID,
		UserID:       tx.UserID,
		Type:         tx.Type,
		Amount:       tx.Amount,
		BalanceAfter: tx.BalanceAfter,
		RelatedID:    tx.RelatedID,
		Description:  tx.Description,
		CreatedAt:    tx.CreatedAt,
	}
}

func ToDomainTransaction(model *models.TransactionModel) *domain.Transaction {
	return &domain.Transaction{
		ID:           model.ID,
		UserID:       model.UserID,
		Type:         model.Type,
		Amount:       model.Amount,
		BalanceAfter: model.BalanceAfter,
		RelatedID:    model.RelatedID,
		Description:  model.Description,
		CreatedAt:    model.CreatedAt,
	}
}
