package mappers

import (
	"github.com/lib/pq"

	"github.com/duobao-games/lottery-draw-service/internal/domain"
	"github.com/duobao-games/lottery-draw-service/internal/infrastructure/postgres/models"
)

func ToGORMParticipation(p *domain.Participation) *models.ParticipationModel {
	return &models.ParticipationModel{
		ID:          p.ID,
		UserID:      p.UserID,
		RoundID:     p.RoundID,
		ProductID:   p.ProductID,
		Numbers:     pq.Int64Array(p.Numbers),
		SharesCount: p.SharesCount,
		Cost:        p.Cost,
		IsWinner:    p.IsWinner,
		CreatedAt:   p.CreatedAt,
	}
}

func ToDomainParticipation(model *models.ParticipationModel) *domain.Participation {
	return &domain.Participation{
		ID:          model.ID,
		UserID:      model.UserID,
		RoundID:     model.RoundID,
		ProductID:   model.ProductID,
		Numbers:     []int64(model.Numbers),
		SharesCount: model.SharesCount,
		Cost:        model.Cost,
		IsWinner:    model.IsWinner,
		CreatedAt:   model.CreatedAt,
	}
}
