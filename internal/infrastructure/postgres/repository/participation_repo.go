package repository

import (
	"github.com/duobao-games/lottery-draw-service/internal/domain"
	"github.com/duobao-games/lottery-draw-service/internal/infrastructure/postgres/mappers"
	"github.com/duobao-games/lottery-draw-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultParticipationRepository struct {
	db *gorm.DB
}

func NewDefaultParticipationRepository(db *gorm.DB) *DefaultParticipationRepository {
	return &DefaultParticipationRepository{db: db}
}

func (r *DefaultParticipationRepository) GetParticipationByID(participationID string) (*domain.Participation, error) {
	var model models.ParticipationModel
	if err := r.db.First(&model, "id = ?", participationID).Error; err != nil {
		return nil, err
	}
	return mappers.ToDomainParticipation(&model), nil
}

// GetParticipationsByRoundID returns the round's participations in creation
// order, the order the commitment hash canonicalizes from.
func (r *DefaultParticipationRepository) GetParticipationsByRoundID(roundID string) ([]*domain.Participation, error) {
	var participationModels []models.ParticipationModel
	if err := r.db.
		Where("round_id = ?", roundID).
		Order("created_at ASC").
		Find(&participationModels).Error; err != nil {
		return nil, err
	}

	participations := make([]*domain.Participation, len(participationModels))
	for i := range participationModels {
		participations[i] = mappers.ToDomainParticipation(&participationModels[i])
	}
	return participations, nil
}
