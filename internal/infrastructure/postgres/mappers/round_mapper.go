package mappers

import (
	"encoding/json"
	"fmt"

	"github.com/duobao-games/lottery-draw-service/internal/domain"
	"github.com/duobao-games/lottery-draw-service/internal/infrastructure/postgres/models"
)

func ToGORMRound(round *domain.Round) (*models.RoundModel, error) {
	model := &models.RoundModel{
		ID:                round.ID,
		ProductID:         round.ProductID,
		RoundNumber:       round.RoundNumber,
		TotalShares:       round.TotalShares,
		SoldShares:        round.SoldShares,
		SoldSharesVersion: round.SoldSharesVersion,
		Status:            round.Status,
		WinningNumber:     round.WinningNumber,
		WinnerUserID:      round.WinnerUserID,
		DrawTime:          round.DrawTime,
		CreatedAt:         round.CreatedAt,
		UpdatedAt:         round.UpdatedAt,
	}
	if round.DrawProof != nil {
		data, err := MarshalDrawProof(round.DrawProof)
		if err != nil {
			return nil, err
		}
		model.DrawProof = data
	}
	return model, nil
}

// ToDomainRound parses the draw proof jsonb once here, so the rest of the
// system only ever sees the typed record.
func ToDomainRound(model *models.RoundModel) (*domain.Round, error) {
	round := &domain.Round{
		ID:                model.ID,
		ProductID:         model.ProductID,
		RoundNumber:       model.RoundNumber,
		TotalShares:       model.TotalShares,
		SoldShares:        model.SoldShares,
		SoldSharesVersion: model.SoldSharesVersion,
		Status:            model.Status,
		WinningNumber:     model.WinningNumber,
		WinnerUserID:      model.WinnerUserID,
		DrawTime:          model.DrawTime,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
	}
	if model.DrawProof != "" {
		var proof domain.DrawProof
		if err := json.Unmarshal([]byte(model.DrawProof), &proof); err != nil {
			return nil, fmt.Errorf("parsing draw proof for round %s: %w", model.ID, err)
		}
		round.DrawProof = &proof
	}
	return round, nil
}

func MarshalDrawProof(proof *domain.DrawProof) (string, error) {
	data, err := json.Marshal(proof)
	if err != nil {
		return "", fmt.Errorf("marshaling draw proof: %w", err)
	}
	return string(data), nil
}
