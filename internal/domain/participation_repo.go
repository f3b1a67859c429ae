package domain

type ParticipationRepository interface {
	GetParticipationByID(participationID string) (*Participation, error)
	GetParticipationsByRoundID(roundID string) ([]*Participation, error)
}
