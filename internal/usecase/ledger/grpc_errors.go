package ledger

import (
	"errors"

	"github.com/duobao-games/lottery-draw-service/internal/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// StatusFromError translates domain sentinels into gRPC statuses for the
// delivery layer. ErrVersionConflict maps to Aborted, the conventional code
// for optimistic-lock failures a client should retry.
func StatusFromError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, domain.ErrVersionConflict):
		return status.Error(codes.Aborted, err.Error())
	case errors.Is(err, domain.ErrInsufficientBalance),
		errors.Is(err, domain.ErrInsufficientShares),
		errors.Is(err, domain.ErrRoundNotActive),
		errors.Is(err, domain.ErrOrderTerminal):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, domain.ErrInvalidNumbers):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrRoundAlreadyDrawn):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, domain.ErrMissingDrawProof):
		return status.Error(codes.NotFound, err.Error())
	// A full round with no participations or no holder of the winning number
	// is corrupted state, not a bad request. Surface it as Internal so it
	// pages instead of blending into client errors.
	case errors.Is(err, domain.ErrNoParticipants),
		errors.Is(err, domain.ErrWinnerNotFound):
		return status.Error(codes.Internal, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
