package roundservice

import (
	"context"

	pointsdomain "github.com/Black-And-White-Club/golf-league/app/modules/points/domain"
	"github.com/google/uuid"
)

// Service is the round entry surface. Every mutation recomputes the round's
// stats and keeps the tournament's points consistent before it returns.
type Service interface {
	CreateRound(ctx context.Context, req CreateRoundRequest) (*RoundView, error)
	GetRound(ctx context.Context, roundID uuid.UUID) (*RoundView, error)
	UpdateRound(ctx context.Context, roundID uuid.UUID, req UpdateRoundRequest) (*RoundView, error)
	DeleteRound(ctx context.Context, roundID uuid.UUID) error
	GetRoundPoints(ctx context.Context, roundID uuid.UUID) (*pointsdomain.Points, error)

	CreateGreenie(ctx context.Context, req GreenieRequest) (*GreenieView, error)
	UpdateGreenie(ctx context.Context, greenieID uuid.UUID, req GreenieRequest) (*GreenieView, error)
	DeleteGreenie(ctx context.Context, greenieID uuid.UUID) error
}
