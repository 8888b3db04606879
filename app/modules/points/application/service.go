package pointsservice

import (
	"context"
	"log/slog"

	pointsdomain "github.com/Black-And-White-Club/golf-league/app/modules/points/domain"
	pointsdb "github.com/Black-And-White-Club/golf-league/app/modules/points/infrastructure/repositories"
	rounddomain "github.com/Black-And-White-Club/golf-league/app/modules/round/domain"
	rounddb "github.com/Black-And-White-Club/golf-league/app/modules/round/infrastructure/repositories"
	"github.com/Black-And-White-Club/golf-league/app/shared/observability"
	"github.com/Black-And-White-Club/golf-league/app/shared/operation"
	"github.com/Black-And-White-Club/golf-league/app/shared/results"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

// Service is the points engine. Every mutating method accepts an optional
// transaction; with a nil db the method opens its own.
type Service interface {
	Create(ctx context.Context, db bun.IDB, scores RoundScores) (*pointsdomain.Points, error)
	UpdateScores(ctx context.Context, db bun.IDB, scores RoundScores) (*pointsdomain.Points, error)
	UpdateGreenies(ctx context.Context, db bun.IDB, roundID uuid.UUID) (*pointsdomain.Points, error)
	UpdateStrokesPositions(ctx context.Context, db bun.IDB, tournamentDate string) error
	UpdatePuttsPositions(ctx context.Context, db bun.IDB, tournamentDate string) error
	Remove(ctx context.Context, db bun.IDB, roundID uuid.UUID) error
	AcquireTournamentLock(ctx context.Context, db bun.IDB, tournamentDate string) error

	GetPoints(ctx context.Context, roundID uuid.UUID) (*pointsdomain.Points, error)
	// RecalculateTournament re-runs both placement passes under the tournament lock.
	RecalculateTournament(ctx context.Context, tournamentDate string) error
}

// RoundScores is the input for hole-score bonuses.
type RoundScores struct {
	RoundID uuid.UUID
	Strokes rounddomain.Holes
	Pars    [rounddomain.HoleCount]int
}

// GreenieSource lists the greenies recorded for a round.
type GreenieSource interface {
	ListGreeniesByRound(ctx context.Context, db bun.IDB, roundID uuid.UUID) ([]rounddb.Greenie, error)
}

// PointsService implements the Service interface.
type PointsService struct {
	repo     pointsdb.Repository
	greenies GreenieSource
	locker   *TournamentLocker
	logger   *slog.Logger
	metrics  observability.OperationMetrics
	tracer   trace.Tracer
	db       *bun.DB
}

// NewPointsService creates a new PointsService.
func NewPointsService(
	repo pointsdb.Repository,
	greenies GreenieSource,
	locker *TournamentLocker,
	logger *slog.Logger,
	metrics observability.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *PointsService {
	if logger == nil {
		logger = slog.Default()
	}
	if locker == nil {
		locker = NewTournamentLocker()
	}
	return &PointsService{
		repo:     repo,
		greenies: greenies,
		locker:   locker,
		logger:   logger,
		metrics:  metrics,
		tracer:   tracer,
		db:       db,
	}
}

var _ Service = (*PointsService)(nil)

func (s *PointsService) telemetry() operation.Telemetry {
	return operation.Telemetry{
		Service: "PointsService",
		Logger:  s.logger,
		Tracer:  s.tracer,
		Metrics: s.metrics,
	}
}

// withTelemetry wraps a points operation with tracing, metrics, and panic recovery.
func withTelemetry[S any, F any](
	s *PointsService,
	ctx context.Context,
	operationName string,
	identifier string,
	op operation.Func[S, F],
) (results.OperationResult[S, F], error) {
	return operation.WithTelemetry(ctx, s.telemetry(), operationName, identifier, op)
}

// runInTx reuses the caller's transaction when one is given.
func runInTx[S any, F any](
	s *PointsService,
	ctx context.Context,
	tx bun.IDB,
	fn operation.TxFunc[S, F],
) (results.OperationResult[S, F], error) {
	return operation.Within(ctx, s.db, tx, fn)
}
