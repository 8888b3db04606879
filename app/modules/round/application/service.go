package roundservice

import (
	"context"
	"log/slog"

	"github.com/Black-And-White-Club/golf-league/app/eventbus"
	leaguedb "github.com/Black-And-White-Club/golf-league/app/modules/league/infrastructure/repositories"
	pointsservice "github.com/Black-And-White-Club/golf-league/app/modules/points/application"
	rounddb "github.com/Black-And-White-Club/golf-league/app/modules/round/infrastructure/repositories"
	"github.com/Black-And-White-Club/golf-league/app/shared/observability"
	"github.com/Black-And-White-Club/golf-league/app/shared/observability/attr"
	"github.com/Black-And-White-Club/golf-league/app/shared/operation"
	"github.com/Black-And-White-Club/golf-league/app/shared/results"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

// RoundService implements the Service interface.
type RoundService struct {
	repo      rounddb.Repository
	league    leaguedb.Repository
	points    pointsservice.Service
	locker    *pointsservice.TournamentLocker
	publisher eventbus.Publisher
	logger    *slog.Logger
	metrics   observability.OperationMetrics
	tracer    trace.Tracer
	db        *bun.DB
}

// NewRoundService creates a new RoundService. The locker must be the same
// instance the points service uses.
func NewRoundService(
	repo rounddb.Repository,
	league leaguedb.Repository,
	points pointsservice.Service,
	locker *pointsservice.TournamentLocker,
	publisher eventbus.Publisher,
	logger *slog.Logger,
	metrics observability.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *RoundService {
	if logger == nil {
		logger = slog.Default()
	}
	if locker == nil {
		locker = pointsservice.NewTournamentLocker()
	}
	return &RoundService{
		repo:      repo,
		league:    league,
		points:    points,
		locker:    locker,
		publisher: publisher,
		logger:    logger,
		metrics:   metrics,
		tracer:    tracer,
		db:        db,
	}
}

var _ Service = (*RoundService)(nil)

// withTelemetry wraps a round operation with tracing, metrics, and panic recovery.
func withTelemetry[S any, F any](
	s *RoundService,
	ctx context.Context,
	operationName string,
	identifier string,
	op operation.Func[S, F],
) (results.OperationResult[S, F], error) {
	return operation.WithTelemetry(ctx, operation.Telemetry{
		Service: "RoundService",
		Logger:  s.logger,
		Tracer:  s.tracer,
		Metrics: s.metrics,
	}, operationName, identifier, op)
}

// runInTx ensures the operation runs within a transaction.
func runInTx[S any, F any](
	s *RoundService,
	ctx context.Context,
	fn operation.TxFunc[S, F],
) (results.OperationResult[S, F], error) {
	return operation.RunInTx(ctx, s.db, fn)
}

// publish sends an event after commit. Failures are logged, never returned.
func (s *RoundService) publish(ctx context.Context, topic string, payload any) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, topic, payload); err != nil {
		s.logger.WarnContext(ctx, "Failed to publish event",
			attr.ExtractCorrelationID(ctx),
			attr.String("topic", topic),
			attr.Error(err),
		)
	}
}
