package leaderboardservice

import (
	"context"
	"log/slog"

	leaderboarddomain "github.com/Black-And-White-Club/golf-league/app/modules/leaderboard/domain"
	leaguedb "github.com/Black-And-White-Club/golf-league/app/modules/league/infrastructure/repositories"
	pointsdb "github.com/Black-And-White-Club/golf-league/app/modules/points/infrastructure/repositories"
	rounddb "github.com/Black-And-White-Club/golf-league/app/modules/round/infrastructure/repositories"
	"github.com/Black-And-White-Club/golf-league/app/shared/observability"
	"github.com/Black-And-White-Club/golf-league/app/shared/operation"
	"github.com/Black-And-White-Club/golf-league/app/shared/results"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

// Service answers winners and standings queries. Everything is computed from
// stored rounds and points on each call.
type Service interface {
	TournamentWinners(ctx context.Context, tournamentDate string) (*leaderboarddomain.TournamentWinners, error)
	TournamentStandings(ctx context.Context, tournamentDate string) ([]leaderboarddomain.StandingsRow, error)
	YearlyStandings(ctx context.Context, tourYear string, topN int) ([]leaderboarddomain.StandingsRow, error)

	// ExportYearlyStandings renders the yearly standings as an XLSX workbook.
	ExportYearlyStandings(ctx context.Context, tourYear string, topN int) ([]byte, error)
	// HandicapChart renders a player's index trend as a PNG.
	HandicapChart(ctx context.Context, username string) ([]byte, error)
}

// LeaderboardService implements the Service interface.
type LeaderboardService struct {
	rounds  rounddb.Repository
	points  pointsdb.Repository
	league  leaguedb.Repository
	palette ChartPalette
	logger  *slog.Logger
	metrics observability.OperationMetrics
	tracer  trace.Tracer
	db      bun.IDB
}

// NewLeaderboardService creates a new LeaderboardService.
func NewLeaderboardService(
	rounds rounddb.Repository,
	points pointsdb.Repository,
	league leaguedb.Repository,
	logger *slog.Logger,
	metrics observability.OperationMetrics,
	tracer trace.Tracer,
	db bun.IDB,
) *LeaderboardService {
	if logger == nil {
		logger = slog.Default()
	}
	return &LeaderboardService{
		rounds:  rounds,
		points:  points,
		league:  league,
		palette: DefaultPalette,
		logger:  logger,
		metrics: metrics,
		tracer:  tracer,
		db:      db,
	}
}

var _ Service = (*LeaderboardService)(nil)

func withTelemetry[S any, F any](
	s *LeaderboardService,
	ctx context.Context,
	operationName string,
	identifier string,
	op operation.Func[S, F],
) (results.OperationResult[S, F], error) {
	return operation.WithTelemetry(ctx, operation.Telemetry{
		Service: "LeaderboardService",
		Logger:  s.logger,
		Tracer:  s.tracer,
		Metrics: s.metrics,
	}, operationName, identifier, op)
}
