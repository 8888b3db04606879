package leaderboardservice

import (
	"context"
	"fmt"

	leaderboarddomain "github.com/Black-And-White-Club/golf-league/app/modules/leaderboard/domain"
	"github.com/Black-And-White-Club/golf-league/app/shared/operation"
	"github.com/Black-And-White-Club/golf-league/app/shared/results"
	"github.com/xuri/excelize/v2"
)

const standingsSheet = "Standings"

var standingsHeader = []any{
	"Rank", "Username", "Name", "Rounds", "Participation", "Strokes", "Putts",
	"Greenies", "Pars", "Birdies", "Eagles", "Aces", "Total",
}

// ExportYearlyStandings renders the yearly standings as an XLSX workbook.
func (s *LeaderboardService) ExportYearlyStandings(ctx context.Context, tourYear string, topN int) ([]byte, error) {
	rows, err := s.YearlyStandings(ctx, tourYear, topN)
	if err != nil {
		return nil, err
	}

	result, err := withTelemetry(s, ctx, "ExportYearlyStandings", tourYear, func(ctx context.Context) (results.OperationResult[[]byte, error], error) {
		data, err := RenderStandingsXLSX(tourYear, rows)
		if err != nil {
			return results.OperationResult[[]byte, error]{}, err
		}
		return results.SuccessResult[[]byte, error](data), nil
	})
	return operation.Unwrap(result, err)
}

// RenderStandingsXLSX writes standings rows into a single-sheet workbook.
func RenderStandingsXLSX(title string, rows []leaderboarddomain.StandingsRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", standingsSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}
	if err := f.SetDocProps(&excelize.DocProperties{Title: "Standings " + title}); err != nil {
		return nil, fmt.Errorf("failed to set document properties: %w", err)
	}

	if err := f.SetSheetRow(standingsSheet, "A1", &standingsHeader); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		values := []any{
			i + 1, row.Username, row.Names, row.Rounds, row.Participation, row.Strokes, row.Putts,
			row.Greenies, row.Pars, row.Birdies, row.Eagles, row.Aces, row.Total,
		}
		if err := f.SetSheetRow(standingsSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
