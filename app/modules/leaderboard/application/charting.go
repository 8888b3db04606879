package leaderboardservice

import (
	"bytes"
	"context"
	"fmt"
	"time"

	rounddb "github.com/Black-And-White-Club/golf-league/app/modules/round/infrastructure/repositories"
	"github.com/Black-And-White-Club/golf-league/app/shared/operation"
	"github.com/Black-And-White-Club/golf-league/app/shared/results"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ChartPalette holds the colors used by rendered charts.
type ChartPalette struct {
	Background  drawing.Color
	PrimaryLine drawing.Color
	AccentLine  drawing.Color
	TextColor   drawing.Color
}

// DefaultPalette is the fairway green palette.
var DefaultPalette = ChartPalette{
	Background:  drawing.ColorFromHex("f7f5ef"),
	PrimaryLine: drawing.ColorFromHex("1f4d3a"),
	AccentLine:  drawing.ColorFromHex("c9a227"),
	TextColor:   drawing.ColorFromHex("222222"),
}

// HandicapChart renders a player's index trend as a PNG.
func (s *LeaderboardService) HandicapChart(ctx context.Context, username string) ([]byte, error) {
	result, err := withTelemetry(s, ctx, "HandicapChart", username, func(ctx context.Context) (results.OperationResult[[]byte, error], error) {
		history, err := s.rounds.ListHandicapPoints(ctx, s.db, username)
		if err != nil {
			return results.OperationResult[[]byte, error]{}, fmt.Errorf("failed to load handicap history: %w", err)
		}
		png, err := GenerateHandicapChart(username, history, s.palette)
		if err != nil {
			return results.OperationResult[[]byte, error]{}, fmt.Errorf("failed to render chart: %w", err)
		}
		return results.SuccessResult[[]byte, error](png), nil
	})
	return operation.Unwrap(result, err)
}

// GenerateHandicapChart produces a PNG line chart of a player's index over
// time. Rounds without an index are skipped.
func GenerateHandicapChart(username string, history []rounddb.HandicapPoint, palette ChartPalette) ([]byte, error) {
	xValues := make([]time.Time, 0, len(history))
	yValues := make([]float64, 0, len(history))
	for _, p := range history {
		if p.PlayerIndex == nil {
			continue
		}
		played, err := time.Parse("2006-01-02", p.TournamentDate)
		if err != nil {
			continue
		}
		xValues = append(xValues, played)
		yValues = append(yValues, *p.PlayerIndex)
	}

	// a single point has no range to plot
	if len(xValues) < 2 {
		return renderNoDataPlaceholder(palette, "Not enough rounds for "+username)
	}

	lo, hi := yValues[0], yValues[0]
	for _, v := range yValues[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}

	mainSeries := chart.TimeSeries{
		Name:    "Player Index",
		XValues: xValues,
		YValues: yValues,
		Style: chart.Style{
			StrokeColor: palette.PrimaryLine,
			StrokeWidth: 2,
			DotWidth:    4,
			DotColor:    palette.AccentLine,
		},
	}

	graph := chart.Chart{
		Title:  username,
		Width:  800,
		Height: 400,
		TitleStyle: chart.Style{
			FontColor: palette.TextColor,
		},
		Background: chart.Style{
			FillColor: palette.Background,
		},
		Canvas: chart.Style{
			FillColor: palette.Background,
		},
		XAxis: chart.XAxis{
			Name:           "Tournament",
			ValueFormatter: chart.TimeValueFormatterWithFormat("2006-01-02"),
			Style: chart.Style{
				FontColor: palette.TextColor,
			},
		},
		YAxis: chart.YAxis{
			Name: "Index",
			Style: chart.Style{
				FontColor: palette.TextColor,
			},
			Range: &chart.ContinuousRange{Min: lo - 1, Max: hi + 1},
		},
		Series: []chart.Series{mainSeries},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// renderNoDataPlaceholder draws msg centered on a blank canvas. It talks to
// the renderer directly since a chart needs at least one series.
func renderNoDataPlaceholder(palette ChartPalette, msg string) ([]byte, error) {
	const (
		width  = 400
		height = 200
	)

	r, err := chart.PNG(width, height)
	if err != nil {
		return nil, err
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return nil, err
	}

	r.SetFillColor(palette.Background)
	r.MoveTo(0, 0)
	r.LineTo(width, 0)
	r.LineTo(width, height)
	r.LineTo(0, height)
	r.Close()
	r.Fill()

	r.SetFont(font)
	r.SetFontColor(palette.TextColor)
	r.SetFontSize(12.0)
	tb := r.MeasureText(msg)
	r.Text(msg, (width-tb.Width())/2, (height+tb.Height())/2)

	buffer := bytes.NewBuffer([]byte{})
	if err := r.Save(buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
