package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Black-And-White-Club/golf-league/app"
	roundservice "github.com/Black-And-White-Club/golf-league/app/modules/round/application"
	"github.com/Black-And-White-Club/golf-league/app/modules/round/infrastructure/parsers"
	"github.com/urfave/cli/v2"
)

func newRoundsCommand() *cli.Command {
	return &cli.Command{
		Name:  "rounds",
		Usage: "manage rounds",
		Subcommands: []*cli.Command{
			{
				Name:  "import",
				Usage: "enter every scorecard of a CSV or XLSX sheet for one tournament",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "date", Required: true, Usage: "tournament date, YYYY-MM-DD"},
					&cli.StringFlag{Name: "file", Required: true, Usage: "scorecard sheet (.csv or .xlsx)"},
				},
				Action: withApp(func(c *cli.Context, a *app.App) error {
					path := c.String("file")
					data, err := os.ReadFile(path)
					if err != nil {
						return fmt.Errorf("failed to read scorecards: %w", err)
					}
					return importRounds(c.Context, a.RoundModule.Service, c.String("date"), filepath.Base(path), data)
				}),
			},
		},
	}
}

// importRounds creates one round per player card. A failing card does not
// stop the import; all failures are returned together.
func importRounds(ctx context.Context, service roundservice.Service, date, fileName string, data []byte) error {
	card, err := parsers.ParseScorecard(data, fileName)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", fileName, err)
	}

	var errs []error
	for _, player := range card.Players {
		round, err := service.CreateRound(ctx, roundservice.CreateRoundRequest{
			TournamentDate: date,
			Username:       player.Username,
			Strokes:        player.Strokes,
			Putts:          player.Putts,
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", player.Username, err))
			continue
		}
		fmt.Printf("Imported %s: %d strokes\n", round.Username, round.TotalStrokes)
	}
	return errors.Join(errs...)
}
