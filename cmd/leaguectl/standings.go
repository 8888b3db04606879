package main

import (
	"fmt"
	"os"

	"github.com/Black-And-White-Club/golf-league/app"
	"github.com/urfave/cli/v2"
)

func newStandingsCommand() *cli.Command {
	return &cli.Command{
		Name:  "standings",
		Usage: "yearly standings",
		Subcommands: []*cli.Command{
			{
				Name:  "export",
				Usage: "write the yearly standings workbook",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "tour-year", Required: true},
					&cli.IntFlag{Name: "top", Usage: "rounds counted per player, defaults to the configured value"},
					&cli.StringFlag{Name: "out", Usage: "output path, defaults to standings-<tour-year>.xlsx"},
				},
				Action: withApp(func(c *cli.Context, a *app.App) error {
					tourYear := c.String("tour-year")
					topN := c.Int("top")
					if !c.IsSet("top") {
						topN = a.Config.League.StandingsDefaultTopN
					}
					data, err := a.LeaderboardModule.Service.ExportYearlyStandings(c.Context, tourYear, topN)
					if err != nil {
						return err
					}
					out := c.String("out")
					if out == "" {
						out = fmt.Sprintf("standings-%s.xlsx", tourYear)
					}
					if err := os.WriteFile(out, data, 0o644); err != nil {
						return fmt.Errorf("failed to write %s: %w", out, err)
					}
					fmt.Printf("Wrote %s\n", out)
					return nil
				}),
			},
		},
	}
}
