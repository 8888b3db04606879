package main

import (
	"fmt"
	"os"
	"time"

	"github.com/Black-And-White-Club/golf-league/app"
	leagueservice "github.com/Black-And-White-Club/golf-league/app/modules/league/application"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

func newCourseCommand() *cli.Command {
	return &cli.Command{
		Name:  "course",
		Usage: "manage courses",
		Subcommands: []*cli.Command{
			{
				Name:      "import",
				Usage:     "upsert courses from a YAML file",
				ArgsUsage: "<courses.yaml>",
				Action: withApp(func(c *cli.Context, a *app.App) error {
					data, err := os.ReadFile(c.Args().First())
					if err != nil {
						return fmt.Errorf("failed to read courses: %w", err)
					}
					var courses []leagueservice.CourseInput
					if err := yaml.Unmarshal(data, &courses); err != nil {
						return fmt.Errorf("failed to parse courses: %w", err)
					}
					for _, in := range courses {
						course, err := a.LeagueModule.Service.UpsertCourse(c.Context, in)
						if err != nil {
							return fmt.Errorf("course %q: %w", in.Handle, err)
						}
						fmt.Printf("Upserted course %s\n", course.Handle)
					}
					return nil
				}),
			},
		},
	}
}

func newTournamentCommand() *cli.Command {
	return &cli.Command{
		Name:  "tournament",
		Usage: "manage tournaments",
		Subcommands: []*cli.Command{
			{
				Name:  "create",
				Usage: "schedule a tournament",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "date", Required: true, Usage: `YYYY-MM-DD or a phrase such as "tomorrow"`},
					&cli.StringFlag{Name: "course", Required: true, Usage: "course handle"},
					&cli.StringFlag{Name: "tour-year", Usage: "defaults to the date's year"},
					&cli.StringFlag{Name: "name"},
				},
				Action: withApp(func(c *cli.Context, a *app.App) error {
					date, err := leagueservice.ParseTournamentDate(c.String("date"), time.Now())
					if err != nil {
						return err
					}
					t, err := a.LeagueModule.Service.CreateTournament(c.Context, leagueservice.TournamentInput{
						Date:         date,
						CourseHandle: c.String("course"),
						TourYear:     c.String("tour-year"),
						Name:         c.String("name"),
					})
					if err != nil {
						return err
					}
					fmt.Printf("Scheduled %s on %s (tour %s)\n", t.Date, t.CourseHandle, t.TourYear)
					return nil
				}),
			},
			{
				Name:      "list",
				Usage:     "list the tournaments of a tour year",
				ArgsUsage: "<tour-year>",
				Action: withApp(func(c *cli.Context, a *app.App) error {
					tournaments, err := a.LeagueModule.Service.ListTournaments(c.Context, c.Args().First())
					if err != nil {
						return err
					}
					for _, t := range tournaments {
						fmt.Printf("%s\t%s\t%s\n", t.Date, t.CourseHandle, t.Name)
					}
					return nil
				}),
			},
			{
				Name:      "recalculate",
				Usage:     "re-run strokes and putts placement for a tournament",
				ArgsUsage: "<YYYY-MM-DD>",
				Action: withApp(func(c *cli.Context, a *app.App) error {
					return a.PointsModule.Service.RecalculateTournament(c.Context, c.Args().First())
				}),
			},
		},
	}
}

func newMemberCommand() *cli.Command {
	return &cli.Command{
		Name:  "member",
		Usage: "manage league members",
		Subcommands: []*cli.Command{
			{
				Name:  "add",
				Usage: "register or rename a member",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "username", Required: true},
					&cli.StringFlag{Name: "first"},
					&cli.StringFlag{Name: "last"},
				},
				Action: withApp(func(c *cli.Context, a *app.App) error {
					m, err := a.LeagueModule.Service.AddMember(c.Context, leagueservice.MemberInput{
						Username:  c.String("username"),
						FirstName: c.String("first"),
						LastName:  c.String("last"),
					})
					if err != nil {
						return err
					}
					fmt.Printf("Member %s saved\n", m.Username)
					return nil
				}),
			},
		},
	}
}
