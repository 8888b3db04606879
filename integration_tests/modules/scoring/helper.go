//go:build integration

package scoringintegrationtests

import (
	"testing"
	"time"

	leagueservice "github.com/Black-And-White-Club/golf-league/app/modules/league/application"
	roundservice "github.com/Black-And-White-Club/golf-league/app/modules/round/application"
	rounddomain "github.com/Black-And-White-Club/golf-league/app/modules/round/domain"
	"github.com/Black-And-White-Club/golf-league/integration_tests/testutils"
	"github.com/stretchr/testify/require"
)

const (
	testDate   = "2026-05-02"
	testCourse = "pines"
)

// setupTournament resets the database and schedules testDate on the standard course.
func setupTournament(t *testing.T, usernames ...string) *testutils.TestEnvironment {
	t.Helper()
	env := testEnv
	env.Reset(t)

	league := env.App.LeagueModule.Service
	_, err := league.UpsertCourse(env.Ctx, testutils.StandardCourse(testCourse))
	require.NoError(t, err)

	date, err := leagueservice.ParseTournamentDate(testDate, time.Now())
	require.NoError(t, err)
	_, err = league.CreateTournament(env.Ctx, leagueservice.TournamentInput{Date: date, CourseHandle: testCourse})
	require.NoError(t, err)

	for _, u := range usernames {
		_, err := league.AddMember(env.Ctx, leagueservice.MemberInput{Username: u, FirstName: u})
		require.NoError(t, err)
	}
	return env
}

func uniform(v int) rounddomain.Holes {
	values := make([]int, rounddomain.HoleCount)
	for i := range values {
		values[i] = v
	}
	return rounddomain.NewHoles(values...)
}

func createRound(t *testing.T, env *testutils.TestEnvironment, username string, strokes, putts int) *roundservice.RoundView {
	t.Helper()
	round, err := env.App.RoundModule.Service.CreateRound(env.Ctx, roundservice.CreateRoundRequest{
		TournamentDate: testDate,
		Username:       username,
		Strokes:        uniform(strokes),
		Putts:          uniform(putts),
	})
	require.NoError(t, err)
	return round
}
