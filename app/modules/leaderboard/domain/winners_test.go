package leaderboarddomain

import (
	"testing"

	rounddomain "github.com/Black-And-White-Club/golf-league/app/modules/round/domain"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

func completeHoles(v int) rounddomain.Holes {
	vals := make([]int, rounddomain.HoleCount)
	for i := range vals {
		vals[i] = v
	}
	return rounddomain.NewHoles(vals...)
}

func newResult(username string, net, putts int) RoundResult {
	return RoundResult{
		RoundID:    uuid.New(),
		Username:   username,
		Strokes:    completeHoles(4),
		Putts:      completeHoles(2),
		NetStrokes: net,
		TotalPutts: putts,
	}
}

func positions(rows []RankedRound) []int {
	out := make([]int, len(rows))
	for i, r := range rows {
		out[i] = r.Position
	}
	return out
}

func TestStrokesWinners(t *testing.T) {
	t.Run("keeps every round tied at third slot", func(t *testing.T) {
		rounds := []RoundResult{
			newResult("alice", 70, 30),
			newResult("bob", 68, 30),
			newResult("carol", 68, 30),
			newResult("dave", 70, 30),
			newResult("erin", 72, 30),
		}
		got := StrokesWinners(rounds)
		if diff := cmp.Diff([]int{1, 1, 3, 3}, positions(got)); diff != "" {
			t.Fatalf("positions mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("skips rounds with missing strokes", func(t *testing.T) {
		partial := newResult("zed", 10, 10)
		partial.Strokes[4] = nil
		got := StrokesWinners([]RoundResult{partial, newResult("amy", 72, 30)})
		if len(got) != 1 || got[0].Username != "amy" {
			t.Fatalf("expected only amy, got %+v", got)
		}
	})

	t.Run("three way tie for first is not truncated", func(t *testing.T) {
		rounds := []RoundResult{
			newResult("a", 70, 0), newResult("b", 70, 0), newResult("c", 70, 0),
			newResult("d", 70, 0), newResult("e", 71, 0),
		}
		if diff := cmp.Diff([]int{1, 1, 1, 1}, positions(StrokesWinners(rounds))); diff != "" {
			t.Fatalf("positions mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestPuttsWinners(t *testing.T) {
	rounds := []RoundResult{
		newResult("alice", 0, 31),
		newResult("bob", 0, 29),
		newResult("carol", 0, 33),
		newResult("dave", 0, 35),
	}
	got := PuttsWinners(rounds)
	want := []string{"bob", "alice", "carol"}
	var names []string
	for _, r := range got {
		names = append(names, r.Username)
	}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("winners mismatch (-want +got):\n%s", diff)
	}
}

func TestGreenieWinners(t *testing.T) {
	r1, r2, r3 := uuid.New(), uuid.New(), uuid.New()
	greenies := []GreenieEntry{
		{GreenieID: uuid.New(), RoundID: r1, Username: "alice", Hole: 3, Feet: 2},
		{GreenieID: uuid.New(), RoundID: r1, Username: "alice", Hole: 7, Feet: 1},
		{GreenieID: uuid.New(), RoundID: r2, Username: "bob", Hole: 7, Feet: 4},
		{GreenieID: uuid.New(), RoundID: r3, Username: "carol", Hole: 12, Feet: 30},
	}

	got := GreenieWinners(greenies)
	want := []struct {
		hole int
		user string
	}{{7, "alice"}, {12, "carol"}}

	if len(got) != len(want) {
		t.Fatalf("expected %d winners, got %+v", len(want), got)
	}
	for i, w := range want {
		if got[i].Hole != w.hole || got[i].Username != w.user {
			t.Fatalf("winner %d: want hole %d %s, got %+v", i, w.hole, w.user, got[i])
		}
	}
}

func TestGreenieWinnersExclusive(t *testing.T) {
	faker := gofakeit.New(uint64(42))
	parThrees := []int{3, 7, 12, 16}

	for iter := 0; iter < 50; iter++ {
		players := make([]string, faker.Number(1, 8))
		for i := range players {
			players[i] = faker.Username()
		}
		var greenies []GreenieEntry
		for n := faker.Number(0, 20); n > 0; n-- {
			greenies = append(greenies, GreenieEntry{
				GreenieID: uuid.New(),
				RoundID:   uuid.New(),
				Username:  players[faker.Number(0, len(players)-1)],
				Hole:      parThrees[faker.Number(0, len(parThrees)-1)],
				Feet:      faker.Number(0, 40),
				Inches:    faker.Number(0, 11),
			})
		}

		holes := map[int]bool{}
		users := map[string]bool{}
		for _, w := range GreenieWinners(greenies) {
			if holes[w.Hole] || users[w.Username] {
				t.Fatalf("repeated hole or player in winners: %+v", w)
			}
			holes[w.Hole] = true
			users[w.Username] = true
		}
	}
}

func TestSkinsWinners(t *testing.T) {
	var ranks [rounddomain.HoleCount]int
	for i := range ranks {
		ranks[i] = i + 1
	}

	alice := newResult("alice", 0, 0)
	bob := newResult("bob", 0, 0)
	bob.CourseHandicap = 2 // one stroke on the rank-1 hole
	*alice.Strokes[1] = 3  // unique low on hole 2
	*bob.Strokes[0] = 4    // adjusted to 3 on hole 1, alice has 4
	*alice.Strokes[2] = 3
	*bob.Strokes[2] = 3 // tie on hole 3
	bob.Strokes[5] = nil
	*alice.Strokes[5] = 5 // only alice played hole 6

	got := SkinsWinners([]RoundResult{alice, bob}, ranks)

	want := []SkinWinner{
		{Hole: 1, RoundID: bob.RoundID, Username: "bob", Score: 3},
		{Hole: 2, RoundID: alice.RoundID, Username: "alice", Score: 3},
		{Hole: 6, RoundID: alice.RoundID, Username: "alice", Score: 5},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("skins mismatch (-want +got):\n%s", diff)
	}
}

func TestSkinsAllowance(t *testing.T) {
	tests := map[int]int{-3: 0, 0: 0, 1: 0, 5: 2, 36: 18, 50: 18}
	for ch, want := range tests {
		if got := SkinsAllowance(ch); got != want {
			t.Fatalf("SkinsAllowance(%d) = %d, want %d", ch, got, want)
		}
	}
}

func TestTournamentIsComplete(t *testing.T) {
	if TournamentIsComplete(nil) {
		t.Fatalf("empty tournament must not be complete")
	}
	a, b := newResult("a", 0, 0), newResult("b", 0, 0)
	if !TournamentIsComplete([]RoundResult{a, b}) {
		t.Fatalf("expected complete")
	}
	b.Putts[17] = nil
	if TournamentIsComplete([]RoundResult{a, b}) {
		t.Fatalf("missing putt must make the tournament incomplete")
	}
}
