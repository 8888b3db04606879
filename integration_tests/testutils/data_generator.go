package testutils

import (
	"time"

	leagueservice "github.com/Black-And-White-Club/golf-league/app/modules/league/application"
	rounddomain "github.com/Black-And-White-Club/golf-league/app/modules/round/domain"
	"github.com/brianvoe/gofakeit/v7"
)

// TestDataGenerator provides methods to create test data for integration tests
type TestDataGenerator struct {
	faker *gofakeit.Faker
	seed  int64
}

// NewTestDataGenerator creates a new test data generator with optional seed
func NewTestDataGenerator(seed ...int64) *TestDataGenerator {
	var s int64
	if len(seed) > 0 {
		s = seed[0]
	} else {
		s = time.Now().UnixNano()
	}
	return &TestDataGenerator{faker: gofakeit.New(uint64(s)), seed: s}
}

// Seed returns the seed, for reproducing a failing run.
func (g *TestDataGenerator) Seed() int64 { return g.seed }

// GenerateMembers returns count members with unique usernames.
func (g *TestDataGenerator) GenerateMembers(count int) []leagueservice.MemberInput {
	seen := make(map[string]bool, count)
	out := make([]leagueservice.MemberInput, 0, count)
	for len(out) < count {
		username := g.faker.Username()
		if seen[username] {
			continue
		}
		seen[username] = true
		out = append(out, leagueservice.MemberInput{
			Username:  username,
			FirstName: g.faker.FirstName(),
			LastName:  g.faker.LastName(),
		})
	}
	return out
}

// GenerateScorecard returns a full 18-hole card with plausible scores.
func (g *TestDataGenerator) GenerateScorecard() (strokes, putts rounddomain.Holes) {
	for i := range rounddomain.HoleCount {
		s := g.faker.IntRange(2, 8)
		p := g.faker.IntRange(0, min(s, 4))
		strokes[i], putts[i] = &s, &p
	}
	return strokes, putts
}

// StandardCourse is par 72 over 18 holes with hole 3 and 12 as par 3s and
// holes 9 and 18 as par 5s. Rating 72 and slope 113 make the score
// differential equal to strokes minus 72.
func StandardCourse(handle string) leagueservice.CourseInput {
	rating, slope := 72.0, 113
	in := leagueservice.CourseInput{Handle: handle, Name: "Standard " + handle, Rating: &rating, Slope: &slope}
	for i := range rounddomain.HoleCount {
		par := 4
		switch i + 1 {
		case 3, 12:
			par = 3
		case 9, 18:
			par = 5
		}
		in.Pars = append(in.Pars, par)
		in.Handicaps = append(in.Handicaps, i+1)
	}
	return in
}
