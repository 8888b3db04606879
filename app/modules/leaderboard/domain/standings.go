package leaderboarddomain

import (
	"sort"

	pointsdomain "github.com/Black-And-White-Club/golf-league/app/modules/points/domain"
	"github.com/google/uuid"
)

// RoundPoints is one round's points joined with its player and tournament.
type RoundPoints struct {
	Username       string
	TournamentDate string
	Points         pointsdomain.Points
}

// StandingsRow is one player's summed categories.
type StandingsRow struct {
	Username      string     `json:"username"`
	Names         string     `json:"names"`
	RoundID       *uuid.UUID `json:"roundId,omitempty"`
	Rounds        int        `json:"rounds"`
	Participation int        `json:"participation"`
	Strokes       int        `json:"strokes"`
	Putts         int        `json:"putts"`
	Greenies      int        `json:"greenies"`
	Pars          int        `json:"pars"`
	Birdies       int        `json:"birdies"`
	Eagles        int        `json:"eagles"`
	Aces          int        `json:"aces"`
	Total         int        `json:"total"`
}

func (r *StandingsRow) add(p pointsdomain.Points) {
	r.Rounds++
	r.Participation += p.Participation
	r.Strokes += p.Strokes
	r.Putts += p.Putts
	r.Greenies += p.Greenies
	r.Pars += p.Pars
	r.Birdies += p.Birdies
	r.Eagles += p.Eagles
	r.Aces += p.Aces
	r.Total += p.Total()
}

// YearlyStandings keeps each player's best topN rounds by point total and
// sums their categories. A topN of zero or less counts every round.
// names maps username to display name.
func YearlyStandings(rounds []RoundPoints, names map[string]string, topN int) []StandingsRow {
	byPlayer := make(map[string][]RoundPoints)
	for _, r := range rounds {
		byPlayer[r.Username] = append(byPlayer[r.Username], r)
	}

	rows := make([]StandingsRow, 0, len(byPlayer))
	for username, played := range byPlayer {
		sort.SliceStable(played, func(i, j int) bool {
			ti, tj := played[i].Points.Total(), played[j].Points.Total()
			if ti != tj {
				return ti > tj
			}
			return played[i].TournamentDate < played[j].TournamentDate
		})
		if topN > 0 && len(played) > topN {
			played = played[:topN]
		}

		row := StandingsRow{Username: username, Names: names[username]}
		for _, r := range played {
			row.add(r.Points)
		}
		rows = append(rows, row)
	}

	sortStandings(rows)
	return rows
}

// TournamentStandings sums every round of a single tournament. Each row
// carries its round id.
func TournamentStandings(rounds []RoundPoints, names map[string]string) []StandingsRow {
	rows := make([]StandingsRow, 0, len(rounds))
	for _, r := range rounds {
		id := r.Points.RoundID
		row := StandingsRow{Username: r.Username, Names: names[r.Username], RoundID: &id}
		row.add(r.Points)
		rows = append(rows, row)
	}

	sortStandings(rows)
	return rows
}

func sortStandings(rows []StandingsRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Total != rows[j].Total {
			return rows[i].Total > rows[j].Total
		}
		return rows[i].Username < rows[j].Username
	})
}
