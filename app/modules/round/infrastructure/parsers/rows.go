package parsers

import (
	"fmt"
	"strconv"
	"strings"

	rounddomain "github.com/Black-And-White-Club/golf-league/app/modules/round/domain"
)

type columnLayout struct {
	username int
	strokes  [rounddomain.HoleCount]int
	putts    [rounddomain.HoleCount]int
}

// parseRows turns a header row and player rows into cards. The header must
// have a "username" (or "player") column and hole columns "1".."18"; putt
// columns are "p1".."p18" and optional.
func parseRows(rows [][]string, fileName string) (*Scorecard, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("%s: must contain a header and at least one player row", fileName)
	}

	layout, err := readHeader(rows[0])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}

	card := &Scorecard{}
	for i, row := range rows[1:] {
		username := cell(row, layout.username)
		if username == "" {
			continue
		}

		player := PlayerCard{Username: username}
		for h := range rounddomain.HoleCount {
			if player.Strokes[h], err = intCell(row, layout.strokes[h]); err != nil {
				return nil, fmt.Errorf("%s: row %d hole %d strokes: %w", fileName, i+2, h+1, err)
			}
			if player.Putts[h], err = intCell(row, layout.putts[h]); err != nil {
				return nil, fmt.Errorf("%s: row %d hole %d putts: %w", fileName, i+2, h+1, err)
			}
		}
		card.Players = append(card.Players, player)
	}

	if len(card.Players) == 0 {
		return nil, fmt.Errorf("%s: no player rows found", fileName)
	}
	return card, nil
}

func readHeader(header []string) (columnLayout, error) {
	layout := columnLayout{username: -1}
	for h := range rounddomain.HoleCount {
		layout.strokes[h] = -1
		layout.putts[h] = -1
	}

	for i, col := range header {
		name := strings.ToLower(strings.TrimSpace(col))
		switch {
		case name == "username" || name == "player":
			layout.username = i
		case strings.HasPrefix(name, "p"):
			if n, err := strconv.Atoi(name[1:]); err == nil && n >= 1 && n <= rounddomain.HoleCount {
				layout.putts[n-1] = i
			}
		default:
			if n, err := strconv.Atoi(name); err == nil && n >= 1 && n <= rounddomain.HoleCount {
				layout.strokes[n-1] = i
			}
		}
	}

	if layout.username < 0 {
		return layout, fmt.Errorf("header has no username column")
	}
	for h, idx := range layout.strokes {
		if idx < 0 {
			return layout, fmt.Errorf("header has no column for hole %d", h+1)
		}
	}
	return layout, nil
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func intCell(row []string, idx int) (*int, error) {
	raw := cell(row, idx)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%q is not a number", raw)
	}
	return &n, nil
}
