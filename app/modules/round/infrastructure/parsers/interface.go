package parsers

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	rounddomain "github.com/Black-And-White-Club/golf-league/app/modules/round/domain"
)

// ErrUnsupportedFile is returned for uploads that are neither .csv nor .xlsx.
var ErrUnsupportedFile = errors.New("unsupported file type")

// Parser defines the interface for scorecard parsers.
type Parser interface {
	// Parse reads scorecard data. fileName is only used in error messages.
	Parse(fileData []byte, fileName string) (*Scorecard, error)
}

// Scorecard is the set of player cards found in an uploaded file.
type Scorecard struct {
	Players []PlayerCard
}

// PlayerCard is one player's hole entries. Blank cells stay unrecorded.
type PlayerCard struct {
	Username string
	Strokes  rounddomain.Holes
	Putts    rounddomain.Holes
}

// ParseScorecard parses an upload as CSV or XLSX depending on its extension.
func ParseScorecard(fileData []byte, fileName string) (*Scorecard, error) {
	var p Parser
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".csv":
		p = NewCSVParser()
	case ".xlsx":
		p = NewXLSXParser()
	default:
		return nil, fmt.Errorf("%w: %s (must be .csv or .xlsx)", ErrUnsupportedFile, fileName)
	}
	return p.Parse(fileData, fileName)
}
