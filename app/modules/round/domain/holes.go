package rounddomain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// HoleCount is the number of holes in a round.
const HoleCount = 18

// Holes holds one nullable value per hole. Index 0 is hole 1; a nil entry
// means the hole has not been played yet.
//
// On the wire and in the database a Holes value is an object keyed
// "hole1".."hole18", which keeps the 1-based naming at the boundary only.
type Holes [HoleCount]*int

// NewHoles builds a Holes value from a dense slice; values beyond 18 are ignored.
func NewHoles(values ...int) Holes {
	var h Holes
	for i, v := range values {
		if i >= HoleCount {
			break
		}
		h[i] = &v
	}
	return h
}

// At returns the value for a 1-based hole number.
func (h Holes) At(hole int) (int, bool) {
	if hole < 1 || hole > HoleCount || h[hole-1] == nil {
		return 0, false
	}
	return *h[hole-1], true
}

// Recorded returns how many holes have a value.
func (h Holes) Recorded() int {
	n := 0
	for _, v := range h {
		if v != nil {
			n++
		}
	}
	return n
}

// Complete reports whether every hole has a value.
func (h Holes) Complete() bool {
	return h.Recorded() == HoleCount
}

// Sum adds up the recorded holes.
func (h Holes) Sum() int {
	total := 0
	for _, v := range h {
		if v != nil {
			total += *v
		}
	}
	return total
}

func holeKey(i int) string {
	return "hole" + strconv.Itoa(i+1)
}

// MarshalJSON encodes the holes as {"hole1": n, ..., "hole18": null}.
func (h Holes) MarshalJSON() ([]byte, error) {
	m := make(map[string]*int, HoleCount)
	for i, v := range h {
		m[holeKey(i)] = v
	}
	return json.Marshal(m)
}

// UnmarshalJSON decodes a hole-keyed object. Only the exact keys
// "hole1".."hole18" are accepted, so no two keys can name the same hole.
func (h *Holes) UnmarshalJSON(data []byte) error {
	var m map[string]*int
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	var out Holes
	for k, v := range m {
		if !strings.HasPrefix(k, "hole") {
			return fmt.Errorf("unknown hole key %q", k)
		}
		n, err := strconv.Atoi(strings.TrimPrefix(k, "hole"))
		if err != nil || n < 1 || n > HoleCount || k != holeKey(n-1) {
			return fmt.Errorf("unknown hole key %q", k)
		}
		out[n-1] = v
	}
	*h = out
	return nil
}

// Value implements driver.Valuer so bun stores Holes as jsonb.
func (h Holes) Value() (driver.Value, error) {
	b, err := h.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (h *Holes) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*h = Holes{}
		return nil
	case []byte:
		return h.UnmarshalJSON(v)
	case string:
		return h.UnmarshalJSON([]byte(v))
	default:
		return fmt.Errorf("rounddomain.Holes: cannot scan %T", src)
	}
}
