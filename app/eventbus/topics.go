package eventbus

const (
	RoundCreatedV1       = "golf.round.created.v1"
	RoundUpdatedV1       = "golf.round.updated.v1"
	RoundDeletedV1       = "golf.round.deleted.v1"
	GreenieChangedV1     = "golf.greenie.changed.v1"
	PointsRecalculatedV1 = "golf.points.recalculated.v1"
)

// RoundEventPayload is published for round create, update and delete.
type RoundEventPayload struct {
	RoundID        string `json:"round_id"`
	TournamentDate string `json:"tournament_date"`
	Username       string `json:"username"`
	NetStrokes     int    `json:"net_strokes"`
	IsComplete     bool   `json:"is_complete"`
}

// GreenieEventPayload is published when a greenie is created, edited or deleted.
type GreenieEventPayload struct {
	GreenieID string `json:"greenie_id"`
	RoundID   string `json:"round_id"`
	Action    string `json:"action"`
	Greenies  int    `json:"greenies_points"`
}

// PointsRecalculatedPayload is published after a tournament's placements are re-ranked.
type PointsRecalculatedPayload struct {
	TournamentDate string `json:"tournament_date"`
	Trigger        string `json:"trigger"`
}
