package roundhandlers

import pointsdomain "github.com/Black-And-White-Club/golf-league/app/modules/points/domain"

type pointsResponse struct {
	pointsdomain.Points
	Total int `json:"total"`
}
