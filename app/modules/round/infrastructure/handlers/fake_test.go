package roundhandlers

import (
	"context"

	pointsdomain "github.com/Black-And-White-Club/golf-league/app/modules/points/domain"
	roundservice "github.com/Black-And-White-Club/golf-league/app/modules/round/application"
	"github.com/google/uuid"
)

// FakeService is a programmable round service.
type FakeService struct {
	CreateRoundFunc    func(ctx context.Context, req roundservice.CreateRoundRequest) (*roundservice.RoundView, error)
	GetRoundFunc       func(ctx context.Context, roundID uuid.UUID) (*roundservice.RoundView, error)
	UpdateRoundFunc    func(ctx context.Context, roundID uuid.UUID, req roundservice.UpdateRoundRequest) (*roundservice.RoundView, error)
	DeleteRoundFunc    func(ctx context.Context, roundID uuid.UUID) error
	GetRoundPointsFunc func(ctx context.Context, roundID uuid.UUID) (*pointsdomain.Points, error)
	CreateGreenieFunc  func(ctx context.Context, req roundservice.GreenieRequest) (*roundservice.GreenieView, error)
	UpdateGreenieFunc  func(ctx context.Context, greenieID uuid.UUID, req roundservice.GreenieRequest) (*roundservice.GreenieView, error)
	DeleteGreenieFunc  func(ctx context.Context, greenieID uuid.UUID) error
}

func (f *FakeService) CreateRound(ctx context.Context, req roundservice.CreateRoundRequest) (*roundservice.RoundView, error) {
	if f.CreateRoundFunc != nil {
		return f.CreateRoundFunc(ctx, req)
	}
	return &roundservice.RoundView{ID: uuid.New(), TournamentDate: req.TournamentDate, Username: req.Username}, nil
}

func (f *FakeService) GetRound(ctx context.Context, roundID uuid.UUID) (*roundservice.RoundView, error) {
	if f.GetRoundFunc != nil {
		return f.GetRoundFunc(ctx, roundID)
	}
	return &roundservice.RoundView{ID: roundID}, nil
}

func (f *FakeService) UpdateRound(ctx context.Context, roundID uuid.UUID, req roundservice.UpdateRoundRequest) (*roundservice.RoundView, error) {
	if f.UpdateRoundFunc != nil {
		return f.UpdateRoundFunc(ctx, roundID, req)
	}
	return &roundservice.RoundView{ID: roundID, Strokes: req.Strokes, Putts: req.Putts}, nil
}

func (f *FakeService) DeleteRound(ctx context.Context, roundID uuid.UUID) error {
	if f.DeleteRoundFunc != nil {
		return f.DeleteRoundFunc(ctx, roundID)
	}
	return nil
}

func (f *FakeService) GetRoundPoints(ctx context.Context, roundID uuid.UUID) (*pointsdomain.Points, error) {
	if f.GetRoundPointsFunc != nil {
		return f.GetRoundPointsFunc(ctx, roundID)
	}
	return &pointsdomain.Points{RoundID: roundID}, nil
}

func (f *FakeService) CreateGreenie(ctx context.Context, req roundservice.GreenieRequest) (*roundservice.GreenieView, error) {
	if f.CreateGreenieFunc != nil {
		return f.CreateGreenieFunc(ctx, req)
	}
	return &roundservice.GreenieView{ID: uuid.New(), RoundID: req.RoundID, Hole: req.Hole, Feet: req.Feet, Inches: req.Inches}, nil
}

func (f *FakeService) UpdateGreenie(ctx context.Context, greenieID uuid.UUID, req roundservice.GreenieRequest) (*roundservice.GreenieView, error) {
	if f.UpdateGreenieFunc != nil {
		return f.UpdateGreenieFunc(ctx, greenieID, req)
	}
	return &roundservice.GreenieView{ID: greenieID, Hole: req.Hole, Feet: req.Feet, Inches: req.Inches}, nil
}

func (f *FakeService) DeleteGreenie(ctx context.Context, greenieID uuid.UUID) error {
	if f.DeleteGreenieFunc != nil {
		return f.DeleteGreenieFunc(ctx, greenieID)
	}
	return nil
}

var _ roundservice.Service = (*FakeService)(nil)
