package roundhandlers

import (
	"net/http"

	roundservice "github.com/Black-And-White-Club/golf-league/app/modules/round/application"
	"github.com/Black-And-White-Club/golf-league/app/shared/httpapi"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (h *RoundHandlers) HandleCreateRound(w http.ResponseWriter, r *http.Request) {
	var req roundservice.CreateRoundRequest
	if err := httpapi.DecodeJSON(r, &req); err != nil {
		httpapi.BadRequest(w, "invalid request body: "+err.Error())
		return
	}

	round, err := h.service.CreateRound(r.Context(), req)
	if err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusCreated, round)
}

func (h *RoundHandlers) HandleGetRound(w http.ResponseWriter, r *http.Request) {
	roundID, ok := pathUUID(w, r, "roundID")
	if !ok {
		return
	}

	round, err := h.service.GetRound(r.Context(), roundID)
	if err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, round)
}

func (h *RoundHandlers) HandleUpdateRound(w http.ResponseWriter, r *http.Request) {
	roundID, ok := pathUUID(w, r, "roundID")
	if !ok {
		return
	}

	var req roundservice.UpdateRoundRequest
	if err := httpapi.DecodeJSON(r, &req); err != nil {
		httpapi.BadRequest(w, "invalid request body: "+err.Error())
		return
	}

	round, err := h.service.UpdateRound(r.Context(), roundID, req)
	if err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, round)
}

func (h *RoundHandlers) HandleDeleteRound(w http.ResponseWriter, r *http.Request) {
	roundID, ok := pathUUID(w, r, "roundID")
	if !ok {
		return
	}

	if err := h.service.DeleteRound(r.Context(), roundID); err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *RoundHandlers) HandleGetRoundPoints(w http.ResponseWriter, r *http.Request) {
	roundID, ok := pathUUID(w, r, "roundID")
	if !ok {
		return
	}

	points, err := h.service.GetRoundPoints(r.Context(), roundID)
	if err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, pointsResponse{Points: *points, Total: points.Total()})
}

func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		httpapi.BadRequest(w, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}
