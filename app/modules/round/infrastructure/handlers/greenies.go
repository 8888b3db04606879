package roundhandlers

import (
	"net/http"

	roundservice "github.com/Black-And-White-Club/golf-league/app/modules/round/application"
	"github.com/Black-And-White-Club/golf-league/app/shared/httpapi"
)

func (h *RoundHandlers) HandleCreateGreenie(w http.ResponseWriter, r *http.Request) {
	var req roundservice.GreenieRequest
	if err := httpapi.DecodeJSON(r, &req); err != nil {
		httpapi.BadRequest(w, "invalid request body: "+err.Error())
		return
	}

	greenie, err := h.service.CreateGreenie(r.Context(), req)
	if err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusCreated, greenie)
}

func (h *RoundHandlers) HandleUpdateGreenie(w http.ResponseWriter, r *http.Request) {
	greenieID, ok := pathUUID(w, r, "greenieID")
	if !ok {
		return
	}

	var req roundservice.GreenieRequest
	if err := httpapi.DecodeJSON(r, &req); err != nil {
		httpapi.BadRequest(w, "invalid request body: "+err.Error())
		return
	}

	greenie, err := h.service.UpdateGreenie(r.Context(), greenieID, req)
	if err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, greenie)
}

func (h *RoundHandlers) HandleDeleteGreenie(w http.ResponseWriter, r *http.Request) {
	greenieID, ok := pathUUID(w, r, "greenieID")
	if !ok {
		return
	}

	if err := h.service.DeleteGreenie(r.Context(), greenieID); err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
