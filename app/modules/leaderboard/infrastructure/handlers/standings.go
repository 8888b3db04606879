package leaderboardhandlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/Black-And-White-Club/golf-league/app/shared/httpapi"
	"github.com/go-chi/chi/v5"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (h *LeaderboardHandlers) HandleYearlyStandings(w http.ResponseWriter, r *http.Request) {
	topN, ok := h.topN(w, r)
	if !ok {
		return
	}

	rows, err := h.service.YearlyStandings(r.Context(), chi.URLParam(r, "tourYear"), topN)
	if err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, rows)
}

func (h *LeaderboardHandlers) HandleExportYearlyStandings(w http.ResponseWriter, r *http.Request) {
	topN, ok := h.topN(w, r)
	if !ok {
		return
	}
	tourYear := chi.URLParam(r, "tourYear")

	data, err := h.service.ExportYearlyStandings(r.Context(), tourYear, topN)
	if err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="standings-%s.xlsx"`, tourYear))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *LeaderboardHandlers) HandleHandicapChart(w http.ResponseWriter, r *http.Request) {
	png, err := h.service.HandicapChart(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

// topN reads the optional top query parameter. Zero means every round counts.
func (h *LeaderboardHandlers) topN(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("top")
	if raw == "" {
		return h.defaultTopN, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		httpapi.BadRequest(w, "top must be a non-negative integer")
		return 0, false
	}
	return n, true
}
