package roundhandlers

import (
	"log/slog"
	"net/http"

	roundservice "github.com/Black-And-White-Club/golf-league/app/modules/round/application"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
)

// Handlers is the HTTP surface of the round module.
type Handlers interface {
	HandleCreateRound(w http.ResponseWriter, r *http.Request)
	HandleGetRound(w http.ResponseWriter, r *http.Request)
	HandleUpdateRound(w http.ResponseWriter, r *http.Request)
	HandleDeleteRound(w http.ResponseWriter, r *http.Request)
	HandleGetRoundPoints(w http.ResponseWriter, r *http.Request)

	HandleCreateGreenie(w http.ResponseWriter, r *http.Request)
	HandleUpdateGreenie(w http.ResponseWriter, r *http.Request)
	HandleDeleteGreenie(w http.ResponseWriter, r *http.Request)
}

// RoundHandlers implements Handlers on top of the round service.
type RoundHandlers struct {
	service roundservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewRoundHandlers creates a new RoundHandlers instance.
func NewRoundHandlers(service roundservice.Service, logger *slog.Logger, tracer trace.Tracer) *RoundHandlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &RoundHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
	}
}

var _ Handlers = (*RoundHandlers)(nil)

// Routes registers the round and greenie endpoints.
func Routes(r chi.Router, h Handlers) {
	r.Route("/rounds", func(r chi.Router) {
		r.Post("/", h.HandleCreateRound)
		r.Route("/{roundID}", func(r chi.Router) {
			r.Get("/", h.HandleGetRound)
			r.Put("/", h.HandleUpdateRound)
			r.Delete("/", h.HandleDeleteRound)
			r.Get("/points", h.HandleGetRoundPoints)
		})
	})
	r.Route("/greenies", func(r chi.Router) {
		r.Post("/", h.HandleCreateGreenie)
		r.Put("/{greenieID}", h.HandleUpdateGreenie)
		r.Delete("/{greenieID}", h.HandleDeleteGreenie)
	})
}
