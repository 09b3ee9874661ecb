package transport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"metreg/internal/calendar"
	"metreg/internal/config"
	"metreg/internal/metrics"
	"metreg/internal/schema"
	"metreg/internal/view"
	"metreg/model"
)

// Dependencies holds all injected dependencies for the HTTP transport
// layer.
type Dependencies struct {
	Config         *config.Config
	Logger         *zap.Logger
	Secret         []byte
	Schema         *schema.Registry
	Projector      *view.Projector
	Metrics        *metrics.Aggregator
	Calendar       *calendar.Aggregator
	MetricsHandler http.Handler
}

// NewRouter creates a chi.Router with the middleware pipeline and all route
// registrations. Health and metrics endpoints bypass authentication.
func NewRouter(deps Dependencies) chi.Router {
	r := chi.NewRouter()

	r.Use(Recovery(deps.Logger))
	r.Use(CORS(deps.Config.Server.CORS))
	r.Use(RequestID)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		WriteError(w, model.NewNotFoundError("unknown route"))
	})

	r.Get("/health", handleHealth)
	if deps.Config.Observability.Metrics.Enabled && deps.MetricsHandler != nil {
		r.Method(http.MethodGet, deps.Config.Observability.Metrics.Path, deps.MetricsHandler)
	}

	h := &handlers{
		schema:    deps.Schema,
		projector: deps.Projector,
		metrics:   deps.Metrics,
		calendar:  deps.Calendar,
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(Authenticate(deps.Secret))

		r.Get("/schema", h.handleSchema)
		r.Get("/equipment", h.handleEquipment)
		r.Get("/equipment/metrics", h.handleMetrics)
		r.Get("/calendar", h.handleCalendar)
		r.Get("/calendar/export", h.handleCalendarExport)

		r.Get("/view", h.handleViewState)
		r.Put("/view/search", h.handleSearch)
		r.Put("/view/filters/{field}", h.handleSetFilter)
		r.Delete("/view/filters/{field}", h.handleDeleteFilter)
		r.Put("/view/columns/{field}", h.handleToggleColumn)
		r.Post("/view/quick-filter", h.handleQuickFilter)
		r.Post("/view/reset", h.handleReset)
	})

	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
