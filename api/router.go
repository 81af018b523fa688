// Package api provides the HTTP surface of the travel gateway: a thin
// request/response mapping over the agents and the tool registry.
package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/wanderkit/travelgate/agents"
	"github.com/wanderkit/travelgate/tools"
)

// RouterConfig holds the dependencies of the router.
type RouterConfig struct {
	Supervisor *agents.Supervisor
	Tourist    *agents.TouristAgent
	Weather    *agents.WeatherAgent
	Registry   *tools.Registry
}

// NewRouter creates a chi router with all gateway routes configured.
func NewRouter(cfg RouterConfig) *chi.Mux {
	h := &handlers{
		supervisor: cfg.Supervisor,
		tourist:    cfg.Tourist,
		weather:    cfg.Weather,
		registry:   cfg.Registry,
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(chimiddleware.Recoverer)

	r.Get("/", h.root)
	r.Get("/health", h.health)

	r.Route("/api", func(r chi.Router) {
		r.Post("/tourist-spots", h.touristSpots)
		r.Post("/weather", h.weatherInfo)
		r.Post("/agent-message", h.agentMessage)
		r.Post("/travel-plan", h.travelPlan)

		r.Route("/mcp", func(r chi.Router) {
			r.Get("/resources", h.mcpResources)
			r.Get("/tools", h.mcpTools)
			r.Post("/tools/call", h.mcpToolCall)
		})
	})

	return r
}
