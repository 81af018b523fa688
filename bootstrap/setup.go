// Package bootstrap wires the providers, agents, and tool registry together
// from the loaded configuration.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/wanderkit/travelgate/agents"
	"github.com/wanderkit/travelgate/config"
	"github.com/wanderkit/travelgate/log"
	"github.com/wanderkit/travelgate/providers/googlemaps"
	"github.com/wanderkit/travelgate/providers/openweather"
	"github.com/wanderkit/travelgate/tools"
)

// App holds the initialized components of the application.
type App struct {
	Supervisor *agents.Supervisor
	Tourist    *agents.TouristAgent
	Weather    *agents.WeatherAgent
	Registry   *tools.Registry
}

// Setup initializes the application components based on the configuration.
// Missing provider keys are not fatal: the agents fall back to the fixed
// mock data at request time.
func Setup(ctx context.Context, cfg *config.Config) (*App, error) {
	mapsClient, err := googlemaps.NewClient(cfg.Google.MapsAPIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize maps client: %w", err)
	}

	weatherClient := openweather.NewClient(cfg.Weather.APIKey, cfg.Weather.BaseURL)

	tourist := agents.NewTouristAgent(mapsClient, mapsClient)
	weather := agents.NewWeatherAgent(mapsClient, weatherClient)
	supervisor := agents.NewSupervisor(tourist, weather)

	if err := supervisor.Initialize(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize agents: %w", err)
	}

	registry := tools.NewTravelRegistry(tourist, weather)
	log.Infof(ctx, "All agents initialized successfully")

	return &App{
		Supervisor: supervisor,
		Tourist:    tourist,
		Weather:    weather,
		Registry:   registry,
	}, nil
}
