// Package agents implements the travel specialists and the supervisor that
// routes free-text messages between them. Each specialist owns one provider
// capability and degrades to fixed fallback data when the provider fails.
package agents

import (
	"context"

	"github.com/wanderkit/travelgate/geo"
	"github.com/wanderkit/travelgate/model"
)

// Geocoder resolves a location name to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, location string) (geo.Coordinates, error)
}

// PlacesProvider searches for places of interest around an origin.
type PlacesProvider interface {
	FindPlaces(ctx context.Context, origin geo.Coordinates, radiusKm float64, maxResults int) ([]model.Place, error)
	Configured() bool
}

// WeatherProvider fetches normalized weather data for an origin.
type WeatherProvider interface {
	GetWeather(ctx context.Context, origin geo.Coordinates, displayName string) (model.WeatherSnapshot, error)
	Configured() bool
}

// notReadyResponse is the reply for any agent queried before Initialize.
func notReadyResponse(agent model.AgentName, message string) model.AgentResponse {
	return model.AgentResponse{
		Agent:   agent,
		Message: message,
		Error:   "agent not ready",
	}
}
