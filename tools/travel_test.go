package tools

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderkit/travelgate/agents"
	"github.com/wanderkit/travelgate/geo"
	"github.com/wanderkit/travelgate/model"
)

type fixedGeocoder struct {
	coords geo.Coordinates
	err    error
}

func (g fixedGeocoder) Geocode(ctx context.Context, location string) (geo.Coordinates, error) {
	return g.coords, g.err
}

type fixedPlaces struct {
	spots []model.Place
	err   error
}

func (p fixedPlaces) FindPlaces(ctx context.Context, origin geo.Coordinates, radiusKm float64, maxResults int) ([]model.Place, error) {
	return p.spots, p.err
}

func (p fixedPlaces) Configured() bool { return true }

type fixedWeather struct {
	snapshot model.WeatherSnapshot
	err      error
}

func (w fixedWeather) GetWeather(ctx context.Context, origin geo.Coordinates, displayName string) (model.WeatherSnapshot, error) {
	if w.err != nil {
		return model.WeatherSnapshot{}, w.err
	}
	snapshot := w.snapshot
	snapshot.Location = displayName
	return snapshot, nil
}

func (w fixedWeather) Configured() bool { return true }

func newTravelRegistry(t *testing.T) *Registry {
	t.Helper()

	geocoder := fixedGeocoder{coords: geo.Coordinates{Latitude: 48.85, Longitude: 2.35}}
	tourist := agents.NewTouristAgent(geocoder, fixedPlaces{spots: []model.Place{
		{ID: "p1", Name: "Grand Plaza", Rating: 4.1},
		{ID: "p2", Name: "Art Gallery", Rating: 4.8},
	}})
	weather := agents.NewWeatherAgent(geocoder, fixedWeather{snapshot: model.WeatherSnapshot{
		TemperatureC: 27,
		Description:  "clear sky",
	}})

	ctx := context.Background()
	require.NoError(t, tourist.Initialize(ctx))
	require.NoError(t, weather.Initialize(ctx))

	return NewTravelRegistry(tourist, weather)
}

func TestNewTravelRegistry_Catalogue(t *testing.T) {
	r := newTravelRegistry(t)

	require.Len(t, r.Tools(), 5)
	names := make([]string, 0, 5)
	for _, tool := range r.Tools() {
		names = append(names, tool.Name)
	}
	assert.Equal(t, []string{
		"find_tourist_spots",
		"get_weather_data",
		"geocode_location",
		"calculate_distance",
		"get_travel_recommendations",
	}, names)

	require.Len(t, r.Resources(), 6)
	_, ok := r.Resource("weather://openweathermap")
	assert.True(t, ok)
	_, ok = r.Resource("places://google/search")
	assert.True(t, ok)
}

func TestCallTool_FindTouristSpots(t *testing.T) {
	r := newTravelRegistry(t)

	result := r.CallTool(context.Background(), "find_tourist_spots", map[string]any{
		"location": "paris",
	})

	assert.Equal(t, true, result["success"])
	assert.Equal(t, "paris", result["location"])
	spots, ok := result["spots"].([]model.Place)
	require.True(t, ok)
	assert.Len(t, spots, 2)
}

func TestCallTool_FindTouristSpots_MissingLocation(t *testing.T) {
	r := newTravelRegistry(t)

	result := r.CallTool(context.Background(), "find_tourist_spots", map[string]any{})

	assert.Equal(t, "location is required", result["error"])
	assert.Equal(t, "find_tourist_spots", result["tool"])
}

func TestCallTool_GetWeatherData(t *testing.T) {
	r := newTravelRegistry(t)

	result := r.CallTool(context.Background(), "get_weather_data", map[string]any{
		"location":  "paris",
		"latitude":  48.85,
		"longitude": 2.35,
	})

	assert.Equal(t, true, result["success"])
	snapshot, ok := result["weather"].(model.WeatherSnapshot)
	require.True(t, ok)
	assert.Equal(t, "paris", snapshot.Location)
	assert.Equal(t, 27.0, snapshot.TemperatureC)
}

func TestCallTool_GeocodeLocationStub(t *testing.T) {
	r := newTravelRegistry(t)

	result := r.CallTool(context.Background(), "geocode_location", map[string]any{
		"location": "paris",
	})

	assert.Equal(t, true, result["success"])
	assert.Equal(t, 0.0, result["latitude"])
	assert.Equal(t, 0.0, result["longitude"])
	assert.Equal(t, "paris", result["formatted_address"])
	assert.Contains(t, result["place_id"], "mock_place_id_")
	assert.Equal(t, "Mock geocoding - integrate with real service", result["note"])
}

func TestCallTool_CalculateDistance(t *testing.T) {
	r := newTravelRegistry(t)

	// San Francisco to Los Angeles, roughly 559 km.
	args := map[string]any{
		"lat1": 37.7749, "lon1": -122.4194,
		"lat2": 34.0522, "lon2": -118.2437,
	}

	result := r.CallTool(context.Background(), "calculate_distance", args)
	require.Equal(t, true, result["success"])
	assert.InDelta(t, 559, result["distance"].(float64), 5)
	assert.Equal(t, "km", result["unit"])

	args["unit"] = "miles"
	result = r.CallTool(context.Background(), "calculate_distance", args)
	require.Equal(t, true, result["success"])
	assert.InDelta(t, 347, result["distance"].(float64), 5)
	assert.Equal(t, "miles", result["unit"])
}

func TestCallTool_CalculateDistance_MissingCoordinate(t *testing.T) {
	r := newTravelRegistry(t)

	result := r.CallTool(context.Background(), "calculate_distance", map[string]any{
		"lat1": 37.7749, "lon1": -122.4194, "lat2": 34.0522,
	})

	assert.Equal(t, "lat1, lon1, lat2 and lon2 are required", result["error"])
}

func TestCallTool_GetTravelRecommendations(t *testing.T) {
	r := newTravelRegistry(t)

	result := r.CallTool(context.Background(), "get_travel_recommendations", map[string]any{
		"location": "paris",
		"weather_data": map[string]any{
			"temperature": 28,
		},
		"tourist_spots": []any{
			map[string]any{"name": "Grand Plaza", "rating": 4.1},
			map[string]any{"name": "Art Gallery", "rating": 4.8},
		},
	})

	require.Equal(t, true, result["success"])
	assert.Equal(t, []string{
		"Visit Art Gallery - highly rated attraction",
		"Visit Grand Plaza - highly rated attraction",
		"Great weather for outdoor activities",
	}, result["recommendations"])
	assert.Equal(t, []string{"Check hourly forecast for optimal timing"}, result["best_times"])
	assert.Equal(t, []string{
		"Stay hydrated and use sunscreen",
		"Research local customs and etiquette",
		"Keep copies of important documents",
		"Inform your bank about travel plans",
	}, result["travel_tips"])

	itinerary, ok := result["itinerary"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "paris", itinerary["location"])
	assert.NotEmpty(t, itinerary["generated_at"])
}

func TestCallTool_GetTravelRecommendations_TemperatureDefaults(t *testing.T) {
	r := newTravelRegistry(t)

	// Weather data without a temperature key means moderate weather: no
	// temperature lines, but the timing hint still applies.
	result := r.CallTool(context.Background(), "get_travel_recommendations", map[string]any{
		"location":     "paris",
		"weather_data": map[string]any{"humidity": 50},
	})

	require.Equal(t, true, result["success"])
	assert.Empty(t, result["recommendations"])
	assert.Equal(t, []string{"Check hourly forecast for optimal timing"}, result["best_times"])
	assert.Equal(t, []string{
		"Research local customs and etiquette",
		"Keep copies of important documents",
		"Inform your bank about travel plans",
	}, result["travel_tips"])

	// An empty weather object skips the weather block entirely.
	result = r.CallTool(context.Background(), "get_travel_recommendations", map[string]any{
		"location":     "paris",
		"weather_data": map[string]any{},
	})

	require.Equal(t, true, result["success"])
	assert.Empty(t, result["best_times"])
}

var errStub = errors.New("stub failure")

func TestCallTool_ProviderFailureStillSucceeds(t *testing.T) {
	geocoder := fixedGeocoder{err: errStub}
	tourist := agents.NewTouristAgent(geocoder, fixedPlaces{err: errStub})
	weather := agents.NewWeatherAgent(geocoder, fixedWeather{err: errStub})

	ctx := context.Background()
	require.NoError(t, tourist.Initialize(ctx))
	require.NoError(t, weather.Initialize(ctx))

	r := NewTravelRegistry(tourist, weather)

	result := r.CallTool(ctx, "find_tourist_spots", map[string]any{"location": "paris"})
	require.Equal(t, true, result["success"])
	spots := result["spots"].([]model.Place)
	assert.Len(t, spots, 3)

	result = r.CallTool(ctx, "get_weather_data", map[string]any{"location": "paris"})
	require.Equal(t, true, result["success"])
	snapshot := result["weather"].(model.WeatherSnapshot)
	assert.True(t, snapshot.Degraded)
}
