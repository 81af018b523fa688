package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"math"
	"sort"
	"time"

	"github.com/wanderkit/travelgate/agents"
	"github.com/wanderkit/travelgate/geo"
	"github.com/wanderkit/travelgate/model"
)

// NewTravelRegistry builds the fixed travel catalogue: six resources and five
// tools wired to the specialist agents and the distance utility.
func NewTravelRegistry(tourist *agents.TouristAgent, weather *agents.WeatherAgent) *Registry {
	r := NewRegistry()
	registerTravelResources(r)
	registerTravelTools(r, tourist, weather)
	return r
}

func registerTravelResources(r *Registry) {
	r.RegisterResource(Resource{
		URI:         "places://google/search",
		Name:        "Google Places Search",
		Description: "Search for tourist attractions and points of interest using Google Places API",
		MimeType:    "application/json",
		Metadata: map[string]any{
			"api":          "google_places",
			"version":      "v1",
			"capabilities": []string{"nearby_search", "text_search", "place_details"},
			"rate_limits": map[string]any{
				"requests_per_second": 10,
				"requests_per_day":    100000,
			},
		},
	})

	r.RegisterResource(Resource{
		URI:         "db://tourist_attractions",
		Name:        "Tourist Attractions Database",
		Description: "Local database of curated tourist attractions with ratings and reviews",
		MimeType:    "application/json",
		Metadata: map[string]any{
			"source":        "local_database",
			"last_updated":  time.Now().Format(time.RFC3339),
			"total_records": 50000,
			"coverage":      "global",
		},
	})

	r.RegisterResource(Resource{
		URI:         "guides://travel/destinations",
		Name:        "Travel Destination Guides",
		Description: "Comprehensive travel guides with insider tips and recommendations",
		MimeType:    "text/markdown",
		Metadata: map[string]any{
			"content_type": "travel_guides",
			"languages":    []string{"en", "es", "fr", "de"},
			"destinations": 500,
		},
	})

	r.RegisterResource(Resource{
		URI:         "weather://openweathermap",
		Name:        "OpenWeatherMap API",
		Description: "Real-time weather data and forecasts from OpenWeatherMap",
		MimeType:    "application/json",
		Metadata: map[string]any{
			"api":              "openweathermap",
			"version":          "2.5",
			"capabilities":     []string{"current_weather", "forecast", "historical"},
			"update_frequency": "10_minutes",
		},
	})

	r.RegisterResource(Resource{
		URI:         "climate://historical_data",
		Name:        "Historical Climate Data",
		Description: "Historical weather patterns and climate data for travel planning",
		MimeType:    "application/json",
		Metadata: map[string]any{
			"data_source":         "meteorological_services",
			"time_range":          "1990-2024",
			"geographic_coverage": "global",
			"parameters":          []string{"temperature", "precipitation", "humidity", "wind"},
		},
	})

	r.RegisterResource(Resource{
		URI:         "alerts://weather_warnings",
		Name:        "Weather Alerts and Warnings",
		Description: "Real-time weather alerts and travel advisories",
		MimeType:    "application/json",
		Metadata: map[string]any{
			"sources":          []string{"national_weather_services", "aviation_weather"},
			"alert_types":      []string{"severe_weather", "travel_advisories", "natural_disasters"},
			"update_frequency": "real_time",
		},
	})
}

func registerTravelTools(r *Registry, tourist *agents.TouristAgent, weather *agents.WeatherAgent) {
	r.RegisterTool(Tool{
		Name:        "find_tourist_spots",
		Description: "Find tourist attractions near a given location",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"location":    map[string]any{"type": "string", "description": "Location name or address"},
				"latitude":    map[string]any{"type": "number", "description": "Latitude coordinate"},
				"longitude":   map[string]any{"type": "number", "description": "Longitude coordinate"},
				"radius_km":   map[string]any{"type": "number", "default": 5, "description": "Search radius in kilometers"},
				"max_results": map[string]any{"type": "integer", "default": 20, "description": "Maximum number of results"},
				"types":       map[string]any{"type": "array", "items": map[string]any{"type": "string"}, "description": "Types of attractions to find"},
			},
			"required": []string{"location"},
		},
		OutputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"spots": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"id":          map[string]any{"type": "string"},
							"name":        map[string]any{"type": "string"},
							"description": map[string]any{"type": "string"},
							"latitude":    map[string]any{"type": "number"},
							"longitude":   map[string]any{"type": "number"},
							"rating":      map[string]any{"type": "number"},
							"distance":    map[string]any{"type": "number"},
						},
					},
				},
			},
		},
	}, handleFindTouristSpots(tourist))

	r.RegisterTool(Tool{
		Name:        "get_weather_data",
		Description: "Get current weather and forecast for a location",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"location":         map[string]any{"type": "string", "description": "Location name or address"},
				"latitude":         map[string]any{"type": "number", "description": "Latitude coordinate"},
				"longitude":        map[string]any{"type": "number", "description": "Longitude coordinate"},
				"include_forecast": map[string]any{"type": "boolean", "default": true, "description": "Include weather forecast"},
				"forecast_days":    map[string]any{"type": "integer", "default": 5, "description": "Number of forecast days"},
			},
			"required": []string{"location"},
		},
		OutputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"current":  map[string]any{"type": "object"},
				"forecast": map[string]any{"type": "array"},
				"alerts":   map[string]any{"type": "array"},
			},
		},
	}, handleGetWeatherData(weather))

	r.RegisterTool(Tool{
		Name:        "geocode_location",
		Description: "Convert location name to coordinates",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"location": map[string]any{"type": "string", "description": "Location name or address"},
			},
			"required": []string{"location"},
		},
		OutputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"latitude":          map[string]any{"type": "number"},
				"longitude":         map[string]any{"type": "number"},
				"formatted_address": map[string]any{"type": "string"},
				"place_id":          map[string]any{"type": "string"},
			},
		},
	}, handleGeocodeLocation)

	r.RegisterTool(Tool{
		Name:        "calculate_distance",
		Description: "Calculate distance between two coordinates",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"lat1": map[string]any{"type": "number"},
				"lon1": map[string]any{"type": "number"},
				"lat2": map[string]any{"type": "number"},
				"lon2": map[string]any{"type": "number"},
				"unit": map[string]any{"type": "string", "enum": []string{"km", "miles"}, "default": "km"},
			},
			"required": []string{"lat1", "lon1", "lat2", "lon2"},
		},
		OutputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"distance": map[string]any{"type": "number"},
				"unit":     map[string]any{"type": "string"},
			},
		},
	}, handleCalculateDistance)

	r.RegisterTool(Tool{
		Name:        "get_travel_recommendations",
		Description: "Get personalized travel recommendations based on weather and attractions",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"location":           map[string]any{"type": "string"},
				"weather_data":       map[string]any{"type": "object"},
				"tourist_spots":      map[string]any{"type": "array"},
				"travel_preferences": map[string]any{"type": "object"},
				"trip_duration":      map[string]any{"type": "integer", "description": "Trip duration in days"},
			},
			"required": []string{"location"},
		},
		OutputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"recommendations": map[string]any{"type": "array"},
				"best_times":      map[string]any{"type": "array"},
				"travel_tips":     map[string]any{"type": "array"},
				"itinerary":       map[string]any{"type": "object"},
			},
		},
	}, handleGetTravelRecommendations)
}

// decodeArgs maps loosely typed call arguments onto a typed request via a
// JSON round trip.
func decodeArgs(args map[string]any, out any) error {
	raw, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

type touristSpotsArgs struct {
	Location   string   `json:"location"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
	RadiusKm   float64  `json:"radius_km"`
	MaxResults int      `json:"max_results"`
}

func handleFindTouristSpots(tourist *agents.TouristAgent) Handler {
	return func(ctx context.Context, args map[string]any) (map[string]any, error) {
		var req touristSpotsArgs
		if err := decodeArgs(args, &req); err != nil {
			return nil, err
		}
		if req.Location == "" {
			return nil, errors.New("location is required")
		}
		if req.RadiusKm <= 0 {
			req.RadiusKm = 5
		}
		if req.MaxResults <= 0 {
			req.MaxResults = 20
		}

		query := agents.TouristQuery{
			Location:   req.Location,
			RadiusKm:   req.RadiusKm,
			MaxResults: req.MaxResults,
		}
		if req.Latitude != nil && req.Longitude != nil {
			query.Coordinates = &geo.Coordinates{Latitude: *req.Latitude, Longitude: *req.Longitude}
		}

		spots := tourist.FindTouristSpots(ctx, query)
		return map[string]any{
			"success":  true,
			"spots":    spots,
			"tool":     "find_tourist_spots",
			"location": req.Location,
		}, nil
	}
}

type weatherDataArgs struct {
	Location  string   `json:"location"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func handleGetWeatherData(weather *agents.WeatherAgent) Handler {
	return func(ctx context.Context, args map[string]any) (map[string]any, error) {
		var req weatherDataArgs
		if err := decodeArgs(args, &req); err != nil {
			return nil, err
		}
		if req.Location == "" {
			return nil, errors.New("location is required")
		}

		query := agents.WeatherQuery{Location: req.Location}
		if req.Latitude != nil && req.Longitude != nil {
			query.Coordinates = &geo.Coordinates{Latitude: *req.Latitude, Longitude: *req.Longitude}
		}

		snapshot := weather.GetWeatherInfo(ctx, query)
		return map[string]any{
			"success":  true,
			"weather":  snapshot,
			"tool":     "get_weather_data",
			"location": req.Location,
		}, nil
	}
}

// handleGeocodeLocation is a deliberate stub: it returns a placeholder
// coordinate pair and a note instead of calling the real geocoder.
func handleGeocodeLocation(ctx context.Context, args map[string]any) (map[string]any, error) {
	var req struct {
		Location string `json:"location"`
	}
	if err := decodeArgs(args, &req); err != nil {
		return nil, err
	}
	if req.Location == "" {
		return nil, errors.New("location is required")
	}

	h := fnv.New32a()
	h.Write([]byte(req.Location))

	return map[string]any{
		"success":           true,
		"latitude":          0.0,
		"longitude":         0.0,
		"formatted_address": req.Location,
		"place_id":          fmt.Sprintf("mock_place_id_%d", h.Sum32()),
		"tool":              "geocode_location",
		"note":              "Mock geocoding - integrate with real service",
	}, nil
}

type distanceArgs struct {
	Lat1 *float64 `json:"lat1"`
	Lon1 *float64 `json:"lon1"`
	Lat2 *float64 `json:"lat2"`
	Lon2 *float64 `json:"lon2"`
	Unit string   `json:"unit"`
}

func handleCalculateDistance(ctx context.Context, args map[string]any) (map[string]any, error) {
	var req distanceArgs
	if err := decodeArgs(args, &req); err != nil {
		return nil, err
	}
	if req.Lat1 == nil || req.Lon1 == nil || req.Lat2 == nil || req.Lon2 == nil {
		return nil, errors.New("lat1, lon1, lat2 and lon2 are required")
	}
	if req.Unit == "" {
		req.Unit = "km"
	}

	a := geo.Coordinates{Latitude: *req.Lat1, Longitude: *req.Lon1}
	b := geo.Coordinates{Latitude: *req.Lat2, Longitude: *req.Lon2}

	var distance float64
	switch req.Unit {
	case "km":
		distance = geo.Distance(a, b)
	case "miles":
		distance = geo.DistanceMiles(a, b)
	default:
		return nil, fmt.Errorf("unknown unit %q", req.Unit)
	}

	return map[string]any{
		"success":  true,
		"distance": math.Round(distance*100) / 100,
		"unit":     req.Unit,
		"tool":     "calculate_distance",
	}, nil
}

type recommendationArgs struct {
	Location string `json:"location"`
	// WeatherData stays a loose map: callers may pass partial objects, and
	// a missing temperature key means moderate weather, not 0 degrees.
	WeatherData  map[string]any `json:"weather_data"`
	TouristSpots []model.Place  `json:"tourist_spots"`
}

// handleGetTravelRecommendations synthesizes a reduced recommendation set
// from pre-supplied weather and spots data. It deliberately implements a
// narrower rule subset than the supervisor's own travel-plan synthesis.
func handleGetTravelRecommendations(ctx context.Context, args map[string]any) (map[string]any, error) {
	var req recommendationArgs
	if err := decodeArgs(args, &req); err != nil {
		return nil, err
	}
	if req.Location == "" {
		return nil, errors.New("location is required")
	}

	var recommendations, travelTips, bestTimes []string

	if len(req.TouristSpots) > 0 {
		topSpots := make([]model.Place, len(req.TouristSpots))
		copy(topSpots, req.TouristSpots)
		sort.SliceStable(topSpots, func(i, j int) bool {
			return topSpots[i].Rating > topSpots[j].Rating
		})
		if len(topSpots) > 3 {
			topSpots = topSpots[:3]
		}
		for _, spot := range topSpots {
			recommendations = append(recommendations, fmt.Sprintf("Visit %s - highly rated attraction", spot.Name))
		}
	}

	if len(req.WeatherData) > 0 {
		temperature := 20.0
		if v, ok := req.WeatherData["temperature"].(float64); ok {
			temperature = v
		}
		if temperature > 25 {
			recommendations = append(recommendations, "Great weather for outdoor activities")
			travelTips = append(travelTips, "Stay hydrated and use sunscreen")
		} else if temperature < 10 {
			recommendations = append(recommendations, "Pack warm clothes for cold weather")
			travelTips = append(travelTips, "Consider indoor attractions")
		}
		bestTimes = append(bestTimes, "Check hourly forecast for optimal timing")
	}

	travelTips = append(travelTips,
		"Research local customs and etiquette",
		"Keep copies of important documents",
		"Inform your bank about travel plans",
	)

	activities := recommendations
	if len(activities) > 5 {
		activities = activities[:5]
	}

	return map[string]any{
		"success":         true,
		"recommendations": recommendations,
		"best_times":      bestTimes,
		"travel_tips":     travelTips,
		"itinerary": map[string]any{
			"location":     req.Location,
			"generated_at": time.Now().Format(time.RFC3339),
			"activities":   activities,
		},
		"tool": "get_travel_recommendations",
	}, nil
}
