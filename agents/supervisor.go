package agents

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/wanderkit/travelgate/geo"
	"github.com/wanderkit/travelgate/intent"
	"github.com/wanderkit/travelgate/log"
	"github.com/wanderkit/travelgate/model"
)

// ErrNotReady is returned by travel-plan creation before initialization.
var ErrNotReady = errors.New("supervisor agent not ready")

// Supervisor routes messages between the tourist and weather specialists and
// builds full travel plans. It holds no per-request state.
type Supervisor struct {
	tourist *TouristAgent
	weather *WeatherAgent
	ready   bool
}

// NewSupervisor creates a new supervisor over the two specialists.
func NewSupervisor(tourist *TouristAgent, weather *WeatherAgent) *Supervisor {
	return &Supervisor{
		tourist: tourist,
		weather: weather,
	}
}

// Initialize brings up both specialists and marks the supervisor ready.
func (s *Supervisor) Initialize(ctx context.Context) error {
	log.Infof(ctx, "Initializing Supervisor Agent...")
	if err := s.tourist.Initialize(ctx); err != nil {
		return fmt.Errorf("tourist agent init failed: %w", err)
	}
	if err := s.weather.Initialize(ctx); err != nil {
		return fmt.Errorf("weather agent init failed: %w", err)
	}
	s.ready = true
	log.Infof(ctx, "Supervisor Agent initialized successfully")
	return nil
}

// Ready reports whether the supervisor and both specialists are initialized.
func (s *Supervisor) Ready() bool {
	return s.ready && s.tourist.Ready() && s.weather.Ready()
}

// ProcessMessage classifies the message and dispatches to one or both
// specialists. Dispatch is sequential: the tourist call completes before the
// weather call begins.
func (s *Supervisor) ProcessMessage(ctx context.Context, message string, msgContext map[string]any) model.AgentResponse {
	if !s.Ready() {
		return notReadyResponse(model.AgentSupervisor, "Please wait while the system initializes")
	}

	log.Infof(ctx, "Supervisor processing message: %s", message)

	switch intent.Classify(message) {
	case intent.IntentBoth:
		touristResp := s.tourist.ProcessMessage(ctx, message, msgContext)
		weatherResp := s.weather.ProcessMessage(ctx, message, msgContext)
		return mergeResponses(touristResp, weatherResp)

	case intent.IntentTourist:
		touristResp := s.tourist.ProcessMessage(ctx, message, msgContext)
		return model.AgentResponse{
			Agent:           model.AgentSupervisor,
			Message:         "I've consulted with our Tourist agent for you.",
			Payload:         touristResp.Payload,
			Recommendations: touristResp.Recommendations,
		}

	case intent.IntentWeather:
		weatherResp := s.weather.ProcessMessage(ctx, message, msgContext)
		return model.AgentResponse{
			Agent:           model.AgentSupervisor,
			Message:         "I've consulted with our Weather agent for you.",
			Payload:         weatherResp.Payload,
			Recommendations: weatherResp.Recommendations,
		}

	default:
		return model.AgentResponse{
			Agent:   model.AgentSupervisor,
			Message: "I'm here to help you plan your travel! I can coordinate with our specialist agents to provide information about tourist attractions and weather conditions. What would you like to know about your destination?",
			Payload: model.CapabilitiesPayload{
				Capabilities: []string{
					"Find tourist attractions and points of interest",
					"Get weather forecasts and climate information",
					"Create comprehensive travel plans",
					"Provide personalized recommendations",
				},
			},
		}
	}
}

// mergeResponses folds both specialist replies into one supervisor response.
// Only payloads that carried data are combined; an onboarding reply leaves
// its side of the combined payload nil so the wire response never shows a
// fabricated zero-value snapshot or spot list.
func mergeResponses(touristResp, weatherResp model.AgentResponse) model.AgentResponse {
	combined := model.CombinedPayload{}
	if spots, ok := touristResp.Payload.(model.SpotsPayload); ok {
		combined.Spots = spots.Spots
	}
	if weather, ok := weatherResp.Payload.(model.WeatherPayload); ok {
		snapshot := weather.Weather
		combined.Weather = &snapshot
	}

	recommendations := append([]string{}, touristResp.Recommendations...)
	recommendations = append(recommendations, weatherResp.Recommendations...)

	return model.AgentResponse{
		Agent:           model.AgentSupervisor,
		Message:         "I've coordinated with both our Tourist and Weather agents for you.",
		Payload:         combined,
		Recommendations: recommendations,
	}
}

// CreateTravelPlan always runs both structured queries (tourist first, then
// weather) regardless of keyword classification, then synthesizes the
// combined recommendations, timing advice, and travel tips.
func (s *Supervisor) CreateTravelPlan(ctx context.Context, location string, coords *geo.Coordinates) (model.TravelPlan, error) {
	if !s.Ready() {
		return model.TravelPlan{}, ErrNotReady
	}

	log.Infof(ctx, "Creating travel plan for: %s", location)

	spots := s.tourist.FindTouristSpots(ctx, TouristQuery{Location: location, Coordinates: coords})
	weather := s.weather.GetWeatherInfo(ctx, WeatherQuery{Location: location, Coordinates: coords})

	plan := model.TravelPlan{
		Location:         location,
		Spots:            spots,
		Weather:          weather,
		Recommendations:  planRecommendations(spots, weather),
		BestTimesToVisit: bestTimesToVisit(weather),
		TravelTips:       travelTips(spots, weather),
	}

	log.Infof(ctx, "Travel plan created successfully for %s", location)
	return plan, nil
}

// planRecommendations phrases the top spots and weather outlook for
// planning. These rules deliberately differ from the weather agent's own
// recommendation set.
func planRecommendations(spots []model.Place, weather model.WeatherSnapshot) []string {
	var recommendations []string

	topRated := make([]model.Place, len(spots))
	copy(topRated, spots)
	sort.SliceStable(topRated, func(i, j int) bool {
		return topRated[i].Rating > topRated[j].Rating
	})
	if len(topRated) > 3 {
		topRated = topRated[:3]
	}
	for _, spot := range topRated {
		description := spot.Description
		if description == "" {
			description = "Highly rated attraction"
		}
		recommendations = append(recommendations, fmt.Sprintf("Visit %s - %s", spot.Name, description))
	}

	if weather.TemperatureC > 25 {
		recommendations = append(recommendations, "Great weather for outdoor activities and sightseeing!")
	} else if weather.TemperatureC < 10 {
		recommendations = append(recommendations, "Pack warm clothes and consider indoor attractions.")
	}

	description := strings.ToLower(weather.Description)
	if strings.Contains(description, "rain") {
		recommendations = append(recommendations, "Bring an umbrella and have backup indoor plans.")
	} else if strings.Contains(description, "sunny") {
		recommendations = append(recommendations, "Perfect weather for exploring outdoor attractions!")
	}

	return recommendations
}

// bestTimesToVisit collects the first 3 hourly slots without a rain icon,
// then always appends the 3 generic timing tips.
func bestTimesToVisit(weather model.WeatherSnapshot) []string {
	var timing []string

	var clearHours []string
	for _, hour := range weather.Hourly {
		if !strings.Contains(hour.Icon, "rain") {
			clearHours = append(clearHours, hour.Time)
		}
	}
	if len(clearHours) > 3 {
		clearHours = clearHours[:3]
	}
	if len(clearHours) > 0 {
		timing = append(timing, fmt.Sprintf("Best times to visit: %s", strings.Join(clearHours, ", ")))
	}

	timing = append(timing,
		"Early morning (8-10 AM) for fewer crowds",
		"Late afternoon (4-6 PM) for golden hour photos",
		"Check local peak hours and plan accordingly",
	)

	return timing
}

// travelTips always starts with the 3 general tips, then appends weather and
// attraction driven ones.
func travelTips(spots []model.Place, weather model.WeatherSnapshot) []string {
	tips := []string{
		"Research local customs and etiquette",
		"Keep copies of important documents",
		"Inform your bank about travel plans",
	}

	if weather.TemperatureC > 30 {
		tips = append(tips, "Stay hydrated and wear sunscreen")
	} else if weather.TemperatureC < 5 {
		tips = append(tips, "Dress in layers and protect against frostbite")
	}
	if weather.HumidityPct > 70 {
		tips = append(tips, "Expect high humidity, dress in breathable fabrics")
	}

	if len(spots) > 5 {
		tips = append(tips, "Consider getting a city pass for multiple attractions")
	}
	for _, spot := range spots {
		if spot.Rating > 4.5 {
			tips = append(tips, "Book tickets in advance for popular attractions")
			break
		}
	}

	return tips
}
