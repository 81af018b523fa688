package agents

import (
	"context"
	"fmt"
	"strings"

	"github.com/wanderkit/travelgate/geo"
	"github.com/wanderkit/travelgate/intent"
	"github.com/wanderkit/travelgate/log"
	"github.com/wanderkit/travelgate/model"
)

// WeatherAgent answers weather questions using a geocoder and a weather
// provider.
type WeatherAgent struct {
	geocoder Geocoder
	weather  WeatherProvider
	ready    bool
}

// NewWeatherAgent creates a new weather agent.
func NewWeatherAgent(geocoder Geocoder, weather WeatherProvider) *WeatherAgent {
	return &WeatherAgent{
		geocoder: geocoder,
		weather:  weather,
	}
}

// Initialize checks credential presence and marks the agent ready.
func (a *WeatherAgent) Initialize(ctx context.Context) error {
	log.Infof(ctx, "Initializing Weather Agent...")
	if !a.weather.Configured() {
		log.Warnf(ctx, "OpenWeatherMap API key not found. Using fallback data.")
	}
	a.ready = true
	log.Infof(ctx, "Weather Agent initialized successfully")
	return nil
}

// Ready reports whether Initialize has run.
func (a *WeatherAgent) Ready() bool {
	return a.ready
}

// WeatherQuery is a structured weather request. Coordinates, when set,
// bypass geocoding.
type WeatherQuery struct {
	Location    string
	Coordinates *geo.Coordinates
}

// ProcessMessage extracts a location from free text and answers with the
// current weather. Without a location it returns an onboarding prompt.
func (a *WeatherAgent) ProcessMessage(ctx context.Context, message string, msgContext map[string]any) model.AgentResponse {
	if !a.ready {
		return notReadyResponse(model.AgentWeather, "Please wait while the system initializes")
	}

	log.Infof(ctx, "Weather agent processing message: %s", message)

	location, found := intent.ExtractLocation(message, msgContext, intent.WeatherTriggers)
	if !found {
		return model.AgentResponse{
			Agent:   model.AgentWeather,
			Message: "I can provide weather information for any location! Please tell me where you'd like to check the weather.",
			Payload: model.OnboardingPayload{
				Suggestions: []string{
					"Ask me about current weather in any city",
					"I can provide forecasts and weather conditions",
					"Just mention a location and I'll get the latest weather data",
				},
			},
		}
	}

	snapshot := a.GetWeatherInfo(ctx, WeatherQuery{Location: location})
	return model.AgentResponse{
		Agent:           model.AgentWeather,
		Message:         fmt.Sprintf("Here's the current weather information for %s", location),
		Payload:         model.WeatherPayload{Weather: snapshot},
		Recommendations: weatherRecommendations(snapshot),
	}
}

// GetWeatherInfo resolves the query origin and fetches weather data. Any
// failure, including a geocoding miss, yields the fixed degraded snapshot.
func (a *WeatherAgent) GetWeatherInfo(ctx context.Context, q WeatherQuery) model.WeatherSnapshot {
	log.Infof(ctx, "Getting weather info for: %s", q.Location)

	origin := geo.Coordinates{}
	if q.Coordinates != nil {
		origin = *q.Coordinates
	} else {
		coords, err := a.geocoder.Geocode(ctx, q.Location)
		if err != nil {
			log.Warnf(ctx, "Geocoding failed for %q, serving fallback weather: %v", q.Location, err)
			return fallbackWeather(q.Location)
		}
		origin = coords
	}

	snapshot, err := a.weather.GetWeather(ctx, origin, q.Location)
	if err != nil {
		log.Errorf(ctx, "Error getting weather info: %v", err)
		return fallbackWeather(q.Location)
	}
	return snapshot
}

// weatherRecommendations evaluates the independent rule groups (temperature,
// precipitation, humidity, wind, combined conditions) each in isolation, so
// a response may carry one line from every applicable group.
func weatherRecommendations(w model.WeatherSnapshot) []string {
	var recommendations []string

	temp := w.TemperatureC
	description := strings.ToLower(w.Description)
	humidity := w.HumidityPct
	windSpeed := w.WindSpeedKph

	switch {
	case temp > 30:
		recommendations = append(recommendations, "Very hot weather - stay hydrated, wear sunscreen, and seek shade during peak hours")
	case temp > 25:
		recommendations = append(recommendations, "Great weather for outdoor activities and sightseeing!")
	case temp > 15:
		recommendations = append(recommendations, "Pleasant weather - perfect for walking tours and outdoor dining")
	case temp > 5:
		recommendations = append(recommendations, "Cool weather - bring a jacket for outdoor activities")
	default:
		recommendations = append(recommendations, "Cold weather - dress warmly and consider indoor attractions")
	}

	switch {
	case strings.Contains(description, "rain") || strings.Contains(description, "drizzle"):
		recommendations = append(recommendations, "Rain expected - bring an umbrella and have backup indoor plans")
	case strings.Contains(description, "snow"):
		recommendations = append(recommendations, "Snow conditions - wear appropriate footwear and warm clothing")
	case strings.Contains(description, "clear") || strings.Contains(description, "sunny"):
		recommendations = append(recommendations, "Clear skies - perfect for photography and outdoor exploration")
	}

	switch {
	case humidity > 80:
		recommendations = append(recommendations, "High humidity - wear breathable fabrics and stay cool")
	case humidity < 30:
		recommendations = append(recommendations, "Low humidity - stay hydrated and use moisturizer")
	}

	switch {
	case windSpeed > 30:
		recommendations = append(recommendations, "Strong winds - be cautious with outdoor activities and flying objects")
	case windSpeed > 15:
		recommendations = append(recommendations, "Windy conditions - secure loose items and dress accordingly")
	}

	switch {
	case temp > 20 && temp < 30 && strings.Contains(description, "clear"):
		recommendations = append(recommendations, "Perfect conditions for outdoor sports and beach activities")
	case strings.Contains(description, "cloud") && temp > 15:
		recommendations = append(recommendations, "Great lighting for photography with soft, diffused clouds")
	}

	return recommendations
}
