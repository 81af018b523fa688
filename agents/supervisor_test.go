package agents

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderkit/travelgate/geo"
	"github.com/wanderkit/travelgate/model"
)

func newSupervisor(t *testing.T, places *stubPlaces, weather *stubWeather) *Supervisor {
	t.Helper()
	geocoder := &stubGeocoder{coords: geo.Coordinates{Latitude: 48.85, Longitude: 2.35}}
	supervisor := NewSupervisor(
		NewTouristAgent(geocoder, places),
		NewWeatherAgent(geocoder, weather),
	)
	require.NoError(t, supervisor.Initialize(context.Background()))
	require.True(t, supervisor.Ready())
	return supervisor
}

func TestSupervisor_NotReady(t *testing.T) {
	supervisor := NewSupervisor(
		NewTouristAgent(&stubGeocoder{}, &stubPlaces{configured: true}),
		NewWeatherAgent(&stubGeocoder{}, &stubWeather{configured: true}),
	)

	resp := supervisor.ProcessMessage(context.Background(), "places to visit in rome", nil)
	assert.Equal(t, "agent not ready", resp.Error)

	_, err := supervisor.CreateTravelPlan(context.Background(), "rome", nil)
	assert.ErrorIs(t, err, ErrNotReady)
}

func TestSupervisor_ProcessMessage_TouristOnly(t *testing.T) {
	places := &stubPlaces{spots: samplePlaces(), configured: true}
	weather := &stubWeather{snapshot: sampleWeather(), configured: true}
	supervisor := newSupervisor(t, places, weather)

	resp := supervisor.ProcessMessage(context.Background(), "best places to visit in rome", nil)

	assert.Equal(t, model.AgentSupervisor, resp.Agent)
	assert.Equal(t, "I've consulted with our Tourist agent for you.", resp.Message)
	_, ok := resp.Payload.(model.SpotsPayload)
	assert.True(t, ok)
	assert.Equal(t, 1, places.calls)
	assert.Equal(t, 0, weather.calls)
}

func TestSupervisor_ProcessMessage_WeatherOnly(t *testing.T) {
	places := &stubPlaces{spots: samplePlaces(), configured: true}
	weather := &stubWeather{snapshot: sampleWeather(), configured: true}
	supervisor := newSupervisor(t, places, weather)

	resp := supervisor.ProcessMessage(context.Background(), "what is the forecast for rome?", nil)

	assert.Equal(t, "I've consulted with our Weather agent for you.", resp.Message)
	_, ok := resp.Payload.(model.WeatherPayload)
	assert.True(t, ok)
	assert.Equal(t, 0, places.calls)
	assert.Equal(t, 1, weather.calls)
}

func TestSupervisor_ProcessMessage_BothInvokesBothSpecialists(t *testing.T) {
	places := &stubPlaces{spots: samplePlaces(), configured: true}
	weather := &stubWeather{snapshot: sampleWeather(), configured: true}
	supervisor := newSupervisor(t, places, weather)

	resp := supervisor.ProcessMessage(context.Background(), "places to visit in rome and will it rain", nil)

	assert.Equal(t, "I've coordinated with both our Tourist and Weather agents for you.", resp.Message)
	payload, ok := resp.Payload.(model.CombinedPayload)
	require.True(t, ok)
	assert.Len(t, payload.Spots, 4)
	require.NotNil(t, payload.Weather)
	assert.NotZero(t, payload.Weather.TemperatureC)
	assert.Equal(t, 1, places.calls)
	assert.Equal(t, 1, weather.calls)
}

func TestSupervisor_ProcessMessage_BothWithOneSidedLocation(t *testing.T) {
	places := &stubPlaces{spots: samplePlaces(), configured: true}
	weather := &stubWeather{snapshot: sampleWeather(), configured: true}
	supervisor := newSupervisor(t, places, weather)

	// The tourist trigger fires but no weather trigger does, so the weather
	// side answers with onboarding and must not contribute a zero snapshot.
	resp := supervisor.ProcessMessage(context.Background(), "should I visit paris? hope no rain!", nil)

	payload, ok := resp.Payload.(model.CombinedPayload)
	require.True(t, ok)
	assert.Len(t, payload.Spots, 4)
	assert.Nil(t, payload.Weather)
	assert.Equal(t, 1, places.calls)
	assert.Equal(t, 0, weather.calls)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	var wire map[string]any
	require.NoError(t, json.Unmarshal(raw, &wire))
	assert.Contains(t, wire, "spots")
	assert.NotContains(t, wire, "weather")
}

func TestSupervisor_ProcessMessage_General(t *testing.T) {
	places := &stubPlaces{configured: true}
	weather := &stubWeather{configured: true}
	supervisor := newSupervisor(t, places, weather)

	resp := supervisor.ProcessMessage(context.Background(), "hello!", nil)

	payload, ok := resp.Payload.(model.CapabilitiesPayload)
	require.True(t, ok)
	assert.Len(t, payload.Capabilities, 4)
	assert.Equal(t, 0, places.calls)
	assert.Equal(t, 0, weather.calls)
}

func TestSupervisor_CreateTravelPlan(t *testing.T) {
	places := &stubPlaces{spots: samplePlaces(), configured: true}
	weather := &stubWeather{snapshot: sampleWeather(), configured: true}
	supervisor := newSupervisor(t, places, weather)

	plan, err := supervisor.CreateTravelPlan(context.Background(), "rome", nil)
	require.NoError(t, err)

	assert.Equal(t, "rome", plan.Location)
	assert.Len(t, plan.Spots, 4)
	assert.Equal(t, "rome", plan.Weather.Location)

	// Top-3 by rating with the description fallback for empty ones.
	assert.Equal(t, []string{
		"Visit Art Gallery - Modern art",
		"Visit Botanic Garden - Highly rated attraction",
		"Visit Old Harbor - Waterfront walk",
		"Great weather for outdoor activities and sightseeing!",
	}, plan.Recommendations)

	// First 3 non-rain hourly slots plus the 3 fixed timing tips.
	assert.Equal(t, []string{
		"Best times to visit: 09:00, 15:00, 18:00",
		"Early morning (8-10 AM) for fewer crowds",
		"Late afternoon (4-6 PM) for golden hour photos",
		"Check local peak hours and plan accordingly",
	}, plan.BestTimesToVisit)

	assert.Equal(t, []string{
		"Research local customs and etiquette",
		"Keep copies of important documents",
		"Inform your bank about travel plans",
		"Book tickets in advance for popular attractions",
	}, plan.TravelTips)
}

func TestSupervisor_CreateTravelPlan_AllProvidersDown(t *testing.T) {
	places := &stubPlaces{err: errProviderDown, configured: false}
	weather := &stubWeather{err: errProviderDown, configured: false}
	supervisor := newSupervisor(t, places, weather)

	plan, err := supervisor.CreateTravelPlan(context.Background(), "rome", nil)
	require.NoError(t, err)

	// Fallback data throughout, yet the plan still carries the 3 general tips.
	assert.Len(t, plan.Spots, 3)
	assert.True(t, plan.Weather.Degraded)
	assert.Contains(t, plan.TravelTips, "Research local customs and etiquette")
	assert.Contains(t, plan.TravelTips, "Keep copies of important documents")
	assert.Contains(t, plan.TravelTips, "Inform your bank about travel plans")
}
