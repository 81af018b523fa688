package agents

import (
	"context"
	"fmt"
	"sort"

	"github.com/wanderkit/travelgate/geo"
	"github.com/wanderkit/travelgate/intent"
	"github.com/wanderkit/travelgate/log"
	"github.com/wanderkit/travelgate/model"
)

const (
	defaultRadiusKm   = 50.0
	defaultMaxResults = 20
)

// TouristAgent answers tourist-attraction questions using a geocoder and a
// places provider.
type TouristAgent struct {
	geocoder Geocoder
	places   PlacesProvider
	ready    bool
}

// NewTouristAgent creates a new tourist agent.
func NewTouristAgent(geocoder Geocoder, places PlacesProvider) *TouristAgent {
	return &TouristAgent{
		geocoder: geocoder,
		places:   places,
	}
}

// Initialize checks credential presence and marks the agent ready. No
// network calls happen here.
func (a *TouristAgent) Initialize(ctx context.Context) error {
	log.Infof(ctx, "Initializing Tourist Agent...")
	if !a.places.Configured() {
		log.Warnf(ctx, "Google Maps API key not found. Using mock data.")
	}
	a.ready = true
	log.Infof(ctx, "Tourist Agent initialized successfully")
	return nil
}

// Ready reports whether Initialize has run.
func (a *TouristAgent) Ready() bool {
	return a.ready
}

// TouristQuery is a structured tourist-spots request. Coordinates, when set,
// bypass geocoding. Zero RadiusKm and MaxResults select the defaults.
type TouristQuery struct {
	Location    string
	Coordinates *geo.Coordinates
	RadiusKm    float64
	MaxResults  int
}

// ProcessMessage extracts a location from free text and answers with nearby
// attractions. Without a location it returns an onboarding prompt instead.
func (a *TouristAgent) ProcessMessage(ctx context.Context, message string, msgContext map[string]any) model.AgentResponse {
	if !a.ready {
		return notReadyResponse(model.AgentTourist, "Please wait while the system initializes")
	}

	log.Infof(ctx, "Tourist agent processing message: %s", message)

	location, found := intent.ExtractLocation(message, msgContext, intent.TouristTriggers)
	if !found {
		return model.AgentResponse{
			Agent:   model.AgentTourist,
			Message: "I can help you find amazing tourist attractions! Please tell me the location you're interested in visiting.",
			Payload: model.OnboardingPayload{
				Suggestions: []string{
					"Ask me about tourist spots in any city",
					"I can find attractions, museums, landmarks, and more",
					"Just mention a location and I'll find the best places to visit",
				},
			},
		}
	}

	spots := a.FindTouristSpots(ctx, TouristQuery{Location: location})
	return model.AgentResponse{
		Agent:           model.AgentTourist,
		Message:         fmt.Sprintf("I found %d tourist attractions near %s", len(spots), location),
		Payload:         model.SpotsPayload{Spots: spots},
		Recommendations: spotRecommendations(spots),
	}
}

// FindTouristSpots resolves the query origin and searches for places. Any
// provider failure, including a geocoding miss, yields the fixed mock set.
// The result is always a list, never an error.
func (a *TouristAgent) FindTouristSpots(ctx context.Context, q TouristQuery) []model.Place {
	log.Infof(ctx, "Finding tourist spots near: %s", q.Location)

	if q.RadiusKm <= 0 {
		q.RadiusKm = defaultRadiusKm
	}
	if q.MaxResults <= 0 {
		q.MaxResults = defaultMaxResults
	}

	origin := geo.Coordinates{}
	if q.Coordinates != nil {
		origin = *q.Coordinates
	} else {
		coords, err := a.geocoder.Geocode(ctx, q.Location)
		if err != nil {
			log.Warnf(ctx, "Geocoding failed for %q, serving mock spots: %v", q.Location, err)
			return mockTouristSpots()
		}
		origin = coords
	}

	spots, err := a.places.FindPlaces(ctx, origin, q.RadiusKm, q.MaxResults)
	if err != nil {
		log.Errorf(ctx, "Error finding tourist spots: %v", err)
		return mockTouristSpots()
	}
	return spots
}

// spotRecommendations emits one line for each of the top-3 spots by rating
// and the nearest-2 spots by distance, both stable against the input order.
func spotRecommendations(spots []model.Place) []string {
	if len(spots) == 0 {
		return []string{"No tourist spots found in this area."}
	}

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
		recommendations = append(recommendations, fmt.Sprintf("Highly rated: %s (%.1f stars)", spot.Name, spot.Rating))
	}

	closest := make([]model.Place, len(spots))
	copy(closest, spots)
	sort.SliceStable(closest, func(i, j int) bool {
		return closest[i].DistanceKm < closest[j].DistanceKm
	})
	if len(closest) > 2 {
		closest = closest[:2]
	}
	for _, spot := range closest {
		recommendations = append(recommendations, fmt.Sprintf("Nearby: %s (%.1f km away)", spot.Name, spot.DistanceKm))
	}

	return recommendations
}
