package model

// TravelPlan is the full synthesis of tourist and weather data for one
// destination, built by the supervisor's plan operation.
type TravelPlan struct {
	Location         string          `json:"location"`
	Spots            []Place         `json:"tourist_spots"`
	Weather          WeatherSnapshot `json:"weather_info"`
	Recommendations  []string        `json:"recommendations"`
	BestTimesToVisit []string        `json:"best_times_to_visit"`
	TravelTips       []string        `json:"travel_tips"`
}
