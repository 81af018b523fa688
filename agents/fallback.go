package agents

import (
	"github.com/wanderkit/travelgate/geo"
	"github.com/wanderkit/travelgate/model"
)

// mockTouristSpots is the fixed sample set served when the places provider
// is unavailable. The caller always receives a non-empty list for the spots
// path, never a failure.
func mockTouristSpots() []model.Place {
	return []model.Place{
		{
			ID:          "mock_1",
			Name:        "Historic Downtown",
			Description: "Beautiful historic district with shops and restaurants",
			Coordinates: geo.Coordinates{Latitude: 37.7749, Longitude: -122.4194},
			Rating:      4.5,
			Address:     "Downtown Area",
			DistanceKm:  1.2,
			PhotoURL:    "https://images.unsplash.com/photo-1506905925346-21bda4d32df4",
			Categories:  []string{"tourist_attraction"},
			RatingCount: 1250,
		},
		{
			ID:          "mock_2",
			Name:        "City Museum",
			Description: "Local history and culture museum",
			Coordinates: geo.Coordinates{Latitude: 37.7849, Longitude: -122.4094},
			Rating:      4.2,
			Address:     "Museum District",
			DistanceKm:  2.1,
			PhotoURL:    "https://images.unsplash.com/photo-1518837695005-2083093ee35b",
			Categories:  []string{"museum"},
			RatingCount: 890,
		},
		{
			ID:          "mock_3",
			Name:        "Scenic Overlook",
			Description: "Panoramic views of the city",
			Coordinates: geo.Coordinates{Latitude: 37.7649, Longitude: -122.4294},
			Rating:      4.7,
			Address:     "Hilltop Drive",
			DistanceKm:  3.5,
			PhotoURL:    "https://images.unsplash.com/photo-1501594907352-04cda38ebc29",
			Categories:  []string{"tourist_attraction", "point_of_interest"},
			RatingCount: 2100,
		},
	}
}

// fallbackWeather is the fixed degraded snapshot served when the weather
// provider is unavailable. Every field holds a constant; the hourly and
// daily sequences are always populated.
func fallbackWeather(location string) model.WeatherSnapshot {
	return model.WeatherSnapshot{
		Location:     location,
		TemperatureC: 18,
		Description:  "Weather data unavailable",
		HumidityPct:  65,
		WindSpeedKph: 12,
		VisibilityKm: 10,
		FeelsLikeC:   20,
		PressureHpa:  1013,
		UVIndex:      0,
		Sunrise:      "06:30",
		Sunset:       "19:45",
		Icon:         "cloud",
		Hourly: []model.HourlyEntry{
			{Time: "15:00", TemperatureC: 19, Icon: "sun", Description: "Clear"},
			{Time: "18:00", TemperatureC: 18, Icon: "cloud", Description: "Cloudy"},
			{Time: "21:00", TemperatureC: 17, Icon: "cloud-sun", Description: "Partly Cloudy"},
			{Time: "00:00", TemperatureC: 16, Icon: "cloud-rain", Description: "Light Rain"},
		},
		Daily: []model.DailyEntry{
			{Date: "2024-01-01", DayName: "Today", MaxTempC: 20, MinTempC: 15, AvgTempC: 18, Description: "Partly Cloudy", Icon: "cloud-sun"},
			{Date: "2024-01-02", DayName: "Tomorrow", MaxTempC: 22, MinTempC: 16, AvgTempC: 19, Description: "Sunny", Icon: "sun"},
			{Date: "2024-01-03", DayName: "Wednesday", MaxTempC: 19, MinTempC: 14, AvgTempC: 17, Description: "Rainy", Icon: "cloud-rain"},
		},
		Conditions: model.Conditions{
			CloudinessPct: 50,
			Rain1hMm:      0,
			Snow1hMm:      0,
		},
		Degraded: true,
		Note:     "Weather API unavailable - showing fallback data",
	}
}
