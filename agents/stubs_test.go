package agents

import (
	"context"
	"errors"

	"github.com/wanderkit/travelgate/geo"
	"github.com/wanderkit/travelgate/model"
)

type stubGeocoder struct {
	coords geo.Coordinates
	err    error
	calls  int
}

func (g *stubGeocoder) Geocode(ctx context.Context, location string) (geo.Coordinates, error) {
	g.calls++
	return g.coords, g.err
}

type stubPlaces struct {
	spots      []model.Place
	err        error
	configured bool
	calls      int
	lastRadius float64
	lastMax    int
}

func (p *stubPlaces) FindPlaces(ctx context.Context, origin geo.Coordinates, radiusKm float64, maxResults int) ([]model.Place, error) {
	p.calls++
	p.lastRadius = radiusKm
	p.lastMax = maxResults
	return p.spots, p.err
}

func (p *stubPlaces) Configured() bool {
	return p.configured
}

type stubWeather struct {
	snapshot   model.WeatherSnapshot
	err        error
	configured bool
	calls      int
}

func (w *stubWeather) GetWeather(ctx context.Context, origin geo.Coordinates, displayName string) (model.WeatherSnapshot, error) {
	w.calls++
	if w.err != nil {
		return model.WeatherSnapshot{}, w.err
	}
	snapshot := w.snapshot
	snapshot.Location = displayName
	return snapshot, nil
}

func (w *stubWeather) Configured() bool {
	return w.configured
}

var errProviderDown = errors.New("provider down")

func samplePlaces() []model.Place {
	return []model.Place{
		{ID: "p1", Name: "Grand Plaza", Description: "Central square", Rating: 4.1, DistanceKm: 0.5},
		{ID: "p2", Name: "Art Gallery", Description: "Modern art", Rating: 4.8, DistanceKm: 2.4},
		{ID: "p3", Name: "Old Harbor", Description: "Waterfront walk", Rating: 4.4, DistanceKm: 1.1},
		{ID: "p4", Name: "Botanic Garden", Description: "", Rating: 4.8, DistanceKm: 3.9},
	}
}

func sampleWeather() model.WeatherSnapshot {
	return model.WeatherSnapshot{
		TemperatureC: 27,
		Description:  "clear sky",
		HumidityPct:  45,
		WindSpeedKph: 10,
		Icon:         "sun",
		Hourly: []model.HourlyEntry{
			{Time: "09:00", Icon: "sun"},
			{Time: "12:00", Icon: "cloud-rain"},
			{Time: "15:00", Icon: "cloud-sun"},
			{Time: "18:00", Icon: "cloud"},
			{Time: "21:00", Icon: "moon"},
		},
	}
}
