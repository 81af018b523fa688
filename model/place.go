// Package model holds the normalized entities exchanged between the
// provider adapters, the agents, and the tool registry. All entities are
// created fresh per request and discarded with the response.
package model

import "github.com/wanderkit/travelgate/geo"

// Place is a normalized point of interest produced by the places adapter.
// DistanceKm is always computed locally from the query origin, never taken
// from the provider.
type Place struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Coordinates geo.Coordinates `json:"coordinates"`
	Rating      float64         `json:"rating"`
	Address     string          `json:"address"`
	DistanceKm  float64         `json:"distance"`
	PhotoURL    string          `json:"photo_url,omitempty"`
	Categories  []string        `json:"types"`
	PriceLevel  *int            `json:"price_level,omitempty"`
	RatingCount int             `json:"user_ratings_total"`
}
