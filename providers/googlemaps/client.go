// Package googlemaps adapts the Google Maps Platform geocoding and places
// APIs to the gateway's capability interfaces.
package googlemaps

import (
	"context"
	"errors"
	"fmt"
	"math"

	"googlemaps.github.io/maps"

	"github.com/wanderkit/travelgate/geo"
	"github.com/wanderkit/travelgate/log"
	"github.com/wanderkit/travelgate/model"
)

// ErrNotFound reports that geocoding produced no usable match. Callers must
// treat it as a normal outcome, not a fault.
var ErrNotFound = errors.New("googlemaps: location not found")

// ErrUnavailable reports that the client has no API key configured.
var ErrUnavailable = errors.New("googlemaps: client not configured")

// photoBaseURL is the prefix for place photo links.
const photoBaseURL = "https://maps.googleapis.com/maps/api/place"

// Client handles Google Maps API requests. With an empty API key the client
// is inert: every call reports ErrNotFound or ErrUnavailable so callers fall
// through to their fixed fallback data.
type Client struct {
	apiKey string
	maps   *maps.Client
}

// NewClient creates a new Google Maps API client. An empty apiKey yields an
// unconfigured client rather than an error. Extra options are passed to the
// underlying SDK client (tests use this to point at a local server).
func NewClient(apiKey string, opts ...maps.ClientOption) (*Client, error) {
	if apiKey == "" {
		return &Client{}, nil
	}

	opts = append([]maps.ClientOption{maps.WithAPIKey(apiKey)}, opts...)
	mc, err := maps.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}

	return &Client{apiKey: apiKey, maps: mc}, nil
}

// Configured reports whether an API key was supplied.
func (c *Client) Configured() bool {
	return c.maps != nil
}

// Geocode resolves a location name to coordinates. A missing key, transport
// error, or empty result set all collapse into ErrNotFound.
func (c *Client) Geocode(ctx context.Context, location string) (geo.Coordinates, error) {
	if c.maps == nil {
		return geo.Coordinates{}, ErrNotFound
	}

	results, err := c.maps.Geocode(ctx, &maps.GeocodingRequest{Address: location})
	if err != nil {
		log.Errorf(ctx, "Error geocoding location %q: %v", location, err)
		return geo.Coordinates{}, ErrNotFound
	}
	if len(results) == 0 {
		return geo.Coordinates{}, ErrNotFound
	}

	loc := results[0].Geometry.Location
	return geo.Coordinates{Latitude: loc.Lat, Longitude: loc.Lng}, nil
}

// FindPlaces searches for tourist attractions around origin. If the first
// pass returns fewer than maxResults/2 places, a second pass over the
// broader point_of_interest category fills the list with unseen IDs up to
// maxResults.
func (c *Client) FindPlaces(ctx context.Context, origin geo.Coordinates, radiusKm float64, maxResults int) ([]model.Place, error) {
	if c.maps == nil {
		return nil, ErrUnavailable
	}

	radiusMeters := uint(radiusKm * 1000)

	seen := make(map[string]bool)
	spots, err := c.nearby(ctx, origin, radiusMeters, maps.PlaceTypeTouristAttraction, maxResults, seen)
	if err != nil {
		return nil, err
	}

	if len(spots) < maxResults/2 {
		more, err := c.nearby(ctx, origin, radiusMeters, maps.PlaceType("point_of_interest"), maxResults-len(spots), seen)
		if err != nil {
			return nil, err
		}
		spots = append(spots, more...)
	}

	return spots, nil
}

// nearby runs one nearby-search request and normalizes the results, skipping
// entries whose ID was already seen and entries missing required fields.
func (c *Client) nearby(ctx context.Context, origin geo.Coordinates, radiusMeters uint, placeType maps.PlaceType, limit int, seen map[string]bool) ([]model.Place, error) {
	resp, err := c.maps.NearbySearch(ctx, &maps.NearbySearchRequest{
		Location: &maps.LatLng{Lat: origin.Latitude, Lng: origin.Longitude},
		Radius:   radiusMeters,
		Type:     placeType,
	})
	if err != nil {
		return nil, fmt.Errorf("nearby search (%s) failed: %w", placeType, err)
	}

	var places []model.Place
	for _, raw := range resp.Results {
		if len(places) >= limit {
			break
		}
		place, ok := c.formatPlace(raw, origin)
		if !ok || seen[place.ID] {
			continue
		}
		seen[place.ID] = true
		places = append(places, place)
	}

	return places, nil
}

// formatPlace maps one raw search result into a Place. Results without a
// place ID or geometry are dropped silently. The distance from the query
// origin is always computed locally.
func (c *Client) formatPlace(raw maps.PlacesSearchResult, origin geo.Coordinates) (model.Place, bool) {
	if raw.PlaceID == "" {
		return model.Place{}, false
	}
	coords := geo.Coordinates{
		Latitude:  raw.Geometry.Location.Lat,
		Longitude: raw.Geometry.Location.Lng,
	}
	if coords.Latitude == 0 && coords.Longitude == 0 {
		return model.Place{}, false
	}

	distance := math.Round(geo.Distance(origin, coords)*100) / 100

	var photoURL string
	if len(raw.Photos) > 0 {
		photoURL = fmt.Sprintf("%s/photo?maxwidth=400&photoreference=%s&key=%s",
			photoBaseURL, raw.Photos[0].PhotoReference, c.apiKey)
	}

	var priceLevel *int
	if raw.PriceLevel != 0 {
		level := raw.PriceLevel
		priceLevel = &level
	}

	return model.Place{
		ID:          raw.PlaceID,
		Name:        raw.Name,
		Description: raw.Vicinity,
		Coordinates: coords,
		Rating:      float64(raw.Rating),
		Address:     raw.Vicinity,
		DistanceKm:  distance,
		PhotoURL:    photoURL,
		Categories:  raw.Types,
		PriceLevel:  priceLevel,
		RatingCount: raw.UserRatingsTotal,
	}, true
}
