package googlemaps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"googlemaps.github.io/maps"

	"github.com/wanderkit/travelgate/geo"
)

func TestNewClient_Unconfigured(t *testing.T) {
	client, err := NewClient("")
	require.NoError(t, err)
	assert.False(t, client.Configured())

	_, err = client.Geocode(context.Background(), "paris")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = client.FindPlaces(context.Background(), geo.Coordinates{}, 5, 20)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func placeJSON(id, name string, lat, lng, rating float64) string {
	return fmt.Sprintf(`{
		"place_id": %q,
		"name": %q,
		"geometry": {"location": {"lat": %f, "lng": %f}},
		"rating": %f,
		"vicinity": "somewhere nearby",
		"types": ["tourist_attraction"],
		"user_ratings_total": 100
	}`, id, name, lat, lng, rating)
}

func newTestServer(t *testing.T) (*Client, *httptest.Server, *[]string) {
	t.Helper()

	var requestedTypes []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/maps/api/geocode/json":
			fmt.Fprint(w, `{"status": "OK", "results": [{"geometry": {"location": {"lat": 48.8566, "lng": 2.3522}}}]}`)
		case "/maps/api/place/nearbysearch/json":
			placeType := r.URL.Query().Get("type")
			requestedTypes = append(requestedTypes, placeType)
			switch placeType {
			case "tourist_attraction":
				// One good result, one missing its place_id (dropped).
				fmt.Fprintf(w, `{"status": "OK", "html_attributions": [], "results": [%s, %s]}`,
					placeJSON("spot-1", "Old Town", 48.86, 2.35, 4.6),
					`{"name": "No ID", "geometry": {"location": {"lat": 48.85, "lng": 2.34}}}`)
			default:
				// Duplicate of spot-1 plus a new one.
				fmt.Fprintf(w, `{"status": "OK", "html_attributions": [], "results": [%s, %s]}`,
					placeJSON("spot-1", "Old Town", 48.86, 2.35, 4.6),
					placeJSON("spot-2", "River Walk", 48.87, 2.36, 4.1))
			}
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	client, err := NewClient("test-key", maps.WithBaseURL(server.URL))
	require.NoError(t, err)
	return client, server, &requestedTypes
}

func TestClient_Geocode(t *testing.T) {
	client, _, _ := newTestServer(t)

	coords, err := client.Geocode(context.Background(), "paris")
	require.NoError(t, err)
	assert.InDelta(t, 48.8566, coords.Latitude, 0.0001)
	assert.InDelta(t, 2.3522, coords.Longitude, 0.0001)
}

func TestClient_FindPlaces_SecondPassAndDedupe(t *testing.T) {
	client, _, requestedTypes := newTestServer(t)
	origin := geo.Coordinates{Latitude: 48.8566, Longitude: 2.3522}

	spots, err := client.FindPlaces(context.Background(), origin, 5, 20)
	require.NoError(t, err)

	// One attraction survived the first pass (< maxResults/2), so the
	// broader category was queried and deduplicated against it.
	assert.Equal(t, []string{"tourist_attraction", "point_of_interest"}, *requestedTypes)
	require.Len(t, spots, 2)
	assert.Equal(t, "spot-1", spots[0].ID)
	assert.Equal(t, "spot-2", spots[1].ID)

	// Distance is computed locally from the query origin.
	for _, spot := range spots {
		assert.InDelta(t, geo.Distance(origin, spot.Coordinates), spot.DistanceKm, 0.01)
	}
}

func TestClient_FindPlaces_UniqueIDs(t *testing.T) {
	client, _, _ := newTestServer(t)

	spots, err := client.FindPlaces(context.Background(), geo.Coordinates{Latitude: 48.85, Longitude: 2.35}, 5, 20)
	require.NoError(t, err)

	ids := make(map[string]bool)
	for _, spot := range spots {
		assert.False(t, ids[spot.ID], "duplicate id %s", spot.ID)
		ids[spot.ID] = true
	}
}
