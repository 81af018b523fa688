// Package openweather adapts the OpenWeatherMap current-conditions and
// 5-day/3-hour forecast APIs to the gateway's weather capability.
package openweather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/wanderkit/travelgate/geo"
	"github.com/wanderkit/travelgate/model"
)

// ErrUnavailable reports that the client has no API key configured.
var ErrUnavailable = errors.New("openweather: client not configured")

// DefaultBaseURL is the production OpenWeatherMap API endpoint.
const DefaultBaseURL = "https://api.openweathermap.org/data/2.5"

const (
	maxHourlyEntries = 8
	maxDailyEntries  = 5
)

// Client handles OpenWeatherMap API requests.
type Client struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a new OpenWeatherMap client. An empty baseURL selects
// the production endpoint.
func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		APIKey:     apiKey,
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Configured reports whether an API key was supplied.
func (c *Client) Configured() bool {
	return c.APIKey != ""
}

type weatherCondition struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type mainMetrics struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	Pressure  float64 `json:"pressure"`
	Humidity  int     `json:"humidity"`
}

type windMetrics struct {
	Speed float64 `json:"speed"`
}

type precipitationMetrics struct {
	OneHour float64 `json:"1h"`
}

type currentResponse struct {
	Weather    []weatherCondition `json:"weather"`
	Main       mainMetrics        `json:"main"`
	Wind       windMetrics        `json:"wind"`
	Visibility int                `json:"visibility"` // meters
	UVIndex    float64            `json:"uvi"`
	Clouds     struct {
		All int `json:"all"`
	} `json:"clouds"`
	Rain precipitationMetrics `json:"rain"`
	Snow precipitationMetrics `json:"snow"`
	Sys  struct {
		Sunrise int64 `json:"sunrise"`
		Sunset  int64 `json:"sunset"`
	} `json:"sys"`
}

type forecastEntry struct {
	Dt      int64              `json:"dt"`
	Main    mainMetrics        `json:"main"`
	Weather []weatherCondition `json:"weather"`
	Wind    windMetrics        `json:"wind"`
}

type forecastResponse struct {
	List []forecastEntry `json:"list"`
}

// GetWeather fetches current conditions plus the forecast for origin and
// normalizes them into a snapshot labeled with displayName. Any failure at
// any stage returns an error; callers substitute the fixed fallback snapshot.
func (c *Client) GetWeather(ctx context.Context, origin geo.Coordinates, displayName string) (model.WeatherSnapshot, error) {
	if c.APIKey == "" {
		return model.WeatherSnapshot{}, ErrUnavailable
	}

	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(origin.Latitude, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(origin.Longitude, 'f', -1, 64))

	var current currentResponse
	if err := c.getJSON(ctx, "/weather", query, &current); err != nil {
		return model.WeatherSnapshot{}, err
	}

	var forecast forecastResponse
	if err := c.getJSON(ctx, "/forecast", query, &forecast); err != nil {
		return model.WeatherSnapshot{}, err
	}

	return buildSnapshot(current, forecast, displayName)
}

// getJSON issues one GET request and decodes the JSON body into out.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	q := url.Values{}
	for key, values := range query {
		q[key] = values
	}
	q.Set("appid", c.APIKey)
	q.Set("units", "metric")

	endpoint := fmt.Sprintf("%s%s?%s", c.BaseURL, path, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("weather API request failed with status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// buildSnapshot normalizes the two raw payloads. Hourly keeps the first 8
// forecast entries (3-hour cadence); daily groups entries by calendar date,
// capped to 5 days in chronological order.
func buildSnapshot(current currentResponse, forecast forecastResponse, displayName string) (model.WeatherSnapshot, error) {
	if len(current.Weather) == 0 {
		return model.WeatherSnapshot{}, errors.New("openweather: malformed current conditions payload")
	}

	hourly, err := buildHourly(forecast.List)
	if err != nil {
		return model.WeatherSnapshot{}, err
	}
	daily, err := buildDaily(forecast.List)
	if err != nil {
		return model.WeatherSnapshot{}, err
	}

	return model.WeatherSnapshot{
		Location:     displayName,
		TemperatureC: current.Main.Temp,
		Description:  current.Weather[0].Description,
		HumidityPct:  current.Main.Humidity,
		WindSpeedKph: current.Wind.Speed,
		VisibilityKm: float64(current.Visibility) / 1000,
		FeelsLikeC:   current.Main.FeelsLike,
		PressureHpa:  current.Main.Pressure,
		UVIndex:      current.UVIndex,
		Sunrise:      time.Unix(current.Sys.Sunrise, 0).Format("15:04"),
		Sunset:       time.Unix(current.Sys.Sunset, 0).Format("15:04"),
		Hourly:       hourly,
		Daily:        daily,
		Icon:         MapIcon(current.Weather[0].Icon),
		Conditions: model.Conditions{
			CloudinessPct: current.Clouds.All,
			Rain1hMm:      current.Rain.OneHour,
			Snow1hMm:      current.Snow.OneHour,
		},
	}, nil
}

func buildHourly(entries []forecastEntry) ([]model.HourlyEntry, error) {
	count := len(entries)
	if count > maxHourlyEntries {
		count = maxHourlyEntries
	}

	hourly := make([]model.HourlyEntry, 0, count)
	for _, entry := range entries[:count] {
		if len(entry.Weather) == 0 {
			return nil, errors.New("openweather: forecast entry missing conditions")
		}
		hourly = append(hourly, model.HourlyEntry{
			Time:         time.Unix(entry.Dt, 0).Format("15:04"),
			TemperatureC: math.Round(entry.Main.Temp),
			Description:  entry.Weather[0].Description,
			Icon:         MapIcon(entry.Weather[0].Icon),
			HumidityPct:  entry.Main.Humidity,
			WindSpeedKph: entry.Wind.Speed,
		})
	}
	return hourly, nil
}

type dayAccumulator struct {
	date         time.Time
	temps        []float64
	descriptions []string
	icons        []string
}

func buildDaily(entries []forecastEntry) ([]model.DailyEntry, error) {
	var order []string
	days := make(map[string]*dayAccumulator)

	for _, entry := range entries {
		if len(entry.Weather) == 0 {
			return nil, errors.New("openweather: forecast entry missing conditions")
		}
		ts := time.Unix(entry.Dt, 0)
		key := ts.Format("2006-01-02")
		day, ok := days[key]
		if !ok {
			day = &dayAccumulator{date: ts}
			days[key] = day
			order = append(order, key)
		}
		day.temps = append(day.temps, entry.Main.Temp)
		day.descriptions = append(day.descriptions, entry.Weather[0].Description)
		day.icons = append(day.icons, entry.Weather[0].Icon)
	}

	if len(order) > maxDailyEntries {
		order = order[:maxDailyEntries]
	}

	daily := make([]model.DailyEntry, 0, len(order))
	for _, key := range order {
		day := days[key]

		minTemp, maxTemp, sum := day.temps[0], day.temps[0], 0.0
		for _, temp := range day.temps {
			sum += temp
			if temp < minTemp {
				minTemp = temp
			}
			if temp > maxTemp {
				maxTemp = temp
			}
		}
		avgTemp := sum / float64(len(day.temps))

		daily = append(daily, model.DailyEntry{
			Date:        key,
			DayName:     day.date.Weekday().String(),
			MaxTempC:    math.Round(maxTemp),
			MinTempC:    math.Round(minTemp),
			AvgTempC:    math.Round(avgTemp),
			Description: mode(day.descriptions),
			Icon:        MapIcon(mode(day.icons)),
		})
	}

	return daily, nil
}

// mode returns the most frequent value, breaking ties by first occurrence.
func mode(values []string) string {
	counts := make(map[string]int)
	best, bestCount := "", 0
	for _, value := range values {
		counts[value]++
		if counts[value] > bestCount {
			best, bestCount = value, counts[value]
		}
	}
	return best
}
