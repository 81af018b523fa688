package model

// HourlyEntry is one 3-hour slot of the short-range forecast.
type HourlyEntry struct {
	Time         string  `json:"time"`
	TemperatureC float64 `json:"temperature"`
	Description  string  `json:"description"`
	Icon         string  `json:"icon"`
	HumidityPct  int     `json:"humidity"`
	WindSpeedKph float64 `json:"wind_speed"`
}

// DailyEntry is one calendar day aggregated from the forecast entries.
type DailyEntry struct {
	Date        string  `json:"date"`
	DayName     string  `json:"day_name"`
	MaxTempC    float64 `json:"max_temp"`
	MinTempC    float64 `json:"min_temp"`
	AvgTempC    float64 `json:"avg_temp"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
}

// Conditions carries the current precipitation and cloud figures.
type Conditions struct {
	CloudinessPct int     `json:"cloudiness"`
	Rain1hMm      float64 `json:"rain_1h"`
	Snow1hMm      float64 `json:"snow_1h"`
}

// WeatherSnapshot is the normalized weather view for one location.
//
// Hourly holds at most 8 chronological entries, Daily at most 5 with one
// entry per calendar date. When Degraded is true every field carries the
// fixed fallback constants, never a mix of real and substituted values.
type WeatherSnapshot struct {
	Location     string        `json:"location"`
	TemperatureC float64       `json:"temperature"`
	Description  string        `json:"description"`
	HumidityPct  int           `json:"humidity"`
	WindSpeedKph float64       `json:"windSpeed"`
	VisibilityKm float64       `json:"visibility"`
	FeelsLikeC   float64       `json:"feelsLike"`
	PressureHpa  float64       `json:"pressure"`
	UVIndex      float64       `json:"uvIndex"`
	Sunrise      string        `json:"sunrise"`
	Sunset       string        `json:"sunset"`
	Hourly       []HourlyEntry `json:"hourlyForecast"`
	Daily        []DailyEntry  `json:"dailyForecast"`
	Icon         string        `json:"icon"`
	Conditions   Conditions    `json:"conditions"`
	Degraded     bool          `json:"degraded,omitempty"`
	Note         string        `json:"note,omitempty"`
}
