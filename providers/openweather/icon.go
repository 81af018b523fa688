package openweather

// iconTable maps OpenWeatherMap icon codes to the gateway's internal icon
// vocabulary. The table is fixed; unknown codes map to the generic cloud.
var iconTable = map[string]string{
	"01d": "sun",             // clear sky day
	"01n": "moon",            // clear sky night
	"02d": "cloud-sun",       // few clouds day
	"02n": "cloud-moon",      // few clouds night
	"03d": "cloud",           // scattered clouds
	"03n": "cloud",           // scattered clouds
	"04d": "cloud",           // broken clouds
	"04n": "cloud",           // broken clouds
	"09d": "cloud-rain",      // shower rain
	"09n": "cloud-rain",      // shower rain
	"10d": "cloud-rain",      // rain day
	"10n": "cloud-rain",      // rain night
	"11d": "cloud-lightning", // thunderstorm
	"11n": "cloud-lightning", // thunderstorm
	"13d": "cloud-snow",      // snow
	"13n": "cloud-snow",      // snow
	"50d": "cloud",           // mist
	"50n": "cloud",           // mist
}

// MapIcon translates a provider icon code into the internal vocabulary.
func MapIcon(code string) string {
	if icon, ok := iconTable[code]; ok {
		return icon
	}
	return "cloud"
}
