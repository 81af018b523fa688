// Package intent implements the fixed keyword rules used to route free-text
// messages: trigger-phrase location extraction and intent classification.
// The rule sets are deliberately static data; there is no NLP here.
package intent

import "strings"

// Intent is the routing category derived from a message.
type Intent string

const (
	IntentTourist Intent = "tourist"
	IntentWeather Intent = "weather"
	IntentBoth    Intent = "both"
	IntentGeneral Intent = "general"
)

// TouristTriggers are the ordered trigger phrases the tourist agent scans
// for when extracting a location from free text.
var TouristTriggers = []string{"in ", "at ", "near ", "around ", "visit ", "go to "}

// WeatherTriggers are the ordered trigger phrases the weather agent scans
// for. The order matters: the first phrase found in the text wins.
var WeatherTriggers = []string{"in ", "at ", "for ", "weather in ", "forecast for ", "temperature in "}

var touristKeywords = []string{"tourist", "attraction", "visit", "see", "place", "spot"}

var weatherKeywords = []string{"weather", "temperature", "rain", "sunny", "climate", "forecast"}

// ExtractLocation derives a location string from a message or its context.
// A "location" key in the context wins over any parsing. Otherwise the
// case-folded text is scanned for the first trigger phrase in list order;
// on a match, up to the next 3 whitespace-separated tokens before any later
// trigger occurrence are joined with single spaces and trailing punctuation
// is stripped. The result is not validated as a real place name.
func ExtractLocation(text string, msgContext map[string]any, triggers []string) (string, bool) {
	if msgContext != nil {
		if loc, ok := msgContext["location"].(string); ok && loc != "" {
			return loc, true
		}
	}

	lower := strings.ToLower(text)
	for _, trigger := range triggers {
		if !strings.Contains(lower, trigger) {
			continue
		}
		// The segment between the first and the next occurrence of the
		// trigger bounds the candidate tokens.
		segment := strings.Split(lower, trigger)[1]
		fields := strings.Fields(segment)
		if len(fields) > 3 {
			fields = fields[:3]
		}
		loc := strings.TrimRight(strings.Join(fields, " "), ".,!?")
		return loc, loc != ""
	}

	return "", false
}

// Classify buckets a message into one of the four routing intents using the
// fixed tourist and weather keyword sets.
func Classify(text string) Intent {
	lower := strings.ToLower(text)
	tourist := containsAny(lower, touristKeywords)
	weather := containsAny(lower, weatherKeywords)

	switch {
	case tourist && weather:
		return IntentBoth
	case tourist:
		return IntentTourist
	case weather:
		return IntentWeather
	default:
		return IntentGeneral
	}
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
