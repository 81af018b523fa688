package model

import "encoding/json"

// AgentName identifies which agent produced a response.
type AgentName string

const (
	AgentSupervisor AgentName = "supervisor"
	AgentTourist    AgentName = "tourist"
	AgentWeather    AgentName = "weather"
)

// Payload is the closed set of response payload variants. Exactly one
// variant is attached to an AgentResponse; consumers switch on the concrete
// type instead of probing an open map.
type Payload interface {
	isPayload()
}

// SpotsPayload carries tourist spots only.
type SpotsPayload struct {
	Spots []Place
}

// WeatherPayload carries a weather snapshot only.
type WeatherPayload struct {
	Weather WeatherSnapshot
}

// CombinedPayload carries the data returned when the supervisor dispatched
// to both specialists. Either side is nil when that specialist could not
// extract a location and answered with onboarding instead.
type CombinedPayload struct {
	Spots   []Place
	Weather *WeatherSnapshot
}

// OnboardingPayload carries usage suggestions when no location could be
// extracted from the message.
type OnboardingPayload struct {
	Suggestions []string
}

// CapabilitiesPayload carries the supervisor's static capability list for
// general (non-tourist, non-weather) messages.
type CapabilitiesPayload struct {
	Capabilities []string
}

func (SpotsPayload) isPayload()        {}
func (WeatherPayload) isPayload()      {}
func (CombinedPayload) isPayload()     {}
func (OnboardingPayload) isPayload()   {}
func (CapabilitiesPayload) isPayload() {}

// AgentResponse is the normalized reply of any agent.
type AgentResponse struct {
	Agent           AgentName
	Message         string
	Payload         Payload
	Recommendations []string
	Error           string
}

// MarshalJSON flattens the payload variant into the response object, matching
// the wire shape the HTTP layer serves: the variant's data appears under its
// own key (spots, weather, suggestions, capabilities) beside the common
// fields.
func (r AgentResponse) MarshalJSON() ([]byte, error) {
	out := map[string]any{
		"agent":   r.Agent,
		"message": r.Message,
	}
	if len(r.Recommendations) > 0 {
		out["recommendations"] = r.Recommendations
	}
	if r.Error != "" {
		out["error"] = r.Error
	}

	switch p := r.Payload.(type) {
	case SpotsPayload:
		out["spots"] = p.Spots
	case WeatherPayload:
		out["weather"] = p.Weather
	case CombinedPayload:
		if p.Spots != nil {
			out["spots"] = p.Spots
		}
		if p.Weather != nil {
			out["weather"] = p.Weather
		}
	case OnboardingPayload:
		out["suggestions"] = p.Suggestions
	case CapabilitiesPayload:
		out["capabilities"] = p.Capabilities
	}

	return json.Marshal(out)
}
