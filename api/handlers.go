package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/wanderkit/travelgate/agents"
	"github.com/wanderkit/travelgate/geo"
	"github.com/wanderkit/travelgate/log"
	"github.com/wanderkit/travelgate/model"
	"github.com/wanderkit/travelgate/tools"
)

type locationRequest struct {
	Location  string   `json:"location"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func (lr locationRequest) coordinates() *geo.Coordinates {
	if lr.Latitude == nil || lr.Longitude == nil {
		return nil
	}
	return &geo.Coordinates{Latitude: *lr.Latitude, Longitude: *lr.Longitude}
}

type touristSpotsRequest struct {
	locationRequest
	RadiusKm   float64 `json:"radius_km"`
	MaxResults int     `json:"max_results"`
}

type agentMessageRequest struct {
	Message   string         `json:"message"`
	AgentType string         `json:"agent_type"`
	Context   map[string]any `json:"context"`
}

type toolCallRequest struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

// handlers wires the HTTP surface to the agents and the tool registry.
type handlers struct {
	supervisor *agents.Supervisor
	tourist    *agents.TouristAgent
	weather    *agents.WeatherAgent
	registry   *tools.Registry
}

func decodeBody(w http.ResponseWriter, r *http.Request, out any) bool {
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

func (h *handlers) root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]any{
		"message": "TravelGate Agent Server",
		"status":  "running",
		"agents":  []string{"supervisor", "tourist", "weather"},
	})
}

func (h *handlers) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]any{
		"status": "healthy",
		"agents": map[string]bool{
			"supervisor": h.supervisor.Ready(),
			"tourist":    h.tourist.Ready(),
			"weather":    h.weather.Ready(),
		},
		"registry": len(h.registry.Tools()) > 0,
	})
}

func (h *handlers) touristSpots(w http.ResponseWriter, r *http.Request) {
	var req touristSpotsRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Location == "" {
		writeError(w, r, http.StatusBadRequest, "location is required")
		return
	}

	// The HTTP boundary defaults to a tighter search than the agent's own
	// structured-query default.
	if req.RadiusKm <= 0 {
		req.RadiusKm = 5
	}
	if req.MaxResults <= 0 {
		req.MaxResults = 20
	}

	log.Infof(r.Context(), "Getting tourist spots for: %s", req.Location)

	spots := h.tourist.FindTouristSpots(r.Context(), agents.TouristQuery{
		Location:    req.Location,
		Coordinates: req.coordinates(),
		RadiusKm:    req.RadiusKm,
		MaxResults:  req.MaxResults,
	})

	writeJSON(w, r, http.StatusOK, map[string]any{
		"success":  true,
		"location": req.Location,
		"spots":    spots,
		"count":    len(spots),
	})
}

func (h *handlers) weatherInfo(w http.ResponseWriter, r *http.Request) {
	var req locationRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Location == "" {
		writeError(w, r, http.StatusBadRequest, "location is required")
		return
	}

	log.Infof(r.Context(), "Getting weather for: %s", req.Location)

	snapshot := h.weather.GetWeatherInfo(r.Context(), agents.WeatherQuery{
		Location:    req.Location,
		Coordinates: req.coordinates(),
	})

	writeJSON(w, r, http.StatusOK, map[string]any{
		"success":  true,
		"location": req.Location,
		"weather":  snapshot,
	})
}

func (h *handlers) agentMessage(w http.ResponseWriter, r *http.Request) {
	var req agentMessageRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.AgentType == "" {
		req.AgentType = "supervisor"
	}

	log.Infof(r.Context(), "Sending message to %s agent: %s", req.AgentType, req.Message)

	var response model.AgentResponse
	switch req.AgentType {
	case "supervisor":
		response = h.supervisor.ProcessMessage(r.Context(), req.Message, req.Context)
	case "tourist":
		response = h.tourist.ProcessMessage(r.Context(), req.Message, req.Context)
	case "weather":
		response = h.weather.ProcessMessage(r.Context(), req.Message, req.Context)
	default:
		writeError(w, r, http.StatusBadRequest, fmt.Sprintf("Unknown agent type: %s", req.AgentType))
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]any{
		"success":  true,
		"agent":    req.AgentType,
		"response": response,
	})
}

func (h *handlers) travelPlan(w http.ResponseWriter, r *http.Request) {
	var req locationRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Location == "" {
		writeError(w, r, http.StatusBadRequest, "location is required")
		return
	}

	log.Infof(r.Context(), "Creating travel plan for: %s", req.Location)

	plan, err := h.supervisor.CreateTravelPlan(r.Context(), req.Location, req.coordinates())
	if err != nil {
		log.Errorf(r.Context(), "Error creating travel plan: %v", err)
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]any{
		"success":  true,
		"location": req.Location,
		"plan":     plan,
	})
}

func (h *handlers) mcpResources(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]any{
		"success":   true,
		"resources": h.registry.Resources(),
	})
}

func (h *handlers) mcpTools(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]any{
		"success": true,
		"tools":   h.registry.Tools(),
	})
}

func (h *handlers) mcpToolCall(w http.ResponseWriter, r *http.Request) {
	var req toolCallRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Name == "" {
		writeError(w, r, http.StatusBadRequest, "name is required")
		return
	}

	result := h.registry.CallTool(r.Context(), req.Name, req.Arguments)
	writeJSON(w, r, http.StatusOK, map[string]any{
		"success": true,
		"result":  result,
	})
}
