// Package tools exposes the gateway's capabilities as named, schema-described
// tools plus a static resource catalogue. The catalogue is built once at
// startup and never mutated, so concurrent reads need no locking.
package tools

import (
	"context"
	"fmt"

	"github.com/wanderkit/travelgate/log"
)

// Tool describes one callable tool. Schemas are discovery metadata; only
// required-field presence is enforced at call time.
type Tool struct {
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	InputSchema  map[string]any `json:"inputSchema"`
	OutputSchema map[string]any `json:"outputSchema,omitempty"`
}

// Resource describes one readable data source.
type Resource struct {
	URI         string         `json:"uri"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	MimeType    string         `json:"mimeType"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// Handler executes one tool call.
type Handler func(ctx context.Context, args map[string]any) (map[string]any, error)

// Registry maps tool names to schemas and handlers.
type Registry struct {
	tools     []Tool
	handlers  map[string]Handler
	resources []Resource
	byURI     map[string]Resource
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]Handler),
		byURI:    make(map[string]Resource),
	}
}

// RegisterTool adds a tool and its handler.
func (r *Registry) RegisterTool(tool Tool, handler Handler) {
	r.tools = append(r.tools, tool)
	r.handlers[tool.Name] = handler
}

// RegisterResource adds a resource to the catalogue.
func (r *Registry) RegisterResource(resource Resource) {
	r.resources = append(r.resources, resource)
	r.byURI[resource.URI] = resource
}

// Tools returns all registered tools in registration order.
func (r *Registry) Tools() []Tool {
	return r.tools
}

// Resources returns all registered resources in registration order.
func (r *Registry) Resources() []Resource {
	return r.resources
}

// Resource looks up one resource by URI.
func (r *Registry) Resource(uri string) (Resource, bool) {
	resource, ok := r.byURI[uri]
	return resource, ok
}

// CallTool runs a registered tool by name. An unknown name or a handler
// failure yields an error result echoing the requested name and arguments;
// nothing propagates past the registry boundary.
func (r *Registry) CallTool(ctx context.Context, name string, args map[string]any) map[string]any {
	handler, ok := r.handlers[name]
	if !ok {
		return errorResult(fmt.Sprintf("tool '%s' not found", name), name, args)
	}

	result, err := handler(ctx, args)
	if err != nil {
		log.Errorf(ctx, "Error calling tool %s: %v", name, err)
		return errorResult(err.Error(), name, args)
	}
	return result
}

func errorResult(message, tool string, args map[string]any) map[string]any {
	return map[string]any{
		"error":     message,
		"tool":      tool,
		"arguments": args,
	}
}
