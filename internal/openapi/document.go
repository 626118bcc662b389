// Package openapi builds an OpenAPI 3.0 document from the route metadata
// declared next to each Echo route.
//
// Route metadata may describe responses or aliases that no code path
// produces. Such entries are marked documentation-only instead of being
// silently presented as behavior.
package openapi

import (
	"net/http"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// Version is the OpenAPI version emitted.
const Version = "3.0.3"

// Response documents one status code of a route.
type Response struct {
	Status      int
	Description string

	// Model is a prototype value of the body, nil for no body.
	Model any

	// DocumentationOnly marks a status that is declared but never produced.
	DocumentationOnly bool
}

// Route describes one registered operation.
type Route struct {
	Method      string
	Path        string
	OperationID string
	Summary     string
	Tag         string

	// Query is a prototype of the query struct (fields with `query` tags).
	Query any

	// Body is a prototype of the JSON request body.
	Body any

	Responses []Response

	// SerializationAliases maps a query wire name to a serialization alias
	// that is declared but not applied to the response.
	SerializationAliases map[string]string
}

// Registry collects routes as the router registers them. It is safe for
// concurrent use, though routes are normally added once at start-up.
type Registry struct {
	mu     sync.RWMutex
	routes []Route
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Add records a route.
func (r *Registry) Add(route Route) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes = append(r.routes, route)
}

// Routes returns a copy of the recorded routes.
func (r *Registry) Routes() []Route {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Route(nil), r.routes...)
}

type Document struct {
	OpenAPI string                           `json:"openapi"`
	Info    Info                             `json:"info"`
	Paths   map[string]map[string]*Operation `json:"paths"`
}

type Info struct {
	Title   string `json:"title"`
	Version string `json:"version"`
}

type Operation struct {
	OperationID string       `json:"operationId,omitempty"`
	Summary     string       `json:"summary,omitempty"`
	Tags        []string     `json:"tags,omitempty"`
	Parameters  []Parameter  `json:"parameters,omitempty"`
	RequestBody *RequestBody `json:"requestBody,omitempty"`

	ResponseObjects map[string]*ResponseObject `json:"responses"`
}

type Parameter struct {
	Name     string  `json:"name"`
	In       string  `json:"in"`
	Required bool    `json:"required"`
	Schema   *Schema `json:"schema"`

	InternalName       string `json:"x-internal-name,omitempty"`
	SerializationAlias string `json:"x-serialization-alias,omitempty"`
	AliasUnused        bool   `json:"x-serialization-alias-unused,omitempty"`
}

type RequestBody struct {
	Required bool                 `json:"required"`
	Content  map[string]MediaType `json:"content"`
}

type MediaType struct {
	Schema *Schema `json:"schema"`
}

type ResponseObject struct {
	Description       string               `json:"description"`
	Content           map[string]MediaType `json:"content,omitempty"`
	DocumentationOnly bool                 `json:"x-documentation-only,omitempty"`
}

// Build renders the registry into a document.
func (r *Registry) Build(title, version string) *Document {
	doc := &Document{
		OpenAPI: Version,
		Info:    Info{Title: title, Version: version},
		Paths:   map[string]map[string]*Operation{},
	}

	for _, route := range r.Routes() {
		if doc.Paths[route.Path] == nil {
			doc.Paths[route.Path] = map[string]*Operation{}
		}
		doc.Paths[route.Path][strings.ToLower(route.Method)] = buildOperation(route)
	}

	return doc
}

func buildOperation(route Route) *Operation {
	op := &Operation{
		OperationID:     route.OperationID,
		Summary:         route.Summary,
		Parameters:      queryParameters(route.Query, route.SerializationAliases),
		ResponseObjects: map[string]*ResponseObject{},
	}
	if route.Tag != "" {
		op.Tags = []string{route.Tag}
	}

	if route.Body != nil {
		op.RequestBody = &RequestBody{
			Required: true,
			Content:  map[string]MediaType{"application/json": {Schema: SchemaOf(route.Body)}},
		}
	}

	for _, resp := range route.Responses {
		obj := &ResponseObject{
			Description:       resp.Description,
			DocumentationOnly: resp.DocumentationOnly,
		}
		if obj.Description == "" {
			obj.Description = http.StatusText(resp.Status)
		}
		if resp.Model != nil {
			obj.Content = map[string]MediaType{"application/json": {Schema: SchemaOf(resp.Model)}}
		}
		op.ResponseObjects[strconv.Itoa(resp.Status)] = obj
	}

	return op
}

func queryParameters(query any, aliases map[string]string) []Parameter {
	if query == nil {
		return nil
	}

	t := reflect.TypeOf(query)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}

	var params []Parameter
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name := f.Tag.Get("query")
		if name == "" {
			continue
		}

		p := Parameter{
			Name:         name,
			In:           "query",
			Required:     isRequired(f),
			Schema:       schemaOfType(f.Type),
			InternalName: f.Name,
		}
		if p.Required {
			p.Schema.Nullable = false
		}
		if alias, ok := aliases[name]; ok {
			p.SerializationAlias = alias
			p.AliasUnused = true
		}

		params = append(params, p)
	}

	sort.SliceStable(params, func(i, j int) bool { return params[i].Name < params[j].Name })

	return params
}
