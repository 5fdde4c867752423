package swagger

import (
	"errors"
	"maps"
	"strings"
)

// ErrNotInitialized is the panic value raised when a Registry is used
// without being created by NewRegistry.
var ErrNotInitialized = errors.New("swagger: registry not initialized")

// Resource groups the operations documented under one resource path, such
// as "/swagger/users".
type Resource struct {
	Path        string
	Description string
	Models      map[string]*Model

	apis     []*API
	apiIndex map[string]*API
}

// API returns the API entry for path, creating it with an empty description
// on first use.
func (r *Resource) API(path string) *API {
	if api, ok := r.apiIndex[path]; ok {
		return api
	}

	if r.apiIndex == nil {
		r.apiIndex = make(map[string]*API)
	}

	api := &API{Path: path, Operations: []*Operation{}}
	r.apis = append(r.apis, api)
	r.apiIndex[path] = api
	return api
}

// APIs returns the API entries in the order they were created.
func (r *Resource) APIs() []*API {
	return r.apis
}

// Registry is the append-only, ordered collection of resources discovered
// from a router. Lookups use the exact path string.
type Registry struct {
	resources []*Resource
	index     map[string]*Resource
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]*Resource)}
}

func (g *Registry) mustInit() {
	if g == nil || g.index == nil {
		panic(ErrNotInitialized)
	}
}

// FindOrCreate returns the resource registered under path, merging models
// into it, or appends a new resource holding models and description. The
// boolean reports whether the resource was created.
func (g *Registry) FindOrCreate(path string, models map[string]*Model, description string) (*Resource, bool) {
	g.mustInit()

	if res, ok := g.index[path]; ok {
		g.MergeModels(res, models)
		return res, false
	}

	res := &Resource{
		Path:        path,
		Description: description,
		Models:      make(map[string]*Model, len(models)),
		apiIndex:    make(map[string]*API),
	}
	maps.Copy(res.Models, models)

	g.resources = append(g.resources, res)
	g.index[path] = res
	return res, true
}

// MergeModels adds models to the resource. A model already present under
// the same name is replaced.
func (g *Registry) MergeModels(res *Resource, models map[string]*Model) {
	g.mustInit()

	if res.Models == nil {
		res.Models = make(map[string]*Model, len(models))
	}
	maps.Copy(res.Models, models)
}

// RegisterOperation appends op to the API entry for path under res. The
// method is stored upper-cased in both HTTPMethod and Method.
func (g *Registry) RegisterOperation(res *Resource, path, method, summary string, op *Operation) *Operation {
	g.mustInit()

	method = strings.ToUpper(method)
	op.Summary = summary
	op.HTTPMethod = method
	op.Method = method

	api := res.API(path)
	api.Operations = append(api.Operations, op)
	return op
}

// Resources returns the registered resources in creation order.
func (g *Registry) Resources() []*Resource {
	g.mustInit()
	return g.resources
}

// Resource returns the resource registered under path, or nil.
func (g *Registry) Resource(path string) *Resource {
	g.mustInit()
	return g.index[path]
}
