package swagger

import (
	"sync"

	"github.com/vitalvas/swaggerdoc/mux"
)

// Docs documents the routes of a mux router. It owns the resource registry
// built by Load and serves the documents assembled from it.
type Docs struct {
	cfg       Config
	validator Validator

	mu       sync.RWMutex
	registry *Registry
	specs    map[*mux.Route]*RouteSpec
	loaded   bool
}

// Option configures a Docs.
type Option func(*Docs)

// WithValidator replaces the document validator. A nil validator disables
// validation.
func WithValidator(v Validator) Option {
	return func(d *Docs) {
		d.validator = v
	}
}

// New returns a Docs for cfg. Unset configuration fields take their
// defaults before the configuration is validated.
func New(cfg Config, opts ...Option) (*Docs, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	d := &Docs{
		cfg:       cfg,
		validator: KinValidator{},
		registry:  NewRegistry(),
		specs:     make(map[*mux.Route]*RouteSpec),
	}
	for _, opt := range opts {
		opt(d)
	}

	return d, nil
}

// Config returns the effective configuration.
func (d *Docs) Config() Config {
	return d.cfg
}

// Registry returns the resource registry filled by Load.
func (d *Docs) Registry() *Registry {
	return d.registry
}

// Route returns the documentation metadata of an existing mux route,
// attaching an empty RouteSpec on first use:
//
//	route := r.HandleFunc("/users/:id", getUser).Methods(http.MethodGet)
//	docs.Route(route).Validation = swagger.RuleGroups{
//	    swagger.Group("resources", swagger.Field("id", &swagger.Rule{IsInt: swagger.Ptr(true)})),
//	}
func (d *Docs) Route(route *mux.Route) *RouteSpec {
	d.mu.Lock()
	defer d.mu.Unlock()

	if spec, ok := d.specs[route]; ok {
		return spec
	}
	spec := &RouteSpec{}
	d.specs[route] = spec
	return spec
}
