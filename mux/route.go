package mux

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Route stores information to match a request and build URLs.
type Route struct {
	parent      *Router
	handler     http.Handler
	methods     []string
	path        *pathTemplate
	name        string
	err         error
	namedRoutes map[string]*Route
}

// Match matches this route against the request. A path match with a method
// mismatch sets match.MatchErr to ErrMethodMismatch and returns false.
func (r *Route) Match(req *http.Request, match *RouteMatch) bool {
	if r.err != nil || r.path == nil {
		return false
	}

	vars, ok := r.path.match(req.URL.Path)
	if !ok {
		return false
	}

	if len(r.methods) > 0 && !matchInArray(r.methods, req.Method) {
		match.MatchErr = ErrMethodMismatch
		return false
	}

	// If the handler is a Router (subrouter), delegate to it.
	if router, ok := r.handler.(*Router); ok {
		return router.Match(req, match)
	}

	match.Route = r
	match.Handler = r.handler
	match.Vars = vars
	match.MatchErr = nil

	return true
}

// Handler sets a handler for the route.
func (r *Route) Handler(handler http.Handler) *Route {
	if r.err == nil {
		r.handler = handler
	}
	return r
}

// HandlerFunc sets a handler function for the route.
func (r *Route) HandlerFunc(f func(http.ResponseWriter, *http.Request)) *Route {
	return r.Handler(http.HandlerFunc(f))
}

// Name sets the name for the route, used to build URLs.
func (r *Route) Name(name string) *Route {
	if r.name != "" {
		r.err = fmt.Errorf("mux: route already has name %q, can't set %q", r.name, name)
		return r
	}
	if r.err == nil {
		r.name = name
		if r.namedRoutes != nil {
			r.namedRoutes[name] = r
		}
	}
	return r
}

// GetName returns the name for the route, if any.
func (r *Route) GetName() string {
	return r.name
}

// Path sets the path template of the route per RFC 3986 Section 3.3.
func (r *Route) Path(tpl string) *Route {
	return r.setPath(tpl, false)
}

// PathPrefix sets a path prefix template for the route.
func (r *Route) PathPrefix(tpl string) *Route {
	return r.setPath(tpl, true)
}

func (r *Route) setPath(tpl string, prefix bool) *Route {
	if r.err != nil {
		return r
	}
	if r.parent != nil {
		if p := r.parent.pathPrefix(); p != "" {
			tpl = strings.TrimRight(p, "/") + tpl
		}
	}
	r.path, r.err = parseTemplate(tpl, prefix)
	return r
}

// Methods sets the methods the route matches, per RFC 9110 Section 9.
// Calling Methods multiple times replaces the previous set.
func (r *Route) Methods(methods ...string) *Route {
	upper := make([]string, len(methods))
	for i, m := range methods {
		upper[i] = strings.ToUpper(m)
	}
	r.methods = upper
	return r
}

// Subrouter creates a new Router for the route. Templates registered on it
// are prefixed with this route's path template.
func (r *Route) Subrouter() *Router {
	router := &Router{
		parent:      r,
		namedRoutes: r.namedRoutes,
	}
	r.handler = router
	return router
}

// --- Inspection ---

// GetPathTemplate returns the template for the route path, if defined.
// Variables are returned as they were written (":id" or "{id:int}").
func (r *Route) GetPathTemplate() (string, error) {
	if r.err != nil {
		return "", r.err
	}
	if r.path == nil {
		return "", errors.New("mux: route doesn't have a path")
	}
	return r.path.template, nil
}

// GetMethods returns the methods the route matches against.
func (r *Route) GetMethods() ([]string, error) {
	if r.err != nil {
		return nil, r.err
	}
	if len(r.methods) == 0 {
		return nil, errors.New("mux: route doesn't have methods")
	}
	return r.methods, nil
}

// GetError returns any error that was set on the route.
func (r *Route) GetError() error {
	return r.err
}
