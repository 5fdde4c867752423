package swagger

import (
	"cmp"
	"net/http"
	"strconv"
	"strings"

	"github.com/vitalvas/swaggerdoc/mux"
)

// documentedMethods are the methods a resource can hold operations for.
var documentedMethods = map[string]bool{
	http.MethodGet:    true,
	http.MethodPatch:  true,
	http.MethodPost:   true,
	http.MethodPut:    true,
	http.MethodDelete: true,
}

var defaultResponseMessages = []ResponseMessage{
	{Code: http.StatusInternalServerError, Message: http.StatusText(http.StatusInternalServerError)},
}

// Load walks the router once and registers an operation for every route
// carrying a RouteSpec with validation. Each resource created by the walk
// gets its legacy document endpoint registered on r. Later calls do nothing.
func (d *Docs) Load(r *mux.Router) Diagnostics {
	d.mu.Lock()
	defer d.mu.Unlock()

	var diags Diagnostics
	if d.loaded {
		diags.addf("", "", "routes already loaded")
		return diags
	}
	d.loaded = true

	defined := make(map[string]bool)
	var created []*Resource

	_ = r.Walk(func(route *mux.Route, _ *mux.Router, _ []*mux.Route) error {
		spec := d.specs[route]
		if spec == nil || spec.Validation == nil {
			return nil
		}

		url := spec.URL
		if url == "" {
			tpl, err := route.GetPathTemplate()
			if err != nil {
				diags.addf(route.GetName(), "path", "route skipped: %v", err)
				return nil
			}
			url = tpl
		}

		methods := []string{spec.Method}
		if spec.Method == "" {
			var err error
			if methods, err = route.GetMethods(); err != nil {
				methods = []string{http.MethodGet}
			}
		}

		for _, method := range methods {
			res, routeDiags := d.loadRoute(url, strings.ToUpper(method), spec, defined)
			diags = append(diags, routeDiags...)
			if res != nil {
				created = append(created, res)
			}
		}

		return nil
	})

	for _, res := range created {
		d.handleResource(r, res)
	}

	return diags
}

// loadRoute registers one (method, url) pair. It returns the resource when
// this call created it.
func (d *Docs) loadRoute(url, method string, spec *RouteSpec, defined map[string]bool) (*Resource, Diagnostics) {
	var diags Diagnostics
	routeID := method + " " + url

	if !documentedMethods[method] {
		diags.addf(routeID, "method", "method cannot be documented")
		return nil, diags
	}

	key := spec.Swagger.DocPath
	if key == "" {
		key = resourceKey(url)
		if key == "" {
			diags.addf(routeID, "url", "no path segment to group by")
		}
	}

	if d.cfg.blacklisted(key) {
		Goose.Loader.Logf(2, "skipping blacklisted route %s", routeID)
		return nil, diags
	}

	resourcePath := d.cfg.PathPrefix + key
	res, created := d.registry.FindOrCreate(resourcePath, spec.Models, d.cfg.APIDescription(resourcePath))
	var newRes *Resource
	if created {
		newRes = res
	}

	if defined[method+url] {
		Goose.Loader.Logf(2, "skipping duplicate route %s", routeID)
		diags.addf(routeID, "", "duplicate route, first registration kept")
		return newRes, diags
	}
	defined[method+url] = true

	params, paramDiags := BuildParameters(spec.Validation)
	diags = append(diags, paramDiags.WithRoute(routeID)...)

	d.registry.RegisterOperation(res, DocumentPath(url), method, spec.Swagger.Summary, d.newOperation(url, spec, params))
	Goose.Loader.Logf(4, "documented %s under %s", routeID, resourcePath)

	return newRes, diags
}

func (d *Docs) newOperation(url string, spec *RouteSpec, params []*Parameter) *Operation {
	sw := spec.Swagger

	description := sw.Description
	if spec.RequiredRoles != nil {
		description += spec.RequiredRoles.html()
	}

	if params == nil {
		params = []*Parameter{}
	}

	op := &Operation{
		Description:        description,
		Notes:              sw.Notes,
		Nickname:           cmp.Or(sw.Nickname, CamelName(url)),
		ResponseClass:      sw.ResponseClass,
		OperationID:        sw.OperationID,
		Tags:               sw.Tags,
		Produces:           orDefault(sw.Produces, []string{"application/json"}),
		Consumes:           orDefault(sw.Consumes, []string{"application/json"}),
		Parameters:         params,
		OriginalParameters: sw.Parameters,
		Security:           sw.Security,
		Responses:          sw.Responses,
		ResponseMessages:   orDefault(sw.ResponseMessages, orDefault(d.cfg.ResponseMessages, defaultResponseMessages)),
		Filter:             sw.Filter,
	}

	if op.Responses == nil {
		op.Responses = make(map[string]any, len(op.ResponseMessages))
		for _, m := range op.ResponseMessages {
			op.Responses[strconv.Itoa(m.Code)] = map[string]any{"description": m.Message}
		}
	}

	return op
}

func orDefault[S ~[]E, E any](s, def S) S {
	if len(s) == 0 {
		return def
	}
	return s
}
