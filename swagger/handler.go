package swagger

import (
	"errors"
	"fmt"
	"html"
	"net/http"

	"github.com/vitalvas/swaggerdoc/mux"
	"github.com/vitalvas/swaggerdoc/muxhandlers"
)

// FilterParam is the query parameter selecting filter-gated operations.
const FilterParam = "swaggerFilter"

var discoveryCORS = muxhandlers.CORSMiddleware(muxhandlers.DiscoveryCORS)

// Handle registers the discovery endpoints on the router:
//
//	Config.DiscoveryURL     - discovery document as JSON
//	Config.YAMLDiscoveryURL - discovery document as YAML (when set)
//	Config.DocsURL          - Swagger UI reading the JSON document (when set)
//
// The document is assembled and validated on every request, so routes
// loaded after Handle are served too.
func (d *Docs) Handle(r *mux.Router) {
	r.Handle(d.cfg.DiscoveryURL, discoveryCORS(d.discoveryHandler(mux.ResponseJSON))).Methods(http.MethodGet)

	if d.cfg.YAMLDiscoveryURL != "" {
		r.Handle(d.cfg.YAMLDiscoveryURL, discoveryCORS(d.discoveryHandler(mux.ResponseYAML))).Methods(http.MethodGet)
	}

	if d.cfg.DocsURL != "" {
		page := []byte(swaggerUIPage(d.cfg.Title, d.cfg.DiscoveryURL))
		r.HandleFunc(d.cfg.DocsURL, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write(page)
		}).Methods(http.MethodGet)
	}
}

func (d *Docs) discoveryHandler(respond func(http.ResponseWriter, int, any)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		filter := req.URL.Query().Get(FilterParam)

		doc, _, err := d.Document(req.Context(), filter)
		if err != nil {
			Goose.Serve.Logf(1, "discovery %s: %s", req.URL.Path, err)

			var verr *ValidationError
			if errors.As(err, &verr) {
				http.Error(w, verr.Error(), http.StatusInternalServerError)
				return
			}
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		respond(w, http.StatusOK, doc)
	})
}

// Listing returns the legacy document of the resource registered under
// resourcePath. host is used for the base path when none is configured.
func (d *Docs) Listing(resourcePath, host string) (*ResourceListing, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.listing(resourcePath, host)
}

func (d *Docs) listing(resourcePath, host string) (*ResourceListing, bool) {
	res := d.registry.Resource(resourcePath)
	if res == nil {
		return nil, false
	}

	basePath := d.cfg.BasePath
	if basePath == "" {
		basePath = "http://" + host
	}

	apis := make([]*API, len(res.APIs()))
	copy(apis, res.APIs())

	return &ResourceListing{
		SwaggerVersion: "2.0",
		APIVersion:     d.cfg.Version,
		BasePath:       basePath,
		Info:           d.cfg.Info,
		ResourcePath:   res.Path,
		APIs:           apis,
		Models:         res.Models,
	}, true
}

// handleResource registers the legacy document endpoint of a resource.
func (d *Docs) handleResource(r *mux.Router, res *Resource) {
	path := res.Path
	r.Handle(path, discoveryCORS(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		d.mu.RLock()
		defer d.mu.RUnlock()

		listing, ok := d.listing(path, req.Host)
		if !ok {
			http.NotFound(w, req)
			return
		}
		mux.ResponseJSON(w, http.StatusOK, listing)
	}))).Methods(http.MethodGet)

	Goose.Serve.Logf(3, "serving resource document at %s", path)
}

func swaggerUIPage(title, specURL string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>%s</title>
<link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist/swagger-ui.css">
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist/swagger-ui-bundle.js"></script>
<script>
SwaggerUIBundle({url: %q, dom_id: "#swagger-ui"});
</script>
</body>
</html>`, html.EscapeString(title), specURL)
}
