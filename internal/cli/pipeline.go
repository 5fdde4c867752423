package cli

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vitalvas/swaggerdoc/manifest"
	"github.com/vitalvas/swaggerdoc/mux"
	"github.com/vitalvas/swaggerdoc/muxhandlers"
	"github.com/vitalvas/swaggerdoc/swagger"
)

// pipeline is a manifest loaded into a documented router.
type pipeline struct {
	manifest *manifest.Manifest
	docs     *swagger.Docs
	router   *mux.Router
	diags    swagger.Diagnostics
}

func loadPipeline(cmd *cobra.Command, validate bool) (*pipeline, error) {
	path, err := cmd.Flags().GetString("manifest")
	if err != nil {
		return nil, err
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, newUsageError(cmd.Name() + ": --manifest is required")
	}

	m, diags, err := manifest.Load(path)
	if err != nil {
		return nil, err
	}

	var opts []swagger.Option
	if !validate {
		opts = append(opts, swagger.WithValidator(nil))
	}

	d, err := swagger.New(m.Config, opts...)
	if err != nil {
		return nil, newUsageError(fmt.Sprintf("%s: %v", path, err))
	}

	r, err := m.Router(d, http.HandlerFunc(notImplemented))
	if err != nil {
		return nil, newUsageError(fmt.Sprintf("%s: %v", path, err))
	}

	d.Handle(r)
	diags = append(diags, d.Load(r)...)

	return &pipeline{manifest: m, docs: d, router: r, diags: diags}, nil
}

// notImplemented answers the declared routes, which only exist to be
// documented. The body echoes the matched template and path variables.
func notImplemented(w http.ResponseWriter, req *http.Request) {
	body := map[string]any{
		"error":     http.StatusText(http.StatusNotImplemented),
		"requestId": muxhandlers.RequestIDFromContext(req.Context()),
	}
	if route := mux.CurrentRoute(req); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			body["route"] = tpl
		}
	}
	if vars := mux.Vars(req); vars != nil {
		body["vars"] = vars
	}

	mux.ResponseJSON(w, http.StatusNotImplemented, body)
}

func printDiagnostics(w io.Writer, diags swagger.Diagnostics) {
	for _, d := range diags {
		fmt.Fprintf(w, "warning: %s\n", d)
	}
}
