package swagger

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Diagnostic records one piece of route metadata that was malformed or
// ignored while building the document. Diagnostics never stop generation.
type Diagnostic struct {
	// Route is "METHOD url" of the route the problem belongs to, if any.
	Route string `json:"route,omitempty" yaml:"route,omitempty"`
	// Field names the rule field, parameter or key at fault.
	Field   string `json:"field,omitempty" yaml:"field,omitempty"`
	Message string `json:"message" yaml:"message"`
}

func (d Diagnostic) String() string {
	var b strings.Builder
	if d.Route != "" {
		b.WriteString(d.Route)
		b.WriteString(": ")
	}
	if d.Field != "" {
		b.WriteString(d.Field)
		b.WriteString(": ")
	}
	b.WriteString(d.Message)
	return b.String()
}

// Diagnostics is an ordered list of Diagnostic.
type Diagnostics []Diagnostic

// WithRoute returns a copy of the list with Route filled in where unset.
func (ds Diagnostics) WithRoute(route string) Diagnostics {
	out := make(Diagnostics, len(ds))
	for i, d := range ds {
		if d.Route == "" {
			d.Route = route
		}
		out[i] = d
	}
	return out
}

// WithField returns a copy of the list with prefix prepended to every Field.
func (ds Diagnostics) WithField(prefix string) Diagnostics {
	out := make(Diagnostics, len(ds))
	for i, d := range ds {
		if d.Field == "" {
			d.Field = prefix
		} else {
			d.Field = prefix + "." + d.Field
		}
		out[i] = d
	}
	return out
}

func (ds Diagnostics) sort() {
	slices.SortStableFunc(ds, func(a, b Diagnostic) int {
		return cmp.Compare(a.Field, b.Field)
	})
}

func (ds *Diagnostics) addf(route, field, format string, args ...any) {
	*ds = append(*ds, Diagnostic{Route: route, Field: field, Message: fmt.Sprintf(format, args...)})
}
