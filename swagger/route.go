package swagger

import (
	"fmt"
	"strings"
)

// RouteSpec is the documentation metadata attached to a mux route with
// Docs.Route. Routes whose Validation is nil are left out of the document.
type RouteSpec struct {
	// URL overrides the route's path template.
	URL string
	// Method overrides the route's methods.
	Method string

	Validation    RuleGroups
	Models        map[string]*Model
	RequiredRoles *RequiredRoles
	Swagger       OperationSpec
}

// OperationSpec carries the operation fields a route declares directly.
type OperationSpec struct {
	// DocPath overrides the resource grouping key, which defaults to the
	// first URL segment.
	DocPath string `yaml:"docPath,omitempty"`

	Summary       string                `yaml:"summary,omitempty"`
	Description   string                `yaml:"description,omitempty"`
	Notes         string                `yaml:"notes,omitempty"`
	Nickname      string                `yaml:"nickname,omitempty"`
	ResponseClass string                `yaml:"responseClass,omitempty"`
	OperationID   string                `yaml:"operationId,omitempty"`
	Tags          []string              `yaml:"tags,omitempty"`
	Produces      []string              `yaml:"produces,omitempty"`
	Consumes      []string              `yaml:"consumes,omitempty"`
	Security      []map[string][]string `yaml:"security,omitempty"`
	Responses     map[string]any        `yaml:"responses,omitempty"`

	ResponseMessages []ResponseMessage `yaml:"responseMessages,omitempty"`

	// Parameters, when set, are emitted verbatim instead of the parameters
	// derived from Validation.
	Parameters []map[string]any `yaml:"parameters,omitempty"`

	// Filter hides the operation unless the discovery request asks for it
	// with ?swaggerFilter=<Filter>.
	Filter string `yaml:"swaggerFilter,omitempty"`
}

// RequiredRoles describes the permission guarding a route and the role
// groups holding it.
type RequiredRoles struct {
	Permission string      `yaml:"required-permission"`
	Groups     []RoleGroup `yaml:"groups"`
}

// RoleGroup is one role with access to a route. HasAccess is true for full
// access; any other non-empty value is shown as a caveat.
type RoleGroup struct {
	Name      string `yaml:"name"`
	HasAccess any    `yaml:"hasAccess,omitempty"`
}

// html renders the roles as the fragment appended to operation descriptions.
func (rr *RequiredRoles) html() string {
	var b strings.Builder

	b.WriteString(`<br /><h4>Security Roles</h4>`)
	fmt.Fprintf(&b, `<span style="font-size: 80%%;">(requires permission %s)</span>`, rr.Permission)
	b.WriteString(`<ul>`)
	for _, g := range rr.Groups {
		b.WriteString(`<li>`)
		b.WriteString(g.Name)
		if truthy(g.HasAccess) && g.HasAccess != true {
			fmt.Fprintf(&b, ` <span style="font-style: italic;">%v</span>`, g.HasAccess)
		}
		b.WriteString(`</li>`)
	}
	b.WriteString(`</ul>`)

	return b.String()
}
