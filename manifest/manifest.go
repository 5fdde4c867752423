package manifest

import (
	"cmp"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/vitalvas/swaggerdoc/mux"
	"github.com/vitalvas/swaggerdoc/swagger"
)

// Manifest is a parsed route declaration file.
type Manifest struct {
	Config swagger.Config
	Routes []Route
}

// Route is one declared route and its documentation.
type Route struct {
	Method string
	URL    string
	Spec   swagger.RouteSpec

	// Line is the line of the route entry in the source file.
	Line int
}

// Error is a structural problem in a manifest file.
type Error struct {
	Path    string
	Line    int
	Message string
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

type rawRoute struct {
	Method        string                    `yaml:"method" validate:"omitempty,oneof=GET HEAD POST PUT PATCH DELETE OPTIONS"`
	URL           string                    `yaml:"url" validate:"required,startswith=/"`
	Validation    yaml.Node                 `yaml:"validation"`
	Models        map[string]*swagger.Model `yaml:"models"`
	RequiredRoles *swagger.RequiredRoles    `yaml:"requiredRoles"`
	Swagger       swagger.OperationSpec     `yaml:"swagger"`
}

var (
	routeValidatorOnce sync.Once
	routeValidator     *validator.Validate
)

// Load reads and parses the manifest at path.
func Load(path string) (*Manifest, swagger.Diagnostics, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return Parse(data, path)
}

// Parse decodes a manifest. name is used in error messages. Malformed rule
// values are reported as diagnostics; malformed structure is an *Error.
func Parse(data []byte, name string) (*Manifest, swagger.Diagnostics, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, &Error{Path: name, Message: err.Error()}
	}

	m := &Manifest{}
	if len(doc.Content) == 0 {
		return m, nil, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, nil, &Error{Path: name, Line: root.Line, Message: "manifest must be a mapping"}
	}

	var diags swagger.Diagnostics
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]

		switch key.Value {
		case "config":
			if err := value.Decode(&m.Config); err != nil {
				return nil, nil, &Error{Path: name, Line: value.Line, Message: "config: " + err.Error()}
			}
		case "routes":
			if value.Kind != yaml.SequenceNode {
				return nil, nil, &Error{Path: name, Line: value.Line, Message: "routes must be a list"}
			}
			for _, item := range value.Content {
				route, routeDiags, err := parseRoute(item)
				if err != nil {
					return nil, nil, &Error{Path: name, Line: err.line, Message: err.msg}
				}
				m.Routes = append(m.Routes, *route)
				diags = append(diags, routeDiags...)
			}
		default:
			diags = append(diags, swagger.Diagnostic{
				Field:   key.Value,
				Message: fmt.Sprintf("unknown key at line %d ignored", key.Line),
			})
		}
	}

	return m, diags, nil
}

type nodeError struct {
	line int
	msg  string
}

func errorAt(node *yaml.Node, format string, args ...any) *nodeError {
	return &nodeError{line: node.Line, msg: fmt.Sprintf(format, args...)}
}

func parseRoute(node *yaml.Node) (*Route, swagger.Diagnostics, *nodeError) {
	if node.Kind != yaml.MappingNode {
		return nil, nil, errorAt(node, "route must be a mapping")
	}

	var raw rawRoute
	if err := node.Decode(&raw); err != nil {
		return nil, nil, errorAt(node, "route: %v", err)
	}
	raw.Method = strings.ToUpper(strings.TrimSpace(raw.Method))

	routeValidatorOnce.Do(func() {
		routeValidator = validator.New()
	})
	if err := routeValidator.Struct(&raw); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fe := verrs[0]
			return nil, nil, errorAt(node, "route %s: invalid %s %q (%s)", raw.URL, strings.ToLower(fe.Field()), fe.Value(), fe.Tag())
		}
		return nil, nil, errorAt(node, "route: %v", err)
	}

	routeID := cmp.Or(raw.Method, http.MethodGet) + " " + raw.URL

	route := &Route{
		Method: raw.Method,
		URL:    raw.URL,
		Line:   node.Line,
		Spec: swagger.RouteSpec{
			Models:        raw.Models,
			RequiredRoles: raw.RequiredRoles,
			Swagger:       raw.Swagger,
		},
	}

	if !isNull(&raw.Validation) {
		groups, diags, err := parseValidation(&raw.Validation)
		if err != nil {
			return nil, nil, err
		}
		route.Spec.Validation = groups
		return route, diags.WithRoute(routeID), nil
	}

	return route, nil, nil
}

func isNull(node *yaml.Node) bool {
	return node.Kind == 0 || (node.Kind == yaml.ScalarNode && node.Tag == "!!null")
}

func parseValidation(node *yaml.Node) (swagger.RuleGroups, swagger.Diagnostics, *nodeError) {
	if node.Kind != yaml.MappingNode {
		return nil, nil, errorAt(node, "validation must be a mapping of groups")
	}

	groups := swagger.RuleGroups{}
	var diags swagger.Diagnostics

	for i := 0; i+1 < len(node.Content); i += 2 {
		groupName, groupNode := node.Content[i].Value, node.Content[i+1]
		if isNull(groupNode) {
			groups = append(groups, swagger.Group(groupName))
			continue
		}
		if groupNode.Kind != yaml.MappingNode {
			return nil, nil, errorAt(groupNode, "validation group %q must be a mapping of fields", groupName)
		}

		group := swagger.Group(groupName)
		for j := 0; j+1 < len(groupNode.Content); j += 2 {
			fieldName, ruleNode := groupNode.Content[j].Value, groupNode.Content[j+1]

			rules, ruleDiags, err := parseRules(ruleNode)
			if err != nil {
				return nil, nil, err
			}

			group.Entries = append(group.Entries, swagger.Field(fieldName, rules...))
			diags = append(diags, ruleDiags.WithField(groupName+"."+fieldName)...)
		}
		groups = append(groups, group)
	}

	return groups, diags, nil
}

func parseRules(node *yaml.Node) (swagger.RuleEntry, swagger.Diagnostics, *nodeError) {
	switch {
	case isNull(node):
		return nil, nil, nil
	case node.Kind == yaml.SequenceNode:
		var (
			rules swagger.RuleEntry
			diags swagger.Diagnostics
		)
		for _, item := range node.Content {
			if item.Kind == yaml.SequenceNode {
				return nil, nil, errorAt(item, "nested rule lists are not supported")
			}
			rule, ruleDiags, err := parseRule(item)
			if err != nil {
				return nil, nil, err
			}
			rules = append(rules, rule)
			diags = append(diags, ruleDiags...)
		}
		return rules, diags, nil
	}

	rule, diags, err := parseRule(node)
	if err != nil {
		return nil, nil, err
	}
	return swagger.RuleEntry{rule}, diags, nil
}

func parseRule(node *yaml.Node) (*swagger.Rule, swagger.Diagnostics, *nodeError) {
	switch node.Kind {
	case yaml.MappingNode:
		var raw map[string]any
		if err := node.Decode(&raw); err != nil {
			return nil, nil, errorAt(node, "rule: %v", err)
		}
		rule, diags := swagger.ParseRule(raw)
		return rule, diags, nil
	case yaml.ScalarNode:
		rule, diags := swagger.RuleFromTag(node.Value)
		return rule, diags, nil
	}

	return nil, nil, errorAt(node, "rule must be a mapping or a tag string")
}

// Router registers every manifest route on a new router, all served by h,
// and attaches the route documentation to d. Routes without a method match
// any method.
func (m *Manifest) Router(d *swagger.Docs, h http.Handler) (*mux.Router, error) {
	r := mux.NewRouter()

	for _, rt := range m.Routes {
		route := r.Handle(rt.URL, h)
		if rt.Method != "" {
			route.Methods(rt.Method)
		}
		if err := route.GetError(); err != nil {
			return nil, fmt.Errorf("manifest: route %s %s: %w", rt.Method, rt.URL, err)
		}

		*d.Route(route) = rt.Spec
	}

	return r, nil
}
