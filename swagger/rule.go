package swagger

import (
	"fmt"
	"strings"
)

// Rule is the structured form of one validation rule attached to a route
// field. Pointer and slice fields distinguish "not declared" from a zero
// value; only declared fields take part in an overlay.
type Rule struct {
	IsRequired   *bool
	IsDate       *bool
	IsBoolean    *bool
	IsInt        *bool
	IsNumeric    *bool
	IsFloat      *bool
	IsDecimal    *bool
	IsJSONObject *bool
	IsJSONArray  *bool

	// SwaggerType overrides the mapped type tag. Presence matters, an empty
	// string is still an override.
	SwaggerType *string

	// Type is the declared value type. "array" turns the parameter into an
	// array of the mapped tag.
	Type string

	Scope        string
	SwaggerScope string

	// IsIn is the enumeration of allowed values; nil means not declared.
	IsIn         []any
	DefaultValue any

	Description     string
	Format          string
	AllowEmptyValue *bool
	Schema          Schema

	// cleared holds the string keys a parsed declaration set to "". They
	// reset earlier values in a merge; in struct literals "" means unset.
	cleared map[string]bool
}

// Ptr returns a pointer to v, for filling optional Rule fields.
func Ptr[T any](v T) *T {
	return &v
}

func isTrue(p *bool) bool {
	return p != nil && *p
}

// overlay copies every declared field of src onto r.
func (r *Rule) overlay(src *Rule) {
	if src == nil {
		return
	}

	for _, f := range []struct{ dst, src **bool }{
		{&r.IsRequired, &src.IsRequired},
		{&r.IsDate, &src.IsDate},
		{&r.IsBoolean, &src.IsBoolean},
		{&r.IsInt, &src.IsInt},
		{&r.IsNumeric, &src.IsNumeric},
		{&r.IsFloat, &src.IsFloat},
		{&r.IsDecimal, &src.IsDecimal},
		{&r.IsJSONObject, &src.IsJSONObject},
		{&r.IsJSONArray, &src.IsJSONArray},
		{&r.AllowEmptyValue, &src.AllowEmptyValue},
	} {
		if *f.src != nil {
			*f.dst = *f.src
		}
	}

	if src.SwaggerType != nil {
		r.SwaggerType = src.SwaggerType
	}
	for _, f := range []struct {
		key      string
		dst, src *string
	}{
		{"type", &r.Type, &src.Type},
		{"scope", &r.Scope, &src.Scope},
		{"swaggerScope", &r.SwaggerScope, &src.SwaggerScope},
		{"description", &r.Description, &src.Description},
		{"format", &r.Format, &src.Format},
	} {
		if *f.src != "" || src.cleared[f.key] {
			*f.dst = *f.src
		}
	}
	if src.IsIn != nil {
		r.IsIn = src.IsIn
	}
	if src.DefaultValue != nil {
		r.DefaultValue = src.DefaultValue
	}
	if src.Schema != nil {
		r.Schema = src.Schema
	}
}

// RuleEntry is the ordered list of partial rules declared for one field.
type RuleEntry []*Rule

// Merge folds the entry left to right into one effective rule. Fields set by
// later rules win.
func (e RuleEntry) Merge() *Rule {
	merged := &Rule{}
	for _, r := range e {
		merged.overlay(r)
	}
	return merged
}

// NamedRule binds a rule entry to the field it validates.
type NamedRule struct {
	Name  string
	Rules RuleEntry
}

// Field is shorthand for a NamedRule.
func Field(name string, rules ...*Rule) NamedRule {
	return NamedRule{Name: name, Rules: rules}
}

// RuleGroup holds the rules read from one request value source, such as
// "resources", "queries" or "headers".
type RuleGroup struct {
	Name    string
	Entries []NamedRule
}

// Group is shorthand for a RuleGroup.
func Group(name string, entries ...NamedRule) RuleGroup {
	return RuleGroup{Name: name, Entries: entries}
}

// RuleGroups is the full validation declaration of a route, in declaration
// order.
type RuleGroups []RuleGroup

var ruleFlags = map[string]func(r *Rule, v *bool){
	"isRequired":      func(r *Rule, v *bool) { r.IsRequired = v },
	"isDate":          func(r *Rule, v *bool) { r.IsDate = v },
	"isBoolean":       func(r *Rule, v *bool) { r.IsBoolean = v },
	"isInt":           func(r *Rule, v *bool) { r.IsInt = v },
	"isNumeric":       func(r *Rule, v *bool) { r.IsNumeric = v },
	"isFloat":         func(r *Rule, v *bool) { r.IsFloat = v },
	"isDecimal":       func(r *Rule, v *bool) { r.IsDecimal = v },
	"isJSONObject":    func(r *Rule, v *bool) { r.IsJSONObject = v },
	"isJSONArray":     func(r *Rule, v *bool) { r.IsJSONArray = v },
	"allowEmptyValue": func(r *Rule, v *bool) { r.AllowEmptyValue = v },
}

var ruleStrings = map[string]func(r *Rule, v string){
	"type":         func(r *Rule, v string) { r.Type = v },
	"scope":        func(r *Rule, v string) { r.Scope = v },
	"swaggerScope": func(r *Rule, v string) { r.SwaggerScope = v },
	"description":  func(r *Rule, v string) { r.Description = v },
	"format":       func(r *Rule, v string) { r.Format = v },
}

// ParseRule builds a Rule from a free-form map as found in JSON or YAML
// route declarations. Keys it does not document are ignored. Values of the
// wrong shape are dropped and reported; parsing never fails.
func ParseRule(raw map[string]any) (*Rule, Diagnostics) {
	var (
		rule  Rule
		diags Diagnostics
	)

	bad := func(key string, v any, want string) {
		diags = append(diags, Diagnostic{
			Field:   key,
			Message: fmt.Sprintf("expected %s, got %T", want, v),
		})
	}

	for key, v := range raw {
		if set, ok := ruleFlags[key]; ok {
			if key == "isRequired" || key == "allowEmptyValue" {
				// Only a real boolean counts, "true" is not required.
				b, ok := v.(bool)
				if !ok {
					bad(key, v, "boolean")
					continue
				}
				set(&rule, &b)
				continue
			}
			set(&rule, Ptr(truthy(v)))
			continue
		}

		if set, ok := ruleStrings[key]; ok {
			s, ok := v.(string)
			if !ok {
				bad(key, v, "string")
				continue
			}
			if s == "" {
				if rule.cleared == nil {
					rule.cleared = make(map[string]bool)
				}
				rule.cleared[key] = true
			}
			set(&rule, s)
			continue
		}

		switch key {
		case "swaggerType":
			s, ok := v.(string)
			if !ok {
				bad(key, v, "string")
				continue
			}
			rule.SwaggerType = &s
		case "isIn":
			list, ok := v.([]any)
			if !ok {
				bad(key, v, "list")
				continue
			}
			rule.IsIn = list
		case "defaultValue":
			rule.DefaultValue = v
		case "schema":
			m, ok := v.(map[string]any)
			if !ok {
				bad(key, v, "mapping")
				continue
			}
			rule.Schema = m
		}
	}

	diags.sort()
	return &rule, diags
}

// truthy mirrors the loose flag semantics of validation declarations: any
// non-zero scalar or non-empty collection enables the flag.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case int:
		return t != 0
	case int64:
		return t != 0
	case float64:
		return t != 0
	}
	return true
}

// RuleFromTag builds a Rule from a go-playground/validator style tag such as
// "required,numeric" or "oneof=asc desc". Tags without a documentation
// meaning (min, max, email, ...) are ignored. Two extra tags select the
// location: "in=<scope>" and "swagger=<type>".
func RuleFromTag(tag string) (*Rule, Diagnostics) {
	var (
		rule  Rule
		diags Diagnostics
	)

	for _, part := range strings.Split(tag, ",") {
		name, value, hasValue := strings.Cut(strings.TrimSpace(part), "=")
		if hasValue && value == "" {
			diags = append(diags, Diagnostic{Field: name, Message: "empty tag parameter"})
			continue
		}

		switch name {
		case "required":
			rule.IsRequired = Ptr(true)
		case "boolean":
			rule.IsBoolean = Ptr(true)
		case "number", "numeric":
			rule.IsNumeric = Ptr(true)
		case "datetime":
			rule.IsDate = Ptr(true)
		case "json":
			rule.IsJSONObject = Ptr(true)
		case "dive":
			rule.Type = "array"
		case "oneof":
			if !hasValue {
				diags = append(diags, Diagnostic{Field: name, Message: "missing values"})
				continue
			}
			for _, v := range strings.Fields(value) {
				rule.IsIn = append(rule.IsIn, v)
			}
		case "in":
			rule.Scope = value
		case "swagger":
			rule.SwaggerType = Ptr(value)
		}
	}

	return &rule, diags
}
