package swagger

// Parameter locations.
const (
	InPath   = "path"
	InQuery  = "query"
	InHeader = "header"
	InBody   = "body"
)

// pathGroups are the rule groups whose fields are path variables when no
// scope is declared.
var pathGroups = map[string]bool{
	"resources": true,
	"path":      true,
}

var knownScopes = map[string]bool{
	InPath:     true,
	InQuery:    true,
	InHeader:   true,
	InBody:     true,
	"formData": true,
}

// BuildParameters turns a route's validation groups into parameters, one
// per named entry, in group then entry order. Malformed entries fall back
// to defaults and are reported in the returned diagnostics.
func BuildParameters(groups RuleGroups) ([]*Parameter, Diagnostics) {
	var (
		params []*Parameter
		diags  Diagnostics
	)

	for _, group := range groups {
		for i, entry := range group.Entries {
			field := group.Name + "." + entry.Name
			if entry.Name == "" {
				field = group.Name
				diags.addf("", field, "entry %d has no name", i)
			}
			if len(entry.Rules) == 0 {
				diags.addf("", field, "no rules declared, documented as string")
			}

			rule := entry.Rules.Merge()
			if rule.Scope != "" && !knownScopes[rule.Scope] {
				diags.addf("", field, "unknown scope %q", rule.Scope)
			}

			params = append(params, buildParameter(group.Name, entry.Name, rule))
		}
	}

	return params, diags
}

func buildParameter(group, name string, rule *Rule) *Parameter {
	tag := MapType(rule)

	p := &Parameter{
		Name:            name,
		Type:            tag,
		DataType:        tag,
		Description:     rule.Description,
		Schema:          rule.Schema,
		Format:          rule.Format,
		AllowEmptyValue: isTrue(rule.AllowEmptyValue),
	}

	if rule.Type == TypeArray {
		p.Type = TypeArray
		p.Items = &Items{Ref: tag}
	}

	if rule.IsIn != nil {
		p.AllowableValues = &AllowableValues{ValueType: "LIST", Values: rule.IsIn}
		if truthy(rule.DefaultValue) {
			p.DefaultValue = rule.DefaultValue
		}
	}

	p.Required = isTrue(rule.IsRequired)

	switch {
	case rule.Scope == InPath:
		p.ParamType = InPath
	case rule.SwaggerType != nil && *rule.SwaggerType == "file":
		p.ParamType = rule.SwaggerScope
		if p.ParamType == "" {
			p.ParamType = rule.Scope
		}
	case rule.Scope == InBody:
		p.ParamType = InBody
		p.Type = ""
	case rule.Scope == InHeader:
		p.ParamType = InHeader
	case pathGroups[group]:
		p.ParamType = InPath
	default:
		p.ParamType = InQuery
	}

	return p
}
