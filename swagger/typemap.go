package swagger

// Type tags produced by MapType.
const (
	TypeString   = "string"
	TypeDateTime = "dateTime"
	TypeBoolean  = "boolean"
	TypeInteger  = "integer"
	TypeFloat    = "float"
	TypeObject   = "object"
	TypeArray    = "array"
)

// MapType classifies an effective rule into a document type tag. The first
// matching flag wins; flag combinations are never inspected further.
func MapType(rule *Rule) string {
	switch {
	case rule == nil:
		return TypeString
	case rule.SwaggerType != nil:
		return *rule.SwaggerType
	case isTrue(rule.IsDate):
		return TypeDateTime
	case isTrue(rule.IsBoolean):
		return TypeBoolean
	case isTrue(rule.IsInt), isTrue(rule.IsNumeric):
		return TypeInteger
	case isTrue(rule.IsFloat), isTrue(rule.IsDecimal):
		return TypeFloat
	case isTrue(rule.IsJSONObject):
		return TypeObject
	case isTrue(rule.IsJSONArray):
		return TypeArray
	}

	return TypeString
}
