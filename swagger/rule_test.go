package swagger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleEntryMerge(t *testing.T) {
	t.Run("later rules win on conflicts", func(t *testing.T) {
		entry := RuleEntry{
			{IsInt: Ptr(true), Description: "first", Scope: "query"},
			{IsInt: Ptr(false), Description: "second"},
			{IsRequired: Ptr(true)},
		}

		merged := entry.Merge()
		assert.Equal(t, Ptr(false), merged.IsInt)
		assert.Equal(t, "second", merged.Description)
		assert.Equal(t, "query", merged.Scope)
		assert.Equal(t, Ptr(true), merged.IsRequired)
	})

	t.Run("unset fields do not clear earlier values", func(t *testing.T) {
		entry := RuleEntry{
			{IsIn: []any{"a", "b"}, DefaultValue: "a", SwaggerType: Ptr("string"), Schema: Schema{"type": "object"}},
			{},
			nil,
		}

		merged := entry.Merge()
		assert.Equal(t, []any{"a", "b"}, merged.IsIn)
		assert.Equal(t, "a", merged.DefaultValue)
		assert.Equal(t, Ptr("string"), merged.SwaggerType)
		assert.Equal(t, Schema{"type": "object"}, merged.Schema)
	})

	t.Run("declared empty strings clear earlier values", func(t *testing.T) {
		reset, diags := ParseRule(map[string]any{"scope": "", "description": ""})
		require.Empty(t, diags)

		merged := RuleEntry{{Scope: "body", Description: "payload", Format: "uuid"}, reset}.Merge()
		assert.Empty(t, merged.Scope)
		assert.Empty(t, merged.Description)
		assert.Equal(t, "uuid", merged.Format)
	})

	t.Run("zero strings in literals keep earlier values", func(t *testing.T) {
		merged := RuleEntry{{Scope: "body"}, {Scope: ""}}.Merge()
		assert.Equal(t, "body", merged.Scope)
	})

	t.Run("empty entry merges to empty rule", func(t *testing.T) {
		assert.Equal(t, &Rule{}, RuleEntry(nil).Merge())
	})

	t.Run("merge equals left to right overlay of every field", func(t *testing.T) {
		a := &Rule{IsDate: Ptr(true), Type: "array", SwaggerScope: "formData", Format: "x"}
		b := &Rule{IsDate: Ptr(false), Format: "y", AllowEmptyValue: Ptr(true)}

		merged := RuleEntry{a, b}.Merge()
		assert.Equal(t, &Rule{
			IsDate:          Ptr(false),
			Type:            "array",
			SwaggerScope:    "formData",
			Format:          "y",
			AllowEmptyValue: Ptr(true),
		}, merged)
	})
}

func TestParseRule(t *testing.T) {
	t.Run("recognized keys", func(t *testing.T) {
		rule, diags := ParseRule(map[string]any{
			"isRequired":   true,
			"isInt":        true,
			"swaggerType":  "file",
			"scope":        "body",
			"swaggerScope": "formData",
			"type":         "array",
			"isIn":         []any{1, 2},
			"defaultValue": 1,
			"description":  "page number",
			"schema":       map[string]any{"$ref": "#/definitions/Page"},
			"min":          1,
		})

		assert.Empty(t, diags)
		assert.Equal(t, &Rule{
			IsRequired:   Ptr(true),
			IsInt:        Ptr(true),
			SwaggerType:  Ptr("file"),
			Scope:        "body",
			SwaggerScope: "formData",
			Type:         "array",
			IsIn:         []any{1, 2},
			DefaultValue: 1,
			Description:  "page number",
			Schema:       Schema{"$ref": "#/definitions/Page"},
		}, rule)
	})

	t.Run("flags follow value truthiness", func(t *testing.T) {
		rule, diags := ParseRule(map[string]any{
			"isInt":     map[string]any{"min": 1},
			"isDate":    "",
			"isNumeric": 0,
		})

		assert.Empty(t, diags)
		assert.Equal(t, Ptr(true), rule.IsInt)
		assert.Equal(t, Ptr(false), rule.IsDate)
		assert.Equal(t, Ptr(false), rule.IsNumeric)
	})

	t.Run("isRequired must be a real boolean", func(t *testing.T) {
		rule, diags := ParseRule(map[string]any{"isRequired": "true"})

		assert.Nil(t, rule.IsRequired)
		require.Len(t, diags, 1)
		assert.Equal(t, "isRequired", diags[0].Field)
	})

	t.Run("wrong shapes are dropped and reported in field order", func(t *testing.T) {
		rule, diags := ParseRule(map[string]any{
			"swaggerType": 5,
			"isIn":        "a,b",
			"scope":       true,
			"schema":      "User",
		})

		assert.Nil(t, rule.SwaggerType)
		assert.Nil(t, rule.IsIn)
		assert.Empty(t, rule.Scope)
		assert.Nil(t, rule.Schema)

		require.Len(t, diags, 4)
		assert.Equal(t, "isIn", diags[0].Field)
		assert.Equal(t, "schema", diags[1].Field)
		assert.Equal(t, "scope", diags[2].Field)
		assert.Equal(t, "swaggerType", diags[3].Field)
	})
}

func TestRuleFromTag(t *testing.T) {
	t.Run("maps validator vocabulary", func(t *testing.T) {
		rule, diags := RuleFromTag("required,numeric,oneof=1 2 3")

		assert.Empty(t, diags)
		assert.Equal(t, Ptr(true), rule.IsRequired)
		assert.Equal(t, Ptr(true), rule.IsNumeric)
		assert.Equal(t, []any{"1", "2", "3"}, rule.IsIn)
	})

	t.Run("location and type override", func(t *testing.T) {
		rule, diags := RuleFromTag("in=header, swagger=file, dive")

		assert.Empty(t, diags)
		assert.Equal(t, "header", rule.Scope)
		assert.Equal(t, Ptr("file"), rule.SwaggerType)
		assert.Equal(t, TypeArray, rule.Type)
	})

	t.Run("unmapped tags are ignored", func(t *testing.T) {
		rule, diags := RuleFromTag("omitempty,email,min=3")

		assert.Empty(t, diags)
		assert.Equal(t, TypeString, MapType(rule))
	})

	t.Run("empty parameters are reported", func(t *testing.T) {
		rule, diags := RuleFromTag("oneof=,boolean,oneof")

		assert.Equal(t, Ptr(true), rule.IsBoolean)
		assert.Nil(t, rule.IsIn)
		require.Len(t, diags, 2)
		assert.Equal(t, "oneof", diags[0].Field)
		assert.Equal(t, "oneof", diags[1].Field)
	})
}
