package swagger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildParameters(t *testing.T) {
	t.Run("location resolution", func(t *testing.T) {
		tests := []struct {
			name  string
			group string
			rule  *Rule
			want  string
		}{
			{"scope path", "queries", &Rule{Scope: "path"}, InPath},
			{"file uses swaggerScope", "queries", &Rule{SwaggerType: Ptr("file"), SwaggerScope: "formData", Scope: "body"}, "formData"},
			{"file falls back to scope", "queries", &Rule{SwaggerType: Ptr("file"), Scope: "body"}, InBody},
			{"scope body", "queries", &Rule{Scope: "body"}, InBody},
			{"scope header", "queries", &Rule{Scope: "header"}, InHeader},
			{"resources group", "resources", &Rule{}, InPath},
			{"path group", "path", &Rule{}, InPath},
			{"scope beats group", "resources", &Rule{Scope: "header"}, InHeader},
			{"default query", "queries", &Rule{}, InQuery},
			{"unknown scope falls through", "content", &Rule{Scope: "cookie"}, InQuery},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				params, _ := BuildParameters(RuleGroups{Group(tt.group, Field("f", tt.rule))})
				require.Len(t, params, 1)
				assert.Equal(t, tt.want, params[0].ParamType)
			})
		}
	})

	t.Run("body parameters never carry a type", func(t *testing.T) {
		rules := []*Rule{
			{Scope: "body"},
			{Scope: "body", IsInt: Ptr(true)},
			{Scope: "body", Type: "array"},
			{Scope: "body", SwaggerType: Ptr("object"), Schema: Schema{"$ref": "#/definitions/User"}},
		}

		for _, r := range rules {
			params, _ := BuildParameters(RuleGroups{Group("content", Field("user", r))})
			require.Len(t, params, 1)
			assert.Equal(t, InBody, params[0].ParamType)
			assert.Empty(t, params[0].Type)
		}
	})

	t.Run("descriptor fields", func(t *testing.T) {
		params, diags := BuildParameters(RuleGroups{
			Group("queries",
				Field("tags", &Rule{Type: "array", IsInt: Ptr(true), Description: "tag ids"}),
				Field("sort", &Rule{IsIn: []any{"asc", "desc"}}, &Rule{DefaultValue: "asc"}),
				Field("kind", &Rule{IsIn: []any{"a"}, DefaultValue: ""}),
			),
		})
		assert.Empty(t, diags)
		require.Len(t, params, 3)

		tags := params[0]
		assert.Equal(t, "tags", tags.Name)
		assert.Equal(t, TypeArray, tags.Type)
		assert.Equal(t, TypeInteger, tags.DataType)
		assert.Equal(t, &Items{Ref: TypeInteger}, tags.Items)
		assert.Equal(t, "tag ids", tags.Description)
		assert.Nil(t, tags.AllowableValues)

		sort := params[1]
		assert.Equal(t, &AllowableValues{ValueType: "LIST", Values: []any{"asc", "desc"}}, sort.AllowableValues)
		assert.Equal(t, "asc", sort.DefaultValue)

		kind := params[2]
		assert.NotNil(t, kind.AllowableValues)
		assert.Nil(t, kind.DefaultValue)
	})

	t.Run("required only when exactly true", func(t *testing.T) {
		params, _ := BuildParameters(RuleGroups{
			Group("queries",
				Field("a", &Rule{IsRequired: Ptr(true)}),
				Field("b", &Rule{IsRequired: Ptr(false)}),
				Field("c", &Rule{}),
			),
		})
		require.Len(t, params, 3)
		assert.True(t, params[0].Required)
		assert.False(t, params[1].Required)
		assert.False(t, params[2].Required)
	})

	t.Run("order follows groups then entries", func(t *testing.T) {
		params, _ := BuildParameters(RuleGroups{
			Group("resources", Field("id", &Rule{}), Field("sub", &Rule{})),
			Group("queries", Field("z", &Rule{}), Field("a", &Rule{})),
			Group("headers", Field("x-token", &Rule{Scope: "header"})),
		})

		var names []string
		for _, p := range params {
			names = append(names, p.Name)
		}
		assert.Equal(t, []string{"id", "sub", "z", "a", "x-token"}, names)
	})

	t.Run("malformed entries degrade with diagnostics", func(t *testing.T) {
		params, diags := BuildParameters(RuleGroups{
			Group("queries",
				NamedRule{Name: "", Rules: RuleEntry{{IsInt: Ptr(true)}}},
				NamedRule{Name: "empty"},
				Field("odd", &Rule{Scope: "cookie"}),
			),
		})

		require.Len(t, params, 3)
		assert.Equal(t, TypeInteger, params[0].Type)
		assert.Equal(t, TypeString, params[1].Type)
		assert.Equal(t, InQuery, params[1].ParamType)
		assert.Equal(t, InQuery, params[2].ParamType)

		require.Len(t, diags, 3)
		assert.Equal(t, "queries", diags[0].Field)
		assert.Equal(t, "queries.empty", diags[1].Field)
		assert.Equal(t, "queries.odd", diags[2].Field)
		assert.Contains(t, diags[2].Message, "cookie")
	})

	t.Run("no groups yields no parameters", func(t *testing.T) {
		params, diags := BuildParameters(nil)
		assert.Empty(t, params)
		assert.Empty(t, diags)
	})
}
