package swagger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	t.Run("find or create keeps identity", func(t *testing.T) {
		g := NewRegistry()

		a, created := g.FindOrCreate("/swagger/users", nil, "users")
		require.True(t, created)
		b, created := g.FindOrCreate("/swagger/users", nil, "ignored")
		require.False(t, created)

		assert.Same(t, a, b)
		assert.Equal(t, "users", b.Description)
		assert.Len(t, g.Resources(), 1)
	})

	t.Run("resources keep creation order", func(t *testing.T) {
		g := NewRegistry()
		for _, p := range []string{"/s/b", "/s/a", "/s/c", "/s/a"} {
			g.FindOrCreate(p, nil, "")
		}

		var paths []string
		for _, r := range g.Resources() {
			paths = append(paths, r.Path)
		}
		assert.Equal(t, []string{"/s/b", "/s/a", "/s/c"}, paths)
	})

	t.Run("models merge on later lookups", func(t *testing.T) {
		g := NewRegistry()
		user := &Model{ID: "User"}
		input := map[string]*Model{"User": user}

		res, _ := g.FindOrCreate("/s/users", input, "")
		input["Other"] = &Model{ID: "Other"}
		assert.Len(t, res.Models, 1, "models are copied on create")

		g.FindOrCreate("/s/users", map[string]*Model{"Group": {ID: "Group"}}, "")
		assert.Len(t, res.Models, 2)
		assert.Same(t, user, res.Models["User"])

		replaced := &Model{ID: "User2"}
		g.MergeModels(res, map[string]*Model{"User": replaced})
		assert.Same(t, replaced, res.Models["User"])
	})

	t.Run("register operation appends per path", func(t *testing.T) {
		g := NewRegistry()
		res, _ := g.FindOrCreate("/s/users", nil, "")

		first := g.RegisterOperation(res, "/users/{id}", "get", "fetch", &Operation{})
		g.RegisterOperation(res, "/users/{id}", "delete", "remove", &Operation{})
		g.RegisterOperation(res, "/users", "post", "", &Operation{})

		assert.Equal(t, "GET", first.HTTPMethod)
		assert.Equal(t, "GET", first.Method)
		assert.Equal(t, "fetch", first.Summary)

		apis := res.APIs()
		require.Len(t, apis, 2)
		assert.Equal(t, "/users/{id}", apis[0].Path)
		assert.Len(t, apis[0].Operations, 2)
		assert.Equal(t, "DELETE", apis[0].Operations[1].Method)
		assert.Equal(t, "/users", apis[1].Path)
	})

	t.Run("lookup by exact path", func(t *testing.T) {
		g := NewRegistry()
		res, _ := g.FindOrCreate("/s/users", nil, "")

		assert.Same(t, res, g.Resource("/s/users"))
		assert.Nil(t, g.Resource("/s/users/"))
		assert.Nil(t, g.Resource("/S/users"))
	})

	t.Run("resource built by hand can hold apis", func(t *testing.T) {
		res := &Resource{Path: "/s/x"}
		api := res.API("/x")
		assert.Same(t, api, res.API("/x"))
		assert.Empty(t, api.Operations)
	})

	t.Run("uninitialized registry panics", func(t *testing.T) {
		var zero Registry
		assert.PanicsWithValue(t, ErrNotInitialized, func() {
			zero.Resources()
		})

		var nilRegistry *Registry
		assert.PanicsWithValue(t, ErrNotInitialized, func() {
			nilRegistry.FindOrCreate("/s/x", nil, "")
		})
	})
}
