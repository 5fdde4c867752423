package mux

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTemplate(t *testing.T) {
	t.Run("restify and braced variables", func(t *testing.T) {
		pt, err := parseTemplate("/users/:id/posts/{postId:int}", false)
		require.NoError(t, err)
		assert.Equal(t, []string{"id", "postId"}, pt.varsN)
		assert.Len(t, pt.segments, 4)
	})

	t.Run("rejects missing leading slash", func(t *testing.T) {
		_, err := parseTemplate("users", false)
		assert.Error(t, err)
	})

	t.Run("rejects empty restify name", func(t *testing.T) {
		_, err := parseTemplate("/users/:", false)
		assert.Error(t, err)
	})

	t.Run("rejects unbalanced braces", func(t *testing.T) {
		_, err := parseTemplate("/users/{id", false)
		assert.Error(t, err)
	})

	t.Run("rejects partial-segment variables", func(t *testing.T) {
		_, err := parseTemplate("/files/name.{ext}", false)
		assert.Error(t, err)
	})

	t.Run("rejects duplicated variables", func(t *testing.T) {
		_, err := parseTemplate("/a/:id/b/{id}", false)
		assert.Error(t, err)
	})

	t.Run("rejects invalid constraint", func(t *testing.T) {
		_, err := parseTemplate("/a/{id:[}", false)
		assert.Error(t, err)
	})
}

func TestPathTemplateMatch(t *testing.T) {
	t.Run("exact match extracts vars", func(t *testing.T) {
		pt, err := parseTemplate("/users/:id", false)
		require.NoError(t, err)

		vars, ok := pt.match("/users/42")
		assert.True(t, ok)
		assert.Equal(t, map[string]string{"id": "42"}, vars)

		_, ok = pt.match("/users/42/extra")
		assert.False(t, ok)

		_, ok = pt.match("/users/")
		assert.False(t, ok)
	})

	t.Run("macro constraint", func(t *testing.T) {
		pt, err := parseTemplate("/items/{id:int}", false)
		require.NoError(t, err)

		_, ok := pt.match("/items/12")
		assert.True(t, ok)
		_, ok = pt.match("/items/abc")
		assert.False(t, ok)
	})

	t.Run("raw regexp constraint", func(t *testing.T) {
		pt, err := parseTemplate("/v/{ver:v[0-9]+}", false)
		require.NoError(t, err)

		_, ok := pt.match("/v/v2")
		assert.True(t, ok)
		_, ok = pt.match("/v/x2")
		assert.False(t, ok)
	})

	t.Run("prefix match", func(t *testing.T) {
		pt, err := parseTemplate("/api/", true)
		require.NoError(t, err)

		_, ok := pt.match("/api")
		assert.True(t, ok)
		_, ok = pt.match("/api/users/1")
		assert.True(t, ok)
		_, ok = pt.match("/other")
		assert.False(t, ok)
	})

	t.Run("root template", func(t *testing.T) {
		pt, err := parseTemplate("/", false)
		require.NoError(t, err)

		_, ok := pt.match("/")
		assert.True(t, ok)
		_, ok = pt.match("/a")
		assert.False(t, ok)
	})
}

func TestRouteInspection(t *testing.T) {
	t.Run("GetPathTemplate keeps the written form", func(t *testing.T) {
		r := NewRouter()
		route := r.HandleFunc("/users/:id", nil)

		tpl, err := route.GetPathTemplate()
		require.NoError(t, err)
		assert.Equal(t, "/users/:id", tpl)
	})

	t.Run("GetMethods upper-cases and errors when unset", func(t *testing.T) {
		r := NewRouter()
		route := r.HandleFunc("/a", nil)

		_, err := route.GetMethods()
		assert.Error(t, err)

		route.Methods("get", "post")
		methods, err := route.GetMethods()
		require.NoError(t, err)
		assert.Equal(t, []string{"GET", "POST"}, methods)
	})

	t.Run("invalid template is reported by GetError", func(t *testing.T) {
		r := NewRouter()
		route := r.HandleFunc("no-slash", nil)

		assert.Error(t, route.GetError())
		_, err := route.GetPathTemplate()
		assert.Error(t, err)
		assert.False(t, route.Match(httptest.NewRequest(http.MethodGet, "/no-slash", nil), &RouteMatch{}))
	})

	t.Run("Name twice is an error", func(t *testing.T) {
		r := NewRouter()
		route := r.HandleFunc("/a", nil).Name("a").Name("b")
		assert.Error(t, route.GetError())
		assert.Equal(t, "a", route.GetName())
	})
}

func TestContextHelpers(t *testing.T) {
	t.Run("CurrentRoute inside handler", func(t *testing.T) {
		r := NewRouter()
		var current *Route
		route := r.HandleFunc("/x", func(_ http.ResponseWriter, req *http.Request) {
			current = CurrentRoute(req)
		})

		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.Same(t, route, current)
	})

	t.Run("no context values outside router", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		assert.Nil(t, Vars(req))
		assert.Nil(t, CurrentRoute(req))
	})
}

func TestResponseHelpers(t *testing.T) {
	t.Run("ResponseJSON", func(t *testing.T) {
		w := httptest.NewRecorder()
		ResponseJSON(w, http.StatusCreated, map[string]string{"a": "b"})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"a":"b"}`, w.Body.String())
	})

	t.Run("ResponseJSON encode failure", func(t *testing.T) {
		w := httptest.NewRecorder()
		ResponseJSON(w, http.StatusOK, make(chan int))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("ResponseYAML", func(t *testing.T) {
		w := httptest.NewRecorder()
		ResponseYAML(w, http.StatusOK, map[string]string{"a": "b"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/x-yaml", w.Header().Get("Content-Type"))
		assert.Equal(t, "a: b\n", w.Body.String())
	})
}
