// Package mux implements the request router whose route table the swagger
// package documents.
//
// The router keeps its routes in registration order and exposes them through
// Walk, which is how documentation generators read the mount list without
// serving a request.
//
// # Router
//
// Create a new router and register handlers:
//
//	r := mux.NewRouter()
//	r.HandleFunc("/users/:id", GetUser).Methods(http.MethodGet)
//	r.HandleFunc("/articles/{category}/{page:int}", ListArticles)
//	http.Handle("/", r)
//
// # Path Variables
//
// A path segment is a variable when it is written restify-style as ":name"
// or gorilla-style as "{name}". The braced form accepts an optional
// constraint after a colon, either a macro name or a raw regular expression:
//
//	r.HandleFunc("/users/:id", handler)
//	r.HandleFunc("/users/{id:uuid}", handler)
//	r.HandleFunc("/articles/{id:[0-9]+}", handler)
//
// Variables always span a whole segment. Values are stored in the request
// context and retrieved with Vars:
//
//	id := mux.Vars(r)["id"]
//
// Available macros:
//
//	uuid     - RFC 4122 UUID (e.g. 550e8400-e29b-41d4-a716-446655440000)
//	int      - unsigned integer (e.g. 42)
//	float    - decimal number (e.g. 3.14, 42, .5)
//	slug     - URL-safe slug (e.g. my-post-title)
//	alpha    - alphabetic characters (e.g. hello)
//	alphanum - alphanumeric characters (e.g. abc123)
//	date     - ISO 8601 date (e.g. 2024-01-15)
//	hex      - hexadecimal string (e.g. deadBEEF)
//
// # Method Matching
//
// A route that matches the path but not the method produces 405 Method Not
// Allowed with an Allow header (RFC 9110 Section 15.5.6); otherwise 404.
//
//	r.HandleFunc("/users", handler).Methods(http.MethodGet, http.MethodPost)
//
// # Subrouters
//
// PathPrefix combined with Subrouter groups routes under a shared prefix.
// Templates registered on the subrouter are joined with the prefix:
//
//	api := r.PathPrefix("/api").Subrouter()
//	api.HandleFunc("/users/:id", handler) // matches /api/users/42
//
// # Middleware
//
// Middleware wraps matched handlers only:
//
//	r.Use(func(next http.Handler) http.Handler {
//	    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
//	        next.ServeHTTP(w, r)
//	    })
//	})
//
// # Walking Routes
//
//	r.Walk(func(route *mux.Route, router *mux.Router, ancestors []*mux.Route) error {
//	    tpl, _ := route.GetPathTemplate()
//	    methods, _ := route.GetMethods()
//	    fmt.Println(tpl, methods)
//	    return nil
//	})
package mux
