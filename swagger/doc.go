// Package swagger derives a Swagger 2.0 discovery document from the
// validation rules attached to mux routes and serves it over HTTP.
//
// See: https://swagger.io/specification/v2/
//
// # Describing Routes
//
// Create a Docs, register routes as usual and attach a RouteSpec to each
// route that should be documented. Only routes with a Validation
// declaration are part of the document:
//
//	docs, err := swagger.New(swagger.Config{Title: "Users API", Blacklist: []string{"internal"}})
//	if err != nil {
//	    return err
//	}
//
//	r := mux.NewRouter()
//	route := r.HandleFunc("/users/:id", getUser).Methods(http.MethodGet)
//
//	spec := docs.Route(route)
//	spec.Swagger.Summary = "Fetch a user"
//	spec.Validation = swagger.RuleGroups{
//	    swagger.Group("resources",
//	        swagger.Field("id", &swagger.Rule{IsInt: swagger.Ptr(true), IsRequired: swagger.Ptr(true)}),
//	    ),
//	    swagger.Group("queries",
//	        swagger.Field("sort",
//	            &swagger.Rule{IsIn: []any{"asc", "desc"}},
//	            &swagger.Rule{DefaultValue: "asc"},
//	        ),
//	    ),
//	}
//
// A field may list several partial rules; they are merged left to right.
// Rules can also be parsed from free-form maps with ParseRule or from
// validator tags with RuleFromTag.
//
// # Type Mapping
//
// MapType picks the parameter type from the first matching rule flag:
//
//	SwaggerType set        -> SwaggerType verbatim
//	IsDate                 -> dateTime
//	IsBoolean              -> boolean
//	IsInt, IsNumeric       -> integer
//	IsFloat, IsDecimal     -> float
//	IsJSONObject           -> object
//	IsJSONArray            -> array
//	otherwise              -> string
//
// # Parameter Location
//
// The location is resolved in this order: scope "path"; SwaggerType "file"
// (SwaggerScope, else Scope); scope "body" (the type is dropped); scope
// "header"; fields of the "resources" or "path" group; everything else is a
// query parameter.
//
// # Loading and Serving
//
// Load walks the router once, grouping operations into resources keyed by
// Config.PathPrefix plus the first URL segment (or Swagger.DocPath). The
// first registration of a (method, url) pair wins. Handle serves the
// discovery document:
//
//	docs.Load(r)
//	docs.Handle(r)
//	// GET /swagger/resources.json                    -> document
//	// GET /swagger/resources.json?swaggerFilter=beta -> only "beta" gated operations
//	// GET /swagger/users                              -> legacy resource document
//
// Every document is validated before it is served. KinValidator, the
// default, converts it to OpenAPI 3 with kin-openapi; validation errors
// answer 500 and no document is sent.
//
// # Diagnostics
//
// Malformed rule data never fails generation. BuildParameters, Load and
// Document return Diagnostics describing what was ignored or defaulted.
//
// # Logging
//
// Log output goes through goose channels on Goose, silent by default:
//
//	swagger.Goose.Loader = goose.Alert(2)
//	swagger.Goose.Assemble = goose.Alert(1)
package swagger
