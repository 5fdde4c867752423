package swagger

// Schema is a free-form JSON schema fragment. It is carried into the
// document verbatim.
type Schema map[string]any

// Document is the Swagger 2.0 discovery document.
//
// See: https://swagger.io/specification/v2/#swagger-object
type Document struct {
	Swagger             string              `json:"swagger" yaml:"swagger"`
	Info                Info                `json:"info" yaml:"info"`
	Host                string              `json:"host,omitempty" yaml:"host,omitempty"`
	BasePath            string              `json:"basePath,omitempty" yaml:"basePath,omitempty"`
	Schemes             []string            `json:"schemes,omitempty" yaml:"schemes,omitempty"`
	Paths               map[string]PathItem `json:"paths" yaml:"paths"`
	Definitions         map[string]any      `json:"definitions" yaml:"definitions"`
	SecurityDefinitions map[string]any      `json:"securityDefinitions,omitempty" yaml:"securityDefinitions,omitempty"`
}

// Info is the document metadata.
//
// See: https://swagger.io/specification/v2/#info-object
type Info struct {
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Version     string `json:"version" yaml:"version"`
	Title       string `json:"title" yaml:"title"`
}

// PathItem maps a lower-cased HTTP method to its operation.
//
// See: https://swagger.io/specification/v2/#path-item-object
type PathItem map[string]*DocOperation

// DocOperation is an operation as emitted in the discovery document.
//
// See: https://swagger.io/specification/v2/#operation-object
type DocOperation struct {
	Tags        []string              `json:"tags,omitempty" yaml:"tags,omitempty"`
	Summary     string                `json:"summary,omitempty" yaml:"summary,omitempty"`
	Description string                `json:"description,omitempty" yaml:"description,omitempty"`
	OperationID string                `json:"operationId,omitempty" yaml:"operationId,omitempty"`
	Consumes    []string              `json:"consumes,omitempty" yaml:"consumes,omitempty"`
	Produces    []string              `json:"produces,omitempty" yaml:"produces,omitempty"`
	Parameters  []any                 `json:"parameters" yaml:"parameters"`
	Responses   map[string]any        `json:"responses,omitempty" yaml:"responses,omitempty"`
	Security    []map[string][]string `json:"security,omitempty" yaml:"security,omitempty"`
}

// DocParameter is a Parameter reshaped for the discovery document.
//
// See: https://swagger.io/specification/v2/#parameter-object
type DocParameter struct {
	Name            string `json:"name" yaml:"name"`
	In              string `json:"in" yaml:"in"`
	Description     string `json:"description,omitempty" yaml:"description,omitempty"`
	Required        bool   `json:"required,omitempty" yaml:"required,omitempty"`
	Schema          Schema `json:"schema,omitempty" yaml:"schema,omitempty"`
	Type            string `json:"type,omitempty" yaml:"type,omitempty"`
	Format          string `json:"format,omitempty" yaml:"format,omitempty"`
	AllowEmptyValue bool   `json:"allowEmptyValue,omitempty" yaml:"allowEmptyValue,omitempty"`
	Items           *Items `json:"items,omitempty" yaml:"items,omitempty"`
}

// Definition is the document form of a Model.
type Definition struct {
	Type       string            `json:"type" yaml:"type"`
	Properties map[string]Schema `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// ResourceListing is the legacy per-resource document served at each
// resource path.
type ResourceListing struct {
	SwaggerVersion string            `json:"swaggerVersion"`
	APIVersion     string            `json:"apiVersion"`
	BasePath       string            `json:"basePath"`
	Info           map[string]any    `json:"info,omitempty"`
	ResourcePath   string            `json:"resourcePath"`
	APIs           []*API            `json:"apis"`
	Models         map[string]*Model `json:"models"`
}
