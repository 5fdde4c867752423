package swagger

// Parameter is one documented input of an operation, in the shape kept by
// the registry and served by the per-resource documents.
type Parameter struct {
	Name        string `json:"name"`
	Type        string `json:"type,omitempty"`
	DataType    string `json:"dataType"`
	Description string `json:"description,omitempty"`
	Schema      Schema `json:"schema,omitempty"`

	// ParamType is the location: path, query, header, body, or the scope
	// declared for file uploads.
	ParamType string `json:"paramType"`
	Required  bool   `json:"required,omitempty"`

	Items           *Items           `json:"items,omitempty"`
	AllowableValues *AllowableValues `json:"allowableValues,omitempty"`
	DefaultValue    any              `json:"defaultValue,omitempty"`
	Format          string           `json:"format,omitempty"`
	AllowEmptyValue bool             `json:"allowEmptyValue,omitempty"`
}

// Items references the element type of an array parameter.
type Items struct {
	Ref string `json:"$ref" yaml:"$ref"`
}

// AllowableValues lists the values an enumerated parameter accepts.
type AllowableValues struct {
	ValueType string `json:"valueType"`
	Values    []any  `json:"values"`
}

// ResponseMessage documents one status code of an operation.
type ResponseMessage struct {
	Code    int    `json:"code" yaml:"code" validate:"min=100,max=599"`
	Message string `json:"message" yaml:"message"`
}

// Operation is one documented (method, path) pair.
type Operation struct {
	HTTPMethod    string                `json:"httpMethod"`
	Method        string                `json:"method"`
	Summary       string                `json:"summary,omitempty"`
	Description   string                `json:"description,omitempty"`
	Notes         string                `json:"notes,omitempty"`
	Nickname      string                `json:"nickname,omitempty"`
	ResponseClass string                `json:"responseClass,omitempty"`
	OperationID   string                `json:"operationId,omitempty"`
	Tags          []string              `json:"tags,omitempty"`
	Produces      []string              `json:"produces,omitempty"`
	Consumes      []string              `json:"consumes,omitempty"`
	Parameters    []*Parameter          `json:"parameters"`
	Responses     map[string]any        `json:"responses,omitempty"`
	Security      []map[string][]string `json:"security,omitempty"`

	ResponseMessages   []ResponseMessage `json:"responseMessages,omitempty"`
	OriginalParameters []map[string]any  `json:"originalParameters,omitempty"`

	// Filter gates the operation: it is only emitted when the discovery
	// request asks for this exact tag.
	Filter string `json:"swaggerFilter,omitempty"`
}

// Model is a named schema contributed by a route.
type Model struct {
	ID         string            `json:"id,omitempty" yaml:"id,omitempty"`
	Required   []string          `json:"required,omitempty" yaml:"required,omitempty"`
	Properties map[string]Schema `json:"properties" yaml:"properties"`
}

// API groups the operations registered under one document path.
type API struct {
	Path        string       `json:"path"`
	Description string       `json:"description"`
	Operations  []*Operation `json:"operations"`
}
