package swagger

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Configuration defaults.
const (
	DefaultPathPrefix   = "/swagger/"
	DefaultDiscoveryURL = DefaultPathPrefix + "resources.json"
	DefaultVersion      = "1.0.0"
	DefaultTitle        = "API"
)

// Config controls how the document is assembled and where it is served.
type Config struct {
	// DiscoveryURL serves the discovery document as JSON.
	DiscoveryURL string `yaml:"discoveryUrl" validate:"required,startswith=/"`

	// YAMLDiscoveryURL, when set, serves the same document as YAML.
	YAMLDiscoveryURL string `yaml:"yamlDiscoveryUrl,omitempty" validate:"omitempty,startswith=/"`

	// DocsURL, when set, serves a Swagger UI page reading DiscoveryURL.
	DocsURL string `yaml:"docsUrl,omitempty" validate:"omitempty,startswith=/"`

	// PathPrefix is prepended to every resource grouping key.
	PathPrefix string `yaml:"pathPrefix" validate:"required,startswith=/"`

	Version     string         `yaml:"version" validate:"required"`
	Title       string         `yaml:"title" validate:"required"`
	Description string         `yaml:"description,omitempty"`
	Host        string         `yaml:"host,omitempty" validate:"omitempty,hostname_port|hostname_rfc1123"`
	BasePath    string         `yaml:"basePath,omitempty"`
	Schemes     []string       `yaml:"schemes,omitempty" validate:"dive,oneof=http https ws wss"`
	Info        map[string]any `yaml:"info,omitempty"`

	SecurityDefinitions map[string]any `yaml:"securityDefinitions,omitempty"`

	// Definitions seeds the document definitions. Model definitions found
	// while assembling are written into this map.
	Definitions map[string]any `yaml:"definitions,omitempty"`

	// Blacklist lists resource grouping keys whose routes are not documented.
	Blacklist []string `yaml:"blacklist,omitempty"`

	// APIDescriptions maps a resource grouping key to its description.
	APIDescriptions map[string]string `yaml:"apiDescriptions,omitempty"`

	// ResponseMessages replaces the default response messages of operations
	// that declare none.
	ResponseMessages []ResponseMessage `yaml:"responseMessages,omitempty" validate:"dive"`
}

// DefaultConfig returns a Config with every default applied.
func DefaultConfig() Config {
	var cfg Config
	cfg.SetDefaults()
	return cfg
}

// SetDefaults fills unset fields with their defaults.
func (c *Config) SetDefaults() {
	if c.PathPrefix == "" {
		c.PathPrefix = DefaultPathPrefix
	}
	if c.DiscoveryURL == "" {
		c.DiscoveryURL = c.PathPrefix + "resources.json"
	}
	if c.Version == "" {
		c.Version = DefaultVersion
	}
	if c.Title == "" {
		c.Title = DefaultTitle
	}
	if c.Definitions == nil {
		c.Definitions = make(map[string]any)
	}
}

var (
	configValidatorOnce sync.Once
	configValidator     *validator.Validate
)

// Validate checks the configuration. Validation failures are returned as
// validator.ValidationErrors wrapped with context.
func (c *Config) Validate() error {
	configValidatorOnce.Do(func() {
		configValidator = validator.New()
	})

	if err := configValidator.Struct(c); err != nil {
		return fmt.Errorf("swagger: invalid config: %w", err)
	}

	return nil
}

// APIDescription returns the description configured for a resource path.
// The path prefix is stripped before the lookup.
func (c *Config) APIDescription(resourcePath string) string {
	return c.APIDescriptions[strings.TrimPrefix(resourcePath, c.PathPrefix)]
}

func (c *Config) blacklisted(key string) bool {
	return slices.Contains(c.Blacklist, key)
}
