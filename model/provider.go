// Package model contains the shared domain types used across the gateway:
// provider descriptors, normalized results, and the error envelope.
package model

// Provider describes one third-party API in the catalog. Providers are
// defined at build time and immutable at runtime; request traffic never
// creates or mutates them.
type Provider struct {
	ID           int             `yaml:"id" json:"id"`
	Name         string          `yaml:"name" json:"name"`
	Description  string          `yaml:"description" json:"description"`
	Endpoint     string          `yaml:"endpoint" json:"endpoint"`
	Parameters   []ParameterSpec `yaml:"parameters" json:"parameters"`
	WhyUse       string          `yaml:"why_use" json:"why_use"`
	HowUse       string          `yaml:"how_use" json:"how_use"`
	Category     string          `yaml:"category" json:"category"`
	HasHandler   bool            `yaml:"has_handler" json:"has_handler"`
	IsAdult      bool            `yaml:"is_adult" json:"is_adult"`
	AdultWarning string          `yaml:"adult_warning,omitempty" json:"adult_warning,omitempty"`
}

// ParameterSpec describes one form parameter accepted by a provider.
type ParameterSpec struct {
	Name     string            `yaml:"name" json:"name"`
	Label    string            `yaml:"label" json:"label"`
	Type     string            `yaml:"type" json:"type"`
	Required bool              `yaml:"required" json:"required"`
	Options  []ParameterOption `yaml:"options,omitempty" json:"options,omitempty"`
}

// Parameter types accepted by the validator.
const (
	ParamTypeText   = "text"
	ParamTypeSelect = "select"
)

// ParameterOption is a single choice for a select parameter.
type ParameterOption struct {
	Value string `yaml:"value" json:"value"`
	Label string `yaml:"label" json:"label"`
}
