package catalog

// PropertyType is one of the four canonical schema kinds
type PropertyType string

const (
	TypeString  PropertyType = "string"
	TypeNumber  PropertyType = "number"
	TypeInteger PropertyType = "integer"
	TypeBoolean PropertyType = "boolean"
)

// Property represents a single parsed property declaration
type Property struct {
	Name        string       `json:"name"`
	Type        PropertyType `json:"type"`
	Optional    bool         `json:"optional"`
	Description string       `json:"description"`
}

// Request describes one catalog item to generate
type Request struct {
	Name       string     `json:"name"`
	Properties []Property `json:"properties"`
	Required   []string   `json:"required"`
	Events     []string   `json:"events"`
	Children   bool       `json:"children"`
	Bound      bool       `json:"bound"`
}
