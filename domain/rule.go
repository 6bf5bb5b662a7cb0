package domain

// RuleType is the kind of value a ValidationRule accepts.
type RuleType string

const (
	RuleFloat   RuleType = "float"
	RuleInt     RuleType = "int"
	RuleEnum    RuleType = "enum"
	RuleBoolean RuleType = "boolean"
	RuleDate    RuleType = "date"
)

// ValidationRule is a static constraint on one input field. Rules are defined
// once per calculator type and never mutated.
type ValidationRule struct {
	Field    string   `json:"field"`
	Type     RuleType `json:"type"`
	Min      *float64 `json:"min,omitempty"`
	Max      *float64 `json:"max,omitempty"`
	Enum     []string `json:"enum,omitempty"`
	Pattern  string   `json:"pattern,omitempty"`
	Optional bool     `json:"optional"`
	Message  string   `json:"message"`
}
