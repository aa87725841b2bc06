package params

import "fmt"

// Kind is the option type emitted into generated code and documentation.
type Kind string

const (
	KindList       Kind = "list"
	KindDict       Kind = "dict"
	KindInt        Kind = "int"
	KindBool       Kind = "bool"
	KindStr        Kind = "str"
	KindEntity     Kind = "entity"
	KindEntityList Kind = "entity_list"
)

// IsPrimitive reports whether k is one of the plain value kinds.
func (k Kind) IsPrimitive() bool {
	switch k {
	case KindList, KindDict, KindInt, KindBool, KindStr:
		return true
	default:
		return false
	}
}

// Mode selects how documentation kinds are derived.
type Mode string

const (
	// ModeResource documents options with the same kind the code declares.
	ModeResource Mode = "resource"
	// ModeInfo documents id references with their primitive wire type.
	ModeInfo Mode = "info"
)

// ParseMode validates a mode name.
func ParseMode(raw string) (Mode, error) {
	switch Mode(raw) {
	case ModeResource, ModeInfo:
		return Mode(raw), nil
	default:
		return "", fmt.Errorf("params: unknown mode %q", raw)
	}
}

// Derived is one generated option.
type Derived struct {
	Name        string
	Kind        Kind
	DocKind     Kind
	Required    bool
	Description string
}

// Outcome tags a classification result.
type Outcome int

const (
	// OutcomeGroup marks a node whose children must be visited instead.
	OutcomeGroup Outcome = iota
	// OutcomeSkip marks a leaf listed in the skip set.
	OutcomeSkip
	// OutcomeLeaf marks a leaf that produced a Derived option.
	OutcomeLeaf
)

func (o Outcome) String() string {
	switch o {
	case OutcomeGroup:
		return "group"
	case OutcomeSkip:
		return "skip"
	case OutcomeLeaf:
		return "leaf"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Result is the tagged value returned by Classify. Param is only meaningful
// when Outcome is OutcomeLeaf.
type Result struct {
	Outcome Outcome
	Param   Derived
}
