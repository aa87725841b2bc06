package params

import (
	"strings"

	"github.com/goliatone/go-apinsible/pkg/apidoc"
)

const (
	idSuffix  = "_id"
	idsSuffix = "_ids"
)

// Rules is the immutable configuration shared by Classify and Flatten.
type Rules struct {
	Mode  Mode
	Skip  SkipSet
	Types TypeMap
}

// NewRules returns rules for mode using its built-in skip set.
func NewRules(mode Mode) Rules {
	rules := Rules{Mode: mode, Types: DefaultTypeMap()}
	switch mode {
	case ModeInfo:
		rules.Skip = InfoSkipSet()
	default:
		rules.Skip = ResourceSkipSet()
	}
	return rules
}

func (r Rules) lookup(tag string) Kind {
	if r.Types == nil {
		return MapExpectedType(tag)
	}
	return r.Types.Lookup(tag)
}

// Classify decides what a single node contributes. Groups are reported as
// such without looking at their children.
func Classify(node apidoc.Param, rules Rules) Result {
	if node.IsGroup() {
		return Result{Outcome: OutcomeGroup}
	}
	if rules.Skip.Has(node.Name) {
		return Result{Outcome: OutcomeSkip}
	}

	var (
		name    = node.Name
		kind    Kind
		docKind Kind
	)
	switch {
	case strings.HasSuffix(node.Name, idSuffix):
		name = strings.TrimSuffix(node.Name, idSuffix)
		kind, docKind = KindEntity, KindStr
	case strings.HasSuffix(node.Name, idsSuffix):
		name = strings.TrimSuffix(node.Name, idsSuffix)
		kind, docKind = KindEntityList, KindList
	default:
		kind = rules.lookup(node.ExpectedType)
		docKind = kind
	}

	// Info modules document references as plain ids.
	if rules.Mode != ModeInfo {
		docKind = kind
	}

	return Result{
		Outcome: OutcomeLeaf,
		Param: Derived{
			Name:        name,
			Kind:        kind,
			DocKind:     docKind,
			Required:    node.Required,
			Description: strings.TrimSpace(node.Description),
		},
	}
}
