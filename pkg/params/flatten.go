package params

import (
	"iter"

	"github.com/goliatone/go-apinsible/pkg/apidoc"
)

// Flatten yields the options derived from nodes, depth-first and
// left-to-right. The sequence is lazy and may be ranged over more than once.
func Flatten(nodes []apidoc.Param, rules Rules) iter.Seq[Derived] {
	return func(yield func(Derived) bool) {
		walk(nodes, rules, yield)
	}
}

func walk(nodes []apidoc.Param, rules Rules, yield func(Derived) bool) bool {
	for _, node := range nodes {
		result := Classify(node, rules)
		switch result.Outcome {
		case OutcomeGroup:
			if !walk(node.Params, rules, yield) {
				return false
			}
		case OutcomeLeaf:
			if !yield(result.Param) {
				return false
			}
		}
	}
	return true
}
