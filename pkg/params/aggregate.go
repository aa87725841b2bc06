package params

import (
	"fmt"
	"iter"
	"strings"
)

// DocRecord is the documentation entry for one option.
type DocRecord struct {
	Description []string
	Type        Kind
	Required    bool
}

// Documentation is an insertion-ordered mapping from option name to its
// record. Setting an existing name replaces the record in place.
type Documentation struct {
	keys    []string
	records map[string]DocRecord
}

// NewDocumentation returns an empty mapping.
func NewDocumentation() *Documentation {
	return &Documentation{records: make(map[string]DocRecord)}
}

// Set inserts or replaces the record for name. It reports whether an
// existing record was overwritten.
func (d *Documentation) Set(name string, record DocRecord) bool {
	if d.records == nil {
		d.records = make(map[string]DocRecord)
	}
	_, exists := d.records[name]
	if !exists {
		d.keys = append(d.keys, name)
	}
	d.records[name] = record
	return exists
}

// Get returns the record stored for name.
func (d *Documentation) Get(name string) (DocRecord, bool) {
	if d == nil {
		return DocRecord{}, false
	}
	record, ok := d.records[name]
	return record, ok
}

// Keys returns option names in first-insertion order.
func (d *Documentation) Keys() []string {
	if d == nil {
		return nil
	}
	return append([]string(nil), d.keys...)
}

// Len reports the number of distinct names.
func (d *Documentation) Len() int {
	if d == nil {
		return 0
	}
	return len(d.keys)
}

// All iterates name/record pairs in order.
func (d *Documentation) All() iter.Seq2[string, DocRecord] {
	return func(yield func(string, DocRecord) bool) {
		if d == nil {
			return
		}
		for _, key := range d.keys {
			if !yield(key, d.records[key]) {
				return
			}
		}
	}
}

// Output is the aggregated result of a flattening run.
type Output struct {
	// Fragments holds one declaration per derived option, duplicates included.
	Fragments []string
	// Docs holds one record per distinct option name, last write wins.
	Docs *Documentation
	// Overwritten lists names whose documentation record was replaced.
	Overwritten []string
}

// Aggregate consumes seq once and collects code fragments and documentation.
func Aggregate(seq iter.Seq[Derived]) Output {
	out := Output{Docs: NewDocumentation()}
	for param := range seq {
		out.Fragments = append(out.Fragments, Fragment(param))
		replaced := out.Docs.Set(param.Name, DocRecord{
			Description: []string{param.Description},
			Type:        param.DocKind,
			Required:    param.Required,
		})
		if replaced {
			out.Overwritten = append(out.Overwritten, param.Name)
		}
	}
	return out
}

// Fragment renders the option declaration for p, e.g.
// name=dict(required=True, type='str'),
func Fragment(p Derived) string {
	return fmt.Sprintf("%s=dict(required=%s, type='%s'),", p.Name, pythonBool(p.Required), p.Kind)
}

func pythonBool(v bool) string {
	if v {
		return "True"
	}
	return "False"
}

// String renders the fragments one per line.
func (o Output) String() string {
	return strings.Join(o.Fragments, "\n")
}
