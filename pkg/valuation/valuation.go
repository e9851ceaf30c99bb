// Package valuation provides the variable bindings used to evaluate
// assertions.
//
// A Valuation is a persistent map: binding a variable never modifies the
// valuation it is called on, it returns a new one sharing the existing
// bindings. Quantifiers can therefore rebind the same variable in every
// iteration without any copying and without affecting sibling branches.
package valuation

import (
	"slices"
	"strings"

	"github.com/mandelsoft/kgassert/pkg/graph"
)

type frame struct {
	parent *frame
	name   string
	value  graph.Value
	size   int
}

// Valuation maps variable names to values. The zero value is the empty valuation.
type Valuation struct {
	top *frame
}

func Empty() Valuation {
	return Valuation{}
}

// New creates a valuation from name/value pairs. Values are converted with
// graph.ValueOf.
func New(pairs ...any) Valuation {
	v := Empty()
	for i := 0; i+1 < len(pairs); i += 2 {
		name, ok := pairs[i].(string)
		if !ok {
			panic("variable name must be a string")
		}
		v = v.Bind(name, graph.ValueOf(pairs[i+1]))
	}
	return v
}

// Bind returns a valuation with the additional binding.
// An existing binding for the same name is shadowed.
func (v Valuation) Bind(name string, value graph.Value) Valuation {
	size := 1
	if v.top != nil {
		size = v.top.size
		if _, ok := v.Get(name); !ok {
			size++
		}
	}
	return Valuation{&frame{parent: v.top, name: name, value: value, size: size}}
}

func (v Valuation) Get(name string) (graph.Value, bool) {
	for f := v.top; f != nil; f = f.parent {
		if f.name == name {
			return f.value, true
		}
	}
	return graph.Null, false
}

// Lookup returns the bound value or null.
func (v Valuation) Lookup(name string) graph.Value {
	r, _ := v.Get(name)
	return r
}

func (v Valuation) Has(name string) bool {
	_, ok := v.Get(name)
	return ok
}

// Len is the number of distinct bound names.
func (v Valuation) Len() int {
	if v.top == nil {
		return 0
	}
	return v.top.size
}

// Names returns the bound names in sorted order.
func (v Valuation) Names() []string {
	var r []string
	for f := v.top; f != nil; f = f.parent {
		if !slices.Contains(r, f.name) {
			r = append(r, f.name)
		}
	}
	slices.Sort(r)
	return r
}

// Map provides a plain map with the effective bindings.
func (v Valuation) Map() map[string]graph.Value {
	r := map[string]graph.Value{}
	for f := v.top; f != nil; f = f.parent {
		if _, ok := r[f.name]; !ok {
			r[f.name] = f.value
		}
	}
	return r
}

func (v Valuation) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, n := range v.Names() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(n)
		b.WriteString("=")
		b.WriteString(v.Lookup(n).Quoted())
	}
	b.WriteString("}")
	return b.String()
}
