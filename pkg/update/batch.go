package update

import (
	"slices"

	"github.com/mandelsoft/kgassert/pkg/graph"
	"github.com/mandelsoft/kgassert/pkg/utils"
)

// Batch applies a sequence of updates on a single duplicate.
// Nested batches are flattened when the batch is created.
type Batch struct {
	updates []Update
}

var _ Update = (*Batch)(nil)

func NewBatch(updates ...Update) *Batch {
	b := &Batch{}
	for _, u := range updates {
		b.add(u)
	}
	return b
}

func (b *Batch) add(u Update) {
	switch o := u.(type) {
	case nil:
	case *Batch:
		if o == nil {
			return
		}
		b.updates = append(b.updates, o.updates...)
	default:
		b.updates = append(b.updates, u)
	}
}

// Updates returns the flat list of contained updates.
func (b *Batch) Updates() []Update {
	return slices.Clone(b.updates)
}

func (b *Batch) Len() int {
	return len(b.updates)
}

func (b *Batch) Apply(g *graph.Graph) *graph.Graph {
	return apply(b, g)
}

func (b *Batch) ApplyTo(g *graph.Graph) {
	for _, u := range b.updates {
		u.ApplyTo(g)
	}
}

func (b *Batch) String() string {
	return "[" + utils.Join(b.updates, "; ") + "]"
}
