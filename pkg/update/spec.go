package update

import (
	"encoding/json"
	"fmt"

	"github.com/drone/envsubst"
	"github.com/mandelsoft/vfs/pkg/osfs"
	"github.com/mandelsoft/vfs/pkg/vfs"
	"sigs.k8s.io/yaml"

	"github.com/mandelsoft/kgassert/pkg/graph"
	"github.com/mandelsoft/kgassert/pkg/utils"
)

// NodeSpec describes a node for update documents.
type NodeSpec struct {
	ID   int64 `json:"id"`
	Data any   `json:"data,omitempty"`
}

// EdgeSpec describes an edge for update documents.
type EdgeSpec struct {
	From     int64 `json:"from"`
	Label    any   `json:"label,omitempty"`
	To       int64 `json:"to"`
	NewLabel any   `json:"newLabel,omitempty"`
}

// Spec is the serialized form of a single update. Exactly one field must be set.
type Spec struct {
	AddNode      *NodeSpec `json:"addNode,omitempty"`
	DeleteNode   *NodeSpec `json:"deleteNode,omitempty"`
	SetNodeData  *NodeSpec `json:"setNodeData,omitempty"`
	AddEdge      *EdgeSpec `json:"addEdge,omitempty"`
	DeleteEdge   *EdgeSpec `json:"deleteEdge,omitempty"`
	SetEdgeLabel *EdgeSpec `json:"setEdgeLabel,omitempty"`
	Batch        []Spec    `json:"batch,omitempty"`
}

// Document is the content of an update file. Every step is applied
// separately and yields an own snapshot.
type Document struct {
	Steps []Spec `json:"steps"`
}

func (s *Spec) Update() (Update, error) {
	var list []Update

	if n := s.AddNode; n != nil {
		data, err := scalar("data", n.Data)
		if err != nil {
			return nil, err
		}
		list = append(list, NewAddNode(n.ID, data))
	}
	if s.DeleteNode != nil {
		list = append(list, NewDeleteNode(s.DeleteNode.ID))
	}
	if n := s.SetNodeData; n != nil {
		data, err := scalar("data", n.Data)
		if err != nil {
			return nil, err
		}
		list = append(list, NewSetNodeData(n.ID, data))
	}
	if e := s.AddEdge; e != nil {
		label, err := scalar("label", e.Label)
		if err != nil {
			return nil, err
		}
		list = append(list, NewAddEdge(e.From, label, e.To))
	}
	if e := s.DeleteEdge; e != nil {
		label, err := scalar("label", e.Label)
		if err != nil {
			return nil, err
		}
		list = append(list, NewDeleteEdge(e.From, label, e.To))
	}
	if e := s.SetEdgeLabel; e != nil {
		label, err := scalar("label", e.Label)
		if err != nil {
			return nil, err
		}
		newlabel, err := scalar("newLabel", e.NewLabel)
		if err != nil {
			return nil, err
		}
		list = append(list, NewSetEdgeLabel(e.From, label, e.To, newlabel))
	}
	if s.Batch != nil {
		var nested []Update
		for i := range s.Batch {
			u, err := s.Batch[i].Update()
			if err != nil {
				return nil, fmt.Errorf("batch entry %d: %w", i, err)
			}
			nested = append(nested, u)
		}
		list = append(list, NewBatch(nested...))
	}
	switch len(list) {
	case 0:
		return nil, fmt.Errorf("no update specified")
	case 1:
		return list[0], nil
	default:
		return nil, fmt.Errorf("multiple updates specified in one entry: %s", utils.Join(list, ", "))
	}
}

func scalar(field string, o any) (graph.Value, error) {
	v, err := graph.ScalarOf(o)
	if err != nil {
		return v, fmt.Errorf("invalid %s: %w", field, err)
	}
	return v, nil
}

func (d *Document) Updates() ([]Update, error) {
	r := make([]Update, len(d.Steps))
	for i := range d.Steps {
		u, err := d.Steps[i].Update()
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		r[i] = u
	}
	return r, nil
}

// useNumber keeps integral numbers as integers.
func useNumber(d *json.Decoder) *json.Decoder {
	d.UseNumber()
	return d
}

// Parse decodes an update document. Environment variables
// (${NAME}) are expanded before decoding.
func Parse(data []byte) ([]Update, error) {
	expanded, err := envsubst.EvalEnv(string(data))
	if err != nil {
		return nil, fmt.Errorf("cannot expand update document: %w", err)
	}
	var doc Document
	err = yaml.Unmarshal([]byte(expanded), &doc, useNumber)
	if err != nil {
		return nil, fmt.Errorf("invalid update document: %w", err)
	}
	return doc.Updates()
}

// ReadFile reads an update document. The os file system is used
// if no file system is given.
func ReadFile(path string, fss ...vfs.FileSystem) ([]Update, error) {
	fs := utils.OptionalDefaulted(vfs.FileSystem(osfs.OsFs), fss...)
	data, err := vfs.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}
	list, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return list, nil
}
