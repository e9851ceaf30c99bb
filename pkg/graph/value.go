package graph

import (
	"cmp"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Kind is the kind of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindText
	KindNode
	KindEdge
	KindOpaque
)

var kindNames = map[Kind]string{
	KindNull:   "null",
	KindBool:   "bool",
	KindInt:    "int",
	KindFloat:  "float",
	KindText:   "text",
	KindNode:   "node",
	KindEdge:   "edge",
	KindOpaque: "opaque",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Value is the closed value type used for node data, edge labels
// and everything an assertion function may produce.
// The zero value is Null. Values are comparable and can be used as map keys,
// as long as opaque payloads are comparable.
type Value struct {
	kind Kind
	i    int64
	f    float64
	s    string
	ref  any
}

var Null = Value{}

var (
	True  = Bool(true)
	False = Bool(false)
)

func Bool(b bool) Value {
	if b {
		return Value{kind: KindBool, i: 1}
	}
	return Value{kind: KindBool}
}

func Int(i int64) Value {
	return Value{kind: KindInt, i: i}
}

func Float(f float64) Value {
	return Value{kind: KindFloat, f: f}
}

func Text(s string) Value {
	return Value{kind: KindText, s: s}
}

func NodeRef(n Node) Value {
	return Value{kind: KindNode, ref: n}
}

func EdgeRef(e Edge) Value {
	return Value{kind: KindEdge, ref: e}
}

// Opaque wraps an arbitrary comparable Go value.
func Opaque(o any) Value {
	if o == nil {
		return Null
	}
	return Value{kind: KindOpaque, ref: o}
}

// ValueOf maps a Go value to the matching Value kind.
func ValueOf(o any) Value {
	switch v := o.(type) {
	case nil:
		return Null
	case Value:
		return v
	case *Value:
		if v == nil {
			return Null
		}
		return *v
	case bool:
		return Bool(v)
	case int:
		return Int(int64(v))
	case int8:
		return Int(int64(v))
	case int16:
		return Int(int64(v))
	case int32:
		return Int(int64(v))
	case int64:
		return Int(v)
	case uint:
		return unsigned(uint64(v))
	case uint8:
		return Int(int64(v))
	case uint16:
		return Int(int64(v))
	case uint32:
		return Int(int64(v))
	case uint64:
		return unsigned(v)
	case float32:
		return Float(float64(v))
	case float64:
		return Float(v)
	case string:
		return Text(v)
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return Int(i)
		}
		if f, err := v.Float64(); err == nil {
			return Float(f)
		}
		return Text(v.String())
	case Node:
		return NodeRef(v)
	case *Node:
		if v == nil {
			return Null
		}
		return NodeRef(*v)
	case Edge:
		return EdgeRef(v)
	case *Edge:
		if v == nil {
			return Null
		}
		return EdgeRef(*v)
	default:
		return Opaque(o)
	}
}

// unsigned maps integers beyond the int64 range to floats.
func unsigned(u uint64) Value {
	if u > math.MaxInt64 {
		return Float(float64(u))
	}
	return Int(int64(u))
}

// ScalarOf is like ValueOf, but accepts only values mapping to null,
// bool, number or text. It is used for decoded documents, which may
// provide lists or maps not usable as node data or edge labels.
func ScalarOf(o any) (Value, error) {
	v := ValueOf(o)
	switch v.kind {
	case KindNull, KindBool, KindInt, KindFloat, KindText:
		return v, nil
	default:
		return Null, fmt.Errorf("scalar value expected, but found %T", o)
	}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsNull() bool {
	return v.kind == KindNull
}

func (v Value) IsNumeric() bool {
	return v.kind == KindInt || v.kind == KindFloat
}

// Number returns the numeric payload as float64.
func (v Value) Number() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.i), true
	case KindFloat:
		return v.f, true
	default:
		return 0, false
	}
}

func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.i != 0, true
}

func (v Value) AsInt() (int64, bool) {
	if v.kind != KindInt {
		return 0, false
	}
	return v.i, true
}

func (v Value) AsText() (string, bool) {
	if v.kind != KindText {
		return "", false
	}
	return v.s, true
}

func (v Value) AsNode() (Node, bool) {
	n, ok := v.ref.(Node)
	return n, ok && v.kind == KindNode
}

func (v Value) AsEdge() (Edge, bool) {
	e, ok := v.ref.(Edge)
	return e, ok && v.kind == KindEdge
}

// Interface returns the plain Go representation of the value.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.i != 0
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindText:
		return v.s
	case KindNode, KindEdge, KindOpaque:
		return v.ref
	default:
		return nil
	}
}

// Truthy is true only for the boolean value true.
func (v Value) Truthy() bool {
	return v.kind == KindBool && v.i != 0
}

func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(v.i != 0)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindText:
		return v.s
	default:
		return fmt.Sprintf("%v", v.ref)
	}
}

// Quoted renders text values as quoted strings, all others like String.
func (v Value) Quoted() string {
	if v.kind == KindText {
		return strconv.Quote(v.s)
	}
	if v.kind == KindFloat && v.f == math.Trunc(v.f) && !math.IsInf(v.f, 0) {
		return strconv.FormatFloat(v.f, 'f', 1, 64)
	}
	return v.String()
}

////////////////////////////////////////////////////////////////////////////////

// Equal is the cross-type equality used by patterns and the Equals assertion.
// Null only equals null, numbers are compared by numeric value regardless of
// their representation, everything else must be identical.
func Equal(a, b Value) bool {
	if a.IsNull() || b.IsNull() {
		return a.IsNull() && b.IsNull()
	}
	if a.IsNumeric() || b.IsNumeric() {
		c, ok := Compare(a, b)
		return ok && c == 0
	}
	if a.kind == KindText && b.kind == KindText {
		return a.s == b.s
	}
	return a == b
}

// Identical is the exact equality used for edge uniqueness.
func Identical(a, b Value) bool {
	return a == b
}

// Compare orders two numeric values. Integers are compared exactly,
// even if they are not representable as float64.
// ok is false if one of the values is not numeric or NaN.
func Compare(a, b Value) (int, bool) {
	switch {
	case a.kind == KindInt && b.kind == KindInt:
		return cmp.Compare(a.i, b.i), true
	case a.kind == KindFloat && b.kind == KindFloat:
		if math.IsNaN(a.f) || math.IsNaN(b.f) {
			return 0, false
		}
		return cmp.Compare(a.f, b.f), true
	case a.kind == KindInt && b.kind == KindFloat:
		return compareIntFloat(a.i, b.f)
	case a.kind == KindFloat && b.kind == KindInt:
		c, ok := compareIntFloat(b.i, a.f)
		return -c, ok
	}
	return 0, false
}

func compareIntFloat(i int64, f float64) (int, bool) {
	switch {
	case math.IsNaN(f):
		return 0, false
	case f >= 0x1p63:
		return -1, true
	case f < -0x1p63:
		return 1, true
	}
	t := math.Trunc(f)
	if c := cmp.Compare(i, int64(t)); c != 0 {
		return c, true
	}
	// i equals the integral part of f
	return cmp.Compare(t, f), true
}
