package appinfo

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Kind identifies the type held by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
	KindMap
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindMap:
		return "map"
	case KindList:
		return "list"
	default:
		return "null"
	}
}

// Value is a node of a translation file: a scalar leaf, a mapping or a sequence.
type Value struct {
	kind   Kind
	scalar string
	fields map[string]Value
	items  []Value
}

// String returns a string leaf.
func String(s string) Value { return Value{kind: KindString, scalar: s} }

// Number returns a number leaf holding the literal text.
func Number(n string) Value { return Value{kind: KindNumber, scalar: n} }

// Bool returns a boolean leaf.
func Bool(b bool) Value {
	if b {
		return Value{kind: KindBool, scalar: "true"}
	}
	return Value{kind: KindBool, scalar: "false"}
}

// Null returns the null leaf.
func Null() Value { return Value{kind: KindNull} }

// Map returns a mapping node.
func Map(fields map[string]Value) Value {
	if fields == nil {
		fields = map[string]Value{}
	}
	return Value{kind: KindMap, fields: fields}
}

// List returns a sequence node.
func List(items ...Value) Value { return Value{kind: KindList, items: items} }

func (v Value) Kind() Kind { return v.kind }

// Text returns the literal text of a scalar. Containers return "".
func (v Value) Text() string { return v.scalar }

// Fields returns the children of a mapping.
func (v Value) Fields() map[string]Value { return v.fields }

// Items returns the children of a sequence.
func (v Value) Items() []Value { return v.items }

// IsLeaf reports whether v has no children. Empty containers are leaves.
func (v Value) IsLeaf() bool {
	switch v.kind {
	case KindMap:
		return len(v.fields) == 0
	case KindList:
		return len(v.items) == 0
	default:
		return true
	}
}

// Decode parses a translation file. The top level must be a JSON object or
// array; array elements flatten to their indexes.
func Decode(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return Value{}, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return Value{}, fmt.Errorf("unexpected data after top-level value")
	}
	switch raw.(type) {
	case map[string]any, []any:
	default:
		return Value{}, fmt.Errorf("top level is %T, want object or array", raw)
	}
	return fromJSON(raw), nil
}

func fromJSON(raw any) Value {
	switch x := raw.(type) {
	case string:
		return String(x)
	case json.Number:
		return Number(x.String())
	case bool:
		return Bool(x)
	case map[string]any:
		fields := make(map[string]Value, len(x))
		for k, child := range x {
			fields[k] = fromJSON(child)
		}
		return Map(fields)
	case []any:
		items := make([]Value, len(x))
		for i, child := range x {
			items[i] = fromJSON(child)
		}
		return List(items...)
	default:
		return Null()
	}
}
