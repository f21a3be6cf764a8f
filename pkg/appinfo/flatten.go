package appinfo

import "strconv"

// Flatten turns a nested value into a single-level map keyed by dot-joined
// paths. Sequence elements are addressed by index ("a.0"). Empty mappings and
// sequences below the root are kept as leaves; an empty root yields no keys.
// A scalar root flattens to the empty key.
func Flatten(v Value) map[string]Value {
	out := make(map[string]Value)
	if (v.Kind() == KindMap || v.Kind() == KindList) && v.IsLeaf() {
		return out
	}
	flatten(out, "", v)
	return out
}

func flatten(out map[string]Value, prefix string, v Value) {
	if v.IsLeaf() {
		out[prefix] = v
		return
	}

	switch v.Kind() {
	case KindMap:
		for k, child := range v.Fields() {
			flatten(out, join(prefix, k), child)
		}
	case KindList:
		for i, child := range v.Items() {
			flatten(out, join(prefix, strconv.Itoa(i)), child)
		}
	}
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
