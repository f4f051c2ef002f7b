package i18n

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// nodeKind discriminates the three shapes a locale tree node can take.
type nodeKind int

const (
	kindLeaf nodeKind = iota
	kindSequence
	kindMapping
)

// node is a tagged union over the shapes found in a locale resource:
// a string leaf, an ordered sequence, or a name-keyed mapping. Modeling the
// tree explicitly keeps the dotted-path walker free of reflection.
type node struct {
	kind nodeKind
	leaf string
	seq  []*node
	m    map[string]*node
}

// buildNode converts a decoded JSON value into a node tree. Locale files
// may only contain objects, arrays, and strings; any other leaf type
// (number, bool, null) is rejected so malformed resources fail at load
// time rather than at lookup time.
func buildNode(v interface{}) (*node, error) {
	switch val := v.(type) {
	case string:
		return &node{kind: kindLeaf, leaf: val}, nil
	case []interface{}:
		n := &node{kind: kindSequence, seq: make([]*node, 0, len(val))}
		for i, item := range val {
			child, err := buildNode(item)
			if err != nil {
				return nil, fmt.Errorf("at index %d: %w", i, err)
			}
			n.seq = append(n.seq, child)
		}
		return n, nil
	case map[string]interface{}:
		n := &node{kind: kindMapping, m: make(map[string]*node, len(val))}
		for key, item := range val {
			child, err := buildNode(item)
			if err != nil {
				return nil, fmt.Errorf("at key '%s': %w", key, err)
			}
			n.m[key] = child
		}
		return n, nil
	default:
		return nil, fmt.Errorf("unsupported node type %T (only strings, arrays and objects are allowed)", v)
	}
}

// child resolves one path segment against this node. Sequence nodes take
// integer segments, mapping nodes take name segments; a leaf has no
// children, so reaching one with segments left over is a lookup failure.
func (n *node) child(segment string) (*node, error) {
	switch n.kind {
	case kindSequence:
		idx, err := strconv.Atoi(segment)
		if err != nil {
			return nil, fmt.Errorf("invalid index '%s' for sequence node", segment)
		}
		if idx < 0 || idx >= len(n.seq) {
			return nil, fmt.Errorf("index %d out of range for sequence of length %d", idx, len(n.seq))
		}
		return n.seq[idx], nil
	case kindMapping:
		child, ok := n.m[segment]
		if !ok {
			return nil, fmt.Errorf("key '%s' not found", segment)
		}
		return child, nil
	default:
		return nil, fmt.Errorf("reached leaf node before consuming segment '%s'", segment)
	}
}

// toValue reverses buildNode, for stringifying non-leaf results.
func (n *node) toValue() interface{} {
	switch n.kind {
	case kindLeaf:
		return n.leaf
	case kindSequence:
		out := make([]interface{}, 0, len(n.seq))
		for _, child := range n.seq {
			out = append(out, child.toValue())
		}
		return out
	default:
		out := make(map[string]interface{}, len(n.m))
		for key, child := range n.m {
			out[key] = child.toValue()
		}
		return out
	}
}

// stringify renders a non-leaf node for the rare case where a dotted path
// stops on a subtree instead of a string.
func (n *node) stringify() string {
	data, err := json.Marshal(n.toValue())
	if err != nil {
		return fmt.Sprintf("%v", n.toValue())
	}
	return string(data)
}
