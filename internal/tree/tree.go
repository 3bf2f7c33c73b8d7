// Package tree flattens nested mapping/sequence/scalar values into the
// parent-child rows the explorer dialog's tree widget renders.
package tree

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// Node is a single row in the rendered tree.
type Node struct {
	ID     string
	Label  string
	Value  string
	Branch bool
}

// Model holds the flattened tree plus its expand state. Node IDs are
// generated per build; the widget is rebuilt whenever a new document is
// loaded, so IDs only need to be stable within one build.
type Model struct {
	roots    []string
	children map[string][]string
	nodes    map[string]Node
	open     map[string]bool
}

// Build flattens a nested document into a tree model. Map keys are walked
// in sorted order so rendering is deterministic.
func Build(doc map[string]interface{}) *Model {
	m := &Model{
		children: make(map[string][]string),
		nodes:    make(map[string]Node),
		open:     make(map[string]bool),
	}
	m.roots = m.walkMap(doc)
	return m
}

func (m *Model) walkMap(doc map[string]interface{}) []string {
	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	ids := make([]string, 0, len(keys))
	for _, key := range keys {
		ids = append(ids, m.walkValue(key, doc[key]))
	}
	return ids
}

func (m *Model) walkValue(key string, value interface{}) string {
	id := uuid.NewString()

	switch v := value.(type) {
	case map[string]interface{}:
		m.nodes[id] = Node{ID: id, Label: key, Branch: true}
		m.children[id] = m.walkMap(v)
	case []interface{}:
		m.nodes[id] = Node{ID: id, Label: key + ":", Branch: true}
		ids := make([]string, 0, len(v))
		for i, item := range v {
			ids = append(ids, m.walkValue(fmt.Sprintf("%d", i), item))
		}
		m.children[id] = ids
	default:
		m.nodes[id] = Node{ID: id, Label: key, Value: renderScalar(v)}
	}
	return id
}

func renderScalar(v interface{}) string {
	if v == nil {
		return `"None"`
	}
	return fmt.Sprintf("%q", fmt.Sprintf("%v", v))
}

// ChildUIDs returns the ordered children of a node. The empty id is the
// synthetic root, matching the tree widget's convention.
func (m *Model) ChildUIDs(id string) []string {
	if id == "" {
		return m.roots
	}
	return m.children[id]
}

// IsBranch reports whether a node has children.
func (m *Model) IsBranch(id string) bool {
	if id == "" {
		return true
	}
	return m.nodes[id].Branch
}

// Text renders a node's display text.
func (m *Model) Text(id string) string {
	node, ok := m.nodes[id]
	if !ok {
		return ""
	}
	if node.Value == "" {
		return node.Label
	}
	return fmt.Sprintf("%s: %s", node.Label, node.Value)
}

// Node returns the node for an id.
func (m *Model) Node(id string) (Node, bool) {
	node, ok := m.nodes[id]
	return node, ok
}

// Len returns the total number of nodes.
func (m *Model) Len() int {
	return len(m.nodes)
}

// BranchIDs returns every branch node id.
func (m *Model) BranchIDs() []string {
	ids := make([]string, 0, len(m.children))
	for id := range m.children {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ExpandAll opens every branch. Applying it repeatedly is a no-op.
func (m *Model) ExpandAll() {
	for id := range m.children {
		m.open[id] = true
	}
}

// CollapseAll closes every branch. Applying it repeatedly is a no-op.
func (m *Model) CollapseAll() {
	m.open = make(map[string]bool)
}

// SetOpen records a single branch's expand state.
func (m *Model) SetOpen(id string, open bool) {
	if open {
		m.open[id] = true
	} else {
		delete(m.open, id)
	}
}

// IsOpen reports a branch's expand state.
func (m *Model) IsOpen(id string) bool {
	return m.open[id]
}

// OpenCount returns how many branches are currently expanded.
func (m *Model) OpenCount() int {
	return len(m.open)
}
