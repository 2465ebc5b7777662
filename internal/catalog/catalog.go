// Package catalog holds the menu tree of optional setup tasks. Nodes live in
// an arena indexed by NodeID so navigation state can reference them without
// sharing ownership; the tree shape is fixed once built and only the Selected
// flag on items ever changes.
package catalog

import "fmt"

// NodeID addresses a node within a Tree's arena.
type NodeID int

// Kind discriminates the two node variants.
type Kind int

const (
	// KindItem is a selectable leaf carrying a script fragment.
	KindItem Kind = iota
	// KindGroup is an interior node with an ordered child list.
	KindGroup
)

// Node is a single catalogue entry. Script and Selected are meaningful only
// for KindItem; Children only for KindGroup.
type Node struct {
	Name     string
	Kind     Kind
	Script   string
	Selected bool
	Children []NodeID
}

// Tree is the catalogue with live selection state. The root is always a
// group.
type Tree struct {
	nodes []Node
	root  NodeID
}

// Root returns the root group's ID.
func (t *Tree) Root() NodeID { return t.root }

// Len reports the number of nodes in the arena.
func (t *Tree) Len() int { return len(t.nodes) }

// Node returns the node for the given ID. IDs come from the arena itself
// (Root, Children), so out-of-range access is a programming defect and
// panics like any slice misuse would.
func (t *Tree) Node(id NodeID) *Node { return &t.nodes[id] }

// Toggle flips the Selected flag of an item. Groups cannot be toggled.
func (t *Tree) Toggle(id NodeID) error {
	if id < 0 || int(id) >= len(t.nodes) {
		return fmt.Errorf("toggle: node %d out of range", id)
	}
	node := &t.nodes[id]
	if node.Kind != KindItem {
		return fmt.Errorf("toggle: %q is not an item", node.Name)
	}
	node.Selected = !node.Selected
	return nil
}

// SelectedScripts collects the script fragments of all selected items in
// depth-first pre-order, i.e. catalogue order.
func (t *Tree) SelectedScripts() []string {
	var scripts []string
	t.walk(t.root, func(n *Node) {
		if n.Kind == KindItem && n.Selected {
			scripts = append(scripts, n.Script)
		}
	})
	return scripts
}

// SelectedNames collects the names of all selected items in catalogue order.
func (t *Tree) SelectedNames() []string {
	var names []string
	t.walk(t.root, func(n *Node) {
		if n.Kind == KindItem && n.Selected {
			names = append(names, n.Name)
		}
	})
	return names
}

func (t *Tree) walk(id NodeID, fn func(*Node)) {
	node := &t.nodes[id]
	fn(node)
	if node.Kind != KindGroup {
		return
	}
	for _, child := range node.Children {
		t.walk(child, fn)
	}
}

// Builder accumulates nodes for a Tree. Children are created before their
// parent so the arena is append-only.
type Builder struct {
	nodes []Node
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder { return &Builder{} }

// Item appends a leaf node and returns its ID.
func (b *Builder) Item(name, script string) NodeID {
	b.nodes = append(b.nodes, Node{Name: name, Kind: KindItem, Script: script})
	return NodeID(len(b.nodes) - 1)
}

// Group appends an interior node with the given children and returns its ID.
func (b *Builder) Group(name string, children ...NodeID) NodeID {
	b.nodes = append(b.nodes, Node{Name: name, Kind: KindGroup, Children: children})
	return NodeID(len(b.nodes) - 1)
}

// Tree finalises the builder with root as the tree root.
func (b *Builder) Tree(root NodeID) *Tree {
	return &Tree{nodes: b.nodes, root: root}
}
