// Package state tracks where in the catalogue the user is browsing: the
// navigation path, the cursor, and the flattened view of the current level.
package state

import (
	"rdct/internal/catalog"
)

// Row is one visible line of the menu: a node plus its indentation depth
// within the current view.
type Row struct {
	ID    catalog.NodeID
	Depth int
}

// Navigator owns the navigation path (root-to-current-group chain of arena
// IDs) and the cursor into the flattened view of the path's last group.
type Navigator struct {
	tree           *catalog.Tree
	path           []catalog.NodeID
	cursor         int
	viewportOffset int
}

// NewNavigator starts browsing at the tree root.
func NewNavigator(t *catalog.Tree) *Navigator {
	return &Navigator{tree: t, path: []catalog.NodeID{t.Root()}}
}

// Rows returns the flattened view for the current level. At the root every
// top-level entry is shown and, for groups, their immediate children are
// inlined one level deep (depth 1). Inside a submenu only that group's
// immediate children are listed. The one-level eager expansion applies at
// the root only; deeper nesting stays hidden until the group is entered.
func (n *Navigator) Rows() []Row {
	current := n.tree.Node(n.current())
	if current.Kind != catalog.KindGroup {
		return nil
	}
	rows := make([]Row, 0, len(current.Children))
	if len(n.path) == 1 {
		for _, child := range current.Children {
			rows = append(rows, Row{ID: child})
			node := n.tree.Node(child)
			if node.Kind != catalog.KindGroup {
				continue
			}
			for _, sub := range node.Children {
				rows = append(rows, Row{ID: sub, Depth: 1})
			}
		}
		return rows
	}
	for _, child := range current.Children {
		rows = append(rows, Row{ID: child})
	}
	return rows
}

// Cursor returns the clamped cursor index into Rows.
func (n *Navigator) Cursor() int {
	n.clamp()
	return n.cursor
}

// Depth reports the navigation path length; 1 means the root view.
func (n *Navigator) Depth() int { return len(n.path) }

// Breadcrumb lists the names along the navigation path, root first.
func (n *Navigator) Breadcrumb() []string {
	names := make([]string, len(n.path))
	for i, id := range n.path {
		names[i] = n.tree.Node(id).Name
	}
	return names
}

// MoveUp moves the cursor one row up, wrapping to the bottom.
func (n *Navigator) MoveUp() {
	n.move(-1)
}

// MoveDown moves the cursor one row down, wrapping to the top.
func (n *Navigator) MoveDown() {
	n.move(1)
}

func (n *Navigator) move(delta int) {
	total := len(n.Rows())
	if total == 0 {
		n.cursor = 0
		return
	}
	n.clamp()
	n.cursor = (n.cursor + delta + total) % total
}

// MoveHome places the cursor on the first row.
func (n *Navigator) MoveHome() {
	n.cursor = 0
}

// MoveEnd places the cursor on the last row.
func (n *Navigator) MoveEnd() {
	if total := len(n.Rows()); total > 0 {
		n.cursor = total - 1
	} else {
		n.cursor = 0
	}
}

// Activate acts on the row under the cursor: entering a group pushes it
// onto the path and resets the cursor; an item has its Selected flag
// toggled in place. It reports whether anything happened (false on an
// empty view).
func (n *Navigator) Activate() bool {
	rows := n.Rows()
	if len(rows) == 0 {
		return false
	}
	n.clamp()
	id := rows[n.cursor].ID
	if n.tree.Node(id).Kind == catalog.KindGroup {
		n.path = append(n.path, id)
		n.cursor = 0
		n.viewportOffset = 0
		return true
	}
	// Toggle cannot fail here: the ID came from Rows and is an item.
	_ = n.tree.Toggle(id)
	return true
}

// Back pops one path element and resets the cursor. At the root it is a
// no-op; the root can never be exited.
func (n *Navigator) Back() bool {
	if len(n.path) <= 1 {
		return false
	}
	n.path = n.path[:len(n.path)-1]
	n.cursor = 0
	n.viewportOffset = 0
	return true
}

func (n *Navigator) current() catalog.NodeID {
	return n.path[len(n.path)-1]
}

// clamp keeps the cursor inside the current view's bounds. Views can shrink
// when the path changes, so every read goes through here first.
func (n *Navigator) clamp() {
	total := len(n.Rows())
	if total == 0 {
		n.cursor = 0
		return
	}
	if n.cursor < 0 {
		n.cursor = 0
	}
	if n.cursor > total-1 {
		n.cursor = total - 1
	}
}
