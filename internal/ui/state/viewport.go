package state

// ViewportOffset returns the index of the first row currently scrolled into
// view.
func (n *Navigator) ViewportOffset() int { return n.viewportOffset }

// EnsureCursorVisible adjusts the viewport offset so the cursor stays
// within the maxVisible rows shown on screen.
func (n *Navigator) EnsureCursorVisible(maxVisible int) {
	total := len(n.Rows())
	if total == 0 {
		n.cursor = 0
		n.viewportOffset = 0
		return
	}
	n.clamp()
	if maxVisible <= 0 {
		n.viewportOffset = 0
		return
	}
	maxOffset := total - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if n.viewportOffset > maxOffset {
		n.viewportOffset = maxOffset
	}
	if n.viewportOffset < 0 {
		n.viewportOffset = 0
	}
	if n.cursor < n.viewportOffset {
		n.viewportOffset = n.cursor
	}
	if upper := n.viewportOffset + maxVisible - 1; n.cursor > upper {
		n.viewportOffset = n.cursor - maxVisible + 1
		if n.viewportOffset < 0 {
			n.viewportOffset = 0
		}
		if n.viewportOffset > maxOffset {
			n.viewportOffset = maxOffset
		}
	}
}
