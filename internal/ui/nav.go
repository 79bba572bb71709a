package ui

// nav holds the list screen's navigation state: which tab is active and
// which row is selected. All movement is total; out-of-range requests
// clamp silently. The scroll start is never stored here, it is derived
// from window() on every render.
type nav struct {
	tab      int
	selected int
}

// nextTab advances to the following tab, wrapping at the end. The
// selection is re-clamped by the caller against the new tab's count.
func (n *nav) nextTab(tabCount int) {
	if tabCount <= 0 {
		n.tab = 0
		return
	}
	n.tab = (n.tab + 1) % tabCount
}

// prevTab moves to the preceding tab, wrapping at the start.
func (n *nav) prevTab(tabCount int) {
	if tabCount <= 0 {
		n.tab = 0
		return
	}
	n.tab = (n.tab - 1 + tabCount) % tabCount
}

// moveUp moves the selection one row toward the top.
func (n *nav) moveUp() {
	if n.selected > 0 {
		n.selected--
	}
}

// moveDown moves the selection one row toward the bottom of a tab holding
// count entries.
func (n *nav) moveDown(count int) {
	if count <= 0 {
		return
	}
	if n.selected < count-1 {
		n.selected++
	}
}

// clampTo forces the selection into [0, count-1]. With an empty tab the
// selection parks at 0 and is meaningless until entries appear.
func (n *nav) clampTo(count int) {
	if count <= 0 {
		n.selected = 0
		return
	}
	n.selected = clamp(n.selected, 0, count-1)
}
