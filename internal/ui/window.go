package ui

// window computes the visible slice of a sequence given a display row
// budget. The selection is centered, then the window is clamped so it
// never runs past either end. The same math drives the session list and
// the detail view's log scrolling.
//
// Returned values satisfy start >= 0, start+count <= total, and
// start <= selected < start+count for any selected in [0, total).
func window(total, selected, rows int) (start, count int) {
	if rows <= 0 || total <= 0 {
		return 0, 0
	}
	if total <= rows {
		return 0, total
	}
	start = clamp(selected-rows/2, 0, total-rows)
	return start, rows
}

// scrollWindow returns the visible slice for an offset-anchored view such
// as the detail log: the window starts at the clamped offset rather than
// centering a selection.
func scrollWindow(total, offset, rows int) (start, count int) {
	if rows <= 0 || total <= 0 {
		return 0, 0
	}
	start = clamp(offset, 0, maxScroll(total, rows))
	return start, min(rows, total-start)
}

// maxScroll returns the largest valid first-visible-line offset for a
// sequence of total lines shown rows at a time.
func maxScroll(total, rows int) int {
	if rows <= 0 {
		return max(0, total)
	}
	return max(0, total-rows)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
