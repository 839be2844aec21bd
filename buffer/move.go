package buffer

import "slices"

// MoveCursorTo moves the cursor to index i, clamped to [0, Len()].
func (b *EditBuffer) MoveCursorTo(i int) {
	if i < 0 {
		i = 0
	}
	b.MoveCursor(i - b.Cursor())
}

// MoveCursor moves the cursor by delta characters, negative meaning left.
//
// The window is shifted one character per step, so the cost is O(|delta|).
// Moves past either end of the document stop at the boundary.
func (b *EditBuffer) MoveCursor(delta int) {
	cur := b.Cursor()
	delta = clampInt(delta, -cur, b.Len()-cur)
	if delta == 0 {
		return
	}
	for ; delta < 0; delta++ {
		b.stepLeft()
	}
	for ; delta > 0; delta-- {
		b.stepRight()
	}
	b.version++
}

// stepLeft absorbs the character before the window into its front and
// writes the window's last character back into the array behind it.
func (b *EditBuffer) stepLeft() {
	if b.start > 0 {
		b.start--
		b.win.pushFront(b.array[b.start])
	}
	if c, ok := b.win.popBack(); ok {
		b.putBack(c)
	}
}

// stepRight is the mirror of stepLeft. The suffix must be non-empty, which
// MoveCursor's clamp guarantees, so a stale slot always exists at start.
func (b *EditBuffer) stepRight() {
	b.win.pushBack(b.array[b.end])
	b.end = mustAdd(b.end, 1)
	c, _ := b.win.popFront()
	b.array[b.start] = c
	b.start = mustAdd(b.start, 1)
}

// putBack makes c the first character of the suffix, reusing the stale slot
// before end when there is one.
func (b *EditBuffer) putBack(c string) {
	if b.end > b.start {
		b.end--
		b.array[b.end] = c
		return
	}
	b.array = slices.Insert(b.array, b.end, c)
}
