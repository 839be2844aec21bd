package buffer

import "github.com/iw2rmb/editbuf/internal/grapheme"

// InsertAtCursor adds text to the pending window. The array is left
// untouched until the next Flush, except where the inserted text joins a
// neighbouring character into a single grapheme cluster.
//
// The cursor ends up after the character holding the last inserted rune.
func (b *EditBuffer) InsertAtCursor(text string) {
	if text == "" {
		return
	}
	b.resegment(text)
	b.version++
}

// Delete removes up to |n| characters next to the cursor: before it when n
// is negative, after it when n is positive.
//
// Backward deletes undo pending window characters first, then drop committed
// ones. Forward deletes stop at the end of the document without reporting
// how many characters were actually removed. If the characters left on
// either side of the gap form one cluster, they are joined and the cursor
// moves after the joined character.
func (b *EditBuffer) Delete(n int) {
	changed := false
	for ; n < 0; n++ {
		if _, ok := b.win.popBack(); ok {
			changed = true
			continue
		}
		if b.start == 0 {
			break
		}
		b.start--
		changed = true
	}
	for ; n > 0; n-- {
		if b.end >= len(b.array) {
			break
		}
		b.end = mustAdd(b.end, 1)
		changed = true
	}
	if changed {
		b.resegment("")
		b.version++
	}
}

// resegment places text at the cursor and re-splits the clusters that touch
// it: the character before the cursor, text itself, and as many characters
// after the cursor as keep joining the run.
func (b *EditBuffer) resegment(text string) {
	left, hasLeft := b.leftOfCursor()
	seam := left + text
	if seam == "" {
		return
	}

	clusters := grapheme.Split(seam)
	for b.end < len(b.array) {
		last := clusters[len(clusters)-1]
		right := b.array[b.end]
		joined := grapheme.Split(last + right)
		if len(joined) == 2 && joined[0] == last {
			break
		}
		clusters = append(clusters[:len(clusters)-1], joined...)
		b.end = mustAdd(b.end, 1)
	}

	// k clusters start before the end of the inserted text and go left of
	// the cursor; the rest go back into the suffix.
	k, off := 0, 0
	for k < len(clusters) && off < len(seam) {
		off += len(clusters[k])
		k++
	}

	if hasLeft && clusters[0] == left {
		clusters = clusters[1:]
		k--
	} else if hasLeft {
		b.dropLeftOfCursor()
	}

	for _, c := range clusters[:k] {
		b.win.pushBack(c)
	}
	for i := len(clusters) - 1; i >= k; i-- {
		b.putBack(clusters[i])
	}
}

func (b *EditBuffer) leftOfCursor() (string, bool) {
	if n := b.win.len(); n > 0 {
		return b.win.at(n - 1), true
	}
	if b.start > 0 {
		return b.array[b.start-1], true
	}
	return "", false
}

func (b *EditBuffer) dropLeftOfCursor() {
	if _, ok := b.win.popBack(); ok {
		return
	}
	b.start--
}
