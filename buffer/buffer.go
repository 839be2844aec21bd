package buffer

import (
	"math"

	"github.com/iw2rmb/editbuf/internal/grapheme"
)

const defaultWindowCapacity = 16

type Options struct {
	WindowCapacity int // initial capacity of the pending window; default: 16
}

// EditBuffer holds a document as array[:start] ++ window ++ array[end:].
//
// array[start:end] is stale: it is superseded by the window and dropped on
// Flush. The zero value is an empty buffer ready for use.
type EditBuffer struct {
	array []string
	win   window
	start int
	end   int

	version uint64
}

// New returns a buffer holding text with the cursor at its end.
func New(text string, opt Options) *EditBuffer {
	if opt.WindowCapacity <= 0 {
		opt.WindowCapacity = defaultWindowCapacity
	}
	array := grapheme.Split(text)
	return &EditBuffer{
		array: array,
		win:   newWindow(opt.WindowCapacity),
		start: len(array),
		end:   len(array),
	}
}

// Len returns the number of characters in the logical document.
func (b *EditBuffer) Len() int {
	return b.start + b.win.len() + len(b.array) - b.end
}

// IsEmpty reports whether the logical document has no characters.
func (b *EditBuffer) IsEmpty() bool { return b.Len() == 0 }

// Cursor returns the index where the next inserted character lands.
func (b *EditBuffer) Cursor() int { return b.start + b.win.len() }

// Pending returns the number of characters not yet committed by Flush.
func (b *EditBuffer) Pending() int { return b.win.len() }

// Version increases each time an operation changes the content or the cursor.
func (b *EditBuffer) Version() uint64 { return b.version }

// Clone returns an independent copy of b.
func (b *EditBuffer) Clone() *EditBuffer {
	return &EditBuffer{
		array:   append([]string(nil), b.array...),
		win:     b.win.clone(),
		start:   b.start,
		end:     b.end,
		version: b.version,
	}
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// mustAdd returns a+d and panics instead of wrapping.
func mustAdd(a, d int) int {
	if (d > 0 && a > math.MaxInt-d) || (d < 0 && a < math.MinInt-d) {
		panic("buffer: position overflow")
	}
	return a + d
}
