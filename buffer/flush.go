package buffer

import (
	"io"
	"strings"

	"github.com/iw2rmb/editbuf/internal/grapheme"
)

const writeChunkSize = 4096

// Flush commits the pending window into the array. The logical document
// and the cursor are unchanged.
func (b *EditBuffer) Flush() {
	if b.win.len() == 0 && b.start == b.end {
		return
	}
	cursor := b.Cursor()
	out := make([]string, 0, b.Len())
	out = append(out, b.array[:b.start]...)
	out = b.win.appendTo(out)
	out = append(out, b.array[b.end:]...)

	b.array = out
	b.win.reset()
	b.start, b.end = cursor, cursor
}

// String returns the logical document without modifying b.
func (b *EditBuffer) String() string {
	var sb strings.Builder
	sb.Grow(b.byteLen())
	b.each(func(c string) bool {
		sb.WriteString(c)
		return true
	})
	return sb.String()
}

// Materialize returns the logical document and empties b.
func (b *EditBuffer) Materialize() string {
	s := b.String()
	if len(b.array) > 0 || b.win.len() > 0 {
		b.version++
	}
	b.array = nil
	b.win.reset()
	b.start, b.end = 0, 0
	return s
}

// WriteTo writes the logical document to w in chunks, without building the
// whole string first.
func (b *EditBuffer) WriteTo(w io.Writer) (int64, error) {
	var (
		total int64
		err   error
	)
	chunk := make([]byte, 0, writeChunkSize)
	flush := func() {
		var n int
		n, err = w.Write(chunk)
		total += int64(n)
		if err == nil && n < len(chunk) {
			err = io.ErrShortWrite
		}
		chunk = chunk[:0]
	}

	b.each(func(c string) bool {
		if len(chunk)+len(c) > writeChunkSize && len(chunk) > 0 {
			flush()
			if err != nil {
				return false
			}
		}
		chunk = append(chunk, c...)
		return true
	})
	if err == nil && len(chunk) > 0 {
		flush()
	}
	return total, err
}

// each calls fn for every character of the logical document in order until
// fn returns false.
func (b *EditBuffer) each(fn func(c string) bool) {
	for _, c := range b.array[:b.start] {
		if !fn(c) {
			return
		}
	}
	for i := 0; i < b.win.len(); i++ {
		if !fn(b.win.at(i)) {
			return
		}
	}
	for _, c := range b.array[b.end:] {
		if !fn(c) {
			return
		}
	}
}

func (b *EditBuffer) byteLen() int {
	n := grapheme.ByteLen(b.array[:b.start]) + grapheme.ByteLen(b.array[b.end:])
	for i := 0; i < b.win.len(); i++ {
		n += len(b.win.at(i))
	}
	return n
}
