package buffer

import (
	"strings"
	"testing"

	"github.com/iw2rmb/editbuf/internal/grapheme"
)

// modelBuffer is a naive reference: the whole document is re-split into
// clusters after every edit.
type modelBuffer struct {
	text   []string
	cursor int
}

func (m *modelBuffer) moveTo(i int) {
	m.cursor = clampInt(i, 0, len(m.text))
}

func (m *modelBuffer) offset(i int) int {
	return grapheme.ByteLen(m.text[:i])
}

// resplit replaces the document with doc and puts the cursor after the
// cluster holding byte at-1.
func (m *modelBuffer) resplit(doc string, at int) {
	m.text = grapheme.Split(doc)
	m.cursor = 0
	for off := 0; m.cursor < len(m.text) && off < at; m.cursor++ {
		off += len(m.text[m.cursor])
	}
}

func (m *modelBuffer) insert(s string) {
	if s == "" {
		return
	}
	doc := strings.Join(m.text, "")
	at := m.offset(m.cursor)
	m.resplit(doc[:at]+s+doc[at:], at+len(s))
}

func (m *modelBuffer) delete(n int) {
	from, to := m.cursor, m.cursor
	if n < 0 {
		from -= minInt(-n, m.cursor)
	} else {
		to += minInt(n, len(m.text)-m.cursor)
	}
	if from == to {
		return
	}
	at := m.offset(from)
	rest := append(append([]string(nil), m.text[:from]...), m.text[to:]...)
	m.resplit(strings.Join(rest, ""), at)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

var fuzzInserts = []string{
	"a", "bc", "def", " ", "ü", "テスト", "\U0001F600", "gh ij",
	"\u0301", "\U0001F1F5", "\U0001F1EF", "\n", "\r", "\u200d", "\U0001F469",
}

func FuzzEditBuffer_RandomOperations(f *testing.F) {
	seeds := []struct {
		text string
		ops  []byte
	}{
		{text: "", ops: nil},
		{text: "", ops: []byte{2, 1, 0, 0, 1, 200}},
		{text: able, ops: []byte{0, 10, 3, 129, 2, 0, 0, 19, 2, 4}},
		{text: able, ops: []byte{3, 127, 2, 3, 4, 0, 1, 0}},
		{text: "line1\nline2\r\n", ops: []byte{1, 120, 3, 140, 2, 5, 1, 200, 3, 100}},
		{text: "e\r", ops: []byte{2, 11, 1, 127, 2, 8, 3, 129, 2, 12, 4, 0}},
		{text: "\U0001F1EF\U0001F1F5\U0001F1EF", ops: []byte{0, 0, 2, 9, 0, 2, 3, 1, 2, 9, 2, 10}},
		{text: "x\U0001F468", ops: []byte{2, 13, 2, 14, 0, 1, 3, 129, 2, 8}},
		{text: "e\u0301\U0001F468\u200d\U0001F469\u200d\U0001F467", ops: []byte{0, 1, 2, 6, 1, 127, 3, 130}},
	}
	for _, seed := range seeds {
		f.Add(seed.text, seed.ops)
	}

	f.Fuzz(func(t *testing.T, text string, ops []byte) {
		b := New(text, Options{WindowCapacity: 2})
		m := &modelBuffer{text: grapheme.Split(text)}
		m.cursor = len(m.text)

		for i := 0; i+1 < len(ops); i += 2 {
			arg := int(ops[i+1]) - 128
			switch ops[i] % 5 {
			case 0:
				b.MoveCursorTo(int(ops[i+1]))
				m.moveTo(int(ops[i+1]))
			case 1:
				b.MoveCursor(arg)
				m.moveTo(m.cursor + arg)
			case 2:
				s := fuzzInserts[int(ops[i+1])%len(fuzzInserts)]
				b.InsertAtCursor(s)
				m.insert(s)
			case 3:
				b.Delete(arg)
				m.delete(arg)
			case 4:
				b.Flush()
			}

			assertMatchesModel(t, b, m)
		}

		before := b.String()
		c := b.Clone()
		c.Flush()
		if got := c.Materialize(); got != before {
			t.Fatalf("flush changed text: %q vs %q", got, before)
		}
		if got := b.Materialize(); got != before {
			t.Fatalf("materialize=%q, want %q", got, before)
		}
	})
}

func assertMatchesModel(t *testing.T, b *EditBuffer, m *modelBuffer) {
	t.Helper()

	if b.start < 0 || b.start > b.end || b.end > len(b.array) {
		t.Fatalf("bounds violated: start=%d end=%d len=%d", b.start, b.end, len(b.array))
	}
	if got, want := b.String(), strings.Join(m.text, ""); got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Len(), len(m.text); got != want {
		t.Fatalf("len=%d, want %d", got, want)
	}
	if got, want := b.Cursor(), m.cursor; got != want {
		t.Fatalf("cursor=%d, want %d", got, want)
	}
	if got, want := b.IsEmpty(), len(m.text) == 0; got != want {
		t.Fatalf("empty=%v, want %v", got, want)
	}
}
