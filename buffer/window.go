package buffer

// window is a ring-backed deque of pending characters.
type window struct {
	buf  []string
	head int
	n    int
}

func newWindow(capacity int) window {
	return window{buf: make([]string, capacity)}
}

func (w *window) len() int { return w.n }

func (w *window) at(i int) string {
	return w.buf[(w.head+i)%len(w.buf)]
}

func (w *window) pushBack(c string) {
	if w.n == len(w.buf) {
		w.grow()
	}
	w.buf[(w.head+w.n)%len(w.buf)] = c
	w.n++
}

func (w *window) pushFront(c string) {
	if w.n == len(w.buf) {
		w.grow()
	}
	w.head = (w.head + len(w.buf) - 1) % len(w.buf)
	w.buf[w.head] = c
	w.n++
}

func (w *window) popBack() (string, bool) {
	if w.n == 0 {
		return "", false
	}
	i := (w.head + w.n - 1) % len(w.buf)
	c := w.buf[i]
	w.buf[i] = ""
	w.n--
	return c, true
}

func (w *window) popFront() (string, bool) {
	if w.n == 0 {
		return "", false
	}
	c := w.buf[w.head]
	w.buf[w.head] = ""
	w.head = (w.head + 1) % len(w.buf)
	w.n--
	return c, true
}

// appendTo appends the window contents, front to back, to dst.
func (w *window) appendTo(dst []string) []string {
	if w.n == 0 {
		return dst
	}
	end := w.head + w.n
	if end <= len(w.buf) {
		return append(dst, w.buf[w.head:end]...)
	}
	dst = append(dst, w.buf[w.head:]...)
	return append(dst, w.buf[:end-len(w.buf)]...)
}

func (w *window) grow() {
	size := 2 * len(w.buf)
	if size == 0 {
		size = defaultWindowCapacity
	}
	buf := w.appendTo(make([]string, 0, size))
	w.buf = buf[:size]
	w.head = 0
}

func (w *window) reset() {
	clear(w.buf)
	w.head = 0
	w.n = 0
}

func (w *window) clone() window {
	buf := make([]string, len(w.buf))
	w.appendTo(buf[:0])
	return window{buf: buf, n: w.n}
}
