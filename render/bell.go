package render

import (
	"bytes"
	"io"
	"strings"
	"sync/atomic"
)

// BellQueue is an io.Writer that counts terminal bells written from other
// goroutines so the render loop can ring them between frames. Bytes other
// than BEL are discarded.
type BellQueue struct {
	pending atomic.Int64
}

func (q *BellQueue) Write(p []byte) (int, error) {
	if n := bytes.Count(p, []byte{'\a'}); n > 0 {
		q.pending.Add(int64(n))
	}
	return len(p), nil
}

// Flush writes every queued bell to w.
func (q *BellQueue) Flush(w io.Writer) error {
	n := q.pending.Swap(0)
	if n == 0 {
		return nil
	}
	_, err := io.WriteString(w, strings.Repeat("\a", int(n)))
	return err
}
