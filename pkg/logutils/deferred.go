package logutils

import (
	"bytes"
	"io"
	"sync"
)

// Deferred holds log output in memory until Flush is called. Used while a
// full-screen program owns the terminal and stderr cannot be written to.
// Safe for concurrent use.
type Deferred struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (d *Deferred) Write(p []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.buf.Write(p)
}

// Len returns the number of buffered bytes.
func (d *Deferred) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.buf.Len()
}

// Flush writes the buffered output to w and resets the buffer.
func (d *Deferred) Flush(w io.Writer) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.buf.Len() == 0 {
		return nil
	}

	_, err := d.buf.WriteTo(w)
	return err
}
