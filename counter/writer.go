package counter

import (
	"io"
	"sync"
)

// CountWriter counts the bytes successfully written through it.
type CountWriter struct {
	writer io.Writer
	mutex  sync.Mutex
	count  int64
}

func NewCountWriter(w io.Writer) *CountWriter {
	return &CountWriter{writer: w}
}

func (c *CountWriter) Write(b []byte) (int, error) {
	n, err := c.writer.Write(b)

	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.count += int64(n)

	return n, err
}

func (c *CountWriter) Count() int64 {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.count
}
