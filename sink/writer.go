package sink

import (
	"bufio"
	"io"
	"os"

	"github.com/kwertop/gocharm/itemset"
	"github.com/pkg/errors"
)

// Writer streams itemsets as SPMF lines ("1 2 3 #SUP: 2") through a buffer.
// Call Flush, or Close for writers created by CreateFile, once mining is done.
type Writer struct {
	out    *bufio.Writer
	closer io.Closer
	count  int
}

// NewWriter creates a Writer on _w_
func NewWriter(w io.Writer) *Writer {
	return &Writer{bufio.NewWriter(w), nil, 0}
}

// CreateFile creates (or truncates) the file at _path_ and returns a Writer
// on it
func CreateFile(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "gocharm: could not create output file %s", path)
	}
	return &Writer{bufio.NewWriter(f), f, 0}, nil
}

// Emit writes _is_ on its own line
func (w *Writer) Emit(is itemset.Itemset) error {
	if _, err := w.out.WriteString(is.String()); err != nil {
		return errors.Wrap(err, "gocharm: error writing itemset")
	}
	if err := w.out.WriteByte('\n'); err != nil {
		return errors.Wrap(err, "gocharm: error writing itemset")
	}
	w.count++
	return nil
}

// Count returns the number of itemsets written
func (w *Writer) Count() int {
	return w.count
}

// Flush writes the buffered lines to the underlying writer
func (w *Writer) Flush() error {
	return errors.Wrap(w.out.Flush(), "gocharm: error flushing itemsets")
}

// Close flushes the buffer and closes the file opened by CreateFile
func (w *Writer) Close() error {
	if err := w.Flush(); err != nil {
		return err
	}
	if w.closer == nil {
		return nil
	}
	return errors.Wrap(w.closer.Close(), "gocharm: error closing output file")
}
