/*
PURPOSE:
  Writes conversion results to a CSV file.
  Flushes every row so a crashed or aborted batch keeps what it converted.

REQUIREMENTS:
  User-specified:
  - Output to CSV.

  Implementation-discovered:
  - Overwrite on every run; a batch output is a snapshot of one input file.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: internal/model.Result

ERROR HANDLING:
  - Returns error on file creation or write failure.

IMPLEMENTATION RULES:
  - Use encoding/csv.
  - Flush() after every write.
  - Mutex guards the writer.

USAGE:
  w, err := output.NewCSVWriter("conversions.csv")
  w.Write(result)
  w.Close()

RELATED FILES:
  - internal/model/types.go
*/

package output

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/daryltucker/roman-converter/internal/model"
)

// CSVHeader is the first row of every CSV output.
var CSVHeader = []string{"line", "operation", "input", "output", "error", "timestamp"}

// CSVWriter handles writing results to a CSV file.
type CSVWriter struct {
	out    io.WriteCloser
	writer *csv.Writer
	mu     sync.Mutex
}

// NewCSVWriter creates a new CSVWriter.
// It overwrites the file if it exists.
func NewCSVWriter(path string) (*CSVWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	cw, err := newCSVWriter(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return cw, nil
}

func newCSVWriter(w io.WriteCloser) (*CSVWriter, error) {
	cw := &CSVWriter{out: w, writer: csv.NewWriter(w)}
	if err := cw.writer.Write(CSVHeader); err != nil {
		return nil, err
	}
	cw.writer.Flush()
	return cw, cw.writer.Error()
}

// Write writes a single result to the CSV file.
// It is thread-safe.
func (cw *CSVWriter) Write(r model.Result) error {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	record := []string{
		strconv.Itoa(r.Line),
		r.Operation,
		r.Input,
		r.Output,
		r.Error,
		r.Timestamp.Format(time.RFC3339),
	}

	if err := cw.writer.Write(record); err != nil {
		return err
	}
	cw.writer.Flush()
	return cw.writer.Error()
}

// Close flushes and closes the underlying file.
func (cw *CSVWriter) Close() error {
	cw.writer.Flush()
	return cw.out.Close()
}
