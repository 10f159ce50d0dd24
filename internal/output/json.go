/*
PURPOSE:
  Writes conversion results to a JSON Lines file (NDJSON).
  One object per converted line, for machine parsing.

REQUIREMENTS:
  User-specified:
  - JSON output alongside CSV for batch runs.

  Implementation-discovered:
  - JSON Lines is better for streaming/logging than a single large array (append-friendly).

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: internal/model.Result

ERROR HANDLING:
  - Returns error on file creation or write failure.

IMPLEMENTATION RULES:
  - Use encoding/json.NewEncoder.
  - Thread-safe.

USAGE:
  w, err := output.NewJSONWriter("conversions.jsonl")
  w.Write(result)
  w.Close()

RELATED FILES:
  - internal/model/types.go
*/

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/daryltucker/roman-converter/internal/model"
)

// JSONWriter handles writing results to a JSON Lines file.
type JSONWriter struct {
	out     io.WriteCloser
	encoder *json.Encoder
	mu      sync.Mutex
	count   int
}

// NewJSONWriter creates a new JSONWriter, truncating any existing file.
func NewJSONWriter(path string) (*JSONWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return newJSONWriter(f), nil
}

func newJSONWriter(w io.WriteCloser) *JSONWriter {
	return &JSONWriter{
		out:     w,
		encoder: json.NewEncoder(w),
	}
}

// Write writes a single result as a JSON line.
func (jw *JSONWriter) Write(r model.Result) error {
	jw.mu.Lock()
	defer jw.mu.Unlock()

	if err := jw.encoder.Encode(r); err != nil {
		return fmt.Errorf("json: line %d: %w", r.Line, err)
	}
	jw.count++
	return nil
}

// Count returns the number of results written so far.
func (jw *JSONWriter) Count() int {
	jw.mu.Lock()
	defer jw.mu.Unlock()
	return jw.count
}

// Close closes the underlying file.
func (jw *JSONWriter) Close() error {
	return jw.out.Close()
}
