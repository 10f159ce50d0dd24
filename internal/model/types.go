/*
PURPOSE:
  Defines the record produced for every conversion in batch mode.

REQUIREMENTS:
  User-specified:
  - Record operation, input, output and failure reason.

  Implementation-discovered:
  - Need the source line number to point users at bad input.
  - Need JSON tags for the JSON Lines writer.

ARCHITECTURE INTEGRATION:
  - Used by: internal/engine, internal/output

ERROR HANDLING:
  - None (pure data structs).

IMPLEMENTATION RULES:
  - Keep structs simple and public.

USAGE:
  res := model.Result{...}

RELATED FILES:
  - internal/output/csv.go
  - internal/output/json.go
*/

package model

import (
	"time"
)

// Result represents the outcome of a single conversion.
type Result struct {
	Line      int       `json:"line"`
	Operation string    `json:"operation"`
	Input     string    `json:"input"`
	Output    string    `json:"output,omitempty"`
	Error     string    `json:"error,omitempty"` // If the conversion failed
	Timestamp time.Time `json:"timestamp"`
}

// Failed reports whether the conversion produced an error.
func (r Result) Failed() bool {
	return r.Error != ""
}
