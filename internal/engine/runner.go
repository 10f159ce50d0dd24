/*
PURPOSE:
  Batch runner. Reads "<operation> <value>" lines, converts each one and
  records every outcome to CSV and JSON Lines.

REQUIREMENTS:
  User-specified:
  - Convert many values in one invocation.
  - Log results to CSV/JSON.

  Implementation-discovered:
  - Blank lines and '#' comments are skipped.
  - Bad lines are recorded as failed results, not fatal (unless stop_on_error).

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Uses: internal/convert, internal/output, internal/model

ERROR HANDLING:
  - Logs errors but continues (resilience).
  - With StopOnError the first failed conversion aborts the run.
  - Output setup and read errors are always fatal.

IMPLEMENTATION RULES:
  - Sequential. Results are written in input order.

USAGE:
  sum, err := engine.Run(cfg, os.Stdin)

RELATED FILES:
  - internal/convert/convert.go
  - internal/output/csv.go
*/

package engine

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/daryltucker/roman-converter/internal/config"
	"github.com/daryltucker/roman-converter/internal/convert"
	"github.com/daryltucker/roman-converter/internal/model"
	"github.com/daryltucker/roman-converter/internal/output"
)

// Summary counts the outcomes of a batch run.
type Summary struct {
	Total     int
	Succeeded int
	Failed    int
}

// now is swapped in tests.
var now = time.Now

// Run converts every line read from in and writes the results under cfg.OutputDir.
func Run(cfg *config.Config, in io.Reader) (Summary, error) {
	var sum Summary

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return sum, fmt.Errorf("failed to create output directory %s: %w", cfg.OutputDir, err)
	}

	csvPath := filepath.Join(cfg.OutputDir, cfg.OutputFile)
	csvWriter, err := output.NewCSVWriter(csvPath)
	if err != nil {
		return sum, fmt.Errorf("failed to init CSV writer at %s: %w", csvPath, err)
	}
	defer csvWriter.Close()

	jsonPath := filepath.Join(cfg.OutputDir, cfg.JSONFile)
	jsonWriter, err := output.NewJSONWriter(jsonPath)
	if err != nil {
		return sum, fmt.Errorf("failed to init JSON writer at %s: %w", jsonPath, err)
	}
	defer jsonWriter.Close()

	output.Logger.Info("Starting batch", "csv", csvPath, "json", jsonPath)

	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		res := Process(lineNo, line)
		sum.Total++

		if err := csvWriter.Write(res); err != nil {
			return sum, fmt.Errorf("failed to write result to CSV: %w", err)
		}
		if err := jsonWriter.Write(res); err != nil {
			return sum, fmt.Errorf("failed to write result to JSON: %w", err)
		}

		if res.Failed() {
			sum.Failed++
			output.Logger.Error("Conversion failed", "line", lineNo, "input", res.Input, "error", res.Error)
			if cfg.StopOnError {
				return sum, fmt.Errorf("line %d: %s", lineNo, res.Error)
			}
			continue
		}

		sum.Succeeded++
		output.Logger.Debug("Converted", "line", lineNo, "operation", res.Operation, "input", res.Input, "output", res.Output)
	}

	if err := scanner.Err(); err != nil {
		return sum, fmt.Errorf("failed to read input: %w", err)
	}

	output.Logger.Info("Batch complete", "total", sum.Total, "succeeded", sum.Succeeded, "failed", sum.Failed)
	return sum, nil
}

// Process converts a single "<operation> <value>" line.
func Process(lineNo int, line string) model.Result {
	res := model.Result{Line: lineNo, Timestamp: now()}

	fields := strings.Fields(line)
	if len(fields) != 2 {
		res.Input = line
		res.Error = fmt.Sprintf("expected \"<operation> <value>\", got %d fields", len(fields))
		return res
	}
	res.Operation, res.Input = fields[0], fields[1]

	op, err := convert.ParseOperation(fields[0])
	if err != nil {
		res.Error = err.Error()
		return res
	}

	out, err := convert.Run(op, fields[1])
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.Output = out
	return res
}
