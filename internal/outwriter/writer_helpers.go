package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/gitwrap/gitwrap/internal/contract"
)

// writeWithFile routes a render to stdout or the configured output file and
// confirms file writes on stderr so the data stream stays clean.
func writeWithFile(outputFile string, writer func(io.Writer) error, label string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "💾 Saved %s output to %s\n", label, outputFile)
	}
	return nil
}

// writeJSON encodes the report with two-space indentation and a trailing
// newline.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("encode JSON output: %w", err)
	}
	return nil
}

// writeCSVRows writes a header plus pre-built rows. Every CSV section of
// the report is assembled as a row slice first, so the writer side stays a
// single flush point.
func writeCSVRows(w io.Writer, header []string, rows [][]string) error {
	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("write CSV header: %w", err)
	}
	for _, row := range rows {
		if err := csvWriter.Write(row); err != nil {
			return fmt.Errorf("write CSV record: %w", err)
		}
	}
	return nil
}

// createFloatFormatter creates the float formatter closure shared by the
// text and CSV writers.
func createFloatFormatter(precision int) func(float64) string {
	return func(v float64) string {
		return fmt.Sprintf("%.*f", precision, v)
	}
}
