// Package outwriter renders ranking results as a table, CSV, JSON or Parquet.
package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
)

// Result tier labels and their colors for table output.
const (
	strongValue = "Strong"
	solidValue  = "Solid"
	fairValue   = "Fair"
	weakValue   = "Weak"
)

var (
	strongColor = color.New(color.FgGreen)
	solidColor  = color.New(color.FgCyan)
	fairColor   = color.New(color.FgYellow)
	weakColor   = color.New(color.FgRed)
)

// getPlainLabel returns a text tier label for a final score in [0,1].
func getPlainLabel(score float64) string {
	switch {
	case score >= 0.75:
		return strongValue
	case score >= 0.5:
		return solidValue
	case score >= 0.25:
		return fairValue
	default:
		return weakValue
	}
}

// getColorLabel returns a colored tier label for console output.
func getColorLabel(score float64) string {
	text := getPlainLabel(score)
	switch text {
	case strongValue:
		return strongColor.Sprint(text)
	case solidValue:
		return solidColor.Sprint(text)
	case fairValue:
		return fairColor.Sprint(text)
	default:
		return weakColor.Sprint(text)
	}
}

// money renders a USD amount with banker's rounding to cents. Display only;
// engine math stays float64 end to end.
func money(v float64) string {
	return decimal.NewFromFloat(v).StringFixedBank(2)
}

// createFormatters creates the common formatter closures used across output types.
func createFormatters(precision int) (fmtFloat func(float64) string, intFmt string) {
	intFmt = "%d"
	fmtFloat = func(v float64) string {
		return fmt.Sprintf("%.*f", precision, v)
	}
	return fmtFloat, intFmt
}

// selectOutputFile returns the file handle for output, defaulting to stdout.
func selectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// writeWithFile handles the common pattern of opening a file, writing to it,
// and cleaning up.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := selectOutputFile(outputFile)
	if err != nil {
		return err
	}
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "💾 %s to %s\n", successMsg, outputFile)
	}
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeCSVWithHeader creates a CSV writer, writes a header, then data rows.
func writeCSVWithHeader(w io.Writer, header []string, writeRows func(*csv.Writer) error) error {
	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	return writeRows(csvWriter)
}
