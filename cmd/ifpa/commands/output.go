package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/ifpa-client/internal/constants"
	"github.com/fivetwenty-io/ifpa-client/pkg/ifpa"
)

// tableSpec describes how to print a value as a table.
type tableSpec struct {
	headers []string
	rows    [][]string
}

// render writes data in the configured output format. table is only called
// for table output.
func (a *App) render(cmd *cobra.Command, data any, table func() tableSpec) error {
	out := cmd.OutOrStdout()

	switch a.config.Output {
	case constants.FormatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")

		return encoder.Encode(data)
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(out)

		return encoder.Encode(data)
	default:
		return renderTable(out, table())
	}
}

func renderTable(out io.Writer, spec tableSpec) error {
	if len(spec.rows) == 0 {
		_, _ = fmt.Fprintln(out, color.New(color.FgYellow).Sprint("No results"))

		return nil
	}

	headers := make([]any, len(spec.headers))
	for i, header := range spec.headers {
		headers[i] = header
	}

	table := tablewriter.NewWriter(out)
	table.Header(headers...)

	for _, row := range spec.rows {
		_ = table.Append(row)
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// propertyTable renders key/value pairs.
func propertyTable(pairs ...string) tableSpec {
	spec := tableSpec{headers: []string{"Property", "Value"}}

	for i := 0; i+1 < len(pairs); i += 2 {
		spec.rows = append(spec.rows, []string{pairs[i], pairs[i+1]})
	}

	return spec
}

func formatInt(value ifpa.Int) string {
	if value == 0 {
		return constants.NotAvailable
	}

	return strconv.Itoa(int(value))
}

func formatPoints(value ifpa.Number) string {
	return strconv.FormatFloat(value.Float64(), 'f', 2, 64)
}

func orNA(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	return value
}

// PrintError writes err to w, highlighting API status codes.
func PrintError(w io.Writer, err error) {
	errColor := color.New(color.FgRed, color.Bold)

	if status := ifpa.StatusCode(err); status != 0 {
		_, _ = errColor.Fprintf(w, "Error (HTTP %d): ", status)
	} else {
		_, _ = errColor.Fprint(w, "Error: ")
	}

	_, _ = fmt.Fprintln(w, err)
}
