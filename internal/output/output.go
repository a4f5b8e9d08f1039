// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package output prints a Series as an aligned table, JSON, or YAML.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/graphgen/pkg/types"
)

// maxNameWidth truncates long labels in table output.
const maxNameWidth = 40

// Write prints series to w in the given format. JSON and YAML always emit a
// list, so an empty series prints as [] rather than null.
func Write(w io.Writer, series types.Series, format types.OutputFormat) error {
	if series == nil {
		series = types.Series{}
	}

	switch format {
	case types.OutputTable, "":
		return writeTable(w, series)
	case types.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(series); err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		return nil
	case types.OutputYAML:
		data, err := yaml.Marshal(series)
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("%w %q: use table, json, or yaml", types.ErrUnknownFormat, format)
	}
}

func writeTable(w io.Writer, series types.Series) error {
	if series.IsEmpty() {
		_, err := fmt.Fprintln(w, "No data points found.")
		return err
	}

	fmt.Fprintf(w, "%-4s  %-40s  %10s  %7s\n", "Rank", "Name", "Value", "Share")
	fmt.Fprintln(w, strings.Repeat("-", 67))

	for i, p := range series {
		fmt.Fprintf(w, "%-4d  %-40s  %10s  %6.1f%%\n",
			i+1, truncateName(p.Name), FormatValue(p.Value), series.Share(i)*100)
	}

	_, err := fmt.Fprintf(w, "\n%d data points, total %s\n", len(series), FormatValue(series.Total()))
	return err
}

// truncateName shortens names longer than maxNameWidth runes, ending them
// with "...".
func truncateName(name string) string {
	if utf8.RuneCountInString(name) <= maxNameWidth {
		return name
	}
	runes := []rune(name)
	return string(runes[:maxNameWidth-3]) + "..."
}

// FormatValue prints v without trailing zeros: 50 -> "50", 12.5 -> "12.5".
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
