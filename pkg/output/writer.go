package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/iancoleman/orderedmap"

	"github.com/ajxudir/lastupdate/pkg/constants"
)

// Write renders reports in the given format.
//
// Parameters:
//   - w: Destination writer
//   - format: FormatText, FormatJSON or FormatTable
//   - machine: Use epochs instead of dates and compact separators
//   - reports: One report per checked package, in command line order
//
// Returns:
//   - error: When format is unsupported or the write fails
func Write(w io.Writer, format Format, machine bool, reports []*Report) error {
	switch format {
	case FormatText, "":
		return writeText(w, machine, reports)
	case FormatJSON:
		return writeJSON(w, machine, reports)
	case FormatTable:
		return writeTable(w, machine, reports)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func writeText(w io.Writer, machine bool, reports []*Report) error {
	for _, r := range reports {
		if _, err := fmt.Fprintln(w, r.Text(machine)); err != nil {
			return err
		}
	}
	return nil
}

// reportObject builds the JSON object of one report with a fixed key order.
func reportObject(r *Report, machine bool) *orderedmap.OrderedMap {
	o := orderedmap.New()
	o.SetEscapeHTML(false)
	o.Set("package", r.Package)
	o.Set("project", r.Project)
	o.Set("status", r.Status())
	if r.Err != nil {
		o.Set("error", r.Err.Message())
		return o
	}

	o.Set("version", r.Version)
	switch {
	case !machine:
		o.Set("changed", r.Changed)
	case r.HasEpoch:
		o.Set("changed", r.Epoch)
	default:
		o.Set("changed", nil)
	}
	o.Set("newer_repos", r.NewerRepos)
	return o
}

func writeJSON(w io.Writer, machine bool, reports []*Report) error {
	objects := make([]*orderedmap.OrderedMap, 0, len(reports))
	for _, r := range reports {
		objects = append(objects, reportObject(r, machine))
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if !machine {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(objects); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func writeTable(w io.Writer, machine bool, reports []*Report) error {
	table := NewTable("PACKAGE", "PROJECT", "VERSION", "CHANGED", "NEWER", "STATUS")

	rows := make([][]string, 0, len(reports))
	for _, r := range reports {
		row := []string{r.Package, r.Project, constants.PlaceholderNA, constants.PlaceholderNA, constants.PlaceholderNA, r.Status()}
		if r.OK() {
			row[2] = r.Version
			row[3] = r.ChangedString(machine)
			row[4] = strconv.Itoa(r.NewerRepos)
		}
		table.UpdateWidths(row...)
		rows = append(rows, row)
	}

	var buf bytes.Buffer
	table.Fprint(&buf)
	for _, row := range rows {
		buf.WriteString(table.FormatRow(row...))
		buf.WriteByte('\n')
	}

	first := true
	for _, r := range reports {
		if r.OK() {
			continue
		}
		if first {
			buf.WriteByte('\n')
			first = false
		}
		buf.WriteString(r.Err.Message())
		buf.WriteByte('\n')
	}

	_, err := w.Write(buf.Bytes())
	return err
}
