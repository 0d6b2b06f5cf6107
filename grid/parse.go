package grid

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// Parse reads a diagram from its plain textual encoding: one row per
// line, comma-separated fields, each field exactly "x", "o", or a single
// space. Any other token, a non-square layout, or an invariant violation
// yields ErrInvalidDiagram.
func Parse(r io.Reader) (*Diagram, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // shape is validated by New

	var cells [][]Entry
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDiagram, err)
		}

		row := make([]Entry, len(record))
		for j, field := range record {
			switch field {
			case "x":
				row[j] = X
			case "o":
				row[j] = O
			case " ":
				row[j] = Blank
			default:
				return nil, fmt.Errorf("%w: unknown entry %q", ErrInvalidDiagram, field)
			}
		}
		cells = append(cells, row)
	}

	return New(cells)
}

// ParseFile reads a diagram from the CSV file at path.
func ParseFile(path string) (*Diagram, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}

// Encode writes the diagram in the same format Parse reads.
func (d *Diagram) Encode(w io.Writer) error {
	for _, row := range d.cells {
		tokens := make([]string, len(row))
		for j, e := range row {
			tokens[j] = e.String()
		}
		if _, err := fmt.Fprintln(w, strings.Join(tokens, ",")); err != nil {
			return err
		}
	}

	return nil
}

// String returns the diagram's textual encoding.
func (d *Diagram) String() string {
	var sb strings.Builder
	_ = d.Encode(&sb)

	return sb.String()
}
