// Package catalog loads and saves destination catalog exports. An export is a
// UTF-8, comma-delimited file with a header row; column names and cell values
// are normalized on load, and the table preserves column and row order so a
// save reproduces the input layout.
package catalog

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// Core export columns. The subheading lives in a dynamically named metafield
// column; the name below matches the destination platform's export format.
const (
	ColID         = "ID"
	ColHandle     = "Handle"
	ColTitle      = "Title"
	ColBodyHTML   = "Body HTML"
	ColSubheading = "Metafield: custom.collection_subheading [single_line_text_field]"
)

// Record maps a normalized column name to its trimmed cell value. Cells
// absent from a short row are present with an empty value, never missing.
type Record map[string]string

// Clone returns an independent copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Table holds a loaded export with its original column and row order.
type Table struct {
	Columns []string
	Rows    []Record
}

// CleanColumn normalizes a header cell: strips a byte-order mark, trims
// whitespace, and removes one layer of surrounding single or double quotes.
// Exports produced by spreadsheet round-trips carry all three artifacts.
func CleanColumn(name string) string {
	cleaned := strings.ReplaceAll(name, "\ufeff", "")
	cleaned = strings.TrimSpace(cleaned)
	if len(cleaned) >= 2 {
		first, last := cleaned[0], cleaned[len(cleaned)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			cleaned = cleaned[1 : len(cleaned)-1]
		}
	}
	return cleaned
}

// Load reads a CSV export into a Table. Ragged rows are tolerated: extra
// cells are dropped, missing cells become empty strings. Any open or decode
// failure is fatal for the load step; nothing is retried.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	raw, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("parse %s: missing header row", path)
	}

	columns := make([]string, len(raw[0]))
	for i, name := range raw[0] {
		columns[i] = CleanColumn(name)
	}

	rows := make([]Record, 0, len(raw)-1)
	for _, cells := range raw[1:] {
		rec := make(Record, len(columns))
		for i, col := range columns {
			if i < len(cells) {
				rec[col] = strings.TrimSpace(cells[i])
			} else {
				rec[col] = ""
			}
		}
		rows = append(rows, rec)
	}

	return &Table{Columns: columns, Rows: rows}, nil
}

// Index builds a mapping from the given key column to records. Rows whose
// key is empty are skipped, as are rows whose key equals the column label
// itself, a guard against exports with an accidentally duplicated header
// row. Duplicate keys resolve last-wins in row order.
func (t *Table) Index(keyColumn string) map[string]Record {
	idx := make(map[string]Record, len(t.Rows))
	for _, row := range t.Rows {
		key := row[keyColumn]
		if key == "" || key == keyColumn {
			continue
		}
		idx[key] = row
	}
	return idx
}

// Save rewrites the table to path with the same column set and row order it
// was loaded with. The write is whole-file; a failure is fatal and
// propagated to the caller.
func Save(path string, t *Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.Write(t.Columns); err != nil {
		return fmt.Errorf("write header to %s: %w", path, err)
	}
	cells := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i, col := range t.Columns {
			cells[i] = row[col]
		}
		if err := w.Write(cells); err != nil {
			return fmt.Errorf("write row to %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return nil
}
