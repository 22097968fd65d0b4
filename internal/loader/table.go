package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// table is a header-driven CSV reader. Column names are matched case
// insensitively and may appear in any order.
type table struct {
	reader  *csv.Reader
	columns map[string]int
	row     int
}

func openTable(r io.Reader) (*table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty file", ErrMissingColumn)
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		name = strings.ToLower(strings.TrimSpace(name))
		if _, dup := columns[name]; !dup {
			columns[name] = i
		}
	}
	return &table{reader: reader, columns: columns, row: 1}, nil
}

func (t *table) require(names ...string) error {
	for _, name := range names {
		if !t.has(name) {
			return fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}
	return nil
}

func (t *table) requireAny(names ...string) error {
	for _, name := range names {
		if t.has(name) {
			return nil
		}
	}
	return fmt.Errorf("%w: one of %s", ErrMissingColumn, strings.Join(names, ", "))
}

func (t *table) has(name string) bool {
	_, ok := t.columns[name]
	return ok
}

// next returns the following record. Row numbers count the header as row 1.
func (t *table) next() ([]string, error) {
	rec, err := t.reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, io.EOF
	}
	t.row++
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	return rec, nil
}

// get returns the trimmed value of the first listed column that is present
// and non-empty.
func (t *table) get(rec []string, names ...string) string {
	for _, name := range names {
		i, ok := t.columns[name]
		if !ok || i >= len(rec) {
			continue
		}
		if v := strings.TrimSpace(rec[i]); v != "" {
			return v
		}
	}
	return ""
}
