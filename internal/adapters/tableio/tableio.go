// Package tableio loads player tables from exported workbooks and
// delimiter-separated files into the row-of-strings shape the sheet
// parser consumes.
package tableio

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Loader reads player tables from disk.
type Loader struct {
	headerRows int
	sheetName  string
}

// Option applies a configuration option to the Loader.
type Option func(*Loader)

// WithHeaderRows drops the first n rows of every table; exported views
// usually carry one heading row.
func WithHeaderRows(n int) Option {
	return func(l *Loader) {
		if n >= 0 {
			l.headerRows = n
		}
	}
}

// WithSheetName reads the named worksheet instead of the first one.
// Only meaningful for workbook files.
func WithSheetName(name string) Option {
	return func(l *Loader) {
		l.sheetName = name
	}
}

// NewLoader creates a Loader with configuration options.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads the table at path, dispatching on the file extension:
// .xlsx workbooks, .csv, and .tsv are supported.
func (l *Loader) Load(path string) ([][]string, error) {
	var (
		rows [][]string
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx":
		rows, err = l.loadWorkbook(path)
	case ".csv":
		rows, err = l.loadDelimited(path, ',')
	case ".tsv":
		rows, err = l.loadDelimited(path, '\t')
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, err
	}
	if l.headerRows >= len(rows) {
		return nil, nil
	}
	return rows[l.headerRows:], nil
}

func (l *Loader) loadWorkbook(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoadTable, path, err)
	}
	defer f.Close()

	name := l.sheetName
	if name == "" {
		name = f.GetSheetName(0)
	}
	rows, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s sheet %q: %w", ErrLoadTable, path, name, err)
	}
	return rows, nil
}

func (l *Loader) loadDelimited(path string, comma rune) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoadTable, path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = comma
	r.FieldsPerRecord = -1 // short rows are legal; the parser pads them
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoadTable, path, err)
	}
	return rows, nil
}
