// Package mapping loads the table that describes how to slice and name
// the output files. The canonical format is an xlsx workbook; a csv
// file with the same header row is accepted as well.
package mapping

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/xuri/excelize/v2"
)

// RequiredColumns is the header schema every mapping table must carry.
// Extra columns are ignored.
var RequiredColumns = []string{
	"yearbook", "year", "category", "products",
	"yearbook_start", "yearbook_end", "pdf_start", "pdf_end",
}

// Row is one validated entry of the mapping table. YearbookStart and
// YearbookEnd are display-only page numbers used in the output name;
// PDFStart and PDFEnd are 1-based inclusive indices into the source.
type Row struct {
	Yearbook      string
	Year          string
	Category      string
	Products      string
	YearbookStart int
	YearbookEnd   int
	PDFStart      int
	PDFEnd        int
}

// record is one raw table row before numeric validation.
type record struct {
	Yearbook      string `csv:"yearbook"`
	Year          string `csv:"year"`
	Category      string `csv:"category"`
	Products      string `csv:"products"`
	YearbookStart string `csv:"yearbook_start"`
	YearbookEnd   string `csv:"yearbook_end"`
	PDFStart      string `csv:"pdf_start"`
	PDFEnd        string `csv:"pdf_end"`
}

// Load reads the mapping table at path, choosing the parser by file
// extension. Rows come back in table order.
func Load(path string) ([]Row, error) {
	var (
		records []record
		err     error
	)
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		records, err = loadCSV(path)
	} else {
		records, err = loadXLSX(path)
	}
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrEmptyTable
	}

	rows := make([]Row, 0, len(records))
	for i, rec := range records {
		row, err := rec.toRow(i + 1)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func loadXLSX(path string) ([]record, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open mapping file: %w", err)
	}
	defer f.Close()

	// First sheet only, same as the table's authors expect.
	sheet := f.GetSheetName(0)
	cells, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(cells) == 0 {
		return nil, &ColumnError{Missing: RequiredColumns}
	}

	index, err := headerIndex(cells[0])
	if err != nil {
		return nil, err
	}

	var records []record
	for _, rowCells := range cells[1:] {
		rec := record{
			Yearbook:      cellAt(rowCells, index["yearbook"]),
			Year:          cellAt(rowCells, index["year"]),
			Category:      cellAt(rowCells, index["category"]),
			Products:      cellAt(rowCells, index["products"]),
			YearbookStart: cellAt(rowCells, index["yearbook_start"]),
			YearbookEnd:   cellAt(rowCells, index["yearbook_end"]),
			PDFStart:      cellAt(rowCells, index["pdf_start"]),
			PDFEnd:        cellAt(rowCells, index["pdf_end"]),
		}
		if rec != (record{}) {
			records = append(records, rec)
		}
	}
	return records, nil
}

// utf8BOM is the byte-order mark some spreadsheet csv exports prepend.
const utf8BOM = "\uFEFF"

func loadCSV(path string) ([]record, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open mapping file: %w", err)
	}
	data := []byte(strings.TrimPrefix(string(raw), utf8BOM))

	// Validate the header up front; gocsv silently zero-fills missing
	// columns otherwise.
	header := strings.Split(strings.SplitN(string(data), "\n", 2)[0], ",")
	if _, err := headerIndex(header); err != nil {
		return nil, err
	}

	gocsv.SetHeaderNormalizer(func(h string) string {
		return strings.ToLower(strings.TrimSpace(h))
	})

	var records []record
	if err := gocsv.UnmarshalBytes(data, &records); err != nil {
		return nil, fmt.Errorf("cannot parse mapping csv: %w", err)
	}

	filtered := records[:0]
	for _, rec := range records {
		if rec != (record{}) {
			filtered = append(filtered, rec)
		}
	}
	return filtered, nil
}

// headerIndex maps each required column to its position in the header
// row. Matching ignores case and surrounding whitespace.
func headerIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(RequiredColumns))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &ColumnError{Missing: missing}
	}
	return index, nil
}

func cellAt(cells []string, i int) string {
	if i < len(cells) {
		return strings.TrimSpace(cells[i])
	}
	return ""
}

// toRow validates the numeric fields. rowNum is the 1-based data row
// number used in error messages.
func (r record) toRow(rowNum int) (Row, error) {
	row := Row{
		Yearbook: r.Yearbook,
		Year:     r.Year,
		Category: r.Category,
		Products: r.Products,
	}

	fields := []struct {
		column string
		raw    string
		dst    *int
		nonNeg bool
	}{
		{"yearbook_start", r.YearbookStart, &row.YearbookStart, true},
		{"yearbook_end", r.YearbookEnd, &row.YearbookEnd, true},
		{"pdf_start", r.PDFStart, &row.PDFStart, false},
		{"pdf_end", r.PDFEnd, &row.PDFEnd, false},
	}
	for _, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f.raw))
		if err != nil {
			return Row{}, &RowError{Row: rowNum, Column: f.column,
				Err: fmt.Errorf("not a whole number: %q", f.raw)}
		}
		if f.nonNeg && n < 0 {
			return Row{}, &RowError{Row: rowNum, Column: f.column,
				Err: fmt.Errorf("must not be negative: %d", n)}
		}
		*f.dst = n
	}
	return row, nil
}

// WriteTemplate creates an empty mapping table at path containing
// only the required header row. The format follows the extension,
// xlsx unless path names a csv.
func WriteTemplate(path string) error {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		data, err := gocsv.MarshalBytes(&[]record{})
		if err != nil {
			return err
		}
		return os.WriteFile(path, data, 0644)
	}

	f := excelize.NewFile()
	defer f.Close()

	header := make([]interface{}, len(RequiredColumns))
	for i, col := range RequiredColumns {
		header[i] = col
	}
	if err := f.SetSheetRow(f.GetSheetName(0), "A1", &header); err != nil {
		return err
	}
	return f.SaveAs(path)
}
