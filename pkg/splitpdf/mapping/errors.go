package mapping

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyTable indicates the mapping table has a header but no data rows.
var ErrEmptyTable = errors.New("mapping table has no data rows")

// ColumnError reports required columns missing from the header row.
type ColumnError struct {
	Missing []string
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("missing columns in mapping table: %s", strings.Join(e.Missing, ", "))
}

// RowError reports an invalid value in one data row. Row is the
// 1-based data row number (the header row does not count).
type RowError struct {
	Row    int
	Column string
	Err    error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d, column %q: %v", e.Row, e.Column, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}
