package splitpdf

import (
	"errors"
	"fmt"
)

// ErrNoSourcePDF indicates the working directory contains no PDF.
var ErrNoSourcePDF = errors.New("no pdf found in the working directory")

// ErrMultipleSourcePDFs indicates the working directory contains more
// than one PDF and the tool cannot tell which one to split.
var ErrMultipleSourcePDFs = errors.New("more than one pdf found in the working directory")

// ErrAborted indicates the operator declined to continue at a prompt.
var ErrAborted = errors.New("aborted by operator")

// RangeError reports a mapping row whose page range does not fit the
// source document.
type RangeError struct {
	Row        int    // 1-based data row number
	Products   string // sanitized products token
	Start, End int
	TotalPages int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid page range for row %d (%q): %d-%d (pdf has %d pages)",
		e.Row, e.Products, e.Start, e.End, e.TotalPages)
}
