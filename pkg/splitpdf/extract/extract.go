// Package extract copies page ranges out of a source PDF.
package extract

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Source is the input PDF, opened once and shared read-only by every
// extraction of a run.
type Source struct {
	ctx  *model.Context
	path string
}

// Open reads and validates the PDF at path.
func Open(path string) (*Source, error) {
	ctx, err := api.ReadContextFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read source pdf %s: %w", filepath.Base(path), err)
	}
	return &Source{ctx: ctx, path: path}, nil
}

// Path returns the location the source was opened from.
func (s *Source) Path() string {
	return s.path
}

// PageCount returns the number of pages in the source.
func (s *Source) PageCount() int {
	return s.ctx.PageCount
}

// ExtractRange writes the inclusive 1-based page range [start, end] to
// outPath as a new PDF, creating parent directories as needed. Pages
// keep their original order. Callers must validate the range against
// PageCount first.
func (s *Source) ExtractRange(start, end int, outPath string) error {
	pages := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}

	ctx, err := pdfcpu.ExtractPages(s.ctx, pages, false)
	if err != nil {
		return fmt.Errorf("cannot extract pages %d-%d: %w", start, end, err)
	}

	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	if err := api.WriteContextFile(ctx, outPath); err != nil {
		return fmt.Errorf("cannot write %s: %w", filepath.Base(outPath), err)
	}
	return nil
}
