package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/alvaro-alvarez-redondo/split-rename-pdf/pkg/splitpdf/internal/pdftest"
)

func openTestSource(t *testing.T, pages int) *Source {
	t.Helper()

	path := filepath.Join(t.TempDir(), "source.pdf")
	pdftest.WritePDF(t, path, pages)

	src, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	return src
}

func TestOpenPageCount(t *testing.T) {
	src := openTestSource(t, 10)
	if src.PageCount() != 10 {
		t.Errorf("PageCount = %d, expected 10", src.PageCount())
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope.pdf")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestExtractRange(t *testing.T) {
	src := openTestSource(t, 10)
	out := filepath.Join(t.TempDir(), "slice.pdf")

	if err := src.ExtractRange(1, 5, out); err != nil {
		t.Fatalf("ExtractRange failed: %v", err)
	}

	n, err := api.PageCountFile(out)
	if err != nil {
		t.Fatalf("Output is not a readable pdf: %v", err)
	}
	if n != 5 {
		t.Errorf("Output has %d pages, expected 5", n)
	}
}

func TestExtractRangeSinglePage(t *testing.T) {
	src := openTestSource(t, 3)
	out := filepath.Join(t.TempDir(), "page.pdf")

	if err := src.ExtractRange(2, 2, out); err != nil {
		t.Fatalf("ExtractRange failed: %v", err)
	}

	if n, _ := api.PageCountFile(out); n != 1 {
		t.Errorf("Output has %d pages, expected 1", n)
	}
}

func TestExtractRangeCreatesParentDirs(t *testing.T) {
	src := openTestSource(t, 4)
	out := filepath.Join(t.TempDir(), "nested", "dir", "slice.pdf")

	if err := src.ExtractRange(1, 2, out); err != nil {
		t.Fatalf("ExtractRange failed: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("Output not written: %v", err)
	}
}

func TestExtractRangeReusesSource(t *testing.T) {
	src := openTestSource(t, 10)
	dir := t.TempDir()

	// Several slices from the same open source, as the run driver does.
	slices := []struct{ start, end, want int }{
		{1, 5, 5},
		{6, 9, 4},
		{10, 10, 1},
	}
	for i, s := range slices {
		out := filepath.Join(dir, "slice", "out"+string(rune('a'+i))+".pdf")
		if err := src.ExtractRange(s.start, s.end, out); err != nil {
			t.Fatalf("ExtractRange(%d, %d) failed: %v", s.start, s.end, err)
		}
		if n, _ := api.PageCountFile(out); n != s.want {
			t.Errorf("Slice %d-%d has %d pages, expected %d", s.start, s.end, n, s.want)
		}
	}
}
