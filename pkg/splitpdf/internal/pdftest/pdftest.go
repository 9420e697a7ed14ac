// Package pdftest builds minimal PDF fixtures for tests.
package pdftest

import (
	"bytes"
	"fmt"
	"os"
	"testing"
)

// WritePDF writes a minimal valid PDF with the given number of empty
// pages to path. The xref offsets are computed while the body is
// assembled, so the file parses with strict readers.
func WritePDF(t *testing.T, path string, pages int) {
	t.Helper()

	var buf bytes.Buffer
	offsets := make([]int, 0, pages+2)

	buf.WriteString("%PDF-1.4\n")

	offsets = append(offsets, buf.Len())
	buf.WriteString("1 0 obj\n<</Type/Catalog/Pages 2 0 R>>\nendobj\n")

	offsets = append(offsets, buf.Len())
	buf.WriteString("2 0 obj\n<</Type/Pages/Kids[")
	for i := 0; i < pages; i++ {
		if i > 0 {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(&buf, "%d 0 R", i+3)
	}
	fmt.Fprintf(&buf, "]/Count %d>>\nendobj\n", pages)

	for i := 0; i < pages; i++ {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n<</Type/Page/MediaBox[0 0 612 792]/Parent 2 0 R/Resources<<>>>>\nendobj\n", i+3)
	}

	xrefOffset := buf.Len()
	buf.WriteString("xref\n")
	fmt.Fprintf(&buf, "0 %d\n", len(offsets)+1)
	// Entries are exactly 20 bytes each.
	fmt.Fprintf(&buf, "%010d %05d f \r\n", 0, 65535)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d %05d n \r\n", off, 0)
	}
	buf.WriteString("trailer\n")
	fmt.Fprintf(&buf, "<</Size %d/Root 1 0 R>>\n", len(offsets)+1)
	buf.WriteString("startxref\n")
	fmt.Fprintf(&buf, "%d\n", xrefOffset)
	buf.WriteString("%%EOF")

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("Failed to write test pdf: %v", err)
	}
}
