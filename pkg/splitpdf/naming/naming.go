// Package naming derives output filenames for extracted page ranges.
package naming

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// invalidRuns matches runs of whitespace and characters that are not
// safe in filenames on common filesystems.
var invalidRuns = regexp.MustCompile(`[\\/:*?"<>|\s]+`)

// Sanitize cleans free text for use as a filename token: runs of
// whitespace or reserved characters collapse to a single underscore,
// leading/trailing underscores are stripped, and the result is
// lowercased. Sanitize accepts any string and is idempotent.
func Sanitize(name string) string {
	cleaned := invalidRuns.ReplaceAllString(strings.TrimSpace(name), "_")
	return strings.ToLower(strings.Trim(cleaned, "_"))
}

// BaseName builds the output filename stem for one mapping row.
// The pattern is yearbook_category_year_firstPage_lastPage_products;
// when products sanitizes to empty the trailing segment is omitted.
func BaseName(yearbook, category, year string, firstPage, lastPage int, products string) string {
	base := fmt.Sprintf("%s_%s_%s_%d_%d",
		Sanitize(yearbook), Sanitize(category), Sanitize(year), firstPage, lastPage)
	if p := Sanitize(products); p != "" {
		base += "_" + p
	}
	return base
}

// Resolve returns a path under dir for base that does not exist yet:
// base.pdf, then base_1.pdf, base_2.pdf and so on. With overwrite set
// it always returns base.pdf regardless of what is on disk.
func Resolve(dir, base string, overwrite bool) string {
	path := filepath.Join(dir, base+".pdf")
	if overwrite {
		return path
	}
	for counter := 1; exists(path); counter++ {
		path = filepath.Join(dir, fmt.Sprintf("%s_%d.pdf", base, counter))
	}
	return path
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
