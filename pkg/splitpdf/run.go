package splitpdf

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"github.com/alvaro-alvarez-redondo/split-rename-pdf/pkg/splitpdf/extract"
	"github.com/alvaro-alvarez-redondo/split-rename-pdf/pkg/splitpdf/mapping"
	"github.com/alvaro-alvarez-redondo/split-rename-pdf/pkg/splitpdf/naming"
)

var (
	infoColor    = color.New(color.FgBlue, color.Bold)
	warnColor    = color.New(color.FgYellow, color.Bold)
	successColor = color.New(color.FgGreen, color.Bold)
)

// Run executes the whole pipeline: locate the source PDF and the
// mapping table, validate both, then write one output file per row.
// A missing mapping table is not an error: a template is created and
// the run ends so the operator can fill it out.
//
// Any row failure aborts the run; outputs written for earlier rows
// stay on disk.
func Run(opts Options) error {
	dir := opts.workDir()
	out := opts.out()

	settings, err := loadSettings(dir)
	if err != nil {
		return err
	}

	infoColor.Fprintln(out, "starting...")

	srcPath, err := findSourcePDF(dir)
	if err != nil {
		return err
	}

	mappingPath, found := resolveMappingPath(dir, settings.MappingFile)
	if !found {
		warnColor.Fprintf(out, "mapping file %q not found, creating a template\n", settings.MappingFile)
		if err := mapping.WriteTemplate(mappingPath); err != nil {
			return err
		}
		warnColor.Fprintln(out, "template created, fill it out and run again")
		return nil
	}

	rows, err := mapping.Load(mappingPath)
	if err != nil {
		return err
	}

	src, err := extract.Open(srcPath)
	if err != nil {
		return err
	}

	outDir := settings.OutputDir
	if outDir == "" {
		base := filepath.Base(srcPath)
		outDir = strings.TrimSuffix(base, filepath.Ext(base))
	}
	if !filepath.IsAbs(outDir) {
		outDir = filepath.Join(dir, outDir)
	}
	if _, err := os.Stat(outDir); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("cannot access output directory %q: %w", outDir, err)
		}
		if err := os.MkdirAll(outDir, 0755); err != nil {
			return err
		}
		infoColor.Fprintf(out, "folder %q created\n", filepath.Base(outDir))
	}

	// Both operator decisions happen before any page is copied.
	if blank := blankFieldRows(rows); len(blank) > 0 {
		question := fmt.Sprintf("%d row(s) have empty text fields (row %s), continue anyway?",
			len(blank), joinInts(blank))
		if !opts.confirm(question) {
			return ErrAborted
		}
	}

	overwriteAll := settings.Overwrite
	if !overwriteAll {
		if n := countCollisions(rows, outDir); n > 0 {
			question := fmt.Sprintf("%d file(s) already exist, overwrite them all?", n)
			overwriteAll = opts.confirm(question)
		}
	}

	bar := newProgressBar(out, len(rows))
	for i, row := range rows {
		if row.PDFStart < 1 || row.PDFStart > row.PDFEnd || row.PDFEnd > src.PageCount() {
			return &RangeError{
				Row:        i + 1,
				Products:   naming.Sanitize(row.Products),
				Start:      row.PDFStart,
				End:        row.PDFEnd,
				TotalPages: src.PageCount(),
			}
		}

		outPath := naming.Resolve(outDir, baseName(row), overwriteAll)
		if err := src.ExtractRange(row.PDFStart, row.PDFEnd, outPath); err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}

		bar.Describe(fmt.Sprintf("pages %d-%d", row.PDFStart, row.PDFEnd))
		_ = bar.Add(1)
	}

	successColor.Fprintln(out, "all pdfs were successfully extracted and renamed")
	return nil
}

func baseName(row mapping.Row) string {
	return naming.BaseName(row.Yearbook, row.Category, row.Year,
		row.YearbookStart, row.YearbookEnd, row.Products)
}

// findSourcePDF locates the single input PDF in dir. Zero or more
// than one candidate is fatal.
func findSourcePDF(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	var pdfs []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			pdfs = append(pdfs, entry.Name())
		}
	}

	switch len(pdfs) {
	case 0:
		return "", ErrNoSourcePDF
	case 1:
		return filepath.Join(dir, pdfs[0]), nil
	default:
		return "", ErrMultipleSourcePDFs
	}
}

// resolveMappingPath returns the mapping table to load. When the
// configured workbook is absent but a .csv with the same stem exists,
// the csv is used. The returned path is where the template goes when
// nothing is found.
func resolveMappingPath(dir, name string) (string, bool) {
	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, name)
	}
	if _, err := os.Stat(path); err == nil {
		return path, true
	}

	if ext := filepath.Ext(path); strings.EqualFold(ext, ".xlsx") {
		csvPath := strings.TrimSuffix(path, ext) + ".csv"
		if _, err := os.Stat(csvPath); err == nil {
			return csvPath, true
		}
	}
	return path, false
}

// blankFieldRows returns the 1-based numbers of rows whose required
// text fields sanitize to nothing and would leave gaps in the output
// name.
func blankFieldRows(rows []mapping.Row) []int {
	var blank []int
	for i, row := range rows {
		for _, field := range []string{row.Yearbook, row.Year, row.Category, row.Products} {
			if naming.Sanitize(field) == "" {
				blank = append(blank, i+1)
				break
			}
		}
	}
	return blank
}

func countCollisions(rows []mapping.Row, outDir string) int {
	n := 0
	for _, row := range rows {
		if _, err := os.Stat(filepath.Join(outDir, baseName(row)+".pdf")); err == nil {
			n++
		}
	}
	return n
}

func joinInts(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = fmt.Sprint(n)
	}
	return strings.Join(parts, ", ")
}

func newProgressBar(out io.Writer, total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetDescription("splitting"),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(out)
		}),
	)
}

// stdinConfirm asks on the terminal and re-asks until it gets a clear
// yes or no. EOF counts as no.
func stdinConfirm(out io.Writer, question string) bool {
	reader := bufio.NewReader(os.Stdin)
	for {
		warnColor.Fprintf(out, "%s (y/n): ", question)
		line, err := reader.ReadString('\n')
		answer := strings.ToLower(strings.TrimSpace(line))
		switch answer {
		case "y":
			return true
		case "n":
			return false
		}
		if err != nil {
			return false
		}
		warnColor.Fprintln(out, "please enter 'y' or 'n'")
	}
}
