// Package splitpdf splits a single source PDF into per-row output
// files driven by a mapping spreadsheet.
package splitpdf

import (
	"io"
	"os"
)

// Options configures a run.
type Options struct {
	// Dir is the working directory holding the source PDF and the
	// mapping table. Empty means the current directory.
	Dir string
	// Confirm answers yes/no questions put to the operator. Nil means
	// an interactive stdin prompt.
	Confirm func(question string) bool
	// AssumeYes answers every prompt with yes without asking.
	AssumeYes bool
	// Out receives progress and status messages. Nil means stdout.
	Out io.Writer
}

// DefaultOptions returns options for an interactive run in the
// current directory.
func DefaultOptions() Options {
	return Options{Dir: "."}
}

func (o Options) workDir() string {
	if o.Dir == "" {
		return "."
	}
	return o.Dir
}

func (o Options) out() io.Writer {
	if o.Out == nil {
		return os.Stdout
	}
	return o.Out
}

func (o Options) confirm(question string) bool {
	if o.AssumeYes {
		return true
	}
	if o.Confirm != nil {
		return o.Confirm(question)
	}
	return stdinConfirm(o.out(), question)
}
