package docgen

import (
	"bytes"
	"os"

	"github.com/meridianbio/labdoc/errors"
)

// CheckResult reports whether the on-disk reference matches a fresh render.
type CheckResult struct {
	// UpToDate is true when the existing file is byte-identical to a
	// fresh render of the current registry.
	UpToDate bool

	// Path is the reference file that was checked.
	Path string

	// Reason explains a stale result ("missing", "content differs").
	Reason string
}

// Check re-renders the reference and compares it byte-for-byte with the
// existing output file. Used in CI to catch documentation drift after the
// catalog changes.
func (g *Generator) Check() (*CheckResult, error) {
	fresh, err := g.Render()
	if err != nil {
		return nil, errors.Wrap(err, "failed to render for check")
	}

	path := g.OutputPath()
	existing, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &CheckResult{Path: path, Reason: "missing"}, nil
		}
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	if !bytes.Equal(existing, fresh) {
		return &CheckResult{Path: path, Reason: "content differs"}, nil
	}

	return &CheckResult{UpToDate: true, Path: path}, nil
}
