package manifest

import (
	"os"
	"strings"

	"github.com/teranos/cgen/errors"
)

// CheckResult holds the result of an up-to-date check.
type CheckResult struct {
	UpToDate bool
	Reason   string
}

// Check regenerates the header for manifestPath and compares it with the
// file at outPath. The generated banner line is ignored, since it records
// the manifest path as given on the command line.
func Check(manifestPath, outPath string) (*CheckResult, error) {
	m, err := Load(manifestPath)
	if err != nil {
		return nil, err
	}
	rendered, err := Render(m, manifestPath)
	if err != nil {
		return nil, err
	}

	existing, err := os.ReadFile(outPath)
	if os.IsNotExist(err) {
		return &CheckResult{UpToDate: false, Reason: "output file does not exist"}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", outPath)
	}

	if stripBanner(rendered) != stripBanner(string(existing)) {
		return &CheckResult{UpToDate: false, Reason: "output differs from rendered manifest"}, nil
	}
	return &CheckResult{UpToDate: true}, nil
}

// stripBanner drops generated-metadata lines before comparison.
func stripBanner(content string) string {
	lines := strings.Split(content, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(line, "/* Code generated by cgen") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
