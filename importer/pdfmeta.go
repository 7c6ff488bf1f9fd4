package importer

import (
	"strings"

	"github.com/ledongthuc/pdf"

	"shelf_backend/brackets"
)

// pdfTitleFallback pulls a title candidate out of a PDF's first page when
// the filename yielded nothing usable. Best effort: any failure returns an
// empty string and the caller falls back to the raw filename.
func pdfTitleFallback(path string) string {
	f, r, err := pdf.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	if r.NumPage() < 1 {
		return ""
	}
	page := r.Page(1)
	if page.V.IsNull() {
		return ""
	}
	text, err := page.GetPlainText(nil)
	if err != nil {
		return ""
	}

	// The first non-empty line is usually the title page heading.
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		return brackets.ProcessAndTrim(line)
	}
	return ""
}
