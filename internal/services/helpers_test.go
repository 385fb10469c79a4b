package services

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/jung-kurt/gofpdf"
)

// writeFixturePDF generates a simple labeled PDF for use as test input.
func writeFixturePDF(t *testing.T, path string, pages int) {
	t.Helper()
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 12)
	for i := 1; i <= pages; i++ {
		pdf.AddPage()
		pdf.Text(20, 40, fmt.Sprintf("%s page %d", filepath.Base(path), i))
	}
	if err := pdf.OutputFileAndClose(path); err != nil {
		t.Fatalf("writing fixture %s: %v", path, err)
	}
}
