package pdfops

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// Footer placement on an A4 page, in millimeters. The caption sits left of
// center, 4mm above the bottom edge (gofpdf measures y from the top).
const (
	footerX    = 85.0
	footerY    = 293.0
	footerFont = "Times"
	footerSize = 11.0
)

// WriteBlankPage writes a single empty A4 page to path. The merger reuses
// this one file at every separator insertion point.
func WriteBlankPage(path string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	return pdf.OutputFileAndClose(path)
}

// WriteFooterOverlay writes an n-page A4 document to path whose pages carry
// nothing but the footer caption "text page i of n" in a muted grey.
func WriteFooterOverlay(path string, n int, text string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTextColor(128, 128, 128)
	for i := 1; i <= n; i++ {
		pdf.AddPage()
		pdf.SetFont(footerFont, "", footerSize)
		pdf.Text(footerX, footerY, fmt.Sprintf("%s page %d of %d", text, i, n))
	}
	return pdf.OutputFileAndClose(path)
}
