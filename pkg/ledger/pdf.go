package ledger

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// ExportPDF writes entries as a numbered list to a PDF at path.
func ExportPDF(entries []Entry, title, path string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(title, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(title), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	if len(entries) == 0 {
		pdf.MultiCell(0, 6, NoEntries, "", "L", false)
	}
	for i, e := range entries {
		pdf.MultiCell(0, 6, tr(FormatLine(i+1, e)), "", "L", false)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to write pdf %s: %w", path, err)
	}
	return nil
}
