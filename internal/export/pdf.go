package export

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"

	"github.com/packonce/packonce/internal/checklist"
)

// RenderPDF renders a pack's sections as a paginated PDF checklist.
// Long checklists flow onto additional pages via gofpdf's auto page break.
func RenderPDF(packName string, sections []checklist.Section) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	// Core fonts are cp1252; translate so note separators survive.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, tr(packName+" Checklist"))
	pdf.Ln(14)

	for _, sec := range sections {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, tr(sec.Title))
		pdf.Ln(9)

		pdf.SetFont("Helvetica", "", 11)
		for _, item := range sec.Items {
			line := itemLine(item.Packed, item.Name, item.Quantity, item.Note)
			pdf.MultiCell(0, 6, tr(line), "", "L", false)
		}
		pdf.Ln(4)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering pdf: %w", err)
	}
	return buf.Bytes(), nil
}
