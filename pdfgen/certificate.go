package pdfgen

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// Fields carries everything the certificate layout needs
type Fields struct {
	HolderName   string
	CourseTitle  string
	Issuer       string
	SerialNumber string
	IssueDate    string // YYYY-MM-DD
}

// Renderer produces fixed-layout certificate PDFs
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render draws the certificate and returns the raw PDF bytes
func (r *Renderer) Render(fields Fields) ([]byte, error) {
	pdf := gofpdf.New("L", "pt", "Letter", "")
	pdf.AddPage()

	pdf.SetY(120)
	pdf.SetFont("Helvetica", "B", 24)
	pdf.CellFormat(0, 30, "Certificate of Completion", "", 1, "C", false, 0, "")

	pdf.Ln(20)
	pdf.SetFont("Helvetica", "", 14)
	pdf.CellFormat(0, 20, "This certifies that", "", 1, "C", false, 0, "")

	pdf.Ln(10)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 24, fields.HolderName, "", 1, "C", false, 0, "")

	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 14)
	pdf.CellFormat(0, 20, "has successfully completed the course", "", 1, "C", false, 0, "")

	pdf.Ln(10)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 24, fields.CourseTitle, "", 1, "C", false, 0, "")

	pdf.Ln(20)
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 16, fmt.Sprintf("Issued by %s on %s", fields.Issuer, fields.IssueDate), "", 1, "C", false, 0, "")

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 14, fmt.Sprintf("Serial: %s", fields.SerialNumber), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("certificate rendering failed: %w", err)
	}
	return buf.Bytes(), nil
}
