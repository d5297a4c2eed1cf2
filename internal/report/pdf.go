package report

import (
	"fmt"
	"io"

	"github.com/phpdave11/gofpdf"
)

const (
	pdfLine     = 6.0
	pdfColLabel = 60.0
	pdfColValue = 50.0
)

// WritePDF writes a calculation sheet of the bundle.
func WritePDF(w io.Writer, b Bundle, title string) error {
	if title == "" {
		title = "RC Beam Design Report (ACI 318-19)"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, pdfLine, "Section: "+b.Section.String())
	pdf.Ln(pdfLine)
	pdf.Cell(0, pdfLine, fmt.Sprintf("Loads: Mu+ = %g kN-m, Mu- = %g kN-m, Vu = %g kN, Tu = %g kN-m (Vu = %g kN)",
		b.Inputs.MuPos, b.Inputs.MuNeg, b.Inputs.Vu, b.Inputs.Tu, b.Inputs.VuTorsion))
	pdf.Ln(pdfLine)
	pdf.Cell(0, pdfLine, fmt.Sprintf("Detailing: %d-leg %s stirrups, %d torsion bars",
		b.Inputs.NLegs, b.Inputs.StirrupBar, b.Inputs.NBarsTorsion))
	pdf.Ln(pdfLine * 2)

	heading(pdf, "Governing criteria")
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(30, pdfLine, "Mechanism", "1", 0, "L", true, 0, "")
	pdf.CellFormat(65, pdfLine, "ACI criterion", "1", 0, "L", true, 0, "")
	pdf.CellFormat(95, pdfLine, "Status", "1", 1, "L", true, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	for _, c := range b.GoverningCriteria {
		pdf.CellFormat(30, pdfLine, c.Mechanism, "1", 0, "L", false, 0, "")
		pdf.CellFormat(65, pdfLine, c.ACICriterion, "1", 0, "L", false, 0, "")
		pdf.CellFormat(95, pdfLine, truncate(c.Status, 70), "1", 1, "L", false, 0, "")
	}
	pdf.Ln(pdfLine)

	heading(pdf, "Flexure")
	for _, s := range b.Summaries {
		row(pdf, s.Face, fmt.Sprintf("As = %.2f cm2 (min %.2f)", s.AsDesign, s.AsMin),
			fmt.Sprintf("phi = %.3f, eps_t = %.5f, %s", s.Phi, s.EpsilonT, s.GoverningCriterion))
	}
	pdf.Ln(pdfLine / 2)

	heading(pdf, "Shear")
	sh := b.Shear
	row(pdf, "Concrete", fmt.Sprintf("Vc = %.2f kN", sh.Vc), fmt.Sprintf("phi Vc = %.2f kN", sh.PhiVc))
	spacing := "-"
	if sh.SReq != nil {
		spacing = fmt.Sprintf("s = %.1f cm", *sh.SReq)
	}
	row(pdf, "Stirrups", fmt.Sprintf("Vs = %.2f kN", sh.VsReq), spacing)
	pdf.Ln(pdfLine / 2)

	heading(pdf, "Torsion")
	to, d := b.Torsion, b.Distribution
	row(pdf, "Threshold", fmt.Sprintf("T_th = %.2f kN-m", to.Tth), fmt.Sprintf("phi T_th = %.2f kN-m", to.PhiTth))
	row(pdf, "Reinforcement", fmt.Sprintf("At/s = %.3f cm2/m", to.AtSReqCm2PerM), fmt.Sprintf("Al = %.2f cm2", to.AlReq))
	row(pdf, "Distribution", fmt.Sprintf("%d bot / %d top", d.NBottom, d.NTop), fmt.Sprintf("%d per side, %.2f cm2 per bar", d.NSideEach, d.AlPerBar))
	pdf.Ln(pdfLine)

	heading(pdf, "Warnings")
	pdf.SetFont("Helvetica", "", 9)
	if len(b.Warnings) == 0 {
		pdf.Cell(0, pdfLine, "None")
		pdf.Ln(pdfLine)
	}
	for _, msg := range b.Warnings {
		pdf.MultiCell(0, pdfLine, "- "+msg, "", "L", false)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func heading(pdf *gofpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, pdfLine+2, text)
	pdf.Ln(pdfLine + 2)
}

func row(pdf *gofpdf.Fpdf, label, value, detail string) {
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(pdfColLabel, pdfLine, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(pdfColValue, pdfLine, value, "", 0, "L", false, 0, "")
	pdf.CellFormat(0, pdfLine, detail, "", 1, "L", false, 0, "")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
