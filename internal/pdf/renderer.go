// Package pdf renders a project estimate as a fixed-layout A4 document:
// branded header band, metadata boxes, step breakdown table, total row,
// and a closing disclaimer.
package pdf

import (
	"fmt"
	"path/filepath"

	"github.com/go-pdf/fpdf"

	"github.com/rcastro/estimator/internal/estimate"
)

// Brand palette (RGB)
var (
	brandBlue     = [3]int{17, 64, 254}
	brandCharcoal = [3]int{26, 26, 26}
	brandGrey     = [3]int{140, 142, 148}
	lightGrey     = [3]int{245, 245, 245}
	white         = [3]int{255, 255, 255}
)

const disclaimer = "This estimate represents the projected time required to complete the tasks " +
	"outlined above. Actual hours may vary based on project complexity and unforeseen requirements."

// Render writes the estimate document for project to path and returns the
// absolute path of the generated file. Missing optional fields render with
// defaults; the total row is recomputed from the steps, never read from the
// stored total.
func Render(project estimate.Project, path string) (string, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(true, 15)

	doc.SetHeaderFunc(func() {
		// Full-width blue band with the document title
		doc.SetFillColor(brandBlue[0], brandBlue[1], brandBlue[2])
		doc.Rect(0, 0, 210, 40, "F")

		doc.SetTextColor(white[0], white[1], white[2])
		doc.SetFont("Arial", "B", 24)
		doc.CellFormat(0, 20, "PROJECT ESTIMATE", "", 1, "C", false, 0, "")

		doc.SetFont("Arial", "", 10)
		doc.SetTextColor(240, 240, 240)
		doc.CellFormat(0, 5, "Professional Time & Cost Analysis", "", 1, "C", false, 0, "")

		doc.SetTextColor(brandCharcoal[0], brandCharcoal[1], brandCharcoal[2])
		doc.Ln(15)
	})

	doc.SetFooterFunc(func() {
		doc.SetY(-15)
		doc.SetFont("Arial", "I", 8)
		doc.SetTextColor(brandGrey[0], brandGrey[1], brandGrey[2])
		doc.CellFormat(0, 10, fmt.Sprintf("Page %d", doc.PageNo()), "", 0, "C", false, 0, "")
	})

	doc.AddPage()

	name := project.Name
	if name == "" {
		name = "Untitled Project"
	}
	developer := project.Developer
	if developer == "" {
		developer = "N/A"
	}
	date := project.Date
	if date == "" {
		date = "N/A"
	}

	// Project title and divider
	doc.SetFont("Arial", "B", 18)
	doc.SetTextColor(brandBlue[0], brandBlue[1], brandBlue[2])
	doc.CellFormat(0, 10, name, "", 1, "L", false, 0, "")

	doc.SetDrawColor(brandBlue[0], brandBlue[1], brandBlue[2])
	doc.SetLineWidth(0.5)
	doc.Line(10, doc.GetY(), 200, doc.GetY())
	doc.Ln(8)

	// Metadata boxes
	y := doc.GetY()
	infoBox(doc, "Developer", developer, 10, y, 90)
	infoBox(doc, "Date", date, 105, y, 95)
	doc.Ln(20)

	if project.Architect != "" || project.Demand != "" {
		y = doc.GetY()
		architect := project.Architect
		if architect == "" {
			architect = "N/A"
		}
		demand := project.Demand
		if demand == "" {
			demand = "N/A"
		}
		infoBox(doc, "Architect", architect, 10, y, 90)
		infoBox(doc, "Demand", demand, 105, y, 95)
		doc.Ln(20)
	}

	// Purpose paragraph
	purpose := project.Purpose
	if purpose == "" {
		purpose = "No purpose specified"
	}
	doc.SetFont("Arial", "B", 14)
	doc.SetTextColor(brandBlue[0], brandBlue[1], brandBlue[2])
	doc.CellFormat(0, 10, "PURPOSE", "", 1, "L", false, 0, "")
	doc.SetFont("Arial", "", 10)
	doc.SetTextColor(brandCharcoal[0], brandCharcoal[1], brandCharcoal[2])
	doc.MultiCell(0, 5, purpose, "", "L", false)
	doc.Ln(6)

	// Step breakdown table
	doc.SetFont("Arial", "B", 14)
	doc.SetTextColor(brandBlue[0], brandBlue[1], brandBlue[2])
	doc.CellFormat(0, 10, "PROJECT BREAKDOWN", "", 1, "L", false, 0, "")
	doc.Ln(2)

	doc.SetFillColor(brandBlue[0], brandBlue[1], brandBlue[2])
	doc.SetTextColor(white[0], white[1], white[2])
	doc.SetFont("Arial", "B", 11)
	doc.CellFormat(150, 10, "Task Description", "1", 0, "L", true, 0, "")
	doc.CellFormat(40, 10, "Hours", "1", 1, "C", true, 0, "")

	doc.SetTextColor(brandCharcoal[0], brandCharcoal[1], brandCharcoal[2])
	doc.SetFont("Arial", "", 10)

	if len(project.Steps) == 0 {
		doc.SetFillColor(250, 250, 250)
		doc.CellFormat(190, 10, "No tasks recorded for this project.", "1", 1, "C", true, 0, "")
	} else {
		fill := false
		for _, step := range project.Steps {
			stepName := step.Name
			if stepName == "" {
				stepName = "Unnamed task"
			}
			if fill {
				doc.SetFillColor(lightGrey[0], lightGrey[1], lightGrey[2])
			} else {
				doc.SetFillColor(white[0], white[1], white[2])
			}
			doc.CellFormat(150, 8, stepName, "1", 0, "L", true, 0, "")
			doc.CellFormat(40, 8, estimate.FormatHours(step.Hours), "1", 1, "C", true, 0, "")
			fill = !fill
		}
	}

	// Total row, recomputed from the steps
	doc.Ln(5)
	doc.SetFillColor(brandBlue[0], brandBlue[1], brandBlue[2])
	doc.SetTextColor(white[0], white[1], white[2])
	doc.SetFont("Arial", "B", 13)
	doc.CellFormat(150, 12, "TOTAL ESTIMATED HOURS", "1", 0, "R", true, 0, "")
	doc.CellFormat(40, 12, estimate.FormatHours(project.ComputeTotal()), "1", 1, "C", true, 0, "")

	doc.Ln(10)
	doc.SetTextColor(brandGrey[0], brandGrey[1], brandGrey[2])
	doc.SetFont("Arial", "I", 9)
	doc.MultiCell(0, 5, disclaimer, "", "L", false)

	if err := doc.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("generate estimate pdf: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return path, nil
	}
	return abs, nil
}

// infoBox draws one bordered label/value box at the given position.
func infoBox(doc *fpdf.Fpdf, label, value string, x, y, width float64) {
	doc.SetFillColor(lightGrey[0], lightGrey[1], lightGrey[2])
	doc.Rect(x, y, width, 15, "F")

	doc.SetDrawColor(brandBlue[0], brandBlue[1], brandBlue[2])
	doc.SetLineWidth(0.5)
	doc.Rect(x, y, width, 15, "D")

	doc.SetXY(x+3, y+3)
	doc.SetFont("Arial", "B", 9)
	doc.SetTextColor(brandBlue[0], brandBlue[1], brandBlue[2])
	doc.CellFormat(0, 4, label, "", 1, "L", false, 0, "")

	doc.SetXY(x+3, y+8)
	doc.SetFont("Arial", "", 11)
	doc.SetTextColor(brandCharcoal[0], brandCharcoal[1], brandCharcoal[2])
	doc.CellFormat(0, 4, value, "", 1, "L", false, 0, "")

	doc.SetLineWidth(0.2)
}
