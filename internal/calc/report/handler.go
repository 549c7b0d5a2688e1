package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	arcflash "ArcStudio/internal/calc/arcflash"
	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Project   string         `json:"project"`
	Author    string         `json:"author"`
	Title     string         `json:"title"`
	Equipment arcflash.Input `json:"equipment"`
}

type Handler struct{}

// Generate runs the arc flash calculation and renders the result as a
// hazard report PDF, the kind posted next to the equipment label.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Arc Flash Hazard Report"
	}

	res, err := arcflash.Calculate(input.Equipment)
	if err != nil {
		arcflash.WriteError(w, err)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Method: IEEE 1584-2018 / NFPA 70E-2021")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, fmt.Sprintf("Equipment: %s", res.EquipmentName))
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("System voltage: %g V", input.Equipment.Voltage))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Bolted fault current: %g A", input.Equipment.BoltedFaultCurrent))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Working distance: %g in", input.Equipment.WorkingDistance))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Arcing current: %.0f A", res.ArcingCurrent))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Incident energy: %.2f cal/cm2 at %g in", res.IncidentEnergy, input.Equipment.WorkingDistance))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Arc flash boundary: %.1f in", res.ArcFlashBoundary))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("PPE Category %d", res.PPECategory))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, tr(arcflash.PPEDescription(res.PPECategory)), "", "L", false)

	if len(res.Warnings) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Warnings")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		for _, warning := range res.Warnings {
			pdf.MultiCell(0, 6, tr("- "+warning), "", "L", false)
		}
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"arc-flash-report.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
