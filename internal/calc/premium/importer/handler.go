package importer

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	arcflash "ArcStudio/internal/calc/arcflash"
	"github.com/xuri/excelize/v2"
)

type Handler struct{}

type ImportResult struct {
	Count   int               `json:"count"`
	Results []arcflash.Result `json:"results"`
}

// Equipment imports an equipment schedule from an .xlsx upload and runs
// the arc flash calculation on every row. Rows that fail to parse or
// validate are skipped, not fatal.
func (h *Handler) Equipment(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var results []arcflash.Result
	for i := 1; i < len(rows); i++ {
		input, err := parseEquipmentRow(rows[i])
		if err != nil {
			continue
		}
		res, err := arcflash.Calculate(input)
		if err != nil {
			continue
		}
		results = append(results, res)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ImportResult{Count: len(results), Results: results})
}

// parseEquipmentRow reads one schedule row. Expected columns:
// name, voltage, bolted_fault_current, working_distance, enclosure_type,
// electrode_gap, fault_clearing_time, grounding(optional).
func parseEquipmentRow(row []string) (arcflash.Input, error) {
	if len(row) < 7 {
		return arcflash.Input{}, fmt.Errorf("bad row")
	}
	voltage, err := toFloat(row[1])
	if err != nil {
		return arcflash.Input{}, err
	}
	ibf, err := toFloat(row[2])
	if err != nil {
		return arcflash.Input{}, err
	}
	distance, err := toFloat(row[3])
	if err != nil {
		return arcflash.Input{}, err
	}
	gap, err := toFloat(row[5])
	if err != nil {
		return arcflash.Input{}, err
	}
	clearing, err := toFloat(row[6])
	if err != nil {
		return arcflash.Input{}, err
	}
	grounding := arcflash.GroundingType("")
	if len(row) > 7 && row[7] != "" {
		grounding = arcflash.GroundingType(strings.ToLower(strings.TrimSpace(row[7])))
	}
	return arcflash.Input{
		Name:               strings.TrimSpace(row[0]),
		Voltage:            voltage,
		BoltedFaultCurrent: ibf,
		WorkingDistance:    distance,
		EnclosureType:      arcflash.EnclosureType(strings.ToUpper(strings.TrimSpace(row[4]))),
		ElectrodeGap:       gap,
		FaultClearingTime:  clearing,
		Grounding:          grounding,
	}, nil
}

func toFloat(s string) (float64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	return strconv.ParseFloat(s, 64)
}
