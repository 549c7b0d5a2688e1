// Package info serves the static endpoints: API root, health and a
// description of the implemented standards. No input, no state.
package info

import (
	"encoding/json"
	"net/http"
)

const Version = "0.1.0"

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
}

func Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"status":   "healthy",
		"message":  "Arc Flash Studio API",
		"version":  Version,
		"standard": "IEEE 1584-2018",
		"endpoints": map[string]string{
			"calculate":          "/api/v1/calculate",
			"calculate_detailed": "/api/v1/calculate/detailed",
			"batch_calculate":    "/api/v1/batch/calculate",
			"batch_import":       "/api/v1/batch/import",
			"report_pdf":         "/api/v1/report/pdf",
			"standards_info":     "/api/v1/standards-info",
			"health":             "/api/v1/health",
		},
	})
}

func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"status":     "healthy",
		"calculator": "ready",
		"standard":   "IEEE 1584-2018",
		"version":    Version,
		"components": map[string]string{
			"arc_flash_calculator": "operational",
			"input_validation":     "operational",
			"ppe_determination":    "operational",
		},
	})
}

func StandardsInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"ieee_1584_2018": map[string]any{
			"title": "IEEE Guide for Performing Arc-Flash Hazard Calculations",
			"year":  2018,
			"scope": "Provides methods for calculating arc flash hazards in systems from 208V to 15kV",
			"key_equations": map[string]string{
				"arcing_current":     "Equation 4",
				"incident_energy":    "Equation 6",
				"arc_flash_boundary": "Derived from incident energy equation",
			},
			"limitations": []string{
				"Valid for three-phase AC systems only",
				"Voltage range: 208V - 15,000V",
				"Requires bolted fault current < 106 kA",
			},
		},
		"nfpa_70e": map[string]any{
			"title":          "Standard for Electrical Safety in the Workplace",
			"year":           2021,
			"scope":          "Provides requirements for electrical safety-related work practices",
			"ppe_categories": "Table 130.5(G) - PPE Categories based on incident energy",
			"categories": map[string]string{
				"0": "< 1.2 cal/cm²",
				"1": "1.2 - 4 cal/cm²",
				"2": "4 - 8 cal/cm²",
				"3": "8 - 25 cal/cm²",
				"4": "> 25 cal/cm²",
			},
		},
	})
}
