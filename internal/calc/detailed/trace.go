// Package detailed rebuilds every intermediate quantity of a completed
// arc flash calculation so the caller can verify the result against
// hand calculations. It composes the arcflash engine and its exported
// constants; it never computes anything a different way.
package detailed

import (
	"fmt"
	"math"

	arcflash "ArcStudio/internal/calc/arcflash"
)

type Detailed struct {
	Result           arcflash.Result `json:"result"`
	CalculationSteps Trace           `json:"calculation_steps"`
	IEEEReferences   References      `json:"ieee_references"`
}

type Trace struct {
	InputValidation  ValidationStep `json:"step_1_input_validation"`
	ArcingCurrent    ArcingStep     `json:"step_2_arcing_current"`
	IncidentEnergy   EnergyStep     `json:"step_3_incident_energy"`
	PPECategory      PPEStep        `json:"step_4_ppe_category"`
	ArcFlashBoundary BoundaryStep   `json:"step_5_arc_flash_boundary"`
}

type ValidationStep struct {
	Description  string `json:"description"`
	VoltageRange string `json:"voltage_range"`
	InputVoltage string `json:"input_voltage"`
	Status       string `json:"status"`
}

type ArcingStep struct {
	Description   string       `json:"description"`
	Equation      string       `json:"equation"`
	Inputs        ArcingInputs `json:"inputs"`
	Intermediate  ArcingTerms  `json:"intermediate"`
	Result        ArcingResult `json:"result"`
	IEEEReference string       `json:"ieee_reference"`
}

type ArcingInputs struct {
	K            float64 `json:"K"`
	KDescription string  `json:"K_description"`
	Ibf          float64 `json:"Ibf"`
	VkV          float64 `json:"V_kV"`
	Gmm          float64 `json:"G_mm"`
}

// ArcingTerms holds each additive term of the lg(Ia) equation, rounded
// to 4 decimals for display.
type ArcingTerms struct {
	LgIbf float64 `json:"lg_Ibf"`
	Term1 float64 `json:"term_1"`
	Term2 float64 `json:"term_2"`
	Term3 float64 `json:"term_3"`
	Term4 float64 `json:"term_4"`
	Term5 float64 `json:"term_5"`
	Term6 float64 `json:"term_6"`
}

type ArcingResult struct {
	LgIa  float64 `json:"lg_Ia"`
	Ia    float64 `json:"Ia"`
	Units string  `json:"units"`
}

type EnergyStep struct {
	Description   string       `json:"description"`
	Equation      string       `json:"equation"`
	Inputs        EnergyInputs `json:"inputs"`
	Result        EnergyResult `json:"result"`
	IEEEReference string       `json:"ieee_reference"`
}

type EnergyInputs struct {
	Cf float64 `json:"Cf"`
	Ia float64 `json:"Ia"`
	T  float64 `json:"t"`
	D  float64 `json:"D"`
	N  float64 `json:"n"`
}

type EnergyResult struct {
	E     float64 `json:"E"`
	Units string  `json:"units"`
}

type PPEStep struct {
	Description    string            `json:"description"`
	Thresholds     map[string]string `json:"thresholds"`
	IncidentEnergy float64           `json:"incident_energy"`
	Result         PPEResult         `json:"result"`
	NFPAReference  string            `json:"nfpa_reference"`
}

type PPEResult struct {
	Category    int    `json:"category"`
	Description string `json:"description"`
}

type BoundaryStep struct {
	Description   string         `json:"description"`
	Equation      string         `json:"equation"`
	Threshold     string         `json:"threshold"`
	Result        BoundaryResult `json:"result"`
	IEEEReference string         `json:"ieee_reference"`
}

type BoundaryResult struct {
	AFB                         float64 `json:"AFB"`
	Units                       string  `json:"units"`
	ComparisonToWorkingDistance string  `json:"comparison_to_working_distance"`
}

type References struct {
	PrimaryStandard string   `json:"primary_standard"`
	PPEStandard     string   `json:"ppe_standard"`
	SectionsUsed    []string `json:"sections_used"`
	DownloadLink    string   `json:"download_link"`
}

// StandardReferences lists the sections of IEEE 1584-2018 and NFPA 70E
// the engine implements. Static, input-independent.
func StandardReferences() References {
	return References{
		PrimaryStandard: "IEEE Std 1584-2018: IEEE Guide for Performing Arc-Flash Hazard Calculations",
		PPEStandard:     "NFPA 70E-2021: Standard for Electrical Safety in the Workplace",
		SectionsUsed: []string{
			"Section 4.3: Arcing Current Calculation",
			"Section 4.4: Incident Energy Calculation",
			"Section 4.5: Arc Flash Boundary",
		},
		DownloadLink: "https://standards.ieee.org/standard/1584-2018.html",
	}
}

var ppeThresholds = map[string]string{
	"Category_0": "< 1.2 cal/cm²",
	"Category_1": "1.2 - 4 cal/cm²",
	"Category_2": "4 - 8 cal/cm²",
	"Category_3": "8 - 25 cal/cm²",
	"Category_4": "> 25 cal/cm²",
}

// BuildTrace reconstructs the step-by-step derivation behind res. All
// values come from the engine's constants and the same equations that
// produced res, so the trace always agrees with the primary result.
func BuildTrace(in arcflash.Input, res arcflash.Result) Trace {
	voltageKV := in.Voltage / 1000.0
	lgIbf := math.Log10(in.BoltedFaultCurrent)
	k, class := arcflash.KConstant(in.EnclosureType)
	cf := arcflash.EnclosureFactors[in.EnclosureType]

	status := "✓ Valid"
	if in.Voltage < 208 || in.Voltage > 15000 {
		status = "✗ Out of range"
	}

	comparison := "Exceeds working distance - hazard present"
	if res.ArcFlashBoundary < in.WorkingDistance {
		comparison = "Within safe zone"
	}

	return Trace{
		InputValidation: ValidationStep{
			Description:  "Validate inputs are within IEEE 1584-2018 scope",
			VoltageRange: "208V - 15,000V",
			InputVoltage: fmt.Sprintf("%gV", in.Voltage),
			Status:       status,
		},
		ArcingCurrent: ArcingStep{
			Description: "Calculate arcing current using IEEE 1584-2018 Equation 4",
			Equation:    "lg(Ia) = K + 0.662*lg(Ibf) + 0.0966*V + 0.000526*G + 0.5588*V*lg(Ibf) - 0.00304*G*lg(Ibf)",
			Inputs: ArcingInputs{
				K:            k,
				KDescription: fmt.Sprintf("Constant for %s equipment", class),
				Ibf:          in.BoltedFaultCurrent,
				VkV:          voltageKV,
				Gmm:          in.ElectrodeGap,
			},
			Intermediate: ArcingTerms{
				LgIbf: round4(lgIbf),
				Term1: round4(k),
				Term2: round4(0.662 * lgIbf),
				Term3: round4(0.0966 * voltageKV),
				Term4: round4(0.000526 * in.ElectrodeGap),
				Term5: round4(0.5588 * voltageKV * lgIbf),
				Term6: round4(-0.00304 * in.ElectrodeGap * lgIbf),
			},
			Result: ArcingResult{
				LgIa:  round4(math.Log10(res.ArcingCurrent)),
				Ia:    res.ArcingCurrent,
				Units: "Amperes",
			},
			IEEEReference: "IEEE 1584-2018, Section 4.3, Equation 4",
		},
		IncidentEnergy: EnergyStep{
			Description: "Calculate incident energy at working distance",
			Equation:    "E = (4.184 * Cf * Ia^n * t) / (4π * D²)",
			Inputs: EnergyInputs{
				Cf: cf,
				Ia: res.ArcingCurrent,
				T:  in.FaultClearingTime,
				D:  in.WorkingDistance,
				N:  arcflash.EnergyExponent,
			},
			Result: EnergyResult{
				E:     res.IncidentEnergy,
				Units: "cal/cm²",
			},
			IEEEReference: "IEEE 1584-2018, Section 4.4, Equation 6",
		},
		PPECategory: PPEStep{
			Description:    "Determine PPE category per NFPA 70E Table 130.5(G)",
			Thresholds:     ppeThresholds,
			IncidentEnergy: res.IncidentEnergy,
			Result: PPEResult{
				Category:    res.PPECategory,
				Description: arcflash.PPEDescription(res.PPECategory),
			},
			NFPAReference: "NFPA 70E-2021, Table 130.5(G)",
		},
		ArcFlashBoundary: BoundaryStep{
			Description: "Calculate distance to 1.2 cal/cm² (AFB)",
			Equation:    "AFB = sqrt((4.184 * Cf * Ia^n * t) / (4π * E_threshold))",
			Threshold:   "1.2 cal/cm² (second-degree burn onset)",
			Result: BoundaryResult{
				AFB:                         res.ArcFlashBoundary,
				Units:                       "inches",
				ComparisonToWorkingDistance: comparison,
			},
			IEEEReference: "IEEE 1584-2018, Section 4.5",
		},
	}
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
