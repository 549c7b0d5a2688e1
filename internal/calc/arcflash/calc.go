package arcflash

import (
	"fmt"
	"math"
)

// IEEE 1584-2018 constants. Exported so the detailed endpoint can show
// them instead of carrying its own copies.
const (
	KEnclosed = -0.153 // box-type electrode configurations
	KOpenAir  = -0.097

	// Exponent on arcing current in the incident-energy equation.
	// Simplified to 1.0 for every configuration; the full standard
	// varies it with enclosure geometry.
	EnergyExponent = 1.0

	EnergyCoefficient = 4.184 // cal/cm2 conversion in Equation 6
	BoundaryThreshold = 1.2   // cal/cm2, onset of second-degree burn
)

// EnclosureFactors maps enclosure type to the size correction factor Cf.
var EnclosureFactors = map[EnclosureType]float64{
	VCB:  1.0,
	VCBB: 0.973,
	HCB:  1.056,
	VOA:  1.0,
	HOA:  1.0,
}

// KConstant returns the K constant for the arcing-current equation and
// the classification it belongs to.
func KConstant(enclosure EnclosureType) (k float64, class string) {
	switch enclosure {
	case VCB, VCBB, HCB:
		return KEnclosed, "Enclosed"
	default:
		return KOpenAir, "Open Air"
	}
}

// Calculate runs the complete arc flash hazard calculation: arcing
// current, incident energy at the working distance, NFPA 70E PPE
// category, arc flash boundary and warnings. Rounding happens only
// here, at the result boundary; the PPE category is classified against
// the unrounded incident energy.
func Calculate(in Input) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}

	ia := ArcingCurrent(in)
	energy := IncidentEnergy(in, ia)
	boundary := ArcFlashBoundary(in, ia)
	if !finite(ia) || !finite(energy) || !finite(boundary) {
		return Result{}, fmt.Errorf("non-finite result for equipment %q", in.Name)
	}

	warnings := []string{}
	if in.FaultClearingTime > 0.5 {
		warnings = append(warnings, "Clearing time > 0.5s may indicate inadequate protection")
	}
	if energy > 40 {
		warnings = append(warnings, "Incident energy > 40 cal/cm² - consider additional protection")
	}

	return Result{
		EquipmentName:    in.Name,
		IncidentEnergy:   roundTo(energy, 2),
		ArcFlashBoundary: roundTo(boundary, 1),
		PPECategory:      PPECategory(energy),
		ArcingCurrent:    math.Round(ia),
		ArcDuration:      in.FaultClearingTime,
		CorrectionFactor: EnclosureFactors[in.EnclosureType],
		Warnings:         warnings,
	}, nil
}

// ArcingCurrent computes Ia per IEEE 1584-2018 Equation 4 (208V-15kV):
//
//	lg(Ia) = K + 0.662*lg(Ibf) + 0.0966*V + 0.000526*G + 0.5588*V*lg(Ibf) - 0.00304*G*lg(Ibf)
//
// with V in kV and G in mm.
func ArcingCurrent(in Input) float64 {
	voltageKV := in.Voltage / 1000.0
	lgIbf := math.Log10(in.BoltedFaultCurrent)
	k, _ := KConstant(in.EnclosureType)

	lgIa := k +
		0.662*lgIbf +
		0.0966*voltageKV +
		0.000526*in.ElectrodeGap +
		0.5588*voltageKV*lgIbf -
		0.00304*in.ElectrodeGap*lgIbf

	return math.Pow(10, lgIa)
}

// IncidentEnergy computes E at the working distance per Equation 6:
//
//	E = (4.184 * Cf * Ia^n * t) / (4π * D²)
func IncidentEnergy(in Input, arcingCurrent float64) float64 {
	cf := EnclosureFactors[in.EnclosureType]
	d := in.WorkingDistance
	return (EnergyCoefficient * cf * math.Pow(arcingCurrent, EnergyExponent) * in.FaultClearingTime) /
		(4 * math.Pi * d * d)
}

// ArcFlashBoundary solves the incident-energy equation for the distance
// where E falls to 1.2 cal/cm².
func ArcFlashBoundary(in Input, arcingCurrent float64) float64 {
	cf := EnclosureFactors[in.EnclosureType]
	numerator := EnergyCoefficient * cf * math.Pow(arcingCurrent, EnergyExponent) * in.FaultClearingTime
	denominator := 4 * math.Pi * BoundaryThreshold
	return math.Sqrt(numerator / denominator)
}

// PPECategory assigns the NFPA 70E Table 130.5(G) category. Bands are
// half-open on the lower side: E=1.2 is already category 1.
func PPECategory(incidentEnergy float64) int {
	switch {
	case incidentEnergy < 1.2:
		return 0
	case incidentEnergy < 4:
		return 1
	case incidentEnergy < 8:
		return 2
	case incidentEnergy < 25:
		return 3
	default:
		return 4
	}
}

var ppeDescriptions = map[int]string{
	0: "Non-melting or untreated natural fiber shirt and pants",
	1: "FR shirt and pants (4 cal/cm²)",
	2: "FR shirt and pants + FR coverall (8 cal/cm²)",
	3: "FR shirt and pants + FR coverall + FR jacket (25 cal/cm²)",
	4: "FR shirt and pants + multilayer flash suit (40+ cal/cm²)",
}

// PPEDescription describes the protective equipment tier for a
// category, with a defensive fallback for out-of-range values.
func PPEDescription(category int) string {
	if desc, ok := ppeDescriptions[category]; ok {
		return desc
	}
	return "Unknown category"
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func roundTo(v float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(v*pow) / pow
}
