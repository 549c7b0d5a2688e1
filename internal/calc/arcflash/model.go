package arcflash

import "fmt"

type EnclosureType string

const (
	VCB  EnclosureType = "VCB"  // vertical electrodes in a box
	VCBB EnclosureType = "VCBB" // vertical electrodes in a box, barrier
	HCB  EnclosureType = "HCB"  // horizontal electrodes in a box
	VOA  EnclosureType = "VOA"  // vertical electrodes, open air
	HOA  EnclosureType = "HOA"  // horizontal electrodes, open air
)

type GroundingType string

const (
	SolidlyGrounded   GroundingType = "solidly_grounded"
	Ungrounded        GroundingType = "ungrounded"
	ImpedanceGrounded GroundingType = "impedance_grounded"
)

type Input struct {
	Name               string        `json:"name"`
	Voltage            float64       `json:"voltage"`              // V
	BoltedFaultCurrent float64       `json:"bolted_fault_current"` // A
	WorkingDistance    float64       `json:"working_distance"`     // inches
	EnclosureType      EnclosureType `json:"enclosure_type"`
	ElectrodeGap       float64       `json:"electrode_gap"`       // mm
	FaultClearingTime  float64       `json:"fault_clearing_time"` // s
	Grounding          GroundingType `json:"grounding"`
}

type Result struct {
	EquipmentName    string   `json:"equipment_name"`
	IncidentEnergy   float64  `json:"incident_energy"`    // cal/cm2
	ArcFlashBoundary float64  `json:"arc_flash_boundary"` // inches
	PPECategory      int      `json:"ppe_category"`
	ArcingCurrent    float64  `json:"arcing_current"` // A
	ArcDuration      float64  `json:"arc_duration"`   // s
	CorrectionFactor float64  `json:"correction_factor"`
	Warnings         []string `json:"warnings"`
}

// ValidationError reports the first input field that is outside the
// supported range. Handlers treat it as a client fault.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks every field against the IEEE 1584-2018 model scope.
// The 208V floor is a domain rule of the standard, reported separately
// from the plain range checks.
func (in *Input) Validate() error {
	if len(in.Name) < 1 || len(in.Name) > 100 {
		return &ValidationError{Field: "name", Message: "must be 1-100 characters"}
	}
	if in.Voltage < 208 {
		return &ValidationError{Field: "voltage", Message: "must be at least 208V for IEEE 1584-2018"}
	}
	if in.Voltage > 15000 {
		return &ValidationError{Field: "voltage", Message: "must not exceed 15000V"}
	}
	if in.BoltedFaultCurrent <= 0 || in.BoltedFaultCurrent > 106000 {
		return &ValidationError{Field: "bolted_fault_current", Message: "must be in (0, 106000] A"}
	}
	if in.WorkingDistance <= 0 || in.WorkingDistance > 120 {
		return &ValidationError{Field: "working_distance", Message: "must be in (0, 120] inches"}
	}
	switch in.EnclosureType {
	case VCB, VCBB, HCB, VOA, HOA:
	default:
		return &ValidationError{Field: "enclosure_type", Message: "must be one of VCB, VCBB, HCB, VOA, HOA"}
	}
	if in.ElectrodeGap <= 0 || in.ElectrodeGap > 200 {
		return &ValidationError{Field: "electrode_gap", Message: "must be in (0, 200] mm"}
	}
	if in.FaultClearingTime <= 0 || in.FaultClearingTime > 2.0 {
		return &ValidationError{Field: "fault_clearing_time", Message: "must be in (0, 2.0] seconds"}
	}
	switch in.Grounding {
	case "":
		in.Grounding = SolidlyGrounded
	case SolidlyGrounded, Ungrounded, ImpedanceGrounded:
	default:
		return &ValidationError{Field: "grounding", Message: "must be one of solidly_grounded, ungrounded, impedance_grounded"}
	}
	return nil
}
