package arcflash

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleInput() Input {
	return Input{
		Name:               "Test Switchboard",
		Voltage:            480,
		BoltedFaultCurrent: 40000,
		WorkingDistance:    24,
		EnclosureType:      VCB,
		ElectrodeGap:       32,
		FaultClearingTime:  0.05,
		Grounding:          SolidlyGrounded,
	}
}

func TestArcingCurrentBelowBoltedFault(t *testing.T) {
	in := sampleInput()
	ia := ArcingCurrent(in)

	assert.Greater(t, ia, 0.0)
	assert.Less(t, ia, in.BoltedFaultCurrent)
	// 480V systems typically arc at 10-30% of the bolted fault current.
	assert.Greater(t, ia, in.BoltedFaultCurrent*0.1)
	assert.Less(t, ia, in.BoltedFaultCurrent*0.3)
}

func TestCalculateProducesPositiveQuantities(t *testing.T) {
	res, err := Calculate(sampleInput())
	require.NoError(t, err)

	assert.Greater(t, res.IncidentEnergy, 0.0)
	assert.Less(t, res.IncidentEnergy, 50.0)
	assert.Greater(t, res.ArcFlashBoundary, 0.0)
	assert.GreaterOrEqual(t, res.PPECategory, 0)
	assert.LessOrEqual(t, res.PPECategory, 4)
}

func TestCalculateEchoesInput(t *testing.T) {
	in := sampleInput()
	res, err := Calculate(in)
	require.NoError(t, err)

	assert.Equal(t, in.Name, res.EquipmentName)
	assert.Equal(t, in.FaultClearingTime, res.ArcDuration)
	assert.Equal(t, 1.0, res.CorrectionFactor)
	assert.Empty(t, res.Warnings)
}

func TestPPECategoryBands(t *testing.T) {
	cases := []struct {
		energy float64
		want   int
	}{
		{0.5, 0},
		{1.19, 0},
		{1.2, 1}, // lower bound belongs to the higher band
		{3.99, 1},
		{4.0, 2},
		{7.99, 2},
		{8.0, 3},
		{24.9, 3},
		{25.0, 4},
		{120.0, 4},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, PPECategory(c.energy), "energy %v", c.energy)
	}
}

func TestPPEDescription(t *testing.T) {
	assert.Contains(t, PPEDescription(0), "natural fiber")
	assert.Contains(t, PPEDescription(4), "flash suit")
	assert.Equal(t, "Unknown category", PPEDescription(-1))
	assert.Equal(t, "Unknown category", PPEDescription(7))
}

func TestVoltageFloorRejected(t *testing.T) {
	in := sampleInput()
	in.Voltage = 120

	_, err := Calculate(in)
	require.Error(t, err)

	verr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "voltage", verr.Field)
	assert.Contains(t, verr.Message, "208V")
}

func TestValidationRejectsOutOfRangeFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Input)
		field  string
	}{
		{"empty name", func(in *Input) { in.Name = "" }, "name"},
		{"voltage too high", func(in *Input) { in.Voltage = 20000 }, "voltage"},
		{"zero fault current", func(in *Input) { in.BoltedFaultCurrent = 0 }, "bolted_fault_current"},
		{"fault current too high", func(in *Input) { in.BoltedFaultCurrent = 200000 }, "bolted_fault_current"},
		{"zero distance", func(in *Input) { in.WorkingDistance = 0 }, "working_distance"},
		{"distance too far", func(in *Input) { in.WorkingDistance = 200 }, "working_distance"},
		{"unknown enclosure", func(in *Input) { in.EnclosureType = "XYZ" }, "enclosure_type"},
		{"zero gap", func(in *Input) { in.ElectrodeGap = 0 }, "electrode_gap"},
		{"gap too wide", func(in *Input) { in.ElectrodeGap = 300 }, "electrode_gap"},
		{"zero clearing time", func(in *Input) { in.FaultClearingTime = 0 }, "fault_clearing_time"},
		{"clearing time too long", func(in *Input) { in.FaultClearingTime = 3 }, "fault_clearing_time"},
		{"unknown grounding", func(in *Input) { in.Grounding = "floating" }, "grounding"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			in := sampleInput()
			c.mutate(&in)
			_, err := Calculate(in)
			require.Error(t, err)
			verr, ok := err.(*ValidationError)
			require.True(t, ok)
			assert.Equal(t, c.field, verr.Field)
		})
	}
}

func TestGroundingDefaultsToSolidlyGrounded(t *testing.T) {
	in := sampleInput()
	in.Grounding = ""

	_, err := Calculate(in)
	assert.NoError(t, err)
}

func TestEnclosureTypesChangeResult(t *testing.T) {
	in := sampleInput()

	in.EnclosureType = VCB
	resVCB, err := Calculate(in)
	require.NoError(t, err)

	in.EnclosureType = VOA
	resVOA, err := Calculate(in)
	require.NoError(t, err)

	// K differs between enclosed and open air, so the energies must too.
	assert.NotEqual(t, resVCB.IncidentEnergy, resVOA.IncidentEnergy)

	in.EnclosureType = VCBB
	resVCBB, err := Calculate(in)
	require.NoError(t, err)
	assert.Equal(t, 0.973, resVCBB.CorrectionFactor)

	in.EnclosureType = HCB
	resHCB, err := Calculate(in)
	require.NoError(t, err)
	assert.Equal(t, 1.056, resHCB.CorrectionFactor)
}

func TestClearingTimeMonotonic(t *testing.T) {
	in := sampleInput()
	times := []float64{0.05, 0.2, 0.5, 1.0, 2.0}

	var lastEnergy, lastBoundary float64
	for _, ct := range times {
		in.FaultClearingTime = ct
		energy := IncidentEnergy(in, ArcingCurrent(in))
		boundary := ArcFlashBoundary(in, ArcingCurrent(in))
		assert.Greater(t, energy, lastEnergy, "clearing time %v", ct)
		assert.Greater(t, boundary, lastBoundary, "clearing time %v", ct)
		lastEnergy, lastBoundary = energy, boundary
	}
}

func TestSlowClearingWarning(t *testing.T) {
	in := sampleInput()
	in.FaultClearingTime = 1.5

	res, err := Calculate(in)
	require.NoError(t, err)
	require.NotEmpty(t, res.Warnings)
	assert.Contains(t, res.Warnings[0], "Clearing time > 0.5s")
}

func TestHighEnergyWarning(t *testing.T) {
	in := sampleInput()
	in.BoltedFaultCurrent = 106000
	in.WorkingDistance = 12
	in.FaultClearingTime = 2.0

	res, err := Calculate(in)
	require.NoError(t, err)
	assert.Greater(t, res.IncidentEnergy, 40.0)
	require.Len(t, res.Warnings, 2)
	assert.Contains(t, res.Warnings[0], "Clearing time > 0.5s")
	assert.Contains(t, res.Warnings[1], "Incident energy > 40")
	assert.Equal(t, 4, res.PPECategory)
}

func TestHazardousScenarioBoundaryExceedsWorkingDistance(t *testing.T) {
	in := sampleInput()
	in.BoltedFaultCurrent = 65000
	in.WorkingDistance = 18
	in.FaultClearingTime = 0.3

	res, err := Calculate(in)
	require.NoError(t, err)
	assert.Greater(t, res.ArcFlashBoundary, in.WorkingDistance)
	assert.GreaterOrEqual(t, res.PPECategory, 1)
}

func TestResultRounding(t *testing.T) {
	res, err := Calculate(sampleInput())
	require.NoError(t, err)

	assert.Equal(t, math.Round(res.ArcingCurrent), res.ArcingCurrent)
	assert.InDelta(t, res.IncidentEnergy, math.Round(res.IncidentEnergy*100)/100, 1e-12)
	assert.InDelta(t, res.ArcFlashBoundary, math.Round(res.ArcFlashBoundary*10)/10, 1e-12)
}

func TestPPEClassifiedFromUnroundedEnergy(t *testing.T) {
	// The category is decided before display rounding, so it must always
	// agree with a classification of the raw energy.
	in := sampleInput()
	for _, ct := range []float64{0.05, 0.3, 0.8, 1.5, 2.0} {
		in.FaultClearingTime = ct
		res, err := Calculate(in)
		require.NoError(t, err)
		raw := IncidentEnergy(in, ArcingCurrent(in))
		assert.Equal(t, PPECategory(raw), res.PPECategory, "clearing time %v", ct)
	}
}
