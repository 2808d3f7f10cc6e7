// File: /dosimetry/evaluate_test.go
package dosimetry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const relativeEpsilon = 1e-9

func assertClose(t *testing.T, expected, actual float64) {
	t.Helper()
	if expected == 0 {
		assert.InDelta(t, expected, actual, relativeEpsilon)
		return
	}
	assert.InEpsilon(t, expected, actual, relativeEpsilon)
}

func TestEvaluateInvariants(t *testing.T) {
	inputs := []Input{
		{Isotope: "Tc-99m", GammaConstant: 0.0220, DistanceMeters: 1.0, DoseRateMicroSvPerHour: 2.5, MassGrams: 500},
		{Isotope: "I-131", GammaConstant: 0.0759, DistanceMeters: 0.5, DoseRateMicroSvPerHour: 12.0, MassGrams: 250},
		{Isotope: "custom", GammaConstant: 0.42, DistanceMeters: 2.0, DoseRateMicroSvPerHour: 0.003, MassGrams: 1},
	}

	for _, in := range inputs {
		result, err := Evaluate(in)
		require.NoError(t, err)

		expectedMBq := (in.DoseRateMicroSvPerHour * in.DistanceMeters * in.DistanceMeters) / in.GammaConstant
		assertClose(t, expectedMBq, result.ActivityMBq)
		assertClose(t, result.ActivityMBq*1e6, result.ActivityBq)
		assertClose(t, result.ActivityBq/in.MassGrams, result.DensityBqPerGram)
	}
}

func TestEvaluateF18Scenario(t *testing.T) {
	result, err := Evaluate(Input{
		Isotope:                "F-18",
		GammaConstant:          0.1879,
		DistanceMeters:         0.3,
		DoseRateMicroSvPerHour: 0.08,
		MassGrams:              10000,
	})
	require.NoError(t, err)

	assertClose(t, 0.08*0.09/0.1879, result.ActivityMBq)
	assertClose(t, 3831.8254390633315, result.ActivityBq)
	assertClose(t, 0.38318254390633317, result.DensityBqPerGram)
}

func TestEvaluateZeroDistanceIsValid(t *testing.T) {
	result, err := Evaluate(Input{
		Isotope:                "Tc-99m",
		GammaConstant:          0.0220,
		DistanceMeters:         0,
		DoseRateMicroSvPerHour: 5,
		MassGrams:              100,
	})
	require.NoError(t, err)

	assert.Zero(t, result.ActivityMBq)
	assert.Zero(t, result.ActivityBq)
	assert.Zero(t, result.DensityBqPerGram)
}

func TestEvaluateDeterministic(t *testing.T) {
	in := Input{Isotope: "Cs-137", GammaConstant: 0.0927, DistanceMeters: 1.3, DoseRateMicroSvPerHour: 7.7, MassGrams: 333}

	first, err := Evaluate(in)
	require.NoError(t, err)
	second, err := Evaluate(in)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEvaluateRejectsInvalidInput(t *testing.T) {
	valid := Input{Isotope: "F-18", GammaConstant: 0.1879, DistanceMeters: 0.3, DoseRateMicroSvPerHour: 0.08, MassGrams: 10000}

	tests := []struct {
		name   string
		mutate func(*Input)
		field  string
	}{
		{"zero gamma constant", func(in *Input) { in.GammaConstant = 0 }, "gamma_constant"},
		{"negative gamma constant", func(in *Input) { in.GammaConstant = -0.1 }, "gamma_constant"},
		{"negative distance", func(in *Input) { in.DistanceMeters = -1 }, "distance_meters"},
		{"negative dose rate", func(in *Input) { in.DoseRateMicroSvPerHour = -0.01 }, "dose_rate_usv_per_hour"},
		{"zero mass", func(in *Input) { in.MassGrams = 0 }, "mass_grams"},
		{"negative mass", func(in *Input) { in.MassGrams = -5 }, "mass_grams"},
		{"NaN dose rate", func(in *Input) { in.DoseRateMicroSvPerHour = math.NaN() }, "dose_rate_usv_per_hour"},
		{"infinite mass", func(in *Input) { in.MassGrams = math.Inf(1) }, "mass_grams"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)

			result, err := Evaluate(in)
			require.Error(t, err)

			var invalid *InvalidInputError
			require.ErrorAs(t, err, &invalid)
			require.Len(t, invalid.Fields, 1)
			assert.Equal(t, tt.field, invalid.Fields[0].Field)

			// Failed evaluation must return the zero result, never NaN/Inf.
			assert.False(t, math.IsNaN(result.ActivityMBq) || math.IsInf(result.ActivityMBq, 0))
			assert.Zero(t, result.ActivityBq)
			assert.Zero(t, result.DensityBqPerGram)
		})
	}
}

func TestEvaluateRejectsOverflowingResults(t *testing.T) {
	// Every precondition holds here, yet the activity arithmetic
	// overflows float64; the overflow must surface as invalid input,
	// never as an infinite result.
	result, err := Evaluate(Input{
		Isotope:                "custom",
		GammaConstant:          0.1,
		DistanceMeters:         1e200,
		DoseRateMicroSvPerHour: 1e10,
		MassGrams:              1,
	})
	require.Error(t, err)

	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)
	require.NotEmpty(t, invalid.Fields)
	assert.Equal(t, "activity_mbq", invalid.Fields[0].Field)

	assert.Zero(t, result.ActivityMBq)
	assert.Zero(t, result.ActivityBq)
	assert.Zero(t, result.DensityBqPerGram)
	assert.False(t, math.IsInf(result.ActivityBq, 0))
}

func TestEvaluateReportsAllViolatedFields(t *testing.T) {
	_, err := Evaluate(Input{
		Isotope:                "F-18",
		GammaConstant:          0,
		DistanceMeters:         -1,
		DoseRateMicroSvPerHour: 0.08,
		MassGrams:              0,
	})
	require.Error(t, err)

	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)
	require.Len(t, invalid.Fields, 3)

	names := make([]string, 0, len(invalid.Fields))
	for _, f := range invalid.Fields {
		names = append(names, f.Field)
	}
	assert.ElementsMatch(t, []string{"gamma_constant", "distance_meters", "mass_grams"}, names)
	assert.Contains(t, err.Error(), "gamma_constant")
}

func TestGammaConstantsTable(t *testing.T) {
	require.NotEmpty(t, GammaConstants)
	assert.InDelta(t, 0.1879, GammaConstants["F-18"], 1e-12)

	for isotope, gamma := range GammaConstants {
		assert.Greater(t, gamma, 0.0, "gamma constant for %s", isotope)
	}
}
