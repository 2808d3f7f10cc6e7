// File: /dosimetry/evaluate.go
package dosimetry

import (
	"fmt"
	"math"
	"strings"
)

// Input holds the four measured values plus the isotope label they were
// taken for. GammaConstant is in (uSv/h)/MBq at 1 m.
type Input struct {
	Isotope                string
	GammaConstant          float64
	DistanceMeters         float64
	DoseRateMicroSvPerHour float64
	MassGrams              float64
}

// Result holds the derived activity and density values for a valid Input.
type Result struct {
	ActivityMBq      float64 `json:"activity_mbq"`
	ActivityBq       float64 `json:"activity_bq"`
	DensityBqPerGram float64 `json:"density_bq_per_gram"`
}

// FieldError names one input field that failed validation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// InvalidInputError reports every precondition the input violated.
type InvalidInputError struct {
	Fields []FieldError `json:"fields"`
}

func (e *InvalidInputError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "invalid input: " + strings.Join(msgs, "; ")
}

// GammaConstants maps common isotopes to their gamma dose-rate constants
// in (uSv/h)/MBq at 1 m. Callers may supply any other isotope label with
// their own constant.
var GammaConstants = map[string]float64{
	"F-18":   0.1879,
	"Tc-99m": 0.0220,
	"I-123":  0.0438,
	"I-131":  0.0759,
	"Ga-67":  0.0306,
	"Ga-68":  0.1800,
	"Tl-201": 0.0151,
	"In-111": 0.0835,
	"Lu-177": 0.0070,
	"Cs-137": 0.0927,
	"Co-60":  0.3700,
}

func validate(in Input) error {
	var fields []FieldError

	check := func(name string, v float64, ok bool, msg string) {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			fields = append(fields, FieldError{Field: name, Message: "must be a finite number"})
			return
		}
		if !ok {
			fields = append(fields, FieldError{Field: name, Message: msg})
		}
	}

	check("gamma_constant", in.GammaConstant, in.GammaConstant > 0, "must be greater than zero")
	check("distance_meters", in.DistanceMeters, in.DistanceMeters >= 0, "must not be negative")
	check("dose_rate_usv_per_hour", in.DoseRateMicroSvPerHour, in.DoseRateMicroSvPerHour >= 0, "must not be negative")
	check("mass_grams", in.MassGrams, in.MassGrams > 0, "must be greater than zero")

	if len(fields) > 0 {
		return &InvalidInputError{Fields: fields}
	}
	return nil
}

// Evaluate computes activity and waste density from the measured inputs.
// It is pure: identical inputs always produce identical outputs and no
// NaN or infinity can be returned, because the divisors are checked to be
// strictly positive before any arithmetic happens.
func Evaluate(in Input) (Result, error) {
	if err := validate(in); err != nil {
		return Result{}, err
	}

	activityMBq := (in.DoseRateMicroSvPerHour * in.DistanceMeters * in.DistanceMeters) / in.GammaConstant
	activityBq := activityMBq * 1e6
	density := activityBq / in.MassGrams

	// The preconditions keep the divisors positive but cannot stop the
	// multiplications from overflowing on extreme finite inputs, so the
	// derived values are checked too before anything reaches the caller.
	var fields []FieldError
	for _, derived := range []struct {
		name  string
		value float64
	}{
		{"activity_mbq", activityMBq},
		{"activity_bq", activityBq},
		{"density_bq_per_gram", density},
	} {
		if math.IsNaN(derived.value) || math.IsInf(derived.value, 0) {
			fields = append(fields, FieldError{Field: derived.name, Message: "computed value is not finite, inputs are out of range"})
		}
	}
	if len(fields) > 0 {
		return Result{}, &InvalidInputError{Fields: fields}
	}

	return Result{
		ActivityMBq:      activityMBq,
		ActivityBq:       activityBq,
		DensityBqPerGram: density,
	}, nil
}
