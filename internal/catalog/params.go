package catalog

import (
	"fmt"
	"math"

	"github.com/dtal-platform/api/internal/models"
)

// InputError describes one invalid calculator input, keyed by the parameter's
// wire name so callers can surface it next to the offending field.
type InputError struct {
	Key     string
	Message string
}

func (e InputError) Error() string {
	return fmt.Sprintf("%s: %s", e.Key, e.Message)
}

// ValidateInputs checks a set of raw calculator inputs against a DTAL's
// declared parameter schema. Fields validate independently: all violations are
// collected rather than stopping at the first, so every invalid field can be
// reported in one pass. A nil return means all inputs are acceptable.
func ValidateInputs(params []models.DTALParameter, inputs map[string]interface{}) []InputError {
	var errs []InputError

	for _, p := range params {
		value, present := inputs[p.Key]

		if !present || value == nil {
			if p.Required {
				errs = append(errs, InputError{Key: p.Key, Message: "required parameter missing"})
			}
			continue
		}

		if err := checkType(p, value); err != nil {
			errs = append(errs, *err)
		}
	}

	return errs
}

// checkType validates a single present value against its parameter declaration.
func checkType(p models.DTALParameter, value interface{}) *InputError {
	switch p.Type {
	case models.ParameterTypeString, models.ParameterTypeSelect:
		s, ok := value.(string)
		if !ok {
			return &InputError{Key: p.Key, Message: "must be a string"}
		}
		if p.Required && s == "" {
			return &InputError{Key: p.Key, Message: "must not be empty"}
		}
		if p.Type == models.ParameterTypeSelect && len(p.Options) > 0 && !containsOption(p.Options, s) {
			return &InputError{Key: p.Key, Message: "not one of the allowed options"}
		}
	case models.ParameterTypeNumber:
		n, ok := toFloat(value)
		if !ok {
			return &InputError{Key: p.Key, Message: "must be a number"}
		}
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return &InputError{Key: p.Key, Message: "must be a finite number"}
		}
		if n <= 0 {
			return &InputError{Key: p.Key, Message: "must be greater than 0"}
		}
	case models.ParameterTypeBoolean:
		if _, ok := value.(bool); !ok {
			return &InputError{Key: p.Key, Message: "must be a boolean"}
		}
	}
	return nil
}

func containsOption(options []string, s string) bool {
	for _, o := range options {
		if o == s {
			return true
		}
	}
	return false
}

// toFloat accepts the numeric types JSON decoding can produce.
func toFloat(value interface{}) (float64, bool) {
	switch n := value.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
