package extract

import (
	"math"
	"reflect"

	"github.com/shopspring/decimal"
)

// scoreConfidence blends three signals per spec.md §4.3 step 5: how
// cleanly the model call finished, how many of the schema's optional
// fields got populated, and the model's own stated confidence (if it
// reported one on the target object).
func scoreConfidence(finishReason string, target any) float64 {
	score := 0.6*finishReasonQuality(finishReason) +
		0.2*structuralCompleteness(target) +
		0.2*statedConfidence(target)
	return round2(clamp01(score))
}

// finishReasonQuality rewards a clean stop, partially credits a
// length-truncated response, and otherwise assumes the worst.
func finishReasonQuality(finishReason string) float64 {
	switch finishReason {
	case "stop":
		return 1.0
	case "length":
		return 0.5
	default:
		return 0
	}
}

// structuralCompleteness is the fraction of the target's optional fields
// (every field except Confidence and IsValidInput) that are non-zero,
// capped at 1.
func structuralCompleteness(target any) float64 {
	v := reflect.ValueOf(target)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return 0
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return 0
	}

	total, populated := 0, 0
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		if field.Name == "Confidence" || field.Name == "IsValidInput" {
			continue
		}
		total++
		if !v.Field(i).IsZero() {
			populated++
		}
	}
	if total == 0 {
		return 0
	}

	frac := float64(populated) / float64(total)
	if frac > 1 {
		frac = 1
	}
	return frac
}

// statedConfidence reads the target's own "Confidence" field if it
// reports one greater than zero, falling back to a neutral prior of 0.5
// per spec.md §4.3 step 5.
func statedConfidence(target any) float64 {
	v := reflect.ValueOf(target)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return 0.5
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return 0.5
	}

	field := v.FieldByName("Confidence")
	if !field.IsValid() {
		return 0.5
	}

	switch c := field.Interface().(type) {
	case float64:
		if c > 0 {
			return c
		}
	case decimal.Decimal:
		if f, _ := c.Float64(); f > 0 {
			return f
		}
	}
	return 0.5
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
