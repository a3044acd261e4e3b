// Package hallucination implements the per-document-type anti-hallucination
// audit (spec.md §4.4): a deterministic, pattern-based second opinion that
// flags canonical fabricated values an under-specified extraction prompt
// tends to produce, and downgrades confidence accordingly.
package hallucination

import "strings"

// Detector mutates an extracted object's audit flag and confidence in
// place, based on how many suspicious signals it matches. It never
// returns an error: an audit that can't find a signal is a clean pass,
// not a failure.
type Detector interface {
	Detect(v any)
}

// scoreFromMatches applies the spec's counted-signal rule: two or more
// matches is a hard flag, exactly one is a soft downgrade, zero is a
// no-op. It is the single place this scoring rule is expressed so both
// detectors apply it identically.
func scoreFromMatches(matches int, setValid func(bool), confidence float64) float64 {
	switch {
	case matches >= 2:
		setValid(false)
		return confidence * 0.3
	case matches == 1:
		return confidence * 0.7
	default:
		return confidence
	}
}

// normalizeName folds a name for case-insensitive, whitespace-trimmed
// comparison against the dummy-value tables.
func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
