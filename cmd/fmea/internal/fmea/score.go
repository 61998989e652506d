// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package fmea

// ComputeRPN returns the Risk Priority Number for the three ratings.
// RPN = Severity x Occurrence x Detection per IEC 60812:2018. Each
// rating must lie in [1, 10]; the result therefore lies in [1, 1000].
func ComputeRPN(severity, occurrence, detection int) (int, error) {
	ratings := []struct {
		field string
		value int
	}{
		{"severity", severity},
		{"occurrence", occurrence},
		{"detection", detection},
	}
	for _, r := range ratings {
		if r.value < RatingMin || r.value > RatingMax {
			return 0, &OutOfRangeError{Field: r.field, Value: r.value, Min: RatingMin, Max: RatingMax}
		}
	}
	return severity * occurrence * detection, nil
}

// Classify maps an RPN to a risk level using these thresholds.
// Boundaries are evaluated high-to-low so ties resolve to the higher
// category.
func (t Thresholds) Classify(rpn int) (RiskLevel, error) {
	if rpn < RPNMin || rpn > RPNMax {
		return "", &OutOfRangeError{Field: "rpn", Value: rpn, Min: RPNMin, Max: RPNMax}
	}
	switch {
	case rpn >= t.Critical:
		return RiskCritical, nil
	case rpn >= t.High:
		return RiskHigh, nil
	case rpn >= t.Medium:
		return RiskMedium, nil
	default:
		return RiskLow, nil
	}
}

// ClassifyRisk maps an RPN to a risk level using the documented
// baseline thresholds (critical >= 400, high >= 200, medium >= 100).
func ClassifyRisk(rpn int) (RiskLevel, error) {
	return DefaultThresholds().Classify(rpn)
}
