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

import "math"

// Summarize derives aggregate statistics from the final entry
// collection. Pure and order-independent: permuting the entries never
// changes the result. An empty input yields the all-zero summary.
func Summarize(entries []Entry) Summary {
	if len(entries) == 0 {
		return Summary{}
	}

	s := Summary{TotalEntries: len(entries)}
	sum := 0
	for _, e := range entries {
		switch e.RiskLevel {
		case RiskCritical:
			s.CriticalCount++
		case RiskHigh:
			s.HighCount++
		case RiskMedium:
			s.MediumCount++
		case RiskLow:
			s.LowCount++
		}
		if e.RPN > s.MaxRPN {
			s.MaxRPN = e.RPN
		}
		sum += e.RPN
	}

	// Arithmetic mean rounded to one decimal place.
	s.AvgRPN = math.Round(float64(sum)/float64(len(entries))*10) / 10
	return s
}
