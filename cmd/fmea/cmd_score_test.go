// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/fmea-agent/cmd/fmea/internal/fmea"
)

func TestParseAnalysisDate(t *testing.T) {
	d, err := parseAnalysisDate("2026-02-18")
	require.NoError(t, err)
	assert.Equal(t, "2026-02-18", d.Format("2006-01-02"))

	d, err = parseAnalysisDate("")
	require.NoError(t, err)
	assert.True(t, d.IsZero())

	_, err = parseAnalysisDate("18/02/2026")
	require.Error(t, err)
}

func TestEntriesAbove(t *testing.T) {
	reg := &fmea.Register{Entries: []fmea.Entry{
		{ID: "DFMEA-001", RPN: 480, RiskLevel: fmea.RiskCritical},
		{ID: "DFMEA-002", RPN: 240, RiskLevel: fmea.RiskHigh},
		{ID: "DFMEA-003", RPN: 8, RiskLevel: fmea.RiskLow},
	}}

	tests := []struct {
		gate    fmea.RiskLevel
		wantIDs []string
	}{
		{fmea.RiskLow, []string{"DFMEA-001", "DFMEA-002"}},
		{fmea.RiskMedium, []string{"DFMEA-001", "DFMEA-002"}},
		{fmea.RiskHigh, []string{"DFMEA-001"}},
		{fmea.RiskCritical, nil},
	}
	for _, tt := range tests {
		t.Run(string(tt.gate), func(t *testing.T) {
			var ids []string
			for _, e := range entriesAbove(reg, tt.gate) {
				ids = append(ids, e.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestOutputBaseNames(t *testing.T) {
	assert.Equal(t, "fmea_output", outputBase("example"))
	assert.Equal(t, "fmea_output", outputBase("stdin"))
	assert.Equal(t, "fmea_report", reportBase("example"))
	assert.Equal(t, "brakes_fmea_output", outputBase("inputs/brakes.json"))
	assert.Equal(t, "brakes_fmea_report", reportBase("inputs/brakes.json"))
}
