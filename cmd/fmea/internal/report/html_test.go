// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/fmea-agent/cmd/fmea/internal/fmea"
)

func testRegister() *fmea.Register {
	return &fmea.Register{
		AnalysisID:   "c0ffee00-0000-4000-8000-000000000001",
		SystemName:   "Automotive Disc Brake System",
		AnalysisDate: "2026-02-18",
		DOIReference: fmea.MethodologyReference,
		Scope:        fmea.ScopeDesign,
		Entries: []fmea.Entry{
			{
				ID: "DFMEA-001", Component: "Brake Pads", Function: "Create friction",
				FailureMode: "glazing", FailureEffect: "reduced friction coefficient",
				FailureCause: "overheating", Severity: 6, Occurrence: 4, Detection: 5,
				RPN: 120, RecommendedAction: "specify higher-temperature pad compound",
				RiskLevel: fmea.RiskMedium,
			},
			{
				ID: "DFMEA-002", Component: "Brake Caliper", Function: "Apply clamping force",
				FailureMode: "piston seal leak", FailureEffect: "total braking loss",
				FailureCause: "seal degradation", Severity: 10, Occurrence: 8, Detection: 6,
				RPN: 480, RecommendedAction: "add redundant hydraulic circuit",
				RiskLevel: fmea.RiskCritical,
			},
		},
		Summary: fmea.Summary{
			TotalEntries: 2, CriticalCount: 1, MediumCount: 1,
			MaxRPN: 480, AvgRPN: 300,
		},
	}
}

func TestRenderHTML(t *testing.T) {
	html, err := RenderHTML(testRegister())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "Automotive Disc Brake System")
	assert.Contains(t, html, "DFMEA-001")
	assert.Contains(t, html, "DFMEA-002")
	assert.Contains(t, html, "2026-02-18")
	assert.Contains(t, html, fmea.MethodologyReference)

	// Ranked by RPN: the critical 480 row renders before the 120 row.
	assert.Less(t, strings.Index(html, "DFMEA-002"), strings.Index(html, "DFMEA-001"))

	// Risk levels drive the badge class.
	assert.Contains(t, html, `badge critical`)
	assert.Contains(t, html, `badge medium`)

	// No external assets; the report must be portable.
	assert.NotContains(t, html, "http://")
	assert.NotContains(t, html, "https://")
}

func TestRenderHTML_EscapesContent(t *testing.T) {
	reg := testRegister()
	reg.Entries[0].FailureMode = `<script>alert("x")</script>`

	html, err := RenderHTML(reg)
	require.NoError(t, err)
	assert.NotContains(t, html, `<script>alert`)
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestRenderHTML_NilRegister(t *testing.T) {
	_, err := RenderHTML(nil)
	require.Error(t, err)
}
