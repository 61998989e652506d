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

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testInput() Input {
	return Input{
		SystemName:        "Test Rig",
		SystemDescription: "bench test rig",
		Components:        testComponents(),
	}
}

func candidateFor(component string, s, o, d int) Candidate {
	c := validCandidate()
	c.Component = component
	c.Severity = s
	c.Occurrence = o
	c.Detection = d
	return c
}

func TestBuild_SingleEntryScenario(t *testing.T) {
	b := NewBuilder(DefaultConfig())

	reg, report, err := b.Build(testInput(), []Candidate{candidateFor("A", 9, 3, 4)}, time.Time{})
	require.NoError(t, err)
	require.Len(t, reg.Entries, 1)

	entry := reg.Entries[0]
	assert.Equal(t, "DFMEA-001", entry.ID)
	assert.Equal(t, 108, entry.RPN)
	assert.Equal(t, RiskMedium, entry.RiskLevel)

	assert.Equal(t, 1, report.Accepted)
	assert.Empty(t, report.Rejections)
	assert.Equal(t, ScopeDesign, reg.Scope, "scope defaults to design")
	assert.Equal(t, MethodologyReference, reg.DOIReference)
	assert.NotEmpty(t, reg.AnalysisID)
}

func TestBuild_SequentialIDs(t *testing.T) {
	b := NewBuilder(DefaultConfig())
	candidates := []Candidate{
		candidateFor("A", 2, 2, 2),
		candidateFor("C", 5, 5, 5), // rejected: unknown component
		candidateFor("B", 8, 9, 7),
	}

	reg, report, err := b.Build(testInput(), candidates, time.Time{})
	require.NoError(t, err)
	require.Len(t, reg.Entries, 2)

	// IDs are positional over accepted entries; the rejected candidate
	// does not consume a sequence number.
	assert.Equal(t, "DFMEA-001", reg.Entries[0].ID)
	assert.Equal(t, "DFMEA-002", reg.Entries[1].ID)

	require.Len(t, report.Rejections, 1)
	assert.Equal(t, 1, report.Rejections[0].Index)
	var unknown *UnknownComponentError
	require.ErrorAs(t, report.Rejections[0].Err, &unknown)
	assert.Equal(t, "C", unknown.Component)
}

// TestBuild_OrderingIndependence verifies permuting candidates changes
// only assigned IDs, never scoring or summary counts.
func TestBuild_OrderingIndependence(t *testing.T) {
	b := NewBuilder(DefaultConfig())
	forward := []Candidate{
		candidateFor("A", 9, 3, 4),  // 108 medium
		candidateFor("B", 10, 8, 6), // 480 critical
		candidateFor("A", 2, 2, 2),  // 8 low
	}
	reversed := []Candidate{forward[2], forward[1], forward[0]}

	regFwd, _, err := b.Build(testInput(), forward, time.Time{})
	require.NoError(t, err)
	regRev, _, err := b.Build(testInput(), reversed, time.Time{})
	require.NoError(t, err)

	assert.Equal(t, regFwd.Summary, regRev.Summary)

	rpns := func(reg *Register) []int {
		out := make([]int, 0, len(reg.Entries))
		for _, e := range reg.Entries {
			out = append(out, e.RPN)
		}
		sort.Ints(out)
		return out
	}
	assert.Equal(t, rpns(regFwd), rpns(regRev))

	// IDs differ by position.
	assert.Equal(t, 480, regRev.Entries[1].RPN)
	assert.Equal(t, "DFMEA-002", regRev.Entries[1].ID)
	assert.Equal(t, "DFMEA-002", regFwd.Entries[1].ID)
}

func TestBuild_EmptyComponentList(t *testing.T) {
	b := NewBuilder(DefaultConfig())
	in := testInput()
	in.Components = nil

	_, _, err := b.Build(in, []Candidate{validCandidate()}, time.Time{})
	assert.ErrorIs(t, err, ErrEmptyComponentList)
}

func TestBuild_AllRejected(t *testing.T) {
	b := NewBuilder(DefaultConfig())

	_, report, err := b.Build(testInput(), []Candidate{candidateFor("C", 9, 3, 4)}, time.Time{})
	require.ErrorIs(t, err, ErrEmptyRegister)
	require.NotNil(t, report)
	assert.Equal(t, 1, report.CandidateCount)
	assert.False(t, report.NoCandidates())
}

func TestBuild_NoCandidates(t *testing.T) {
	b := NewBuilder(DefaultConfig())

	_, report, err := b.Build(testInput(), nil, time.Time{})
	require.ErrorIs(t, err, ErrEmptyRegister)
	assert.True(t, report.NoCandidates())
}

func TestBuild_InvalidScope(t *testing.T) {
	b := NewBuilder(DefaultConfig())
	in := testInput()
	in.Scope = "operational"

	_, _, err := b.Build(in, []Candidate{validCandidate()}, time.Time{})
	var ise *InvalidScopeError
	require.ErrorAs(t, err, &ise)
	assert.Equal(t, "operational", ise.Scope)
}

func TestBuild_AnalysisDate(t *testing.T) {
	b := NewBuilder(DefaultConfig())

	date := time.Date(2026, 2, 18, 12, 0, 0, 0, time.UTC)
	reg, _, err := b.Build(testInput(), []Candidate{validCandidate()}, date)
	require.NoError(t, err)
	assert.Equal(t, "2026-02-18", reg.AnalysisDate)

	reg, _, err = b.Build(testInput(), []Candidate{validCandidate()}, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, time.Now().Format("2006-01-02"), reg.AnalysisDate)
}

// TestBuild_MismatchWarningsSurface verifies supplied derived fields
// are overwritten with a warning tied to the accepted entry ID.
func TestBuild_MismatchWarningsSurface(t *testing.T) {
	b := NewBuilder(DefaultConfig())
	c := candidateFor("A", 9, 3, 4)
	bogus := 999
	c.RPN = &bogus

	reg, report, err := b.Build(testInput(), []Candidate{c}, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, 108, reg.Entries[0].RPN)
	require.Len(t, report.Warnings, 1)
	assert.Equal(t, "DFMEA-001", report.Warnings[0].EntryID)
	assert.Equal(t, "rpn", report.Warnings[0].Warning.Field)
}

func TestBuild_CustomPrefix(t *testing.T) {
	cfg := DefaultConfig()
	cfg.IDPrefix = "PFMEA"
	b := NewBuilder(cfg)

	in := testInput()
	in.Scope = ScopeProcess
	reg, _, err := b.Build(in, []Candidate{validCandidate()}, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, "PFMEA-001", reg.Entries[0].ID)
	assert.Equal(t, ScopeProcess, reg.Scope)
}

func TestRegister_SortedEntries(t *testing.T) {
	b := NewBuilder(DefaultConfig())
	candidates := []Candidate{
		candidateFor("A", 9, 3, 4),  // 108
		candidateFor("B", 10, 8, 6), // 480
		candidateFor("A", 2, 2, 2),  // 8
	}
	reg, _, err := b.Build(testInput(), candidates, time.Time{})
	require.NoError(t, err)

	byRPN := reg.SortedEntries(SortByRPN, true)
	assert.Equal(t, []int{480, 108, 8}, []int{byRPN[0].RPN, byRPN[1].RPN, byRPN[2].RPN})

	// Sorting returns a copy; the register keeps acceptance order.
	assert.Equal(t, "DFMEA-001", reg.Entries[0].ID)
	assert.Equal(t, 108, reg.Entries[0].RPN)

	byID := reg.SortedEntries(SortByID, false)
	assert.Equal(t, "DFMEA-001", byID[0].ID)
}

func TestRegister_EntriesByRiskLevel(t *testing.T) {
	b := NewBuilder(DefaultConfig())
	candidates := []Candidate{
		candidateFor("A", 9, 3, 4),  // medium
		candidateFor("B", 10, 8, 6), // critical
		candidateFor("A", 10, 7, 6), // critical
	}
	reg, _, err := b.Build(testInput(), candidates, time.Time{})
	require.NoError(t, err)

	groups := reg.EntriesByRiskLevel()
	assert.Len(t, groups[RiskCritical], 2)
	assert.Len(t, groups[RiskMedium], 1)
	assert.Empty(t, groups[RiskLow])
}

func TestInput_Validate(t *testing.T) {
	in := testInput()
	require.NoError(t, in.Validate())

	in.SystemName = ""
	assert.Error(t, in.Validate())

	in = testInput()
	in.Components = []Component{}
	assert.Error(t, in.Validate())

	in = testInput()
	in.Scope = "operational"
	assert.Error(t, in.Validate())
}
