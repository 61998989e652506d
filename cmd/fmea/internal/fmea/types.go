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
	"strings"

	"github.com/go-playground/validator/v10"
)

// Rating and RPN bounds per IEC 60812:2018.
const (
	RatingMin = 1
	RatingMax = 10
	RPNMin    = 1
	RPNMax    = 1000
)

// MethodologyReference is the DOI of the methodology source embedded in
// every register.
const MethodologyReference = "10.3390/su12010077"

// DefaultIDPrefix is the prefix for positional entry identifiers.
const DefaultIDPrefix = "DFMEA"

// RiskLevel classifies an RPN into a categorical bucket.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// Order returns the numeric order of this risk level, low first.
func (r RiskLevel) Order() int {
	switch r {
	case RiskLow:
		return 0
	case RiskMedium:
		return 1
	case RiskHigh:
		return 2
	case RiskCritical:
		return 3
	default:
		return -1
	}
}

// Exceeds returns true if this risk level exceeds the threshold.
func (r RiskLevel) Exceeds(threshold RiskLevel) bool {
	return r.Order() > threshold.Order()
}

// ParseRiskLevel parses a string to RiskLevel. Unknown strings return
// RiskHigh so that gating callers fail closed.
func ParseRiskLevel(s string) RiskLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return RiskLow
	case "medium":
		return RiskMedium
	case "high":
		return RiskHigh
	case "critical":
		return RiskCritical
	default:
		return RiskHigh
	}
}

// Scope is the FMEA scope type.
type Scope string

const (
	ScopeDesign  Scope = "design"
	ScopeProcess Scope = "process"
	ScopeSystem  Scope = "system"
)

// ParseScope validates a scope string. The empty string defaults to
// ScopeDesign; anything else outside the enum is an *InvalidScopeError.
func ParseScope(s string) (Scope, error) {
	switch Scope(strings.TrimSpace(s)) {
	case "":
		return ScopeDesign, nil
	case ScopeDesign:
		return ScopeDesign, nil
	case ScopeProcess:
		return ScopeProcess, nil
	case ScopeSystem:
		return ScopeSystem, nil
	default:
		return "", &InvalidScopeError{Scope: s}
	}
}

// Thresholds holds the lower RPN bound of each non-low risk level.
// Levels are evaluated high-to-low so ties resolve to the higher
// category.
type Thresholds struct {
	Critical int `json:"critical" yaml:"critical"`
	High     int `json:"high" yaml:"high"`
	Medium   int `json:"medium" yaml:"medium"`
}

// DefaultThresholds returns the documented AIAG-VDA baseline:
// critical >= 400, high >= 200, medium >= 100, low below.
func DefaultThresholds() Thresholds {
	return Thresholds{Critical: 400, High: 200, Medium: 100}
}

// Config holds the process-wide scoring policy for a register build.
// It is passed by value so concurrent builds with different policies
// never share mutable state.
type Config struct {
	Thresholds     Thresholds
	IDPrefix       string
	MethodologyRef string
}

// DefaultConfig returns a Config with the documented baseline policy.
func DefaultConfig() Config {
	return Config{
		Thresholds:     DefaultThresholds(),
		IDPrefix:       DefaultIDPrefix,
		MethodologyRef: MethodologyReference,
	}
}

// Component identifies a unit of the analyzed system. Immutable once
// supplied.
type Component struct {
	Name     string `json:"name" validate:"required"`
	Function string `json:"function" validate:"required"`
}

// Input is the contract consumed from the elicitation collaborator or
// an input file.
type Input struct {
	SystemName        string      `json:"system_name" validate:"required"`
	SystemDescription string      `json:"system_description" validate:"required"`
	Components        []Component `json:"components" validate:"required,min=1,dive"`
	Scope             Scope       `json:"scope" validate:"omitempty,oneof=design process system"`
}

// inputValidate is the shared validator instance for input contracts.
var inputValidate = validator.New()

// Validate checks the input contract using go-playground/validator tags.
func (in *Input) Validate() error {
	return inputValidate.Struct(in)
}

// Candidate is one untrusted failure-mode record as proposed by the
// elicitation collaborator. RPN and RiskLevel, when supplied, are
// advisory only and are recomputed during validation.
type Candidate struct {
	Component         string     `json:"component"`
	Function          string     `json:"function"`
	FailureMode       string     `json:"failure_mode"`
	FailureEffect     string     `json:"failure_effect"`
	FailureCause      string     `json:"failure_cause"`
	Severity          int        `json:"severity"`
	Occurrence        int        `json:"occurrence"`
	Detection         int        `json:"detection"`
	RecommendedAction string     `json:"recommended_action"`
	RPN               *int       `json:"rpn,omitempty"`
	RiskLevel         *RiskLevel `json:"risk_level,omitempty"`
}

// Entry is a single validated row in the FMEA matrix. Immutable after
// acceptance.
type Entry struct {
	ID                string    `json:"id"`
	Component         string    `json:"component"`
	Function          string    `json:"function"`
	FailureMode       string    `json:"failure_mode"`
	FailureEffect     string    `json:"failure_effect"`
	FailureCause      string    `json:"failure_cause"`
	Severity          int       `json:"severity"`
	Occurrence        int       `json:"occurrence"`
	Detection         int       `json:"detection"`
	RPN               int       `json:"rpn"`
	RecommendedAction string    `json:"recommended_action"`
	RiskLevel         RiskLevel `json:"risk_level"`
}

// Summary holds aggregate statistics derived from the final entry set.
type Summary struct {
	TotalEntries  int     `json:"total_entries"`
	CriticalCount int     `json:"critical_count"`
	HighCount     int     `json:"high_count"`
	MediumCount   int     `json:"medium_count"`
	LowCount      int     `json:"low_count"`
	MaxRPN        int     `json:"max_rpn"`
	AvgRPN        float64 `json:"avg_rpn"`
}

// Register is the terminal output of a build: metadata, the ordered
// entry collection, and the derived summary. Once emitted it is not
// mutated; the sorting helpers below operate on copies.
type Register struct {
	AnalysisID   string  `json:"analysis_id"`
	SystemName   string  `json:"system_name"`
	AnalysisDate string  `json:"analysis_date"`
	DOIReference string  `json:"doi_reference"`
	Scope        Scope   `json:"scope"`
	Entries      []Entry `json:"entries"`
	Summary      Summary `json:"summary"`
}

// SortField names a scalar entry field usable for report sorting.
type SortField string

const (
	SortByID         SortField = "id"
	SortByRPN        SortField = "rpn"
	SortBySeverity   SortField = "severity"
	SortByOccurrence SortField = "occurrence"
	SortByDetection  SortField = "detection"
)

// SortedEntries returns a copy of the entries sorted by the given field.
// The register itself is left untouched. Ties keep acceptance order
// (stable sort) so repeated calls are deterministic.
func (r *Register) SortedEntries(field SortField, descending bool) []Entry {
	out := make([]Entry, len(r.Entries))
	copy(out, r.Entries)

	less := func(a, b Entry) bool {
		switch field {
		case SortByRPN:
			return a.RPN < b.RPN
		case SortBySeverity:
			return a.Severity < b.Severity
		case SortByOccurrence:
			return a.Occurrence < b.Occurrence
		case SortByDetection:
			return a.Detection < b.Detection
		default:
			return a.ID < b.ID
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if descending {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

// EntriesByRiskLevel groups entries by risk level, preserving
// acceptance order within each group.
func (r *Register) EntriesByRiskLevel() map[RiskLevel][]Entry {
	groups := make(map[RiskLevel][]Entry)
	for _, e := range r.Entries {
		groups[e.RiskLevel] = append(groups[e.RiskLevel], e)
	}
	return groups
}
