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
	"strconv"
	"strings"
)

// Validator checks one candidate record at a time against the domain
// constraints and the set of known component names. It is a pure
// function over its inputs: candidates are never mutated and no state
// accumulates between calls.
type Validator struct {
	components map[string]struct{}
	cfg        Config
}

// NewValidator builds a Validator from the input component list.
// Returns ErrEmptyComponentList when the list is empty.
func NewValidator(components []Component, cfg Config) (*Validator, error) {
	if len(components) == 0 {
		return nil, ErrEmptyComponentList
	}
	set := make(map[string]struct{}, len(components))
	for _, c := range components {
		set[strings.TrimSpace(c.Name)] = struct{}{}
	}
	return &Validator{components: set, cfg: cfg}, nil
}

// Validate produces a validated Entry from a candidate, or a structured
// validation error. Checks run in a fixed order and short-circuit on
// the first fatal failure:
//
//  1. Required text fields non-empty after trimming (MissingFieldError)
//  2. Component in the known set (UnknownComponentError)
//  3. Ratings within [1, 10] (OutOfRangeError)
//  4. RPN recomputed; a disagreeing supplied value is advisory only
//  5. Risk level recomputed; supplied values likewise overwritten
//
// Disagreements in steps 4 and 5 are non-fatal ScoreMismatchWarnings.
// The returned entry carries no ID; identifiers are positional and
// assigned by the Builder in acceptance order.
func (v *Validator) Validate(c Candidate) (Entry, []ScoreMismatchWarning, error) {
	texts := []struct {
		field string
		value string
	}{
		{"component", c.Component},
		{"function", c.Function},
		{"failure_mode", c.FailureMode},
		{"failure_effect", c.FailureEffect},
		{"failure_cause", c.FailureCause},
		{"recommended_action", c.RecommendedAction},
	}
	for _, t := range texts {
		if strings.TrimSpace(t.value) == "" {
			return Entry{}, nil, &MissingFieldError{Field: t.field}
		}
	}

	component := strings.TrimSpace(c.Component)
	if _, ok := v.components[component]; !ok {
		return Entry{}, nil, &UnknownComponentError{Component: component}
	}

	rpn, err := ComputeRPN(c.Severity, c.Occurrence, c.Detection)
	if err != nil {
		return Entry{}, nil, err
	}

	riskLevel, err := v.cfg.Thresholds.Classify(rpn)
	if err != nil {
		return Entry{}, nil, err
	}

	var warnings []ScoreMismatchWarning
	if c.RPN != nil && *c.RPN != rpn {
		warnings = append(warnings, ScoreMismatchWarning{
			Field:         "rpn",
			Supplied:      strconv.Itoa(*c.RPN),
			Authoritative: strconv.Itoa(rpn),
		})
	}
	if c.RiskLevel != nil && *c.RiskLevel != riskLevel {
		warnings = append(warnings, ScoreMismatchWarning{
			Field:         "risk_level",
			Supplied:      string(*c.RiskLevel),
			Authoritative: string(riskLevel),
		})
	}

	entry := Entry{
		Component:         component,
		Function:          strings.TrimSpace(c.Function),
		FailureMode:       strings.TrimSpace(c.FailureMode),
		FailureEffect:     strings.TrimSpace(c.FailureEffect),
		FailureCause:      strings.TrimSpace(c.FailureCause),
		Severity:          c.Severity,
		Occurrence:        c.Occurrence,
		Detection:         c.Detection,
		RPN:               rpn,
		RecommendedAction: strings.TrimSpace(c.RecommendedAction),
		RiskLevel:         riskLevel,
	}
	return entry, warnings, nil
}
