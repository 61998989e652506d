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
	"errors"
	"fmt"
)

// Aggregate-level errors. Both abort the whole build.
var (
	// ErrEmptyComponentList is returned when the input carries no
	// components, before any candidate is processed.
	ErrEmptyComponentList = errors.New("component list is empty")

	// ErrEmptyRegister is returned when zero candidates survive
	// validation. A DFMEA with no findings is an upstream failure,
	// not a valid result.
	ErrEmptyRegister = errors.New("no valid failure-mode entries")
)

// MissingFieldError reports a required text field that is absent or
// empty after trimming whitespace. Fatal for the offending candidate.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

// UnknownComponentError reports a candidate referencing a component
// that is not in the input component set. Fatal for the candidate.
type UnknownComponentError struct {
	Component string
}

func (e *UnknownComponentError) Error() string {
	return fmt.Sprintf("unknown component %q", e.Component)
}

// OutOfRangeError reports a numeric rating or RPN outside its closed
// range. Always fatal for the candidate; values are never clamped.
type OutOfRangeError struct {
	Field string
	Value int
	Min   int
	Max   int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s %d out of range [%d, %d]", e.Field, e.Value, e.Min, e.Max)
}

// InvalidScopeError reports a scope value outside the recognized enum.
type InvalidScopeError struct {
	Scope string
}

func (e *InvalidScopeError) Error() string {
	return fmt.Sprintf("invalid scope %q (want design, process, or system)", e.Scope)
}

// ScoreMismatchWarning records a supplied derived field (rpn or
// risk_level) that disagrees with the recomputed value. Non-fatal: the
// entry proceeds with the authoritative value and the warning is
// surfaced to the caller for audit.
type ScoreMismatchWarning struct {
	Field         string `json:"field"`
	Supplied      string `json:"supplied"`
	Authoritative string `json:"authoritative"`
}

func (w ScoreMismatchWarning) String() string {
	return fmt.Sprintf("supplied %s %s disagrees with recomputed %s", w.Field, w.Supplied, w.Authoritative)
}

// Rejection records one candidate excluded from the register.
type Rejection struct {
	// Index is the candidate's position in the input batch, zero-based.
	Index  int    `json:"index"`
	Reason string `json:"reason"`

	// Err holds the structured validation error for errors.As callers.
	Err error `json:"-"`
}

// EntryWarning ties a non-fatal warning to the accepted entry it was
// raised for.
type EntryWarning struct {
	EntryID string               `json:"entry_id"`
	Warning ScoreMismatchWarning `json:"warning"`
}

// BatchReport accumulates the outcome of validating a whole candidate
// batch: every rejection with its reason, plus all non-fatal warnings.
// Per-candidate failures are collected rather than thrown at first
// failure so one report can show all problems at once.
type BatchReport struct {
	CandidateCount int            `json:"candidate_count"`
	Accepted       int            `json:"accepted"`
	Rejections     []Rejection    `json:"rejections,omitempty"`
	Warnings       []EntryWarning `json:"warnings,omitempty"`
}

// NoCandidates reports whether the batch was empty to begin with, as
// opposed to all candidates being rejected. Both cases fail the build
// with ErrEmptyRegister; this accessor keeps them distinguishable for
// diagnostics.
func (r *BatchReport) NoCandidates() bool {
	return r.CandidateCount == 0
}
