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
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Builder assembles a validated register from a candidate batch. Each
// build is independent and stateless between runs; a single Builder is
// safe to reuse across inputs.
type Builder struct {
	cfg Config
}

// NewBuilder creates a Builder with the given scoring policy.
func NewBuilder(cfg Config) *Builder {
	if cfg.IDPrefix == "" {
		cfg.IDPrefix = DefaultIDPrefix
	}
	if cfg.MethodologyRef == "" {
		cfg.MethodologyRef = MethodologyReference
	}
	return &Builder{cfg: cfg}
}

// Build validates the candidate batch against the input's component set
// and assembles the register.
//
// Validation failures for individual candidates do not abort the build:
// failed candidates are excluded and reported in the BatchReport
// alongside all non-fatal warnings (partial-failure semantics). The
// build fails wholesale only on aggregate errors: an empty component
// list, an invalid scope, or zero surviving entries.
//
// Entry identifiers are positional ("DFMEA-001", "DFMEA-002", ...) in
// acceptance order. Re-running with a different candidate order yields
// different IDs for identical content; scoring itself is unaffected.
//
// analysisDate stamps the register metadata; the zero time means
// today. The date is metadata only and never feeds scoring.
func (b *Builder) Build(in Input, candidates []Candidate, analysisDate time.Time) (*Register, *BatchReport, error) {
	validator, err := NewValidator(in.Components, b.cfg)
	if err != nil {
		return nil, nil, err
	}

	scope, err := ParseScope(string(in.Scope))
	if err != nil {
		return nil, nil, err
	}

	report := &BatchReport{CandidateCount: len(candidates)}
	entries := make([]Entry, 0, len(candidates))

	for i, candidate := range candidates {
		entry, warnings, err := validator.Validate(candidate)
		if err != nil {
			report.Rejections = append(report.Rejections, Rejection{
				Index:  i,
				Reason: err.Error(),
				Err:    err,
			})
			continue
		}

		entry.ID = fmt.Sprintf("%s-%03d", b.cfg.IDPrefix, len(entries)+1)
		entries = append(entries, entry)

		for _, w := range warnings {
			report.Warnings = append(report.Warnings, EntryWarning{EntryID: entry.ID, Warning: w})
		}
	}
	report.Accepted = len(entries)

	if len(entries) == 0 {
		return nil, report, fmt.Errorf("%w: %d candidate(s) submitted, %d rejected",
			ErrEmptyRegister, report.CandidateCount, len(report.Rejections))
	}

	if analysisDate.IsZero() {
		analysisDate = time.Now()
	}

	register := &Register{
		AnalysisID:   uuid.NewString(),
		SystemName:   in.SystemName,
		AnalysisDate: analysisDate.Format("2006-01-02"),
		DOIReference: b.cfg.MethodologyRef,
		Scope:        scope,
		Entries:      entries,
		Summary:      Summarize(entries),
	}
	return register, report, nil
}
