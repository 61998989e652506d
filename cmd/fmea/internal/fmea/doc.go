// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package fmea provides the risk-scoring and record-validation engine
// for Design Failure Mode and Effects Analysis (DFMEA).
//
// The package turns a batch of candidate failure-mode records into a
// validated, ordered analysis register with a derived summary. Scoring
// follows IEC 60812:2018: RPN = Severity x Occurrence x Detection, with
// categorical risk levels assigned from fixed AIAG-VDA thresholds.
//
// # Architecture
//
//	┌────────────────────────────────────────────────────────────┐
//	│                     Register Build Pipeline                │
//	├────────────────────────────────────────────────────────────┤
//	│                                                            │
//	│  Candidates (untrusted, from elicitation or file)          │
//	│         │                                                  │
//	│         ▼                                                  │
//	│  ┌──────────────┐   per-candidate, failures accumulated    │
//	│  │  Validator   │──────────────────────────┐               │
//	│  └──────────────┘                          │               │
//	│         │ accepted entries                 ▼               │
//	│         ▼                            BatchReport           │
//	│  ┌──────────────┐                                          │
//	│  │   Builder    │  positional IDs, metadata, scope         │
//	│  └──────────────┘                                          │
//	│         │                                                  │
//	│         ▼                                                  │
//	│  ┌──────────────┐                                          │
//	│  │  Summarize   │  counts per level, max/avg RPN           │
//	│  └──────────────┘                                          │
//	│         │                                                  │
//	│         ▼                                                  │
//	│     Register (immutable terminal output)                   │
//	│                                                            │
//	└────────────────────────────────────────────────────────────┘
//
// # Determinism
//
// For identical input (same component set, same candidates in the same
// order) the engine produces identical scoring and category assignments.
// Entry IDs are positional: reordering candidates reorders IDs but never
// changes any entry's RPN, risk level, or the summary counts.
//
// # Derived Fields
//
// RPN and risk level are never independently settable. Values supplied
// on a candidate are advisory only; the validator's recomputed values
// are authoritative and disagreements surface as ScoreMismatchWarnings.
package fmea
