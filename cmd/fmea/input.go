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
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/AleutianAI/fmea-agent/cmd/fmea/internal/fmea"
)

// analyzeInput is the on-disk input contract. The optional candidates
// array carries pre-elicited failure modes for offline runs; online
// runs ignore it.
type analyzeInput struct {
	fmea.Input
	Candidates []fmea.Candidate `json:"candidates,omitempty"`
}

// decodeInput parses and validates an analyzeInput from r.
func decodeInput(r io.Reader, source string) (analyzeInput, error) {
	var in analyzeInput

	dec := json.NewDecoder(r)
	if err := dec.Decode(&in); err != nil {
		return in, fmt.Errorf("invalid JSON from %s: %w", source, err)
	}
	if err := in.Validate(); err != nil {
		return in, fmt.Errorf("invalid input from %s: %w", source, err)
	}
	return in, nil
}

// loadInputFile reads and validates an input file.
func loadInputFile(path string) (analyzeInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return analyzeInput{}, fmt.Errorf("open input file: %w", err)
	}
	defer f.Close()
	return decodeInput(f, path)
}

// stdinIsPiped reports whether stdin carries piped data rather than a
// terminal. Piped invocations default to lean output: JSON on stdout,
// no file saves.
func stdinIsPiped() bool {
	return !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd())
}
