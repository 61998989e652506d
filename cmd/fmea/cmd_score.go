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
	"time"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/fmea-agent/cmd/fmea/internal/fmea"
	"github.com/AleutianAI/fmea-agent/pkg/ux"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

var (
	scoreComponents string
	scoreThreshold  string
	scoreJSON       bool
	scoreDate       string
)

// =============================================================================
// COMMAND DEFINITION
// =============================================================================

var scoreCmd = &cobra.Command{
	Use:   "score [candidates.json]",
	Short: "Score pre-elicited failure-mode candidates without an LLM",
	Long: `Validate and score a JSON array of failure-mode candidates against a
system description, producing the same DFMEA register as analyze but
without any model call.

The candidates file holds a bare JSON array of entries. The system
description comes from --components, which points at the same input
JSON that analyze consumes. Omit the file argument to read the
candidates array from stdin.

Examples:
  fmea score candidates.json --components input.json
  cat candidates.json | fmea score --components input.json
  fmea score candidates.json --components input.json --threshold medium

Exit Codes:
  0 = No entry above threshold (or no threshold given)
  1 = At least one entry above threshold
  2 = Error (invalid input, nothing validated)`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScoreCommand,
}

func init() {
	scoreCmd.Flags().StringVar(&scoreComponents, "components", "",
		"Input JSON with the system description and component list (required)")
	scoreCmd.Flags().StringVar(&scoreThreshold, "threshold", "",
		"Exit 1 if any entry is above: low, medium, high, critical")
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false,
		"Print the register JSON only; suppress the summary banner")
	scoreCmd.Flags().StringVar(&scoreDate, "analysis-date", "",
		"Analysis date stamp in YYYY-MM-DD form (default: today)")

	rootCmd.AddCommand(scoreCmd)
}

// =============================================================================
// COMMAND IMPLEMENTATION
// =============================================================================

func runScoreCommand(cmd *cobra.Command, args []string) {
	if scoreComponents == "" {
		ux.Error("--components is required")
		os.Exit(ExitError)
	}

	in, err := loadInputFile(scoreComponents)
	if err != nil {
		ux.Error(err.Error())
		os.Exit(ExitError)
	}

	candidates, err := loadCandidates(args)
	if err != nil {
		ux.Error(err.Error())
		os.Exit(ExitError)
	}

	analysisDate, err := parseAnalysisDate(scoreDate)
	if err != nil {
		ux.Error(err.Error())
		os.Exit(ExitError)
	}

	builder := fmea.NewBuilder(appConfig.scoringConfig())
	reg, report, err := builder.Build(in.Input, candidates, analysisDate)
	if err != nil {
		if report != nil {
			for _, rej := range report.Rejections {
				ux.Warn(fmt.Sprintf("candidate %d rejected: %s", rej.Index, rej.Reason))
			}
		}
		ux.Error(err.Error())
		os.Exit(ExitError)
	}

	for _, rej := range report.Rejections {
		logger.Warn("candidate rejected", "index", rej.Index, "reason", rej.Reason)
		if !quiet && !scoreJSON {
			ux.Warn(fmt.Sprintf("candidate %d rejected: %s", rej.Index, rej.Reason))
		}
	}

	regJSON, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		ux.Error(err.Error())
		os.Exit(ExitError)
	}
	fmt.Println(string(regJSON))

	if !quiet && !scoreJSON {
		printSummaryBanner(reg)
	}

	if scoreThreshold != "" {
		gate := fmea.ParseRiskLevel(scoreThreshold)
		if above := entriesAbove(reg, gate); len(above) > 0 {
			if !quiet && !scoreJSON {
				for _, e := range above {
					ux.Warn(fmt.Sprintf("%s is %s (RPN %d), above %s threshold",
						e.ID, e.RiskLevel, e.RPN, gate))
				}
			}
			os.Exit(ExitAboveThreshold)
		}
	}
	os.Exit(ExitOK)
}

// loadCandidates reads the candidate array from the file argument or,
// absent one, from stdin.
func loadCandidates(args []string) ([]fmea.Candidate, error) {
	var (
		data []byte
		err  error
	)
	if len(args) == 1 {
		data, err = os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("read candidates file: %w", err)
		}
	} else {
		if !stdinIsPiped() {
			return nil, fmt.Errorf("no candidates file given and stdin is a terminal")
		}
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read candidates from stdin: %w", err)
		}
	}

	var candidates []fmea.Candidate
	if err := json.Unmarshal(data, &candidates); err != nil {
		return nil, fmt.Errorf("invalid candidates JSON: %w", err)
	}
	return candidates, nil
}

// parseAnalysisDate validates the optional date stamp. Empty means
// today.
func parseAnalysisDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --analysis-date %q: want YYYY-MM-DD", s)
	}
	return t, nil
}

// entriesAbove returns the entries whose risk level strictly exceeds
// the gate.
func entriesAbove(reg *fmea.Register, gate fmea.RiskLevel) []fmea.Entry {
	var above []fmea.Entry
	for _, e := range reg.Entries {
		if e.RiskLevel.Exceeds(gate) {
			above = append(above, e)
		}
	}
	return above
}
