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
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/AleutianAI/fmea-agent/cmd/fmea/internal/fmea"
	"github.com/AleutianAI/fmea-agent/cmd/fmea/internal/report"
	"github.com/AleutianAI/fmea-agent/pkg/ux"
)

// emitOutputs writes the register as JSON (stdout and/or file), renders
// the HTML matrix, and prints the terminal summary banner.
func emitOutputs(reg *fmea.Register, name string, opts analyzeOpts) error {
	regJSON, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal register: %w", err)
	}

	if opts.toStdout {
		fmt.Println(string(regJSON))
	}

	if opts.save {
		if err := os.MkdirAll(analyzeOutDir, 0o750); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}

		jsonPath := filepath.Join(analyzeOutDir, outputBase(name)+".json")
		if err := os.WriteFile(jsonPath, regJSON, 0o640); err != nil {
			return fmt.Errorf("save JSON output: %w", err)
		}
		logger.Info("JSON saved", "path", jsonPath)
		if !quiet {
			ux.Success("JSON saved: " + jsonPath)
		}

		if !analyzeJSONOnly {
			html, err := report.RenderHTML(reg)
			if err != nil {
				return err
			}
			htmlPath := filepath.Join(analyzeOutDir, reportBase(name)+".html")
			if err := os.WriteFile(htmlPath, []byte(html), 0o640); err != nil {
				return fmt.Errorf("save HTML report: %w", err)
			}
			logger.Info("HTML report saved", "path", htmlPath)
			if !quiet {
				ux.Success("HTML report saved: " + htmlPath)
			}
		}
	}

	if !quiet {
		printSummaryBanner(reg)
	}
	return nil
}

// outputBase names the saved JSON file. Single-source runs keep the
// historical fmea_output name; per-file runs derive from the input.
func outputBase(name string) string {
	switch name {
	case "example", "stdin", "candidates":
		return "fmea_output"
	default:
		return strings.TrimSuffix(filepath.Base(name), filepath.Ext(name)) + "_fmea_output"
	}
}

func reportBase(name string) string {
	switch name {
	case "example", "stdin", "candidates":
		return "fmea_report"
	default:
		return strings.TrimSuffix(filepath.Base(name), filepath.Ext(name)) + "_fmea_report"
	}
}

// printSummaryBanner writes the styled completion summary to stderr.
func printSummaryBanner(reg *fmea.Register) {
	s := reg.Summary

	line := func(label string, value string, style lipgloss.Style) {
		fmt.Fprintf(os.Stderr, "  %-16s %s\n", label, style.Render(value))
	}
	plain := lipgloss.NewStyle()

	fmt.Fprintln(os.Stderr)
	ux.Title(fmt.Sprintf("DFMEA COMPLETE: %s", reg.SystemName))
	line("Total entries", fmt.Sprintf("%d", s.TotalEntries), plain)
	line("Critical", fmt.Sprintf("%d", s.CriticalCount), ux.Styles.RiskCritical)
	line("High", fmt.Sprintf("%d", s.HighCount), ux.Styles.RiskHigh)
	line("Medium", fmt.Sprintf("%d", s.MediumCount), ux.Styles.RiskMedium)
	line("Low", fmt.Sprintf("%d", s.LowCount), ux.Styles.RiskLow)
	line("Max RPN", fmt.Sprintf("%d", s.MaxRPN), ux.Styles.Bold)
	line("Avg RPN", fmt.Sprintf("%.1f", s.AvgRPN), plain)
}
