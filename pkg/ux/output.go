// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package ux provides rich terminal output styling for the FMEA CLI.
package ux

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Aleutian color palette - deep ocean teals and arctic waters
var (
	ColorTealBright  = lipgloss.Color("#2CD7C7") // Bright teal - highlights, success
	ColorTealPrimary = lipgloss.Color("#20B9B4") // Primary teal - main brand color
	ColorTealDeep    = lipgloss.Color("#16858E") // Deep teal - borders, accents
	ColorSlate       = lipgloss.Color("#2C4A54") // Slate - muted text, borders

	// Semantic colors
	ColorSuccess = lipgloss.Color("#2CD7C7")
	ColorWarning = lipgloss.Color("#F4D03F")
	ColorError   = lipgloss.Color("#E74C3C")
	ColorMuted   = lipgloss.Color("#2C4A54")

	// Risk level colors for the register summary
	ColorRiskCritical = lipgloss.Color("#E74C3C") // Red - immediate action
	ColorRiskHigh     = lipgloss.Color("#E67E22") // Orange - high priority
	ColorRiskMedium   = lipgloss.Color("#F4D03F") // Amber - near-term action
	ColorRiskLow      = lipgloss.Color("#2CD7C7") // Teal - monitor
)

// Styles provides pre-configured lipgloss styles
var Styles = struct {
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Bold      lipgloss.Style
	Muted     lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Highlight lipgloss.Style

	Box lipgloss.Style

	RiskCritical lipgloss.Style
	RiskHigh     lipgloss.Style
	RiskMedium   lipgloss.Style
	RiskLow      lipgloss.Style
}{
	Title:     lipgloss.NewStyle().Bold(true).Foreground(ColorTealBright),
	Subtitle:  lipgloss.NewStyle().Foreground(ColorTealPrimary),
	Bold:      lipgloss.NewStyle().Bold(true),
	Muted:     lipgloss.NewStyle().Foreground(ColorSlate),
	Success:   lipgloss.NewStyle().Foreground(ColorSuccess),
	Warning:   lipgloss.NewStyle().Foreground(ColorWarning),
	Error:     lipgloss.NewStyle().Foreground(ColorError),
	Highlight: lipgloss.NewStyle().Foreground(ColorTealBright).Bold(true),

	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorTealDeep).
		Padding(0, 1),

	RiskCritical: lipgloss.NewStyle().Bold(true).Foreground(ColorRiskCritical),
	RiskHigh:     lipgloss.NewStyle().Foreground(ColorRiskHigh),
	RiskMedium:   lipgloss.NewStyle().Foreground(ColorRiskMedium),
	RiskLow:      lipgloss.NewStyle().Foreground(ColorRiskLow),
}

// RiskStyle returns the style for a risk level name. Unknown levels
// fall back to muted.
func RiskStyle(level string) lipgloss.Style {
	switch level {
	case "critical":
		return Styles.RiskCritical
	case "high":
		return Styles.RiskHigh
	case "medium":
		return Styles.RiskMedium
	case "low":
		return Styles.RiskLow
	default:
		return Styles.Muted
	}
}

// Title prints a styled title.
func Title(text string) {
	fmt.Fprintln(os.Stderr, Styles.Title.Render(text))
}

// Success prints a styled success message.
func Success(text string) {
	fmt.Fprintln(os.Stderr, Styles.Success.Render("✓ "+text))
}

// Warn prints a styled warning message.
func Warn(text string) {
	fmt.Fprintln(os.Stderr, Styles.Warning.Render("⚠ "+text))
}

// Error prints a styled error message.
func Error(text string) {
	fmt.Fprintln(os.Stderr, Styles.Error.Render("✗ "+text))
}
