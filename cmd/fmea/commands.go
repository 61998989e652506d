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
	"github.com/spf13/cobra"

	"github.com/AleutianAI/fmea-agent/pkg/logging"
)

// Exit codes shared across commands.
const (
	ExitOK             = 0
	ExitAboveThreshold = 1
	ExitError          = 2
)

// --- Global Command Variables ---
var (
	configPath string
	logLevel   string
	quiet      bool

	appConfig Config
	logger    *logging.Logger

	rootCmd = &cobra.Command{
		Use:   "fmea",
		Short: "Design FMEA agent applying IEC 60812:2018 / INCOSE methodology",
		Long: `fmea elicits failure modes for an engineering system, scores each
on the standard Severity x Occurrence x Detection scales, and emits a
validated DFMEA register as JSON plus a self-contained HTML matrix.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			appConfig = LoadConfig(configPath)

			// Flags win over the config file.
			level := appConfig.Logging.Level
			if level == "" || cmd.Flags().Changed("log-level") {
				level = logLevel
			}
			logger = logging.New(logging.Config{
				Level:   logging.ParseLevel(level),
				LogDir:  appConfig.Logging.Dir,
				Service: "fmea",
				Quiet:   quiet,
			})
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				logger.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml",
		"Path to the optional YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"Minimum log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false,
		"Suppress progress output on stderr; stdout still carries results")
}
