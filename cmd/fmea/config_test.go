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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/fmea-agent/cmd/fmea/internal/fmea"
)

func TestLoadConfig_MissingFile(t *testing.T) {
	cfg := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Equal(t, Config{}, cfg)
}

func TestLoadConfig_Valid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
backend: openai
model: gpt-4o
id_prefix: PFMEA
thresholds:
  critical: 500
logging:
  level: debug
`), 0o640))

	cfg := LoadConfig(path)
	assert.Equal(t, "openai", cfg.Backend)
	assert.Equal(t, "gpt-4o", cfg.Model)
	assert.Equal(t, "debug", cfg.Logging.Level)
	require.NotNil(t, cfg.Thresholds)
	assert.Equal(t, 500, cfg.Thresholds.Critical)
}

func TestLoadConfig_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("backend: [unclosed"), 0o640))

	// A bad config never blocks a run.
	assert.Equal(t, Config{}, LoadConfig(path))
}

func TestScoringConfig_Defaults(t *testing.T) {
	cfg := Config{}.scoringConfig()
	assert.Equal(t, fmea.DefaultConfig(), cfg)
}

// TestScoringConfig_PartialThresholds verifies omitted levels fall back
// to the documented baseline instead of zero bounds.
func TestScoringConfig_PartialThresholds(t *testing.T) {
	c := Config{
		IDPrefix:   "PFMEA",
		Thresholds: &fmea.Thresholds{Critical: 500},
	}

	cfg := c.scoringConfig()
	assert.Equal(t, "PFMEA", cfg.IDPrefix)
	assert.Equal(t, fmea.Thresholds{Critical: 500, High: 200, Medium: 100}, cfg.Thresholds)
}
