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
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/AleutianAI/fmea-agent/cmd/fmea/internal/fmea"
)

// Config is the optional YAML configuration. Every field has a working
// default; a missing config file is not an error. Flags override file
// values.
type Config struct {
	Backend  string `yaml:"backend"`   // anthropic (default) or openai
	Model    string `yaml:"model"`     // backend model override
	IDPrefix string `yaml:"id_prefix"` // entry ID prefix, default DFMEA

	// Thresholds overrides the lower RPN bound per risk level. Omitted
	// levels keep the documented baseline.
	Thresholds *fmea.Thresholds `yaml:"thresholds"`

	Logging struct {
		Level string `yaml:"level"`
		Dir   string `yaml:"dir"`
	} `yaml:"logging"`
}

// LoadConfig reads the config file at path. A missing file yields the
// zero Config; a malformed file is reported on stderr and otherwise
// treated the same, so a bad config never blocks an analysis run.
func LoadConfig(path string) Config {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ignoring malformed config %s: %v\n", path, err)
		return Config{}
	}
	return cfg
}

// scoringConfig maps the file config onto the engine's scoring policy.
func (c Config) scoringConfig() fmea.Config {
	cfg := fmea.DefaultConfig()
	if c.IDPrefix != "" {
		cfg.IDPrefix = c.IDPrefix
	}
	if c.Thresholds != nil {
		t := *c.Thresholds
		base := fmea.DefaultThresholds()
		if t.Critical == 0 {
			t.Critical = base.Critical
		}
		if t.High == 0 {
			t.High = base.High
		}
		if t.Medium == 0 {
			t.Medium = base.Medium
		}
		cfg.Thresholds = t
	}
	return cfg
}
