// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package elicit drafts candidate failure-mode records by sending the
// system description to an LLM backend. It carries no scoring logic:
// everything it returns is untrusted candidate data that the fmea
// package validates and re-scores.
package elicit

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/AleutianAI/fmea-agent/cmd/fmea/internal/fmea"
	"github.com/AleutianAI/fmea-agent/pkg/logging"
	"github.com/AleutianAI/fmea-agent/services/llm"
)

// Agent elicits draft failure-mode candidates from an LLM backend.
type Agent struct {
	client llm.Client
	logger *logging.Logger
}

// NewAgent creates an Agent. A nil logger falls back to the default
// stderr logger.
func NewAgent(client llm.Client, logger *logging.Logger) *Agent {
	if logger == nil {
		logger = logging.Default()
	}
	return &Agent{client: client, logger: logger}
}

// Elicit sends the system description and component list to the model
// and decodes the returned JSON array of candidates. The response may
// wrap the array in markdown fences or stray prose; both are
// tolerated. The returned candidates are unvalidated.
func (a *Agent) Elicit(ctx context.Context, in fmea.Input) ([]fmea.Candidate, error) {
	prompt, err := userPrompt(in)
	if err != nil {
		return nil, err
	}

	a.logger.Info("eliciting failure modes",
		"system", in.SystemName,
		"components", len(in.Components),
	)

	raw, err := a.client.Generate(ctx, prompt, llm.GenerationParams{System: SystemPrompt})
	if err != nil {
		return nil, fmt.Errorf("elicitation request failed: %w", err)
	}

	a.logger.Debug("received elicitation response", "chars", len(raw))

	candidates, err := ParseCandidates(raw)
	if err != nil {
		return nil, err
	}

	a.logger.Info("decoded candidate entries", "count", len(candidates))
	return candidates, nil
}

// userPrompt renders the per-run user message with the component list
// as indented JSON.
func userPrompt(in fmea.Input) (string, error) {
	componentsJSON, err := json.MarshalIndent(in.Components, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal components: %w", err)
	}

	scope := in.Scope
	if scope == "" {
		scope = fmea.ScopeDesign
	}

	return fmt.Sprintf(`Perform a complete Design FMEA for the following engineering system.

**System Name**: %s
**FMEA Scope**: %s
**System Description**: %s

**Components to Analyze**:
%s

Apply the IEC 60812:2018 rating scales from your instructions. Return ONLY the JSON array of FMEA entries, one object per failure mode.`,
		in.SystemName, scope, in.SystemDescription, componentsJSON), nil
}

// ParseCandidates extracts the JSON array from a model response and
// decodes it. The model is instructed to return only the array, but
// may occasionally include markdown fences; both cases are handled.
func ParseCandidates(raw string) ([]fmea.Candidate, error) {
	jsonStr, err := extractJSONArray(raw)
	if err != nil {
		return nil, err
	}

	var candidates []fmea.Candidate
	if err := json.Unmarshal([]byte(jsonStr), &candidates); err != nil {
		return nil, fmt.Errorf("failed to parse JSON from model response: %w (json: %s)", err, snippet(jsonStr))
	}
	return candidates, nil
}

// extractJSONArray strips markdown code fences and locates the
// outermost JSON array boundaries.
func extractJSONArray(raw string) (string, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	start := strings.Index(cleaned, "[")
	end := strings.LastIndex(cleaned, "]")
	if start == -1 || end == -1 || end < start {
		return "", fmt.Errorf("model response does not contain a JSON array (response: %s)", snippet(raw))
	}
	return cleaned[start : end+1], nil
}

// snippet truncates long payloads for error messages.
func snippet(s string) string {
	const max = 500
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
