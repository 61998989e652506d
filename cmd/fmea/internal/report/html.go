// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package report renders a register as a self-contained HTML matrix.
// The output is a single portable file with inline CSS and no external
// assets, suitable for attaching to a design review.
package report

import (
	_ "embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/AleutianAI/fmea-agent/cmd/fmea/internal/fmea"
)

//go:embed fmea_matrix.html.tmpl
var matrixTemplate string

var tmpl = template.Must(template.New("fmea_matrix").Parse(matrixTemplate))

// RenderHTML renders the register as a complete HTML document. Entries
// are presented highest RPN first so the matrix reads top-down by
// priority.
func RenderHTML(reg *fmea.Register) (string, error) {
	if reg == nil {
		return "", fmt.Errorf("nil register")
	}

	data := struct {
		*fmea.Register
		Ranked []fmea.Entry
	}{
		Register: reg,
		Ranked:   reg.SortedEntries(fmea.SortByRPN, true),
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render HTML report: %w", err)
	}
	return buf.String(), nil
}
