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
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/AleutianAI/fmea-agent/cmd/fmea/internal/elicit"
	"github.com/AleutianAI/fmea-agent/cmd/fmea/internal/fmea"
	"github.com/AleutianAI/fmea-agent/pkg/ux"
	"github.com/AleutianAI/fmea-agent/services/llm"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

var (
	analyzeExample  bool
	analyzeOutDir   string
	analyzeJSONOnly bool
	analyzeNoSave   bool
	analyzeScope    string
	analyzeBackend  string
	analyzeModel    string
	analyzeOffline  bool
	analyzeTimeout  int
)

// =============================================================================
// COMMAND DEFINITION
// =============================================================================

var analyzeCmd = &cobra.Command{
	Use:   "analyze [input.json...]",
	Short: "Run a Design FMEA for one or more system descriptions",
	Long: `Elicit failure modes for the described system, score each on the
IEC 60812:2018 Severity x Occurrence x Detection scales, and emit a
validated DFMEA register.

Input sources, in priority order:
  1. Input file arguments (multiple files are analyzed concurrently)
  2. JSON piped on stdin
  3. The built-in automotive disc brake example (--example or no input)

Examples:
  fmea analyze                        # Built-in brake system example
  fmea analyze input.json             # Analyze a system description
  fmea analyze a.json b.json          # Analyze several systems concurrently
  cat input.json | fmea analyze       # Pipe mode: JSON out, no file saves
  fmea analyze --offline input.json   # Score embedded candidates, no LLM call
  fmea analyze --backend openai       # Use the OpenAI backend

Requires ANTHROPIC_API_KEY (or OPENAI_API_KEY with --backend openai)
unless --offline is given.`,
	Run: runAnalyzeCommand,
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeExample, "example", false,
		"Run the built-in automotive brake system example")
	analyzeCmd.Flags().StringVar(&analyzeOutDir, "output-dir", ".",
		"Directory to write output files")
	analyzeCmd.Flags().BoolVar(&analyzeJSONOnly, "json-only", false,
		"Print JSON to stdout only; do not render the HTML report")
	analyzeCmd.Flags().BoolVar(&analyzeNoSave, "no-save", false,
		"Do not save output files; only print to stdout")
	analyzeCmd.Flags().StringVar(&analyzeScope, "scope", "",
		"Analysis scope override: design, process, system")
	analyzeCmd.Flags().StringVar(&analyzeBackend, "backend", "",
		"LLM backend: anthropic (default) or openai")
	analyzeCmd.Flags().StringVar(&analyzeModel, "model", "",
		"Model override for the selected backend")
	analyzeCmd.Flags().BoolVar(&analyzeOffline, "offline", false,
		"Skip elicitation; score the candidates array embedded in the input")
	analyzeCmd.Flags().IntVar(&analyzeTimeout, "timeout", 300,
		"Total timeout in seconds for elicitation")

	rootCmd.AddCommand(analyzeCmd)
}

// =============================================================================
// COMMAND IMPLEMENTATION
// =============================================================================

func runAnalyzeCommand(cmd *cobra.Command, args []string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(analyzeTimeout)*time.Second)
	defer cancel()

	pipeMode := stdinIsPiped() && len(args) == 0 && !analyzeExample

	inputs, names, err := collectInputs(args, pipeMode)
	if err != nil {
		ux.Error(err.Error())
		os.Exit(ExitError)
	}

	if analyzeScope != "" {
		scope, err := fmea.ParseScope(analyzeScope)
		if err != nil {
			ux.Error(err.Error())
			os.Exit(ExitError)
		}
		for i := range inputs {
			inputs[i].Scope = scope
		}
	}

	var client llm.Client
	if !analyzeOffline {
		client, err = llm.New(backendName(), modelName())
		if err != nil {
			ux.Error(err.Error())
			os.Exit(ExitError)
		}
	}

	// Pipe mode defaults to lean output: no file saves unless an
	// output directory was explicitly requested.
	save := !analyzeNoSave && !(pipeMode && !cmd.Flags().Changed("output-dir"))
	interactive := !pipeMode && !quiet && len(inputs) == 1

	if len(inputs) == 1 {
		if err := analyzeOne(ctx, inputs[0], names[0], client, analyzeOpts{
			save:        save,
			toStdout:    true,
			interactive: interactive,
		}); err != nil {
			ux.Error(err.Error())
			os.Exit(ExitError)
		}
		return
	}

	// Independent systems; each build is self-contained, so files are
	// analyzed concurrently and written under per-input names.
	g, gctx := errgroup.WithContext(ctx)
	for i := range inputs {
		in, name := inputs[i], names[i]
		g.Go(func() error {
			return analyzeOne(gctx, in, name, client, analyzeOpts{save: save})
		})
	}
	if err := g.Wait(); err != nil {
		ux.Error(err.Error())
		os.Exit(ExitError)
	}
}

// collectInputs resolves the input sources in priority order: file
// arguments, piped stdin, then the built-in example.
func collectInputs(args []string, pipeMode bool) ([]analyzeInput, []string, error) {
	switch {
	case len(args) > 0 && !analyzeExample:
		inputs := make([]analyzeInput, 0, len(args))
		names := make([]string, 0, len(args))
		for _, path := range args {
			in, err := loadInputFile(path)
			if err != nil {
				return nil, nil, err
			}
			inputs = append(inputs, in)
			names = append(names, path)
		}
		logger.Info("loaded input files", "count", len(inputs))
		return inputs, names, nil

	case pipeMode:
		in, err := decodeInput(os.Stdin, "stdin")
		if err != nil {
			return nil, nil, err
		}
		logger.Info("loaded input from stdin")
		return []analyzeInput{in}, []string{"stdin"}, nil

	default:
		logger.Info("using built-in example", "system", "Automotive Disc Brake System")
		return []analyzeInput{{Input: exampleInput()}}, []string{"example"}, nil
	}
}

type analyzeOpts struct {
	save        bool
	toStdout    bool
	interactive bool
}

// analyzeOne runs the full pipeline for a single system: elicitation
// (or embedded candidates when offline), register build, report
// rendering, and output.
func analyzeOne(ctx context.Context, in analyzeInput, name string, client llm.Client, opts analyzeOpts) error {
	log := logger.With("input", name)

	candidates := in.Candidates
	if !analyzeOffline {
		agent := elicit.NewAgent(client, log)

		var spinner *ux.Spinner
		if opts.interactive {
			spinner = ux.NewSpinner(fmt.Sprintf("Eliciting failure modes for %s...", in.SystemName))
			spinner.Start()
		}
		var err error
		candidates, err = agent.Elicit(ctx, in.Input)
		if spinner != nil {
			spinner.Stop()
		}
		if err != nil {
			return err
		}
	} else if len(candidates) == 0 {
		return fmt.Errorf("offline run for %s: input has no candidates array", name)
	}

	builder := fmea.NewBuilder(appConfig.scoringConfig())
	reg, report, err := builder.Build(in.Input, candidates, time.Time{})
	if err != nil {
		return fmt.Errorf("build register for %s: %w", name, err)
	}

	for _, rej := range report.Rejections {
		log.Warn("candidate rejected", "index", rej.Index, "reason", rej.Reason)
		if !quiet {
			ux.Warn(fmt.Sprintf("candidate %d rejected: %s", rej.Index, rej.Reason))
		}
	}
	for _, w := range report.Warnings {
		log.Warn("derived field overwritten",
			"entry", w.EntryID, "field", w.Warning.Field,
			"supplied", w.Warning.Supplied, "authoritative", w.Warning.Authoritative)
	}

	log.Info("register built",
		"entries", reg.Summary.TotalEntries,
		"critical", reg.Summary.CriticalCount,
		"max_rpn", reg.Summary.MaxRPN,
	)

	return emitOutputs(reg, name, opts)
}

// backendName resolves the backend from flag then config file.
func backendName() string {
	if analyzeBackend != "" {
		return analyzeBackend
	}
	return appConfig.Backend
}

// modelName resolves the model from flag then config file.
func modelName() string {
	if analyzeModel != "" {
		return analyzeModel
	}
	return appConfig.Model
}
