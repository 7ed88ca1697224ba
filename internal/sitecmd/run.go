// Package sitecmd drives the site build pipeline: load, classify, aggregate,
// build page declarations, render, report.
package sitecmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gbhwdb/sitegen/internal/aggregate"
	"github.com/gbhwdb/sitegen/internal/config"
	"github.com/gbhwdb/sitegen/internal/mapper"
	"github.com/gbhwdb/sitegen/internal/page"
	"github.com/gbhwdb/sitegen/internal/photos"
	"github.com/gbhwdb/sitegen/internal/render"
	"github.com/gbhwdb/sitegen/internal/submission"
)

// BuildOptions carries the flag values of the build command.
type BuildOptions struct {
	SubmissionsPath string
	GamesPath       string
	PhotoDir        string
	OutputDir       string
	Concurrency     int
}

// ExecuteBuild runs the whole pipeline. Data-integrity problems abort the
// run; unrecognized mapper revisions and board label mismatches are collected
// as warnings and written to a YAML report.
func ExecuteBuild(ctx context.Context, opts BuildOptions) error {
	slog.Info("Starting site build", "submissions", opts.SubmissionsPath, "games", opts.GamesPath, "output", opts.OutputDir)

	cfg, err := config.Load(opts.GamesPath)
	if err != nil {
		return fmt.Errorf("failed to load game configurations: %w", err)
	}
	slog.Info("Game configurations loaded", "games", cfg.Len())

	loader := submission.NewLoader(opts.SubmissionsPath, photos.NewResolver(opts.PhotoDir), opts.Concurrency)
	subs, err := loader.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load submissions: %w", err)
	}
	slog.Info("Submissions loaded", "count", len(subs))

	warnings := lintBoardLabels(subs)

	classifier := mapper.NewClassifier(cfg)
	result := aggregate.Group(subs, classifier)
	warnings = append(warnings, result.Warnings...)

	decls, err := page.Build(result, cfg)
	if err != nil {
		return fmt.Errorf("failed to build page declarations: %w", err)
	}

	renderer, err := render.New(opts.OutputDir, opts.Concurrency)
	if err != nil {
		return err
	}
	if err := renderer.RenderAll(decls); err != nil {
		return err
	}

	if len(warnings) > 0 {
		reportPath, err := writeWarningsReport(opts, warnings)
		if err != nil {
			return fmt.Errorf("failed to write warnings report: %w", err)
		}
		slog.Info("Warnings report written", "path", reportPath, "warnings", len(warnings))
	}

	printSummary(result, decls, warnings)

	return nil
}

// lintBoardLabels cross-checks each submission's declared layout against the
// layout inferred from its board label. A mismatch is a curation problem
// worth flagging, but not a build failure.
func lintBoardLabels(subs []*submission.Submission) []aggregate.Warning {
	var warnings []aggregate.Warning
	for _, sub := range subs {
		board := sub.Metadata.Board
		if board == nil || board.Kind == "" || board.Layout == "" {
			continue
		}
		inferred, ok := config.LayoutFromBoardLabel(board.Kind)
		if !ok {
			continue
		}
		if inferred != board.Layout {
			slog.Warn("Board label disagrees with declared layout",
				"submission", sub.Ref(), "label", board.Kind, "declared", board.Layout, "inferred", inferred)
			warnings = append(warnings, aggregate.Warning{
				Submission: sub.Ref(),
				Message:    fmt.Sprintf("board label %q implies layout %q, submission declares %q", board.Kind, inferred, board.Layout),
			})
		}
	}
	return warnings
}
