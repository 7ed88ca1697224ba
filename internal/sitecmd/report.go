package sitecmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gbhwdb/sitegen/internal/aggregate"
	"github.com/gbhwdb/sitegen/internal/page"
	"gopkg.in/yaml.v3"
)

// reportConfig is the configuration section of the warnings report.
type reportConfig struct {
	SubmissionsPath string `yaml:"submissionspath"`
	GamesPath       string `yaml:"gamespath"`
	Timestamp       string `yaml:"timestamp"`
}

// warningsReport is the YAML document written after a build with warnings.
type warningsReport struct {
	Config   reportConfig        `yaml:"config"`
	Warnings []aggregate.Warning `yaml:"warnings"`
}

// writeWarningsReport saves the run's warnings to a timestamped YAML file in
// the reports/ directory.
func writeWarningsReport(opts BuildOptions, warnings []aggregate.Warning) (string, error) {
	if err := os.MkdirAll("reports", 0755); err != nil {
		return "", fmt.Errorf("failed to create reports directory: %w", err)
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")

	report := warningsReport{
		Config: reportConfig{
			SubmissionsPath: opts.SubmissionsPath,
			GamesPath:       opts.GamesPath,
			Timestamp:       timestamp,
		},
		Warnings: warnings,
	}

	data, err := yaml.Marshal(&report)
	if err != nil {
		return "", fmt.Errorf("failed to marshal warnings: %w", err)
	}

	path := filepath.Join("reports", fmt.Sprintf("warnings_%s.yaml", timestamp))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}

	return path, nil
}

func printSummary(result *aggregate.Result, decls []page.Declaration, warnings []aggregate.Warning) {
	fmt.Println("\n========================================")
	fmt.Println("Build Summary")
	fmt.Println("========================================")
	fmt.Printf("Submissions:        %d\n", result.Submissions())
	fmt.Printf("Games:              %d\n", len(result.GameOrder))
	fmt.Printf("Populated Mappers:  %d\n", len(result.MapperOrder))
	fmt.Printf("Pages Rendered:     %d\n", len(decls))
	fmt.Printf("Warnings:           %d\n", len(warnings))

	if len(warnings) > 0 {
		fmt.Println()
		for _, w := range warnings {
			fmt.Printf("  %s: %s\n", w.Submission, w.Message)
		}
	}
	fmt.Println("========================================")
}
