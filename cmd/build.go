package cmd

import (
	"fmt"
	"os"

	"github.com/gbhwdb/sitegen/internal/sitecmd"
	"github.com/spf13/cobra"
)

func newBuildCmd() *cobra.Command {
	var opts sitecmd.BuildOptions

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the cartridge pages from submitted records",
		Long: `Build loads the staged cartridge submissions, resolves their photos,
classifies each submission's mapper chip, and renders the grouped results
(one index page plus one page per populated mapper) into the build directory.

The run aborts on data-integrity problems (missing game type, dangling photo
reference). Unrecognized mapper revisions are logged as warnings and collected
into a YAML report instead of failing the build.`,
		Example: `  # Build with defaults (data/submissions.jsonl, data/games.json)
  sitegen build

  # Build from a parquet export with 32 concurrent photo stats
  sitegen build --submissions data/submissions.parquet --concurrency 32`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(opts.SubmissionsPath); os.IsNotExist(err) {
				return fmt.Errorf("submissions file not found: %s", opts.SubmissionsPath)
			}
			if _, err := os.Stat(opts.GamesPath); os.IsNotExist(err) {
				return fmt.Errorf("game config file not found: %s", opts.GamesPath)
			}
			return sitecmd.ExecuteBuild(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.SubmissionsPath, "submissions", "data/submissions.jsonl", "Path to the staged submission records (.json, .jsonl or .parquet)")
	cmd.Flags().StringVar(&opts.GamesPath, "games", "data/games.json", "Path to the game configuration file")
	cmd.Flags().StringVar(&opts.PhotoDir, "photos", "data/photos", "Directory holding submission photos")
	cmd.Flags().StringVar(&opts.OutputDir, "output", "build", "Output directory for rendered pages")
	cmd.Flags().IntVar(&opts.Concurrency, "concurrency", 16, "Maximum concurrent photo stats and page renders")

	return cmd
}
