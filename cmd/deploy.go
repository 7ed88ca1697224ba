package cmd

import (
	"fmt"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gbhwdb/sitegen/internal/deploy"
	"github.com/spf13/cobra"
)

func newDeployCmd() *cobra.Command {
	var buildDir string
	var bucket string
	var region string

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Sync the build directory to the site's S3 bucket",
		Long: `Deploy scans the build directory, compares each file's MD5 against the
ETags of the objects already in the bucket, and uploads only what changed.
Remote objects that no longer exist locally are deleted once they have been
stale for four weeks.`,
		Example: `  # Deploy using the S3_BUCKET environment variable
  sitegen deploy

  # Deploy an alternate build to an explicit bucket
  sitegen deploy --build out --bucket my-staging-bucket`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if bucket == "" {
				bucket = os.Getenv("S3_BUCKET")
			}
			if bucket == "" {
				return fmt.Errorf("no bucket configured: pass --bucket or set S3_BUCKET")
			}
			if _, err := os.Stat(buildDir); os.IsNotExist(err) {
				return fmt.Errorf("build directory not found: %s (run \"sitegen build\" first)", buildDir)
			}

			cfg, err := awsconfig.LoadDefaultConfig(cmd.Context(), awsconfig.WithRegion(region))
			if err != nil {
				return fmt.Errorf("failed to load AWS config: %w", err)
			}

			return deploy.Sync(cmd.Context(), s3.NewFromConfig(cfg), bucket, buildDir)
		},
	}

	cmd.Flags().StringVar(&buildDir, "build", "build", "Directory containing the rendered site")
	cmd.Flags().StringVar(&bucket, "bucket", "", "Target S3 bucket (defaults to S3_BUCKET)")
	cmd.Flags().StringVar(&region, "region", "eu-west-1", "AWS region of the bucket")

	return cmd
}
