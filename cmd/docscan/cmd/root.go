package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"

	envFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "docscan",
	Short: "Extract structured data from photographed checks and receipts",
	Long: `docscan turns a photographed check or receipt into structured,
schema-validated JSON. A two-stage pipeline runs a vision model to
transcribe the image to Markdown, then an extraction model to pull out
typed fields, auditing the result for hallucinated placeholder values
before fusing a confidence score.

Examples:
  # Start the HTTP API server
  docscan serve

  # Scan a single local file
  docscan scan check receipt.jpg`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Path to a .env file to load")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

func printVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
