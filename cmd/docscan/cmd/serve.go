package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rezonia/docscan/internal/config"
	"github.com/rezonia/docscan/internal/logging"
	"github.com/rezonia/docscan/internal/server"
)

var (
	serverDebug  bool
	readTimeout  time.Duration
	writeTimeout time.Duration
	requestBudget time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start an HTTP API server for scanning checks and receipts.

The API provides:
  POST /check    - extract a Check from the request body
  POST /receipt  - extract a Receipt from the request body
  POST /process  - same, with document type named by ?type=check|receipt
  GET  /health   - health check

Examples:
  docscan serve
  docscan serve --debug
  docscan serve --env-file .env.production`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().BoolVar(&serverDebug, "debug", false, "Enable debug mode (verbose logging, Gin request logger)")
	serveCmd.Flags().DurationVar(&readTimeout, "read-timeout", 30*time.Second, "HTTP read timeout")
	serveCmd.Flags().DurationVar(&writeTimeout, "write-timeout", 2*time.Minute, "HTTP write timeout")
	serveCmd.Flags().DurationVar(&requestBudget, "request-budget", 90*time.Second, "Per-request OCR+extraction deadline")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	if serverDebug {
		cfg.Debug = true
	}

	logger, err := logging.New(cfg.Environment)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer logger.Sync()

	httpCfg := server.Config{
		Address:       cfg.HTTPAddr,
		ReadTimeout:   readTimeout,
		WriteTimeout:  writeTimeout,
		RequestBudget: requestBudget,
		Debug:         cfg.Debug,
	}

	srv, err := server.New(httpCfg, cfg.ToFactoryConfig(), logger)
	if err != nil {
		return fmt.Errorf("build server: %w", err)
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		fmt.Println("\nShutting down server...")
		os.Exit(0)
	}()

	fmt.Printf("Starting server on %s (extractor: %s)\n", cfg.HTTPAddr, cfg.ExtractorKind)
	return srv.Run()
}
