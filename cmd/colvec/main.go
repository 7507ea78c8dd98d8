package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajitpratap0/colvec/pkg/config"
	"github.com/ajitpratap0/colvec/pkg/logger"
	"github.com/ajitpratap0/colvec/pkg/metrics"
)

var version = "0.1.0"

func main() {
	root := &cobra.Command{
		Use:   "colvec",
		Short: "colvec - typed columns over partitioned vectors",
		Long: `colvec builds typed columns (float, text, categorical, uuid, time)
over a partitioned vector store and prints their textual rendering.`,
		SilenceUsage: true,
	}

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "colvec v%s\n", version)
			fmt.Fprintf(cmd.OutOrStdout(), "Go version: %s\n", runtime.Version())
			fmt.Fprintf(cmd.OutOrStdout(), "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	})

	root.AddCommand(newBuildCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newBuildCmd() *cobra.Command {
	var opts buildOptions
	var configFile string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a column from the built-in generator",
		Long: `Build a column of the given type from a deterministic generator in which
every seventh row is NA, then print the first rows as "row<TAB>value".

Example:
  colvec build --type categorical --rows 100000 --rows-per-partition 1024 --head 10`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configFile)
			if err != nil {
				return fmt.Errorf("configuration error: %w", err)
			}
			if cmd.Flags().Changed("rows-per-partition") {
				cfg.Store.RowsPerPartition = opts.rowsPerPartition
			}
			if cmd.Flags().Changed("workers") {
				cfg.Store.Workers = opts.workers
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("configuration error: %w", err)
			}

			if err := logger.Init(cfg.Logging); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()
			metrics.SetEnabled(cfg.Metrics.Enabled)

			log := logger.With(zap.String("component", "colvec-cli"))
			return runBuild(cmd.Context(), cmd.OutOrStdout(), cfg.Store, log, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.typ, "type", "t", "float", "Column type (float, text, categorical, uuid, time)")
	cmd.Flags().Int64VarP(&opts.rows, "rows", "n", 1000, "Number of rows to build")
	cmd.Flags().IntVar(&opts.rowsPerPartition, "rows-per-partition", config.DefaultRowsPerPartition, "Rows per partition")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "Concurrent partition tasks (0 = number of CPUs)")
	cmd.Flags().IntVar(&opts.head, "head", 10, "Number of rows to print")
	cmd.Flags().BoolVar(&opts.arrow, "arrow", false, "Also print the column as an Arrow array")
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "Path to YAML configuration file (optional)")

	return cmd
}

// loadConfig reads the YAML configuration, or returns defaults when no file
// is given. The CLI logs errors only unless configured otherwise.
func loadConfig(path string) (*config.BaseConfig, error) {
	if path == "" {
		cfg := config.NewBaseConfig("colvec")
		cfg.Logging.Level = "error"
		cfg.Metrics.Enabled = false
		return cfg, nil
	}
	return config.Load(path)
}
