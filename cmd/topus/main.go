package main

import (
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/topus-dev/topus/internal/config"
	"github.com/topus-dev/topus/internal/errors"
	"github.com/topus-dev/topus/internal/logging"
	"github.com/topus-dev/topus/internal/metrics"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ╔╦╗┌─┐┌─┐┬ ┬┌─┐
   ║ │ │├─┘│ │└─┐
   ╩ └─┘┴  └─┘└─┘
`

// globalFlags are shared by every command.
type globalFlags struct {
	configPath string
	logLevel   string
	logFormat  string
}

// env is what a command needs after configuration has been loaded.
type env struct {
	cfg      *config.Config
	logger   *slog.Logger
	registry *prometheus.Registry
	metrics  *metrics.Metrics
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var te *errors.Error
		if stderrors.As(err, &te) {
			errors.PrintError(te)
		} else {
			fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "topus",
		Short: "Build HTML documents from Go and YAML",
		Long: `Topus builds markup documents from a declarative tree.

Describe a page in YAML (or build one in Go with package dom),
then render it to a file, upload it to S3, or preview it with
live reload:

  • Ordered attributes and children, no surprises in output
  • Default HTML5 skeleton
  • Custom element registration snippets
  • File and s3:// destinations`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to topus.json (default: search from the working directory)")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, error (default from topus.json)")
	rootCmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "", "Log format: text or json (default from topus.json)")

	rootCmd.AddCommand(
		buildCmd(flags),
		serveCmd(flags),
		defineCmd(),
		versionCmd(),
	)
	return rootCmd
}

// load reads configuration and sets up logging and metrics.
func (f *globalFlags) load(stderr io.Writer) (*env, error) {
	var (
		cfg *config.Config
		err error
	)
	if f.configPath != "" {
		cfg, err = config.LoadFile(f.configPath)
	} else {
		cfg, err = config.LoadFromWorkingDir()
	}
	if err != nil {
		return nil, err
	}

	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}
	if f.logFormat != "" {
		cfg.Log.Format = f.logFormat
	}
	logger, err := logging.New(stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &env{
		cfg:      cfg,
		logger:   logger,
		registry: registry,
		metrics:  metrics.New(metrics.WithRegistry(registry), metrics.WithNamespace(cfg.Metrics.Namespace)),
	}, nil
}

func printBanner(w io.Writer) {
	fmt.Fprint(w, banner)
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}

func formatBytes(b int64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(b)/float64(div), "KMGTPE"[exp])
}
