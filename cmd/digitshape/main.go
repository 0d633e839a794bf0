package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"

	"github.com/shapelab/digitshape/internal/config"
	"github.com/shapelab/digitshape/internal/dataset"
	"github.com/shapelab/digitshape/internal/logger"
	"github.com/shapelab/digitshape/internal/pipeline"
	"github.com/shapelab/digitshape/internal/report"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	// Check version and config-file flags before parsing other flags, so
	// the config file can supply the flag defaults.
	for _, arg := range args {
		if arg == "--version" || arg == "-v" {
			fmt.Printf("digitshape %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return nil
		}
	}

	cfg := config.Default()
	if path := configPath(args); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	fs := ff.NewFlagSet("digitshape")
	var (
		_          = fs.StringLong("config", "", "YAML config file (flags override its values)")
		datasetDir = fs.StringLong("dataset", cfg.DatasetRoot, "Labeled dataset root directory (one subdirectory per class)")
		threshold  = fs.Float64Long("threshold", cfg.Threshold, "Binarization threshold on a [0,1] intensity scale")
		otsu       = fs.BoolLong("otsu", "Choose the threshold per image with Otsu's method")
		invert     = fs.BoolLong("invert", "Treat bright pixels as foreground (white-on-black sources)")
		trimMargin = fs.IntLong("trim-margin", cfg.TrimMargin, "Background border kept when trimming silhouettes (-1 disables)")
		workers    = fs.IntLong("workers", cfg.Workers, "Maximum images processed in parallel")
		csvPath    = fs.StringLong("csv", cfg.CSVPath, "Write records as CSV to this file")
		jsonlPath  = fs.StringLong("jsonl", cfg.JSONLPath, "Write records as JSON lines to this file")
		plotPath   = fs.StringLong("plot", cfg.PlotPath, "Write the Euler number box plot as PNG to this file")
		logLevel   = fs.StringLong("log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
		_          = fs.BoolLong("version", "Show version information")
	)

	if err := ff.Parse(fs, args,
		ff.WithEnvVarPrefix("DIGITSHAPE"),
	); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", ffhelp.Flags(fs))
		return err
	}

	cfg.DatasetRoot = *datasetDir
	cfg.Threshold = *threshold
	if *otsu {
		cfg.Otsu = true
	}
	if *invert {
		cfg.Invert = true
	}
	cfg.TrimMargin = *trimMargin
	cfg.Workers = *workers
	cfg.CSVPath = *csvPath
	cfg.JSONLPath = *jsonlPath
	cfg.PlotPath = *plotPath
	cfg.LogLevel = *logLevel

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", ffhelp.Flags(fs))
		return err
	}

	log := logger.New(os.Stderr, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	samples, err := dataset.Scan(cfg.DatasetRoot)
	if err != nil {
		return err
	}
	log.Info().
		Str("dataset", cfg.DatasetRoot).
		Int("samples", len(samples)).
		Int("classes", len(dataset.Labels(samples))).
		Msg("dataset scanned")

	records, err := pipeline.New(cfg, log).Batch(ctx, samples)
	if err != nil {
		return err
	}

	if err := report.WriteTable(os.Stdout, records); err != nil {
		return err
	}

	groups := report.GroupEulerByLabel(records)
	fmt.Println()
	if err := report.WriteSummary(os.Stdout, groups); err != nil {
		return err
	}

	if cfg.CSVPath != "" {
		if err := writeFile(cfg.CSVPath, records, report.WriteCSV); err != nil {
			return err
		}
		log.Info().Str("path", cfg.CSVPath).Msg("wrote CSV")
	}
	if cfg.JSONLPath != "" {
		if err := writeFile(cfg.JSONLPath, records, report.WriteJSONL); err != nil {
			return err
		}
		log.Info().Str("path", cfg.JSONLPath).Msg("wrote JSON lines")
	}
	if cfg.PlotPath != "" {
		if err := report.SaveBoxPlot(cfg.PlotPath, groups, report.DefaultPlotOptions()); err != nil {
			return err
		}
		log.Info().Str("path", cfg.PlotPath).Msg("wrote box plot")
	}

	return nil
}

// configPath extracts the --config value ahead of full flag parsing.
func configPath(args []string) string {
	for i, arg := range args {
		switch {
		case arg == "--config" && i+1 < len(args):
			return args[i+1]
		case strings.HasPrefix(arg, "--config="):
			return strings.TrimPrefix(arg, "--config=")
		}
	}
	return os.Getenv("DIGITSHAPE_CONFIG")
}

// writeFile runs a record writer against a freshly created file.
func writeFile(path string, records []pipeline.DescriptorRecord, write func(w io.Writer, records []pipeline.DescriptorRecord) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := write(f, records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
