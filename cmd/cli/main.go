package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/pflag"

	"smart-task-scheduler/config"
	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/task/delivery/cli"
	"smart-task-scheduler/internal/task/repository"
	memoryRepo "smart-task-scheduler/internal/task/repository/memory"
	sqliteRepo "smart-task-scheduler/internal/task/repository/sqlite"
	"smart-task-scheduler/internal/task/usecase"
	"smart-task-scheduler/pkg/datemath"
	"smart-task-scheduler/pkg/log"
)

const usage = `Usage:
  task-scheduler [flags]                      interactive session
  task-scheduler order --file tasks.yaml      order a batch file (yaml, json, toml)
  task-scheduler order --format json < f      order a batch read from stdin

Flags:
`

// main runs the terminal front end. Tasks live only as long as the process.
func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("task-scheduler", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.SetInterspersed(false)
	configPath := fs.StringP("config", "c", "", "path to a config file (default: ./config/config.yaml if present)")
	storage := fs.String("storage", "", "task storage: memory or sqlite (overrides config)")
	relative := fs.Bool("relative-dates", false, `also accept deadlines like "tomorrow" or "in 3 days"`)
	logLevel := fs.String("log-level", "error", "log level written to stderr (overrides logger.level)")
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		return 2
	}

	// 1. Configuration
	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
		return 1
	}
	if *storage != "" {
		cfg.Scheduler.Storage = *storage
	}
	if fs.Changed("relative-dates") {
		cfg.Scheduler.RelativeDates = *relative
	}

	// 2. Logger
	level := resolveLogLevel(cfg.Logger.Level, *logLevel, fs.Changed("log-level"))
	logger := log.Init(log.ZapConfig{
		Level:    level,
		Mode:     cfg.Logger.Mode,
		Encoding: log.EncodingConsole,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Task domain
	dateMathParser, err := datemath.NewParser(cfg.Scheduler.Timezone)
	if err != nil {
		fmt.Fprintf(stderr, "Invalid timezone: %v\n", err)
		return 1
	}
	taskRepo, closeRepo, err := newRepository(ctx, cfg.Scheduler.Storage, logger)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to initialize task storage: %v\n", err)
		return 1
	}
	defer closeRepo()

	taskUC := usecase.New(logger, taskRepo, dateMathParser, usecase.NewMetrics(prometheus.NewRegistry()), usecase.Options{
		RelativeDates: cfg.Scheduler.RelativeDates,
	})

	// 4. Run
	rest := fs.Args()
	if len(rest) > 0 && rest[0] == "order" {
		return runOrder(ctx, rest[1:], cli.New(logger, taskUC, ""), stdin, stdout, stderr)
	}
	if len(rest) > 0 {
		fmt.Fprintf(stderr, "unknown command %q\n", rest[0])
		fs.Usage()
		return 2
	}

	if err := cli.New(logger, taskUC, "> ").Serve(ctx, stdin, stdout); err != nil && ctx.Err() == nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func runOrder(ctx context.Context, args []string, h cli.Handler, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("order", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	file := fs.StringP("file", "f", "", "batch file; the format follows the extension")
	format := fs.String("format", "", "batch format when reading stdin: yaml, json or toml")
	if err := fs.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		return 2
	}

	in := stdin
	batchFormat := *format
	if *file != "" {
		f, err := os.Open(*file)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		defer f.Close()
		in = f

		if batchFormat == "" {
			if batchFormat, err = cli.FormatFromPath(*file); err != nil {
				fmt.Fprintf(stderr, "Error: %v\n", err)
				return 2
			}
		}
	}
	if batchFormat == "" {
		fmt.Fprintln(stderr, "Error: --format is required when reading stdin")
		return 2
	}

	records, err := cli.DecodeRecords(in, batchFormat)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	rejected, err := h.Order(ctx, records, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if rejected > 0 {
		return 1
	}
	return 0
}

func newRepository(ctx context.Context, storage string, l log.Logger) (repository.Repository, func(), error) {
	switch storage {
	case model.StorageMemory, "":
		return memoryRepo.New(l), func() {}, nil
	case model.StorageSQLite:
		db, err := sqliteRepo.OpenInMemory(ctx, "tasks")
		if err != nil {
			return nil, nil, err
		}
		return sqliteRepo.New(db, l), func() { _ = db.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage %q", storage)
	}
}

// resolveLogLevel prefers an explicit --log-level over logger.level.
func resolveLogLevel(configured, flagValue string, flagSet bool) string {
	if flagSet || configured == "" {
		return flagValue
	}
	return configured
}
