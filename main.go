package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"fittracker/internal/config"
	"fittracker/internal/display"
	"fittracker/internal/service"
	"fittracker/internal/store"
	"fittracker/internal/workout"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

type options struct {
	configPath string
	initConfig bool
	style      string
	chart      bool
	history    bool
	verbose    bool
	limit      int
}

func parseFlags(args []string, stderr io.Writer) (options, []string, error) {
	var opts options
	fs := flag.NewFlagSet("fittracker", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "path to config file (default ~/.fittracker/config.json)")
	fs.BoolVar(&opts.initConfig, "init", false, "write an example config file and exit")
	fs.StringVar(&opts.style, "style", "", `output style: "plain" or "card"`)
	fs.BoolVar(&opts.chart, "chart", false, "plot calories after the run")
	fs.BoolVar(&opts.history, "history", false, "store reports in the local history")
	fs.BoolVar(&opts.verbose, "v", false, "debug logging")
	fs.IntVar(&opts.limit, "n", 10, "number of reports shown by the history command")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: fittracker [flags] [history]\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return opts, nil, err
	}
	return opts, fs.Args(), nil
}

// parseHistoryFlags parses the flags following the history command.
// limit is the value given before the command, if any.
func parseHistoryFlags(args []string, limit int, stderr io.Writer) (int, error) {
	fs := flag.NewFlagSet("history", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&limit, "n", limit, "number of reports to show")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: fittracker [flags] history [-n N]\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 0, err
	}
	if fs.NArg() > 0 {
		return 0, fmt.Errorf("unexpected arguments after history: %q", fs.Args())
	}
	return limit, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	ctx := context.Background()

	opts, rest, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	if opts.initConfig {
		written, err := config.CreateExample(opts.configPath)
		if err != nil {
			return fmt.Errorf("creating example config: %w", err)
		}
		if written {
			fmt.Fprintln(stderr, display.RenderOK("Example config written."))
		} else {
			fmt.Fprintln(stderr, "Config file already exists, leaving it unchanged.")
		}
		return nil
	}

	// Load configuration
	cfg, err := config.LoadOrDefault(opts.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyFlags(cfg, opts)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	level, _ := cfg.Log.SlogLevel()
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	renderer := display.NewRenderer(stdout, cfg.Display.Style == config.StyleCard, cfg.Display.Chart)

	if len(rest) > 0 {
		if rest[0] != "history" {
			return fmt.Errorf("unknown command %q", rest[0])
		}
		limit, err := parseHistoryFlags(rest[1:], opts.limit, stderr)
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		if err != nil {
			return err
		}
		return showHistory(ctx, cfg, stdout, renderer, limit)
	}

	// Open history only when enabled
	var recorder service.Recorder
	if cfg.History.Enabled {
		db, err := openHistory(cfg)
		if err != nil {
			return err
		}
		defer db.Close()
		recorder = db
	}

	policy, _ := service.ParseFailurePolicy(cfg.Tracker.OnError)
	tracker := service.NewTrackerService(logger, policy, recorder)

	var printed []workout.InfoMessage
	var writeErr error
	res, runErr := tracker.Run(ctx, packages(cfg), func(r service.Result) {
		printed = append(printed, r.Info)
		if err := renderer.Report(r.Info); err != nil && writeErr == nil {
			writeErr = err
		}
	})
	if writeErr != nil {
		return fmt.Errorf("writing report: %w", writeErr)
	}

	// Under abort the returned error already names the failing package
	if policy == service.SkipOnError {
		for _, f := range res.Failures {
			fmt.Fprintln(stderr, display.RenderFailure(f.Package.Code, f.Err))
		}
	}
	if err := renderer.Summary(printed); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	return runErr
}

func applyFlags(cfg *config.Config, opts options) {
	if opts.style != "" {
		cfg.Display.Style = opts.style
	}
	if opts.chart {
		cfg.Display.Chart = true
	}
	if opts.history {
		cfg.History.Enabled = true
	}
	if opts.verbose {
		cfg.Log.Level = "debug"
	}
}

// packages returns the configured packages, or the built-in samples
func packages(cfg *config.Config) []service.Package {
	if len(cfg.Packages) == 0 {
		return service.DefaultPackages
	}
	pkgs := make([]service.Package, len(cfg.Packages))
	for i, p := range cfg.Packages {
		pkgs[i] = service.Package{Code: p.Type, Fields: p.Fields}
	}
	return pkgs
}

func openHistory(cfg *config.Config) (*store.Store, error) {
	path, err := cfg.HistoryPath()
	if err != nil {
		return nil, fmt.Errorf("getting history path: %w", err)
	}
	db, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening history: %w", err)
	}
	return db, nil
}

func showHistory(ctx context.Context, cfg *config.Config, stdout io.Writer, renderer *display.Renderer, limit int) error {
	db, err := openHistory(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	history := service.NewHistoryService(db)
	msgs, err := history.Recent(ctx, limit)
	if errors.Is(err, store.ErrNoReports) {
		fmt.Fprintln(stdout, "No reports stored yet. Run with -history to record some.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading history: %w", err)
	}

	for _, m := range msgs {
		if err := renderer.Report(m); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	}
	if err := renderer.Summary(msgs); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}

	totals, err := history.CaloriesByType(ctx)
	if err != nil {
		return fmt.Errorf("reading totals: %w", err)
	}
	return renderer.Totals(totals)
}
