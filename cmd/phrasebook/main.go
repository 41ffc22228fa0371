// Command phrasebook converts the Somali/English vocabulary CSV into the
// phrase-book JSON loaded by the viewer. Linked phrases are grouped into
// buckets and every phrase of a bucket becomes one record.
//
// Flags:
//
//	--input            vocabulary CSV (default: stdin)
//	--output           phrase-book JSON (default: stdout)
//	--config           path to YAML config file
//	--italic-conflict  last, first or any
//	--indent           indent the JSON output
//	--dry-run          parse and cluster without writing output
//	--version          print version and exit
//
// Flags override config values only when given on the command line.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/somali-phrasebook/internal/app"
	"github.com/heartmarshall/somali-phrasebook/internal/app/builder"
	"github.com/heartmarshall/somali-phrasebook/internal/app/builder/phrasejson"
	"github.com/heartmarshall/somali-phrasebook/internal/app/builder/vocabcsv"
	"github.com/heartmarshall/somali-phrasebook/internal/config"
)

// Compile-time interface assertions.
var (
	_ builder.LinkSource = (*vocabcsv.Source)(nil)
	_ builder.RecordSink = (*phrasejson.Sink)(nil)
)

// cliFlags holds parsed command-line flags and which of them were set.
type cliFlags struct {
	input          string
	output         string
	configPath     string
	italicConflict string
	indent         bool
	dryRun         bool
	version        bool

	set map[string]bool
}

func parseFlags(args []string) (cliFlags, error) {
	var f cliFlags
	fs := flag.NewFlagSet("phrasebook", flag.ContinueOnError)
	fs.StringVar(&f.input, "input", "", "vocabulary CSV path (default: stdin)")
	fs.StringVar(&f.output, "output", "", "phrase-book JSON path (default: stdout)")
	fs.StringVar(&f.configPath, "config", "", "path to YAML config file")
	fs.StringVar(&f.italicConflict, "italic-conflict", "", "italic conflict policy: last, first or any")
	fs.BoolVar(&f.indent, "indent", false, "indent the JSON output")
	fs.BoolVar(&f.dryRun, "dry-run", false, "parse and cluster without writing output")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return cliFlags{}, err
	}

	f.set = make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })
	return f, nil
}

// apply overrides cfg with every flag given explicitly.
func (f cliFlags) apply(cfg *config.BuildConfig) {
	if f.set["input"] {
		cfg.InputPath = f.input
	}
	if f.set["output"] {
		cfg.OutputPath = f.output
	}
	if f.set["italic-conflict"] {
		cfg.ItalicConflict = f.italicConflict
	}
	if f.set["indent"] {
		cfg.Indent = f.indent
	}
}

func main() {
	flags, err := parseFlags(os.Args[1:])
	if err != nil {
		// flag already printed the problem and usage.
		os.Exit(2)
	}

	if flags.version {
		fmt.Println(app.BuildVersion())
		return
	}

	cfg, err := config.Load(flags.configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	flags.apply(&cfg.Build)

	logger := app.NewLogger(os.Stderr, cfg.Log)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger, cfg.Build, flags.dryRun, os.Stdin, os.Stdout); err != nil {
		logger.Error("build failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// run builds the phrase-book. Input comes from cfg.InputPath or stdin and
// output goes to cfg.OutputPath or stdout. Nothing is written unless the
// whole build succeeds.
func run(ctx context.Context, logger *slog.Logger, cfg config.BuildConfig, dryRun bool, stdin io.Reader, stdout io.Writer) error {
	logger.Info("building phrase-book",
		slog.String("version", app.BuildVersion()),
		slog.String("input", displayPath(cfg.InputPath, "stdin")),
		slog.String("output", displayPath(cfg.OutputPath, "stdout")),
	)

	in := stdin
	if cfg.InputPath != "" {
		f, err := os.Open(cfg.InputPath)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	var out bytes.Buffer

	pipeline := builder.NewPipeline(logger,
		vocabcsv.NewSource(in, vocabcsv.Options{
			ItalicMarker: cfg.ItalicMarker,
			KeepHeader:   cfg.KeepHeader,
		}),
		phrasejson.NewSink(&out, cfg.Indent),
		builder.Options{
			ItalicPolicy: cfg.ItalicPolicy(),
			DryRun:       dryRun,
		},
	)
	if _, err := pipeline.Run(ctx); err != nil {
		return err
	}
	if dryRun {
		return nil
	}

	if cfg.OutputPath == "" {
		if _, err := stdout.Write(out.Bytes()); err != nil {
			return fmt.Errorf("write stdout: %w", err)
		}
		return nil
	}
	if err := os.WriteFile(cfg.OutputPath, out.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func displayPath(path, fallback string) string {
	if path == "" {
		return fallback
	}
	return path
}
