// Command invoicepdf converts one persisted invoice record into a paginated
// PDF document.
//
// The pipeline is one-shot and synchronous: load the JSON record, assemble
// the styled block tree, render it to invoice_<number>.pdf in the working
// directory. Any failure aborts the run with a diagnostic; there is no
// partial output and no retry.
//
// Usage:
//
//	invoicepdf [--config file] [--input invoice.json] [--font-dir ./fonts]
//	           [--font-family LiberationSans] [--output-dir .] [--verbose]
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/lvillar/invoicepdf/assemble"
	"github.com/lvillar/invoicepdf/config"
	"github.com/lvillar/invoicepdf/invoice"
	"github.com/lvillar/invoicepdf/render"
	"github.com/lvillar/invoicepdf/style"
)

const completionMessage = "Hello, invoice finish created!"

func main() {
	flags := flag.NewFlagSet("invoicepdf", flag.ExitOnError)
	configPath := flags.String("config", "", "path to a YAML config file")
	inputPath := flags.String("input", "", "path to the invoice record (overrides config)")
	fontDir := flags.String("font-dir", "", "directory holding the document fonts (overrides config)")
	fontFamily := flags.String("font-family", "", "font family name (overrides config)")
	outputDir := flags.String("output-dir", ".", "directory the PDF is written to")
	verbose := flags.BoolP("verbose", "v", false, "enable debug logging")
	_ = flags.Parse(os.Args[1:])

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	applyFlagOverrides(cfg, *inputPath, *fontDir, *fontFamily)
	if *verbose {
		cfg.Log.Level = "debug"
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, *outputDir, logger); err != nil {
		logger.Fatal("conversion failed", zap.Error(err))
	}

	fmt.Println(completionMessage)
}

// loadConfig resolves the run configuration: defaults when no file is named,
// a strictly parsed file otherwise.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func applyFlagOverrides(cfg *config.Config, input, fontDir, fontFamily string) {
	if input != "" {
		cfg.Record.Path = input
	}
	if fontDir != "" {
		cfg.Fonts.Dir = fontDir
	}
	if fontFamily != "" {
		cfg.Fonts.Family = fontFamily
	}
}

// run executes the load, assemble, render pipeline.
func run(cfg *config.Config, outputDir string, logger *zap.Logger) error {
	inv, err := invoice.LoadFile(cfg.Record.Path)
	if err != nil {
		return err
	}
	logger.Debug("record loaded",
		zap.String("path", cfg.Record.Path),
		zap.String("number", inv.Number),
		zap.Int("items", len(inv.Items)),
		zap.Int("transactions", len(inv.Transactions.Items)))

	blocks, err := assemble.Invoice(inv, style.Default())
	if err != nil {
		return err
	}
	logger.Debug("document assembled", zap.Int("blocks", len(blocks)))

	opts := []render.Option{
		render.WithPageSize(cfg.Page.Size),
		render.WithMargin(cfg.Page.Margin),
		render.WithFontDir(cfg.Fonts.Dir),
		render.WithFontFamily(cfg.Fonts.Family),
	}
	if cfg.Barcode.Enabled {
		opts = append(opts, render.WithBarcode(render.BarcodeFormat(cfg.Barcode.Format)))
	}
	if cfg.Letterhead.Path != "" {
		opts = append(opts, render.WithLetterhead(cfg.Letterhead.Path))
	}

	out := filepath.Join(outputDir, render.OutputName(inv.Number))
	doc := render.Document{
		Title:   fmt.Sprintf("Invoice - %s", inv.Number),
		Barcode: inv.Number,
		Blocks:  blocks,
	}
	if err := render.New(opts...).RenderFile(out, doc); err != nil {
		return err
	}
	logger.Info("invoice rendered", zap.String("output", out))
	return nil
}

var errInvalidLogConfig = errors.New("invalid log configuration")

// newLogger builds the CLI's structured logger: a console encoder by default,
// JSON when configured.
func newLogger(cfg config.LogConfig) (*zap.Logger, error) {
	var zcfg zap.Config
	if cfg.Format == "json" {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}

	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: level %q", errInvalidLogConfig, cfg.Level)
	}
	zcfg.Level = level

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidLogConfig, err)
	}
	return logger, nil
}
