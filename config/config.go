// Package config holds the optional YAML run configuration. Everything has an
// explicit default, so the converter runs with no config file at all; when a
// file is given it is parsed strictly and unknown keys are rejected.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Sentinel errors for config loading.
var (
	ErrConfigNotFound = errors.New("config: file not found")
	ErrConfigParse    = errors.New("config: failed to parse")
)

// Config is the full run configuration.
type Config struct {
	Record     RecordConfig     `yaml:"record"`
	Fonts      FontConfig       `yaml:"fonts"`
	Page       PageConfig       `yaml:"page"`
	Barcode    BarcodeConfig    `yaml:"barcode"`
	Letterhead LetterheadConfig `yaml:"letterhead"`
	Log        LogConfig        `yaml:"log"`
}

// RecordConfig locates the persisted invoice record.
type RecordConfig struct {
	Path string `yaml:"path"`
}

// FontConfig locates the document font family.
type FontConfig struct {
	Dir    string `yaml:"dir"`
	Family string `yaml:"family"`
}

// PageConfig sets the page geometry.
type PageConfig struct {
	Size   string  `yaml:"size"`   // A4, Letter, Legal
	Margin float64 `yaml:"margin"` // uniform, in millimeters
}

// BarcodeConfig enables the machine-readable corner mark.
type BarcodeConfig struct {
	Enabled bool   `yaml:"enabled"`
	Format  string `yaml:"format"` // qr, pdf417, code128
}

// LetterheadConfig names an existing PDF drawn beneath every page.
type LetterheadConfig struct {
	Path string `yaml:"path"`
}

// LogConfig configures the CLI's logger.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console or json
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		Record:  RecordConfig{Path: "invoice.json"},
		Fonts:   FontConfig{Dir: "./fonts", Family: "LiberationSans"},
		Page:    PageConfig{Size: "A4", Margin: 10},
		Barcode: BarcodeConfig{Enabled: false, Format: "qr"},
		Log:     LogConfig{Level: "info", Format: "console"},
	}
}

// Load reads and strictly parses the configuration at path, layered over the
// defaults. A missing file is an error; the caller decides whether a missing
// default-location file is fatal.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.UnmarshalWithOptions(data, cfg, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	return cfg, nil
}
