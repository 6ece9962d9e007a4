// =============================================================================
// Subcontract Valuations Dashboard - Configuration Module
// =============================================================================
//
// Loads the application configuration from a YAML file, applies defaults
// for anything unset, and validates the result. The configuration file is
// optional: a missing file yields the defaults, so `subdash` runs out of
// the box.
//
// =============================================================================

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the application settings.
type Config struct {
	// DataFile is the JSON snapshot holding the persisted record set.
	// Default: "./data/subcontratos.json"
	DataFile string `yaml:"data_file"`

	// SeedWhenEmpty falls back to the built-in seed record when no usable
	// snapshot exists. Default: true
	SeedWhenEmpty bool `yaml:"seed_when_empty"`

	// PreferredSheets is the sheet-name preference order when reading a
	// workbook. Default: ["Subcontratos", "DashboardData"]
	PreferredSheets []string `yaml:"preferred_sheets"`

	// StrictLayoutDetection additionally requires the "# Val." header
	// marker before a sheet is parsed as the administrator layout.
	// Default: false (permissive)
	StrictLayoutDetection bool `yaml:"strict_layout_detection"`

	// ArchiveDir receives successfully imported workbooks.
	// Default: "./imported"
	ArchiveDir string `yaml:"archive_dir"`

	// ArchiveOnImport moves workbooks to ArchiveDir after a successful
	// import. Default: false
	ArchiveOnImport bool `yaml:"archive_on_import"`

	// ListenAddr is the address of the JSON API served by `subdash serve`.
	// Default: ":8310"
	ListenAddr string `yaml:"listen_addr"`

	// CriticalLimit caps the critical-contracts view. Default: 10
	CriticalLimit int `yaml:"critical_limit"`
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the configuration at path. A missing file is not an error;
// it yields the defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{SeedWhenEmpty: true}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults only.
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyDefaults(cfg)
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// applyDefaults sets default values for any unset options.
func applyDefaults(cfg *Config) {
	if cfg.DataFile == "" {
		cfg.DataFile = filepath.Join(".", "data", "subcontratos.json")
	}
	if len(cfg.PreferredSheets) == 0 {
		cfg.PreferredSheets = []string{"Subcontratos", "DashboardData"}
	}
	if cfg.ArchiveDir == "" {
		cfg.ArchiveDir = filepath.Join(".", "imported")
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8310"
	}
	if cfg.CriticalLimit == 0 {
		cfg.CriticalLimit = 10
	}
}

// validate checks the configuration and creates the data directory when it
// does not exist yet.
func validate(cfg *Config) error {
	dir := filepath.Dir(cfg.DataFile)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create data directory %s: %w", dir, err)
		}
	}
	return nil
}
