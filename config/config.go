// Package config provides configuration loading and validation for the
// scanogram command.
package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/andaru/scanogram/report"
)

// DefaultPath is the config file read when none is named
const DefaultPath = "scanogram.yaml"

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the root configuration structure
type Config struct {
	Scans  ScansConfig  `yaml:"scans"`
	Frames FramesConfig `yaml:"frames"`
	Output OutputConfig `yaml:"output"`
}

// ScansConfig configures project file discovery
type ScansConfig struct {
	Dir         string `yaml:"dir"`
	SkipInvalid bool   `yaml:"skip_invalid"`
}

// FramesConfig configures frame counting. Each frame is one file with
// the given extension.
type FramesConfig struct {
	DepthExt string `yaml:"depth_ext"`
	ColorExt string `yaml:"color_ext"`
}

// OutputConfig configures the report
type OutputConfig struct {
	Format string `yaml:"format"` // "text" or "json"
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	return parse(data)
}

// LoadWithFallback loads the file at path if it exists, otherwise
// builds the configuration from defaults and the environment
func LoadWithFallback(path string) (*Config, error) {
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}
	return parse(nil)
}

func parse(data []byte) (*Config, error) {
	data = []byte(os.ExpandEnv(string(data)))

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}
	applyEnvOverrides(&cfg)
	setDefaults(&cfg)
	if err := validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "validate config")
	}
	return &cfg, nil
}

// applyEnvOverrides applies SCANOGRAM_* environment variables, which
// always override the file
//
//	SCANOGRAM_SCANS_DIR          - directory searched for project files
//	SCANOGRAM_SCANS_SKIP_INVALID - skip files which fail to load
//	SCANOGRAM_FRAMES_DEPTH_EXT   - depth frame extension (default: .png)
//	SCANOGRAM_FRAMES_COLOR_EXT   - color frame extension (default: .jpg)
//	SCANOGRAM_OUTPUT_FORMAT      - text or json (default: text)
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SCANOGRAM_SCANS_DIR"); v != "" {
		cfg.Scans.Dir = v
	}
	if v := os.Getenv("SCANOGRAM_SCANS_SKIP_INVALID"); v != "" {
		cfg.Scans.SkipInvalid = parseBool(v)
	}
	if v := os.Getenv("SCANOGRAM_FRAMES_DEPTH_EXT"); v != "" {
		cfg.Frames.DepthExt = v
	}
	if v := os.Getenv("SCANOGRAM_FRAMES_COLOR_EXT"); v != "" {
		cfg.Frames.ColorExt = v
	}
	if v := os.Getenv("SCANOGRAM_OUTPUT_FORMAT"); v != "" {
		cfg.Output.Format = v
	}
}

func parseBool(v string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	return v == "true" || v == "1" || v == "yes" || v == "on"
}

func setDefaults(cfg *Config) {
	if cfg.Scans.Dir == "" {
		cfg.Scans.Dir = "."
	}
	if cfg.Frames.DepthExt == "" {
		cfg.Frames.DepthExt = report.DefaultDepthExt
	}
	if cfg.Frames.ColorExt == "" {
		cfg.Frames.ColorExt = report.DefaultColorExt
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = FormatText
	}
}

func validate(cfg *Config) error {
	switch cfg.Output.Format {
	case FormatText, FormatJSON:
	default:
		return errors.Errorf("output.format must be 'text' or 'json', got %q", cfg.Output.Format)
	}
	for name, ext := range map[string]string{
		"frames.depth_ext": cfg.Frames.DepthExt,
		"frames.color_ext": cfg.Frames.ColorExt,
	} {
		if !strings.HasPrefix(ext, ".") {
			return errors.Errorf("%s must start with '.', got %q", name, ext)
		}
	}
	return nil
}
