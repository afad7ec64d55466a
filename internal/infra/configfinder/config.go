package configfinder

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/unitconv/internal/domain"
	"github.com/aalvaropc/unitconv/internal/ports"
	"gopkg.in/yaml.v3"
)

// LoadConfig loads unitconv.yaml from root and applies it over the defaults.
// The defaults are returned alongside any error.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFileName)
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "configfinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "configfinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	if y.Unitconv.Temperature.Enabled != nil {
		cfg.Temperature.Enabled = *y.Unitconv.Temperature.Enabled
	}
	if y.Unitconv.History.Enabled != nil {
		cfg.History.Enabled = *y.Unitconv.History.Enabled
	}
	if f := strings.TrimSpace(y.Unitconv.History.File); f != "" {
		cfg.History.File = f
	}
	if y.Unitconv.Prompt != "" {
		cfg.Prompt = y.Unitconv.Prompt
	}

	return cfg, nil
}

// Resolved is the outcome of Resolve.
type Resolved struct {
	Root   string
	Config domain.Config
	Found  bool // false when no unitconv.yaml exists above the start dir
}

// Resolve asks loc for the config root above startDir and loads it. A nil
// loc walks the filesystem with a Finder. When no unitconv.yaml is found,
// Root is startDir and the defaults apply.
func Resolve(loc ports.ConfigLocator, startDir string) (Resolved, error) {
	if loc == nil {
		loc = NewFinder()
	}
	root, err := loc.FindRoot(startDir)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			abs, absErr := filepath.Abs(startDir)
			if absErr != nil {
				abs = startDir
			}
			return Resolved{Root: abs, Config: domain.DefaultConfig()}, nil
		}
		return Resolved{Config: domain.DefaultConfig()}, err
	}

	cfg, err := LoadConfig(root)
	return Resolved{Root: root, Config: cfg, Found: true}, err
}

type yamlConfig struct {
	Unitconv struct {
		Temperature struct {
			Enabled *bool `yaml:"enabled"`
		} `yaml:"temperature"`

		History struct {
			Enabled *bool  `yaml:"enabled"`
			File    string `yaml:"file"`
		} `yaml:"history"`

		Prompt string `yaml:"prompt"`
	} `yaml:"unitconv"`
}
