package config

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/gift-sleigh/internal/distributor"
	"github.com/eugenenazirov/gift-sleigh/internal/logging"
)

const (
	defaultSantaName  = "Santa"
	defaultCapacity   = 10.0
	defaultVisitBurst = 1
)

// Config aggregates runtime configuration resolved from multiple sources.
// Precedence: CLI flags > YAML config > Environment variables > Defaults
type Config struct {
	SantaName       string
	Capacity        float64
	Policy          string
	ScenarioFile    string
	VisitsPerSecond float64 // 0 visits as fast as possible
	VisitBurst      int
	LogFormat       string
}

// yamlConfig represents the YAML configuration file structure.
type yamlConfig struct {
	SantaName    string     `yaml:"santa_name"`
	Capacity     float64    `yaml:"capacity"`
	Policy       string     `yaml:"policy"`
	ScenarioFile string     `yaml:"scenario_file"`
	Pacing       yamlPacing `yaml:"pacing"`
	LogFormat    string     `yaml:"log_format"`
}

// yamlPacing represents the pacing section in YAML.
type yamlPacing struct {
	VisitsPerSecond *float64 `yaml:"visits_per_second"`
	Burst           *int     `yaml:"burst"`
}

// envConfig lists the environment variables understood by Load.
type envConfig struct {
	SantaName       *string  `env:"SLEIGH_SANTA_NAME"`
	Capacity        *float64 `env:"SLEIGH_CAPACITY"`
	Policy          *string  `env:"SLEIGH_POLICY"`
	ScenarioFile    *string  `env:"SLEIGH_SCENARIO_FILE"`
	VisitsPerSecond *float64 `env:"SLEIGH_VISITS_PER_SECOND"`
	VisitBurst      *int     `env:"SLEIGH_VISIT_BURST"`
	LogFormat       *string  `env:"SLEIGH_LOG_FORMAT"`
}

// CLIOverrides holds command-line flag overrides.
type CLIOverrides struct {
	ConfigFile      string
	SantaName       *string
	Capacity        *float64
	Policy          *string
	ScenarioFile    *string
	VisitsPerSecond *float64
	LogFormat       *string
}

// Load extracts configuration from multiple sources with precedence:
// CLI flags > YAML config > Environment variables > Defaults
func Load(overrides *CLIOverrides) (Config, error) {
	cfg := defaultConfig()

	// Apply environment variables first so the YAML file can override them
	if err := applyEnvConfig(&cfg); err != nil {
		return Config{}, fmt.Errorf("load environment: %w", err)
	}

	if overrides != nil && overrides.ConfigFile != "" {
		yamlCfg, err := loadFromFile(overrides.ConfigFile)
		if err != nil {
			return Config{}, fmt.Errorf("load YAML config: %w", err)
		}
		applyYAMLConfig(&cfg, yamlCfg)
	}

	// Apply CLI overrides (highest precedence)
	if overrides != nil {
		applyCLIOverrides(&cfg, overrides)
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// defaultConfig returns a Config with default values.
func defaultConfig() Config {
	return Config{
		SantaName:       defaultSantaName,
		Capacity:        defaultCapacity,
		Policy:          distributor.PolicyLightest,
		VisitsPerSecond: 0,
		VisitBurst:      defaultVisitBurst,
		LogFormat:       logging.FormatJSON,
	}
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &yamlCfg, nil
}

// applyYAMLConfig applies YAML configuration to the Config struct.
func applyYAMLConfig(cfg *Config, yamlCfg *yamlConfig) {
	if yamlCfg.SantaName != "" {
		cfg.SantaName = yamlCfg.SantaName
	}
	if yamlCfg.Capacity != 0 {
		cfg.Capacity = yamlCfg.Capacity
	}
	if yamlCfg.Policy != "" {
		cfg.Policy = yamlCfg.Policy
	}
	if yamlCfg.ScenarioFile != "" {
		cfg.ScenarioFile = yamlCfg.ScenarioFile
	}
	if yamlCfg.Pacing.VisitsPerSecond != nil {
		cfg.VisitsPerSecond = *yamlCfg.Pacing.VisitsPerSecond
	}
	if yamlCfg.Pacing.Burst != nil {
		cfg.VisitBurst = *yamlCfg.Pacing.Burst
	}
	if yamlCfg.LogFormat != "" {
		cfg.LogFormat = yamlCfg.LogFormat
	}
}

// applyEnvConfig applies environment variable configuration.
func applyEnvConfig(cfg *Config) error {
	var e envConfig
	if err := env.Parse(&e); err != nil {
		return err
	}

	if e.SantaName != nil && strings.TrimSpace(*e.SantaName) != "" {
		cfg.SantaName = strings.TrimSpace(*e.SantaName)
	}
	if e.Capacity != nil {
		cfg.Capacity = *e.Capacity
	}
	if e.Policy != nil {
		cfg.Policy = strings.TrimSpace(*e.Policy)
	}
	if e.ScenarioFile != nil {
		cfg.ScenarioFile = strings.TrimSpace(*e.ScenarioFile)
	}
	if e.VisitsPerSecond != nil {
		cfg.VisitsPerSecond = *e.VisitsPerSecond
	}
	if e.VisitBurst != nil {
		cfg.VisitBurst = *e.VisitBurst
	}
	if e.LogFormat != nil {
		cfg.LogFormat = strings.TrimSpace(*e.LogFormat)
	}
	return nil
}

// applyCLIOverrides applies command-line flag overrides.
func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) {
	if overrides.SantaName != nil && *overrides.SantaName != "" {
		cfg.SantaName = *overrides.SantaName
	}
	if overrides.Capacity != nil {
		cfg.Capacity = *overrides.Capacity
	}
	if overrides.Policy != nil && *overrides.Policy != "" {
		cfg.Policy = *overrides.Policy
	}
	if overrides.ScenarioFile != nil && *overrides.ScenarioFile != "" {
		cfg.ScenarioFile = *overrides.ScenarioFile
	}
	if overrides.VisitsPerSecond != nil {
		cfg.VisitsPerSecond = *overrides.VisitsPerSecond
	}
	if overrides.LogFormat != nil && *overrides.LogFormat != "" {
		cfg.LogFormat = *overrides.LogFormat
	}
}

// validateConfig validates the final configuration.
func validateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.SantaName) == "" {
		return fmt.Errorf("santa name cannot be empty")
	}
	if !(cfg.Capacity > 0) || math.IsInf(cfg.Capacity, 0) {
		return fmt.Errorf("capacity must be a finite number > 0, got %v", cfg.Capacity)
	}
	if !(cfg.VisitsPerSecond >= 0) || math.IsInf(cfg.VisitsPerSecond, 0) {
		return fmt.Errorf("visits per second must be >= 0")
	}
	if cfg.VisitBurst < 0 {
		return fmt.Errorf("visit burst must be >= 0")
	}
	if _, err := distributor.PolicyByName(cfg.Policy); err != nil {
		return err
	}
	if err := logging.ValidateFormat(cfg.LogFormat); err != nil {
		return err
	}
	return nil
}
