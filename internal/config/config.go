package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"

	"github.com/alexanderramin/teamsim/internal/domain"
	"github.com/alexanderramin/teamsim/internal/export"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// ErrInvalidConfig indicates a run setting outside its allowed range.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the run settings. Team compositions come from TeamsFile, or
// the reference teams when it is empty.
type Config struct {
	Trials int `envconfig:"TEAMSIM_TRIALS" default:"500"`
	// Workers caps concurrent trials; 0 uses GOMAXPROCS.
	Workers int `envconfig:"TEAMSIM_WORKERS" default:"0"`
	// Seed fixes the run seed; 0 picks a random one.
	Seed      uint64  `envconfig:"TEAMSIM_SEED" default:"0"`
	StdDev    float64 `envconfig:"TEAMSIM_STD_DEV" default:"0.5"`
	Format    string  `envconfig:"TEAMSIM_FORMAT" default:"csv"`
	OutputDir string  `envconfig:"TEAMSIM_OUTPUT_DIR" default:"."`
	TeamsFile string  `envconfig:"TEAMSIM_TEAMS_FILE"`
	LogLevel  string  `envconfig:"TEAMSIM_LOG_LEVEL" default:"info"`
}

// Load reads a .env file when present, then the TEAMSIM_* environment. A
// missing .env is fine; a malformed one is an error.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading .env: %w", err)
	}

	cfg := new(Config)
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}
	return cfg, nil
}

// Default returns the built-in settings without consulting the environment.
func Default() *Config {
	return &Config{
		Trials:    500,
		StdDev:    0.5,
		Format:    string(export.FormatCSV),
		OutputDir: ".",
		LogLevel:  "info",
	}
}

// Validate rejects settings that would fail the run before it starts.
func (c *Config) Validate() error {
	if c.Trials <= 0 {
		return fmt.Errorf("%w: got %d", domain.ErrInvalidTrialCount, c.Trials)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalidConfig, c.Workers)
	}
	if !(c.StdDev > 0) || math.IsInf(c.StdDev, 0) {
		return fmt.Errorf("%w: std dev must be > 0, got %v", ErrInvalidConfig, c.StdDev)
	}
	if _, err := export.ParseFormat(c.Format); err != nil {
		return err
	}
	return nil
}

// Teams returns the configured teams, validated.
func (c *Config) Teams() ([]domain.Team, error) {
	if c.TeamsFile == "" {
		return domain.ReferenceTeams(), nil
	}
	return LoadTeams(c.TeamsFile)
}
