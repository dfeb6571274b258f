package contract

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gitwrap/gitwrap/schema"
)

// Default values for configuration.
const (
	// EventPageSize is the fixed page size of the event feed scan.
	EventPageSize = 100

	// MaxEventPages bounds the event feed scan; with EventPageSize this
	// caps the scan at 1000 events, enough to cover a full year for most
	// accounts.
	MaxEventPages = 10

	// RepoListLimit is the page size for the recency-sorted repo listing.
	RepoListLimit = 20

	// ManifestRepoLimit bounds how many repositories the dependency
	// profiler scans. Dependency counts are bounded above by this value.
	ManifestRepoLimit = 10

	// DormancyMonths is the calendar-month lookback for the forgotten-repo
	// cutoff.
	DormancyMonths = 6

	// DefaultPrecision is the decimal precision for numeric output.
	DefaultPrecision = 1
)

// DisplayDateFormat is the human-facing date representation used for the
// forgotten repository timeline.
const DisplayDateFormat = "Jan 2, 2006"

// ErrMissingToken is returned before any network call when no access token
// was configured.
var ErrMissingToken = errors.New("missing access token: set --token or GITWRAP_TOKEN")

// Config holds the runtime configuration for the analysis.
// This struct remains the "final, validated" config.
type Config struct {
	Token      string
	Year       int
	Output     schema.OutputMode
	OutputFile string
	Precision  int
	Width      int // Terminal width override (0 = auto-detect)

	UseEmojis bool // Enable emojis in output headers
	UseColors bool // Enable colored labels in output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	Token      string `mapstructure:"token"`
	Year       int    `mapstructure:"year"`
	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Precision  int    `mapstructure:"precision"`
	Width      int    `mapstructure:"width"`
	Emoji      string `mapstructure:"emoji"`
	Color      string `mapstructure:"color"`
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput, now time.Time) error {
	cfg.Token = strings.TrimSpace(input.Token)
	if cfg.Token == "" {
		return ErrMissingToken
	}

	cfg.Year = input.Year
	if cfg.Year == 0 {
		cfg.Year = now.Year()
	}
	// GitHub launched in 2008; anything earlier is a typo.
	if cfg.Year < 2008 || cfg.Year > now.Year() {
		return fmt.Errorf("invalid year %d: must be between 2008 and %d", cfg.Year, now.Year())
	}

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output mode '%s'. must be text, json, csv", input.Output)
	}
	cfg.OutputFile = input.OutputFile

	cfg.Precision = input.Precision
	if cfg.Precision < 0 {
		return fmt.Errorf("invalid precision %d: must be non-negative", cfg.Precision)
	}

	cfg.Width = input.Width
	if cfg.Width < 0 {
		return fmt.Errorf("invalid width %d: must be non-negative", cfg.Width)
	}

	var err error
	if cfg.UseEmojis, err = parseToggle("emoji", input.Emoji); err != nil {
		return err
	}
	if cfg.UseColors, err = parseToggle("color", input.Color); err != nil {
		return err
	}

	return nil
}

// parseToggle interprets the yes/no style toggle flags.
func parseToggle(name, value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes", "true", "1", "on":
		return true, nil
	case "no", "false", "0", "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid %s value '%s'. must be yes or no", name, value)
	}
}
