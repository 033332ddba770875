package cfg

import (
	"fmt"
	"os"
	"time"

	"github.com/jessevdk/go-flags"
	"gopkg.in/yaml.v3"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	if Version != "" {
		return Version
	}
	return "unknown"
}

type rawCfg struct {
	Timeout      int    `long:"timeout" env:"FETCH_TIMEOUT" default:"20" description:"Per-request fetch timeout in seconds"`
	UserAgent    string `long:"user-agent" env:"USER_AGENT" description:"User agent string for HTTP requests"`
	SettingsFile string `long:"settings" env:"SETTINGS_FILE" description:"Optional YAML settings file"`

	Args struct {
		Subscriptions string `positional-arg-name:"subscriptions" description:"OPML subscription list"`
		OutputDir     string `positional-arg-name:"output-dir" description:"Directory for generated digests"`
	} `positional-args:"yes"`
}

// Load parses command-line flags and environment variables, then applies the
// optional YAML settings overlay. Returns (nil, nil) when usage or help text
// was printed and the process should exit cleanly.
func Load(args []string) (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.ParseArgs(args); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if raw.Args.Subscriptions == "" || raw.Args.OutputDir == "" {
		parser.WriteHelp(os.Stdout)
		return nil, nil
	}

	cfg := &Cfg{
		SubscriptionsPath: raw.Args.Subscriptions,
		OutputDir:         raw.Args.OutputDir,
		Timeout:           time.Duration(raw.Timeout) * time.Second,
		UserAgent:         raw.UserAgent,
		Version:           GetVersion(),
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = fmt.Sprintf("feedigest/%s", cfg.Version)
	}

	if raw.SettingsFile != "" {
		if err := applySettings(cfg, raw.SettingsFile); err != nil {
			return nil, fmt.Errorf("failed to load settings file: %w", err)
		}
	}

	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("fetch timeout must be positive, got %s", cfg.Timeout)
	}

	return cfg, nil
}

// applySettings overlays values from a YAML settings file onto cfg.
func applySettings(cfg *Cfg, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	if settings.Fetch.Timeout != 0 {
		cfg.Timeout = time.Duration(settings.Fetch.Timeout) * time.Second
	}
	if settings.Fetch.UserAgent != "" {
		cfg.UserAgent = settings.Fetch.UserAgent
	}

	return nil
}
