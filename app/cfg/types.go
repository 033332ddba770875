package cfg

import "time"

type Cfg struct {
	// Positional arguments
	SubscriptionsPath string
	OutputDir         string

	// Fetch configuration
	Timeout   time.Duration
	UserAgent string

	// Application metadata
	Version string
}

// Settings is the optional YAML overlay file. Values present in the file
// take precedence over flags, environment variables and defaults.
type Settings struct {
	Fetch struct {
		Timeout   int    `yaml:"timeout"` // seconds
		UserAgent string `yaml:"user_agent"`
	} `yaml:"fetch"`
}
