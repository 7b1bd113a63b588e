// Package config defines pipeline configuration structures and loading hooks.
//
// Conventions:
// - Keep fields unexported where possible and use functional options.
// - Provide New(...Option) initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
//
// The valid team codes and tournament countries live here rather than as
// package globals so the pipeline receives them as an explicit value.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// OutputFile is where the HTML report is written.
	OutputFile string `koanf:"output_file"`

	// HTTPTimeoutSeconds bounds each outbound request.
	HTTPTimeoutSeconds int `koanf:"http_timeout_seconds"`

	// MaxRetries caps fetch attempts per URL.
	MaxRetries int `koanf:"max_retries"`

	// StatsBaseURL is the Olympic stats site root.
	StatsBaseURL string `koanf:"stats_base_url"`

	// RosterBaseURL is the NHL API root.
	RosterBaseURL string `koanf:"roster_base_url"`

	// TopContributors sets how many player lines nest under each team
	// in the console table.
	TopContributors int `koanf:"top_contributors"`

	// TeamCodes lists the 32 valid NHL team abbreviations; rosters are
	// fetched in this order, which also fixes collision precedence.
	TeamCodes []string `koanf:"team_codes"`

	// Countries lists the tournament roster slugs used in stats URLs.
	Countries []string `koanf:"countries"`
}

// New creates a Config with the built-in defaults.
func New() *Config {
	return &Config{
		LogLevel:           "info",
		OutputFile:         "olympics_nhl_rankings.html",
		HTTPTimeoutSeconds: 45,
		MaxRetries:         3,
		StatsBaseURL:       "https://www.quanthockey.com/olympics",
		RosterBaseURL:      "https://api-web.nhle.com",
		TopContributors:    3,
		TeamCodes: []string{
			"ANA", "BOS", "BUF", "CAR", "CBJ", "CGY", "CHI", "COL", "DAL", "DET",
			"EDM", "FLA", "LAK", "MIN", "MTL", "NJD", "NSH", "NYI", "NYR", "OTT",
			"PHI", "PIT", "SEA", "SJS", "STL", "TBL", "TOR", "UTA", "VAN", "VGK",
			"WPG", "WSH",
		},
		Countries: []string{
			"canada", "usa", "sweden", "finland", "czech-republic",
			"slovakia", "switzerland", "germany", "latvia", "denmark",
			"france", "italy",
		},
	}
}
