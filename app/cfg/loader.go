package cfg

import (
	"cmp"
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Remote API configuration
	APIBaseURL string `long:"api-base-url" env:"API_BASE_URL" default:"http://localhost:8000/news-scraper/api/noticias/" description:"Base URL of the news API collection endpoint"`
	APITimeout int    `long:"api-timeout" env:"API_TIMEOUT" default:"0" description:"Timeout in seconds for API requests (0 disables it)"`
	UserAgent  string `long:"user-agent" env:"USER_AGENT" default:"Newsboard/1.0" description:"User agent string for HTTP requests"`

	// Application configuration
	Port           string  `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`
	Locale         string  `long:"locale" env:"LOCALE" default:"pt-BR" description:"Locale used for dates and counts (BCP 47 tag)"`
	StatsHideAfter int     `long:"stats-hide-after" env:"STATS_HIDE_AFTER" default:"5" description:"Seconds before the statistics panel hides itself"`
	ClearRateRPS   float64 `long:"clear-rate-rps" env:"CLEAR_RATE_RPS" default:"0.2" description:"Allowed clear-all requests per second per client"`
	ClearRateBurst int     `long:"clear-rate-burst" env:"CLEAR_RATE_BURST" default:"2" description:"Burst of clear-all requests per client"`
	LabelsFile     string  `long:"labels-file" env:"LABELS_FILE" description:"YAML file overriding the user-facing texts (optional)"`

	// Application metadata
	Timezone string `long:"timezone" env:"TZ" default:"America/Sao_Paulo" description:"Timezone for displayed dates (e.g., UTC, America/Sao_Paulo)"`
	Debug    bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	return LoadArgs(nil)
}

// LoadArgs parses args instead of os.Args when args is non-nil.
func LoadArgs(args []string) (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	var err error
	if args != nil {
		_, err = parser.ParseArgs(args)
	} else {
		_, err = parser.Parse()
	}
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	labels, err := LoadLabels(raw.LabelsFile)
	if err != nil {
		return nil, err
	}

	cfg := &Cfg{
		APIBaseURL:     raw.APIBaseURL,
		APITimeout:     raw.APITimeout,
		UserAgent:      raw.UserAgent,
		Port:           raw.Port,
		Locale:         raw.Locale,
		StatsHideAfter: raw.StatsHideAfter,
		ClearRateRPS:   raw.ClearRateRPS,
		ClearRateBurst: raw.ClearRateBurst,
		LabelsFile:     raw.LabelsFile,
		Labels:         labels,
		Timezone:       raw.Timezone,
		Debug:          raw.Debug,
		Version:        GetVersion(),
	}

	if err := applyTimezone(cfg.Timezone); err != nil {
		fmt.Printf("Warning: Invalid timezone '%s', using system default: %v\n", cfg.Timezone, err)
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

// GetAPITimeout returns the API timeout; zero means no timeout.
func (c *Cfg) GetAPITimeout() time.Duration {
	if c.APITimeout <= 0 {
		return 0
	}
	return time.Duration(c.APITimeout) * time.Second
}

// GetStatsHideAfter returns the statistics panel lifetime, 5s by default.
func (c *Cfg) GetStatsHideAfter() time.Duration {
	if c.StatsHideAfter <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.StatsHideAfter) * time.Second
}

func applyTimezone(timezone string) error {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err != nil {
			return err
		} else {
			time.Local = loc
			fmt.Printf("Timezone configured: %s\n", timezone)
		}
	}
	return nil
}
