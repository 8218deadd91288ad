package cfg

type Cfg struct {
	// Remote API configuration
	APIBaseURL string
	APITimeout int // seconds, 0 disables the timeout
	UserAgent  string

	// Application configuration
	Port           string
	Locale         string
	StatsHideAfter int // seconds
	ClearRateRPS   float64
	ClearRateBurst int
	LabelsFile     string
	Labels         Labels

	// Application metadata
	Timezone string
	Debug    bool
	Version  string
}

// Labels holds every user-facing text the board renders. Defaults are the
// Brazilian Portuguese strings of the original page.
type Labels struct {
	Loading         string `yaml:"loading"`
	NoTitle         string `yaml:"no_title"`
	NoDescription   string `yaml:"no_description"`
	UnknownSource   string `yaml:"unknown_source"`
	UnknownDate     string `yaml:"unknown_date"`
	ReadMore        string `yaml:"read_more"`
	EmptyHeading    string `yaml:"empty_heading"`
	EmptyHint       string `yaml:"empty_hint"`
	EmptyCommand    string `yaml:"empty_command"`
	ErrorHeading    string `yaml:"error_heading"`
	ErrorHint       string `yaml:"error_hint"`
	ErrorCommand    string `yaml:"error_command"`
	ErrorEndpoint   string `yaml:"error_endpoint"`
	Truncated       string `yaml:"truncated"`
	ClearConfirm    string `yaml:"clear_confirm"`
	ClearFailed     string `yaml:"clear_failed"`
	StatsFailed     string `yaml:"stats_failed"`
	StatsHeading    string `yaml:"stats_heading"`
	StatsTotal      string `yaml:"stats_total"`
	StatsSources    string `yaml:"stats_sources"`
	SuccessPrefix   string `yaml:"success_prefix"`
	FailurePrefix   string `yaml:"failure_prefix"`
	PageTitle       string `yaml:"page_title"`
	ReloadButton    string `yaml:"reload_button"`
	ClearButton     string `yaml:"clear_button"`
	StatsButton     string `yaml:"stats_button"`
	FeedDescription string `yaml:"feed_description"`
}
