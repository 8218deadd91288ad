package render

import (
	"time"

	"github.com/lysyi3m/newsboard/app/newsapi"
	"golang.org/x/text/language"
)

// Locales with a known date layout. The first entry is the fallback.
var supportedLocales = []language.Tag{
	language.BrazilianPortuguese,
	language.AmericanEnglish,
	language.BritishEnglish,
	language.German,
	language.French,
	language.Spanish,
}

// day/month/year (2/2/4 digits) plus hour:minute, in each locale's order
var dateLayouts = []string{
	"02/01/2006, 15:04",
	"01/02/2006, 03:04 PM",
	"02/01/2006, 15:04",
	"02.01.2006, 15:04",
	"02/01/2006 15:04",
	"02/01/2006, 15:04",
}

var localeMatcher = language.NewMatcher(supportedLocales)

// MatchLocale maps any BCP 47 tag to the closest supported locale.
func MatchLocale(locale string) (language.Tag, int) {
	tag, err := language.Parse(locale)
	if err != nil {
		return supportedLocales[0], 0
	}
	_, idx, _ := localeMatcher.Match(tag)
	return supportedLocales[idx], idx
}

type DateFormatter struct {
	layout      string
	location    *time.Location
	placeholder string
}

func NewDateFormatter(locale string, location *time.Location, placeholder string) *DateFormatter {
	if location == nil {
		location = time.Local
	}
	_, idx := MatchLocale(locale)
	return &DateFormatter{
		layout:      dateLayouts[idx],
		location:    location,
		placeholder: placeholder,
	}
}

// FormatDate renders a serialized timestamp for display. Empty input yields
// the placeholder; anything unparseable is returned unchanged.
func (f *DateFormatter) FormatDate(raw string) string {
	if raw == "" {
		return f.placeholder
	}

	t, err := newsapi.ParseTimestamp(raw, f.location)
	if err != nil {
		return raw
	}
	return t.In(f.location).Format(f.layout)
}
