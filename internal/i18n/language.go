// Package i18n renders user-facing PlantParent strings in one of the
// supported languages using the golang.org/x/text message catalog.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Supported lists the app languages; the first one is the fallback.
var Supported = []language.Tag{
	language.English,
	language.French,
	language.Dutch,
	language.Spanish,
}

// LanguageOption is one entry of the language picker.
type LanguageOption struct {
	Code string
	Name string
}

var Languages = []LanguageOption{
	{Code: "en", Name: "English"},
	{Code: "fr", Name: "Français"},
	{Code: "nl", Name: "Nederlands"},
	{Code: "es", Name: "Español"},
}

var matcher = language.NewMatcher(Supported)

// Match picks the supported language closest to locale, which may be a BCP
// 47 tag or a POSIX locale such as "fr_BE.UTF-8". Anything unrecognized
// falls back to English.
func Match(locale string) language.Tag {
	locale = strings.TrimSpace(locale)
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return Supported[0]
	}

	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return Supported[0]
	}
	return Supported[idx]
}

// Code returns the two-letter code stored in settings for tag.
func Code(tag language.Tag) string {
	base, _ := tag.Base()
	return base.String()
}

// IsSupported reports whether code names one of the app languages.
func IsSupported(code string) bool {
	for _, l := range Languages {
		if l.Code == code {
			return true
		}
	}
	return false
}

// LanguageName returns the display name for code, or code itself.
func LanguageName(code string) string {
	for _, l := range Languages {
		if l.Code == code {
			return l.Name
		}
	}
	return code
}
