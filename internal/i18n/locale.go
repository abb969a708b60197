// FilePath: internal/i18n/locale.go
package i18n

import "golang.org/x/text/language"

// Locale is a supported UI language tag.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleES Locale = "es"
)

// DefaultLocale is used whenever no usable signal is available.
const DefaultLocale = LocaleEN

// Known reports whether raw is exactly one of the supported tags.
func Known(raw string) bool {
	return raw == string(LocaleEN) || raw == string(LocaleES)
}

// ResolveLocale picks the active locale. Precedence: the stored
// preference when it is exactly "en" or "es", then the ambient language
// signal (a BCP-47 tag or an Accept-Language list), then "en". The
// ambient rule is a strict prefix check on the preferred tag's base
// language: only "es" maps to Spanish. Related languages that CLDR
// considers Spanish-intelligible (gl, eu and the like) stay English.
// Never fails.
func ResolveLocale(stored, ambient string) Locale {
	if Known(stored) {
		return Locale(stored)
	}
	if ambient != "" {
		tags, _, err := language.ParseAcceptLanguage(ambient)
		if err == nil && len(tags) > 0 {
			if base, conf := tags[0].Base(); conf != language.No && base.String() == "es" {
				return LocaleES
			}
		}
		return LocaleEN
	}
	return DefaultLocale
}

// Normalize maps an arbitrary locale string onto a supported Locale,
// defaulting unknown values to English.
func Normalize(raw string) Locale {
	if Known(raw) {
		return Locale(raw)
	}
	return DefaultLocale
}
