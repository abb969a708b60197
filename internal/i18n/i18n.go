// FilePath: internal/i18n/i18n.go
package i18n

import (
	"embed"
	"encoding/json"
	"strings"

	nuts "github.com/vaudience/go-nuts"
)

//go:embed messages/*.json
var messageFS embed.FS

var dicts = map[Locale]map[string]any{}

func init() {
	for _, loc := range []Locale{LocaleEN, LocaleES} {
		raw, err := messageFS.ReadFile("messages/" + string(loc) + ".json")
		if err != nil {
			nuts.L.Errorf("[i18n] missing message bundle for %s: %v", loc, err)
			dicts[loc] = map[string]any{}
			continue
		}
		var tree map[string]any
		if err := json.Unmarshal(raw, &tree); err != nil {
			nuts.L.Errorf("[i18n] invalid message bundle for %s: %v", loc, err)
			tree = map[string]any{}
		}
		dicts[loc] = tree
	}
}

// Lookup walks a dotted key path through the locale's dictionary tree.
// The second return value is false when any segment is missing or the
// final value is not a string.
func Lookup(locale Locale, key string) (string, bool) {
	var node any = dicts[Normalize(string(locale))]
	for _, seg := range strings.Split(key, ".") {
		m, ok := node.(map[string]any)
		if !ok {
			return "", false
		}
		node, ok = m[seg]
		if !ok {
			return "", false
		}
	}
	s, ok := node.(string)
	return s, ok
}

// T resolves key for locale, preserving the sentinel convention the
// presentation layer relies on: a miss returns the key string unchanged,
// so callers can detect absence with T(k) == k.
func T(locale Locale, key string) string {
	if s, ok := Lookup(locale, key); ok {
		return s
	}
	return key
}

// TV resolves key and substitutes fallback on a miss.
func TV(locale Locale, key, fallback string) string {
	if s, ok := Lookup(locale, key); ok {
		return s
	}
	return fallback
}

// TP resolves key and interpolates {{name}} tokens from params. Tokens
// without a matching parameter render as empty string, not as the
// literal token.
func TP(locale Locale, key string, params map[string]string) string {
	return Interpolate(T(locale, key), params)
}

// Interpolate substitutes {{name}} tokens in s from params.
func Interpolate(s string, params map[string]string) string {
	var b strings.Builder
	for {
		start := strings.Index(s, "{{")
		if start < 0 {
			b.WriteString(s)
			return b.String()
		}
		end := strings.Index(s[start:], "}}")
		if end < 0 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:start])
		name := strings.TrimSpace(s[start+2 : start+end])
		b.WriteString(params[name])
		s = s[start+end+2:]
	}
}
