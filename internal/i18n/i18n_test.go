// FilePath: internal/i18n/i18n_test.go
package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	v, ok := Lookup(LocaleEN, "alerts.items.a1.list")
	require.True(t, ok)
	assert.Equal(t, "High Temperature", v)

	v, ok = Lookup(LocaleES, "alerts.items.a1.list")
	require.True(t, ok)
	assert.Equal(t, "Temperatura alta", v)

	// Missing leaf
	_, ok = Lookup(LocaleEN, "alerts.items.a1.nosuchkey")
	assert.False(t, ok)

	// Missing branch
	_, ok = Lookup(LocaleEN, "nosuchbranch.deep.key")
	assert.False(t, ok)

	// Path ending on a subtree, not a string
	_, ok = Lookup(LocaleEN, "alerts.items.a1")
	assert.False(t, ok)
}

func TestTSentinel(t *testing.T) {
	t.Parallel()

	// A hit returns the translation.
	got := T(LocaleEN, "alerts.items.a2.list")
	assert.Equal(t, "Humidity Alert", got)
	assert.NotEqual(t, "alerts.items.a2.list", got)

	// A miss returns the key itself so callers can detect it with
	// T(k) == k.
	missing := "alerts.items.zz.list"
	assert.Equal(t, missing, T(LocaleEN, missing))
}

func TestTVFallback(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Humidity Alert", TV(LocaleEN, "alerts.items.a2.list", "fallback"))
	assert.Equal(t, "fallback", TV(LocaleEN, "alerts.items.zz.list", "fallback"))
}

func TestInterpolate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		params map[string]string
		want   string
	}{
		{
			name:   "single token",
			input:  "Hello {{name}}!",
			params: map[string]string{"name": "Azul"},
			want:   "Hello Azul!",
		},
		{
			name:   "multiple tokens",
			input:  "{{a}} and {{b}}",
			params: map[string]string{"a": "x", "b": "y"},
			want:   "x and y",
		},
		{
			name:   "missing param renders empty",
			input:  "Hello {{name}}!",
			params: nil,
			want:   "Hello !",
		},
		{
			name:   "no tokens",
			input:  "plain text",
			params: map[string]string{"name": "x"},
			want:   "plain text",
		},
		{
			name:   "unterminated token left as-is",
			input:  "broken {{name",
			params: map[string]string{"name": "x"},
			want:   "broken {{name",
		},
		{
			name:   "whitespace inside token",
			input:  "Hi {{ name }}",
			params: map[string]string{"name": "Héctor"},
			want:   "Hi Héctor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Interpolate(tt.input, tt.params))
		})
	}
}

func TestTPInterpolatesBundleValue(t *testing.T) {
	t.Parallel()

	got := TP(LocaleEN, "seed.done", map[string]string{"name": "Azul's Rooftop Apiary"})
	assert.Contains(t, got, "Azul's Rooftop Apiary")
	assert.NotContains(t, got, "{{")
}

func TestResolveLocale(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		stored  string
		ambient string
		want    Locale
	}{
		{name: "stored en wins", stored: "en", ambient: "es-MX", want: LocaleEN},
		{name: "stored es wins", stored: "es", ambient: "en-US", want: LocaleES},
		{name: "invalid stored falls through to ambient", stored: "fr", ambient: "es-MX", want: LocaleES},
		{name: "ambient regional spanish", stored: "", ambient: "es-419", want: LocaleES},
		{name: "ambient accept-language list", stored: "", ambient: "es-MX,es;q=0.9,en;q=0.8", want: LocaleES},
		{name: "ambient english", stored: "", ambient: "en-GB", want: LocaleEN},
		{name: "ambient unsupported language", stored: "", ambient: "de-DE", want: LocaleEN},
		{name: "ambient galician stays english", stored: "", ambient: "gl", want: LocaleEN},
		{name: "ambient regional galician stays english", stored: "", ambient: "gl-ES", want: LocaleEN},
		{name: "ambient basque stays english", stored: "", ambient: "eu", want: LocaleEN},
		{name: "ambient spanish behind preferred german", stored: "", ambient: "de-DE,es;q=0.8", want: LocaleEN},
		{name: "ambient garbage", stored: "", ambient: "not a tag", want: LocaleEN},
		{name: "nothing at all", stored: "", ambient: "", want: LocaleEN},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ResolveLocale(tt.stored, tt.ambient))
		})
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, LocaleEN, Normalize("en"))
	assert.Equal(t, LocaleES, Normalize("es"))
	assert.Equal(t, LocaleEN, Normalize("fr"))
	assert.Equal(t, LocaleEN, Normalize(""))
	// Tags are exact; regional variants are the resolver's job.
	assert.Equal(t, LocaleEN, Normalize("es-MX"))
}
