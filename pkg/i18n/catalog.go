package i18n

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/ru"
	"github.com/go-playground/locales/uz"
	ut "github.com/go-playground/universal-translator"
)

var placeholderPattern = regexp.MustCompile(`\{\d+\}`)

// Catalog resolves display strings for the supported languages.
type Catalog struct {
	uni       *ut.UniversalTranslator
	fallback  string
	languages []string
	keys      []string
	// tokens holds, per language and key, the {n} placeholders in the order they appear.
	tokens map[string]map[string][]string
}

// New registers every message table and uses defaultLang as the per-key fallback.
func New(defaultLang string) (*Catalog, error) {
	supported := []locales.Translator{uz.New(), ru.New(), en.New()}
	fallback := locales.Translator(uz.New())
	for _, loc := range supported {
		if loc.Locale() == strings.ToLower(defaultLang) {
			fallback = loc
		}
	}

	uni := ut.New(fallback, supported...)
	languages := make([]string, 0, len(supported))
	tokens := make(map[string]map[string][]string, len(supported))
	for _, loc := range supported {
		lang := loc.Locale()
		trans, ok := uni.GetTranslator(lang)
		if !ok {
			return nil, fmt.Errorf("translator for %s not registered", lang)
		}
		tokens[lang] = make(map[string][]string, len(messages[lang]))
		for key, text := range messages[lang] {
			tokens[lang][key] = placeholderPattern.FindAllString(text, -1)
			if err := trans.Add(key, text, false); err != nil {
				return nil, fmt.Errorf("register %s message %s: %w", lang, key, err)
			}
		}
		languages = append(languages, lang)
	}

	keys := make([]string, 0, len(messages[fallback.Locale()]))
	for key := range messages[fallback.Locale()] {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return &Catalog{uni: uni, fallback: fallback.Locale(), languages: languages, keys: keys, tokens: tokens}, nil
}

// Default returns the fallback language code.
func (c *Catalog) Default() string {
	return c.fallback
}

// Languages lists supported language codes.
func (c *Catalog) Languages() []string {
	out := make([]string, len(c.languages))
	copy(out, c.languages)
	return out
}

// Supported reports whether lang has a registered catalog.
func (c *Catalog) Supported(lang string) bool {
	lang = strings.ToLower(strings.TrimSpace(lang))
	for _, l := range c.languages {
		if l == lang {
			return true
		}
	}
	return false
}

// Normalize maps lang to a supported code or the default.
func (c *Catalog) Normalize(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if c.Supported(lang) {
		return lang
	}
	return c.fallback
}

// T translates key into lang, falling back to the default language and then to the key.
// Missing params keep their {n} token so templates can be filled by the client.
func (c *Catalog) T(lang, key string, params ...string) string {
	for _, l := range []string{c.Normalize(lang), c.fallback} {
		trans, ok := c.uni.GetTranslator(l)
		if !ok {
			continue
		}
		if text, err := trans.T(key, c.pad(l, key, params)...); err == nil {
			return text
		}
	}
	return key
}

func (c *Catalog) pad(lang, key string, params []string) []string {
	want := c.tokens[lang][key]
	if len(params) >= len(want) {
		return params
	}
	out := make([]string, len(want))
	copy(out, params)
	copy(out[len(params):], want[len(params):])
	return out
}

// Month returns the display name for a zero-based month index.
func (c *Catalog) Month(lang string, index int) string {
	return c.T(lang, "month_"+strconv.Itoa(index))
}

// Months returns all twelve month names in calendar order.
func (c *Catalog) Months(lang string) []string {
	out := make([]string, 12)
	for i := range out {
		out[i] = c.Month(lang, i)
	}
	return out
}

// Messages returns the full catalog for lang with per-key fallback applied.
func (c *Catalog) Messages(lang string) map[string]string {
	out := make(map[string]string, len(c.keys))
	for _, key := range c.keys {
		out[key] = c.T(lang, key)
	}
	return out
}

// FormatDate renders t as a short locale date.
func (c *Catalog) FormatDate(lang string, t time.Time) string {
	trans, ok := c.uni.GetTranslator(c.Normalize(lang))
	if !ok {
		return t.Format("2006-01-02")
	}
	return trans.FmtDateShort(t)
}
