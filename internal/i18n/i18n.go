// Package i18n loads the embedded message catalogs and hands out
// locale-aware printers. Unknown locales fall back to English.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultLocale is the fallback when the requested locale has no
// catalog.
const DefaultLocale = "en"

//go:embed locales/*.yaml
var localeFS embed.FS

type catalogFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

var available = mustRegisterEmbedded()

func mustRegisterEmbedded() map[string]bool {
	locales, err := registerFromFS(localeFS)
	if err != nil {
		panic(fmt.Sprintf("i18n: %v", err))
	}
	return locales
}

func registerFromFS(catalogFS fs.FS) (map[string]bool, error) {
	paths, err := fs.Glob(catalogFS, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	locales := map[string]bool{}
	for _, path := range paths {
		data, err := fs.ReadFile(catalogFS, path)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", path, err)
		}
		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", path, err)
		}
		if file.Locale == "" {
			return nil, fmt.Errorf("catalog %s: locale is required", path)
		}
		tag, err := language.Parse(file.Locale)
		if err != nil {
			return nil, fmt.Errorf("catalog %s: parse locale %q: %w", path, file.Locale, err)
		}

		keys := make([]string, 0, len(file.Messages))
		for key := range file.Messages {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			if err := message.SetString(tag, key, file.Messages[key]); err != nil {
				return nil, fmt.Errorf("catalog %s: register %q: %w", path, key, err)
			}
		}
		locales[file.Locale] = true
	}

	if !locales[DefaultLocale] {
		return nil, fmt.Errorf("default locale %s is not defined in catalogs", DefaultLocale)
	}
	return locales, nil
}

// Printer returns a message printer for the locale, falling back to
// the default locale when the requested one has no catalog.
func Printer(locale string) *message.Printer {
	l := strings.TrimSpace(strings.ToLower(locale))
	if !available[l] {
		l = DefaultLocale
	}
	return message.NewPrinter(language.MustParse(l))
}

// Locales returns the available locale identifiers.
func Locales() []string {
	out := make([]string, 0, len(available))
	for locale := range available {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}
