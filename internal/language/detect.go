package language

import (
	"net/url"
	"os"
	"strings"
)

// DefaultCode is returned when no language signal is available.
const DefaultCode = "en"

// Detect resolves the viewer interface language for a watch page URL.
// Priority order, first usable signal wins:
//  1. the page URL's "hl" query parameter,
//  2. the document-level lang attribute,
//  3. the process locale (LC_ALL, LC_MESSAGES, LANG).
//
// The result is always a normalized primary subtag; Detect never fails.
func Detect(pageURL, documentLang string) string {
	return DetectWithEnv(pageURL, documentLang, os.Getenv)
}

// DetectWithEnv is Detect with an injectable environment lookup.
func DetectWithEnv(pageURL, documentLang string, getenv func(string) string) string {
	if code := codeFromPageURL(pageURL); code != "" {
		return code
	}
	if code := NormalizeCode(documentLang); code != "" {
		return code
	}
	if getenv != nil {
		for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
			if code := codeFromLocale(getenv(name)); code != "" {
				return code
			}
		}
	}
	return DefaultCode
}

func codeFromPageURL(pageURL string) string {
	trimmed := strings.TrimSpace(pageURL)
	if trimmed == "" {
		return ""
	}
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return ""
	}
	return NormalizeCode(parsed.Query().Get("hl"))
}

// codeFromLocale extracts the primary subtag from a POSIX locale value such
// as "fr_FR.UTF-8" or "de_DE@euro".
func codeFromLocale(raw string) string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return ""
	}
	if dot := strings.IndexByte(value, '.'); dot >= 0 {
		value = value[:dot]
	}
	if at := strings.IndexByte(value, '@'); at >= 0 {
		value = value[:at]
	}
	if strings.EqualFold(value, "C") || strings.EqualFold(value, "POSIX") {
		return ""
	}
	return NormalizeCode(value)
}
