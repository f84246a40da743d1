package language

import "testing"

func noEnv(string) string { return "" }

func TestDetectPrefersURLParameter(t *testing.T) {
	t.Parallel()

	got := DetectWithEnv("https://www.youtube.com/watch?v=abc&hl=fr-CA", "de-DE", noEnv)
	if got != "fr" {
		t.Fatalf("expected fr from hl parameter, got %q", got)
	}
}

func TestDetectFallsBackToDocumentLang(t *testing.T) {
	t.Parallel()

	got := DetectWithEnv("https://www.youtube.com/watch?v=abc", "de-DE", noEnv)
	if got != "de" {
		t.Fatalf("expected de from document lang, got %q", got)
	}
}

func TestDetectFallsBackToLocale(t *testing.T) {
	t.Parallel()

	env := func(name string) string {
		if name == "LANG" {
			return "pt_BR.UTF-8"
		}
		return ""
	}
	got := DetectWithEnv("", "", env)
	if got != "pt" {
		t.Fatalf("expected pt from LANG, got %q", got)
	}
}

func TestDetectIgnoresPosixLocale(t *testing.T) {
	t.Parallel()

	env := func(name string) string {
		if name == "LC_ALL" {
			return "C.UTF-8"
		}
		return ""
	}
	if got := DetectWithEnv("", "", env); got != DefaultCode {
		t.Fatalf("expected default %q for C locale, got %q", DefaultCode, got)
	}
}

func TestDetectDefaultsToEnglish(t *testing.T) {
	t.Parallel()

	if got := DetectWithEnv("", "", noEnv); got != "en" {
		t.Fatalf("expected en default, got %q", got)
	}
	if got := DetectWithEnv("://bad-url", "", nil); got != "en" {
		t.Fatalf("expected en for unparsable URL, got %q", got)
	}
}
