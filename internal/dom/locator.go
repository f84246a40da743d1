package dom

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when no control matches any locator pass.
var ErrNotFound = errors.New("transcript control not found")

// Locator finds the transcript-reveal control among a page's labelled
// controls. It is a pure lookup: it never invokes or mutates anything.
type Locator struct {
	labels   Labels
	keywords []string
	fallback string
}

// NewLocator builds a Locator with the default label table and keyword list.
func NewLocator() *Locator {
	return NewLocatorWithTable(DefaultLabels(), defaultKeywords())
}

// NewLocatorWithTable builds a Locator around an injected label table, so
// tests can substitute fixtures. The English entry is the fallback label for
// unmapped languages.
func NewLocatorWithTable(labels Labels, keywords []string) *Locator {
	fallback := labels["en"]
	if fallback == "" {
		fallback = "Show transcript"
	}
	return &Locator{labels: labels, keywords: keywords, fallback: fallback}
}

// ExpectedLabel returns the localized label for lang, falling back to the
// English label when the language is unmapped.
func (l *Locator) ExpectedLabel(lang string) string {
	if l == nil {
		return ""
	}
	if label, ok := l.labels[strings.ToLower(strings.TrimSpace(lang))]; ok && label != "" {
		return label
	}
	return l.fallback
}

// Locate runs three ordered passes over controls and returns the first match:
//  1. exact case-insensitive label match,
//  2. case-insensitive substring match of the expected label,
//  3. case-insensitive substring match against the keyword list.
//
// Each pass is exhausted over every control before the next pass starts.
// Ties break on document order.
func (l *Locator) Locate(controls []Control, lang string) (Control, error) {
	if l == nil {
		return Control{}, ErrNotFound
	}

	expected := l.ExpectedLabel(lang)
	expectedLower := strings.ToLower(strings.TrimSpace(expected))

	for _, ctrl := range controls {
		if strings.EqualFold(strings.TrimSpace(ctrl.Label), expected) {
			return ctrl, nil
		}
	}

	if expectedLower != "" {
		for _, ctrl := range controls {
			if strings.Contains(strings.ToLower(ctrl.Label), expectedLower) {
				return ctrl, nil
			}
		}
	}

	for _, ctrl := range controls {
		labelLower := strings.ToLower(ctrl.Label)
		for _, keyword := range l.keywords {
			if strings.Contains(labelLower, strings.ToLower(keyword)) {
				return ctrl, nil
			}
		}
	}

	return Control{}, ErrNotFound
}
