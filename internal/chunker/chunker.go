// Package chunker splits free-form text into bounded-size chunks at sentence
// boundaries so remote services with request-size limits can be fed piecewise.
package chunker

import (
	"strings"
	"unicode/utf8"
)

// DefaultMaxChars is the default maximum chunk size in characters.
const DefaultMaxChars = 500

// Chunk splits text into ordered chunks of at most maxChars characters.
// Sentences are kept whole when possible; a sentence longer than maxChars is
// re-split at word boundaries. A single word longer than maxChars is kept
// intact and allowed to exceed the limit. Empty input yields one empty chunk.
func Chunk(text string, maxChars int) []string {
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}

	units := splitSentences(text)

	var chunks []string
	current := ""
	for _, unit := range units {
		if utf8.RuneCountInString(unit) > maxChars {
			// Oversized sentence: flush the running chunk, then pack words.
			if current != "" {
				chunks = append(chunks, current)
				current = ""
			}
			chunks = append(chunks, packWords(unit, maxChars)...)
			continue
		}

		if current == "" {
			current = unit
			continue
		}
		if utf8.RuneCountInString(current)+1+utf8.RuneCountInString(unit) > maxChars {
			chunks = append(chunks, current)
			current = unit
			continue
		}
		current += " " + unit
	}
	if current != "" {
		chunks = append(chunks, current)
	}

	if len(chunks) == 0 {
		return []string{text}
	}
	return chunks
}

// splitSentences breaks text into sentence-like units on ".", "!" and "?",
// keeping the terminating punctuation with its sentence. Input without any
// boundary comes back as a single unit.
func splitSentences(text string) []string {
	var units []string
	var b strings.Builder
	for _, r := range text {
		b.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			if unit := strings.TrimSpace(b.String()); unit != "" {
				units = append(units, unit)
			}
			b.Reset()
		}
	}
	if tail := strings.TrimSpace(b.String()); tail != "" {
		units = append(units, tail)
	}
	return units
}

// packWords greedily packs whitespace-separated words into chunks bounded by
// maxChars. A single over-long word becomes its own oversized chunk; there is
// no character-level hard cut.
func packWords(unit string, maxChars int) []string {
	var chunks []string
	current := ""
	for _, word := range strings.Fields(unit) {
		if utf8.RuneCountInString(word) > maxChars {
			if current != "" {
				chunks = append(chunks, current)
				current = ""
			}
			chunks = append(chunks, word)
			continue
		}
		if current == "" {
			current = word
			continue
		}
		if utf8.RuneCountInString(current)+1+utf8.RuneCountInString(word) > maxChars {
			chunks = append(chunks, current)
			current = word
			continue
		}
		current += " " + word
	}
	if current != "" {
		chunks = append(chunks, current)
	}
	return chunks
}
