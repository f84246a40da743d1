package translation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mnadalc/yt-translate-transcription/internal/chunker"
	"github.com/mnadalc/yt-translate-transcription/internal/langdetect"
	"github.com/mnadalc/yt-translate-transcription/internal/language"
)

// ErrTranslationFailed is returned when any chunk of a translation fails.
// There is no partial result: one bad chunk aborts the whole text.
var ErrTranslationFailed = errors.New("translation failed")

// Translator splits long text into chunks and translates them in order
// through a provider. Requests are sequential so chunk order is preserved and
// the free endpoint is not burst-hit.
type Translator struct {
	provider      Provider
	maxChunkChars int
	logger        zerolog.Logger
}

func NewTranslator(provider Provider, maxChunkChars int, logger zerolog.Logger) *Translator {
	if maxChunkChars <= 0 {
		maxChunkChars = chunker.DefaultMaxChars
	}
	return &Translator{provider: provider, maxChunkChars: maxChunkChars, logger: logger}
}

// Translate converts text to targetLang. Text already written in the target
// language is returned unchanged without any remote call.
func (t *Translator) Translate(ctx context.Context, text, targetLang string) (string, error) {
	if t == nil || t.provider == nil {
		return "", fmt.Errorf("%w: translator is not initialized", ErrTranslationFailed)
	}

	target := language.NormalizeCode(targetLang)
	if target == "" {
		return "", fmt.Errorf("%w: target language %q is not valid", ErrTranslationFailed, targetLang)
	}

	if langdetect.Matches(text, target) {
		t.logger.Debug().
			Str("lang", target).
			Msg("text already in target language, skipping translation")
		return text, nil
	}

	chunks := chunker.Chunk(text, t.maxChunkChars)
	parts := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		resp, err := t.provider.Translate(ctx, TranslateRequest{
			Text:       chunk,
			SourceLang: "auto",
			TargetLang: target,
		})
		if err != nil {
			return "", fmt.Errorf("%w: chunk %d/%d: %v", ErrTranslationFailed, i+1, len(chunks), err)
		}
		parts = append(parts, resp.Text)
	}

	t.logger.Debug().
		Str("provider", t.provider.Name()).
		Str("lang", target).
		Int("chunks", len(chunks)).
		Msg("translation complete")

	return strings.Join(parts, " "), nil
}
