package translation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mnadalc/yt-translate-transcription/internal/chunker"
)

type stubProvider struct {
	requests []TranslateRequest
	failAt   int // 1-based request index that fails; 0 never fails
}

func (p *stubProvider) Name() string                 { return "stub" }
func (p *stubProvider) SupportedLanguages() []string { return []string{"es"} }

func (p *stubProvider) Translate(_ context.Context, req TranslateRequest) (*TranslateResponse, error) {
	p.requests = append(p.requests, req)
	if p.failAt > 0 && len(p.requests) == p.failAt {
		return nil, fmt.Errorf("boom")
	}
	return &TranslateResponse{
		Text:         fmt.Sprintf("[%d]%s", len(p.requests), req.Text),
		SourceLang:   req.SourceLang,
		TargetLang:   req.TargetLang,
		ProviderName: "stub",
	}, nil
}

func TestTranslatorChunksInOrder(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{}
	translator := NewTranslator(provider, 25, zerolog.Nop())

	text := "First short sentence here. Second short sentence here. Third short sentence here."
	got, err := translator.Translate(context.Background(), text, "es")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(provider.requests) < 2 {
		t.Fatalf("expected multiple chunk requests, got %d", len(provider.requests))
	}
	for i, req := range provider.requests {
		if req.SourceLang != "auto" {
			t.Fatalf("request %d: expected auto source, got %q", i, req.SourceLang)
		}
		if req.TargetLang != "es" {
			t.Fatalf("request %d: expected es target, got %q", i, req.TargetLang)
		}
	}

	// The result must be exactly the per-chunk translations, in chunk order,
	// joined with single spaces.
	chunks := chunker.Chunk(text, 25)
	want := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		want = append(want, fmt.Sprintf("[%d]%s", i+1, chunk))
	}
	if got != strings.Join(want, " ") {
		t.Fatalf("unexpected joined output:\n got  %q\n want %q", got, strings.Join(want, " "))
	}
}

func TestTranslatorAbortsOnChunkFailure(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{failAt: 2}
	translator := NewTranslator(provider, 25, zerolog.Nop())

	text := "First short sentence here. Second short sentence here. Third short sentence here."
	_, err := translator.Translate(context.Background(), text, "es")
	if !errors.Is(err, ErrTranslationFailed) {
		t.Fatalf("expected ErrTranslationFailed, got %v", err)
	}
	if len(provider.requests) != 2 {
		t.Fatalf("expected abort after failing chunk, got %d requests", len(provider.requests))
	}
}

func TestTranslatorNormalizesTargetTag(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{}
	translator := NewTranslator(provider, 500, zerolog.Nop())

	if _, err := translator.Translate(context.Background(), "bonjour tout le monde", "es-MX"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if provider.requests[0].TargetLang != "es" {
		t.Fatalf("expected normalized target es, got %q", provider.requests[0].TargetLang)
	}
}

func TestTranslatorSkipsTextAlreadyInTargetLanguage(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{}
	translator := NewTranslator(provider, 500, zerolog.Nop())

	text := "This transcript is already written in perfectly ordinary English sentences."
	got, err := translator.Translate(context.Background(), text, "en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != text {
		t.Fatalf("expected unchanged text, got %q", got)
	}
	if len(provider.requests) != 0 {
		t.Fatalf("expected no remote calls, got %d", len(provider.requests))
	}
}

func TestTranslatorRejectsInvalidTarget(t *testing.T) {
	t.Parallel()

	translator := NewTranslator(&stubProvider{}, 500, zerolog.Nop())
	if _, err := translator.Translate(context.Background(), "hello", "???"); !errors.Is(err, ErrTranslationFailed) {
		t.Fatalf("expected ErrTranslationFailed, got %v", err)
	}
}
