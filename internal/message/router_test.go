package message

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

type stubTranscripts struct {
	text    string
	err     error
	gotURL  string
	invoked bool
}

func (s *stubTranscripts) Extract(_ context.Context, pageURL string) (string, error) {
	s.invoked = true
	s.gotURL = pageURL
	return s.text, s.err
}

type stubSummaries struct {
	summary string
	err     error
	gotText string
}

func (s *stubSummaries) Enhance(_ context.Context, text string) (string, error) {
	s.gotText = text
	return s.summary, s.err
}

func TestHandleGetTranscript(t *testing.T) {
	t.Parallel()

	transcripts := &stubTranscripts{text: "hello world"}
	router := NewRouter(transcripts, &stubSummaries{}, zerolog.Nop())

	resp := router.Handle(context.Background(), json.RawMessage(`{"action":"getTranscript","pageUrl":"https://www.youtube.com/watch?v=abc"}`))
	if !resp.Success {
		t.Fatalf("expected success, got error %q", resp.Error)
	}
	if resp.Transcript != "hello world" {
		t.Fatalf("unexpected transcript: %q", resp.Transcript)
	}
	if transcripts.gotURL != "https://www.youtube.com/watch?v=abc" {
		t.Fatalf("unexpected page url: %q", transcripts.gotURL)
	}
}

func TestHandleGetTranscriptFailure(t *testing.T) {
	t.Parallel()

	transcripts := &stubTranscripts{err: fmt.Errorf("no transcript available for this video")}
	router := NewRouter(transcripts, &stubSummaries{}, zerolog.Nop())

	resp := router.Handle(context.Background(), json.RawMessage(`{"action":"getTranscript","pageUrl":"https://www.youtube.com/watch?v=abc"}`))
	if resp.Success {
		t.Fatalf("expected failure response")
	}
	if !strings.Contains(resp.Error, "no transcript available") {
		t.Fatalf("unexpected error message: %q", resp.Error)
	}
}

func TestHandleEnhanceTranscript(t *testing.T) {
	t.Parallel()

	summaries := &stubSummaries{summary: "short version"}
	router := NewRouter(&stubTranscripts{}, summaries, zerolog.Nop())

	resp := router.Handle(context.Background(), json.RawMessage(`{"action":"enhanceTranscript","transcript":"a very long transcript"}`))
	if !resp.Success {
		t.Fatalf("expected success, got error %q", resp.Error)
	}
	if resp.Transcript != "short version" {
		t.Fatalf("unexpected summary: %q", resp.Transcript)
	}
	if summaries.gotText != "a very long transcript" {
		t.Fatalf("unexpected input text: %q", summaries.gotText)
	}
}

func TestHandleRejectsUnknownAction(t *testing.T) {
	t.Parallel()

	transcripts := &stubTranscripts{}
	router := NewRouter(transcripts, &stubSummaries{}, zerolog.Nop())

	resp := router.Handle(context.Background(), json.RawMessage(`{"action":"explodeTranscript"}`))
	if resp.Success {
		t.Fatalf("expected failure for unknown action")
	}
	if transcripts.invoked {
		t.Fatalf("no service may run for an invalid message")
	}
}

func TestHandleRejectsMissingFields(t *testing.T) {
	t.Parallel()

	router := NewRouter(&stubTranscripts{}, &stubSummaries{}, zerolog.Nop())

	cases := map[string]string{
		"missing pageUrl":    `{"action":"getTranscript"}`,
		"missing transcript": `{"action":"enhanceTranscript"}`,
		"empty transcript":   `{"action":"enhanceTranscript","transcript":""}`,
		"extra field":        `{"action":"getTranscript","pageUrl":"x","bogus":true}`,
		"not an object":      `"getTranscript"`,
		"trailing garbage":   `{"action":"getTranscript","pageUrl":"x"} extra`,
	}
	for name, payload := range cases {
		if resp := router.Handle(context.Background(), json.RawMessage(payload)); resp.Success {
			t.Fatalf("%s: expected validation failure", name)
		}
	}
}

func TestValidateRequestRoundTrip(t *testing.T) {
	t.Parallel()

	req, err := ValidateRequest(json.RawMessage(`{"action":"enhanceTranscript","transcript":"text"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Action != ActionEnhanceTranscript || req.Transcript != "text" {
		t.Fatalf("unexpected request: %+v", req)
	}
}
