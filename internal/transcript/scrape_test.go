package transcript

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/mnadalc/yt-translate-transcription/internal/dom"
)

type fakePage struct {
	pageURL      string
	documentLang string
	controls     []dom.Control
	segments     []string
	segmentsAt   int
	panelOpen    bool

	invoked bool
	polls   int
}

func (p *fakePage) URL() string          { return p.pageURL }
func (p *fakePage) DocumentLang() string { return p.documentLang }

func (p *fakePage) Controls() []dom.Control { return p.controls }

func (p *fakePage) Invoke(_ dom.Control) error {
	p.invoked = true
	return nil
}

func (p *fakePage) PanelExpanded() bool { return p.panelOpen }

func (p *fakePage) TranscriptSegments() []string {
	p.polls++
	if p.polls < p.segmentsAt {
		return nil
	}
	return p.segments
}

type fakePageFetcher struct {
	page *fakePage
	err  error
}

func (f *fakePageFetcher) OpenPage(_ context.Context, _ string) (dom.PageSession, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.page, nil
}

func noSleepWaiter(attempts int) dom.Waiter {
	return dom.Waiter{Interval: time.Millisecond, Attempts: attempts, Sleep: func(time.Duration) {}}
}

func TestScrapeInvokesControlAndReadsSegments(t *testing.T) {
	t.Parallel()

	page := &fakePage{
		pageURL:      "https://www.youtube.com/watch?v=abc",
		documentLang: "en-US",
		controls: []dom.Control{
			{Label: "Share", Index: 0},
			{Label: "Show transcript", Index: 1},
		},
		segments:   []string{"Hello there,", "general kenobi"},
		segmentsAt: 1,
	}
	source := NewScrapeSource(&fakePageFetcher{page: page}, nil, noSleepWaiter(3))

	got, err := source.Fetch(context.Background(), "abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Hello there, general kenobi" {
		t.Fatalf("unexpected transcript: %q", got)
	}
	if !page.invoked {
		t.Fatalf("expected the transcript control to be invoked")
	}
}

func TestScrapeWaitsForSegmentsToRender(t *testing.T) {
	t.Parallel()

	page := &fakePage{
		pageURL:      "https://www.youtube.com/watch?v=abc",
		documentLang: "en",
		controls:     []dom.Control{{Label: "Show transcript", Index: 0}},
		segments:     []string{"late arrival"},
		segmentsAt:   3,
	}
	source := NewScrapeSource(&fakePageFetcher{page: page}, nil, noSleepWaiter(5))

	got, err := source.Fetch(context.Background(), "abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "late arrival" {
		t.Fatalf("unexpected transcript: %q", got)
	}
	if page.polls != 3 {
		t.Fatalf("expected 3 polls before segments rendered, got %d", page.polls)
	}
}

func TestScrapeEmptyAfterWaitIsNotAnError(t *testing.T) {
	t.Parallel()

	page := &fakePage{
		pageURL:      "https://www.youtube.com/watch?v=abc",
		documentLang: "en",
		controls:     []dom.Control{{Label: "Show transcript", Index: 0}},
		segmentsAt:   100,
	}
	source := NewScrapeSource(&fakePageFetcher{page: page}, nil, noSleepWaiter(2))

	got, err := source.Fetch(context.Background(), "abc")
	if err != nil {
		t.Fatalf("expected empty result, got error: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty transcript, got %q", got)
	}
}

func TestScrapeNoControlNoPanelFails(t *testing.T) {
	t.Parallel()

	page := &fakePage{
		pageURL:      "https://www.youtube.com/watch?v=abc",
		documentLang: "en",
		controls:     []dom.Control{{Label: "Share", Index: 0}},
	}
	source := NewScrapeSource(&fakePageFetcher{page: page}, nil, noSleepWaiter(1))

	if _, err := source.Fetch(context.Background(), "abc"); err == nil {
		t.Fatalf("expected error when no control and no open panel exist")
	}
}

func TestScrapeOpenPanelWithoutControl(t *testing.T) {
	t.Parallel()

	page := &fakePage{
		pageURL:      "https://www.youtube.com/watch?v=abc",
		documentLang: "en",
		panelOpen:    true,
		segments:     []string{"already", "visible"},
		segmentsAt:   1,
	}
	source := NewScrapeSource(&fakePageFetcher{page: page}, nil, noSleepWaiter(1))

	got, err := source.Fetch(context.Background(), "abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "already visible" {
		t.Fatalf("unexpected transcript: %q", got)
	}
	if page.invoked {
		t.Fatalf("no control should be invoked when the panel is already open")
	}
}

func TestScrapePageFetchErrorPropagates(t *testing.T) {
	t.Parallel()

	source := NewScrapeSource(&fakePageFetcher{err: fmt.Errorf("watch page status 503")}, nil, noSleepWaiter(1))
	if _, err := source.Fetch(context.Background(), "abc"); err == nil {
		t.Fatalf("expected fetch error to propagate")
	}
}
