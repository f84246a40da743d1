package transcript

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/mnadalc/yt-translate-transcription/internal/dom"
	"github.com/mnadalc/yt-translate-transcription/internal/language"
)

// PageFetcher opens a page session for a video id.
type PageFetcher interface {
	OpenPage(ctx context.Context, videoID string) (dom.PageSession, error)
}

// HTTPPageFetcher fetches the watch page over HTTP and parses it into a
// static page session.
type HTTPPageFetcher struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

func NewHTTPPageFetcher(baseURL string, client *http.Client) *HTTPPageFetcher {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &HTTPPageFetcher{
		baseURL:   baseURL,
		userAgent: "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
		client:    client,
	}
}

func (f *HTTPPageFetcher) OpenPage(ctx context.Context, videoID string) (dom.PageSession, error) {
	if f == nil {
		return nil, fmt.Errorf("page fetcher is nil")
	}

	watchURL := f.baseURL + "/watch?v=" + videoID
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, watchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build watch page request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch watch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("watch page status %d", resp.StatusCode)
	}

	page, err := dom.ParsePage(watchURL, resp.Body)
	if err != nil {
		return nil, err
	}
	return page, nil
}

// ScrapeSource reads the transcript out of the rendered watch page: locate
// the reveal control by localized label, invoke it, give the panel a bounded
// settle window, then collect segment texts.
type ScrapeSource struct {
	pages   PageFetcher
	locator *dom.Locator
	waiter  dom.Waiter
}

func NewScrapeSource(pages PageFetcher, locator *dom.Locator, waiter dom.Waiter) *ScrapeSource {
	if locator == nil {
		locator = dom.NewLocator()
	}
	return &ScrapeSource{pages: pages, locator: locator, waiter: waiter}
}

func (s *ScrapeSource) Name() string {
	return "page-scrape"
}

func (s *ScrapeSource) Fetch(ctx context.Context, videoID string) (string, error) {
	if s == nil || s.pages == nil {
		return "", fmt.Errorf("scrape source is not initialized")
	}

	page, err := s.pages.OpenPage(ctx, videoID)
	if err != nil {
		return "", err
	}

	lang := language.Detect(page.URL(), page.DocumentLang())
	ctrl, err := s.locator.Locate(page.Controls(), lang)
	switch {
	case err == nil:
		if err := page.Invoke(ctrl); err != nil {
			return "", fmt.Errorf("invoke transcript control: %w", err)
		}
	case errors.Is(err, dom.ErrNotFound):
		if !page.PanelExpanded() {
			return "", fmt.Errorf("no transcript control and no open panel")
		}
	default:
		return "", err
	}

	var segments []string
	s.waiter.Wait(ctx, func() bool {
		segments = page.TranscriptSegments()
		return len(segments) > 0
	})
	if len(segments) == 0 {
		return "", nil
	}
	return collapseWhitespace(segments), nil
}
