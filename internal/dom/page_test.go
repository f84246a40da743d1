package dom

import (
	"strings"
	"testing"
)

const watchPageFixture = `<!DOCTYPE html>
<html lang="en-US">
<body>
  <button aria-label="Share">Share</button>
  <a aria-label="Download this video">Download</a>
  <div role="button" aria-label="Show transcript"></div>
  <button></button>
  <ytd-engagement-panel-section-list-renderer visibility="ENGAGEMENT_PANEL_VISIBILITY_EXPANDED">
    <ytd-transcript-segment-renderer>
      <yt-formatted-string class="segment-text">Hello there</yt-formatted-string>
    </ytd-transcript-segment-renderer>
    <ytd-transcript-segment-renderer>
      <yt-formatted-string class="segment-text">   </yt-formatted-string>
    </ytd-transcript-segment-renderer>
    <ytd-transcript-segment-renderer>
      <yt-formatted-string class="segment-text">general kenobi</yt-formatted-string>
    </ytd-transcript-segment-renderer>
  </ytd-engagement-panel-section-list-renderer>
</body>
</html>`

func TestParsePageControls(t *testing.T) {
	t.Parallel()

	page, err := ParsePage("https://www.youtube.com/watch?v=abc", strings.NewReader(watchPageFixture))
	if err != nil {
		t.Fatalf("parse page: %v", err)
	}

	controls := page.Controls()
	if len(controls) != 3 {
		t.Fatalf("expected 3 labelled controls, got %d: %v", len(controls), controls)
	}
	if controls[2].Label != "Show transcript" {
		t.Fatalf("unexpected third control label: %q", controls[2].Label)
	}
	if controls[0].Index != 0 || controls[2].Index != 2 {
		t.Fatalf("controls must keep document order: %v", controls)
	}
}

func TestParsePageDocumentLang(t *testing.T) {
	t.Parallel()

	page, err := ParsePage("https://www.youtube.com/watch?v=abc", strings.NewReader(watchPageFixture))
	if err != nil {
		t.Fatalf("parse page: %v", err)
	}
	if got := page.DocumentLang(); got != "en-US" {
		t.Fatalf("unexpected document lang: %q", got)
	}
}

func TestParsePageTranscriptSegments(t *testing.T) {
	t.Parallel()

	page, err := ParsePage("https://www.youtube.com/watch?v=abc", strings.NewReader(watchPageFixture))
	if err != nil {
		t.Fatalf("parse page: %v", err)
	}

	if !page.PanelExpanded() {
		t.Fatalf("expected expanded transcript panel")
	}

	segments := page.TranscriptSegments()
	want := []string{"Hello there", "general kenobi"}
	if len(segments) != len(want) {
		t.Fatalf("expected %d segments, got %d: %v", len(want), len(segments), segments)
	}
	for i := range want {
		if segments[i] != want[i] {
			t.Fatalf("segment %d mismatch: want %q got %q", i, want[i], segments[i])
		}
	}
}

func TestParsePageWithoutPanel(t *testing.T) {
	t.Parallel()

	page, err := ParsePage("https://www.youtube.com/watch?v=abc", strings.NewReader(`<html><body><button aria-label="Share">x</button></body></html>`))
	if err != nil {
		t.Fatalf("parse page: %v", err)
	}
	if page.PanelExpanded() {
		t.Fatalf("did not expect an expanded panel")
	}
	if segments := page.TranscriptSegments(); len(segments) != 0 {
		t.Fatalf("expected no segments, got %v", segments)
	}
}
