// Package dom models the rendered watch page: enumerating actionable
// controls, locating the transcript-reveal control by localized label, and
// reading rendered transcript segments.
package dom

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Control is a transient reference to an actionable element on a host page.
// It is only valid against the PageSession that produced it and must not be
// cached across sessions.
type Control struct {
	Label string
	Index int
}

// PageSession is a live view of one watch page's DOM. Implementations are
// read-only except for Invoke, which triggers the referenced control.
type PageSession interface {
	URL() string
	DocumentLang() string
	Controls() []Control
	Invoke(ctrl Control) error
	PanelExpanded() bool
	TranscriptSegments() []string
}

// controlSelector matches elements that carry an accessible label and can be
// activated.
const controlSelector = `button[aria-label], [role="button"][aria-label], a[aria-label], yt-button-shape button`

const (
	segmentTextSelector  = `.segment-text, yt-formatted-string`
	expandedPanelsFilter = `ytd-engagement-panel-section-list-renderer[visibility="ENGAGEMENT_PANEL_VISIBILITY_EXPANDED"]`
)

// StaticPage is a PageSession over a fetched HTML document. Server-rendered
// transcript markup is readable; Invoke cannot run page scripts, so it only
// records the activation and relies on markup already present.
type StaticPage struct {
	pageURL string
	doc     *goquery.Document
	invoked bool
}

// ParsePage builds a StaticPage from raw watch-page HTML.
func ParsePage(pageURL string, body io.Reader) (*StaticPage, error) {
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, fmt.Errorf("parse page html: %w", err)
	}
	return &StaticPage{pageURL: pageURL, doc: doc}, nil
}

func (p *StaticPage) URL() string {
	if p == nil {
		return ""
	}
	return p.pageURL
}

func (p *StaticPage) DocumentLang() string {
	if p == nil || p.doc == nil {
		return ""
	}
	lang, _ := p.doc.Find("html").First().Attr("lang")
	return strings.TrimSpace(lang)
}

// Controls enumerates labelled actionable elements in document order.
// Elements without a usable label are skipped.
func (p *StaticPage) Controls() []Control {
	if p == nil || p.doc == nil {
		return nil
	}

	var controls []Control
	p.doc.Find(controlSelector).Each(func(i int, sel *goquery.Selection) {
		label := strings.TrimSpace(sel.AttrOr("aria-label", ""))
		if label == "" {
			label = strings.Join(strings.Fields(sel.Text()), " ")
		}
		if label == "" {
			return
		}
		controls = append(controls, Control{Label: label, Index: len(controls)})
	})
	return controls
}

// Invoke marks the control as activated. A static document cannot execute the
// page's click handler, so any transcript panel must already be present in
// the served markup.
func (p *StaticPage) Invoke(_ Control) error {
	if p == nil {
		return fmt.Errorf("page session is nil")
	}
	p.invoked = true
	return nil
}

// PanelExpanded reports whether an expanded engagement panel with transcript
// segments is present in the document.
func (p *StaticPage) PanelExpanded() bool {
	if p == nil || p.doc == nil {
		return false
	}
	expanded := false
	p.doc.Find(expandedPanelsFilter).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if sel.Find("ytd-transcript-segment-renderer").Length() > 0 {
			expanded = true
			return false
		}
		return true
	})
	if expanded {
		return true
	}
	return p.doc.Find("ytd-transcript-segment-renderer").Length() > 0
}

// TranscriptSegments returns the text of each rendered transcript segment in
// document order, empties discarded.
func (p *StaticPage) TranscriptSegments() []string {
	if p == nil || p.doc == nil {
		return nil
	}

	var segments []string
	p.doc.Find("ytd-transcript-segment-renderer").Each(func(_ int, renderer *goquery.Selection) {
		text := renderer.Find(segmentTextSelector).First().Text()
		if strings.TrimSpace(text) == "" {
			text = renderer.Text()
		}
		clean := strings.Join(strings.Fields(text), " ")
		if clean == "" {
			return
		}
		segments = append(segments, clean)
	})
	return segments
}
