package translation

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultGoogleBaseURL is the public, keyless translate endpoint.
const DefaultGoogleBaseURL = "https://translate.googleapis.com/translate_a/single"

// GoogleProvider translates through the free web endpoint. The endpoint is
// unofficial: the response is a nested array, and the translation sits at
// [0][0][0].
type GoogleProvider struct {
	baseURL string
	client  *http.Client
}

func NewGoogleProvider(baseURL string, client *http.Client) *GoogleProvider {
	if baseURL == "" {
		baseURL = DefaultGoogleBaseURL
	}
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &GoogleProvider{baseURL: baseURL, client: client}
}

func (p *GoogleProvider) Name() string {
	return "google"
}

func (p *GoogleProvider) SupportedLanguages() []string {
	return SupportedTranslationLanguageCodes()
}

func (p *GoogleProvider) Translate(ctx context.Context, req TranslateRequest) (*TranslateResponse, error) {
	if p == nil {
		return nil, fmt.Errorf("google provider is nil")
	}
	if req.TargetLang == "" {
		return nil, fmt.Errorf("target language is required")
	}

	sourceLang := req.SourceLang
	if sourceLang == "" {
		sourceLang = "auto"
	}

	query := url.Values{}
	query.Set("client", "gtx")
	query.Set("sl", sourceLang)
	query.Set("tl", req.TargetLang)
	query.Set("dt", "t")
	query.Set("q", req.Text)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build translate request: %w", err)
	}

	start := time.Now()
	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("call translate endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("translate endpoint status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read translate response: %w", err)
	}

	translated, err := parseGoogleResponse(body)
	if err != nil {
		return nil, err
	}

	return &TranslateResponse{
		Text:         translated,
		SourceLang:   sourceLang,
		TargetLang:   req.TargetLang,
		ProviderName: p.Name(),
		LatencyMs:    time.Since(start).Milliseconds(),
	}, nil
}

// parseGoogleResponse digs the translation out of the endpoint's nested array
// shape: [[["translated","original",...],...],...].
func parseGoogleResponse(body []byte) (string, error) {
	var payload []json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("decode translate response: %w", err)
	}
	if len(payload) == 0 {
		return "", fmt.Errorf("translate response is empty")
	}

	var sentences [][]json.RawMessage
	if err := json.Unmarshal(payload[0], &sentences); err != nil {
		return "", fmt.Errorf("decode translate sentences: %w", err)
	}
	if len(sentences) == 0 || len(sentences[0]) == 0 {
		return "", fmt.Errorf("translate response has no sentences")
	}

	var translated string
	if err := json.Unmarshal(sentences[0][0], &translated); err != nil {
		return "", fmt.Errorf("decode translated text: %w", err)
	}
	return translated, nil
}
