package translation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGoogleProviderTranslate(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		if got := query.Get("client"); got != "gtx" {
			t.Errorf("unexpected client: %q", got)
		}
		if got := query.Get("sl"); got != "auto" {
			t.Errorf("unexpected source lang: %q", got)
		}
		if got := query.Get("tl"); got != "es" {
			t.Errorf("unexpected target lang: %q", got)
		}
		if got := query.Get("dt"); got != "t" {
			t.Errorf("unexpected dt: %q", got)
		}
		if got := query.Get("q"); got != "Hello world" {
			t.Errorf("unexpected text: %q", got)
		}
		_, _ = w.Write([]byte(`[[["Hola mundo","Hello world",null,null,10]],null,"en"]`))
	}))
	defer server.Close()

	provider := NewGoogleProvider(server.URL, server.Client())
	resp, err := provider.Translate(context.Background(), TranslateRequest{
		Text:       "Hello world",
		SourceLang: "auto",
		TargetLang: "es",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "Hola mundo" {
		t.Fatalf("unexpected translation: %q", resp.Text)
	}
	if resp.ProviderName != "google" {
		t.Fatalf("unexpected provider name: %q", resp.ProviderName)
	}
}

func TestGoogleProviderDefaultsSourceToAuto(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("sl"); got != "auto" {
			t.Errorf("unexpected source lang: %q", got)
		}
		_, _ = w.Write([]byte(`[[["ok","ok",null,null,1]],null,"en"]`))
	}))
	defer server.Close()

	provider := NewGoogleProvider(server.URL, server.Client())
	if _, err := provider.Translate(context.Background(), TranslateRequest{Text: "ok", TargetLang: "fr"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGoogleProviderErrorStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	provider := NewGoogleProvider(server.URL, server.Client())
	if _, err := provider.Translate(context.Background(), TranslateRequest{Text: "x", TargetLang: "es"}); err == nil {
		t.Fatalf("expected error for 429 response")
	}
}

func TestGoogleProviderMalformedResponse(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"unexpected":"shape"}`))
	}))
	defer server.Close()

	provider := NewGoogleProvider(server.URL, server.Client())
	if _, err := provider.Translate(context.Background(), TranslateRequest{Text: "x", TargetLang: "es"}); err == nil {
		t.Fatalf("expected error for malformed response")
	}
}

func TestGoogleProviderRequiresTargetLang(t *testing.T) {
	t.Parallel()

	provider := NewGoogleProvider("http://localhost:0", nil)
	if _, err := provider.Translate(context.Background(), TranslateRequest{Text: "x"}); err == nil {
		t.Fatalf("expected error without target language")
	}
}
