package httpapi

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/mnadalc/yt-translate-transcription/internal/language"
	"github.com/mnadalc/yt-translate-transcription/internal/prefs"
	"github.com/mnadalc/yt-translate-transcription/internal/translation"
)

const defaultViewerLanguage = "en"

func (s *Server) handleLanguages(c echo.Context) error {
	return success(c, map[string]any{
		"items":            s.viewerLanguageOptions(),
		"default_provider": s.registry.DefaultProvider(),
	})
}

func (s *Server) handleGetSettings(c echo.Context) error {
	return success(c, map[string]any{
		"preferred_language": s.preferredLanguage(c),
	})
}

type putSettingsRequest struct {
	PreferredLanguage string `json:"preferred_language"`
}

func (s *Server) handlePutSettings(c echo.Context) error {
	if s.store == nil {
		return internalError(c, "Failed to save settings")
	}

	var req putSettingsRequest
	if err := decodeJSONBody(c, &req); err != nil {
		return failValidation(c, map[string]string{"body": err.Error()})
	}

	lang := normalizeViewerLanguage(req.PreferredLanguage)
	if !isSupportedViewerLanguage(lang, s.viewerLanguageOptions()) {
		return failValidation(c, map[string]string{"preferred_language": "is not supported"})
	}

	if err := s.store.SetPreferredLanguage(c.Request().Context(), lang); err != nil {
		s.logger.Error().Err(err).Str("lang", lang).Msg("save preferred language failed")
		return internalError(c, "Failed to save settings")
	}

	return success(c, map[string]any{
		"preferred_language": lang,
	})
}

// preferredLanguage resolves the persisted preference, falling back to the
// default when none was ever written or the store is unavailable.
func (s *Server) preferredLanguage(c echo.Context) string {
	if s == nil || s.store == nil {
		return defaultViewerLanguage
	}
	value, err := s.store.PreferredLanguage(c.Request().Context())
	if errors.Is(err, prefs.ErrNotSet) {
		return defaultViewerLanguage
	}
	if err != nil {
		s.logger.Warn().Err(err).Msg("read preferred language failed")
		return defaultViewerLanguage
	}
	return normalizeViewerLanguage(value)
}

// viewerLanguageOptions lists every language a viewer can pick, starting with
// the untranslated original.
func (s *Server) viewerLanguageOptions() []translation.LanguageOption {
	if s == nil {
		return translation.ViewerLanguageOptions(nil)
	}
	return translation.ViewerLanguageOptions(s.registry)
}

func normalizeViewerLanguage(raw string) string {
	lang := language.NormalizeCode(raw)
	if lang == "" {
		return defaultViewerLanguage
	}
	return lang
}

func isSupportedViewerLanguage(lang string, options []translation.LanguageOption) bool {
	normalized := normalizeViewerLanguage(lang)
	for _, option := range options {
		if normalizeViewerLanguage(option.Code) == normalized {
			return true
		}
	}
	return false
}
