package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mnadalc/yt-translate-transcription/internal/enhancer"
	"github.com/mnadalc/yt-translate-transcription/internal/globaltime"
	"github.com/mnadalc/yt-translate-transcription/internal/transcript"
	"github.com/mnadalc/yt-translate-transcription/internal/translation"
)

// maxMessageBytes bounds boundary message bodies.
const maxMessageBytes = 1 << 20

func (s *Server) handleHealth(c echo.Context) error {
	return success(c, map[string]any{
		"service": "yt-transcript",
		"time":    globaltime.UTC(),
	})
}

// handleMessage is the boundary endpoint. The response shape is the message
// contract itself, not the jsend envelope: callers of the boundary expect
// {success, transcript|error} regardless of outcome, always with HTTP 200.
func (s *Server) handleMessage(c echo.Context) error {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxMessageBytes))
	if err != nil {
		return c.JSON(http.StatusOK, map[string]any{
			"success": false,
			"error":   "failed to read message body",
		})
	}
	resp := s.router.Handle(c.Request().Context(), json.RawMessage(body))
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) handleTranscript(c echo.Context) error {
	pageURL := strings.TrimSpace(c.QueryParam("url"))
	if pageURL == "" {
		return failValidation(c, map[string]string{"url": "is required"})
	}

	text, err := s.transcripts.Extract(c.Request().Context(), pageURL)
	switch {
	case errors.Is(err, transcript.ErrMissingVideoID):
		return failValidation(c, map[string]string{"url": "must carry a v= video id"})
	case errors.Is(err, transcript.ErrNotAvailable):
		return fail(c, http.StatusNotFound, "No transcript available for this video", nil)
	case err != nil:
		s.logger.Error().Err(err).Str("url", pageURL).Msg("transcript extraction failed")
		return internalError(c, "Failed to retrieve transcript")
	}

	return success(c, map[string]any{
		"transcript": text,
	})
}

type translateRequest struct {
	Text       string `json:"text"`
	TargetLang string `json:"target_lang"`
}

func (s *Server) handleTranslate(c echo.Context) error {
	var req translateRequest
	if err := decodeJSONBody(c, &req); err != nil {
		return failValidation(c, map[string]string{"body": err.Error()})
	}
	if strings.TrimSpace(req.Text) == "" {
		return failValidation(c, map[string]string{"text": "is required"})
	}

	targetLang := strings.TrimSpace(req.TargetLang)
	if targetLang == "" {
		targetLang = s.preferredLanguage(c)
	}

	// An "original" preference means no translation at all.
	if targetLang == translation.OriginalLanguageCode {
		return success(c, map[string]any{
			"translated_text": req.Text,
			"target_lang":     translation.OriginalLanguageCode,
		})
	}

	translated, err := s.translator.Translate(c.Request().Context(), req.Text, targetLang)
	if err != nil {
		s.logger.Error().Err(err).Str("target_lang", targetLang).Msg("translation failed")
		return fail(c, http.StatusBadGateway, "Translation failed", nil)
	}

	return success(c, map[string]any{
		"translated_text": translated,
		"target_lang":     targetLang,
	})
}

type summaryRequest struct {
	Text string `json:"text"`
}

func (s *Server) handleSummary(c echo.Context) error {
	var req summaryRequest
	if err := decodeJSONBody(c, &req); err != nil {
		return failValidation(c, map[string]string{"body": err.Error()})
	}
	if strings.TrimSpace(req.Text) == "" {
		return failValidation(c, map[string]string{"text": "is required"})
	}

	summary, err := s.summaries.Enhance(c.Request().Context(), req.Text)
	switch {
	case errors.Is(err, enhancer.ErrRateLimited):
		return fail(c, http.StatusTooManyRequests, err.Error(), nil)
	case errors.Is(err, enhancer.ErrModelLoading):
		return fail(c, http.StatusServiceUnavailable, err.Error(), nil)
	case err != nil:
		s.logger.Error().Err(err).Msg("summary failed")
		return fail(c, http.StatusBadGateway, "Summarization failed", nil)
	}

	return success(c, map[string]any{
		"summary": summary,
	})
}

func decodeJSONBody(c echo.Context, target any) error {
	decoder := json.NewDecoder(io.LimitReader(c.Request().Body, maxMessageBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}
