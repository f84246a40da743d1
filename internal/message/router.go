// Package message is the service boundary: a small union of request kinds,
// validated against an embedded JSON schema and dispatched to the transcript
// and summary services. Each request is independent and stateless; every
// request gets exactly one response.
package message

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

const (
	ActionGetTranscript     = "getTranscript"
	ActionEnhanceTranscript = "enhanceTranscript"
)

//go:embed message.schema.json
var messageSchemaJSON string

var (
	compileOnce       sync.Once
	compiledSchema    *jsonschema.Schema
	compiledSchemaErr error
)

// Request is the validated form of one boundary message.
type Request struct {
	Action     string `json:"action"`
	PageURL    string `json:"pageUrl,omitempty"`
	Transcript string `json:"transcript,omitempty"`
}

// Response is the single reply to one boundary message. Both actions answer
// on the transcript field; Error is set only when Success is false.
type Response struct {
	Success    bool   `json:"success"`
	Transcript string `json:"transcript,omitempty"`
	Error      string `json:"error,omitempty"`
}

// TranscriptService retrieves the transcript for a watch page URL.
type TranscriptService interface {
	Extract(ctx context.Context, pageURL string) (string, error)
}

// SummaryService summarizes transcript text.
type SummaryService interface {
	Enhance(ctx context.Context, text string) (string, error)
}

// Router dispatches validated requests to the backing services.
type Router struct {
	transcripts TranscriptService
	summaries   SummaryService
	logger      zerolog.Logger
}

func NewRouter(transcripts TranscriptService, summaries SummaryService, logger zerolog.Logger) *Router {
	return &Router{transcripts: transcripts, summaries: summaries, logger: logger}
}

// ValidateRequest checks raw against the message schema and decodes it.
func ValidateRequest(raw json.RawMessage) (*Request, error) {
	value, err := decodeStrictJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("decode message JSON: %w", err)
	}

	schema, err := loadSchema()
	if err != nil {
		return nil, fmt.Errorf("load message schema: %w", err)
	}
	if err := schema.Validate(value); err != nil {
		return nil, fmt.Errorf("message validation failed: %w", err)
	}

	normalized, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("normalize message JSON: %w", err)
	}

	var req Request
	if err := json.Unmarshal(normalized, &req); err != nil {
		return nil, fmt.Errorf("unmarshal message: %w", err)
	}
	return &req, nil
}

// Handle validates and dispatches one raw message. Dispatch failures are
// folded into the response envelope, never returned as a Go error: the
// boundary always answers.
func (r *Router) Handle(ctx context.Context, raw json.RawMessage) Response {
	if r == nil {
		return Response{Success: false, Error: "message router is not initialized"}
	}

	req, err := ValidateRequest(raw)
	if err != nil {
		return Response{Success: false, Error: err.Error()}
	}

	switch req.Action {
	case ActionGetTranscript:
		text, err := r.transcripts.Extract(ctx, req.PageURL)
		if err != nil {
			r.logger.Warn().Err(err).Str("action", req.Action).Msg("transcript request failed")
			return Response{Success: false, Error: err.Error()}
		}
		return Response{Success: true, Transcript: text}
	case ActionEnhanceTranscript:
		summary, err := r.summaries.Enhance(ctx, req.Transcript)
		if err != nil {
			r.logger.Warn().Err(err).Str("action", req.Action).Msg("enhance request failed")
			return Response{Success: false, Error: err.Error()}
		}
		return Response{Success: true, Transcript: summary}
	default:
		// Unreachable once the schema validated, kept as a guard.
		return Response{Success: false, Error: fmt.Sprintf("unknown action %q", req.Action)}
	}
}

func loadSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020

		if err := compiler.AddResource("message.schema.json", strings.NewReader(messageSchemaJSON)); err != nil {
			compiledSchemaErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		schema, err := compiler.Compile("message.schema.json")
		if err != nil {
			compiledSchemaErr = fmt.Errorf("compile schema: %w", err)
			return
		}
		compiledSchema = schema
	})

	if compiledSchemaErr != nil {
		return nil, compiledSchemaErr
	}
	if compiledSchema == nil {
		return nil, fmt.Errorf("schema not initialized")
	}
	return compiledSchema, nil
}

func decodeStrictJSON(raw json.RawMessage) (any, error) {
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var value any
	if err := decoder.Decode(&value); err != nil {
		return nil, err
	}
	if _, err := decoder.Token(); err != io.EOF {
		return nil, fmt.Errorf("trailing content after JSON document")
	}
	return value, nil
}
