// Package parser turns free-form household notes into structured todo
// or event drafts using the Gemini generateContent API.
//
// The model is asked for JSON against a response schema, so the output
// is machine-readable, but callers still treat every field as
// untrusted: the service layer re-validates and re-defaults everything.
package parser

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ella-quan/meowhome/internal/model"
)

// DefaultBaseURL is the public Gemini API endpoint.
const DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Config wires a Gemini parser.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Client  *http.Client
}

// Gemini calls the generateContent endpoint to parse input.
type Gemini struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
	now     func() time.Time
}

// NewGemini creates a Gemini-backed parser. Returns nil when no API key
// is configured; callers treat a nil parser as "magic input disabled".
func NewGemini(cfg Config) *Gemini {
	if cfg.APIKey == "" {
		return nil
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-2.5-flash"
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Client == nil {
		cfg.Client = &http.Client{Timeout: 15 * time.Second}
	}
	return &Gemini{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		client:  cfg.Client,
		now:     time.Now,
	}
}

type generateRequest struct {
	Contents          []content         `json:"contents"`
	SystemInstruction *content          `json:"systemInstruction,omitempty"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string          `json:"responseMimeType,omitempty"`
	ResponseSchema   json.RawMessage `json:"responseSchema,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// responseSchema constrains the model to the ParsedInput shape.
var responseSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"type": {"type": "string", "enum": ["todo", "event"]},
		"data": {
			"type": "object",
			"properties": {
				"title": {"type": "string"},
				"startTime": {"type": "string"},
				"endTime": {"type": "string"},
				"isAllDay": {"type": "boolean"},
				"location": {"type": "string"},
				"eventType": {"type": "string", "enum": ["appointment", "activity", "celebration", "general"]},
				"priority": {"type": "string", "enum": ["low", "medium", "high"]},
				"assignedTo": {"type": "string"}
			},
			"required": ["title"]
		},
		"confidence": {"type": "number"}
	},
	"required": ["type", "data"]
}`)

// Parse sends the input to Gemini and decodes the structured draft.
func (g *Gemini) Parse(ctx context.Context, input string, members []model.FamilyMember) (*model.ParsedInput, error) {
	reqBody := generateRequest{
		Contents: []content{
			{Parts: []part{{Text: input}}},
		},
		SystemInstruction: &content{
			Parts: []part{{Text: g.systemPrompt(members)}},
		},
		GenerationConfig: &generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   responseSchema,
		},
	}

	raw, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("encode parse request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", g.baseURL, g.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("build parse request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call parser: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read parser response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("parser returned status %d", resp.StatusCode)
	}

	var decoded generateResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("decode parser response: %w", err)
	}
	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("parser returned no candidates")
	}

	var parsed model.ParsedInput
	if err := json.Unmarshal([]byte(decoded.Candidates[0].Content.Parts[0].Text), &parsed); err != nil {
		return nil, fmt.Errorf("decode parsed input: %w", err)
	}
	return &parsed, nil
}

// systemPrompt gives the model the household roster and today's date so
// relative phrases like "friday" and names resolve sensibly.
func (g *Gemini) systemPrompt(members []model.FamilyMember) string {
	var b strings.Builder
	b.WriteString("You convert one short household note into either a todo or a calendar event.\n")
	b.WriteString("Respond with JSON only, matching the provided schema.\n")
	b.WriteString("Timestamps are ISO 8601 in the family's local time.\n")
	fmt.Fprintf(&b, "Today is %s.\n", g.now().Format("Monday, 2 January 2006"))

	if len(members) > 0 {
		b.WriteString("Family members (use the name as assignedTo when the note mentions one):\n")
		for _, m := range members {
			fmt.Fprintf(&b, "- %s\n", m.Name)
		}
	}
	return b.String()
}
