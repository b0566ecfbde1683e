// Package extract turns source certificate PDFs into normalized coverage
// documents using Claude.
package extract

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/harper-global/coi-cli/internal/model"
	"github.com/harper-global/coi-cli/pkg/anthropic"
)

// Classification is the lightweight document-type call made before the
// full extraction pass.
type Classification struct {
	DocType    string  `json:"doc_type"`
	Confidence float64 `json:"confidence"`
}

// Extractor runs classification and extraction against the Anthropic API.
type Extractor struct {
	client  anthropic.Client
	limiter *rate.Limiter
	model   string
}

// New builds an Extractor. rps caps the request rate across both calls.
func New(client anthropic.Client, model string, rps float64) *Extractor {
	return &Extractor{
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
		model:   model,
	}
}

// Classify determines the document type of one PDF. Classification is
// advisory: failures degrade to an unknown type instead of aborting the
// extraction that follows.
func (e *Extractor) Classify(ctx context.Context, pdf []byte) Classification {
	unknown := Classification{DocType: "unknown"}
	if err := e.limiter.Wait(ctx); err != nil {
		return unknown
	}

	resp, err := e.client.CreateMessage(ctx, anthropic.MessageRequest{
		Model:     e.model,
		MaxTokens: 512,
		System:    []anthropic.SystemBlock{{Text: classifyPrompt}},
		Messages: []anthropic.Message{{
			Role:    "user",
			Content: "Classify this insurance document.",
			PDF:     pdf,
		}},
	})
	if err != nil {
		zap.L().Warn("extract: classification failed", zap.Error(err))
		return unknown
	}
	resp.Usage.LogCost(e.model, "classify")

	var c Classification
	if err := json.Unmarshal([]byte(stripFences(resp.Text())), &c); err != nil {
		zap.L().Warn("extract: unparseable classification", zap.Error(err))
		return unknown
	}
	if c.DocType == "" {
		c.DocType = "unknown"
	}
	return c
}

// Extract pulls a structured coverage document out of one PDF. docType
// comes from Classify and is passed through to the model as context.
func (e *Extractor) Extract(ctx context.Context, pdf []byte, docType string) (*model.Document, error) {
	if err := e.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "extract: rate limit wait")
	}

	resp, err := e.client.CreateMessage(ctx, anthropic.MessageRequest{
		Model:     e.model,
		MaxTokens: 8192,
		System:    []anthropic.SystemBlock{{Text: extractPrompt}},
		Messages: []anthropic.Message{{
			Role:    "user",
			Content: "This is a " + docType + " document. Extract all data into the JSON template.",
			PDF:     pdf,
		}},
	})
	if err != nil {
		return nil, eris.Wrap(err, "extract: create message")
	}
	resp.Usage.LogCost(e.model, "extract")

	var doc model.Document
	if err := json.Unmarshal([]byte(stripFences(resp.Text())), &doc); err != nil {
		return nil, eris.Wrap(err, "extract: parse extraction JSON")
	}
	return &doc, nil
}

// stripFences removes a markdown code fence if the model wrapped its JSON
// in one despite instructions.
func stripFences(text string) string {
	t := strings.TrimSpace(text)
	if strings.HasPrefix(t, "```") {
		if i := strings.Index(t, "\n"); i >= 0 {
			t = t[i+1:]
		} else {
			t = t[3:]
		}
	}
	t = strings.TrimSuffix(strings.TrimSpace(t), "```")
	return strings.TrimSpace(t)
}
