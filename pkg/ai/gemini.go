package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	backoff "github.com/cenkalti/backoff/v4"

	"github.com/meetsync-team/meetsync/pkg/config"
)

// GeminiClient is a minimal client for the Gemini generateContent API used
// for transcript analysis
type GeminiClient struct {
	apiKey  string
	baseURL string
	model   string
	retries int
	client  *http.Client
}

// NewGeminiClient creates a Gemini client using values from the provided config.
// Pass a nil config to fall back to environment variables.
func NewGeminiClient(cfg *config.GeminiConfig) *GeminiClient {
	var apiKey string
	if cfg != nil {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	var base string
	if cfg != nil && cfg.BaseURL != "" {
		base = cfg.BaseURL
	} else {
		base = os.Getenv("GEMINI_API_URL")
		if base == "" {
			base = "https://generativelanguage.googleapis.com"
		}
	}

	model := "gemini-1.5-flash"
	if cfg != nil && cfg.Model != "" {
		model = cfg.Model
	}

	retries := 3
	if cfg != nil && cfg.MaxRetries > 0 {
		retries = cfg.MaxRetries
	}

	httpClient := &http.Client{}
	if cfg != nil && cfg.Timeout > 0 {
		httpClient.Timeout = cfg.Timeout
	}

	return &GeminiClient{
		apiKey:  apiKey,
		baseURL: base,
		model:   model,
		retries: retries,
		client:  httpClient,
	}
}

// GenerateRequest is the shape for generateContent requests
type GenerateRequest struct {
	Contents []Content `json:"contents"`
}

// Content holds one message part list
type Content struct {
	Parts []Part `json:"parts"`
}

// Part holds one text fragment
type Part struct {
	Text string `json:"text"`
}

// GenerateResponse is a minimal response shape
type GenerateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

const analysisPrompt = `Analyze the following meeting transcript. Return ONLY a JSON object with this shape:
{"summary": "...", "action_items": [{"description": "...", "priority": "high|medium|low", "owner": "person name if mentioned", "deadline": "RFC3339 timestamp if mentioned"}]}

Transcript:

%s`

// AnalyzeTranscript sends the transcript to Gemini and returns the raw model
// output. Transient failures (network errors, 5xx, 429) are retried with
// exponential backoff.
func (g *GeminiClient) AnalyzeTranscript(ctx context.Context, transcript string) (string, error) {
	reqBody := GenerateRequest{
		Contents: []Content{
			{Parts: []Part{{Text: fmt.Sprintf(analysisPrompt, transcript)}}},
		},
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent", g.baseURL, g.model)

	var content string
	callFn := func() error {
		req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(b))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("x-goog-api-key", g.apiKey)
		req.Header.Set("Content-Type", "application/json")

		resp, err := g.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			return fmt.Errorf("gemini returned status %d", resp.StatusCode)
		}
		if resp.StatusCode >= 400 {
			return backoff.Permanent(fmt.Errorf("gemini returned status %d", resp.StatusCode))
		}

		var gr GenerateResponse
		if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
			return backoff.Permanent(err)
		}
		if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
			return backoff.Permanent(fmt.Errorf("empty response from gemini"))
		}

		content = gr.Candidates[0].Content.Parts[0].Text
		return nil
	}

	bo := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(g.retries)),
		ctx,
	)
	if err := backoff.Retry(callFn, bo); err != nil {
		return "", err
	}

	return content, nil
}
