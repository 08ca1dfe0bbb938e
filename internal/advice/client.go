// Package advice forwards customer questions to an external
// text-generation API and maps every failure to a fixed, user-safe
// fallback string.
package advice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

const (
	// DefaultBaseURL is the Gemini API host.
	DefaultBaseURL = "https://generativelanguage.googleapis.com"

	// Model is the generation model used for all advice calls.
	Model = "gemini-2.5-flash"
)

// Fixed user-facing replies. These exact strings are part of the
// product behavior: users never see raw errors.
const (
	OfflineMessage    = "AI Assistant is currently offline (Missing API Key)."
	ConnectionMessage = "Sorry, I'm having trouble connecting to the print knowledge base right now."
	EmptyReplyMessage = "I couldn't generate a response at the moment."
)

// Client calls the generateContent endpoint. A missing API key is a
// first-class state: the client short-circuits to OfflineMessage
// without attempting a request.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
	sfg        singleflight.Group // collapses identical concurrent questions
}

// New builds an advice client. baseURL may be empty to use the real
// API host; tests point it at a local server.
func New(apiKey, baseURL string, log zerolog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        log,
	}
}

type generateRequest struct {
	SystemInstruction content   `json:"system_instruction"`
	Contents          []content `json:"contents"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content content `json:"content"`
}

// GetPrintAdvice answers a free-text printing question. It never
// returns an error: failures are logged and mapped to one of the fixed
// fallback strings. A single attempt is made, with no retry.
func (c *Client) GetPrintAdvice(ctx context.Context, query string) string {
	if c.apiKey == "" {
		return OfflineMessage
	}

	v, err, _ := c.sfg.Do(query, func() (interface{}, error) {
		// The collapsed call serves every waiter, so it must not die
		// with whichever caller arrived first. The HTTP client timeout
		// still bounds it.
		return c.generate(context.WithoutCancel(ctx), query)
	})
	if err != nil {
		c.log.Error().Err(err).Msg("advice call failed")
		return ConnectionMessage
	}

	reply := v.(string)
	if reply == "" {
		return EmptyReplyMessage
	}
	return reply
}

func (c *Client) generate(ctx context.Context, query string) (string, error) {
	reqBody := generateRequest{
		SystemInstruction: content{Parts: []part{{Text: systemInstruction}}},
		Contents:          []content{{Role: "user", Parts: []part{{Text: query}}}},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<10))
		return "", fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}
