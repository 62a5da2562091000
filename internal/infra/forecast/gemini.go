package forecast

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"tidewise/config"
	"tidewise/internal/domain/service"

	"github.com/pkg/errors"
)

// GeminiClient implements service.AdvisoryGenerator using the Gemini generateContent API.
type GeminiClient struct {
	apiKey      string
	baseURL     string
	model       string
	temperature float64
	httpClient  *http.Client
	logger      *slog.Logger
}

// NewGeminiClient creates an advisory generator from the advisory config section.
func NewGeminiClient(cfg *config.AdvisoryConfig, logger *slog.Logger) *GeminiClient {
	return &GeminiClient{
		apiKey:      cfg.APIKey,
		baseURL:     cfg.BaseURL,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// GenerateAdvisory sends the prompt as a single user turn and joins the text
// parts of the first candidate.
func (c *GeminiClient) GenerateAdvisory(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", service.ErrProviderNotConfigured
	}

	payload := generateRequest{
		Contents:         []content{{Role: "user", Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{Temperature: c.temperature},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", errors.WithStack(err)
	}

	endpoint := c.baseURL + "/models/" + url.PathEscape(c.model) + ":generateContent"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "create advisory request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "advisory request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.DebugContext(ctx, "Provider rejected request",
			slog.String("provider", "gemini"),
			slog.Int("status", resp.StatusCode))

		return "", errors.Errorf("gemini API error: status %d: %s", resp.StatusCode, msg)
	}

	var gen generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&gen); err != nil {
		return "", errors.Wrap(err, "decode advisory response")
	}
	if len(gen.Candidates) == 0 {
		return "", errors.New("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, p := range gen.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}

	return sb.String(), nil
}

// Gemini API request and response types.

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type generationConfig struct {
	Temperature float64 `json:"temperature"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}
