package translate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/godhanfeeds/godhan/internal/config"
)

// Client exposes the machine-translation operation used by the catalog
// service. Implementations must be safe for concurrent use.
type Client interface {
	Translate(ctx context.Context, text, source, target string) (string, error)
}

// APIClient is a resty-backed client for a LibreTranslate-compatible
// translation API.
type APIClient struct {
	httpClient *resty.Client
	apiKey     string
}

// NewClient builds a translation client using the provided configuration values.
func NewClient(cfg config.TranslateConfig) *APIClient {
	base := strings.TrimSuffix(cfg.BaseURL, "/")

	restyClient := resty.New()
	restyClient.
		SetBaseURL(base).
		SetHeader("Content-Type", "application/json").
		SetTimeout(10 * time.Second)

	return &APIClient{
		httpClient: restyClient,
		apiKey:     cfg.APIKey,
	}
}

type translateRequest struct {
	Query  string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
}

type apiError struct {
	Error string `json:"error"`
}

// Translate sends one text through the translation API. Callers treat
// failures as non-fatal and fall back to the source text.
func (c *APIClient) Translate(ctx context.Context, text, source, target string) (string, error) {
	if strings.TrimSpace(text) == "" || source == target {
		return text, nil
	}

	result := new(translateResponse)
	errPayload := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(translateRequest{
			Query:  text,
			Source: source,
			Target: target,
			Format: "text",
			APIKey: c.apiKey,
		}).
		SetResult(result).
		SetError(errPayload).
		Post("/translate")
	if err != nil {
		return "", fmt.Errorf("translate request failed: %w", err)
	}

	if resp.IsError() {
		if errPayload.Error != "" {
			return "", fmt.Errorf("translate api error (%d): %s", resp.StatusCode(), errPayload.Error)
		}
		return "", fmt.Errorf("translate api error (%d)", resp.StatusCode())
	}

	if result.TranslatedText == "" {
		return "", fmt.Errorf("translate api returned empty text")
	}

	return result.TranslatedText, nil
}
