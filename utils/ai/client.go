package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gyaandeepika/config"
	"gyaandeepika/services"
	"gyaandeepika/utils/logger"

	"github.com/go-resty/resty/v2"
)

var ErrUnavailable = errors.New("ai: no model or search endpoint configured")

const maxSearchSnippets = 3

// Options configures a Client. Empty URLs disable that leg.
type Options struct {
	ModelURL  string
	ModelKey  string
	Model     string
	SearchURL string
	SearchKey string
	Timeout   time.Duration
	MaxTokens int
}

// Client calls a hosted text model and falls back to a web search API.
type Client struct {
	http *resty.Client
	opts Options
}

type modelRequest struct {
	Model     string `json:"model"`
	Prompt    string `json:"prompt"`
	MaxTokens int    `json:"max_tokens"`
}

type modelResponse struct {
	Output string `json:"output"`
}

type searchResponse struct {
	Results []struct {
		Title   string `json:"title"`
		Snippet string `json:"snippet"`
		URL     string `json:"url"`
	} `json:"results"`
}

func New(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 60 * time.Second
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = 1024
	}
	return &Client{
		http: resty.New().SetTimeout(opts.Timeout),
		opts: opts,
	}
}

func NewFromConfig(cfg *config.Config) *Client {
	return New(Options{
		ModelURL:  cfg.AIApiURL,
		ModelKey:  cfg.AIApiKey,
		Model:     cfg.AIModel,
		SearchURL: cfg.SearchApiURL,
		SearchKey: cfg.SearchApiKey,
	})
}

// Complete asks the model first; any model failure or empty output falls through to search.
func (c *Client) Complete(ctx context.Context, req services.CompletionRequest) (string, error) {
	var modelErr error
	if c.opts.ModelURL != "" {
		out, err := c.callModel(ctx, req.Prompt)
		if err == nil {
			return out, nil
		}
		modelErr = err
		logger.Log.Warn("model call failed, falling back to search", "error", err)
	}

	if c.opts.SearchURL != "" {
		out, err := c.search(ctx, req.Query)
		if err == nil {
			return out, nil
		}
		if modelErr != nil {
			return "", fmt.Errorf("model: %v; search: %w", modelErr, err)
		}
		return "", err
	}

	if modelErr != nil {
		return "", modelErr
	}
	return "", ErrUnavailable
}

func (c *Client) callModel(ctx context.Context, prompt string) (string, error) {
	var out modelResponse
	r := c.http.R().
		SetContext(ctx).
		SetBody(modelRequest{Model: c.opts.Model, Prompt: prompt, MaxTokens: c.opts.MaxTokens}).
		SetResult(&out)
	if c.opts.ModelKey != "" {
		r.SetAuthToken(c.opts.ModelKey)
	}

	resp, err := r.Post(c.opts.ModelURL)
	if err != nil {
		return "", fmt.Errorf("model request: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("model status %d", resp.StatusCode())
	}
	text := strings.TrimSpace(out.Output)
	if text == "" {
		return "", errors.New("model returned empty output")
	}
	return text, nil
}

func (c *Client) search(ctx context.Context, query string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", errors.New("search query is empty")
	}

	var out searchResponse
	r := c.http.R().
		SetContext(ctx).
		SetQueryParam("q", query).
		SetResult(&out)
	if c.opts.SearchKey != "" {
		r.SetHeader("X-API-Key", c.opts.SearchKey)
	}

	resp, err := r.Get(c.opts.SearchURL)
	if err != nil {
		return "", fmt.Errorf("search request: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("search status %d", resp.StatusCode())
	}

	var parts []string
	for _, res := range out.Results {
		if len(parts) == maxSearchSnippets {
			break
		}
		snippet := strings.TrimSpace(res.Snippet)
		if snippet == "" {
			continue
		}
		if res.Title != "" {
			snippet = res.Title + ": " + snippet
		}
		parts = append(parts, snippet)
	}
	if len(parts) == 0 {
		return "", errors.New("search returned no results")
	}
	return strings.Join(parts, "\n\n"), nil
}
