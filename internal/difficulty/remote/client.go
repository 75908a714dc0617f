// Package remote talks to a difficulty suggestion service over HTTP and
// serves any local suggester the same way.
//
// The wire format is JSON: a POST body of {"playerScore": n} answered with
// {"enemySpawnRate": .., "obstacleComplexity": .., "gameSpeedMultiplier": ..}.
// Any answer field may be missing or malformed; each is decoded on its own.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/vovakirdan/shadow-strike/internal/config"
	"github.com/vovakirdan/shadow-strike/internal/difficulty"
	"github.com/vovakirdan/shadow-strike/internal/registry"
)

// Path is where Handler is mounted by the suggest-server command.
const Path = "/difficulty"

// maxBody bounds how much of a response or request body is read.
const maxBody = 64 << 10

// Request is the body sent to the suggestion service.
type Request struct {
	PlayerScore int `json:"playerScore"`
}

func init() {
	registry.Register("remote", "ask an HTTP suggestion service at difficulty.url", func(cfg config.DifficultyConfig) (difficulty.Suggester, error) {
		if cfg.URL == "" {
			return nil, errors.New("remote: difficulty url is not set")
		}
		return NewClient(cfg.URL, nil), nil
	})
}

// Client is a difficulty.Suggester backed by an HTTP service.
type Client struct {
	URL  string
	HTTP *http.Client
}

// NewClient creates a client for url. A nil httpClient uses http.DefaultClient;
// request deadlines come from the context passed to Suggest.
func NewClient(url string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{URL: url, HTTP: httpClient}
}

// Suggest implements difficulty.Suggester. Transport failures and non-2xx
// responses wrap difficulty.ErrUnavailable.
func (c *Client) Suggest(ctx context.Context, score int) (difficulty.Suggestion, error) {
	body, err := json.Marshal(Request{PlayerScore: score})
	if err != nil {
		return difficulty.Suggestion{}, fmt.Errorf("remote: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(body))
	if err != nil {
		return difficulty.Suggestion{}, fmt.Errorf("remote: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return difficulty.Suggestion{}, fmt.Errorf("%w: %w", difficulty.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBody))
		return difficulty.Suggestion{}, fmt.Errorf("%w: status %s", difficulty.ErrUnavailable, resp.Status)
	}

	var fields map[string]json.RawMessage
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBody)).Decode(&fields); err != nil {
		return difficulty.Suggestion{}, fmt.Errorf("remote: decode response: %w", err)
	}
	return difficulty.Suggestion{
		EnemySpawnRate:      field(fields, "enemySpawnRate"),
		ObstacleComplexity:  field(fields, "obstacleComplexity"),
		GameSpeedMultiplier: field(fields, "gameSpeedMultiplier"),
	}, nil
}

// field decodes one answer field on its own. A missing or non-numeric value
// yields nil so the other fields still apply.
func field(fields map[string]json.RawMessage, name string) *float64 {
	raw, ok := fields[name]
	if !ok {
		return nil
	}
	var v *float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return v
}
