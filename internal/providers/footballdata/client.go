package footballdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"matchday-service/internal/domain"
	"matchday-service/internal/providers"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config controls how the client reaches the upstream API.
type Config struct {
	BaseURL     string
	APIKey      string
	Competition string
	HTTPClient  *http.Client
}

// Client fetches match lists from the football-data API and maps them to
// domain models.
type Client struct {
	baseURL     string
	apiKey      string
	competition string
	httpClient  httpDoer
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:     normalizeBaseURL(cfg.BaseURL),
		apiKey:      cfg.APIKey,
		competition: resolveCompetition(cfg.Competition),
		httpClient:  resolveHTTPClient(cfg.HTTPClient),
	}
}

// FetchMatches retrieves the fixture list for the given competition code.
// An empty code falls back to the configured default.
func (c *Client) FetchMatches(ctx context.Context, competition string) (domain.MatchList, error) {
	if competition == "" {
		competition = c.competition
	}

	req, err := c.buildRequest(ctx, competition)
	if err != nil {
		return domain.MatchList{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.MatchList{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return domain.MatchList{}, fmt.Errorf("footballdata: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var envelope matchesEnvelope
	if decodeErr := json.NewDecoder(resp.Body).Decode(&envelope); decodeErr != nil {
		return domain.MatchList{}, fmt.Errorf("footballdata: decoding response: %w", decodeErr)
	}

	// A present non-success status is a business failure even on HTTP 200.
	if envelope.Status != "" && envelope.Status != statusSuccess {
		return domain.MatchList{}, &providers.BusinessError{
			Status:  envelope.Status,
			Message: envelope.Message,
		}
	}

	return mapMatchList(envelope), nil
}

func (c *Client) buildRequest(ctx context.Context, competition string) (*http.Request, error) {
	url := fmt.Sprintf("%s/competitions/%s/matches", c.baseURL, competition)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	if c.apiKey != "" {
		req.Header.Set("X-Auth-Token", c.apiKey)
	}

	return req, nil
}

func normalizeBaseURL(base string) string {
	if base == "" {
		base = defaultBaseURL
	}
	return strings.TrimRight(base, "/")
}

func resolveCompetition(code string) string {
	if code == "" {
		return defaultCompetition
	}
	return code
}

func resolveHTTPClient(client *http.Client) httpDoer {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: defaultTimeout}
}
