// Package provider is the api-ninjas client behind exercise and
// nutrition search. It treats the upstream as best-effort: non-2xx
// responses are errors, but missing record fields are substituted with
// defaults rather than rejected.
package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/smokifit/smokifit/internal/session"
)

// DefaultBaseURL is the production api-ninjas endpoint.
const DefaultBaseURL = "https://api.api-ninjas.com"

const (
	apiKeyHeader   = "X-Api-Key"
	defaultTimeout = 15 * time.Second
)

// ErrRequestFailed wraps non-2xx upstream responses.
var ErrRequestFailed = errors.New("api request failed")

// ExerciseQuery holds the search parameters of an exercise lookup.
// Empty fields are omitted from the request.
type ExerciseQuery struct {
	Name       string
	Type       string
	Muscle     string
	Difficulty string
}

// Client is a thin JSON-over-HTTP client for api-ninjas.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     zerolog.Logger
}

// New creates a Client. An empty baseURL falls back to DefaultBaseURL
// and a nil httpClient to a default one with a request timeout.
func New(baseURL, apiKey string, httpClient *http.Client, logger zerolog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: httpClient,
		logger:     logger,
	}
}

// SearchExercises queries the exercises endpoint with the given filters.
func (c *Client) SearchExercises(ctx context.Context, q ExerciseQuery) ([]session.ExerciseRecord, error) {
	params := url.Values{}
	if q.Name != "" {
		params.Set("name", q.Name)
	}
	if q.Type != "" {
		params.Set("type", q.Type)
	}
	if q.Muscle != "" {
		params.Set("muscle", q.Muscle)
	}
	if q.Difficulty != "" {
		params.Set("difficulty", q.Difficulty)
	}

	var records []session.ExerciseRecord
	if err := c.get(ctx, "/v1/exercises", params, &records); err != nil {
		return nil, fmt.Errorf("search exercises: %w", err)
	}
	return records, nil
}

// SearchNutrition queries the nutrition endpoint. Multiple foods can be
// combined in one query ("1lb brisket and fries"); serving sizes missing
// from the response are normalized to the default when aggregated.
func (c *Client) SearchNutrition(ctx context.Context, query string) ([]session.NutritionRecord, error) {
	params := url.Values{}
	params.Set("query", query)

	var records []session.NutritionRecord
	if err := c.get(ctx, "/v1/nutrition", params, &records); err != nil {
		return nil, fmt.Errorf("search nutrition: %w", err)
	}
	return records, nil
}

// VerifyKey checks an API key against the dad-joke endpoint, the
// cheapest authenticated call the API offers. A valid key returns
// (true, joke); a rejected key returns (false, "") without error.
// Transport failures are returned as errors.
func (c *Client) VerifyKey(ctx context.Context, key string) (bool, string, error) {
	reqURL := c.baseURL + "/v1/dadjokes?limit=1"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return false, "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set(apiKeyHeader, key)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, "", fmt.Errorf("verify key: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Debug().Int("status", resp.StatusCode).Msg("api key rejected")
		return false, "", nil
	}

	var jokes []struct {
		Joke string `json:"joke"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&jokes); err != nil {
		return false, "", fmt.Errorf("decode joke response: %w", err)
	}
	if len(jokes) == 0 {
		return true, "", nil
	}
	return true, jokes[0].Joke, nil
}

// get performs an authenticated GET and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set(apiKeyHeader, c.apiKey)

	c.logger.Debug().Str("url", reqURL).Msg("calling api-ninjas")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d: %s", ErrRequestFailed, resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}
