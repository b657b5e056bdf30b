package rapidapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	rapidAPIURL = "https://api-american-football.p.rapidapi.com"

	headerRapidApiHost = "x-rapidapi-host"
	headerRapidApiKey  = "x-rapidapi-key"

	rapidApiHost = "api-american-football.p.rapidapi.com"

	// Source identifies this provider in the (source, provider id) natural
	// key on game rows.
	Source = "api-american-football"

	// The NFL league id in the provider's numbering.
	leagueNFL = 1
)

// ErrMissingAPIKey is returned by New before any network call is made.
var ErrMissingAPIKey = errors.New("missing RAPIDAPI_KEY")

type Client interface {
	// LoadGames fetches every game event for the season. The provider cannot
	// filter by week server-side, so callers filter the full season locally.
	LoadGames(ctx context.Context, season int) ([]Event, error)
}

type client struct {
	url        string
	key        string
	httpClient *http.Client
}

func New(key string) (Client, error) {
	if key == "" {
		return nil, ErrMissingAPIKey
	}
	c := &client{
		url: rapidAPIURL,
		key: key,
		httpClient: &http.Client{
			Timeout: 1 * time.Minute,
		},
	}
	return c, nil
}

func NewForTest(url string) Client {
	return &client{
		url:        url,
		key:        "not-important",
		httpClient: http.DefaultClient,
	}
}

func (c *client) LoadGames(ctx context.Context, season int) ([]Event, error) {
	url := fmt.Sprintf("%s/games?league=%d&season=%d", c.url, leagueNFL, season)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating rapidapi http request: %w", err)
	}
	req.Header.Add(headerRapidApiHost, rapidApiHost)
	req.Header.Add(headerRapidApiKey, c.key)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending rapidapi http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Keep the body, it usually says why the call was rejected.
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("rapidapi %d: %s", resp.StatusCode, body)
	}

	var parsed struct {
		Response []Event `json:"response"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("error parsing response from rapidapi: %w", err)
	}

	return parsed.Response, nil
}
