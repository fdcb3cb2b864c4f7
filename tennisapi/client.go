// Package tennisapi is the outbound client for the college-tennis GraphQL
// endpoint serving public tournament event data.
package tennisapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/juanmarino15/CollegeTennisAnalytics-sub000/normalize"
)

var (
	ErrUpstreamStatus = errors.New("upstream returned non-200 status")
	ErrEmptyPayload   = errors.New("response contains no event data")
)

const eventDataQuery = `
	query TournamentPublicEventData($eventId: ID!, $tournamentId: ID!) {
		tournamentPublicEventData(eventId: $eventId, tournamentId: $tournamentId)
	}
`

// Client fetches the full draw payload for one (tournament, event) pair.
// The raw response body is returned alongside the decoded payload so the
// caller can archive it.
type Client interface {
	FetchEventData(ctx context.Context, tournamentID, eventID string) (*EventPayload, []byte, error)
}

type httpClient struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string, timeout time.Duration) Client {
	return &httpClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type graphQLRequest struct {
	OperationName string            `json:"operationName"`
	Query         string            `json:"query"`
	Variables     map[string]string `json:"variables"`
}

type graphQLResponse struct {
	Data struct {
		TournamentPublicEventData json.RawMessage `json:"tournamentPublicEventData"`
	} `json:"data"`
}

func (c *httpClient) FetchEventData(ctx context.Context, tournamentID, eventID string) (*EventPayload, []byte, error) {
	payload := graphQLRequest{
		OperationName: "TournamentPublicEventData",
		Query:         eventDataQuery,
		Variables: map[string]string{
			"eventId":      normalize.ID(eventID),
			"tournamentId": normalize.ID(tournamentID),
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal event data request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build event data request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", "https://www.collegetennis.com")
	req.Header.Set("Referer", "https://www.collegetennis.com/")
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("event data request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read event data response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("%w: %d", ErrUpstreamStatus, resp.StatusCode)
	}

	eventPayload, err := decodeEventData(respBody)
	if err != nil {
		return nil, nil, err
	}
	return eventPayload, respBody, nil
}

// decodeEventData unwraps the GraphQL envelope. The inner value is sometimes
// a plain JSON object and sometimes a JSON-encoded string that has to be
// decoded a second time.
func decodeEventData(body []byte) (*EventPayload, error) {
	var envelope graphQLResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode response envelope: %w", err)
	}

	inner := envelope.Data.TournamentPublicEventData
	if len(inner) == 0 || string(inner) == "null" {
		return nil, ErrEmptyPayload
	}

	var encoded string
	if err := json.Unmarshal(inner, &encoded); err == nil {
		inner = []byte(encoded)
	}

	var payload EventPayload
	if err := json.Unmarshal(inner, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode event payload: %w", err)
	}
	return &payload, nil
}
