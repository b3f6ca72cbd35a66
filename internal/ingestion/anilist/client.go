package anilist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	apiURL = "https://graphql.anilist.co"

	// AniList allows ~90 requests per minute
	requestsPerSecond = 1
	requestBurst      = 5

	maxRetries   = 5
	initialDelay = 1 * time.Second
	maxDelay     = 32 * time.Second
)

// Client issues rate-limited GraphQL requests against the AniList API.
type Client struct {
	apiURL      string
	httpClient  *http.Client
	rateLimiter *rate.Limiter
}

func NewClient() *Client {
	return &Client{
		apiURL:      apiURL,
		rateLimiter: rate.NewLimiter(rate.Limit(requestsPerSecond), requestBurst),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
}

// mangaPageQuery fetches popular manga plus their anime relations, which is
// everything a license import needs: the source work and its adaptations.
const mangaPageQuery = `
query ($page: Int, $perPage: Int) {
    Page(page: $page, perPage: $perPage) {
        pageInfo {
            currentPage
            hasNextPage
        }
        media(type: MANGA, sort: POPULARITY_DESC) {
            id
            title {
                english
                romaji
            }
            status
            volumes
            staff(perPage: 4) {
                edges {
                    role
                    node {
                        name {
                            full
                        }
                    }
                }
            }
            relations {
                edges {
                    relationType
                    node {
                        id
                        type
                        format
                        episodes
                        duration
                        status
                        title {
                            english
                            romaji
                        }
                    }
                }
            }
        }
    }
}`

// FetchMangaPage returns one page of manga media with their relations.
func (c *Client) FetchMangaPage(ctx context.Context, page, perPage int) (*MangaPage, error) {
	req := graphQLRequest{
		Query: mangaPageQuery,
		Variables: map[string]any{
			"page":    page,
			"perPage": perPage,
		},
	}

	raw, err := c.do(ctx, req)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Page MangaPage `json:"Page"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode page response: %w", err)
	}
	return &payload.Page, nil
}

// do executes a GraphQL request with rate limiting and exponential backoff
// on 429/5xx responses.
func (c *Client) do(ctx context.Context, req graphQLRequest) (json.RawMessage, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	delay := initialDelay
	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, err
		}

		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		httpReq.Header.Set("Content-Type", "application/json")
		httpReq.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(httpReq)
		if err != nil {
			lastErr = err
		} else {
			data, readErr := io.ReadAll(resp.Body)
			resp.Body.Close()

			switch {
			case readErr != nil:
				lastErr = readErr
			case resp.StatusCode == http.StatusOK:
				var gqlResp graphQLResponse
				if err := json.Unmarshal(data, &gqlResp); err != nil {
					return nil, fmt.Errorf("failed to decode response: %w", err)
				}
				if len(gqlResp.Errors) > 0 {
					return nil, fmt.Errorf("graphql error: %s", gqlResp.Errors[0].Message)
				}
				return gqlResp.Data, nil
			case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
				lastErr = fmt.Errorf("api returned status %d", resp.StatusCode)
			default:
				return nil, fmt.Errorf("api returned status %d: %s", resp.StatusCode, data)
			}
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
		if delay > maxDelay {
			delay = maxDelay
		}
	}
	return nil, fmt.Errorf("request failed after %d attempts: %w", maxRetries, lastErr)
}
