// Package reddit searches the public Reddit JSON endpoints for recent
// posts mentioning a resort. No OAuth; a descriptive User-Agent keeps us
// inside the anonymous rate limits.
package reddit

import (
	"context"
	"fmt"
	"net/url"

	"github.com/iron-24/ripper-report/internal/adapters/upstream"
)

// Subreddits scoped into every search, matching the communities the
// dashboard reports on.
const Subreddits = "skiing+snowboarding+Tahoe"

type Client struct {
	base string
	u    *upstream.Client
}

func New(base, userAgent string) *Client {
	return &Client{base: base, u: upstream.New("reddit", userAgent, 2)}
}

type listing struct {
	Data struct {
		Children []struct {
			Data map[string]any `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

// Search returns up to limit raw post payloads for query, newest first,
// restricted to the past year.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]map[string]any, error) {
	if limit <= 0 {
		limit = 25
	}
	params := url.Values{
		"q":     []string{query},
		"sort":  []string{"new"},
		"t":     []string{"year"},
		"limit": []string{fmt.Sprintf("%d", limit)},
	}
	u := fmt.Sprintf("%s/r/%s/search.json?%s", c.base, Subreddits, params.Encode())

	var resp listing
	if err := c.u.GetJSON(ctx, u, &resp); err != nil {
		return nil, fmt.Errorf("reddit: %w", err)
	}
	posts := make([]map[string]any, 0, len(resp.Data.Children))
	for _, child := range resp.Data.Children {
		if child.Data != nil {
			posts = append(posts, child.Data)
		}
	}
	return posts, nil
}
