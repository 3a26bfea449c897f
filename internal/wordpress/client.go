package wordpress

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to the WordPress REST posts endpoint with an application
// password credential pair.
type Client struct {
	baseURL     string
	user        string
	appPassword string
	client      *http.Client
}

// NewClient builds a client for the site at baseURL (no trailing slash
// required).
func NewClient(baseURL, user, appPassword string) *Client {
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		user:        user,
		appPassword: appPassword,
		client:      &http.Client{Timeout: 60 * time.Second},
	}
}

// Post is the create-post request payload.
type Post struct {
	Title         string `json:"title"`
	Content       string `json:"content"`
	Status        string `json:"status"`
	Categories    []int  `json:"categories,omitempty"`
	FeaturedMedia int    `json:"featured_media,omitempty"`
}

// PostResponse is the resource descriptor returned on creation.
type PostResponse struct {
	ID   int    `json:"id"`
	Link string `json:"link"`
}

// CreatePost submits the post and returns the parsed descriptor when the
// endpoint answers 201. For any other status the descriptor is nil and the
// raw response body is returned for diagnostics alongside the status code.
func (c *Client) CreatePost(ctx context.Context, post Post) (*PostResponse, int, string, error) {
	payload, err := json.Marshal(post)
	if err != nil {
		return nil, 0, "", fmt.Errorf("marshal post: %w", err)
	}

	endpoint := c.baseURL + "/wp-json/wp/v2/posts"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, 0, "", fmt.Errorf("create request: %w", err)
	}
	req.SetBasicAuth(c.user, c.appPassword)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return nil, 0, "", fmt.Errorf("post to wordpress: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, res.StatusCode, "", fmt.Errorf("read response: %w", err)
	}

	if res.StatusCode != http.StatusCreated {
		return nil, res.StatusCode, string(body), nil
	}

	var pr PostResponse
	if err := json.Unmarshal(body, &pr); err != nil {
		return nil, res.StatusCode, string(body), fmt.Errorf("unmarshal response: %w", err)
	}
	return &pr, res.StatusCode, "", nil
}
