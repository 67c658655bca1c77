package books

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/PauloHFS/biblio/internal/httpclient"
)

var ErrAuthorNotFound = errors.New("author not found")

// AuthorInfo is the projection of an author record the catalog cares about.
type AuthorInfo struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthorsClient calls the authors directory service.
type AuthorsClient struct {
	baseURL string
	http    *httpclient.Client
}

func NewAuthorsClient(baseURL string, client *httpclient.Client) *AuthorsClient {
	if client == nil {
		client = httpclient.Default()
	}
	return &AuthorsClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    client,
	}
}

func (c *AuthorsClient) GetAuthor(ctx context.Context, id int64) (*AuthorInfo, error) {
	url := fmt.Sprintf("%s/authors/%d", c.baseURL, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("authors api call: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, fmt.Errorf("%w: id %d", ErrAuthorNotFound, id)
	default:
		return nil, fmt.Errorf("authors api returned status %d", resp.StatusCode)
	}

	var info AuthorInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &info, nil
}
