package books

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"rentabook/util/httpx"
)

const baseURL = "https://www.googleapis.com/books/v1/volumes"

var ErrVolumeNotFound = errors.New("volume not found")

// Volume is the subset of a Google Books volume the app cares about.
type Volume struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Authors     []string `json:"authors,omitempty"`
	Publisher   string   `json:"publisher,omitempty"`
	Description string   `json:"description,omitempty"`
	PageCount   int      `json:"pageCount,omitempty"`
	ImageLink   string   `json:"imageLink,omitempty"`
}

type Client interface {
	Volume(ctx context.Context, id string) (*Volume, error)
}

type client struct {
	http   *http.Client
	apiKey string
}

func NewClient(apiKey string) Client {
	return &client{http: httpx.New(8 * time.Second), apiKey: apiKey}
}

func (c *client) Volume(ctx context.Context, id string) (*Volume, error) {
	u := baseURL + "/" + url.PathEscape(id)
	if c.apiKey != "" {
		u += "?key=" + url.QueryEscape(c.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrVolumeNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google books: unexpected status %d", resp.StatusCode)
	}

	var body struct {
		ID         string `json:"id"`
		VolumeInfo struct {
			Title       string   `json:"title"`
			Authors     []string `json:"authors"`
			Publisher   string   `json:"publisher"`
			Description string   `json:"description"`
			PageCount   int      `json:"pageCount"`
			ImageLinks  struct {
				Thumbnail string `json:"thumbnail"`
			} `json:"imageLinks"`
		} `json:"volumeInfo"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}

	return &Volume{
		ID:          body.ID,
		Title:       body.VolumeInfo.Title,
		Authors:     body.VolumeInfo.Authors,
		Publisher:   body.VolumeInfo.Publisher,
		Description: body.VolumeInfo.Description,
		PageCount:   body.VolumeInfo.PageCount,
		ImageLink:   body.VolumeInfo.ImageLinks.Thumbnail,
	}, nil
}
