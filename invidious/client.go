// Package invidious builds and sends requests to the search and video endpoints of an Invidious mirror.
// Bodies are returned as raw JSON.
package invidious

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/spf13/viper"
	"github.com/ytbascii/ytbascii/constant"
	"github.com/ytbascii/ytbascii/key"
	"github.com/ytbascii/ytbascii/log"
	"github.com/ytbascii/ytbascii/network"
	"github.com/ytbascii/ytbascii/where"
)

// BaseURLSource hands out the base URL of a usable mirror.
type BaseURLSource interface {
	BaseURL() (string, error)
}

// Client talks to a single mirror.
type Client struct {
	baseURL string
	http    *http.Client
	cache   *responseCache
}

// New returns a client for the mirror at baseURL.
// Responses are cached for api.cache_lifetime; a non-positive lifetime disables caching.
func New(baseURL string) *Client {
	client := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    network.Client,
	}

	if lifetime := viper.GetDuration(key.APICacheLifetime); lifetime > 0 {
		client.cache = newResponseCache(where.Responses(), lifetime)
	}

	return client
}

// NewFromPool returns a client for a mirror picked by source.
func NewFromPool(source BaseURLSource) (*Client, error) {
	baseURL, err := source.BaseURL()
	if err != nil {
		return nil, err
	}
	return New(baseURL), nil
}

// BaseURL returns the mirror this client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SearchURL returns the full request URL for a search.
func (c *Client) SearchURL(params SearchParams) (string, error) {
	if err := params.Validate(); err != nil {
		return "", err
	}
	return c.baseURL + constant.SearchEndpoint + "?" + params.Encode(), nil
}

// VideoURL returns the full request URL for a video lookup.
func (c *Client) VideoURL(id string, params VideoParams) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", fmt.Errorf("video id is empty")
	}

	u := c.baseURL + constant.VideoEndpoint + url.PathEscape(id)
	if query := params.Encode(); query != "" {
		u += "?" + query
	}
	return u, nil
}

// Search runs a search and returns the raw response body.
func (c *Client) Search(ctx context.Context, params SearchParams) (string, error) {
	log.Infof("Searching with params: %+v", params)
	u, err := c.SearchURL(params)
	if err != nil {
		return "", err
	}
	return c.get(ctx, u)
}

// Video looks up a video and returns the raw response body.
func (c *Client) Video(ctx context.Context, id string, params VideoParams) (string, error) {
	log.Infof("Getting video with id: %s", id)
	u, err := c.VideoURL(id, params)
	if err != nil {
		return "", err
	}
	return c.get(ctx, u)
}

func (c *Client) get(ctx context.Context, u string) (string, error) {
	if c.cache != nil {
		if body, ok := c.cache.Get(u).Get(); ok {
			log.Debugf("Cache hit for %s", u)
			return body, nil
		}
	}

	log.Debugf("Sending request to %s", u)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Error(err)
		return "", fmt.Errorf("request %s: %w", c.baseURL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Errorf("%s returned status code %d", c.baseURL, resp.StatusCode)
		return "", fmt.Errorf("invalid response code %d", resp.StatusCode)
	}

	if c.cache != nil {
		if err := c.cache.Set(u, string(body)); err != nil {
			log.Warnf("cache response: %v", err)
		}
	}

	return string(body), nil
}
