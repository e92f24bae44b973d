// Package dcs is a minimal client for the Door43 Content Service API
// (a gitea forge). Only the read surface perfsync needs is implemented.
package dcs

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultServer = "https://git.door43.org"

// Client is an authenticated DCS API client.
type Client struct {
	token   string
	apiBase string
	http    *http.Client
}

// New creates a Client for the given server, e.g. "https://git.door43.org".
// If server is empty, the public Door43 service is used. The token may be
// empty for anonymous reads of public repositories.
func New(token, server string) *Client {
	if server == "" {
		server = defaultServer
	}
	server = strings.TrimRight(server, "/")
	apiBase := server
	if !strings.HasSuffix(apiBase, "/api/v1") {
		apiBase += "/api/v1"
	}

	return &Client{
		token:   token,
		apiBase: apiBase,
		http: &http.Client{
			Timeout: 2 * time.Minute,
		},
	}
}

// do executes the request with standard gitea headers.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	if c.token != "" {
		req.Header.Set("Authorization", "token "+c.token)
	}
	req.Header.Set("Accept", "application/json")
	return c.http.Do(req)
}

// doJSON sends a GET request and decodes the JSON response into out.
func (c *Client) doJSON(url string, out interface{}) error {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if err := checkStatus(resp); err != nil {
		return err
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// url builds an API URL from path segments.
func (c *Client) url(parts ...string) string {
	return c.apiBase + "/" + strings.Join(parts, "/")
}

// checkStatus returns a typed error for non-2xx responses.
func checkStatus(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusNoContent:
		return nil
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("DCS API error %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
}
