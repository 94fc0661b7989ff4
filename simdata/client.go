package simdata

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/theoremus-urban-solutions/traffic-playback/config"
)

// Client fetches simulation result documents from an HTTP base URL or a
// local results directory.
type Client struct {
	httpClient *http.Client
	baseURL    string
	prefix     string
}

// NewClient creates a client for a configured result source.
func NewClient(cfg config.ResultsConfig) *Client {
	timeout := time.Duration(cfg.TimeoutMS) * time.Millisecond
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		prefix:     cfg.RunPrefix,
	}
}

// RunPrefix returns the configured result filename prefix.
func (c *Client) RunPrefix() string { return c.prefix }

// FetchRun fetches and decodes the result document for a run identifier.
// Failures are reported as *FetchError. For a local results directory, a
// missing document falls back to the newest file matching the run prefix
// before reporting not found; the simulator timestamps filenames with the
// second it finished, so the date-derived identifier rarely matches exactly.
func (c *Client) FetchRun(ctx context.Context, identifier string) (SimulationRun, error) {
	data, err := c.fetch(ctx, identifier)
	if err != nil {
		return nil, err
	}
	run, err := ParseRun(data)
	if err != nil {
		return nil, &FetchError{Kind: FetchMalformed, Identifier: identifier, Err: err}
	}
	return run, nil
}

func (c *Client) fetch(ctx context.Context, identifier string) ([]byte, error) {
	if c.isLocal() {
		return c.fetchFile(identifier)
	}
	return c.fetchHTTP(ctx, identifier)
}

func (c *Client) isLocal() bool {
	return !strings.HasPrefix(c.baseURL, "http://") && !strings.HasPrefix(c.baseURL, "https://")
}

func (c *Client) fetchHTTP(ctx context.Context, identifier string) ([]byte, error) {
	url := c.baseURL + "/" + DocumentName(identifier)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{Kind: FetchNetwork, Identifier: identifier, Err: err}
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Kind: FetchNetwork, Identifier: identifier, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, &FetchError{Kind: FetchNotFound, Identifier: identifier, Err: fmt.Errorf("HTTP 404 from %s", url)}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{Kind: FetchNetwork, Identifier: identifier, Err: fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Kind: FetchNetwork, Identifier: identifier, Err: err}
	}
	return body, nil
}

func (c *Client) fetchFile(identifier string) ([]byte, error) {
	path := filepath.Join(c.baseURL, DocumentName(identifier))
	data, err := os.ReadFile(path)
	if err == nil {
		return data, nil
	}
	if !os.IsNotExist(err) {
		return nil, &FetchError{Kind: FetchNetwork, Identifier: identifier, Err: err}
	}
	latest, ok := c.latestDocument()
	if !ok {
		return nil, &FetchError{Kind: FetchNotFound, Identifier: identifier, Err: err}
	}
	data, err = os.ReadFile(latest)
	if err != nil {
		return nil, &FetchError{Kind: FetchNotFound, Identifier: identifier, Err: err}
	}
	return data, nil
}

// latestDocument returns the newest result document in the local results
// directory matching the run prefix.
func (c *Client) latestDocument() (string, bool) {
	pattern := filepath.Join(c.baseURL, c.prefix+"_*.json")
	matches, err := filepath.Glob(pattern)
	if err != nil || len(matches) == 0 {
		return "", false
	}
	sort.Slice(matches, func(i, j int) bool {
		return modTime(matches[i]).After(modTime(matches[j]))
	})
	return matches[0], true
}

func modTime(path string) time.Time {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}
