package figma

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/time/rate"
)

const (
	figmaAPIBase = "https://api.figma.com/v1"

	// The Figma API allows roughly two requests per second per token before
	// answering 429; the limiter keeps bursts under that ceiling.
	requestsPerSecond = 2
	requestBurst      = 4
)

// APIError represents an error response from the Figma API.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("figma API error (status %d): %s", e.Status, e.Body)
}

// Client represents a Figma API client with configured HTTP settings for reliable
// communication with the Figma API. It includes retry logic, client-side rate
// limiting, and optimized transport settings for handling large files.
type Client struct {
	accessToken string
	httpClient  *http.Client
	limiter     *rate.Limiter
}

// NewClient creates a new Figma API client with the provided personal access token.
// The client is configured with optimized HTTP transport settings including connection
// pooling, disabled HTTP/2 (for large file stability), and a 10-minute timeout for
// very large files.
func NewClient(accessToken string) *Client {
	// Configure transport for better handling of large files
	transport := &http.Transport{
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		DisableCompression:  false,
		DisableKeepAlives:   false,
		MaxIdleConnsPerHost: 10,
		// Disable HTTP/2 to avoid stream errors with large files
		ForceAttemptHTTP2: false,
	}

	return &Client{
		accessToken: accessToken,
		httpClient: &http.Client{
			Timeout:   10 * time.Minute, // Increased timeout for very large files
			Transport: transport,
		},
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), requestBurst),
	}
}

// ExtractFileKey extracts the unique file identifier from a Figma URL.
// Supports both /file/ and /design/ URL patterns (e.g., figma.com/file/ABC123/Design-Name).
// Returns an error if the URL format is invalid or if the URL doesn't match the expected
// Figma domain pattern.
func ExtractFileKey(figmaURL string) (string, error) {
	// Match patterns like:
	// https://www.figma.com/file/ABC123/Design-Name
	// https://www.figma.com/design/ABC123/Design-Name
	// Anchored to ensure the entire URL matches the expected pattern and prevent bypass attacks.
	re := regexp.MustCompile(`^https?://(?:www\.)?figma\.com/(?:file|design)/([A-Za-z0-9]+)(?:/|$)`)
	matches := re.FindStringSubmatch(figmaURL)

	if len(matches) < 2 {
		return "", errors.New("invalid Figma URL format: must be a valid figma.com URL with /file/ or /design/ path")
	}

	return matches[1], nil
}

// ExtractNodeIDs extracts node identifiers from a Figma URL. Node IDs may appear
// as a node-id query parameter (dash- or colon-separated), a hash fragment, or a
// /nodes/ path segment. Duplicates are removed while preserving order; an empty
// slice is returned when the URL carries no node IDs.
func ExtractNodeIDs(figmaURL string) ([]string, error) {
	ids := []string{}

	u, err := url.Parse(figmaURL)
	if err != nil {
		return nil, errors.Wrap(err, "parse Figma URL")
	}

	collect := func(raw string) {
		for _, part := range strings.Split(raw, ",") {
			id := strings.TrimSpace(part)
			if id == "" {
				continue
			}
			// URLs URL-encode the colon as a dash (123-456 means 123:456).
			ids = append(ids, strings.ReplaceAll(id, "-", ":"))
		}
	}

	if raw := u.Query().Get("node-id"); raw != "" {
		collect(raw)
	}
	if len(ids) == 0 && u.Fragment != "" {
		collect(u.Fragment)
	}
	if len(ids) == 0 {
		if i := strings.Index(u.Path, "/nodes/"); i >= 0 {
			collect(u.Path[i+len("/nodes/"):])
		}
	}

	return deduplicateNodeIDs(ids), nil
}

// deduplicateNodeIDs removes duplicate node IDs while preserving first-seen order.
func deduplicateNodeIDs(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			result = append(result, id)
		}
	}
	return result
}

// get performs a rate-limited GET against the Figma API with automatic retry
// (up to 3 attempts) and exponential backoff on 429 and 5xx responses.
func (c *Client) get(reqURL string) ([]byte, error) {
	var lastErr error
	maxRetries := 3

	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err := c.limiter.Wait(context.Background()); err != nil {
			return nil, errors.Wrap(err, "rate limiter")
		}

		req, err := http.NewRequest("GET", reqURL, nil)
		if err != nil {
			return nil, errors.Wrap(err, "create request")
		}

		req.Header.Set("X-Figma-Token", c.accessToken)
		// Disable HTTP/2 to avoid stream errors with large files
		req.Header.Set("Connection", "close")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = errors.Wrapf(err, "attempt %d failed to execute request", attempt)
			if attempt < maxRetries {
				time.Sleep(time.Duration(attempt) * 2 * time.Second)
				continue
			}
			return nil, lastErr
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			lastErr = &APIError{Status: resp.StatusCode, Body: string(body)}
			if attempt < maxRetries && (resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500) {
				time.Sleep(time.Duration(attempt) * 2 * time.Second)
				continue
			}
			return nil, lastErr
		}

		if readErr != nil {
			lastErr = errors.Wrapf(readErr, "attempt %d failed to read response body", attempt)
			if attempt < maxRetries {
				time.Sleep(time.Duration(attempt) * 2 * time.Second)
				continue
			}
			return nil, lastErr
		}

		return body, nil
	}

	return nil, lastErr
}

// GetFile retrieves complete file data from the Figma API including document
// structure, named components, styles, and metadata.
func (c *Client) GetFile(fileKey string) (*FileResponse, error) {
	body, err := c.get(fmt.Sprintf("%s/files/%s", figmaAPIBase, fileKey))
	if err != nil {
		return nil, err
	}

	var fileResp FileResponse
	if err := json.Unmarshal(body, &fileResp); err != nil {
		return nil, errors.Wrap(err, "parse file response")
	}

	return &fileResp, nil
}

// GetFileNodes retrieves specific nodes from a Figma file by their IDs.
// This is more efficient than GetFile when only a few frames or components are needed.
func (c *Client) GetFileNodes(fileKey string, nodeIDs []string) (*NodesResponse, error) {
	reqURL := fmt.Sprintf("%s/files/%s/nodes?ids=%s", figmaAPIBase, fileKey,
		url.QueryEscape(strings.Join(nodeIDs, ",")))

	body, err := c.get(reqURL)
	if err != nil {
		return nil, err
	}

	var nodesResp NodesResponse
	if err := json.Unmarshal(body, &nodesResp); err != nil {
		return nil, errors.Wrap(err, "parse nodes response")
	}

	return &nodesResp, nil
}

// GetImages asks the Figma render API for download URLs of the given nodes in the
// requested format ("png", "svg", "jpg", "pdf") and scale.
func (c *Client) GetImages(fileKey string, nodeIDs []string, format string, scale float64) (*ImagesResponse, error) {
	reqURL := fmt.Sprintf("%s/images/%s?ids=%s&format=%s&scale=%g", figmaAPIBase, fileKey,
		url.QueryEscape(strings.Join(nodeIDs, ",")), format, scale)

	body, err := c.get(reqURL)
	if err != nil {
		return nil, err
	}

	var imgResp ImagesResponse
	if err := json.Unmarshal(body, &imgResp); err != nil {
		return nil, errors.Wrap(err, "parse images response")
	}
	if imgResp.Err != "" {
		return nil, errors.Newf("render API error: %s", imgResp.Err)
	}

	return &imgResp, nil
}
