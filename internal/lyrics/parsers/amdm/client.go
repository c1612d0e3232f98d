package amdm

import (
	"compress/gzip"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sukalov/songform/internal/logger"
	"go.uber.org/zap"
)

// maxPageSize caps how much of a chords page is read.
const maxPageSize = 4 << 20

// browserHeaders are sent with every page request. amdm.ru serves a stub
// page to clients that do not look like a browser.
var browserHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36",
	"Accept":          "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8",
	"Accept-Language": "ru-RU,ru;q=0.9,en;q=0.5",
	"Accept-Encoding": "gzip",
}

// Client downloads chords pages
type Client struct {
	httpClient *http.Client
}

// NewClient returns a Client with a TLS 1.2+ transport and a one minute timeout
func NewClient() *Client {
	return NewClientWithHTTP(&http.Client{
		Timeout: time.Minute,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{MinVersion: tls.VersionTLS12},
		},
	})
}

// NewClientWithHTTP returns a Client that sends its requests through httpClient
func NewClientWithHTTP(httpClient *http.Client) *Client {
	return &Client{httpClient: httpClient}
}

// canonicalURL points numbered mirrors like 123.amdm.ru at the main host
func canonicalURL(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	if host := parsed.Hostname(); strings.HasSuffix(host, ".amdm.ru") {
		parsed.Host = "amdm.ru"
		if port := parsed.Port(); port != "" {
			parsed.Host += ":" + port
		}
	}
	return parsed.String()
}

// FetchPage returns the HTML of the page at rawURL
func (c *Client) FetchPage(ctx context.Context, rawURL string) (string, error) {
	fetchURL := canonicalURL(rawURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fetchURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	for key, value := range browserHeaders {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("failed to fetch page", zap.String("url", fetchURL), zap.Error(err))
		return "", fmt.Errorf("failed to fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Error("chords page returned an error", zap.String("url", fetchURL), zap.Int("status", resp.StatusCode))
		return "", fmt.Errorf("page returned status %d", resp.StatusCode)
	}

	body, err := readBody(resp)
	if err != nil {
		return "", err
	}

	logger.Debug("fetched page", zap.String("url", fetchURL), zap.Int("bytes", len(body)))
	return body, nil
}

// readBody decodes gzip itself: an explicit Accept-Encoding turns off the
// transport's transparent decompression.
func readBody(resp *http.Response) (string, error) {
	var reader io.Reader = resp.Body
	if strings.Contains(resp.Header.Get("Content-Encoding"), "gzip") {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return "", fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gz.Close()
		reader = gz
	}

	data, err := io.ReadAll(io.LimitReader(reader, maxPageSize))
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	return string(data), nil
}
