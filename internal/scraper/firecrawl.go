package scraper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"time"
)

const defaultFirecrawlBaseURL = "https://api.firecrawl.dev"

// only job postings and freelancer profiles on Upwork are scrapeable
var allowedHosts = []string{"www.upwork.com", "upwork.com"}

// shared HTTP client for Firecrawl API calls
var firecrawlHTTPClient = &http.Client{
	Timeout: 60 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
}

type scrapeRequest struct {
	URL     string   `json:"url"`
	Formats []string `json:"formats"`
}

type scrapeResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Markdown string `json:"markdown"`
	} `json:"data"`
	Error string `json:"error"`
}

// Client fetches page content as markdown through the Firecrawl API
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// creates a new Firecrawl client
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultFirecrawlBaseURL,
		httpClient: firecrawlHTTPClient,
	}
}

// overrides the API base URL, used by tests to point at a stub server
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = baseURL
	return c
}

// ValidateURL checks a user-supplied URL against the scraping policy:
// HTTPS only, Upwork hosts only
func ValidateURL(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid URL")
	}

	if !slices.Contains(allowedHosts, parsed.Hostname()) {
		return fmt.Errorf("only Upwork URLs are allowed")
	}

	if parsed.Scheme != "https" {
		return fmt.Errorf("only HTTPS URLs are allowed")
	}

	return nil
}

// Scrape validates the URL and returns the page content as markdown
func (c *Client) Scrape(ctx context.Context, pageURL string) (string, error) {
	if err := ValidateURL(pageURL); err != nil {
		return "", err
	}

	jsonData, err := json.Marshal(scrapeRequest{
		URL:     pageURL,
		Formats: []string{"markdown"},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/v1/scrape", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}

	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("scraping API error: %d", resp.StatusCode)
	}

	var scrape scrapeResponse
	if err := json.NewDecoder(resp.Body).Decode(&scrape); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if !scrape.Success || scrape.Data.Markdown == "" {
		if scrape.Error != "" {
			return "", fmt.Errorf("failed to scrape page: %s", scrape.Error)
		}

		return "", fmt.Errorf("failed to scrape page")
	}

	return scrape.Data.Markdown, nil
}
