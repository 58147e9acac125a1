package mirror

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashgraph-online/hts-asset-demo-go/pkg/shared"
)

const (
	MainnetBaseURL    = "https://mainnet-public.mirrornode.hedera.com"
	TestnetBaseURL    = "https://testnet.mirrornode.hedera.com"
	PreviewnetBaseURL = "https://previewnet.mirrornode.hedera.com"
	LocalBaseURL      = "http://localhost:5551"
)

type Config struct {
	Network    string
	BaseURL    string
	HTTPClient *http.Client
	APIKey     string
	Headers    map[string]string
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	apiKey     string
	headers    map[string]string
}

// NewClient creates a mirror node client. BaseURL overrides the network default.
func NewClient(config Config) (*Client, error) {
	network, err := shared.NormalizeNetwork(config.Network)
	if err != nil {
		return nil, err
	}

	baseURL := strings.TrimRight(strings.TrimSpace(config.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL(network)
	}
	parsedBaseURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid mirror base URL: %w", err)
	}
	if parsedBaseURL.Scheme != "http" && parsedBaseURL.Scheme != "https" {
		return nil, fmt.Errorf("invalid mirror base URL: scheme must be http or https")
	}
	if strings.TrimSpace(parsedBaseURL.Host) == "" {
		return nil, fmt.Errorf("invalid mirror base URL: host is required")
	}
	baseURL = strings.TrimRight(parsedBaseURL.String(), "/")

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	headers := map[string]string{}
	for key, value := range config.Headers {
		headers[key] = value
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		apiKey:     strings.TrimSpace(config.APIKey),
		headers:    headers,
	}, nil
}

// DefaultBaseURL returns the public mirror node for a normalized network name.
func DefaultBaseURL(network string) string {
	switch network {
	case shared.NetworkMainnet:
		return MainnetBaseURL
	case shared.NetworkPreviewnet:
		return PreviewnetBaseURL
	case shared.NetworkLocal:
		return LocalBaseURL
	default:
		return TestnetBaseURL
	}
}

// BaseURL returns the resolved mirror node base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// GetLatestBlock returns the most recent record block the mirror node has ingested.
func (c *Client) GetLatestBlock(ctx context.Context) (Block, error) {
	var response blocksResponse
	if err := c.getJSON(ctx, "/api/v1/blocks?limit=1&order=desc", &response); err != nil {
		return Block{}, err
	}
	if len(response.Blocks) == 0 {
		return Block{}, fmt.Errorf("mirror node returned no blocks")
	}
	return response.Blocks[0], nil
}

// GetBlockAtOrAfter returns the first block closing at or after the given
// consensus timestamp, or nil when the mirror node has not ingested it yet.
func (c *Client) GetBlockAtOrAfter(ctx context.Context, consensusTimestamp string) (*Block, error) {
	timestamp := strings.TrimSpace(consensusTimestamp)
	if timestamp == "" {
		return nil, fmt.Errorf("consensus timestamp is required")
	}

	values := url.Values{}
	values.Set("timestamp", "gte:"+timestamp)
	values.Set("order", "asc")
	values.Set("limit", "1")

	var response blocksResponse
	if err := c.getJSON(ctx, "/api/v1/blocks?"+values.Encode(), &response); err != nil {
		return nil, err
	}
	if len(response.Blocks) == 0 {
		return nil, nil
	}
	return &response.Blocks[0], nil
}

// GetTransaction returns the top-level record for a transaction ID in either
// SDK (0.0.1@1.2) or mirror (0.0.1-1-2) form, or nil if the mirror node does
// not know it yet.
func (c *Client) GetTransaction(ctx context.Context, transactionID string) (*Transaction, error) {
	normalized, err := NormalizeTransactionID(transactionID)
	if err != nil {
		return nil, err
	}

	var response transactionsResponse
	path := fmt.Sprintf("/api/v1/transactions/%s", normalized)
	if err := c.getJSON(ctx, path, &response); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	if len(response.Transactions) == 0 {
		return nil, nil
	}
	for index := range response.Transactions {
		candidate := response.Transactions[index]
		if candidate.Nonce == 0 && !candidate.Scheduled {
			return &candidate, nil
		}
	}

	return &response.Transactions[0], nil
}

// GetToken returns token metadata.
func (c *Client) GetToken(ctx context.Context, tokenID string) (TokenInfo, error) {
	var token TokenInfo
	normalized := strings.TrimSpace(tokenID)
	if normalized == "" {
		return token, fmt.Errorf("token ID is required")
	}

	if err := c.getJSON(ctx, fmt.Sprintf("/api/v1/tokens/%s", normalized), &token); err != nil {
		return token, err
	}
	return token, nil
}

// GetAccountTokenRelationship returns the account's balance and freeze status
// for a token, or nil if the account is not associated with it.
func (c *Client) GetAccountTokenRelationship(
	ctx context.Context,
	accountID string,
	tokenID string,
) (*TokenRelationship, error) {
	normalizedAccountID := strings.TrimSpace(accountID)
	if normalizedAccountID == "" {
		return nil, fmt.Errorf("account ID is required")
	}
	normalizedTokenID := strings.TrimSpace(tokenID)
	if normalizedTokenID == "" {
		return nil, fmt.Errorf("token ID is required")
	}

	values := url.Values{}
	values.Set("token.id", normalizedTokenID)
	path := fmt.Sprintf("/api/v1/accounts/%s/tokens?%s", normalizedAccountID, values.Encode())

	var response tokenRelationshipsResponse
	if err := c.getJSON(ctx, path, &response); err != nil {
		return nil, err
	}
	for index := range response.Tokens {
		if response.Tokens[index].TokenID == normalizedTokenID {
			return &response.Tokens[index], nil
		}
	}
	return nil, nil
}

func (c *Client) getJSON(ctx context.Context, pathOrURL string, target any) error {
	requestURL := c.resolveURL(pathOrURL)
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	request.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		request.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	}
	for key, value := range c.headers {
		request.Header.Set(key, value)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("mirror node request failed: %w", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("failed to read mirror node response: %w", err)
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return &StatusError{
			StatusCode: response.StatusCode,
			Path:       pathOrURL,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("failed to decode mirror node response: %w", err)
	}

	return nil
}

func (c *Client) resolveURL(pathOrURL string) string {
	if strings.HasPrefix(pathOrURL, "http://") || strings.HasPrefix(pathOrURL, "https://") {
		return pathOrURL
	}

	path := pathOrURL
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return c.baseURL + path
}
