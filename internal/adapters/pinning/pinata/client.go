package pinata

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/bnema/pixeloracle/internal/ports"
)

const (
	DefaultBaseURL = "https://api.pinata.cloud"

	pinFilePath = "/pinning/pinFileToIPFS"
	pinJSONPath = "/pinning/pinJSONToIPFS"

	projectName         = "PixelOracle"
	maxResponseBytes    = 1 << 20
	defaultFileTimeout  = 120 * time.Second
	defaultJSONTimeout  = 60 * time.Second
	errorBodyPreviewLen = 512
)

var ErrEmptyHash = errors.New("pinata response missing IpfsHash")

type Credentials struct {
	APIKey    string
	SecretKey string
}

// Client pins artwork files and metadata documents on Pinata.
type Client struct {
	BaseURL     string
	Credentials Credentials
	HTTPClient  *http.Client
	FileTimeout time.Duration
	JSONTimeout time.Duration
}

var _ ports.PinningService = (*Client)(nil)

func NewClient(creds Credentials) *Client {
	return &Client{
		BaseURL:     DefaultBaseURL,
		Credentials: creds,
		FileTimeout: defaultFileTimeout,
		JSONTimeout: defaultJSONTimeout,
	}
}

type pinataMetadata struct {
	Name      string            `json:"name"`
	KeyValues map[string]string `json:"keyvalues,omitempty"`
}

type pinJSONRequest struct {
	PinataContent  any            `json:"pinataContent"`
	PinataMetadata pinataMetadata `json:"pinataMetadata"`
}

type pinResponse struct {
	IpfsHash  string `json:"IpfsHash"`
	PinSize   int64  `json:"PinSize"`
	Timestamp string `json:"Timestamp"`
}

// PinFile uploads data as a multipart file and returns its CID.
func (c *Client) PinFile(ctx context.Context, name string, data []byte) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", name)
	if err != nil {
		return "", fmt.Errorf("create multipart file: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("write multipart file: %w", err)
	}

	metadata, err := json.Marshal(pinataMetadata{Name: name, KeyValues: keyValues("artwork")})
	if err != nil {
		return "", fmt.Errorf("encode pin metadata: %w", err)
	}
	if err := writer.WriteField("pinataMetadata", string(metadata)); err != nil {
		return "", fmt.Errorf("write pin metadata: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("close multipart body: %w", err)
	}

	return c.pin(ctx, pinFilePath, c.fileTimeout(), writer.FormDataContentType(), &body)
}

// PinJSON uploads document as a JSON object and returns its CID.
func (c *Client) PinJSON(ctx context.Context, name string, document any) (string, error) {
	payload, err := json.Marshal(pinJSONRequest{
		PinataContent:  document,
		PinataMetadata: pinataMetadata{Name: name, KeyValues: keyValues("metadata")},
	})
	if err != nil {
		return "", fmt.Errorf("encode pin request: %w", err)
	}

	return c.pin(ctx, pinJSONPath, c.jsonTimeout(), "application/json", bytes.NewReader(payload))
}

func (c *Client) pin(ctx context.Context, path string, timeout time.Duration, contentType string, body io.Reader) (string, error) {
	endpoint, err := buildAPIURL(c.BaseURL, path)
	if err != nil {
		return "", err
	}

	requestCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(requestCtx, http.MethodPost, endpoint, body)
	if err != nil {
		return "", fmt.Errorf("create pin request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("pinata_api_key", c.Credentials.APIKey)
	req.Header.Set("pinata_secret_api_key", c.Credentials.SecretKey)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return "", fmt.Errorf("pinata %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		preview, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyPreviewLen))
		return "", fmt.Errorf("pinata %s: status %d: %s", path, resp.StatusCode, bytes.TrimSpace(preview))
	}

	var payload pinResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode pinata response: %w", err)
	}
	if payload.IpfsHash == "" {
		return "", ErrEmptyHash
	}

	return payload.IpfsHash, nil
}

func keyValues(kind string) map[string]string {
	return map[string]string{"project": projectName, "type": kind}
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) fileTimeout() time.Duration {
	if c.FileTimeout > 0 {
		return c.FileTimeout
	}
	return defaultFileTimeout
}

func (c *Client) jsonTimeout() time.Duration {
	if c.JSONTimeout > 0 {
		return c.JSONTimeout
	}
	return defaultJSONTimeout
}

func buildAPIURL(baseURL string, path string) (string, error) {
	if baseURL == "" {
		return "", errors.New("pinata base url is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse pinata base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("pinata base url must use http or https")
	}

	endpoint, err := parsed.Parse(path)
	if err != nil {
		return "", fmt.Errorf("parse pinata path: %w", err)
	}
	return endpoint.String(), nil
}
