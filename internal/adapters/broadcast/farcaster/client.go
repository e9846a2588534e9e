package farcaster

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/bnema/pixeloracle/internal/domain"
	"github.com/bnema/pixeloracle/internal/ports"
)

const (
	DefaultBaseURL  = "https://api.neynar.com"
	DefaultUsername = "pixeloracle"

	castPath          = "/v2/farcaster/cast"
	userByNamePath    = "/v2/farcaster/user/by_username"
	notificationsPath = "/v2/farcaster/notifications"
	conversationURL   = "https://warpcast.com/~/conversations/"

	maxCastLength       = 320
	maxMentionsPerCheck = 5
	maxResponseBytes    = 1 << 20
	errorBodyPreviewLen = 512
	defaultTimeout      = 30 * time.Second
)

var ErrUserNotFound = errors.New("farcaster user not found")

// Client posts casts and reads mention notifications through the Neynar API.
type Client struct {
	BaseURL    string
	APIKey     string
	SignerUUID string
	Username   string
	HTTPClient *http.Client
	Timeout    time.Duration

	fidMu sync.Mutex
	fid   int64
}

var (
	_ ports.BroadcastChannel = (*Client)(nil)
	_ ports.MentionSource    = (*Client)(nil)
)

func NewClient(apiKey, signerUUID, username string) *Client {
	if username == "" {
		username = DefaultUsername
	}
	return &Client{
		BaseURL:    DefaultBaseURL,
		APIKey:     apiKey,
		SignerUUID: signerUUID,
		Username:   username,
		Timeout:    defaultTimeout,
	}
}

func (c *Client) Channel() domain.Channel {
	return domain.ChannelFarcaster
}

func (c *Client) MaxLength() int {
	return maxCastLength
}

type castEmbed struct {
	URL string `json:"url"`
}

type castRequest struct {
	SignerUUID string      `json:"signer_uuid"`
	Text       string      `json:"text"`
	Embeds     []castEmbed `json:"embeds,omitempty"`
	Parent     string      `json:"parent,omitempty"`
}

type castResponse struct {
	Success bool `json:"success"`
	Cast    struct {
		Hash string `json:"hash"`
	} `json:"cast"`
}

func (c *Client) Post(ctx context.Context, post domain.Post) (domain.PostReceipt, error) {
	req := castRequest{SignerUUID: c.SignerUUID, Text: post.Text, Parent: post.ReplyTo}
	if post.ImageURI != "" {
		req.Embeds = []castEmbed{{URL: domain.GatewayURL(post.ImageURI)}}
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return domain.PostReceipt{}, fmt.Errorf("encode cast: %w", err)
	}

	var out castResponse
	if err := c.do(ctx, http.MethodPost, castPath, nil, bytes.NewReader(payload), &out); err != nil {
		return domain.PostReceipt{}, err
	}

	receipt := domain.PostReceipt{ID: out.Cast.Hash}
	if out.Cast.Hash != "" {
		receipt.URL = conversationURL + out.Cast.Hash
	}
	return receipt, nil
}

type notificationsResponse struct {
	Notifications []struct {
		Type string `json:"type"`
		Cast *struct {
			Hash      string `json:"hash"`
			Text      string `json:"text"`
			Timestamp string `json:"timestamp"`
			Author    struct {
				Username string `json:"username"`
			} `json:"author"`
		} `json:"cast"`
	} `json:"notifications"`
}

// Mentions returns up to five of the most recent casts mentioning the account.
func (c *Client) Mentions(ctx context.Context) ([]domain.Mention, error) {
	fid, err := c.lookupFID(ctx)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("fid", strconv.FormatInt(fid, 10))
	query.Set("type", "mentions")

	var out notificationsResponse
	if err := c.do(ctx, http.MethodGet, notificationsPath, query, nil, &out); err != nil {
		return nil, err
	}

	mentions := make([]domain.Mention, 0, maxMentionsPerCheck)
	for _, notification := range out.Notifications {
		if len(mentions) == maxMentionsPerCheck {
			break
		}
		if notification.Cast == nil || notification.Cast.Hash == "" {
			continue
		}
		postedAt, _ := time.Parse(time.RFC3339, notification.Cast.Timestamp)
		mentions = append(mentions, domain.Mention{
			Channel:  domain.ChannelFarcaster,
			ID:       notification.Cast.Hash,
			Author:   notification.Cast.Author.Username,
			Text:     notification.Cast.Text,
			PostedAt: postedAt,
		})
	}
	return mentions, nil
}

type userResponse struct {
	User struct {
		FID int64 `json:"fid"`
	} `json:"user"`
}

func (c *Client) lookupFID(ctx context.Context) (int64, error) {
	c.fidMu.Lock()
	defer c.fidMu.Unlock()

	if c.fid != 0 {
		return c.fid, nil
	}

	query := url.Values{}
	query.Set("username", c.Username)

	var out userResponse
	if err := c.do(ctx, http.MethodGet, userByNamePath, query, nil, &out); err != nil {
		return 0, fmt.Errorf("lookup fid for %s: %w", c.Username, err)
	}
	if out.User.FID == 0 {
		return 0, fmt.Errorf("%w: %s", ErrUserNotFound, c.Username)
	}

	c.fid = out.User.FID
	return c.fid, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, out any) error {
	endpoint, err := buildAPIURL(c.BaseURL, path)
	if err != nil {
		return err
	}
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	requestCtx, cancel := context.WithTimeout(ctx, c.timeout())
	defer cancel()

	req, err := http.NewRequestWithContext(requestCtx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("create neynar request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("api_key", c.APIKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("neynar %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound && path == userByNamePath {
		return fmt.Errorf("%w: %s", ErrUserNotFound, c.Username)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		preview, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyPreviewLen))
		return fmt.Errorf("neynar %s: status %d: %s", path, resp.StatusCode, bytes.TrimSpace(preview))
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); err != nil {
		return fmt.Errorf("decode neynar response: %w", err)
	}
	return nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) timeout() time.Duration {
	if c.Timeout > 0 {
		return c.Timeout
	}
	return defaultTimeout
}

func buildAPIURL(baseURL string, path string) (string, error) {
	if baseURL == "" {
		return "", errors.New("neynar base url is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse neynar base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("neynar base url must use http or https")
	}

	endpoint, err := parsed.Parse(path)
	if err != nil {
		return "", fmt.Errorf("parse neynar path: %w", err)
	}
	return endpoint.String(), nil
}
