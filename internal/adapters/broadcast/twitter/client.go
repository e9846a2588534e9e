package twitter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/bnema/pixeloracle/internal/domain"
	"github.com/bnema/pixeloracle/internal/ports"
	"github.com/dghubble/oauth1"
)

const (
	DefaultBaseURL = "https://api.twitter.com"

	tweetsPath   = "/2/tweets"
	mePath       = "/2/users/me"
	mentionsPath = "/2/users/%s/mentions"
	tweetURL     = "https://x.com/i/web/status/"

	maxTweetLength      = 280
	mentionsPageSize    = "10"
	maxResponseBytes    = 1 << 20
	errorBodyPreviewLen = 512
	defaultTimeout      = 30 * time.Second
)

var ErrEmptyTweetID = errors.New("twitter response missing tweet id")

type Credentials struct {
	APIKey       string
	APISecret    string
	AccessToken  string
	AccessSecret string
}

func (c Credentials) Complete() bool {
	return c.APIKey != "" && c.APISecret != "" && c.AccessToken != "" && c.AccessSecret != ""
}

// Client posts tweets and reads the mention timeline with OAuth 1.0a user context.
type Client struct {
	BaseURL string
	Timeout time.Duration

	http *http.Client

	userMu sync.Mutex
	userID string
}

var (
	_ ports.BroadcastChannel = (*Client)(nil)
	_ ports.MentionSource    = (*Client)(nil)
)

// NewClient signs requests with creds. base is the transport underneath the signer; nil uses http.DefaultClient.
func NewClient(creds Credentials, base *http.Client) *Client {
	ctx := context.Background()
	if base != nil {
		ctx = context.WithValue(ctx, oauth1.HTTPClient, base)
	}
	config := oauth1.NewConfig(creds.APIKey, creds.APISecret)
	token := oauth1.NewToken(creds.AccessToken, creds.AccessSecret)

	return &Client{
		BaseURL: DefaultBaseURL,
		Timeout: defaultTimeout,
		http:    config.Client(ctx, token),
	}
}

func (c *Client) Channel() domain.Channel {
	return domain.ChannelTwitter
}

func (c *Client) MaxLength() int {
	return maxTweetLength
}

type tweetReply struct {
	InReplyToTweetID string `json:"in_reply_to_tweet_id"`
}

type tweetRequest struct {
	Text  string      `json:"text"`
	Reply *tweetReply `json:"reply,omitempty"`
}

type tweetResponse struct {
	Data struct {
		ID   string `json:"id"`
		Text string `json:"text"`
	} `json:"data"`
}

// Post publishes a text tweet. Images are not uploaded; the post text carries the links.
func (c *Client) Post(ctx context.Context, post domain.Post) (domain.PostReceipt, error) {
	req := tweetRequest{Text: post.Text}
	if post.ReplyTo != "" {
		req.Reply = &tweetReply{InReplyToTweetID: post.ReplyTo}
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return domain.PostReceipt{}, fmt.Errorf("encode tweet: %w", err)
	}

	var out tweetResponse
	if err := c.do(ctx, http.MethodPost, tweetsPath, nil, bytes.NewReader(payload), &out); err != nil {
		return domain.PostReceipt{}, err
	}
	if out.Data.ID == "" {
		return domain.PostReceipt{}, ErrEmptyTweetID
	}

	return domain.PostReceipt{ID: out.Data.ID, URL: tweetURL + out.Data.ID}, nil
}

type meResponse struct {
	Data struct {
		ID       string `json:"id"`
		Username string `json:"username"`
	} `json:"data"`
}

type mentionsResponse struct {
	Data []struct {
		ID        string `json:"id"`
		Text      string `json:"text"`
		AuthorID  string `json:"author_id"`
		CreatedAt string `json:"created_at"`
	} `json:"data"`
	Includes struct {
		Users []struct {
			ID       string `json:"id"`
			Username string `json:"username"`
		} `json:"users"`
	} `json:"includes"`
}

// Mentions reads the ten most recent mentions of the authenticated account.
func (c *Client) Mentions(ctx context.Context) ([]domain.Mention, error) {
	userID, err := c.lookupUserID(ctx)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("max_results", mentionsPageSize)
	query.Set("expansions", "author_id")
	query.Set("tweet.fields", "created_at,conversation_id")
	query.Set("user.fields", "username")

	var out mentionsResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf(mentionsPath, url.PathEscape(userID)), query, nil, &out); err != nil {
		return nil, err
	}

	usernames := make(map[string]string, len(out.Includes.Users))
	for _, user := range out.Includes.Users {
		usernames[user.ID] = user.Username
	}

	mentions := make([]domain.Mention, 0, len(out.Data))
	for _, tweet := range out.Data {
		postedAt, _ := time.Parse(time.RFC3339, tweet.CreatedAt)
		mentions = append(mentions, domain.Mention{
			Channel:  domain.ChannelTwitter,
			ID:       tweet.ID,
			Author:   usernames[tweet.AuthorID],
			Text:     tweet.Text,
			PostedAt: postedAt,
		})
	}
	return mentions, nil
}

func (c *Client) lookupUserID(ctx context.Context) (string, error) {
	c.userMu.Lock()
	defer c.userMu.Unlock()

	if c.userID != "" {
		return c.userID, nil
	}

	var out meResponse
	if err := c.do(ctx, http.MethodGet, mePath, nil, nil, &out); err != nil {
		return "", fmt.Errorf("lookup authenticated user: %w", err)
	}
	if out.Data.ID == "" {
		return "", errors.New("lookup authenticated user: empty id")
	}

	c.userID = out.Data.ID
	return c.userID, nil
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
		return fmt.Errorf("create twitter request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("twitter %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		preview, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyPreviewLen))
		return fmt.Errorf("twitter %s: status %d: %s", path, resp.StatusCode, bytes.TrimSpace(preview))
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); err != nil {
		return fmt.Errorf("decode twitter response: %w", err)
	}
	return nil
}

func (c *Client) timeout() time.Duration {
	if c.Timeout > 0 {
		return c.Timeout
	}
	return defaultTimeout
}

func buildAPIURL(baseURL string, path string) (string, error) {
	if baseURL == "" {
		return "", errors.New("twitter base url is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse twitter base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("twitter base url must use http or https")
	}

	endpoint, err := parsed.Parse(path)
	if err != nil {
		return "", fmt.Errorf("parse twitter path: %w", err)
	}
	return endpoint.String(), nil
}
