package farcaster

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bnema/pixeloracle/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(server *httptest.Server) *Client {
	client := NewClient("neynar-key", "signer-1", "")
	client.BaseURL = server.URL
	client.HTTPClient = server.Client()
	return client
}

func TestPostSendsCastWithEmbedAndParent(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2/farcaster/cast", r.URL.Path)
		assert.Equal(t, "neynar-key", r.Header.Get("api_key"))

		var body castRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, castRequest{
			SignerUUID: "signer-1",
			Text:       "🎨 New artwork minted!",
			Embeds:     []castEmbed{{URL: "https://gateway.pinata.cloud/ipfs/bafyimage"}},
			Parent:     "0xparent",
		}, body)

		_, _ = w.Write([]byte(`{"success":true,"cast":{"hash":"0xabc"}}`))
	}))
	t.Cleanup(server.Close)

	receipt, err := newTestClient(server).Post(context.Background(), domain.Post{
		Text:     "🎨 New artwork minted!",
		ImageURI: "ipfs://bafyimage",
		ReplyTo:  "0xparent",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PostReceipt{ID: "0xabc", URL: "https://warpcast.com/~/conversations/0xabc"}, receipt)
}

func TestPostWithoutImageOmitsEmbeds(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var raw map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		assert.NotContains(t, raw, "embeds")
		assert.NotContains(t, raw, "parent")
		_, _ = w.Write([]byte(`{"success":true,"cast":{"hash":"0xdef"}}`))
	}))
	t.Cleanup(server.Close)

	_, err := newTestClient(server).Post(context.Background(), domain.Post{Text: "thanks"})
	require.NoError(t, err)
}

func TestPostSurfacesAPIError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"signer not approved"}`))
	}))
	t.Cleanup(server.Close)

	_, err := newTestClient(server).Post(context.Background(), domain.Post{Text: "x"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "status 403")
	assert.ErrorContains(t, err, "signer not approved")
}

func TestMentionsLooksUpFIDOnceAndCapsResults(t *testing.T) {
	t.Parallel()

	var lookups atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v2/farcaster/user/by_username":
			lookups.Add(1)
			assert.Equal(t, "pixeloracle", r.URL.Query().Get("username"))
			_, _ = w.Write([]byte(`{"user":{"fid":977}}`))
		case "/v2/farcaster/notifications":
			assert.Equal(t, "977", r.URL.Query().Get("fid"))
			assert.Equal(t, "mentions", r.URL.Query().Get("type"))
			_, _ = w.Write([]byte(`{"notifications":[
				{"type":"mention","cast":{"hash":"0x1","text":"gm @pixeloracle","timestamp":"2026-03-01T10:00:00Z","author":{"username":"alice"}}},
				{"type":"mention"},
				{"type":"mention","cast":{"hash":"0x2","text":"vote cosmic","author":{"username":"bob"}}},
				{"type":"mention","cast":{"hash":"0x3","text":"c","author":{"username":"c"}}},
				{"type":"mention","cast":{"hash":"0x4","text":"d","author":{"username":"d"}}},
				{"type":"mention","cast":{"hash":"0x5","text":"e","author":{"username":"e"}}},
				{"type":"mention","cast":{"hash":"0x6","text":"f","author":{"username":"f"}}}
			]}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	t.Cleanup(server.Close)

	client := newTestClient(server)
	mentions, err := client.Mentions(context.Background())
	require.NoError(t, err)
	require.Len(t, mentions, 5)

	assert.Equal(t, domain.Mention{
		Channel:  domain.ChannelFarcaster,
		ID:       "0x1",
		Author:   "alice",
		Text:     "gm @pixeloracle",
		PostedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}, mentions[0])
	assert.Equal(t, "0x2", mentions[1].ID)
	assert.Equal(t, "0x5", mentions[4].ID)

	_, err = client.Mentions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(1), lookups.Load())
}

func TestMentionsUnknownUser(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(server.Close)

	_, err := newTestClient(server).Mentions(context.Background())
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestBuildAPIURLRejectsBadScheme(t *testing.T) {
	t.Parallel()

	_, err := buildAPIURL("ftp://neynar", castPath)
	require.Error(t, err)

	endpoint, err := buildAPIURL("https://api.neynar.com", castPath)
	require.NoError(t, err)
	assert.Equal(t, "https://api.neynar.com/v2/farcaster/cast", endpoint)
}
