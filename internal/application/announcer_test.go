package application

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/bnema/pixeloracle/internal/domain"
	"github.com/bnema/pixeloracle/internal/ports"
	"github.com/bnema/pixeloracle/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newChannelMock(t *testing.T, channel domain.Channel, maxLength int) *mocks.MockBroadcastChannel {
	t.Helper()
	m := mocks.NewMockBroadcastChannel(t)
	m.EXPECT().Channel().Return(channel).Maybe()
	m.EXPECT().MaxLength().Return(maxLength).Maybe()
	return m
}

func TestAnnounceAppendsFirstPostLinkToLaterChannels(t *testing.T) {
	farcaster := newChannelMock(t, domain.ChannelFarcaster, 320)
	twitter := newChannelMock(t, domain.ChannelTwitter, 280)

	farcaster.EXPECT().Post(mockAnyContext(), domain.Post{Text: "hello", ImageURI: "ipfs://img"}).
		Return(domain.PostReceipt{ID: "0xabc", URL: "https://warpcast.com/~/conversations/0xabc"}, nil).Once()
	twitter.EXPECT().Post(mockAnyContext(), mock.MatchedBy(func(post domain.Post) bool {
		return post.Text == "hello\n\n🖼️ See artwork: https://warpcast.com/~/conversations/0xabc" && post.ImageURI == "ipfs://img"
	})).Return(domain.PostReceipt{ID: "99"}, nil).Once()

	metrics := newRecordingMetrics()
	announcer := NewAnnouncer([]ports.BroadcastChannel{farcaster, twitter}, nil, metrics, nil)
	announcement := announcer.Announce(context.Background(), domain.Post{Text: "hello", ImageURI: "ipfs://img"})

	assert.Equal(t, 2, announcement.Succeeded())
	assert.Equal(t, "0xabc", announcement.Results[0].PostID)
	assert.Equal(t, []bool{true}, metrics.posts[domain.ChannelTwitter])
}

func TestAnnounceTruncatesToChannelLimitKeepingTheLink(t *testing.T) {
	farcaster := newChannelMock(t, domain.ChannelFarcaster, 320)
	twitter := newChannelMock(t, domain.ChannelTwitter, 280)
	long := strings.Repeat("oracle ", 60)
	link := "https://warpcast.com/~/conversations/0xdef"

	farcaster.EXPECT().Post(mockAnyContext(), mock.Anything).Return(domain.PostReceipt{ID: "0xdef", URL: link}, nil).Once()

	var sent string
	twitter.EXPECT().Post(mockAnyContext(), mock.Anything).RunAndReturn(func(_ context.Context, post domain.Post) (domain.PostReceipt, error) {
		sent = post.Text
		return domain.PostReceipt{ID: "1"}, nil
	}).Once()

	NewAnnouncer([]ports.BroadcastChannel{farcaster, twitter}, nil, nil, nil).Announce(context.Background(), domain.Post{Text: long})

	assert.Len(t, []rune(sent), 280)
	assert.True(t, strings.HasSuffix(sent, link))
	assert.Contains(t, sent, "...")
}

func TestAnnounceContinuesAfterChannelFailure(t *testing.T) {
	farcaster := newChannelMock(t, domain.ChannelFarcaster, 320)
	twitter := newChannelMock(t, domain.ChannelTwitter, 280)

	farcaster.EXPECT().Post(mockAnyContext(), mock.Anything).Return(domain.PostReceipt{}, errors.New("signer revoked")).Once()
	twitter.EXPECT().Post(mockAnyContext(), domain.Post{Text: "hello"}).Return(domain.PostReceipt{ID: "7"}, nil).Once()

	metrics := newRecordingMetrics()
	announcement := NewAnnouncer([]ports.BroadcastChannel{farcaster, twitter}, nil, metrics, nil).
		Announce(context.Background(), domain.Post{Text: "hello"})

	require.Len(t, announcement.Results, 2)
	assert.False(t, announcement.Results[0].Success)
	assert.Equal(t, "signer revoked", announcement.Results[0].Error)
	assert.True(t, announcement.Results[1].Success)
	assert.Equal(t, 1, announcement.Succeeded())
	assert.Equal(t, []bool{false}, metrics.posts[domain.ChannelFarcaster])
}

func TestAnnounceReportsUnconfiguredChannels(t *testing.T) {
	farcaster := newChannelMock(t, domain.ChannelFarcaster, 320)
	farcaster.EXPECT().Post(mockAnyContext(), mock.Anything).Return(domain.PostReceipt{ID: "c"}, nil).Once()

	announcement := NewAnnouncer([]ports.BroadcastChannel{farcaster}, []domain.Channel{domain.ChannelTwitter}, nil, nil).
		Announce(context.Background(), domain.Post{Text: "hello"})

	require.Len(t, announcement.Results, 2)
	assert.Equal(t, domain.ChannelTwitter, announcement.Results[1].Channel)
	assert.Equal(t, domain.ErrNotConfigured.Error(), announcement.Results[1].Error)
}

func TestBroadcastDoesNotCrossLink(t *testing.T) {
	farcaster := newChannelMock(t, domain.ChannelFarcaster, 320)
	twitter := newChannelMock(t, domain.ChannelTwitter, 280)

	farcaster.EXPECT().Post(mockAnyContext(), domain.Post{Text: "thanks"}).Return(domain.PostReceipt{ID: "c", URL: "https://warpcast.com/x"}, nil).Once()
	twitter.EXPECT().Post(mockAnyContext(), domain.Post{Text: "thanks"}).Return(domain.PostReceipt{ID: "t"}, nil).Once()

	announcement := NewAnnouncer([]ports.BroadcastChannel{farcaster, twitter}, nil, nil, nil).
		Broadcast(context.Background(), domain.Post{Text: "thanks"})
	assert.Equal(t, 2, announcement.Succeeded())
}
