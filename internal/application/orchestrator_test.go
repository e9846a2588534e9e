package application

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bnema/pixeloracle/internal/domain"
	"github.com/bnema/pixeloracle/internal/ports"
	"github.com/bnema/pixeloracle/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testWallet   = "0x1111111111111111111111111111111111111111"
	testContract = "0x2222222222222222222222222222222222222222"
)

type recordingMetrics struct {
	mu       sync.Mutex
	outcomes []domain.Outcome
	posts    map[domain.Channel][]bool
	events   map[string]int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{posts: map[domain.Channel][]bool{}, events: map[string]int{}}
}

func (m *recordingMetrics) CycleFinished(outcome domain.Outcome, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomes = append(m.outcomes, outcome)
}

func (m *recordingMetrics) ChannelPosted(channel domain.Channel, success bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.posts[channel] = append(m.posts[channel], success)
}

func (m *recordingMetrics) EventProcessed(source string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events[source]++
}

type orchestratorFixture struct {
	art       *mocks.MockArtService
	pinning   *mocks.MockPinningService
	ledger    *mocks.MockLedgerService
	farcaster *mocks.MockBroadcastChannel
	twitter   *mocks.MockBroadcastChannel
	votes     *ThemeVoteTally
	metrics   *recordingMetrics
	clock     *manualClock
}

func newOrchestratorFixture(t *testing.T) *orchestratorFixture {
	t.Helper()

	f := &orchestratorFixture{
		art:       mocks.NewMockArtService(t),
		pinning:   mocks.NewMockPinningService(t),
		ledger:    mocks.NewMockLedgerService(t),
		farcaster: mocks.NewMockBroadcastChannel(t),
		twitter:   mocks.NewMockBroadcastChannel(t),
		votes:     NewThemeVoteTally(),
		metrics:   newRecordingMetrics(),
		clock:     &manualClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)},
	}

	f.ledger.EXPECT().Network().Return(domain.NetworkBaseSepolia).Maybe()
	f.ledger.EXPECT().WalletAddress().Return(testWallet).Maybe()
	f.ledger.EXPECT().ContractAddress().Return(testContract).Maybe()
	f.farcaster.EXPECT().Channel().Return(domain.ChannelFarcaster).Maybe()
	f.farcaster.EXPECT().MaxLength().Return(320).Maybe()
	f.twitter.EXPECT().Channel().Return(domain.ChannelTwitter).Maybe()
	f.twitter.EXPECT().MaxLength().Return(280).Maybe()

	return f
}

func (f *orchestratorFixture) orchestrator(t *testing.T, themes ...string) *Orchestrator {
	t.Helper()

	if len(themes) == 0 {
		themes = []string{"cosmic", "nature"}
	}
	announcer := NewAnnouncer([]ports.BroadcastChannel{f.farcaster, f.twitter}, nil, f.metrics, nil)
	orchestrator, err := NewOrchestrator(OrchestratorConfig{
		Themes:      themes,
		MinBalance:  big.NewInt(30_000_000_000_000),
		ExternalURL: "https://pixeloracle.art",
		Retries:     instantPolicies(),
	}, OrchestratorDeps{
		Art:       f.art,
		Pinning:   f.pinning,
		Ledger:    f.ledger,
		Announcer: announcer,
		Snapshot:  NewSnapshot(f.clock.Now()),
		Votes:     f.votes,
		Retrier:   NewRetrier(nil, noSleep),
		Clock:     f.clock,
		Random:    fixedRandom{index: 0, chance: 0.99},
		Metrics:   f.metrics,
	})
	require.NoError(t, err)

	return orchestrator
}

func (f *orchestratorFixture) funded() {
	f.ledger.EXPECT().Balance(mockAnyContext()).Return(big.NewInt(1_000_000_000_000_000), nil).Maybe()
}

// happyCreation wires a full successful cycle for the given theme. Mint returns token ids in order.
func (f *orchestratorFixture) happyCreation(theme string) {
	concept := domain.Concept{
		Title:       "Nebula Dreams",
		Description: "A drifting cloud of light",
		ImagePrompt: "a nebula shaped like a sleeping whale",
	}
	f.art.EXPECT().Imagine(mockAnyContext(), theme, domain.StyleModifier(theme)).Return(concept, nil).Maybe()
	f.art.EXPECT().Render(mockAnyContext(), mock.Anything).Return([]byte("png-bytes"), nil).Maybe()
	f.art.EXPECT().Proclaim(mockAnyContext(), mock.Anything).Return("The stars remember.", nil).Maybe()

	f.ledger.EXPECT().TotalMinted(mockAnyContext()).Return(big.NewInt(7), nil).Maybe()
	f.pinning.EXPECT().PinFile(mockAnyContext(), "pixeloracle-7.png", []byte("png-bytes")).Return("bafyimage", nil).Maybe()
	f.pinning.EXPECT().PinJSON(mockAnyContext(), "pixeloracle-metadata-7.json", mock.Anything).Return("bafymeta", nil).Maybe()

	var next int64
	var mu sync.Mutex
	f.ledger.EXPECT().Mint(mockAnyContext(), mock.Anything).RunAndReturn(func(context.Context, domain.MintRequest) (domain.MintReceipt, error) {
		mu.Lock()
		defer mu.Unlock()
		next++
		return domain.MintReceipt{TokenID: big.NewInt(next), TxHash: fmt.Sprintf("0xtx%d", next)}, nil
	}).Maybe()
}

func TestRunCycleCreatesMintsAndAnnounces(t *testing.T) {
	f := newOrchestratorFixture(t)
	f.funded()
	f.happyCreation("cosmic")

	var farcasterPost, twitterPost domain.Post
	f.farcaster.EXPECT().Post(mockAnyContext(), mock.Anything).RunAndReturn(func(_ context.Context, post domain.Post) (domain.PostReceipt, error) {
		farcasterPost = post
		return domain.PostReceipt{ID: "0xcast", URL: "https://warpcast.com/~/conversations/0xcast"}, nil
	}).Once()
	f.twitter.EXPECT().Post(mockAnyContext(), mock.Anything).RunAndReturn(func(_ context.Context, post domain.Post) (domain.PostReceipt, error) {
		twitterPost = post
		return domain.PostReceipt{ID: "1700", URL: "https://twitter.com/i/web/status/1700"}, nil
	}).Once()

	o := f.orchestrator(t)
	record, err := o.RunCycle(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.OutcomeCompleted, record.Outcome)
	assert.Equal(t, domain.StageIdle, record.Stage)
	assert.Equal(t, "cosmic", record.Theme)
	assert.Equal(t, "Nebula Dreams", record.Title)
	assert.Equal(t, "ipfs://bafyimage", record.ImageURI)
	assert.Equal(t, "1", record.TokenID.String())
	assert.Equal(t, "0xtx1", record.TxHash)
	require.Len(t, record.Channels, 2)
	assert.True(t, record.Channels[0].Success)
	assert.True(t, record.Channels[1].Success)

	assert.Contains(t, farcasterPost.Text, "The stars remember.")
	assert.Equal(t, "ipfs://bafyimage", farcasterPost.ImageURI)
	assert.Equal(t, []byte("png-bytes"), farcasterPost.Image)
	assert.Contains(t, twitterPost.Text, "https://warpcast.com/~/conversations/0xcast")
	assert.LessOrEqual(t, len([]rune(twitterPost.Text)), 280)

	view := o.Snapshot().View()
	assert.Equal(t, uint64(1), view.TotalCompleted)
	require.NotNil(t, view.LastMinted)
	assert.Equal(t, "0xtx1", view.LastMinted.TxHash)
	assert.Equal(t, "0.001000", view.Wallet.BalanceETH())
	assert.Equal(t, []domain.Outcome{domain.OutcomeCompleted}, f.metrics.outcomes)
}

func TestRunCycleMintsWithPinnedMetadataAndPrompt(t *testing.T) {
	f := newOrchestratorFixture(t)
	f.funded()
	f.art.EXPECT().Imagine(mockAnyContext(), "cosmic", domain.StyleModifier("cosmic")).Return(domain.Concept{
		Title:       "Nebula Dreams",
		Description: "A drifting cloud of light",
		ImagePrompt: "a nebula shaped like a sleeping whale",
	}, nil).Once()
	f.art.EXPECT().Render(mockAnyContext(), mock.Anything).Return([]byte("png-bytes"), nil).Once()
	f.art.EXPECT().Proclaim(mockAnyContext(), mock.Anything).Return("The stars remember.", nil).Once()
	f.ledger.EXPECT().TotalMinted(mockAnyContext()).Return(big.NewInt(7), nil).Once()
	f.pinning.EXPECT().PinFile(mockAnyContext(), "pixeloracle-7.png", []byte("png-bytes")).Return("bafyimage", nil).Once()
	f.farcaster.EXPECT().Post(mockAnyContext(), mock.Anything).Return(domain.PostReceipt{ID: "a"}, nil).Once()
	f.twitter.EXPECT().Post(mockAnyContext(), mock.Anything).Return(domain.PostReceipt{ID: "b"}, nil).Once()

	var metadata domain.TokenMetadata
	f.pinning.EXPECT().PinJSON(mockAnyContext(), "pixeloracle-metadata-7.json", mock.Anything).RunAndReturn(func(_ context.Context, _ string, document any) (string, error) {
		metadata = document.(domain.TokenMetadata)
		return "bafymeta", nil
	}).Once()

	var mintRequest domain.MintRequest
	f.ledger.EXPECT().Mint(mockAnyContext(), mock.Anything).RunAndReturn(func(_ context.Context, req domain.MintRequest) (domain.MintReceipt, error) {
		mintRequest = req
		return domain.MintReceipt{TokenID: big.NewInt(8), TxHash: "0xabc"}, nil
	}).Once()

	o := f.orchestrator(t)
	_, err := o.RunCycle(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "ipfs://bafymeta", mintRequest.MetadataURI)
	assert.Equal(t, "a nebula shaped like a sleeping whale", mintRequest.Prompt)
	assert.Equal(t, "cosmic", mintRequest.Theme)
	assert.Equal(t, "Nebula Dreams", metadata.Name)
	assert.Equal(t, "ipfs://bafyimage", metadata.Image)
	assert.Contains(t, metadata.Description, signatureLine)
}

func TestRunCyclePausesWhenBalanceIsLow(t *testing.T) {
	f := newOrchestratorFixture(t)
	f.ledger.EXPECT().Balance(mockAnyContext()).Return(big.NewInt(29_999_999_999_999), nil).Once()

	o := f.orchestrator(t)
	record, err := o.RunCycle(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.OutcomePaused, record.Outcome)
	view := o.Snapshot().View()
	assert.Empty(t, view.RecentErrors)
	assert.Equal(t, uint64(1), view.TotalPaused)
	assert.Zero(t, view.TotalFailed)
	assert.Nil(t, view.LastMinted)
	assert.Equal(t, []domain.Outcome{domain.OutcomePaused}, f.metrics.outcomes)

	f.art.AssertNotCalled(t, "Imagine", mock.Anything, mock.Anything, mock.Anything)
	f.pinning.AssertNotCalled(t, "PinFile", mock.Anything, mock.Anything, mock.Anything)
	f.ledger.AssertNotCalled(t, "Mint", mock.Anything, mock.Anything)
	f.farcaster.AssertNotCalled(t, "Post", mock.Anything, mock.Anything)
}

func TestRunCycleBalanceReadErrorIsAFailure(t *testing.T) {
	f := newOrchestratorFixture(t)
	f.ledger.EXPECT().Balance(mockAnyContext()).Return(nil, errors.New("rpc unavailable")).Once()

	o := f.orchestrator(t)
	record, err := o.RunCycle(context.Background())
	require.Error(t, err)

	assert.Equal(t, domain.OutcomeFailed, record.Outcome)
	assert.Contains(t, record.LastError, "rpc unavailable")
	require.Len(t, o.Snapshot().View().RecentErrors, 1)
}

func TestRunCycleSucceedsWhenEveryChannelFails(t *testing.T) {
	f := newOrchestratorFixture(t)
	f.funded()
	f.happyCreation("cosmic")
	f.farcaster.EXPECT().Post(mockAnyContext(), mock.Anything).Return(domain.PostReceipt{}, errors.New("neynar 500")).Once()
	f.twitter.EXPECT().Post(mockAnyContext(), mock.Anything).Return(domain.PostReceipt{}, errors.New("twitter 429")).Once()

	o := f.orchestrator(t)
	record, err := o.RunCycle(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.OutcomeCompleted, record.Outcome)
	require.Len(t, record.Channels, 2)
	assert.False(t, record.Channels[0].Success)
	assert.Equal(t, "neynar 500", record.Channels[0].Error)
	assert.Equal(t, "twitter 429", record.Channels[1].Error)
	assert.Equal(t, uint64(1), o.Snapshot().View().TotalCompleted)
	assert.Empty(t, o.Snapshot().View().RecentErrors)
}

func TestRunCycleRecordsHeartbeatEveryFifthCompletion(t *testing.T) {
	f := newOrchestratorFixture(t)
	f.funded()
	f.happyCreation("cosmic")
	f.farcaster.EXPECT().Post(mockAnyContext(), mock.Anything).Return(domain.PostReceipt{ID: "c"}, nil)
	f.twitter.EXPECT().Post(mockAnyContext(), mock.Anything).Return(domain.PostReceipt{ID: "t"}, nil)

	var heartbeats []uint64
	f.ledger.EXPECT().RecordHeartbeat(mockAnyContext(), mock.Anything).RunAndReturn(func(_ context.Context, hb domain.Heartbeat) (string, error) {
		heartbeats = append(heartbeats, hb.Completed)
		return "0xheartbeat", nil
	})

	o := f.orchestrator(t)
	counts := map[int]int{}
	for cycle := 1; cycle <= 10; cycle++ {
		_, err := o.RunCycle(context.Background())
		require.NoError(t, err)
		counts[cycle] = len(heartbeats)
	}

	assert.Equal(t, 0, counts[4])
	assert.Equal(t, 1, counts[5])
	assert.Equal(t, 1, counts[9])
	assert.Equal(t, 2, counts[10])
	assert.Equal(t, []uint64{5, 10}, heartbeats)
}

func TestRunCycleHeartbeatFailureDoesNotFailCycle(t *testing.T) {
	f := newOrchestratorFixture(t)
	f.funded()
	f.happyCreation("cosmic")
	f.farcaster.EXPECT().Post(mockAnyContext(), mock.Anything).Return(domain.PostReceipt{ID: "c"}, nil)
	f.twitter.EXPECT().Post(mockAnyContext(), mock.Anything).Return(domain.PostReceipt{ID: "t"}, nil)
	f.ledger.EXPECT().RecordHeartbeat(mockAnyContext(), mock.Anything).Return("", errors.New("nonce too low")).Once()

	o := f.orchestrator(t)
	for i := 0; i < 5; i++ {
		record, err := o.RunCycle(context.Background())
		require.NoError(t, err)
		assert.Equal(t, domain.OutcomeCompleted, record.Outcome)
	}
	assert.Empty(t, o.Snapshot().View().RecentErrors)
}

func TestRunCycleMintFailureIsRecordedAndNothingIsAnnounced(t *testing.T) {
	f := newOrchestratorFixture(t)
	f.funded()
	f.art.EXPECT().Imagine(mockAnyContext(), "cosmic", mock.Anything).Return(domain.Concept{Title: "T", ImagePrompt: "p"}, nil).Once()
	f.art.EXPECT().Render(mockAnyContext(), mock.Anything).Return([]byte("img"), nil).Once()
	f.ledger.EXPECT().TotalMinted(mockAnyContext()).Return(big.NewInt(0), nil).Once()
	f.pinning.EXPECT().PinFile(mockAnyContext(), mock.Anything, mock.Anything).Return("img-cid", nil).Once()
	f.pinning.EXPECT().PinJSON(mockAnyContext(), mock.Anything, mock.Anything).Return("meta-cid", nil).Once()
	f.ledger.EXPECT().Mint(mockAnyContext(), mock.Anything).Return(domain.MintReceipt{}, domain.ErrMintReverted).Once()

	o := f.orchestrator(t)
	record, err := o.RunCycle(context.Background())
	require.ErrorIs(t, err, domain.ErrMintReverted)

	assert.Equal(t, domain.OutcomeFailed, record.Outcome)
	assert.Equal(t, "ipfs://img-cid", record.ImageURI)
	view := o.Snapshot().View()
	require.Len(t, view.RecentErrors, 1)
	assert.Contains(t, view.RecentErrors[0].Message, "mint artwork")
	assert.Equal(t, uint64(1), view.TotalFailed)
	f.farcaster.AssertNotCalled(t, "Post", mock.Anything, mock.Anything)
	f.art.AssertNotCalled(t, "Proclaim", mock.Anything, mock.Anything)
}

func TestRunCycleKeepsOnlyTheTenMostRecentErrors(t *testing.T) {
	f := newOrchestratorFixture(t)
	calls := 0
	f.ledger.EXPECT().Balance(mockAnyContext()).RunAndReturn(func(context.Context) (*big.Int, error) {
		calls++
		return nil, fmt.Errorf("failure %d", calls)
	})

	o := f.orchestrator(t)
	for i := 0; i < 12; i++ {
		f.clock.Advance(time.Minute)
		_, err := o.RunCycle(context.Background())
		require.Error(t, err)
	}

	view := o.Snapshot().View()
	require.Len(t, view.RecentErrors, 10)
	assert.Contains(t, view.RecentErrors[0].Message, "failure 3")
	assert.Contains(t, view.RecentErrors[9].Message, "failure 12")
	assert.Equal(t, uint64(12), view.TotalFailed)
}

func TestRunCycleUsesWinningVoteTheme(t *testing.T) {
	f := newOrchestratorFixture(t)
	f.funded()
	f.happyCreation("nature")
	f.farcaster.EXPECT().Post(mockAnyContext(), mock.Anything).Return(domain.PostReceipt{ID: "c"}, nil)
	f.twitter.EXPECT().Post(mockAnyContext(), mock.Anything).Return(domain.PostReceipt{ID: "t"}, nil)
	f.votes.Cast("nature", 2)
	f.votes.Cast("cosmic", 1)

	o := f.orchestrator(t)
	record, err := o.RunCycle(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "nature", record.Theme)
	assert.Empty(t, f.votes.Counts())
}

func TestRunCycleRetriesRenderUntilItSucceeds(t *testing.T) {
	f := newOrchestratorFixture(t)
	f.funded()
	f.art.EXPECT().Imagine(mockAnyContext(), "cosmic", mock.Anything).Return(domain.Concept{Title: "T", ImagePrompt: "p"}, nil).Once()
	f.art.EXPECT().Render(mockAnyContext(), mock.Anything).Return(nil, errors.New("content filter")).Twice()
	f.art.EXPECT().Render(mockAnyContext(), mock.Anything).Return([]byte("img"), nil).Once()
	f.art.EXPECT().Proclaim(mockAnyContext(), mock.Anything).Return("", errors.New("quota")).Once()
	f.ledger.EXPECT().TotalMinted(mockAnyContext()).Return(big.NewInt(0), nil).Once()
	f.pinning.EXPECT().PinFile(mockAnyContext(), mock.Anything, mock.Anything).Return("img-cid", nil).Once()
	f.pinning.EXPECT().PinJSON(mockAnyContext(), mock.Anything, mock.Anything).Return("meta-cid", nil).Once()
	f.ledger.EXPECT().Mint(mockAnyContext(), mock.Anything).Return(domain.MintReceipt{TokenID: big.NewInt(1), TxHash: "0x1"}, nil).Once()

	var text string
	f.farcaster.EXPECT().Post(mockAnyContext(), mock.Anything).RunAndReturn(func(_ context.Context, post domain.Post) (domain.PostReceipt, error) {
		text = post.Text
		return domain.PostReceipt{ID: "c"}, nil
	}).Once()
	f.twitter.EXPECT().Post(mockAnyContext(), mock.Anything).Return(domain.PostReceipt{ID: "t"}, nil).Once()

	o := f.orchestrator(t)
	record, err := o.RunCycle(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.OutcomeCompleted, record.Outcome)
	assert.True(t, strings.Contains(text, fallbackProclamation))
}

func TestRunCycleFailsAfterRenderRetriesAreExhausted(t *testing.T) {
	f := newOrchestratorFixture(t)
	f.funded()
	f.art.EXPECT().Imagine(mockAnyContext(), "cosmic", mock.Anything).Return(domain.Concept{Title: "T"}, nil).Once()
	f.art.EXPECT().Render(mockAnyContext(), mock.Anything).Return(nil, errors.New("content filter")).Times(3)

	o := f.orchestrator(t)
	record, err := o.RunCycle(context.Background())
	require.Error(t, err)

	assert.Equal(t, domain.OutcomeFailed, record.Outcome)
	assert.Contains(t, record.LastError, "render image")
	f.pinning.AssertNotCalled(t, "PinFile", mock.Anything, mock.Anything, mock.Anything)
}

func TestRunCycleSerializesOverlappingCalls(t *testing.T) {
	f := newOrchestratorFixture(t)
	f.funded()
	f.happyCreation("cosmic")
	f.farcaster.EXPECT().Post(mockAnyContext(), mock.Anything).Return(domain.PostReceipt{ID: "c"}, nil)
	f.twitter.EXPECT().Post(mockAnyContext(), mock.Anything).Return(domain.PostReceipt{ID: "t"}, nil)

	o := f.orchestrator(t)
	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = o.RunCycle(context.Background())
		}()
	}
	wg.Wait()

	view := o.Snapshot().View()
	assert.Equal(t, uint64(3), view.TotalAttempted)
	assert.Equal(t, uint64(3), view.TotalCompleted)
}

func TestTickQueuesAtMostOneTriggerBehindARunningCycle(t *testing.T) {
	f := newOrchestratorFixture(t)
	f.happyCreation("cosmic")
	f.farcaster.EXPECT().Post(mockAnyContext(), mock.Anything).Return(domain.PostReceipt{ID: "c"}, nil)
	f.twitter.EXPECT().Post(mockAnyContext(), mock.Anything).Return(domain.PostReceipt{ID: "t"}, nil)

	entered := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32
	f.ledger.EXPECT().Balance(mockAnyContext()).RunAndReturn(func(context.Context) (*big.Int, error) {
		if calls.Add(1) == 1 {
			close(entered)
			<-release
		}
		return big.NewInt(1_000_000_000_000_000), nil
	})

	o := f.orchestrator(t)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		o.Tick(context.Background())
	}()
	<-entered

	go func() {
		defer wg.Done()
		o.Tick(context.Background())
	}()
	require.Eventually(t, o.tickWaiting.Load, time.Second, time.Millisecond)

	o.Tick(context.Background())
	o.Tick(context.Background())

	close(release)
	wg.Wait()

	view := o.Snapshot().View()
	assert.Equal(t, uint64(2), view.TotalAttempted)
	assert.Equal(t, uint64(2), view.TotalCompleted)
	assert.False(t, o.tickWaiting.Load())
}

func TestTickRecordsTriggerTimeBeforeWaiting(t *testing.T) {
	f := newOrchestratorFixture(t)
	f.ledger.EXPECT().Balance(mockAnyContext()).Return(big.NewInt(0), nil)

	o := f.orchestrator(t)
	triggered := f.clock.Now()
	o.Tick(context.Background())

	assert.Equal(t, triggered, o.Snapshot().View().LastTriggeredAt)
}

func TestNewOrchestratorRequiresThemes(t *testing.T) {
	_, err := NewOrchestrator(OrchestratorConfig{}, OrchestratorDeps{})
	require.ErrorIs(t, err, ErrNoThemes)
}
