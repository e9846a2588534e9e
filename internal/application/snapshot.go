package application

import (
	"math/big"
	"sync"
	"time"

	"github.com/bnema/pixeloracle/internal/domain"
)

const maxRecentErrors = 10

type ErrorEntry struct {
	Cycle   domain.CycleID
	At      time.Time
	Message string
}

// Snapshot is the process-wide record of cycle progress. The orchestrator writes it and the
// reporter reads copies through View.
type Snapshot struct {
	mu sync.RWMutex

	startedAt time.Time
	nextID    domain.CycleID

	current     domain.CycleRecord
	lastMinted  *domain.CycleRecord
	wallet      domain.WalletObservation
	errors      []ErrorEntry
	attempted   uint64
	completed   uint64
	failed      uint64
	paused      uint64
	lastSuccess time.Time
	lastTrigger time.Time
}

type SnapshotView struct {
	StartedAt      time.Time
	Current        domain.CycleRecord
	LastMinted     *domain.CycleRecord
	Wallet         domain.WalletObservation
	RecentErrors   []ErrorEntry
	TotalAttempted uint64
	TotalCompleted uint64
	TotalFailed    uint64
	TotalPaused    uint64
	LastSuccessAt  time.Time
	// LastTriggeredAt is when the schedule last fired, which may precede Current.StartedAt
	// when the trigger waited for a running cycle.
	LastTriggeredAt time.Time
}

func NewSnapshot(startedAt time.Time) *Snapshot {
	return &Snapshot{
		startedAt: startedAt,
		current:   domain.CycleRecord{Stage: domain.StageIdle},
	}
}

func (s *Snapshot) BeginCycle(now time.Time) domain.CycleRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	s.attempted++
	s.current = domain.CycleRecord{
		ID:        s.nextID,
		StartedAt: now,
		Stage:     domain.StageIdle,
	}

	return cloneRecord(s.current)
}

func (s *Snapshot) Advance(id domain.CycleID, stage domain.Stage) {
	s.update(id, func(r *domain.CycleRecord) {
		r.Stage = stage
	})
}

func (s *Snapshot) RecordConcept(id domain.CycleID, concept domain.Concept) {
	s.update(id, func(r *domain.CycleRecord) {
		r.Theme = concept.Theme
		r.Title = concept.Title
	})
}

func (s *Snapshot) RecordPinned(id domain.CycleID, pinned domain.PinnedArtwork) {
	s.update(id, func(r *domain.CycleRecord) {
		r.ImageURI = pinned.ImageURI
	})
}

func (s *Snapshot) RecordMint(id domain.CycleID, receipt domain.MintReceipt) {
	s.update(id, func(r *domain.CycleRecord) {
		r.TokenID = receipt.TokenID
		r.TxHash = receipt.TxHash
	})
}

func (s *Snapshot) RecordAnnouncement(id domain.CycleID, announcement domain.Announcement) {
	s.update(id, func(r *domain.CycleRecord) {
		r.Channels = append([]domain.ChannelResult(nil), announcement.Results...)
	})
}

func (s *Snapshot) ObserveWallet(observation domain.WalletObservation) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.wallet = observation
}

// Complete returns the number of completed cycles including this one.
func (s *Snapshot) Complete(id domain.CycleID, now time.Time) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.completed++
	s.lastSuccess = now
	if s.current.ID == id {
		s.current.Stage = domain.StageIdle
		s.current.Outcome = domain.OutcomeCompleted
		s.current.FinishedAt = now
		minted := cloneRecord(s.current)
		s.lastMinted = &minted
	}

	return s.completed
}

func (s *Snapshot) Fail(id domain.CycleID, now time.Time, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	message := err.Error()
	s.failed++
	s.errors = append(s.errors, ErrorEntry{Cycle: id, At: now, Message: message})
	if len(s.errors) > maxRecentErrors {
		s.errors = append([]ErrorEntry(nil), s.errors[len(s.errors)-maxRecentErrors:]...)
	}
	if s.current.ID == id {
		s.current.Stage = domain.StageIdle
		s.current.Outcome = domain.OutcomeFailed
		s.current.LastError = message
		s.current.FinishedAt = now
	}
}

func (s *Snapshot) Pause(id domain.CycleID, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.paused++
	if s.current.ID == id {
		s.current.Stage = domain.StageIdle
		s.current.Outcome = domain.OutcomePaused
		s.current.FinishedAt = now
	}
}

func (s *Snapshot) MarkTriggered(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastTrigger = now
}

func (s *Snapshot) View() SnapshotView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	view := SnapshotView{
		StartedAt:       s.startedAt,
		Current:         cloneRecord(s.current),
		Wallet:          s.wallet,
		RecentErrors:    append([]ErrorEntry(nil), s.errors...),
		TotalAttempted:  s.attempted,
		TotalCompleted:  s.completed,
		TotalFailed:     s.failed,
		TotalPaused:     s.paused,
		LastSuccessAt:   s.lastSuccess,
		LastTriggeredAt: s.lastTrigger,
	}
	if s.lastMinted != nil {
		minted := cloneRecord(*s.lastMinted)
		view.LastMinted = &minted
	}
	if s.wallet.Balance != nil {
		view.Wallet.Balance = new(big.Int).Set(s.wallet.Balance)
	}

	return view
}

func (s *Snapshot) update(id domain.CycleID, fn func(*domain.CycleRecord)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current.ID != id {
		return
	}
	fn(&s.current)
}

func cloneRecord(r domain.CycleRecord) domain.CycleRecord {
	out := r
	if r.TokenID != nil {
		out.TokenID = new(big.Int).Set(r.TokenID)
	}
	out.Channels = append([]domain.ChannelResult(nil), r.Channels...)
	return out
}
