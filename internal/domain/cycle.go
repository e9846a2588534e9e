package domain

import (
	"math/big"
	"time"
)

type CycleID uint64

type Stage string

const (
	StageIdle               Stage = "idle"
	StageCreating           Stage = "creating"
	StageRecordingOwnership Stage = "recording_ownership"
	StageAnnouncing         Stage = "announcing"
)

// Outcome is how a cycle left the state machine.
type Outcome string

const (
	OutcomePending   Outcome = ""
	OutcomeCompleted Outcome = "completed"
	OutcomeFailed    Outcome = "failed"
	OutcomePaused    Outcome = "paused"
)

type CycleRecord struct {
	ID         CycleID
	StartedAt  time.Time
	FinishedAt time.Time
	Stage      Stage
	Outcome    Outcome
	LastError  string

	Theme    string
	Title    string
	ImageURI string
	TokenID  *big.Int
	TxHash   string

	Channels []ChannelResult
}

func (r CycleRecord) Done() bool {
	return r.Outcome != OutcomePending
}

// Concept is what the art service imagines before anything is rendered.
type Concept struct {
	Theme       string
	Title       string
	Description string
	ImagePrompt string
}

type Artwork struct {
	Concept Concept
	Image   []byte
}

type PinnedArtwork struct {
	ImageURI    string
	MetadataURI string
}

type MintRequest struct {
	MetadataURI string
	Prompt      string
	Theme       string
}

type MintReceipt struct {
	TokenID *big.Int
	TxHash  string
}

type Heartbeat struct {
	Cycle     CycleID
	Completed uint64
	At        time.Time
}
