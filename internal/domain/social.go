package domain

import (
	"math/big"
	"strconv"
	"time"
)

type Channel string

const (
	ChannelFarcaster Channel = "farcaster"
	ChannelTwitter   Channel = "twitter"
)

type Post struct {
	Text string
	// ImageURI is embedded by channels that support link embeds.
	ImageURI string
	Image    []byte
	ReplyTo  string
}

type PostReceipt struct {
	ID  string
	URL string
}

type ChannelResult struct {
	Channel Channel `json:"channel"`
	Success bool    `json:"success"`
	PostID  string  `json:"postId,omitempty"`
	URL     string  `json:"url,omitempty"`
	Error   string  `json:"error,omitempty"`
}

type Announcement struct {
	Text    string
	Results []ChannelResult
}

func (a Announcement) Succeeded() int {
	count := 0
	for _, result := range a.Results {
		if result.Success {
			count++
		}
	}
	return count
}

type Mention struct {
	Channel  Channel
	ID       string
	Author   string
	Text     string
	PostedAt time.Time
}

func (m Mention) EventKey() string {
	return string(m.Channel) + ":" + m.ID
}

// Transfer is an ERC-721 Transfer log observed on the contract.
type Transfer struct {
	From     string
	To       string
	TokenID  *big.Int
	TxHash   string
	LogIndex uint
	Block    uint64
}

func (t Transfer) EventKey() string {
	id := "0"
	if t.TokenID != nil {
		id = t.TokenID.String()
	}
	return t.TxHash + "-" + id + "-" + strconv.FormatUint(uint64(t.LogIndex), 10)
}
