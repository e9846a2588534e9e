package application

import (
	"fmt"
	"time"

	"github.com/bnema/pixeloracle/internal/domain"
	"github.com/bnema/pixeloracle/internal/ports"
)

const reportedErrors = 3

type ReporterConfig struct {
	AgentID         string
	Network         domain.Network
	ContractAddress string
	WalletAddress   string
	Interval        time.Duration
}

// Reporter projects the snapshot into status documents. It never writes to the snapshot;
// derived fields are computed from the clock on every call.
type Reporter struct {
	cfg      ReporterConfig
	snapshot *Snapshot
	clock    ports.Clock
}

func NewReporter(cfg ReporterConfig, snapshot *Snapshot, clock ports.Clock) *Reporter {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Reporter{cfg: cfg, snapshot: snapshot, clock: clock}
}

type HealthReport struct {
	Status         string     `json:"status"`
	LastCycle      *time.Time `json:"lastCycle"`
	TotalCompleted uint64     `json:"totalCompleted"`
	Uptime         string     `json:"uptime"`
}

type RecordReference struct {
	TokenID     string `json:"tokenId"`
	TxHash      string `json:"txHash"`
	ExplorerURL string `json:"explorerUrl"`
	Marketplace string `json:"marketplaceUrl"`
	Title       string `json:"title,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

type CycleReport struct {
	ID        uint64                 `json:"id"`
	State     domain.Stage           `json:"state"`
	Outcome   domain.Outcome         `json:"outcome,omitempty"`
	StartedAt *time.Time             `json:"startedAt"`
	Theme     string                 `json:"theme,omitempty"`
	Title     string                 `json:"title,omitempty"`
	LastError string                 `json:"lastError,omitempty"`
	Channels  []domain.ChannelResult `json:"channels,omitempty"`
}

type ErrorReport struct {
	Cycle   uint64    `json:"cycle"`
	At      time.Time `json:"at"`
	Message string    `json:"message"`
}

type WalletReport struct {
	Address    string     `json:"address"`
	BalanceETH string     `json:"balanceEth"`
	CheckedAt  *time.Time `json:"checkedAt"`
}

type StatusReport struct {
	Status         string           `json:"status"`
	State          domain.Stage     `json:"state"`
	AgentID        string           `json:"agentId"`
	Network        domain.Network   `json:"network"`
	Contract       string           `json:"contract"`
	Cycle          CycleReport      `json:"cycle"`
	TotalAttempted uint64           `json:"totalAttempted"`
	TotalCompleted uint64           `json:"totalCompleted"`
	TotalFailed    uint64           `json:"totalFailed"`
	TotalPaused    uint64           `json:"totalPaused"`
	LastRecord     *RecordReference `json:"lastRecord"`
	RecentErrors   []ErrorReport    `json:"recentErrors"`
	Wallet         WalletReport     `json:"wallet"`
	Uptime         string           `json:"uptime"`
	NextCycleIn    string           `json:"nextCycleIn,omitempty"`
}

type ProofReport struct {
	Alive               bool       `json:"alive"`
	LastRecordReference string     `json:"lastRecordReference"`
	NextScheduledTime   *time.Time `json:"nextScheduledTime"`
}

func (r *Reporter) Health() HealthReport {
	view := r.snapshot.View()
	now := r.clock.Now()

	return HealthReport{
		Status:         healthStatus(view),
		LastCycle:      timePtr(view.Current.StartedAt),
		TotalCompleted: view.TotalCompleted,
		Uptime:         HumanDuration(now.Sub(view.StartedAt)),
	}
}

func (r *Reporter) Status() StatusReport {
	view := r.snapshot.View()
	now := r.clock.Now()

	report := StatusReport{
		Status:         healthStatus(view),
		State:          view.Current.Stage,
		AgentID:        r.cfg.AgentID,
		Network:        r.cfg.Network,
		Contract:       r.cfg.ContractAddress,
		TotalAttempted: view.TotalAttempted,
		TotalCompleted: view.TotalCompleted,
		TotalFailed:    view.TotalFailed,
		TotalPaused:    view.TotalPaused,
		LastRecord:     r.recordReference(view.LastMinted),
		RecentErrors:   recentErrors(view.RecentErrors, reportedErrors),
		Wallet: WalletReport{
			Address:    r.walletAddress(view.Wallet),
			BalanceETH: view.Wallet.BalanceETH(),
			CheckedAt:  timePtr(view.Wallet.CheckedAt),
		},
		Uptime: HumanDuration(now.Sub(view.StartedAt)),
		Cycle: CycleReport{
			ID:        uint64(view.Current.ID),
			State:     view.Current.Stage,
			Outcome:   view.Current.Outcome,
			StartedAt: timePtr(view.Current.StartedAt),
			Theme:     view.Current.Theme,
			Title:     view.Current.Title,
			LastError: view.Current.LastError,
			Channels:  view.Current.Channels,
		},
	}
	if next := r.nextScheduled(view); next != nil {
		report.NextCycleIn = HumanDuration(next.Sub(now))
	}

	return report
}

func (r *Reporter) Proof() ProofReport {
	view := r.snapshot.View()

	reference := ""
	if view.LastMinted != nil {
		reference = view.LastMinted.TxHash
	}

	return ProofReport{
		Alive:               true,
		LastRecordReference: reference,
		NextScheduledTime:   r.nextScheduled(view),
	}
}

// nextScheduled is measured from the latest trigger, matching the poller's schedule.
func (r *Reporter) nextScheduled(view SnapshotView) *time.Time {
	if r.cfg.Interval <= 0 {
		return nil
	}

	base := view.LastTriggeredAt
	if base.IsZero() {
		base = view.Current.StartedAt
	}
	if base.IsZero() {
		base = view.StartedAt
	}
	next := base.Add(r.cfg.Interval)
	return &next
}

func (r *Reporter) recordReference(record *domain.CycleRecord) *RecordReference {
	if record == nil {
		return nil
	}

	ref := &RecordReference{
		TxHash:      record.TxHash,
		ExplorerURL: r.cfg.Network.ExplorerTxURL(record.TxHash),
		Marketplace: r.cfg.Network.MarketplaceURL(r.cfg.ContractAddress, record.TokenID),
		Title:       record.Title,
	}
	if record.TokenID != nil {
		ref.TokenID = record.TokenID.String()
	}
	if record.ImageURI != "" {
		ref.ImageURL = domain.GatewayURL(record.ImageURI)
	}

	return ref
}

func (r *Reporter) walletAddress(observation domain.WalletObservation) string {
	if observation.Address != "" {
		return observation.Address
	}
	return r.cfg.WalletAddress
}

func healthStatus(view SnapshotView) string {
	switch {
	case view.TotalAttempted == 0:
		return "starting"
	case view.Current.Outcome == domain.OutcomeFailed:
		return "degraded"
	case view.Current.Outcome == domain.OutcomePaused:
		return "paused"
	default:
		return "healthy"
	}
}

func recentErrors(entries []ErrorEntry, limit int) []ErrorReport {
	if len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}

	out := make([]ErrorReport, 0, len(entries))
	for _, entry := range entries {
		out = append(out, ErrorReport{Cycle: uint64(entry.Cycle), At: entry.At, Message: entry.Message})
	}
	return out
}

// HumanDuration renders d as "1d 2h 3m 4s", dropping leading zero units.
func HumanDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	days := total / 86400
	hours := (total % 86400) / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, seconds)
	case hours > 0:
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
