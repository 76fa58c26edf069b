package vahan

import (
	"sync"
	"time"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/google/uuid"
)

// Gate defaults.
const (
	DefaultTTL          = 24 * time.Hour
	DefaultMaxPerSource = 20
	DefaultAuditLimit   = 300
)

// expectedRCs sizes the approximate distinct-RC filter.
const expectedRCs = 100_000

// GateConfig configures a Gate. Zero values fall back to the
// defaults above; keys left empty disable the corresponding state.
type GateConfig struct {
	// AdminKey always passes, bypassing TTL and quota.
	AdminKey string

	// TempKey is honored only within TTL of gate creation and within
	// the per-source quota.
	TempKey string

	// TTL is the validity window for TempKey, anchored at gate
	// creation. It never resets.
	TTL time.Duration

	// MaxPerSource is the accepted-request quota per source
	// identifier for TempKey.
	MaxPerSource int

	// AuditLimit bounds the audit log; the oldest entries are
	// discarded once it is exceeded.
	AuditLimit int
}

// AuditEntry records one accepted request.
type AuditEntry struct {
	ID     string    `json:"id"`
	Source string    `json:"source"`
	RC     string    `json:"rc"`
	Time   time.Time `json:"time"`
}

// GateStats is a point-in-time summary of gate activity.
type GateStats struct {
	Accepted    int  `json:"accepted"`
	Sources     int  `json:"sources"`
	DistinctRCs uint `json:"distinct_rcs"`
}

// Gate validates caller-supplied access keys and enforces the
// time-windowed validity period and per-source quota for temporary
// keys. All state is in-memory and dies with the process; the TTL
// anchor is fixed at construction.
//
// Gate is safe for concurrent use. The quota check, its increment,
// and the audit append/truncation for one request form a single
// critical section.
type Gate struct {
	cfg       GateConfig
	createdAt time.Time
	now       func() time.Time

	mu       sync.Mutex
	usage    map[string]int
	audit    []AuditEntry
	accepted int
	seen     *bloom.BloomFilter
}

// GateOption configures a Gate.
type GateOption func(*Gate)

// WithClock sets the time source used for the TTL anchor, TTL checks,
// and audit timestamps. Defaults to time.Now.
func WithClock(now func() time.Time) GateOption {
	return func(g *Gate) {
		g.now = now
	}
}

// NewGate creates a Gate anchored at the current time.
func NewGate(cfg GateConfig, opts ...GateOption) *Gate {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.MaxPerSource <= 0 {
		cfg.MaxPerSource = DefaultMaxPerSource
	}
	if cfg.AuditLimit <= 0 {
		cfg.AuditLimit = DefaultAuditLimit
	}
	g := &Gate{
		cfg:   cfg,
		now:   time.Now,
		usage: make(map[string]int),
		seen:  bloom.NewWithEstimates(expectedRCs, 0.01),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.createdAt = g.now()
	return g
}

// Authorize validates key for a request from source querying rc.
// On acceptance it records the request; on rejection no state
// changes. Rejections carry EUNAUTHORIZED (unknown key), EEXPIRED
// (temporary key outside its TTL window), or ERATELIMIT (source over
// quota).
func (g *Gate) Authorize(key, source, rc string) error {
	switch {
	case key != "" && key == g.cfg.AdminKey:
		return g.record(source, rc, false)
	case key != "" && key == g.cfg.TempKey:
		if g.now().Sub(g.createdAt) >= g.cfg.TTL {
			return Errorf(EEXPIRED, "temporary key validity window has ended")
		}
		return g.record(source, rc, true)
	default:
		return Errorf(EUNAUTHORIZED, "invalid or missing access key")
	}
}

// record performs the check-and-record critical section. Admin
// requests (countQuota false) are logged but never counted or
// rejected.
func (g *Gate) record(source, rc string, countQuota bool) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if countQuota {
		if g.usage[source] >= g.cfg.MaxPerSource {
			return Errorf(ERATELIMIT, "source %q exceeded request quota", source)
		}
		g.usage[source]++
	}

	g.audit = append(g.audit, AuditEntry{
		ID:     uuid.New().String(),
		Source: source,
		RC:     rc,
		Time:   g.now(),
	})
	if len(g.audit) > g.cfg.AuditLimit {
		trimmed := make([]AuditEntry, g.cfg.AuditLimit)
		copy(trimmed, g.audit[len(g.audit)-g.cfg.AuditLimit:])
		g.audit = trimmed
	}

	g.accepted++
	g.seen.AddString(CanonicalRC(rc))
	return nil
}

// Usage returns the accepted temporary-key request count for source.
func (g *Gate) Usage(source string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.usage[source]
}

// Audit returns a copy of the audit log, oldest first.
func (g *Gate) Audit() []AuditEntry {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]AuditEntry, len(g.audit))
	copy(out, g.audit)
	return out
}

// Stats summarizes gate activity. The distinct-RC count is
// approximate (Bloom filter estimate).
func (g *Gate) Stats() GateStats {
	g.mu.Lock()
	defer g.mu.Unlock()
	return GateStats{
		Accepted:    g.accepted,
		Sources:     len(g.usage),
		DistinctRCs: uint(g.seen.ApproximatedSize()),
	}
}
