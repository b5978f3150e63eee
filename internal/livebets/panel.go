package livebets

import (
	"sync"
	"time"

	"github.com/saradorri/flipside/internal/debounce"
	"github.com/saradorri/flipside/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultHoverDelay is how long a pointer must dwell on a row before its
// preview opens
const DefaultHoverDelay = 500 * time.Millisecond

// State tells the renderer what the panel holds
type State int

const (
	// StateWaiting means no usable snapshot for this side has arrived
	StateWaiting State = iota
	// StateReady means Summary reflects the latest snapshot
	StateReady
	// StateInvalid means the latest snapshot for this side was malformed
	StateInvalid
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateInvalid:
		return "invalid"
	default:
		return "waiting"
	}
}

// Options tune a Panel
type Options struct {
	HoverDelay time.Duration
}

// Panel is the live bets sidebar for one side of the flip
type Panel struct {
	side       domain.Side
	hoverDelay time.Duration
	hover      *debounce.Slot

	mu      sync.RWMutex
	state   State
	summary Summary
	err     error
	hovered string
}

// NewPanel creates an empty panel for side
func NewPanel(side domain.Side, clock debounce.Clock, opts Options) *Panel {
	if opts.HoverDelay <= 0 {
		opts.HoverDelay = DefaultHoverDelay
	}
	return &Panel{
		side:       side,
		hoverDelay: opts.HoverDelay,
		hover:      debounce.NewSlot(clock),
		summary:    Summary{Side: side, Total: decimal.Zero, Rows: []Row{}},
	}
}

// Side returns the side this panel shows
func (p *Panel) Side() domain.Side {
	return p.side
}

// Apply recomputes the panel from a new snapshot
func (p *Panel) Apply(snapshot *domain.GameSnapshot) error {
	sideSnapshot := snapshot.For(p.side)

	p.mu.Lock()
	defer p.mu.Unlock()

	if sideSnapshot == nil || sideSnapshot.Players == nil || sideSnapshot.Bets == nil {
		p.state = StateWaiting
		p.err = nil
		p.summary = Aggregate(p.side, nil)
		return nil
	}

	if err := sideSnapshot.Validate(); err != nil {
		p.state = StateInvalid
		p.err = err
		p.summary = Aggregate(p.side, nil)
		return err
	}

	p.state = StateReady
	p.err = nil
	p.summary = Aggregate(p.side, sideSnapshot)
	return nil
}

// State returns what the panel currently holds and the error behind StateInvalid
func (p *Panel) State() (State, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state, p.err
}

// Total returns the sum of the wagers on this side
func (p *Panel) Total() decimal.Decimal {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.summary.Total
}

// Rows returns a copy of the current rows
func (p *Panel) Rows() []Row {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.copyRowsLocked()
}

func (p *Panel) copyRowsLocked() []Row {
	rows := make([]Row, len(p.summary.Rows))
	copy(rows, p.summary.Rows)
	return rows
}

// Summary returns a copy of the aggregated side. Total and rows always come
// from the same snapshot.
func (p *Panel) Summary() Summary {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return Summary{Side: p.side, Total: p.summary.Total, Rows: p.copyRowsLocked()}
}

// Enter starts the hover delay for playerID, replacing any pending one
func (p *Panel) Enter(playerID string) {
	p.hover.Schedule(p.hoverDelay, func() {
		p.mu.Lock()
		p.hovered = playerID
		p.mu.Unlock()
	})
}

// Leave cancels a pending preview and hides the shown one
func (p *Panel) Leave() {
	p.hover.Cancel()
	p.mu.Lock()
	p.hovered = ""
	p.mu.Unlock()
}

// Hovered returns the id of the player whose preview is open
func (p *Panel) Hovered() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.hovered
}

// Preview returns the row of the previewed player, if that player is
// still in the current snapshot
func (p *Panel) Preview() (Row, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.hovered == "" {
		return Row{}, false
	}
	for _, row := range p.summary.Rows {
		if row.PlayerID == p.hovered {
			return row, true
		}
	}
	return Row{}, false
}

// Close cancels the pending hover timer
func (p *Panel) Close() {
	p.hover.Cancel()
}
