package feed

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/saradorri/flipside/internal/config"
	"github.com/saradorri/flipside/internal/domain"
	"github.com/saradorri/flipside/internal/infrastructure/external/gameserver"
	"github.com/saradorri/flipside/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// MaxRejectedBackoff caps the poll delay while the game server keeps
// rejecting our requests with 4xx
const MaxRejectedBackoff = time.Minute

const maxRejectionShift = 6

// PushSource delivers snapshots as the game server publishes them
type PushSource interface {
	Run(ctx context.Context, handle func(*domain.GameSnapshot)) error
}

// Processor implements domain.SnapshotFeed
type Processor struct {
	gameServer domain.GameServer
	push       PushSource
	store      domain.SnapshotStore
	logger     *logger.Logger
	mode       string
	interval   time.Duration
	rejections int

	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.RWMutex
	isRunning bool
}

// NewProcessor creates a new snapshot feed processor
func NewProcessor(
	gameServer domain.GameServer,
	push PushSource,
	store domain.SnapshotStore,
	cfg config.FeedConfig,
	logger *logger.Logger,
) *Processor {
	ctx, cancel := context.WithCancel(context.Background())
	interval := cfg.PollInterval
	if interval <= 0 {
		interval = time.Second
	}
	return &Processor{
		gameServer: gameServer,
		push:       push,
		store:      store,
		logger:     logger.Named("feed"),
		mode:       cfg.Mode,
		interval:   interval,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Sync pulls the current snapshot from the game server and stores it
func (p *Processor) Sync() error {
	if err := p.checkCancellation(); err != nil {
		return err
	}

	snapshot, err := p.gameServer.GetSnapshot(p.ctx)
	if err != nil {
		p.logFailure(err)
		return err
	}

	p.accept(snapshot)
	return nil
}

// logFailure reports a failed sync; the store keeps its previous snapshot
func (p *Processor) logFailure(err error) {
	switch {
	case gameserver.IsMalformed(err):
		p.logger.Warn("Discarding malformed snapshot", zap.Error(err))
	case gameserver.Is4xxError(err):
		p.logger.Error("Game server rejected snapshot request, check gameserver url and api_key", zap.Error(err))
	case gameserver.Is5xxError(err):
		p.logger.Warn("Game server unavailable, retrying on next poll", zap.Error(err))
	default:
		p.logger.Error("Failed to get snapshot", zap.Error(err))
	}
}

// nextDelay returns how long to wait before the next poll. Rejected (4xx)
// requests back off exponentially up to MaxRejectedBackoff.
func (p *Processor) nextDelay(err error) time.Duration {
	if !gameserver.Is4xxError(err) {
		p.rejections = 0
		return p.interval
	}

	if p.rejections < maxRejectionShift {
		p.rejections++
	}
	limit := MaxRejectedBackoff
	if p.interval > limit {
		limit = p.interval
	}
	delay := p.interval << p.rejections
	if delay > limit {
		delay = limit
	}
	p.logger.Info("Backing off snapshot polling", zap.Duration("delay", delay), zap.Int("rejections", p.rejections))
	return delay
}

// accept stores a validated snapshot
func (p *Processor) accept(snapshot *domain.GameSnapshot) {
	p.logger.Debug("Snapshot received",
		zap.String("round", snapshot.Round),
		zap.Int("heads_players", len(snapshot.Heads.PlayerIDs())),
		zap.Int("tails_players", len(snapshot.Tails.PlayerIDs())))
	p.store.Put(snapshot)
}

// checkCancellation checks if the processor has been cancelled
func (p *Processor) checkCancellation() error {
	select {
	case <-p.ctx.Done():
		return fmt.Errorf("processor cancelled")
	default:
		return nil
	}
}

// StartBackgroundProcessing starts polling or the push subscription,
// depending on the configured mode
func (p *Processor) StartBackgroundProcessing() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.isRunning {
		p.logger.Warn("Snapshot feed is already running")
		return
	}

	p.isRunning = true
	p.wg.Add(1)

	if p.mode == config.FeedModePush && p.push != nil {
		go func() {
			defer p.wg.Done()
			p.logger.Info("Snapshot push subscription started")
			if err := p.push.Run(p.ctx, p.accept); err != nil && p.ctx.Err() == nil {
				p.logger.Error("Snapshot push subscription failed", zap.Error(err))
			}
		}()
		return
	}

	go func() {
		defer p.wg.Done()
		p.logger.Info("Snapshot polling started", zap.Duration("interval", p.interval))

		timer := time.NewTimer(p.nextDelay(p.Sync()))
		defer timer.Stop()

		for {
			select {
			case <-p.ctx.Done():
				p.logger.Info("Snapshot polling stopped")
				return
			case <-timer.C:
				timer.Reset(p.nextDelay(p.Sync()))
			}
		}
	}()
}

// StopBackgroundProcessing stops the background loop
func (p *Processor) StopBackgroundProcessing() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.isRunning {
		p.logger.Warn("Snapshot feed is not running")
		return
	}

	p.logger.Info("Stopping snapshot feed...")
	p.cancel()
	p.wg.Wait()
	p.isRunning = false
	p.logger.Info("Snapshot feed stopped")
}
