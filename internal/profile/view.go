// Package profile holds the state of the profile page: the viewed user's
// public record and their paginated, filterable inventory.
package profile

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/saradorri/flipside/internal/debounce"
	"github.com/saradorri/flipside/internal/domain"
	"github.com/saradorri/flipside/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// Defaults for Options
const (
	DefaultFilterDebounce    = time.Second
	DefaultLoadMoreThreshold = 19
)

// ErrInvalidPath is returned when the route does not carry a profile id
var ErrInvalidPath = errors.New("profile: path must look like /profile/<id>")

// UserService fetches a user's public record
type UserService interface {
	GetUser(ctx context.Context, id string) (*domain.Profile, error)
}

// InventoryService fetches one page of a user's inventory
type InventoryService interface {
	GetInventory(ctx context.Context, id string, page int, filters domain.InventoryFilters) (*domain.InventoryPage, error)
}

// Viewer identifies who is looking at the page. The zero value is an
// anonymous visitor.
type Viewer struct {
	ID string
}

// Options tune a View
type Options struct {
	FilterDebounce    time.Duration
	LoadMoreThreshold int
}

// State is a consistent copy of everything the page renders
type State struct {
	User             *domain.Profile
	UserErr          error
	LoadingUser      bool
	Items            []domain.Item
	CurrentPage      int
	TotalPages       int
	InventoryErr     error
	LoadingInventory bool
	Filters          domain.InventoryFilters
	CanLoadMore      bool
	IsSameUser       bool
}

// View is the profile page of one target user
type View struct {
	targetID  string
	viewer    Viewer
	users     UserService
	inventory InventoryService
	logger    *logger.Logger
	opts      Options
	filters   *debounce.Slot

	flightMu sync.Mutex
	flightCh *sync.Cond
	inflight int

	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
	closed bool

	user        *domain.Profile
	userErr     error
	loadingUser bool
	userGen     uint64
	userCancel  context.CancelFunc

	page             *domain.InventoryPage
	items            []domain.Item
	inventoryErr     error
	loadingInventory bool
	inventoryGen     uint64
	inventoryCancel  context.CancelFunc
	currentFilters   domain.InventoryFilters

	refresh bool
}

// TargetIDFromPath extracts the user id from a /profile/<id> route
func TargetIDFromPath(path string) (string, error) {
	segments := strings.Split(path, "/")
	if len(segments) < 3 || segments[0] != "" || segments[2] == "" {
		return "", ErrInvalidPath
	}
	return segments[2], nil
}

// NewView creates the page for the user named by path, as seen by viewer
func NewView(
	path string,
	viewer Viewer,
	users UserService,
	inventory InventoryService,
	clock debounce.Clock,
	log *logger.Logger,
	opts Options,
) (*View, error) {
	targetID, err := TargetIDFromPath(path)
	if err != nil {
		return nil, err
	}
	if opts.FilterDebounce <= 0 {
		opts.FilterDebounce = DefaultFilterDebounce
	}
	if opts.LoadMoreThreshold <= 0 {
		opts.LoadMoreThreshold = DefaultLoadMoreThreshold
	}
	if log == nil {
		log = logger.NewNop()
	}

	ctx, cancel := context.WithCancel(context.Background())
	v := &View{
		targetID:         targetID,
		viewer:           viewer,
		users:            users,
		inventory:        inventory,
		logger:           log.Named("profile"),
		opts:             opts,
		filters:          debounce.NewSlot(clock),
		ctx:              ctx,
		cancel:           cancel,
		loadingUser:      true,
		loadingInventory: true,
		currentFilters:   domain.DefaultInventoryFilters(),
	}
	v.flightCh = sync.NewCond(&v.flightMu)
	return v, nil
}

// TargetID returns the id of the profile being viewed
func (v *View) TargetID() string {
	return v.targetID
}

// Mount loads the user and the first inventory page. Both fetches run
// concurrently; use Wait to block until they settle.
func (v *View) Mount(ctx context.Context) {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return
	}
	v.cancel()
	v.ctx, v.cancel = context.WithCancel(ctx)
	v.mu.Unlock()

	v.fetchUser()
	v.fetchInventory(1, false)
}

// SetFilters changes the inventory filters. The first page is refetched once
// the filters have been left alone for the debounce window. Filters are
// compared after normalization.
func (v *View) SetFilters(filters domain.InventoryFilters) {
	filters = filters.Normalize()

	v.mu.Lock()
	if v.closed || filters == v.currentFilters {
		v.mu.Unlock()
		return
	}
	v.currentFilters = filters
	v.mu.Unlock()

	v.filters.Schedule(v.opts.FilterDebounce, func() {
		v.fetchInventory(1, false)
	})
}

// FlushFilters fetches for a pending filter change right away instead of
// waiting out the debounce window. It reports whether a change was pending.
func (v *View) FlushFilters() bool {
	return v.filters.Flush()
}

// Filters returns the current filters
func (v *View) Filters() domain.InventoryFilters {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.currentFilters
}

// CanLoadMore reports whether the "load more" action is offered
func (v *View) CanLoadMore() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.canLoadMoreLocked()
}

func (v *View) canLoadMoreLocked() bool {
	return v.page != nil &&
		v.page.CurrentPage != v.page.TotalPages &&
		len(v.items) > v.opts.LoadMoreThreshold
}

// LoadMore requests the next inventory page with the current filters and
// appends it to the accumulated items. It returns false when the action is
// not offered or an inventory fetch is still outstanding.
func (v *View) LoadMore() bool {
	v.mu.Lock()
	if v.closed || v.loadingInventory || !v.canLoadMoreLocked() {
		v.mu.Unlock()
		return false
	}
	next := v.page.CurrentPage + 1
	v.mu.Unlock()

	v.fetchInventory(next, true)
	return true
}

// SetRefresh raises the one-shot refresh flag: the user and the first
// inventory page are fetched again and the flag drops back to false.
func (v *View) SetRefresh(refresh bool) {
	v.mu.Lock()
	if !refresh || v.refresh || v.closed {
		v.mu.Unlock()
		return
	}
	v.refresh = true
	v.mu.Unlock()

	v.fetchUser()
	v.fetchInventory(1, false)

	v.mu.Lock()
	v.refresh = false
	v.mu.Unlock()
}

// Refresh is SetRefresh(true), handed to child components
func (v *View) Refresh() {
	v.SetRefresh(true)
}

// Refreshing reports the refresh flag
func (v *View) Refreshing() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.refresh
}

// IsSameUser reports whether the viewer is looking at their own profile
func (v *View) IsSameUser() bool {
	return v.viewer.ID != "" && v.viewer.ID == v.targetID
}

// Fixable reports whether inventory items offer the fix action
func (v *View) Fixable() bool {
	return v.IsSameUser()
}

// CanEditProfile reports whether profile edit affordances are shown
func (v *View) CanEditProfile() bool {
	return v.IsSameUser()
}

// User returns the loaded user, or nil
func (v *View) User() *domain.Profile {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.user
}

// Items returns a copy of the accumulated inventory items
func (v *View) Items() []domain.Item {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]domain.Item(nil), v.items...)
}

// LoadingUser reports whether the user record is still loading
func (v *View) LoadingUser() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loadingUser
}

// LoadingInventory reports whether an inventory page is still loading
func (v *View) LoadingInventory() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loadingInventory
}

// UserErr returns the error of the last user fetch
func (v *View) UserErr() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.userErr
}

// InventoryErr returns the error of the last inventory fetch
func (v *View) InventoryErr() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.inventoryErr
}

// State returns a consistent copy of the page state
func (v *View) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()

	s := State{
		User:             v.user,
		UserErr:          v.userErr,
		LoadingUser:      v.loadingUser,
		Items:            append([]domain.Item(nil), v.items...),
		InventoryErr:     v.inventoryErr,
		LoadingInventory: v.loadingInventory,
		Filters:          v.currentFilters,
		CanLoadMore:      v.canLoadMoreLocked(),
		IsSameUser:       v.IsSameUser(),
	}
	if v.page != nil {
		s.CurrentPage = v.page.CurrentPage
		s.TotalPages = v.page.TotalPages
	}
	return s
}

// Wait blocks until every dispatched fetch has settled. Fetches dispatched
// while Wait is blocked are waited for too.
func (v *View) Wait() {
	v.flightMu.Lock()
	defer v.flightMu.Unlock()
	for v.inflight > 0 {
		v.flightCh.Wait()
	}
}

// Close cancels the pending filter fetch and every in-flight request
func (v *View) Close() {
	v.filters.Cancel()
	v.mu.Lock()
	v.closed = true
	v.cancel()
	v.mu.Unlock()
}

func (v *View) fetchUser() {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return
	}
	v.userGen++
	gen := v.userGen
	if v.userCancel != nil {
		v.userCancel()
	}
	ctx, cancel := context.WithCancel(v.ctx)
	v.userCancel = cancel
	v.loadingUser = true
	v.mu.Unlock()

	v.spawn(func() {
		defer cancel()
		user, err := v.users.GetUser(ctx, v.targetID)

		v.mu.Lock()
		defer v.mu.Unlock()
		if gen != v.userGen {
			v.logger.Debug("Discarding superseded user response", zap.String("user_id", v.targetID), zap.Uint64("generation", gen))
			return
		}
		v.loadingUser = false
		if err != nil {
			v.logger.Error("Failed to get user", zap.String("user_id", v.targetID), zap.Error(err))
			v.user = nil
			v.userErr = err
			return
		}
		v.user = user
		v.userErr = nil
	})
}

func (v *View) fetchInventory(page int, appendItems bool) {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return
	}
	v.inventoryGen++
	gen := v.inventoryGen
	if v.inventoryCancel != nil {
		v.inventoryCancel()
	}
	ctx, cancel := context.WithCancel(v.ctx)
	v.inventoryCancel = cancel
	v.loadingInventory = true
	filters := v.currentFilters
	v.mu.Unlock()

	v.spawn(func() {
		defer cancel()
		resp, err := v.inventory.GetInventory(ctx, v.targetID, page, filters)

		v.mu.Lock()
		defer v.mu.Unlock()
		if gen != v.inventoryGen {
			v.logger.Debug("Discarding superseded inventory response", zap.String("user_id", v.targetID), zap.Int("page", page), zap.Uint64("generation", gen))
			return
		}
		v.loadingInventory = false
		if err != nil {
			v.logger.Error("Failed to get inventory", zap.String("user_id", v.targetID), zap.Int("page", page), zap.Error(err))
			v.inventoryErr = err
			return
		}
		v.inventoryErr = nil
		v.page = &domain.InventoryPage{CurrentPage: resp.CurrentPage, TotalPages: resp.TotalPages}
		if appendItems {
			v.items = append(v.items, resp.Items...)
		} else {
			v.items = append([]domain.Item(nil), resp.Items...)
		}
	})
}

func (v *View) spawn(f func()) {
	v.flightMu.Lock()
	v.inflight++
	v.flightMu.Unlock()

	go func() {
		defer v.land()
		f()
	}()
}

func (v *View) land() {
	v.flightMu.Lock()
	defer v.flightMu.Unlock()
	v.inflight--
	if v.inflight == 0 {
		v.flightCh.Broadcast()
	}
}
