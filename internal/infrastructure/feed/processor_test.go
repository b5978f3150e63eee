package feed

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/saradorri/flipside/internal/config"
	"github.com/saradorri/flipside/internal/domain"
	"github.com/saradorri/flipside/internal/domain/mocks"
	"github.com/saradorri/flipside/internal/infrastructure/logger"
	"github.com/saradorri/flipside/internal/infrastructure/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fakePush struct {
	snapshots []*domain.GameSnapshot
}

func (f *fakePush) Run(ctx context.Context, handle func(*domain.GameSnapshot)) error {
	for _, s := range f.snapshots {
		handle(s)
	}
	<-ctx.Done()
	return ctx.Err()
}

func TestSyncStoresSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	gameServer := mocks.NewMockGameServer(ctrl)
	store := snapshot.NewStore()
	p := NewProcessor(gameServer, nil, store, config.FeedConfig{Mode: config.FeedModePoll}, logger.NewNop())

	gameServer.EXPECT().GetSnapshot(gomock.Any()).Return(&domain.GameSnapshot{Round: "7"}, nil)

	require.NoError(t, p.Sync())
	latest, ok := store.Latest()
	require.True(t, ok)
	assert.Equal(t, "7", latest.Round)
}

func TestSyncKeepsPreviousSnapshotOnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	gameServer := mocks.NewMockGameServer(ctrl)
	store := snapshot.NewStore()
	store.Put(&domain.GameSnapshot{Round: "6"})
	p := NewProcessor(gameServer, nil, store, config.FeedConfig{Mode: config.FeedModePoll}, logger.NewNop())

	gameServer.EXPECT().GetSnapshot(gomock.Any()).Return(nil, domain.NewMalformedSnapshotError("player \"a\" has no bet"))

	assert.Error(t, p.Sync())
	latest, _ := store.Latest()
	assert.Equal(t, "6", latest.Round)
}

func TestSyncAfterStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	gameServer := mocks.NewMockGameServer(ctrl)
	gameServer.EXPECT().GetSnapshot(gomock.Any()).Return(nil, errors.New("unreachable")).AnyTimes()
	p := NewProcessor(gameServer, nil, snapshot.NewStore(), config.FeedConfig{Mode: config.FeedModePoll, PollInterval: time.Hour}, logger.NewNop())

	p.StartBackgroundProcessing()
	p.StopBackgroundProcessing()

	assert.Error(t, p.Sync())
}

func TestPushModeStoresSnapshots(t *testing.T) {
	ctrl := gomock.NewController(t)
	gameServer := mocks.NewMockGameServer(ctrl)
	store := snapshot.NewStore()
	push := &fakePush{snapshots: []*domain.GameSnapshot{{Round: "1"}, {Round: "2"}}}
	p := NewProcessor(gameServer, push, store, config.FeedConfig{Mode: config.FeedModePush}, logger.NewNop())

	ch, unsubscribe := store.Subscribe()
	defer unsubscribe()

	p.StartBackgroundProcessing()
	defer p.StopBackgroundProcessing()

	assert.Eventually(t, func() bool {
		latest, ok := store.Latest()
		return ok && latest.Round == "2"
	}, time.Second, 10*time.Millisecond)
	assert.NotNil(t, <-ch)
}

func gameServerFailure(status int) error {
	return domain.NewAppError(domain.ErrCodeGameServerError, "Game server request failed", http.StatusBadGateway,
		&domain.GameServerError{StatusCode: status, Message: http.StatusText(status)})
}

func TestSyncClassifiesFailures(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel zapcore.Level
		wantMsg   string
	}{
		{name: "Malformed", err: domain.NewMalformedSnapshotError("negative bet"), wantLevel: zapcore.WarnLevel, wantMsg: "Discarding malformed snapshot"},
		{name: "Rejected", err: gameServerFailure(http.StatusUnauthorized), wantLevel: zapcore.ErrorLevel, wantMsg: "Game server rejected snapshot request, check gameserver url and api_key"},
		{name: "Unavailable", err: gameServerFailure(http.StatusServiceUnavailable), wantLevel: zapcore.WarnLevel, wantMsg: "Game server unavailable, retrying on next poll"},
		{name: "Transport", err: errors.New("connection refused"), wantLevel: zapcore.ErrorLevel, wantMsg: "Failed to get snapshot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			gameServer := mocks.NewMockGameServer(ctrl)
			core, logs := observer.New(zapcore.DebugLevel)
			store := snapshot.NewStore()
			store.Put(&domain.GameSnapshot{Round: "6"})
			p := NewProcessor(gameServer, nil, store, config.FeedConfig{Mode: config.FeedModePoll}, logger.FromZap(zap.New(core)))

			gameServer.EXPECT().GetSnapshot(gomock.Any()).Return(nil, tt.err)

			assert.Equal(t, tt.err, p.Sync())

			entries := logs.FilterMessage(tt.wantMsg).All()
			require.Len(t, entries, 1)
			assert.Equal(t, tt.wantLevel, entries[0].Level)

			latest, _ := store.Latest()
			assert.Equal(t, "6", latest.Round)
		})
	}
}

func TestNextDelayBacksOffOnRejection(t *testing.T) {
	p := NewProcessor(nil, nil, snapshot.NewStore(), config.FeedConfig{PollInterval: time.Second}, logger.NewNop())
	rejected := gameServerFailure(http.StatusForbidden)

	assert.Equal(t, time.Second, p.nextDelay(nil))
	assert.Equal(t, 2*time.Second, p.nextDelay(rejected))
	assert.Equal(t, 4*time.Second, p.nextDelay(rejected))
	assert.Equal(t, time.Second, p.nextDelay(gameServerFailure(http.StatusBadGateway)))
	assert.Equal(t, 2*time.Second, p.nextDelay(rejected))

	for i := 0; i < 10; i++ {
		p.nextDelay(rejected)
	}
	assert.Equal(t, MaxRejectedBackoff, p.nextDelay(rejected))
	assert.Equal(t, time.Second, p.nextDelay(nil))
}

func TestNextDelayNeverShorterThanInterval(t *testing.T) {
	p := NewProcessor(nil, nil, snapshot.NewStore(), config.FeedConfig{PollInterval: 2 * time.Minute}, logger.NewNop())
	assert.Equal(t, 2*time.Minute, p.nextDelay(gameServerFailure(http.StatusUnauthorized)))
}
