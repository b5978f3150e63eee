package gameserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/saradorri/flipside/internal/config"
	"github.com/saradorri/flipside/internal/domain"
	"github.com/saradorri/flipside/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validSnapshot = `{
	"round": "r-42",
	"heads": {
		"players": {"p1": {"username": "alice", "profilePicture": "a.png"}, "p2": {"username": "bob", "profilePicture": "b.png"}},
		"bets": {"p1": "10.10", "p2": 0.2}
	},
	"tails": null
}`

func newTestGameServer(t *testing.T, handler http.HandlerFunc) domain.GameServer {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewGameServer(config.GameServerConfig{
		URL:      srv.URL,
		APIKey:   "secret",
		Timeout:  time.Second,
		RetryMax: 1,
	}, logger.NewNop())
}

func TestGetSnapshot(t *testing.T) {
	gs := newTestGameServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, StatePath, r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("x-api-key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(validSnapshot))
	})

	snapshot, err := gs.GetSnapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "r-42", snapshot.Round)
	assert.Nil(t, snapshot.Tails)
	require.NotNil(t, snapshot.Heads)
	assert.Equal(t, "10.1", snapshot.Heads.Bets["p1"].String())
	assert.Equal(t, "0.2", snapshot.Heads.Bets["p2"].String())
	assert.False(t, snapshot.ReceivedAt.IsZero())
}

func TestGetSnapshotMalformed(t *testing.T) {
	gs := newTestGameServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"round":"r","heads":{"players":{"p1":{}},"bets":{}}}`))
	})

	_, err := gs.GetSnapshot(context.Background())
	assert.True(t, IsMalformed(err))
}

func TestGetSnapshotServerErrors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantCode string
		is4xx    bool
		is5xx    bool
	}{
		{name: "Unauthorized", status: http.StatusUnauthorized, body: `{"code":"BAD_KEY","msg":"invalid api key"}`, wantCode: "BAD_KEY", is4xx: true},
		{name: "Unavailable", status: http.StatusServiceUnavailable, body: `down`, is5xx: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			gs := newTestGameServer(t, func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := gs.GetSnapshot(context.Background())
			require.Error(t, err)

			appErr, ok := domain.IsAppError(err)
			require.True(t, ok)
			assert.Equal(t, domain.ErrCodeGameServerError, appErr.Code)

			var gsErr *domain.GameServerError
			require.ErrorAs(t, err, &gsErr)
			assert.Equal(t, tt.status, gsErr.StatusCode)
			assert.Equal(t, tt.wantCode, gsErr.Code)
			assert.Equal(t, tt.is4xx, Is4xxError(err))
			assert.Equal(t, tt.is5xx, Is5xxError(err))
			if tt.is5xx {
				assert.Equal(t, int32(2), calls.Load())
			} else {
				assert.Equal(t, int32(1), calls.Load())
			}
		})
	}
}

func TestGetSnapshotUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	gs := NewGameServer(config.GameServerConfig{URL: url, Timeout: time.Second, RetryMax: 1}, logger.NewNop())
	_, err := gs.GetSnapshot(context.Background())
	require.Error(t, err)

	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "EXTERNAL_SERVICE_ERROR", appErr.Code)
	assert.False(t, Is4xxError(err))
	assert.False(t, Is5xxError(err))
}

func TestDecodeSnapshotRejectsGarbage(t *testing.T) {
	_, err := DecodeSnapshot([]byte(`{not json`), time.Now())
	assert.True(t, IsMalformed(err))
}

func TestSubscriberDeliversSnapshots(t *testing.T) {
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret", r.Header.Get("x-api-key"))
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"round":"bad","heads":{"players":{"x":{}},"bets":{}}}`))
		_ = conn.WriteMessage(websocket.TextMessage, []byte(validSnapshot))
		_, _, _ = conn.ReadMessage()
	}))
	defer srv.Close()

	sub := NewSubscriber(config.GameServerConfig{
		WSURL:   "ws" + strings.TrimPrefix(srv.URL, "http"),
		APIKey:  "secret",
		Timeout: time.Second,
	}, logger.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	received := make(chan *domain.GameSnapshot, 1)
	done := make(chan error, 1)
	go func() {
		done <- sub.Run(ctx, func(s *domain.GameSnapshot) { received <- s })
	}()

	select {
	case s := <-received:
		assert.Equal(t, "r-42", s.Round)
	case <-time.After(2 * time.Second):
		t.Fatal("no snapshot received")
	}

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("subscriber did not stop")
	}
}
