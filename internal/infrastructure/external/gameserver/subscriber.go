package gameserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/saradorri/flipside/internal/config"
	"github.com/saradorri/flipside/internal/domain"
	"github.com/saradorri/flipside/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// Reconnect backoff bounds for the push subscription
const (
	minBackoff = 500 * time.Millisecond
	maxBackoff = 30 * time.Second
)

// Subscriber receives snapshots pushed by the game server over a websocket
type Subscriber struct {
	url    string
	header http.Header
	dialer *websocket.Dialer
	logger *logger.Logger
}

// NewSubscriber creates a push subscriber for cfg.WSURL
func NewSubscriber(cfg config.GameServerConfig, log *logger.Logger) *Subscriber {
	header := http.Header{}
	header.Set("x-api-key", cfg.APIKey)

	return &Subscriber{
		url:    cfg.WSURL,
		header: header,
		dialer: &websocket.Dialer{HandshakeTimeout: cfg.Timeout},
		logger: log.Named("gameserver-ws"),
	}
}

// Run keeps a subscription open until ctx is done, reconnecting with
// exponential backoff. Every valid snapshot is passed to handle; malformed
// ones are logged and skipped.
func (s *Subscriber) Run(ctx context.Context, handle func(*domain.GameSnapshot)) error {
	backoff := minBackoff
	for {
		connected, err := s.session(ctx, handle)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if connected {
			backoff = minBackoff
		}

		s.logger.Warn("Game server subscription dropped",
			zap.String("url", s.url),
			zap.Duration("retry_in", backoff),
			zap.Error(err))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}

		backoff *= 2
		if backoff > maxBackoff {
			backoff = maxBackoff
		}
	}
}

// session reads one connection until it fails. It reports whether the
// handshake succeeded.
func (s *Subscriber) session(ctx context.Context, handle func(*domain.GameSnapshot)) (bool, error) {
	conn, _, err := s.dialer.DialContext(ctx, s.url, s.header)
	if err != nil {
		return false, err
	}
	defer conn.Close()

	s.logger.Info("Subscribed to game server", zap.String("url", s.url))

	stop := context.AfterFunc(ctx, func() {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second))
		_ = conn.Close()
	})
	defer stop()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return true, err
		}

		snapshot, err := DecodeSnapshot(data, time.Now())
		if err != nil {
			s.logger.Error("Discarding malformed snapshot", zap.Error(err))
			continue
		}
		handle(snapshot)
	}
}
