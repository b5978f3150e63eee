package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/saradorri/flipside/internal/domain"
	"github.com/saradorri/flipside/internal/http/middleware"
	"github.com/saradorri/flipside/internal/infrastructure/logger"
	"github.com/saradorri/flipside/internal/livebets"
	"go.uber.org/zap"
)

// Live stream timings
const (
	writeWait  = 5 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

// BetsHandler serves the aggregated live bets of the current round
type BetsHandler struct {
	store    domain.SnapshotStore
	logger   *logger.Logger
	upgrader websocket.Upgrader
}

// NewBetsHandler creates a new bets handler
func NewBetsHandler(store domain.SnapshotStore, logger *logger.Logger) *BetsHandler {
	return &BetsHandler{
		store:  store,
		logger: logger.Named("bets"),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// GetSide handles getting the aggregated bets of one side
// @Summary Get live bets of a side
// @Description Total wager and one row per bettor of the Heads or Tails side, largest wager first
// @Tags coinflip
// @Produce json
// @Param side path string true "Side" Enums(heads, tails)
// @Success 200 {object} livebets.Summary
// @Failure 400 {object} domain.ErrorResponse
// @Failure 503 {object} domain.ErrorResponse
// @Router /coinflip/bets/{side} [get]
func (h *BetsHandler) GetSide(c *gin.Context) {
	side, err := domain.ParseSide(c.Param("side"))
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	snapshot, ok := h.store.Latest()
	if !ok {
		middleware.RespondError(c, domain.NewAppError(domain.ErrCodeSnapshotUnavailable, "No game snapshot received yet", http.StatusServiceUnavailable, nil))
		return
	}

	c.JSON(http.StatusOK, livebets.Aggregate(side, snapshot.For(side)))
}

// Live handles the websocket stream of both sides
// @Summary Stream live bets
// @Description Upgrades to a websocket that receives a livebets.Board on every snapshot
// @Tags coinflip
// @Success 101
// @Router /coinflip/live [get]
func (h *BetsHandler) Live(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("Websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	updates, unsubscribe := h.store.Subscribe()
	defer unsubscribe()

	closed := make(chan struct{})
	go h.readPump(conn, closed)

	if snapshot, ok := h.store.Latest(); ok {
		if err := h.writeBoard(conn, snapshot); err != nil {
			return
		}
	}

	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	for {
		select {
		case <-closed:
			return
		case <-c.Request.Context().Done():
			return
		case snapshot := <-updates:
			if err := h.writeBoard(conn, snapshot); err != nil {
				h.logger.Debug("Dropping live client", zap.Error(err))
				return
			}
		case <-ping.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}

func (h *BetsHandler) writeBoard(conn *websocket.Conn, snapshot *domain.GameSnapshot) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(livebets.NewBoard(snapshot))
}

// readPump discards client messages and closes done when the peer goes away
func (h *BetsHandler) readPump(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
