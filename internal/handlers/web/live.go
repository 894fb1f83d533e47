package web

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/KirkDiggler/army-rater/internal/engine"
	"github.com/KirkDiggler/army-rater/internal/orchestrators/roster"
)

// Live message types
const (
	LiveReport  = "report"
	LiveDeleted = "deleted"
)

const (
	liveWriteTimeout = 10 * time.Second
	livePingInterval = 30 * time.Second
)

// LiveMessage is one frame of the live feed
type LiveMessage struct {
	Type   string         `json:"type"`
	ArmyID string         `json:"army_id"`
	Report *engine.Report `json:"report,omitempty"`
}

// liveFeed holds at most one undelivered message. A newer report replaces an
// older one; a deletion is never replaced.
type liveFeed struct {
	mu      sync.Mutex
	pending *LiveMessage
	ready   chan struct{}
}

func newLiveFeed() *liveFeed {
	return &liveFeed{ready: make(chan struct{}, 1)}
}

func (f *liveFeed) push(msg LiveMessage) {
	f.mu.Lock()
	if f.pending == nil || f.pending.Type != LiveDeleted {
		f.pending = &msg
	}
	f.mu.Unlock()

	select {
	case f.ready <- struct{}{}:
	default:
	}
}

func (f *liveFeed) take() (LiveMessage, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.pending == nil {
		return LiveMessage{}, false
	}
	msg := *f.pending
	f.pending = nil
	return msg, true
}

// live streams the army's report after every change. The current report is
// sent first; the socket closes when the army is deleted.
func (h *Handler) live(w http.ResponseWriter, r *http.Request) {
	armyID := mux.Vars(r)["id"]

	// Subscribe before reading the current report so a change landing in
	// between still reaches the client.
	feed := newLiveFeed()
	forward := func(msgType string) events.HandlerFunc {
		return func(_ context.Context, e events.Event) error {
			scored, ok := roster.ScoredFromEvent(e)
			if !ok || scored.GetID() != armyID {
				return nil
			}
			feed.push(LiveMessage{Type: msgType, ArmyID: armyID, Report: scored.Report})
			return nil
		}
	}
	scoredSub := h.bus.SubscribeFunc(roster.EventArmyScored, 0, forward(LiveReport))
	deletedSub := h.bus.SubscribeFunc(roster.EventArmyDeleted, 0, forward(LiveDeleted))
	defer func() {
		_ = h.bus.Unsubscribe(scoredSub)
		_ = h.bus.Unsubscribe(deletedSub)
	}()

	current, err := h.roster.ScoreArmy(r.Context(), &roster.ScoreArmyInput{ArmyID: armyID})
	if err != nil {
		writeError(w, r, err)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.WarnContext(r.Context(), "websocket upgrade failed", "army_id", armyID, "error", err.Error())
		return
	}
	defer func() {
		_ = conn.Close()
	}()

	slog.InfoContext(r.Context(), "live feed opened", "army_id", armyID)

	// The reader only exists to notice the client going away.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if err := writeFrame(conn, LiveMessage{Type: LiveReport, ArmyID: armyID, Report: current.Report}); err != nil {
		return
	}

	ping := time.NewTicker(livePingInterval)
	defer ping.Stop()

	for {
		select {
		case <-feed.ready:
			msg, ok := feed.take()
			if !ok {
				continue
			}
			if err := writeFrame(conn, msg); err != nil {
				return
			}
			if msg.Type == LiveDeleted {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "army deleted"),
					time.Now().Add(liveWriteTimeout))
				return
			}
		case <-ping.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(liveWriteTimeout)); err != nil {
				return
			}
		case <-closed:
			slog.InfoContext(r.Context(), "live feed closed", "army_id", armyID)
			return
		}
	}
}

func writeFrame(conn *websocket.Conn, msg LiveMessage) error {
	_ = conn.SetWriteDeadline(time.Now().Add(liveWriteTimeout))
	return conn.WriteJSON(msg)
}
