// Package live pushes auction updates to WebSocket subscribers.
package live

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"auction-ranking/internal/metrics"
	"auction-ranking/internal/ranking"
	"auction-ranking/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// MessageTypeAuctionUpdate tags every message sent to subscribers
const MessageTypeAuctionUpdate = "auction_update"

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBuffer     = 32
)

// RankingSnapshot is the ranking attached to an update. L1 is nil while an
// auction has no bids.
type RankingSnapshot struct {
	L1      *ranking.Entry  `json:"l1"`
	Entries []ranking.Entry `json:"entries"`
}

// AuctionUpdate notifies subscribers that an auction changed. Receivers should
// refetch the full bid set rather than apply it as a delta.
type AuctionUpdate struct {
	Type      string          `json:"type"`
	AuctionID string          `json:"auction_id"`
	Updates   map[string]any  `json:"updates"`
	Ranking   RankingSnapshot `json:"ranking"`
}

// NewAuctionUpdate builds an update message from a freshly computed ranking
func NewAuctionUpdate(auctionID string, updates map[string]any, result ranking.Result) AuctionUpdate {
	snapshot := RankingSnapshot{Entries: result.Entries}
	if l1, ok := result.Winner(); ok {
		snapshot.L1 = &l1
	}
	if updates == nil {
		updates = map[string]any{}
	}
	return AuctionUpdate{
		Type:      MessageTypeAuctionUpdate,
		AuctionID: auctionID,
		Updates:   updates,
		Ranking:   snapshot,
	}
}

type client struct {
	conn *websocket.Conn
	send chan []byte
	once sync.Once
}

func (c *client) close() {
	c.once.Do(func() { close(c.send) })
}

// Hub fans auction updates out to every connected WebSocket client
type Hub struct {
	mu       sync.Mutex
	clients  map[*client]struct{}
	upgrader websocket.Upgrader
}

// NewHub creates a hub whose upgrader accepts any origin; the feed carries no
// credentials and is public.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[*client]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// Publish queues the update for every client without blocking. Clients whose
// buffer is full are disconnected.
func (h *Hub) Publish(update AuctionUpdate) {
	payload, err := json.Marshal(update)
	if err != nil {
		utils.Error("Hub: failed to encode auction update", map[string]any{
			"auction_id": update.AuctionID,
			"error":      err.Error(),
		})
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		select {
		case c.send <- payload:
		default:
			delete(h.clients, c)
			c.close()
			metrics.RecordLiveDrop()
			metrics.LiveClientDisconnected()
			utils.Warn("Hub: dropping slow client", map[string]any{"remote_addr": c.conn.RemoteAddr().String()})
		}
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects every client
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		delete(h.clients, c)
		c.close()
		metrics.LiveClientDisconnected()
	}
}

// ServeWS handles GET /ws
func (h *Hub) ServeWS(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// the upgrader has already written an error response
		utils.Warn("ServeWS: websocket upgrade failed", map[string]any{"error": err.Error()})
		return
	}

	cl := &client{conn: conn, send: make(chan []byte, sendBuffer)}
	h.register(cl)

	go cl.writePump()
	cl.readPump()

	h.unregister(cl)
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()

	metrics.LiveClientConnected()
	utils.Info("Hub: client connected", map[string]any{"remote_addr": c.conn.RemoteAddr().String()})
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	_, ok := h.clients[c]
	delete(h.clients, c)
	h.mu.Unlock()

	c.close()
	if ok {
		metrics.LiveClientDisconnected()
	}
}

// readPump discards inbound messages and returns once the connection fails
func (c *client) readPump() {
	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
