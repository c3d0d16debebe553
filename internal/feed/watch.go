package feed

import (
	"context"
	"fmt"
	"strings"

	"auction-ranking/internal/live"
	"auction-ranking/internal/ranking"
	"auction-ranking/utils"

	"github.com/gorilla/websocket"
	"github.com/tidwall/gjson"
)

// RankingFunc receives every recomputed ranking of a watched auction
type RankingFunc func(result ranking.Result)

// Watch ranks the auction once, then again after every push update for it.
// Each update triggers a full refetch and recompute, never a delta.
// It returns when ctx is cancelled or the connection drops.
func (c *Client) Watch(ctx context.Context, auctionID string, fn RankingFunc) error {
	conn, _, err := c.dialer.DialContext(ctx, c.wsURL(), nil)
	if err != nil {
		return fmt.Errorf("feed: websocket dial: %w", err)
	}
	defer conn.Close()

	// unblock ReadMessage on cancellation
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			conn.Close()
		case <-stop:
		}
	}()

	if err := c.rerank(ctx, auctionID, fn); err != nil {
		return err
	}

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return fmt.Errorf("feed: read update: %w", err)
		}

		if !isUpdateFor(message, auctionID) {
			continue
		}
		if err := c.rerank(ctx, auctionID, fn); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			// a failed refetch is retried on the next update
			utils.Warn("feed: re-rank failed", map[string]any{
				"auction_id": auctionID,
				"error":      err.Error(),
			})
		}
	}
}

func (c *Client) rerank(ctx context.Context, auctionID string, fn RankingFunc) error {
	result, err := c.Rankings(ctx, auctionID)
	if err != nil {
		return err
	}
	fn(result)
	return nil
}

func (c *Client) wsURL() string {
	switch {
	case strings.HasPrefix(c.baseURL, "https://"):
		return "wss://" + strings.TrimPrefix(c.baseURL, "https://") + "/ws"
	case strings.HasPrefix(c.baseURL, "http://"):
		return "ws://" + strings.TrimPrefix(c.baseURL, "http://") + "/ws"
	}
	return c.baseURL + "/ws"
}

func isUpdateFor(message []byte, auctionID string) bool {
	if !gjson.ValidBytes(message) {
		return false
	}
	update := gjson.ParseBytes(message)
	return update.Get("type").String() == live.MessageTypeAuctionUpdate &&
		update.Get("auction_id").String() == auctionID
}
