// Package feed is a consumer of the auction API. It fetches auctions and their
// loosely-typed bid lists, ranks them locally, and re-ranks on every push
// notification for a watched auction.
package feed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"auction-ranking/internal/lifecycle"
	"auction-ranking/internal/models"
	"auction-ranking/internal/ranking"

	"github.com/gorilla/websocket"
	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

const (
	defaultTimeout = 10 * time.Second
	centPlaces     = 2
)

// Client talks to one auction server
type Client struct {
	baseURL    string
	httpClient *http.Client
	dialer     websocket.Dialer
	now        func() time.Time
}

// Config holds client configuration.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// APIError is a non-2xx response from the server
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("feed: server returned %d: %s", e.StatusCode, e.Message)
}

// New creates a new feed client.
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		dialer:     websocket.Dialer{HandshakeTimeout: timeout},
		now:        time.Now,
	}
}

// FetchAuction returns the auction record
func (c *Client) FetchAuction(ctx context.Context, auctionID string) (models.Auction, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/auctions/"+auctionID, nil)
	if err != nil {
		return models.Auction{}, err
	}

	var auction models.Auction
	data := gjson.GetBytes(body, "data")
	if !data.IsObject() {
		return models.Auction{}, fmt.Errorf("feed: auction %s: response has no data object", auctionID)
	}
	if err := json.Unmarshal([]byte(data.Raw), &auction); err != nil {
		return models.Auction{}, fmt.Errorf("feed: decode auction %s: %w", auctionID, err)
	}
	return auction, nil
}

// FetchBids returns the auction's complete bid set. Records that cannot be
// parsed are returned separately instead of failing the fetch.
func (c *Client) FetchBids(ctx context.Context, auctionID string) ([]models.Bid, []ranking.SkippedBid, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/auctions/"+auctionID+"/bids", nil)
	if err != nil {
		return nil, nil, err
	}

	bids, skipped, err := ranking.ParseBidRecords(body)
	if err != nil {
		return nil, nil, fmt.Errorf("feed: bids of %s: %w", auctionID, err)
	}
	return bids, skipped, nil
}

// FetchChallenges returns the challenge prices issued in the auction
func (c *Client) FetchChallenges(ctx context.Context, auctionID string) ([]models.ChallengePrice, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/auctions/"+auctionID+"/challenge-prices", nil)
	if err != nil {
		return nil, err
	}

	data := gjson.GetBytes(body, "data")
	if !data.Exists() || data.Type == gjson.Null {
		return nil, nil
	}
	if !data.IsArray() {
		return nil, fmt.Errorf("feed: challenge prices of %s: response data is not a list", auctionID)
	}

	var challenges []models.ChallengePrice
	if err := json.Unmarshal([]byte(data.Raw), &challenges); err != nil {
		return nil, fmt.Errorf("feed: decode challenge prices of %s: %w", auctionID, err)
	}
	return challenges, nil
}

// Rankings fetches the auction, its bids and its negotiated prices and ranks
// them from scratch the same way the server does.
func (c *Client) Rankings(ctx context.Context, auctionID string) (ranking.Result, error) {
	auction, err := c.FetchAuction(ctx, auctionID)
	if err != nil {
		return ranking.Result{}, err
	}
	bids, skipped, err := c.FetchBids(ctx, auctionID)
	if err != nil {
		return ranking.Result{}, err
	}
	challenges, err := c.FetchChallenges(ctx, auctionID)
	if err != nil {
		return ranking.Result{}, err
	}

	result := ranking.ComputeRankingsWithOverrides(bids, auction.ReservePrice, ranking.ApplyPriceOverrides(challenges))
	result.Skipped = append(skipped, result.Skipped...)
	return result, nil
}

// SubmitBid validates the bid against the auction locally before sending it.
// The server may still reject a bid that passes here.
func (c *Client) SubmitBid(ctx context.Context, auction models.Auction, vendorID string, amount decimal.Decimal) (models.Bid, error) {
	status := lifecycle.NextStatus(auction, c.now().UTC())
	// the server stores amounts in cents and validates the rounded value
	amount = amount.Round(centPlaces)
	if v := ranking.ValidateBid(amount, auction.ReservePrice, status); !v.Valid {
		return models.Bid{}, fmt.Errorf("feed: bid rejected locally: %w", v.Err())
	}

	payload, err := json.Marshal(map[string]any{
		"auction_id": auction.ID,
		"vendor_id":  vendorID,
		"amount":     amount,
	})
	if err != nil {
		return models.Bid{}, fmt.Errorf("feed: marshal bid: %w", err)
	}

	body, err := c.do(ctx, http.MethodPost, "/api/bids", payload)
	if err != nil {
		return models.Bid{}, err
	}

	var bid models.Bid
	data := gjson.GetBytes(body, "data")
	if err := json.Unmarshal([]byte(data.Raw), &bid); err != nil {
		return models.Bid{}, fmt.Errorf("feed: decode bid: %w", err)
	}
	return bid, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("feed: create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("feed: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("feed: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := gjson.GetBytes(body, "message").String()
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: message}
	}
	return body, nil
}
