package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// decimalMatcher matches decimals by value, so "900" and "900.00" are equal
type decimalMatcher struct {
	want decimal.Decimal
}

func (m decimalMatcher) Matches(x interface{}) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decimalMatcher) String() string {
	return "is decimal " + m.want.String()
}

func decEq(v string) gomock.Matcher {
	return decimalMatcher{want: decimal.RequireFromString(v)}
}

// newTestRouter registers every handler on a fresh router backed by a mock service
func newTestRouter(t *testing.T) (*MockAuctionServiceInterface, *gin.Engine) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockService := NewMockAuctionServiceInterface(ctrl)
	handler := NewAuctionHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/auctions", handler.CreateAuctionHandler)
	router.GET("/api/auctions", handler.ListAuctionsHandler)
	router.GET("/api/auctions/:auction_id", handler.GetAuctionHandler)
	router.GET("/api/auctions/:auction_id/bids", handler.GetBidsByAuctionHandler)
	router.GET("/api/auctions/:auction_id/rankings", handler.GetRankingsHandler)
	router.GET("/api/auctions/:auction_id/winning", handler.GetWinningBidHandler)
	router.GET("/api/auctions/:auction_id/stats", handler.GetBidStatsHandler)
	router.POST("/api/auctions/:auction_id/extend", handler.ExtendAuctionHandler)
	router.GET("/api/auctions/:auction_id/extensions", handler.GetExtensionsHandler)
	router.POST("/api/auctions/:auction_id/challenge-prices", handler.CreateChallengeHandler)
	router.GET("/api/auctions/:auction_id/challenge-prices", handler.GetChallengesHandler)
	router.POST("/api/challenge-prices/:challenge_id/respond", handler.RespondToChallengeHandler)
	router.POST("/api/challenge-prices/:challenge_id/counter", handler.CounterChallengeHandler)
	router.POST("/api/challenge-prices/:challenge_id/counter/respond", handler.RespondToCounterHandler)
	router.POST("/api/bids", handler.RecordBidHandler)
	router.GET("/api/vendors/:vendor_id/auctions", handler.GetAuctionsByVendorHandler)

	return mockService, router
}

// doRequest sends body (a raw string or a value to marshal) and decodes the envelope
func doRequest(t *testing.T, router http.Handler, method, path string, body any) (int, map[string]any) {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case string:
		reqBody = []byte(v)
	default:
		var err error
		reqBody, err = json.Marshal(v)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w.Code, resp
}
