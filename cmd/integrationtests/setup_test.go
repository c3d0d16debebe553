package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	auction "auction-ranking/internal/auctionService"
	model "auction-ranking/internal/models"
	"auction-ranking/internal/repository"
	"auction-ranking/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// TestEnv bundles the router with the service behind it, for tests that
// need to drive time-based transitions directly.
type TestEnv struct {
	Router  *gin.Engine
	Service *auction.AuctionService
	Repo    *repository.MemoryRepo
}

// SetupTestRouter initializes the router with in-memory repository for integration testing.
func SetupTestRouter() *gin.Engine {
	return SetupTestEnv().Router
}

// SetupTestEnv initializes the router and seeds the repo with auctions.
func SetupTestEnv(auctions ...model.Auction) TestEnv {
	gin.SetMode(gin.TestMode)
	repo := repository.NewMemoryRepo()

	for _, a := range auctions {
		if err := repo.CreateAuction(a); err != nil {
			panic(err)
		}
	}

	service := auction.NewAuctionService(repo, nil)
	router := server.SetupRouter(service, nil, nil)
	return TestEnv{Router: router, Service: service, Repo: repo}
}

// SetupTestRouterWithAuctions initializes the router and seeds the repo with auctions.
func SetupTestRouterWithAuctions(auctions ...model.Auction) *gin.Engine {
	return SetupTestEnv(auctions...).Router
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		if err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}

		if w.Code == 201 {
			resp = resp["data"].(map[string]any)
		}
	}

	return resp, w
}

// bidRequest is the wire form of a bid submission
type bidRequest struct {
	AuctionID string `json:"auction_id"`
	VendorID  string `json:"vendor_id"`
	Amount    string `json:"amount"`
}

// testAuction returns an auction with a 1000 ceiling whose window is placed
// relative to the current time.
func testAuction(id string, status model.AuctionStatus, startOffset, endOffset time.Duration) model.Auction {
	now := time.Now().UTC()
	return model.Auction{
		ID:                       id,
		Name:                     "auction " + id,
		Description:              "integration test auction",
		ReservePrice:             decimal.NewFromInt(1000),
		StartTime:                now.Add(startOffset),
		EndTime:                  now.Add(endOffset),
		OriginalEndTime:          now.Add(endOffset),
		MaxExtensions:            2,
		ExtensionDurationMinutes: 30,
		Status:                   status,
		CreatedAt:                now,
		UpdatedAt:                now,
	}
}

func liveTestAuction(id string) model.Auction {
	return testAuction(id, model.StatusLive, -time.Hour, time.Hour)
}
