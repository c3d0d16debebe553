// Command rankwatch prints the live ranking of one auction, recomputed on
// every bid pushed by the server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"auction-ranking/internal/feed"
	"auction-ranking/internal/ranking"
	"auction-ranking/utils"
)

func main() {
	server := flag.String("server", "http://localhost:8080", "auction server base URL")
	auctionID := flag.String("auction", "", "auction to watch")
	once := flag.Bool("once", false, "print the current ranking and exit")
	flag.Parse()

	if *auctionID == "" {
		fmt.Fprintln(os.Stderr, "rankwatch: -auction is required")
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := feed.New(feed.Config{BaseURL: *server})

	if *once {
		result, err := client.Rankings(ctx, *auctionID)
		if err != nil {
			utils.Fatal("rankwatch: failed to fetch rankings", map[string]any{"error": err.Error()})
		}
		printRanking(os.Stdout, *auctionID, result)
		return
	}

	err := client.Watch(ctx, *auctionID, func(result ranking.Result) {
		printRanking(os.Stdout, *auctionID, result)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		utils.Fatal("rankwatch: watch stopped", map[string]any{"auction_id": *auctionID, "error": err.Error()})
	}
}

func printRanking(out io.Writer, auctionID string, result ranking.Result) {
	fmt.Fprintf(out, "\n%s  auction %s\n", time.Now().Format(time.TimeOnly), utils.ShortID(auctionID))

	if len(result.Entries) == 0 {
		fmt.Fprintln(out, "  no bids yet")
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if len(result.Entries) > 0 {
		fmt.Fprintln(w, "  RANK\tVENDOR\tAMOUNT\tSAVINGS\tSAVINGS %\tSOURCE")
	}
	for _, e := range result.Entries {
		note := ""
		if e.CeilingBreached {
			note = "  (above ceiling)"
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\t%s%s\n",
			e.RankLabel, e.VendorID, e.Amount.StringFixed(2), e.Savings.StringFixed(2),
			e.SavingsPercent.StringFixed(2), e.PriceSource, note)
	}
	w.Flush()

	if len(result.Skipped) > 0 {
		fmt.Fprintf(out, "  %d bid record(s) skipped\n", len(result.Skipped))
	}
}
