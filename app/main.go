package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"feedigest/app/cfg"
	"feedigest/app/digest"
	"feedigest/app/fetcher"
	"feedigest/app/parser"
	"feedigest/app/subscription"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	appCfg, err := cfg.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if appCfg == nil {
		// Usage or help text was printed
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, appCfg, time.Now()); err != nil {
		log.Fatal(err)
	}
}

// run drives one pipeline pass: load subscriptions, fetch every channel,
// parse, aggregate, partition, write digests. Only the fetch phase is
// concurrent; everything after the fetch barrier is single-threaded.
func run(ctx context.Context, appCfg *cfg.Cfg, now time.Time) error {
	channels, err := subscription.Load(appCfg.SubscriptionsPath)
	if err != nil {
		return fmt.Errorf("invalid subscription list: %w", err)
	}
	log.Printf("Loaded %d channels from %s", len(channels), appCfg.SubscriptionsPath)

	results := fetcher.New(appCfg.Timeout, appCfg.UserAgent).Run(ctx, channels)

	feedParser := parser.NewParser()
	lists := make([][]parser.Entry, 0, len(results))
	for _, res := range results {
		if res.Err != nil {
			// Already logged by the fetcher; the channel contributes nothing.
			continue
		}
		entries, err := feedParser.Parse(res.Data, res.Channel)
		if err != nil {
			log.Printf("Parse error at %s: %v", res.Channel.URL, err)
			continue
		}
		lists = append(lists, entries)
	}

	entries := digest.Aggregate(lists)
	log.Printf("Aggregated %d entries from %d channels", len(entries), len(channels))

	buckets := digest.Partition(entries, now)

	return digest.Write(appCfg.OutputDir, buckets)
}
