package fetcher

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"feedigest/app/subscription"
)

// Result is the outcome of fetching one channel. Exactly one of Data and
// Err is meaningful.
type Result struct {
	Channel subscription.Channel
	Data    []byte
	Err     error
}

// Fetcher retrieves raw feed payloads. The underlying HTTP client is shared
// across all concurrent fetches and is not reconfigured after construction.
type Fetcher struct {
	client    *http.Client
	userAgent string
}

func New(timeout time.Duration, userAgent string) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				IdleConnTimeout:     30 * time.Second,
				MaxIdleConnsPerHost: 5,
			},
		},
		userAgent: userAgent,
	}
}

// Run fetches every channel concurrently and waits for all of them to either
// succeed or exhaust their retry. One failed channel never blocks the others;
// results are returned in channel order.
func (f *Fetcher) Run(ctx context.Context, channels []subscription.Channel) []Result {
	results := make([]Result, len(channels))

	var wg sync.WaitGroup
	for i, channel := range channels {
		wg.Add(1)
		go func(i int, channel subscription.Channel) {
			defer wg.Done()
			results[i] = f.fetchChannel(ctx, channel)
		}(i, channel)
	}
	wg.Wait()

	return results
}

// fetchChannel issues the request and, on any failure, exactly one immediate
// retry of the identical request.
func (f *Fetcher) fetchChannel(ctx context.Context, channel subscription.Channel) Result {
	log.Printf("Fetching %s", channel.URL)

	data, err := f.get(ctx, channel.URL)
	if err != nil {
		log.Printf("Retrying %s: %v", channel.URL, err)
		data, err = f.get(ctx, channel.URL)
	}
	if err != nil {
		log.Printf("Fetch failed for %s: %v", channel.URL, err)
		return Result{Channel: channel, Err: err}
	}

	log.Printf("Fetched %s (%d bytes)", channel.URL, len(data))
	return Result{Channel: channel, Data: data}
}

func (f *Fetcher) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml, text/xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("empty response body")
	}

	return data, nil
}
