package fetch

import (
	"context"
	"fmt"
	"time"

	"ringside-backend/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

const DefaultDelay = 1500 * time.Millisecond

const defaultUserAgent = "ringside-backend/1.0 (event listing sync)"

type Options struct {
	BaseURL string
	// minimum gap between the starts of consecutive requests,
	// DefaultDelay when zero
	Delay     time.Duration
	UserAgent string
}

// Client issues GET requests against one source host, never starting
// two requests less than the configured delay apart. sources crawled in
// parallel must each get their own Client so per-host courtesy holds.
type Client struct {
	http *resty.Client
	// burst of 1: requests queue behind one token that refills every
	// delay, which is exactly the start-to-start gap guarantee
	limiter *rate.Limiter
}

func NewClient(opts Options) *Client {
	delay := opts.Delay
	if delay == 0 {
		delay = DefaultDelay
	}
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	client := resty.New()
	client.SetBaseURL(opts.BaseURL)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	client.SetHeader("user-agent", userAgent)
	client.SetHeader("accept", "text/html")
	client.SetTimeout(time.Second * 30)

	telemetry.InstrumentResty(client, "lib/fetch")

	return &Client{
		http:    client,
		limiter: rate.NewLimiter(rate.Every(delay), 1),
	}
}

// Get fetches a single page. a non-2xx status is an error; whether to
// skip the page or abort the source is the caller's call, as is any
// retrying.
func (c *Client) Get(ctx context.Context, path string) ([]byte, error) {
	err := c.limiter.Wait(ctx)
	if err != nil {
		return nil, err
	}

	res, err := c.http.R().
		SetContext(ctx).
		Get(path)
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		return nil, fmt.Errorf("GET %s: unexpected status %s", path, res.Status())
	}
	return res.Body(), nil
}
