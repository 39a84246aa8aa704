// Package fetch retrieves word-entry pages with a browser-like client.
// Dictionary sites reject default client signatures, so the transport
// carries a cloudflare bypass and realistic headers.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"net/http/cookiejar"
	"os"
	"time"

	"combinedicts/lib/dict"
	"combinedicts/lib/restyutil"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	browser "github.com/EDDYCJY/fake-useragent"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("lib/fetch")

const DefaultTimeout = time.Second * 30

// Page is a successfully fetched entry page.
type Page struct {
	Url  string
	Body []byte
}

type ErrorKind int

const (
	ErrorNetwork ErrorKind = iota
	ErrorTimeout
	ErrorNotFound
	ErrorBlocked
)

// Error classifies every fetch failure; Fetch never returns anything
// else and never panics.
type Error struct {
	Kind   ErrorKind
	Url    string
	Status int
	Err    error
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrorTimeout:
		return fmt.Sprintf("request timed out: %s", e.Url)
	case ErrorNotFound:
		return fmt.Sprintf("word not found (HTTP 404): %s", e.Url)
	case ErrorBlocked:
		return fmt.Sprintf("request rejected (HTTP %d): %s", e.Status, e.Url)
	}
	return fmt.Sprintf("network failure fetching %s: %v", e.Url, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

type ClientOptions struct {
	// zero means DefaultTimeout
	Timeout time.Duration
	// empty means a randomized chrome user-agent
	UserAgent string
	// nil disables HTTP transcript dumping
	InstrumentOutput restyutil.InstrumentOutput
}

type Client struct {
	http *resty.Client
}

func NewClient(opts ClientOptions) (*Client, error) {
	client := resty.New()
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = browser.Chrome()
	}
	client.SetHeaders(map[string]string{
		"user-agent":      userAgent,
		"accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,image/apng,*/*;q=0.8",
		"accept-language": "en-US,en;q=0.9",
		"referer":         "https://www.google.com/",
	})

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	client.SetTimeout(timeout)

	restyutil.InstrumentClient(client, tracer, opts.InstrumentOutput)

	return &Client{http: client}, nil
}

// Fetch retrieves the entry page for a word from one source.
func (c *Client) Fetch(ctx context.Context, src dict.Source, word string) (*Page, error) {
	return c.get(ctx, src.EntryUrl(word))
}

func (c *Client) get(ctx context.Context, link string) (*Page, error) {
	res, err := c.http.R().
		SetContext(ctx).
		Get(link)
	if err != nil {
		kind := ErrorNetwork
		if os.IsTimeout(err) || errors.Is(err, context.DeadlineExceeded) {
			kind = ErrorTimeout
		}
		return nil, &Error{Kind: kind, Url: link, Err: err}
	}

	status := res.StatusCode()
	switch {
	case status == 404:
		return nil, &Error{Kind: ErrorNotFound, Url: link, Status: status}
	case status < 200 || status > 299:
		return nil, &Error{Kind: ErrorBlocked, Url: link, Status: status}
	}

	return &Page{
		Url:  res.Request.URL,
		Body: res.Body(),
	}, nil
}
