package mvic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"time"

	"github.com/citizenlabsgr/elections-api/lib/restyutil"
	"github.com/citizenlabsgr/elections-api/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	browser "github.com/EDDYCJY/fake-useragent"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const DefaultBaseUrl = "https://webapps.sos.state.mi.us/MVIC/"

const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

var (
	// ErrTransport means a request to the portal never got a response.
	ErrTransport = errors.New("mvic: portal request failed")
	// ErrPortalUnavailable means the portal responded but reported that it
	// can't serve lookups right now.
	ErrPortalUnavailable = errors.New("mvic: portal unavailable")
	// ErrMalformedForm means the search form is missing one of the hidden
	// state fields, usually because the portal markup changed.
	ErrMalformedForm = errors.New("mvic: malformed search form")
)

type ClientOptions struct {
	// defaults to DefaultBaseUrl
	BaseUrl string
	// defaults to DefaultUserAgent, ignored if RandomUserAgent is set
	UserAgent       string
	RandomUserAgent bool
	// wraps the transport so the TLS handshake looks like a browser's
	CloudflareBypass bool
	// zero means no timeout, lookups then only end with the caller's context
	Timeout time.Duration
}

// Client performs registration lookups against the portal. It is safe for
// concurrent use, each lookup gets its own Session.
type Client struct {
	baseUrl *url.URL
	opts    ClientOptions
}

func NewClient(opts ClientOptions) (*Client, error) {
	if opts.BaseUrl == "" {
		opts.BaseUrl = DefaultBaseUrl
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	baseUrl, err := url.Parse(opts.BaseUrl)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	return &Client{baseUrl: baseUrl, opts: opts}, nil
}

func (c *Client) BaseUrl() string {
	return c.baseUrl.String()
}

func (c *Client) userAgent() string {
	if c.opts.RandomUserAgent {
		return browser.Random()
	}
	return c.opts.UserAgent
}

// Session is a single browser-like visit to the portal: the cookies set by
// the form page are sent back with the search.
type Session struct {
	endpoint string
	http     *resty.Client
}

func (c *Client) NewSession() (*Session, error) {
	client := resty.New()
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.SetHeader("user-agent", c.userAgent())
	client.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(c.baseUrl.Hostname()))
	if c.opts.Timeout > 0 {
		client.SetTimeout(c.opts.Timeout)
	}
	if c.opts.CloudflareBypass {
		client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	}

	telemetry.InstrumentResty(client, "elections.lib.scrapers.mvic/http")
	restyutil.InstrumentClient(client, restyInstrumentOutput)

	return &Session{
		endpoint: c.baseUrl.String(),
		http:     client,
	}, nil
}

// FetchForm gets the search form page, it carries the tokens that the
// search submission needs.
func (s *Session) FetchForm(ctx context.Context) (string, error) {
	ctx, span := tracer.Start(ctx, "mvic:FetchForm")
	defer span.End()

	res, err := s.http.R().
		SetContext(ctx).
		Get(s.endpoint)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch form")
		slog.ErrorContext(ctx, "failed to fetch search form", "url", s.endpoint, "err", err)
		return "", fmt.Errorf("%w: fetch form: %w", ErrTransport, err)
	}
	body := res.String()

	err = checkAvailability(res.StatusCode(), body)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
	return body, nil
}

// SubmitSearch posts the search-by-name form and returns the results page.
func (s *Session) SubmitSearch(ctx context.Context, query PersonQuery, tokens TokenSet) (string, error) {
	ctx, span := tracer.Start(ctx, "mvic:SubmitSearch")
	defer span.End()

	payload := searchForm(query, tokens).Encode()
	span.SetAttributes(attribute.Int("content_length", len(payload)))

	res, err := s.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		SetHeader("Content-Length", strconv.Itoa(len(payload))).
		SetBody(payload).
		Post(s.endpoint)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to submit search")
		slog.ErrorContext(ctx, "failed to submit search form", "url", s.endpoint, "err", err)
		return "", fmt.Errorf("%w: submit search: %w", ErrTransport, err)
	}
	body := res.String()

	err = checkAvailability(res.StatusCode(), body)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
	return body, nil
}
