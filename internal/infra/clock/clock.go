// Package clock provides the dashboard header time: fetched from a remote time API
// when one is configured, falling back to the local clock.
package clock

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/avast/retry-go"
	"github.com/bstc-oman/dispatch/internal/domain"
)

// Ensure Source implements domain.TimeSource.
var _ domain.TimeSource = (*Source)(nil)

// maxBodySize bounds the response body read from the time API.
const maxBodySize = 64 << 10

// Source fetches the current time from url and falls back to the local clock.
// Fields are ordered to minimize memory padding.
type Source struct {
	client   *http.Client
	local    domain.Clock
	logger   domain.Logger
	loc      *time.Location
	url      string
	timeout  time.Duration
	attempts uint
}

// Option configures a Source.
type Option func(*Source)

// WithHTTPClient sets the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Source) { s.client = c }
}

// WithLocalClock sets the fallback clock.
func WithLocalClock(c domain.Clock) Option {
	return func(s *Source) { s.local = c }
}

// WithLogger sets the logger that records fetch failures.
func WithLogger(l domain.Logger) Option {
	return func(s *Source) { s.logger = l }
}

// WithAttempts sets how many times a failed fetch is tried within the timeout.
func WithAttempts(n uint) Option {
	return func(s *Source) { s.attempts = n }
}

// New creates a Source. An empty url means the local clock is always used.
func New(url string, timeout time.Duration, opts ...Option) *Source {
	if timeout <= 0 {
		timeout = domain.DefaultClockTimeout
	}
	s := &Source{
		client:   http.DefaultClient,
		local:    domain.RealClock{},
		logger:   domain.NopLogger{},
		loc:      Location(),
		url:      url,
		timeout:  timeout,
		attempts: 2,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Location returns the dashboard time zone, Asia/Muscat.
// Without a zoneinfo database the fixed +04:00 offset is used; Oman has no DST.
func Location() *time.Location {
	loc, err := time.LoadLocation(domain.DefaultClockLocation)
	if err != nil {
		return time.FixedZone("GST", 4*60*60)
	}
	return loc
}

// Now returns the remote time, or the local time with remote=false when no url is set,
// the fetch fails, or the timeout (or ctx) expires first.
func (s *Source) Now(ctx context.Context) (time.Time, bool) {
	if s.url == "" {
		return s.local.Now().In(s.loc), false
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var t time.Time
	err := retry.Do(
		func() error {
			var err error
			t, err = s.fetch(ctx)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(s.attempts),
		retry.Delay(100*time.Millisecond),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		s.logger.Warn("", "clock", fmt.Sprintf("remote time unavailable, using local clock: %v", err))
		return s.local.Now().In(s.loc), false
	}
	return t.In(s.loc), true
}

// timeResponse covers worldtimeapi-style payloads.
type timeResponse struct {
	DateTime string `json:"datetime"`
	UnixTime int64  `json:"unixtime"`
}

var errNoTime = errors.New("response carries no time")

func (s *Source) fetch(ctx context.Context) (time.Time, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return time.Time{}, retry.Unrecoverable(fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return time.Time{}, fmt.Errorf("fetch time: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return time.Time{}, fmt.Errorf("fetch time: status %s", resp.Status)
	}

	var body timeResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&body); err != nil {
		return time.Time{}, retry.Unrecoverable(fmt.Errorf("decode time: %w", err))
	}
	return body.parse()
}

func (r timeResponse) parse() (time.Time, error) {
	if r.DateTime != "" {
		t, err := time.Parse(time.RFC3339Nano, r.DateTime)
		if err != nil {
			return time.Time{}, retry.Unrecoverable(fmt.Errorf("parse datetime: %w", err))
		}
		return t, nil
	}
	if r.UnixTime > 0 {
		return time.Unix(r.UnixTime, 0), nil
	}
	return time.Time{}, retry.Unrecoverable(errNoTime)
}
