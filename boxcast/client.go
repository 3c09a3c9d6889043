package boxcast

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// APIURL is the fixed BoxCast API endpoint.
const APIURL = "https://api.boxcast.com"

// Version is reported in the default User-Agent.
const Version = "0.3.0"

const (
	defaultUserAgent = "boxcast-go/" + Version
	requestTimeout   = 15 * time.Second

	timeframeCurrent = "timeframe:current"
	timeframePast    = "timeframe:past"
	sortNewestFirst  = "-starts_at"
)

// BroadcastFetcher is the read surface of the API. *Client implements it.
type BroadcastFetcher interface {
	GetLiveBroadcasts(ctx context.Context, channelID string) (BroadcastList, error)
	GetArchivedBroadcasts(ctx context.Context, channelID string) (BroadcastList, error)
	GetBroadcast(ctx context.Context, broadcastID, channelID string) (Broadcast, error)
	GetBroadcastView(ctx context.Context, broadcastID string) (BroadcastView, error)
}

// Ensure Client implements BroadcastFetcher at compile time.
var _ BroadcastFetcher = (*Client)(nil)

// Client talks to the BoxCast HTTP API. It is safe for concurrent use.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	logger    zerolog.Logger
}

// NewClient builds a Client for APIURL, applying opts in order.
func NewClient(opts ...Option) (*Client, error) {
	base, err := parseBaseURL(APIURL)
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("apply option: %w", err)
		}
	}
	return c, nil
}

// APIURL returns the base endpoint requests are resolved against.
func (c *Client) APIURL() string {
	return c.baseURL.String()
}

// GetLiveBroadcasts lists the channel's broadcasts that are currently on air.
func (c *Client) GetLiveBroadcasts(ctx context.Context, channelID string) (BroadcastList, error) {
	return c.listBroadcasts(ctx, "live broadcasts", channelID, timeframeCurrent)
}

// GetArchivedBroadcasts lists the channel's past broadcasts.
func (c *Client) GetArchivedBroadcasts(ctx context.Context, channelID string) (BroadcastList, error) {
	return c.listBroadcasts(ctx, "archived broadcasts", channelID, timeframePast)
}

func (c *Client) listBroadcasts(ctx context.Context, op, channelID, timeframe string) (BroadcastList, error) {
	if err := requireID(op, "channel id", channelID); err != nil {
		return nil, err
	}
	values := url.Values{}
	values.Set("q", timeframe)
	values.Set("s", sortNewestFirst)
	rel := apiPath("channels", channelID, "broadcasts")
	rel.RawQuery = values.Encode()

	var payload []broadcastPayload
	if err := c.doURL(ctx, op, rel, &payload); err != nil {
		return nil, err
	}
	if payload == nil {
		return nil, newError(op, ErrDecode, errors.New("response is not a list"))
	}
	list := make(BroadcastList, 0, len(payload))
	for _, p := range payload {
		b, err := p.broadcast(channelID)
		if err != nil {
			return nil, newError(op, ErrDecode, err)
		}
		list = append(list, b)
	}
	return list, nil
}

// GetBroadcast fetches one broadcast. The returned broadcast carries channelID.
func (c *Client) GetBroadcast(ctx context.Context, broadcastID, channelID string) (Broadcast, error) {
	const op = "broadcast"
	if err := requireID(op, "broadcast id", broadcastID); err != nil {
		return Broadcast{}, err
	}
	if err := requireID(op, "channel id", channelID); err != nil {
		return Broadcast{}, err
	}
	rel := apiPath("broadcasts", broadcastID)

	var payload broadcastPayload
	if err := c.doURL(ctx, op, rel, &payload); err != nil {
		return Broadcast{}, err
	}
	b, err := payload.broadcast(channelID)
	if err != nil {
		return Broadcast{}, newError(op, ErrDecode, err)
	}
	return b, nil
}

// GetBroadcastView fetches playback metadata for a broadcast.
func (c *Client) GetBroadcastView(ctx context.Context, broadcastID string) (BroadcastView, error) {
	const op = "broadcast view"
	if err := requireID(op, "broadcast id", broadcastID); err != nil {
		return BroadcastView{}, err
	}
	rel := apiPath("broadcasts", broadcastID, "view")

	var view BroadcastView
	if err := c.doURL(ctx, op, rel, &view); err != nil {
		return BroadcastView{}, err
	}
	return view, nil
}

func (c *Client) doURL(ctx context.Context, op string, rel *url.URL, dest any) error {
	if c == nil {
		return newError(op, ErrInvalidArgument, fmt.Errorf("client is nil"))
	}
	reqURL := *c.baseURL
	reqURL.Path = rel.Path
	reqURL.RawPath = rel.RawPath
	reqURL.RawQuery = rel.RawQuery
	resp, err := c.get(ctx, op, reqURL.String(), "application/json")
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return newError(op, ErrDecode, fmt.Errorf("decode response: %w", err))
	}
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return newError(op, ErrDecode, errors.New("decode response: trailing data after json value"))
	}
	return nil
}

// get issues a GET and returns the response only for 2xx statuses.
func (c *Client) get(ctx context.Context, op, target, accept string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, newError(op, ErrInvalidArgument, fmt.Errorf("create request: %w", err))
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", accept)
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-Id", requestID)

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug().Err(err).
			Str("request_id", requestID).
			Str("url", target).
			Dur("duration", time.Since(started)).
			Msg("request failed")
		return nil, newError(op, ErrTransport, fmt.Errorf("execute request: %w", err))
	}
	c.logger.Debug().
		Str("request_id", requestID).
		Str("method", req.Method).
		Str("url", target).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(started)).
		Msg("request complete")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_ = resp.Body.Close()
		e := newError(op, ErrStatus, fmt.Errorf("api %s returned status %d", req.URL.Path, resp.StatusCode))
		e.Status = resp.StatusCode
		return nil, e
	}
	return resp, nil
}

// apiPath joins segments into an absolute path, escaping each one.
func apiPath(segments ...string) *url.URL {
	escaped := make([]string, len(segments))
	for i, seg := range segments {
		escaped[i] = url.PathEscape(seg)
	}
	return &url.URL{
		Path:    "/" + strings.Join(segments, "/"),
		RawPath: "/" + strings.Join(escaped, "/"),
	}
}

func requireID(op, name, value string) error {
	switch strings.TrimSpace(value) {
	case "":
		return newError(op, ErrInvalidArgument, fmt.Errorf("%s required", name))
	case ".", "..":
		return newError(op, ErrInvalidArgument, fmt.Errorf("%s %q is not a valid path segment", name, value))
	}
	return nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = APIURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse base url %q: missing host", raw)
	}
	u.Path = ""
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
