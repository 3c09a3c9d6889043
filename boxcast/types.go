package boxcast

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// TimeLayout is the timestamp format used by the API: UTC, second precision, Z suffix.
const TimeLayout = "2006-01-02T15:04:05Z"

// Broadcast is a single scheduled, live or archived video event.
type Broadcast struct {
	ID           string
	Name         string
	Description  string
	AccountID    string
	ChannelID    string
	ThumbnailURL *url.URL // nil when the API has no preview image
	StartDate    time.Time
	StopDate     time.Time
}

// Duration returns the scheduled length of the broadcast.
func (b Broadcast) Duration() time.Duration {
	if b.StopDate.Before(b.StartDate) {
		return 0
	}
	return b.StopDate.Sub(b.StartDate)
}

// UnmarshalJSON decodes a broadcast object, failing on any missing required field.
func (b *Broadcast) UnmarshalJSON(data []byte) error {
	var payload broadcastPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return err
	}
	decoded, err := payload.broadcast("")
	if err != nil {
		return err
	}
	*b = decoded
	return nil
}

// BroadcastList is an ordered list of broadcasts in server order.
type BroadcastList []Broadcast

// BroadcastStatus is the playback state reported by a broadcast view.
type BroadcastStatus string

const (
	StatusLive      BroadcastStatus = "live"
	StatusRecorded  BroadcastStatus = "recorded"
	StatusPreparing BroadcastStatus = "preparing"
	StatusStalled   BroadcastStatus = "stalled"
)

// ParseBroadcastStatus maps a wire value onto a known status.
func ParseBroadcastStatus(value string) (BroadcastStatus, error) {
	switch s := BroadcastStatus(strings.ToLower(strings.TrimSpace(value))); s {
	case StatusLive, StatusRecorded, StatusPreparing, StatusStalled:
		return s, nil
	default:
		return "", fmt.Errorf("unknown broadcast status %q", value)
	}
}

// BroadcastView carries playback metadata for a broadcast.
type BroadcastView struct {
	PlaylistURL *url.URL
	Status      BroadcastStatus
}

// UnmarshalJSON decodes a view object; playlist and status are both required.
func (v *BroadcastView) UnmarshalJSON(data []byte) error {
	var payload struct {
		Playlist *string `json:"playlist"`
		Status   *string `json:"status"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return err
	}
	if payload.Playlist == nil {
		return errors.New("missing playlist")
	}
	if payload.Status == nil {
		return errors.New("missing status")
	}
	playlist, err := parseAbsoluteURL(*payload.Playlist)
	if err != nil {
		return fmt.Errorf("playlist: %w", err)
	}
	status, err := ParseBroadcastStatus(*payload.Status)
	if err != nil {
		return err
	}
	*v = BroadcastView{PlaylistURL: playlist, Status: status}
	return nil
}

// broadcastPayload mirrors the wire object. Pointers distinguish absent keys.
type broadcastPayload struct {
	ID          *string `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	AccountID   *string `json:"account_id"`
	ChannelID   string  `json:"channel_id"`
	Preview     string  `json:"preview"`
	StartsAt    *string `json:"starts_at"`
	StopsAt     *string `json:"stops_at"`
}

// broadcast validates the payload. A non-empty channelID replaces the one in the body.
func (p broadcastPayload) broadcast(channelID string) (Broadcast, error) {
	if p.ID == nil || strings.TrimSpace(*p.ID) == "" {
		return Broadcast{}, errors.New("missing id")
	}
	if p.AccountID == nil || strings.TrimSpace(*p.AccountID) == "" {
		return Broadcast{}, fmt.Errorf("broadcast %s: missing account_id", *p.ID)
	}
	if channelID == "" {
		channelID = p.ChannelID
	}
	if strings.TrimSpace(channelID) == "" {
		return Broadcast{}, fmt.Errorf("broadcast %s: missing channel_id", *p.ID)
	}
	if p.StartsAt == nil {
		return Broadcast{}, fmt.Errorf("broadcast %s: missing starts_at", *p.ID)
	}
	if p.StopsAt == nil {
		return Broadcast{}, fmt.Errorf("broadcast %s: missing stops_at", *p.ID)
	}
	start, err := ParseTime(*p.StartsAt)
	if err != nil {
		return Broadcast{}, fmt.Errorf("broadcast %s: starts_at: %w", *p.ID, err)
	}
	stop, err := ParseTime(*p.StopsAt)
	if err != nil {
		return Broadcast{}, fmt.Errorf("broadcast %s: stops_at: %w", *p.ID, err)
	}

	var thumb *url.URL
	if preview := strings.TrimSpace(p.Preview); preview != "" {
		thumb, err = parseAbsoluteURL(preview)
		if err != nil {
			return Broadcast{}, fmt.Errorf("broadcast %s: preview: %w", *p.ID, err)
		}
	}

	return Broadcast{
		ID:           *p.ID,
		Name:         p.Name,
		Description:  p.Description,
		AccountID:    *p.AccountID,
		ChannelID:    channelID,
		ThumbnailURL: thumb,
		StartDate:    start,
		StopDate:     stop,
	}, nil
}

// ParseTime parses an API timestamp such as "2017-07-28T22:00:00Z".
// Fractional seconds are rejected even though time.Parse accepts them.
func ParseTime(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	t, err := time.Parse(TimeLayout, trimmed)
	if err != nil {
		return time.Time{}, err
	}
	if t.Format(TimeLayout) != trimmed {
		return time.Time{}, fmt.Errorf("timestamp %q does not match %s", value, TimeLayout)
	}
	return t, nil
}

// FormatTime renders t in the API timestamp format.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

func parseAbsoluteURL(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, err
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, fmt.Errorf("%q is not an absolute url", raw)
	}
	return u, nil
}
