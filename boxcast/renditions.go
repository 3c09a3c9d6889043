package boxcast

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sort"

	"github.com/grafov/m3u8"
)

// Rendition describes one variant stream listed in a broadcast's HLS playlist.
type Rendition struct {
	Bandwidth  uint32
	Resolution string
	Codecs     string
	URL        *url.URL
}

// GetRenditions fetches the view's playlist and lists its variants, highest
// bandwidth first. A media playlist yields a single rendition for itself.
func (c *Client) GetRenditions(ctx context.Context, view BroadcastView) ([]Rendition, error) {
	const op = "renditions"
	if view.PlaylistURL == nil {
		return nil, newError(op, ErrInvalidArgument, errors.New("view has no playlist url"))
	}
	if c == nil {
		return nil, newError(op, ErrInvalidArgument, fmt.Errorf("client is nil"))
	}
	resp, err := c.get(ctx, op, view.PlaylistURL.String(), "application/vnd.apple.mpegurl")
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	playlist, listType, err := m3u8.DecodeFrom(resp.Body, false)
	if err != nil {
		return nil, newError(op, ErrDecode, fmt.Errorf("decode playlist: %w", err))
	}

	switch listType {
	case m3u8.MASTER:
		master, ok := playlist.(*m3u8.MasterPlaylist)
		if !ok {
			return nil, newError(op, ErrDecode, errors.New("unexpected master playlist type"))
		}
		return masterRenditions(op, view.PlaylistURL, master)
	case m3u8.MEDIA:
		return []Rendition{{URL: view.PlaylistURL}}, nil
	default:
		return nil, newError(op, ErrDecode, errors.New("unrecognised playlist"))
	}
}

func masterRenditions(op string, base *url.URL, master *m3u8.MasterPlaylist) ([]Rendition, error) {
	out := make([]Rendition, 0, len(master.Variants))
	for _, v := range master.Variants {
		if v == nil {
			continue
		}
		ref, err := url.Parse(v.URI)
		if err != nil {
			return nil, newError(op, ErrDecode, fmt.Errorf("variant uri %q: %w", v.URI, err))
		}
		out = append(out, Rendition{
			Bandwidth:  v.Bandwidth,
			Resolution: v.Resolution,
			Codecs:     v.Codecs,
			URL:        base.ResolveReference(ref),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Bandwidth > out[j].Bandwidth
	})
	return out, nil
}
