package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/boxcast/boxcast-go/boxcast"
	"github.com/boxcast/boxcast-go/internal/state"
)

const (
	defaultPollInterval = 30 * time.Second
	maxBackoff          = 5 * time.Minute
)

// StartPoller launches a background goroutine that refreshes the store,
// waiting interval between polls and backing off after failures. It returns
// immediately.
func StartPoller(ctx context.Context, store *state.Store, client boxcast.BroadcastFetcher, channelID string, interval time.Duration, logger zerolog.Logger) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	go func() {
		failures := 0
		for {
			if err := refresh(ctx, store, client, channelID); err != nil {
				if ctx.Err() != nil {
					return
				}
				failures++
				logger.Warn().Err(err).Int("failures", failures).Msg("broadcast poll failed")
			} else {
				failures = 0
				logger.Debug().Str("channel", channelID).Msg("broadcast poll complete")
			}

			timer := time.NewTimer(calculateBackoff(failures, interval))
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}
		}
	}()
}

// refresh fetches live and archived lists concurrently and records the result.
func refresh(ctx context.Context, store *state.Store, client boxcast.BroadcastFetcher, channelID string) error {
	var live, archived boxcast.BroadcastList
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		list, err := client.GetLiveBroadcasts(gctx, channelID)
		if err != nil {
			return fmt.Errorf("live broadcasts: %w", err)
		}
		live = list
		return nil
	})
	g.Go(func() error {
		list, err := client.GetArchivedBroadcasts(gctx, channelID)
		if err != nil {
			return fmt.Errorf("archived broadcasts: %w", err)
		}
		archived = list
		return nil
	})
	err := g.Wait()
	store.Update(live, archived, err)
	return err
}

// calculateBackoff doubles the interval per consecutive failure, capped at maxBackoff.
func calculateBackoff(failures int, interval time.Duration) time.Duration {
	if failures <= 0 {
		return interval
	}
	backoff := interval
	for i := 0; i < failures; i++ {
		backoff *= 2
		if backoff >= maxBackoff {
			return maxBackoff
		}
	}
	return backoff
}
