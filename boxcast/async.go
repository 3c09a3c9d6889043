package boxcast

import "context"

// The Async forms run one request on its own goroutine and call done exactly
// once with the result. Callbacks from concurrent calls arrive in any order.

// GetLiveBroadcastsAsync is the callback form of GetLiveBroadcasts.
func (c *Client) GetLiveBroadcastsAsync(ctx context.Context, channelID string, done func(BroadcastList, error)) {
	goAsync(func() (BroadcastList, error) { return c.GetLiveBroadcasts(ctx, channelID) }, done)
}

// GetArchivedBroadcastsAsync is the callback form of GetArchivedBroadcasts.
func (c *Client) GetArchivedBroadcastsAsync(ctx context.Context, channelID string, done func(BroadcastList, error)) {
	goAsync(func() (BroadcastList, error) { return c.GetArchivedBroadcasts(ctx, channelID) }, done)
}

// GetBroadcastAsync is the callback form of GetBroadcast.
func (c *Client) GetBroadcastAsync(ctx context.Context, broadcastID, channelID string, done func(Broadcast, error)) {
	goAsync(func() (Broadcast, error) { return c.GetBroadcast(ctx, broadcastID, channelID) }, done)
}

// GetBroadcastViewAsync is the callback form of GetBroadcastView.
func (c *Client) GetBroadcastViewAsync(ctx context.Context, broadcastID string, done func(BroadcastView, error)) {
	goAsync(func() (BroadcastView, error) { return c.GetBroadcastView(ctx, broadcastID) }, done)
}

func goAsync[T any](call func() (T, error), done func(T, error)) {
	go func() {
		result, err := call()
		if done != nil {
			done(result, err)
		}
	}()
}
