// Package boxcast provides an HTTP client for the BoxCast broadcast API.
//
// # Overview
//
// The client fetches a channel's live and archived broadcasts, single
// broadcast metadata, and the playback view (playlist URL and status) of a
// broadcast. Responses are decoded into typed values; nothing is cached and
// nothing is retried.
//
// # Architecture
//
//   - client.go: Client, request construction and response handling
//   - options.go: functional options for NewClient
//   - types.go: Broadcast, BroadcastList, BroadcastView and wire decoding
//   - errors.go: error kinds and the Error type
//   - async.go: callback forms of the read operations
//   - renditions.go: HLS variant listing for a broadcast view
//
// # Client Usage
//
//	client, err := boxcast.NewClient()
//	if err != nil {
//		log.Fatalf("create client: %v", err)
//	}
//
//	live, err := client.GetLiveBroadcasts(ctx, channelID)
//	if err != nil {
//		log.Printf("live broadcasts: %v", err)
//	}
//
//	view, err := client.GetBroadcastView(ctx, live[0].ID)
//
// Each read operation also has an Async form that runs the request on its
// own goroutine and calls a completion func exactly once:
//
//	client.GetBroadcastViewAsync(ctx, id, func(view boxcast.BroadcastView, err error) {
//		...
//	})
//
// # API Endpoints
//
// All requests go to https://api.boxcast.com:
//
//   - GET /channels/{channel}/broadcasts?q=timeframe:current&s=-starts_at
//   - GET /channels/{channel}/broadcasts?q=timeframe:past&s=-starts_at
//   - GET /broadcasts/{broadcast}
//   - GET /broadcasts/{broadcast}/view
//
// # Decoding
//
// A broadcast needs id, account_id, a channel, starts_at and stops_at.
// Timestamps use TimeLayout (UTC, second precision). The channel id passed by
// the caller is authoritative and replaces whatever the body carries. If any
// record in a list fails validation the whole call fails with ErrDecode; a
// partially populated value is never returned.
//
// A view needs an absolute playlist URL and one of the known statuses.
//
// # Error Handling
//
// Every error returned by the client is an *Error whose kind is one of:
//
//   - ErrTransport: connection refused, DNS failure, timeout, cancellation
//   - ErrStatus: non-2xx response (StatusCode reports the code)
//   - ErrDecode: empty, malformed or incomplete body
//   - ErrInvalidArgument: empty ids, rejected before any request is sent
//
// Match kinds with errors.Is.
//
// # Logging
//
// Pass WithLogger to receive one debug event per request carrying the
// request id (also sent as X-Request-Id), URL, status and duration. The
// default logger discards everything.
//
// # Thread Safety
//
// Client is safe for concurrent use.
package boxcast
