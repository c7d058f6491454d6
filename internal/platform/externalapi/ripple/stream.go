package ripple

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gorilla/websocket"
)

// DefaultStreamURL is the Ripple public data stream endpoint.
const DefaultStreamURL = "wss://data.ripple.com/data/stream"

// defaultStreams are the event streams subscribed to after connecting.
var defaultStreams = []string{"trade", "book", "ledger"}

// subscribeRequest is the initial message sent on the stream connection.
type subscribeRequest struct {
	Type    string   `json:"type"`
	Streams []string `json:"streams"`
}

// StreamClient connects to the Ripple public data stream.
//
// Streaming ingestion is not part of any HTTP request path; REST polling is
// the active price source. This client exists for a future push-based feed.
type StreamClient struct {
	url    string
	dialer *websocket.Dialer
	logger *slog.Logger
}

// NewStreamClient creates a stream client for the given URL,
// falling back to DefaultStreamURL when empty.
func NewStreamClient(url string) *StreamClient {
	if url == "" {
		url = DefaultStreamURL
	}
	return &StreamClient{
		url:    url,
		dialer: websocket.DefaultDialer,
		logger: slog.Default().With("component", "ripple_stream"),
	}
}

// Connect dials the stream and subscribes to the trade, book and ledger
// streams. The caller owns the returned connection and must close it.
func (s *StreamClient) Connect(ctx context.Context) (*websocket.Conn, error) {
	conn, _, err := s.dialer.DialContext(ctx, s.url, nil)
	if err != nil {
		s.logger.Error("websocket connection failed", "url", s.url, "error", err)
		return nil, err
	}

	if err := conn.WriteJSON(subscribeRequest{Type: "subscribe", Streams: defaultStreams}); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("subscribe: %w", err)
	}

	s.logger.Info("connected to XRP websocket", "url", s.url, "streams", defaultStreams)
	return conn, nil
}
