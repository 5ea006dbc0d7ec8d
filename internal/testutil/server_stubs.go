package testutil

import (
	"context"
	"net/http"
	"sync/atomic"
)

// StubHTTPServer satisfies the server's listener interface. ListenAndServe
// returns ListenErr immediately; use http.ErrServerClosed to mimic a clean stop.
// Counters are atomic because the server calls ListenAndServe from a goroutine.
type StubHTTPServer struct {
	AddrVal     string
	HandlerVal  http.Handler
	ListenErr   error
	ShutdownErr error

	listenCalls   atomic.Int32
	shutdownCalls atomic.Int32
}

func (s *StubHTTPServer) ListenAndServe() error {
	s.listenCalls.Add(1)
	return s.ListenErr
}

func (s *StubHTTPServer) Shutdown(ctx context.Context) error {
	s.shutdownCalls.Add(1)
	return s.ShutdownErr
}

func (s *StubHTTPServer) Addr() string {
	if s.AddrVal == "" {
		return ":0"
	}
	return s.AddrVal
}

func (s *StubHTTPServer) Handler() http.Handler {
	if s.HandlerVal == nil {
		return http.NewServeMux()
	}
	return s.HandlerVal
}

// ListenCalls reports how many times ListenAndServe ran.
func (s *StubHTTPServer) ListenCalls() int { return int(s.listenCalls.Load()) }

// ShutdownCalls reports how many times Shutdown ran.
func (s *StubHTTPServer) ShutdownCalls() int { return int(s.shutdownCalls.Load()) }

// BlockingHTTPServer holds Shutdown until Unblock is closed or the context ends.
type BlockingHTTPServer struct {
	StubHTTPServer
	Unblock chan struct{}
}

func (b *BlockingHTTPServer) Shutdown(ctx context.Context) error {
	b.shutdownCalls.Add(1)
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.Unblock:
		return b.ShutdownErr
	}
}
