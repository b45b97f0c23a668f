package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"mbfeed/internal/mercado"
	"mbfeed/internal/store"
)

const DefaultInterval = time.Second

var (
	ErrAlreadyRunning = errors.New("a subscription is already running")
	ErrEmptyPair      = errors.New("pair is required")
)

//go:generate mockgen -package=ingest_test -destination=mock_loop_test.go -source=loop.go Fetcher,Store,Sink

type Fetcher interface {
	FetchTickers(ctx context.Context, pairs []string) ([]mercado.Ticker, error)
}

type Store interface {
	InsertTicks(ctx context.Context, records []mercado.Ticker) ([]store.Tick, error)
}

// Sink receives ticks after they were committed.
type Sink interface {
	Publish(ticks []store.Tick)
}

type State int32

const (
	Idle State = iota
	Running
	Stopping
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Stopping:
		return "stopping"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// Loop polls the ticker of one pair, renders and stores it, then waits a
// fixed interval. One subscription at a time.
type Loop struct {
	fetcher  Fetcher
	store    Store
	sink     Sink
	out      io.Writer
	interval time.Duration
	log      *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
	state  atomic.Int32
}

type Option func(*Loop)

func WithInterval(d time.Duration) Option {
	return func(l *Loop) {
		if d > 0 {
			l.interval = d
		}
	}
}

// WithOutput sets where the ticker table is rendered. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(l *Loop) { l.out = w }
}

func WithSink(s Sink) Option {
	return func(l *Loop) { l.sink = s }
}

func WithLogger(log *slog.Logger) Option {
	return func(l *Loop) { l.log = log }
}

func New(f Fetcher, s Store, opts ...Option) *Loop {
	l := &Loop{
		fetcher:  f,
		store:    s,
		out:      os.Stdout,
		interval: DefaultInterval,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Loop) State() State { return State(l.state.Load()) }

// IsRunning reports whether a worker is alive, including while it stops.
func (l *Loop) IsRunning() bool { return l.State() != Idle }

// Start hands the subscription to a new worker goroutine and returns.
// The worker stops when Cancel is called or ctx is done.
func (l *Loop) Start(ctx context.Context, pair string) error {
	pair = strings.TrimSpace(pair)
	if pair == "" {
		return ErrEmptyPair
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.done != nil {
		select {
		case <-l.done:
		default:
			return ErrAlreadyRunning
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	l.cancel, l.done = cancel, done
	l.state.Store(int32(Running))

	go func() {
		defer close(done)
		defer cancel()
		l.run(ctx, pair)
	}()
	return nil
}

// Cancel signals the worker and returns without waiting for it.
func (l *Loop) Cancel() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel == nil {
		return
	}
	l.state.CompareAndSwap(int32(Running), int32(Stopping))
	l.cancel()
}

// Wait blocks until the current worker, if any, has returned.
func (l *Loop) Wait() {
	<-l.Done()
}

// Done is closed when the current worker returns. Without a worker it is
// already closed.
func (l *Loop) Done() <-chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.done == nil {
		closed := make(chan struct{})
		close(closed)
		return closed
	}
	return l.done
}

func (l *Loop) run(ctx context.Context, pair string) {
	defer l.state.Store(int32(Idle))

	log := l.log.With("pair", pair)
	log.Info("subscription started", "interval", l.interval)
	WriteHeader(l.out)

	// Calls already in flight finish even when the subscription is cancelled.
	work := context.WithoutCancel(ctx)

	for ctx.Err() == nil {
		if err := l.cycle(work, pair); err != nil {
			log.Error("market data cycle failed", "err", err)
		}
		l.wait(ctx)
	}

	l.state.Store(int32(Stopping))
	log.Info("subscription stopped")
}

// wait is the only suspension point: it returns after the interval or as
// soon as ctx is cancelled.
func (l *Loop) wait(ctx context.Context) {
	timer := time.NewTimer(l.interval)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

func (l *Loop) cycle(ctx context.Context, pair string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	tickers, err := l.fetcher.FetchTickers(ctx, []string{pair})
	if err != nil {
		return fmt.Errorf("fetch tickers: %w", err)
	}
	if len(tickers) == 0 {
		l.log.Debug("empty ticker response", "pair", pair)
		return nil
	}

	for _, t := range tickers {
		WriteTicker(l.out, t)
	}

	ticks, err := l.store.InsertTicks(ctx, tickers)
	if err != nil {
		return fmt.Errorf("store tickers: %w", err)
	}
	if l.sink != nil && len(ticks) > 0 {
		l.sink.Publish(ticks)
	}
	return nil
}
