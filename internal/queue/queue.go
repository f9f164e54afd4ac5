package queue

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

var (
	ErrCallbackMode = errors.New("take requires a blocking-mode queue")
	ErrCanceled     = errors.New("take canceled")
)

// Callback consumes one dequeued item. The context is the queue's lifetime
// context, so long-running work can observe Close and stop cooperatively.
type Callback[T any] func(ctx context.Context, item T) error

// Queue is an unbounded thread-safe FIFO used to hand items from any number
// of producers to a single logical consumer. It runs in one of two modes,
// fixed at construction:
//
//   - callback mode (NewWithCallback): an internal goroutine drains the queue
//     and invokes the callback once per item, in arrival order, never
//     concurrently with itself.
//   - blocking mode (New): callers pull items with Take, which suspends until
//     an item is available or cancellation fires.
//
// Enqueue never blocks. Close tears the queue down and unblocks every waiter.
type Queue[T any] struct {
	mu    sync.Mutex
	items []T

	// signal carries a token iff the queue is believed non-empty. The token
	// is set with a non-blocking send and cleared with a non-blocking
	// receive, always under mu, so waiters can see at most a stale wake,
	// never a lost one.
	signal chan struct{}

	callback Callback[T]
	logger   zerolog.Logger

	ctx    context.Context
	cancel context.CancelFunc

	inFlight     atomic.Int64
	closed       atomic.Bool
	consumerDone chan struct{}
}

// New constructs a blocking-mode queue. Items are consumed with Take.
func New[T any]() *Queue[T] {
	return newQueue[T](nil, zerolog.Nop())
}

// NewWithCallback constructs a callback-mode queue and starts its consumer.
// The callback is invoked once per enqueued item, in FIFO order, with no two
// invocations running concurrently. A callback error that is not a
// cancellation is logged and the item is skipped; cancellation stops the
// consumer cleanly.
func NewWithCallback[T any](logger *zerolog.Logger, callback Callback[T]) *Queue[T] {
	q := newQueue(callback, logger.With().Str("component", "queue").Logger())
	go q.run()
	return q
}

func newQueue[T any](callback Callback[T], logger zerolog.Logger) *Queue[T] {
	ctx, cancel := context.WithCancel(context.Background())

	return &Queue[T]{
		signal:       make(chan struct{}, 1),
		callback:     callback,
		logger:       logger,
		ctx:          ctx,
		cancel:       cancel,
		consumerDone: make(chan struct{}),
	}
}

// Enqueue appends an item and wakes a waiter. It never blocks and never
// fails; the queue is unbounded and backpressure belongs to the caller.
// Items enqueued after Close are dropped.
func (q *Queue[T]) Enqueue(item T) {
	if q.closed.Load() {
		return
	}

	q.mu.Lock()
	q.items = append(q.items, item)
	q.set()
	q.mu.Unlock()
}

// Take removes and returns the head item, suspending while the queue is
// empty. It fails with an error matching ErrCanceled when ctx is done, when
// the queue is closed while waiting, or when the queue was already closed.
// Calling Take on a callback-mode queue is a programming error and fails
// immediately with ErrCallbackMode, before touching the lock or signal.
func (q *Queue[T]) Take(ctx context.Context) (T, error) {
	var zero T

	if q.callback != nil {
		return zero, ErrCallbackMode
	}

	// Register before anything else so Close waits for this call.
	q.inFlight.Add(1)
	defer q.inFlight.Add(-1)

	if q.closed.Load() {
		return zero, ErrCanceled
	}

	if item, ok := q.tryPop(); ok {
		return item, nil
	}

	for {
		select {
		case <-ctx.Done():
			return zero, errors.Join(ErrCanceled, ctx.Err())
		case <-q.ctx.Done():
			return zero, errors.Join(ErrCanceled, q.ctx.Err())
		case <-q.signal:
			// A wake may be stale: another waiter can drain the queue
			// between the send and this receive. Re-check under the lock
			// and go back to waiting if the item is gone.
			if item, ok := q.tryPop(); ok {
				return item, nil
			}
		}
	}
}

// Close tears the queue down: it cancels the owned context, then waits for
// the internal consumer to exit (callback mode) or for in-flight Take calls
// to drain (blocking mode). A second call is a no-op; Close must not be
// called concurrently with itself.
func (q *Queue[T]) Close() {
	if !q.closed.CompareAndSwap(false, true) {
		return
	}

	q.cancel()

	if q.callback != nil {
		<-q.consumerDone
		return
	}

	// Cancellation has already unblocked every waiter, so the counter
	// resolves almost immediately.
	for q.inFlight.Load() > 0 {
		time.Sleep(time.Millisecond)
	}
}

// Len reports the number of items currently queued.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.items)
}

// run is the callback-mode consumer. It wakes on the signal, drains every
// available item through the callback, and exits when the queue is closed.
func (q *Queue[T]) run() {
	defer close(q.consumerDone)

	for {
		select {
		case <-q.ctx.Done():
			return
		case <-q.signal:
		}

		for q.ctx.Err() == nil {
			item, ok := q.tryPop()
			if !ok {
				break
			}

			if err := q.callback(q.ctx, item); err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return
				}

				q.logger.Error().Err(err).Msg("callback failed, item skipped")
			}
		}
	}
}

// tryPop removes the head item under the lock. The signal is cleared only
// when the queue is observed empty after the pop and re-set when items
// remain, so an item enqueued mid-drain can never lose its wakeup.
func (q *Queue[T]) tryPop() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	var zero T
	if len(q.items) == 0 {
		q.clear()
		return zero, false
	}

	item := q.items[0]
	q.items = q.items[1:]

	if len(q.items) == 0 {
		q.clear()
	} else {
		q.set()
	}

	return item, true
}

func (q *Queue[T]) set() {
	select {
	case q.signal <- struct{}{}:
	default:
	}
}

func (q *Queue[T]) clear() {
	select {
	case <-q.signal:
	default:
	}
}
