package batch

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Concurrency limits.
const (
	// DefaultParallel is the number of items processed at once when unset.
	DefaultParallel = 4

	// MaxParallel is the upper bound for the concurrency limit.
	MaxParallel = 64
)

// Common processing errors.
var (
	ErrInvalidParallel = fmt.Errorf("parallel must be between 1 and %d", MaxParallel)
	ErrNilCallback     = errors.New("item callback cannot be nil")
	ErrEmptyItems      = errors.New("items slice cannot be empty")
)

// ItemFunc processes a single item. It receives the item and its index.
type ItemFunc[T any] func(ctx context.Context, item T, index int) error

// ProgressCallback is invoked after each item completes. Calls are
// serialized, so the callback needs no locking of its own.
type ProgressCallback func(snapshot ProgressSnapshot)

// ItemError records the failure of one item.
type ItemError struct {
	Index int
	Err   error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("item %d: %v", e.Index, e.Err)
}

func (e *ItemError) Unwrap() error {
	return e.Err
}

// Processor runs a callback over items with bounded concurrency.
type Processor[T any] struct {
	parallel   int
	onProgress ProgressCallback

	// mu serializes progress updates and callbacks.
	mu sync.Mutex
}

// NewProcessor creates a processor running at most parallel items at once.
func NewProcessor[T any](parallel int) (*Processor[T], error) {
	if parallel < 1 || parallel > MaxParallel {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidParallel, parallel)
	}
	return &Processor[T]{parallel: parallel}, nil
}

// WithProgressCallback sets a progress callback for the processor.
func (p *Processor[T]) WithProgressCallback(callback ProgressCallback) *Processor[T] {
	p.onProgress = callback
	return p
}

// Parallel returns the configured concurrency limit.
func (p *Processor[T]) Parallel() int {
	return p.parallel
}

// Process runs fn for every item. Failures do not stop the remaining items.
// The returned error joins one *ItemError per failed item, in item order.
// Items not yet started when ctx is canceled fail with the context error.
func (p *Processor[T]) Process(ctx context.Context, items []T, fn ItemFunc[T]) error {
	if len(items) == 0 {
		return ErrEmptyItems
	}
	if fn == nil {
		return ErrNilCallback
	}

	progress := NewProgress(len(items))
	errs := make([]error, len(items))

	var g errgroup.Group
	g.SetLimit(p.parallel)

	for i, item := range items {
		if ctxErr := ctx.Err(); ctxErr != nil {
			errs[i] = &ItemError{Index: i, Err: ctxErr}
			p.record(progress, false)
			continue
		}

		g.Go(func() error {
			err := fn(ctx, item, i)
			if err != nil {
				errs[i] = &ItemError{Index: i, Err: err}
			}
			p.record(progress, err == nil)
			return nil
		})
	}

	_ = g.Wait() // Items never return errors to the group.

	return errors.Join(errs...)
}

func (p *Processor[T]) record(progress *Progress, ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	progress.AddProcessed(ok)
	if p.onProgress != nil {
		p.onProgress(progress.Snapshot())
	}
}
