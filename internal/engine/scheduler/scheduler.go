// Package scheduler runs independent analysis tasks on a bounded worker pool.
package scheduler

import (
	"context"
	"runtime"

	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"

	"github.com/abvthecity/oxiclean/internal/core/ports"
)

// Scheduler fans tasks out to at most Jobs workers and traces each task in its own span.
type Scheduler struct {
	tracer ports.Tracer
}

// NewScheduler creates a new Scheduler.
func NewScheduler(tracer ports.Tracer) *Scheduler {
	return &Scheduler{tracer: tracer}
}

// Jobs returns the worker count for a requested value. Zero or less means one worker per CPU.
func Jobs(requested int) int {
	if requested <= 0 {
		return runtime.NumCPU()
	}
	return requested
}

// SpanName is the name of the span opened around every task.
const SpanName = "entry"

// TaskFunc processes a single item. span is the task's own span; the task may attach
// attributes to it but must not end it.
type TaskFunc[T any] func(ctx context.Context, item string, span ports.Span) (T, error)

// Run calls fn for every item with at most Jobs(jobs) calls in flight and returns the
// results in item order, independent of completion order. The first error cancels the
// context passed to the remaining tasks and is returned once all started tasks finish.
func Run[T any](ctx context.Context, s *Scheduler, items []string, jobs int, fn TaskFunc[T]) ([]T, error) {
	results := make([]T, len(items))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(Jobs(jobs))

	for i, item := range items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			taskCtx, span := s.tracer.Start(ctx, SpanName)
			defer span.End()
			span.SetAttribute("path", item)

			res, err := fn(taskCtx, item, span)
			if err != nil {
				span.RecordError(err)
				return zerr.With(err, "item", item)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
