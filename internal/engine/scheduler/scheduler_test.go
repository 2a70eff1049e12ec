package scheduler_test

import (
	"context"
	"errors"
	"runtime"
	"sync/atomic"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/abvthecity/oxiclean/internal/adapters/telemetry"
	"github.com/abvthecity/oxiclean/internal/core/ports"
	"github.com/abvthecity/oxiclean/internal/core/ports/mocks"
	"github.com/abvthecity/oxiclean/internal/engine/scheduler"
)

func TestJobs(t *testing.T) {
	assert.Equal(t, runtime.NumCPU(), scheduler.Jobs(0))
	assert.Equal(t, runtime.NumCPU(), scheduler.Jobs(-3))
	assert.Equal(t, 4, scheduler.Jobs(4))
}

func TestRun_ResultsFollowItemOrder(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		s := scheduler.NewScheduler(telemetry.NewNoOpTracer())
		items := []string{"slow", "medium", "fast"}
		delays := map[string]time.Duration{"slow": 3 * time.Second, "medium": 2 * time.Second, "fast": time.Second}

		got, err := scheduler.Run(t.Context(), s, items, 3, func(_ context.Context, item string, _ ports.Span) (string, error) {
			time.Sleep(delays[item])
			return item + "!", nil
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"slow!", "medium!", "fast!"}, got)
	})
}

func TestRun_RespectsJobLimit(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		s := scheduler.NewScheduler(telemetry.NewNoOpTracer())
		items := []string{"a", "b", "c", "d", "e", "f", "g"}

		var active, peak atomic.Int32
		_, err := scheduler.Run(t.Context(), s, items, 2, func(_ context.Context, _ string, _ ports.Span) (struct{}, error) {
			n := active.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(time.Second)
			active.Add(-1)
			return struct{}{}, nil
		})

		require.NoError(t, err)
		assert.Equal(t, int32(2), peak.Load())
	})
}

func TestRun_ErrorCancelsRemaining(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		s := scheduler.NewScheduler(telemetry.NewNoOpTracer())
		items := []string{"boom", "a", "b", "c"}
		boom := errors.New("boom")

		var ran atomic.Int32
		_, err := scheduler.Run(t.Context(), s, items, 1, func(_ context.Context, item string, _ ports.Span) (int, error) {
			ran.Add(1)
			if item == "boom" {
				return 0, boom
			}
			return 1, nil
		})

		require.ErrorIs(t, err, boom)
		assert.Equal(t, int32(1), ran.Load())
	})
}

func TestRun_Empty(t *testing.T) {
	s := scheduler.NewScheduler(telemetry.NewNoOpTracer())

	got, err := scheduler.Run(t.Context(), s, nil, 0, func(_ context.Context, _ string, _ ports.Span) (int, error) {
		t.Fatal("unexpected call")
		return 0, nil
	})

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRun_TracesEachItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	tracer := mocks.NewMockTracer(ctrl)
	spanA := mocks.NewMockSpan(ctrl)
	spanB := mocks.NewMockSpan(ctrl)
	failure := errors.New("unreadable")

	gomock.InOrder(
		tracer.EXPECT().Start(gomock.Any(), scheduler.SpanName).DoAndReturn(
			func(ctx context.Context, _ string) (context.Context, ports.Span) { return ctx, spanA },
		),
		tracer.EXPECT().Start(gomock.Any(), scheduler.SpanName).DoAndReturn(
			func(ctx context.Context, _ string) (context.Context, ports.Span) { return ctx, spanB },
		),
	)
	spanA.EXPECT().SetAttribute("path", "src/a.ts")
	spanA.EXPECT().SetAttribute("warnings", 2)
	spanA.EXPECT().End()
	spanB.EXPECT().SetAttribute("path", "src/b.ts")
	spanB.EXPECT().RecordError(failure)
	spanB.EXPECT().End()

	s := scheduler.NewScheduler(tracer)
	_, err := scheduler.Run(t.Context(), s, []string{"src/a.ts", "src/b.ts"}, 1,
		func(_ context.Context, item string, span ports.Span) (int, error) {
			if item == "src/b.ts" {
				return 0, failure
			}
			span.SetAttribute("warnings", 2)
			return 2, nil
		})

	require.ErrorIs(t, err, failure)
}
