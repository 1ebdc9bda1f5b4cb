package parallel

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// minConcurrency is the minimum number of concurrent tasks.
const minConcurrency = 2

// DefaultMaxConcurrency returns the default maximum concurrency based on available CPUs.
func DefaultMaxConcurrency() int64 {
	return max(int64(runtime.NumCPU()), minConcurrency)
}

// Executor provides controlled parallel execution of tasks.
type Executor struct {
	maxConcurrency int64
}

// NewExecutor creates a new parallel executor with the specified max concurrency.
// If maxConcurrency <= 0, DefaultMaxConcurrency() is used.
func NewExecutor(maxConcurrency int64) *Executor {
	if maxConcurrency <= 0 {
		maxConcurrency = DefaultMaxConcurrency()
	}

	return &Executor{maxConcurrency: maxConcurrency}
}

// Task represents a unit of work that can be executed in parallel.
type Task func(ctx context.Context) error

// MaxConcurrency returns the number of tasks allowed to run at once.
func (executor *Executor) MaxConcurrency() int64 {
	return executor.maxConcurrency
}

// Execute runs all tasks concurrently with controlled parallelism.
// It returns the first error encountered. Once a task fails, tasks still waiting
// for a slot are not started; tasks already running are left to finish.
// If all tasks succeed, it returns nil.
func (executor *Executor) Execute(ctx context.Context, tasks ...Task) error {
	if len(tasks) == 0 {
		return nil
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("parallel execution: %w", err)
	}

	if len(tasks) == 1 {
		return tasks[0](ctx)
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(int(executor.maxConcurrency))

	launched := 0

	for _, task := range tasks {
		// Go blocks while the pool is full; a failed task cancels groupCtx before
		// freeing its slot, so nothing is launched after the first failure.
		if groupCtx.Err() != nil {
			break
		}

		group.Go(func() error {
			if groupCtx.Err() != nil {
				return fmt.Errorf("task not started: %w", groupCtx.Err())
			}

			return task(groupCtx)
		})

		launched++
	}

	waitErr := group.Wait()
	if waitErr == nil && launched < len(tasks) {
		waitErr = ctx.Err()
	}

	if waitErr != nil {
		return fmt.Errorf("parallel execution: %w", waitErr)
	}

	return nil
}

// SyncWriter is a thread-safe writer that serializes writes from multiple goroutines.
type SyncWriter struct {
	mu     sync.Mutex
	writer io.Writer
}

// NewSyncWriter creates a new synchronized writer wrapping the given writer.
func NewSyncWriter(writer io.Writer) *SyncWriter {
	return &SyncWriter{writer: writer}
}

// Write writes data to the underlying writer with synchronization.
func (syncWriter *SyncWriter) Write(data []byte) (int, error) {
	syncWriter.mu.Lock()
	defer syncWriter.mu.Unlock()

	written, writeErr := syncWriter.writer.Write(data)
	if writeErr != nil {
		return written, fmt.Errorf("sync write: %w", writeErr)
	}

	return written, nil
}

// Results collects results from parallel tasks with thread-safe access.
type Results[T any] struct {
	mu     sync.Mutex
	values []T
}

// NewResults creates a new Results collector.
func NewResults[T any]() *Results[T] {
	return &Results[T]{}
}

// Add appends a result value.
func (results *Results[T]) Add(value T) {
	results.mu.Lock()
	defer results.mu.Unlock()

	results.values = append(results.values, value)
}

// Values returns all collected values.
func (results *Results[T]) Values() []T {
	results.mu.Lock()
	defer results.mu.Unlock()

	return results.values
}
