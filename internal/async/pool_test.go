package async

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProcessor struct {
	mu     sync.Mutex
	seen   []uuid.UUID
	failOn uuid.UUID
}

func (f *fakeProcessor) ProcessFile(_ context.Context, fileID uuid.UUID) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seen = append(f.seen, fileID)
	if fileID == f.failOn {
		return uuid.Nil, fmt.Errorf("broken file")
	}
	return uuid.New(), nil
}

func (f *fakeProcessor) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.seen)
}

func TestQueueProcessesAllJobs(t *testing.T) {
	proc := &fakeProcessor{}
	q := NewProcessorQueue(proc, nil, Options{Workers: 3, Capacity: 16})

	for i := 0; i < 10; i++ {
		require.NoError(t, q.Enqueue(context.Background(), Job{FileID: uuid.New(), SubmittedAt: time.Now()}))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	assert.Equal(t, 10, proc.count())
}

func TestQueueSurvivesJobFailure(t *testing.T) {
	bad := uuid.New()
	proc := &fakeProcessor{failOn: bad}
	q := NewProcessorQueue(proc, nil, Options{Workers: 1, Capacity: 4})

	require.NoError(t, q.Enqueue(context.Background(), Job{FileID: bad}))
	require.NoError(t, q.Enqueue(context.Background(), Job{FileID: uuid.New()}))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	assert.Equal(t, 2, proc.count())
}

func TestQueueRejectsWhenFull(t *testing.T) {
	proc := &fakeProcessor{}
	q := NewProcessorQueue(proc, nil, Options{Workers: 1, Capacity: 1})

	// saturate: with one worker possibly busy, capacity 1 fills fast
	var errs int
	for i := 0; i < 50; i++ {
		if err := q.Enqueue(context.Background(), Job{FileID: uuid.New()}); err != nil {
			errs++
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	assert.Positive(t, errs)
}

func TestQueueRejectsAfterShutdown(t *testing.T) {
	proc := &fakeProcessor{}
	q := NewProcessorQueue(proc, nil, Options{})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)

	assert.Error(t, q.Enqueue(context.Background(), Job{FileID: uuid.New()}))
}
