package operator

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-tracker/internal/storage"
)

type recordingCommitter struct {
	mu        sync.Mutex
	commits   int
	rollbacks int
	commitErr error
}

func (c *recordingCommitter) Commit(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.commits++
	return c.commitErr
}

func (c *recordingCommitter) Rollback(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rollbacks++
	return nil
}

type fakeStore struct {
	committer *recordingCommitter
	writeErr  error
}

func (s *fakeStore) Write(context.Context) (*storage.Writer, error) {
	if s.writeErr != nil {
		return nil, s.writeErr
	}
	return storage.NewWriterWith(s.committer, storage.Tables{}), nil
}

type funcAction func(ctx context.Context, writer *storage.Writer) error

func (f funcAction) Perform(ctx context.Context, writer *storage.Writer) error {
	return f(ctx, writer)
}

func newStartedDelegator(t *testing.T, store WriteStore, workers int) *OperatorDelegator {
	t.Helper()
	d := NewOperatorDelegator(store, workers)
	d.Start()
	t.Cleanup(d.Stop)
	return d
}

func TestProcess_CommitsOnSuccess(t *testing.T) {
	store := &fakeStore{committer: &recordingCommitter{}}
	d := newStartedDelegator(t, store, 1)

	err := d.Process(context.Background(), funcAction(func(context.Context, *storage.Writer) error {
		return nil
	}))

	require.NoError(t, err)
	assert.Equal(t, 1, store.committer.commits)
	assert.Equal(t, 0, store.committer.rollbacks)
}

func TestProcess_RollsBackOnActionError(t *testing.T) {
	store := &fakeStore{committer: &recordingCommitter{}}
	d := newStartedDelegator(t, store, 1)
	actionErr := errors.New("constraint violated")

	err := d.Process(context.Background(), funcAction(func(context.Context, *storage.Writer) error {
		return actionErr
	}))

	assert.ErrorIs(t, err, actionErr)
	assert.Equal(t, 0, store.committer.commits)
	assert.Equal(t, 1, store.committer.rollbacks)
}

func TestProcess_WriteError(t *testing.T) {
	store := &fakeStore{writeErr: errors.New("database unavailable")}
	d := newStartedDelegator(t, store, 1)

	called := false
	err := d.Process(context.Background(), funcAction(func(context.Context, *storage.Writer) error {
		called = true
		return nil
	}))

	assert.EqualError(t, err, "database unavailable")
	assert.False(t, called)
}

func TestProcess_CommitError(t *testing.T) {
	store := &fakeStore{committer: &recordingCommitter{commitErr: errors.New("serialization failure")}}
	d := newStartedDelegator(t, store, 1)

	err := d.Process(context.Background(), funcAction(func(context.Context, *storage.Writer) error {
		return nil
	}))

	assert.EqualError(t, err, "serialization failure")
}

func TestProcess_ContextCancelledWhileWaiting(t *testing.T) {
	store := &fakeStore{committer: &recordingCommitter{}}
	d := newStartedDelegator(t, store, 1)

	release := make(chan struct{})
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := d.Process(ctx, funcAction(func(context.Context, *storage.Writer) error {
		<-release
		return nil
	}))
	close(release)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestProcess_ConcurrentCallers(t *testing.T) {
	store := &fakeStore{committer: &recordingCommitter{}}
	d := newStartedDelegator(t, store, 4)

	var performed atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := d.Process(context.Background(), funcAction(func(context.Context, *storage.Writer) error {
				performed.Add(1)
				return nil
			}))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 50, performed.Load())
	assert.Equal(t, 50, store.committer.commits)
}

func TestProcess_AfterStop(t *testing.T) {
	d := NewOperatorDelegator(&fakeStore{committer: &recordingCommitter{}}, 1)
	d.Start()
	d.Stop()
	d.Stop()

	err := d.Process(context.Background(), funcAction(func(context.Context, *storage.Writer) error {
		return nil
	}))
	assert.ErrorIs(t, err, ErrStopped)
}
