package jobs_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"ecofleet/internal/core/application/usecases/commands"
	"ecofleet/internal/core/domain/model/kernel"
	"ecofleet/internal/core/ports"
	"ecofleet/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type claim struct {
	task ports.Task
	err  error
}

// fakeConsumer hands out queued claims and records acknowledgements.
type fakeConsumer struct {
	claims chan claim

	mu      sync.Mutex
	acked   []string
	ackErr  error
	claimed int
}

func newFakeConsumer() *fakeConsumer {
	return &fakeConsumer{claims: make(chan claim, 16)}
}

func (f *fakeConsumer) push(task ports.Task, err error) {
	f.claims <- claim{task: task, err: err}
}

func (f *fakeConsumer) Claim(ctx context.Context, wait time.Duration) (ports.Task, error) {
	select {
	case c := <-f.claims:
		f.mu.Lock()
		f.claimed++
		f.mu.Unlock()
		return c.task, c.err
	case <-ctx.Done():
		return ports.Task{}, ctx.Err()
	case <-time.After(wait):
		return ports.Task{}, ports.ErrNoTask
	}
}

func (f *fakeConsumer) Ack(_ context.Context, task ports.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.acked = append(f.acked, task.Raw)
	return f.ackErr
}

func (f *fakeConsumer) RequeueStale(_ context.Context, _ time.Duration) (int, error) {
	return 0, nil
}

func (f *fakeConsumer) ackedRaw() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.acked...)
}

func (f *fakeConsumer) claimCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.claimed
}

type MockStatusEmailHandler struct {
	mock.Mock
}

func (m *MockStatusEmailHandler) Handle(
	ctx context.Context,
	cmd commands.SendDeliveryStatusEmailCommand,
) (commands.EmailResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.EmailResult), args.Error(1)
}

type MockStaleRequeuer struct {
	mock.Mock
}

func (m *MockStaleRequeuer) RequeueStale(ctx context.Context, visibility time.Duration) (int, error) {
	args := m.Called(ctx, visibility)
	return args.Int(0), args.Error(1)
}

func emailTask(raw string) ports.Task {
	return ports.Task{Name: ports.TaskSendDeliveryStatusEmail, OrderID: kernel.NewUUID(), Raw: raw}
}

func forOrder(id kernel.UUID) any {
	return mock.MatchedBy(func(cmd commands.SendDeliveryStatusEmailCommand) bool {
		return cmd.OrderID().IsEqual(id)
	})
}

func startPool(t *testing.T, consumer *fakeConsumer, handler *MockStatusEmailHandler, workers int) *jobs.EmailWorkerPool {
	t.Helper()
	pool := jobs.NewEmailWorkerPool(consumer, handler, workers, 20*time.Millisecond, discardLogger())
	require.NoError(t, pool.Start(context.Background()))
	t.Cleanup(pool.Stop)
	return pool
}

func TestEmailWorkerPool_AcksHandledTasks(t *testing.T) {
	consumer := newFakeConsumer()
	handler := &MockStatusEmailHandler{}
	sent := emailTask("sent")
	missing := emailTask("missing")
	failedTransport := emailTask("transport")
	handler.On("Handle", mock.Anything, forOrder(sent.OrderID)).Return(commands.EmailSent, nil).Once()
	handler.On("Handle", mock.Anything, forOrder(missing.OrderID)).Return(commands.EmailNotFound, nil).Once()
	handler.On("Handle", mock.Anything, forOrder(failedTransport.OrderID)).Return(commands.EmailFailed, nil).Once()

	startPool(t, consumer, handler, 2)
	consumer.push(sent, nil)
	consumer.push(missing, nil)
	consumer.push(failedTransport, nil)

	assert.Eventually(t, func() bool {
		return len(consumer.ackedRaw()) == 3
	}, 2*time.Second, 10*time.Millisecond)
	assert.ElementsMatch(t, []string{"sent", "missing", "transport"}, consumer.ackedRaw())
	handler.AssertExpectations(t)
}

func TestEmailWorkerPool_LeavesTaskOnHandlerError(t *testing.T) {
	consumer := newFakeConsumer()
	handler := &MockStatusEmailHandler{}
	broken := emailTask("broken")
	after := emailTask("after")
	handler.On("Handle", mock.Anything, forOrder(broken.OrderID)).
		Return(commands.EmailResult(""), errors.New("connection refused")).Once()
	handler.On("Handle", mock.Anything, forOrder(after.OrderID)).Return(commands.EmailSent, nil).Once()

	startPool(t, consumer, handler, 1)
	consumer.push(broken, nil)
	consumer.push(after, nil)

	assert.Eventually(t, func() bool {
		return len(consumer.ackedRaw()) == 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{"after"}, consumer.ackedRaw())
	handler.AssertExpectations(t)
}

func TestEmailWorkerPool_DropsUnusableTasks(t *testing.T) {
	consumer := newFakeConsumer()
	handler := &MockStatusEmailHandler{}

	startPool(t, consumer, handler, 1)
	consumer.push(ports.Task{Raw: "{not json"}, ports.ErrMalformedTask)
	consumer.push(ports.Task{Name: "reindex", OrderID: kernel.NewUUID(), Raw: "unknown"}, nil)
	consumer.push(ports.Task{Name: ports.TaskSendDeliveryStatusEmail, Raw: "zero-id"}, nil)

	assert.Eventually(t, func() bool {
		return len(consumer.ackedRaw()) == 3
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{"{not json", "unknown", "zero-id"}, consumer.ackedRaw())
	handler.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestEmailWorkerPool_KeepsClaimingAfterClaimError(t *testing.T) {
	consumer := newFakeConsumer()
	handler := &MockStatusEmailHandler{}
	task := emailTask("ok")
	handler.On("Handle", mock.Anything, forOrder(task.OrderID)).Return(commands.EmailSent, nil).Once()

	startPool(t, consumer, handler, 1)
	consumer.push(ports.Task{}, errors.New("i/o timeout"))
	consumer.push(task, nil)

	assert.Eventually(t, func() bool {
		return len(consumer.ackedRaw()) == 1
	}, 3*time.Second, 20*time.Millisecond)
	assert.Equal(t, 2, consumer.claimCount())
}

func TestEmailWorkerPool_StartTwice(t *testing.T) {
	consumer := newFakeConsumer()
	pool := startPool(t, consumer, &MockStatusEmailHandler{}, 1)

	require.Error(t, pool.Start(context.Background()))
}

func TestEmailWorkerPool_StopIsIdempotent(t *testing.T) {
	pool := jobs.NewEmailWorkerPool(newFakeConsumer(), &MockStatusEmailHandler{}, 3, 10*time.Millisecond, discardLogger())
	require.NoError(t, pool.Start(context.Background()))

	done := make(chan struct{})
	go func() {
		pool.Stop()
		pool.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("workers did not stop")
	}
}

func TestStaleTaskRecoveryJob_RunOnce(t *testing.T) {
	t.Run("should requeue with configured visibility", func(t *testing.T) {
		queue := &MockStaleRequeuer{}
		queue.On("RequeueStale", mock.Anything, 90*time.Second).Return(2, nil).Once()
		job := jobs.NewStaleTaskRecoveryJob(queue, 90*time.Second, discardLogger())

		assert.Equal(t, 2, job.RunOnce(context.Background()))
		queue.AssertExpectations(t)
	})

	t.Run("should fall back to default visibility", func(t *testing.T) {
		queue := &MockStaleRequeuer{}
		queue.On("RequeueStale", mock.Anything, jobs.DefaultVisibilityTimeout).Return(0, nil).Once()
		job := jobs.NewStaleTaskRecoveryJob(queue, 0, discardLogger())

		assert.Equal(t, 0, job.RunOnce(context.Background()))
		queue.AssertExpectations(t)
	})

	t.Run("should swallow queue errors", func(t *testing.T) {
		queue := &MockStaleRequeuer{}
		queue.On("RequeueStale", mock.Anything, mock.Anything).Return(0, errors.New("READONLY")).Once()
		job := jobs.NewStaleTaskRecoveryJob(queue, time.Minute, discardLogger())

		assert.Equal(t, 0, job.RunOnce(context.Background()))
	})
}

func TestJobManager_StartAndStop(t *testing.T) {
	consumer := newFakeConsumer()
	handler := &MockStatusEmailHandler{}
	task := emailTask("managed")
	handler.On("Handle", mock.Anything, forOrder(task.OrderID)).Return(commands.EmailSent, nil).Once()

	manager := jobs.NewJobManager(
		jobs.NewEmailWorkerPool(consumer, handler, 1, 10*time.Millisecond, discardLogger()),
		jobs.NewStaleTaskRecoveryJob(consumer, time.Minute, discardLogger()),
	)
	require.NoError(t, manager.StartAll(context.Background()))
	consumer.push(task, nil)

	assert.Eventually(t, func() bool {
		return len(consumer.ackedRaw()) == 1
	}, 2*time.Second, 10*time.Millisecond)
	manager.StopAll()
}
