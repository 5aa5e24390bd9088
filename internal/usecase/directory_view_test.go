package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"TeleCareZone-Web/internal/domain/model"
)

// fakeRepo answers from a queue of results and counts calls.
type fakeRepo struct {
	calls   atomic.Int32
	results []fakeResult
}

type fakeResult struct {
	professionals []model.Professional
	err           error
}

func (r *fakeRepo) GetApproved(ctx context.Context) ([]model.Professional, error) {
	n := int(r.calls.Add(1)) - 1
	if n >= len(r.results) {
		n = len(r.results) - 1
	}
	res := r.results[n]
	return res.professionals, res.err
}

// blockingRepo waits for release or cancellation before answering.
type blockingRepo struct {
	started chan struct{}
	release chan struct{}
	result  []model.Professional
}

func newBlockingRepo(result []model.Professional) *blockingRepo {
	return &blockingRepo{
		started: make(chan struct{}, 1),
		release: make(chan struct{}),
		result:  result,
	}
}

func (r *blockingRepo) GetApproved(ctx context.Context) ([]model.Professional, error) {
	r.started <- struct{}{}
	select {
	case <-r.release:
		return r.result, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func observedLogger(level zapcore.Level) (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return zap.New(core), logs
}

func professionals(names ...string) []model.Professional {
	out := make([]model.Professional, 0, len(names))
	for i, name := range names {
		out = append(out, model.Professional{
			ID:        model.ID(string(rune('1' + i))),
			FirstName: name,
			LastName:  "Test",
			Subdomain: "dr" + name,
		})
	}
	return out
}

func TestDirectoryView_FetchStoresList(t *testing.T) {
	defer goleak.VerifyNone(t)

	repo := &fakeRepo{results: []fakeResult{{professionals: professionals("Priya", "Rahul")}}}
	view := NewDirectoryView(repo, zap.NewNop())

	token := view.Mount(context.Background())
	assert.NotEqual(t, uuid.Nil, token)
	assert.Equal(t, token, view.Token())

	require.True(t, view.Fetch())
	view.Wait()

	got := view.Professionals()
	require.Len(t, got, 2)
	assert.Equal(t, "Priya", got[0].FirstName)
	assert.Equal(t, "Rahul", got[1].FirstName)
	view.Unmount()
}

func TestDirectoryView_OneRequestPerMount(t *testing.T) {
	defer goleak.VerifyNone(t)

	repo := &fakeRepo{results: []fakeResult{{professionals: professionals("Priya")}}}
	view := NewDirectoryView(repo, zap.NewNop())

	assert.False(t, view.Fetch(), "fetch before mount")

	view.Mount(context.Background())
	assert.True(t, view.Fetch())
	assert.False(t, view.Fetch())
	view.Wait()
	assert.Equal(t, int32(1), repo.calls.Load())

	view.Mount(context.Background())
	assert.True(t, view.Fetch())
	view.Wait()
	assert.Equal(t, int32(2), repo.calls.Load())
	view.Unmount()
}

func TestDirectoryView_FailureKeepsPreviousList(t *testing.T) {
	defer goleak.VerifyNone(t)

	logger, logs := observedLogger(zapcore.DebugLevel)
	repo := &fakeRepo{results: []fakeResult{
		{professionals: professionals("Priya")},
		{err: errors.New("connection refused")},
	}}
	view := NewDirectoryView(repo, logger)

	view.Mount(context.Background())
	view.Fetch()
	view.Wait()
	require.Len(t, view.Professionals(), 1)

	view.Mount(context.Background())
	view.Fetch()
	view.Wait()

	got := view.Professionals()
	require.Len(t, got, 1)
	assert.Equal(t, "Priya", got[0].FirstName)

	errorLogs := logs.FilterLevelExact(zapcore.ErrorLevel).All()
	require.Len(t, errorLogs, 1)
	assert.Equal(t, "connection refused", errorLogs[0].ContextMap()["error"])
	view.Unmount()
}

func TestDirectoryView_FirstFailureLeavesEmptyList(t *testing.T) {
	defer goleak.VerifyNone(t)

	repo := &fakeRepo{results: []fakeResult{{err: errors.New("status 500")}}}
	view := NewDirectoryView(repo, zap.NewNop())

	view.Mount(context.Background())
	view.Fetch()
	view.Wait()

	got := view.Professionals()
	assert.NotNil(t, got)
	assert.Empty(t, got)
	view.Unmount()
}

func TestDirectoryView_StaleResultDiscarded(t *testing.T) {
	defer goleak.VerifyNone(t)

	logger, logs := observedLogger(zapcore.DebugLevel)
	repo := newBlockingRepo(professionals("Late"))
	view := NewDirectoryView(repo, logger)

	view.Mount(context.Background())
	require.True(t, view.Fetch())
	<-repo.started

	view.Unmount()
	view.Wait()

	assert.Empty(t, view.Professionals())
	assert.Equal(t, uuid.Nil, view.Token())
	assert.Equal(t, 1, logs.FilterMessage("discarding stale directory result").Len())
	assert.Zero(t, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
}

func TestDirectoryView_RemountDiscardsEarlierResult(t *testing.T) {
	defer goleak.VerifyNone(t)

	repo := newBlockingRepo(professionals("Late"))
	view := NewDirectoryView(repo, zap.NewNop())

	first := view.Mount(context.Background())
	view.Fetch()
	<-repo.started

	second := view.Mount(context.Background())
	assert.NotEqual(t, first, second)
	view.Wait()
	assert.Empty(t, view.Professionals())

	view.Fetch()
	<-repo.started
	close(repo.release)
	view.Wait()

	got := view.Professionals()
	require.Len(t, got, 1)
	assert.Equal(t, "Late", got[0].FirstName)
	view.Unmount()
}

func TestDirectoryView_ProfessionalsReturnsCopy(t *testing.T) {
	repo := &fakeRepo{results: []fakeResult{{professionals: professionals("Priya")}}}
	view := NewDirectoryView(repo, zap.NewNop())

	view.Mount(context.Background())
	view.Fetch()
	view.Wait()

	got := view.Professionals()
	got[0].FirstName = "Changed"
	assert.Equal(t, "Priya", view.Professionals()[0].FirstName)
	view.Unmount()
}
