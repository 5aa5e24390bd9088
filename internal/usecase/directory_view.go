package usecase

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"TeleCareZone-Web/internal/domain/model"
	"TeleCareZone-Web/internal/domain/repository"
)

// DirectoryView holds the professionals list for one mounted landing view.
//
// Every Mount issues a fresh lifecycle token. A fetch result is applied only
// while its token is still current, so results that arrive after Unmount or a
// later Mount are dropped.
type DirectoryView struct {
	repo   repository.ProfessionalsRepository
	logger *zap.Logger

	mu            sync.Mutex
	token         uuid.UUID
	ctx           context.Context
	cancel        context.CancelFunc
	fetched       bool
	professionals []model.Professional

	wg sync.WaitGroup
}

// NewDirectoryView creates an unmounted view with an empty list.
func NewDirectoryView(repo repository.ProfessionalsRepository, logger *zap.Logger) *DirectoryView {
	return &DirectoryView{
		repo:          repo,
		logger:        logger,
		professionals: []model.Professional{},
	}
}

// Mount starts a new lifecycle derived from parent and returns its token.
// A previous lifecycle is cancelled first.
func (v *DirectoryView) Mount(parent context.Context) uuid.UUID {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.cancel != nil {
		v.cancel()
	}
	v.ctx, v.cancel = context.WithCancel(parent)
	v.token = uuid.New()
	v.fetched = false
	return v.token
}

// Fetch starts the single directory request of the current mount.
// It returns false when the view is not mounted or already fetched.
func (v *DirectoryView) Fetch() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.token == uuid.Nil || v.fetched {
		return false
	}
	v.fetched = true

	token, ctx := v.token, v.ctx
	v.wg.Add(1)
	go func() {
		defer v.wg.Done()
		professionals, err := v.repo.GetApproved(ctx)
		v.apply(token, professionals, err)
	}()
	return true
}

func (v *DirectoryView) apply(token uuid.UUID, professionals []model.Professional, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if token != v.token {
		v.logger.Debug("discarding stale directory result", zap.Stringer("token", token))
		return
	}
	if err != nil {
		v.logger.Error("failed to fetch approved professionals", zap.Error(err))
		return
	}
	if professionals == nil {
		professionals = []model.Professional{}
	}
	v.professionals = professionals
}

// Wait blocks until every started fetch has finished.
func (v *DirectoryView) Wait() {
	v.wg.Wait()
}

// Unmount cancels the in-flight request and invalidates the token.
func (v *DirectoryView) Unmount() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
	v.token = uuid.Nil
	v.ctx = nil
}

// Token returns the current lifecycle token, uuid.Nil when unmounted.
func (v *DirectoryView) Token() uuid.UUID {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.token
}

// Professionals returns a copy of the current list.
func (v *DirectoryView) Professionals() []model.Professional {
	v.mu.Lock()
	defer v.mu.Unlock()

	out := make([]model.Professional, len(v.professionals))
	copy(out, v.professionals)
	return out
}
