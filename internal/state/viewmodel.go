package state

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/annedawson/amphibians/internal/logging"
	"github.com/annedawson/amphibians/internal/photos"
	"github.com/annedawson/amphibians/internal/repository"
)

const defaultSubscriberBuffer = 16

// Option configures a PhotosViewModel.
type Option func(*PhotosViewModel)

// WithLogger sets the logger used for refresh outcomes.
func WithLogger(log logrus.FieldLogger) Option {
	return func(vm *PhotosViewModel) {
		if log != nil {
			vm.log = log
		}
	}
}

// WithSubscriberBuffer sets the channel capacity handed to each subscriber.
func WithSubscriberBuffer(n int) Option {
	return func(vm *PhotosViewModel) {
		if n > 0 {
			vm.buffer = n
		}
	}
}

// PhotosViewModel owns the photos screen state and is its only writer.
//
// Refresh publishes Loading immediately, then Success or Error once the
// repository answers. Overlapping refreshes are not serialised: each one
// commits when its own fetch finishes, so the last completion wins.
type PhotosViewModel struct {
	repo   repository.PhotosRepository
	log    logrus.FieldLogger
	ctx    context.Context
	cancel context.CancelFunc
	buffer int

	mu      sync.RWMutex
	state   UIState
	subs    map[uint64]chan UIState
	nextSub uint64
	closed  bool

	inflight sync.WaitGroup
}

// NewPhotosViewModel starts in Loading and triggers the first Refresh before
// returning. ctx bounds every fetch the view model issues.
func NewPhotosViewModel(ctx context.Context, repo repository.PhotosRepository, opts ...Option) *PhotosViewModel {
	if ctx == nil {
		ctx = context.Background()
	}
	vmCtx, cancel := context.WithCancel(ctx)
	vm := &PhotosViewModel{
		repo:   repo,
		log:    logging.Discard(),
		ctx:    vmCtx,
		cancel: cancel,
		buffer: defaultSubscriberBuffer,
		state:  Loading{},
		subs:   make(map[uint64]chan UIState),
	}
	for _, opt := range opts {
		opt(vm)
	}
	vm.Refresh()
	return vm
}

// State returns the latest state. Success payloads are copied.
func (vm *PhotosViewModel) State() UIState {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return copyState(vm.state)
}

// Subscribe returns a channel that yields the current state followed by every
// later transition in commit order. When a subscriber falls behind by more
// than the buffer, the oldest queued state is dropped; the newest is always
// delivered. The channel is closed by the returned cancel func or by Close.
func (vm *PhotosViewModel) Subscribe() (<-chan UIState, func()) {
	ch := make(chan UIState, vm.buffer)

	vm.mu.Lock()
	defer vm.mu.Unlock()
	if vm.closed {
		close(ch)
		return ch, func() {}
	}
	id := vm.nextSub
	vm.nextSub++
	vm.subs[id] = ch
	ch <- copyState(vm.state)

	return ch, func() {
		vm.mu.Lock()
		defer vm.mu.Unlock()
		if sub, ok := vm.subs[id]; ok {
			delete(vm.subs, id)
			close(sub)
		}
	}
}

// Refresh publishes Loading, then fetches in the background. The returned
// channel is closed once this call's outcome has been committed, or dropped
// because the view model was closed. Refresh never blocks on the network.
func (vm *PhotosViewModel) Refresh() <-chan struct{} {
	done := make(chan struct{})

	vm.mu.Lock()
	if vm.closed {
		vm.mu.Unlock()
		close(done)
		return done
	}
	vm.publishLocked(Loading{})
	vm.inflight.Add(1)
	vm.mu.Unlock()

	log := vm.log.WithField("refresh_id", uuid.NewString())
	log.Debug("refresh started")

	go func() {
		defer vm.inflight.Done()
		defer close(done)

		start := time.Now()
		list, err := vm.repo.FetchPhotos(vm.ctx)
		elapsed := time.Since(start)

		var next UIState
		if err != nil {
			log.WithFields(logrus.Fields{
				"kind":     photos.Kind(err),
				"duration": elapsed,
			}).WithError(err).Warn("refresh failed")
			next = Error{}
		} else {
			log.WithFields(logrus.Fields{
				"count":    len(list),
				"duration": elapsed,
			}).Info("photos loaded")
			next = Success{Photos: clonePhotos(list)}
		}

		if !vm.commit(next) {
			log.Debug("refresh outcome dropped, view model shut down")
		}
	}()

	return done
}

// Wait blocks until every refresh issued so far has finished. It must not be
// called concurrently with Refresh.
func (vm *PhotosViewModel) Wait() {
	vm.inflight.Wait()
}

// Close cancels outstanding fetches, closes subscriber channels and waits for
// in-flight refreshes to return. Later Refresh calls are no-ops.
func (vm *PhotosViewModel) Close() {
	vm.mu.Lock()
	if vm.closed {
		vm.mu.Unlock()
		return
	}
	vm.closed = true
	for id, ch := range vm.subs {
		delete(vm.subs, id)
		close(ch)
	}
	vm.mu.Unlock()

	vm.cancel()
	vm.inflight.Wait()
}

func (vm *PhotosViewModel) commit(next UIState) bool {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	if vm.closed || vm.ctx.Err() != nil {
		return false
	}
	vm.publishLocked(next)
	return true
}

// publishLocked must be called with mu held for writing.
func (vm *PhotosViewModel) publishLocked(next UIState) {
	vm.state = next
	for _, ch := range vm.subs {
		offer(ch, copyState(next))
	}
}

// offer delivers s without blocking, evicting the oldest queued state when
// the buffer is full. Only the holder of mu sends, so the final send always
// has room.
func offer(ch chan UIState, s UIState) {
	select {
	case ch <- s:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	ch <- s
}
