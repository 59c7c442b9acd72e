package service

import (
	"context"
	"sync"
	"testing"

	"github.com/alexanderramin/tracker/internal/logfile"
	"github.com/spf13/afero"
)

// recordingObserver keeps every use-case event for assertions.
type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recordingObserver) last() UseCaseEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.events[len(r.events)-1]
}

func newMemLogStore(t *testing.T) (*logfile.Store, afero.Fs) {
	t.Helper()
	fsys := afero.NewMemMapFs()
	return logfile.NewStore(fsys, "/home/user/.tracker_time"), fsys
}
