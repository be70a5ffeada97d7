package relay

import (
	"sync"

	"github.com/MohammadShoaib023/near-me-alerts/module/geofence/domain"
)

// ForegroundEndpoint is the well-known name the foreground context
// listens on.
const ForegroundEndpoint = "foreground"

const endpointBuffer = 16

// Registry hands a message-sending capability from one execution
// context to another by name. It is one-directional and best-effort:
// events sent with no listener registered are dropped.
type Registry struct {
	mu        sync.Mutex
	endpoints map[string]chan domain.TransitionEvent
}

func NewRegistry() *Registry {
	return &Registry{endpoints: make(map[string]chan domain.TransitionEvent)}
}

// Register creates the named endpoint and returns its receive side.
// Registering an existing name atomically replaces it; the prior
// channel is closed so a stale consumer loop terminates.
func (r *Registry) Register(name string) <-chan domain.TransitionEvent {
	r.mu.Lock()
	defer r.mu.Unlock()

	if old, ok := r.endpoints[name]; ok {
		close(old)
	}
	ch := make(chan domain.TransitionEvent, endpointBuffer)
	r.endpoints[name] = ch
	return ch
}

func (r *Registry) Deregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ch, ok := r.endpoints[name]; ok {
		close(ch)
		delete(r.endpoints, name)
	}
}

// Send delivers evt to the named endpoint without blocking. It reports
// whether the event was accepted; a missing endpoint or a full buffer
// drops the event silently.
func (r *Registry) Send(name string, evt domain.TransitionEvent) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	ch, ok := r.endpoints[name]
	if !ok {
		return false
	}
	select {
	case ch <- evt:
		return true
	default:
		return false
	}
}
