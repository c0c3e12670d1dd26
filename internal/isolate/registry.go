package isolate

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"
)

// Sentinel errors returned by Registry operations.
var (
	ErrUnknownIsolate = errors.New("unknown isolate")
	ErrUnknownThread  = errors.New("unknown thread")
)

// Handle identifies an isolate at the C boundary.
type Handle uintptr

// Thread is the opaque execution-context handle passed to entry points.
// The zero Thread is never issued.
type Thread uintptr

// Isolate describes one live isolate.
type Isolate struct {
	Handle    Handle    `json:"handle"`
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Threads   int       `json:"threads"`
}

type isolateState struct {
	info    Isolate
	threads map[Thread]struct{}
}

// Registry holds live isolates and the threads attached to them.
type Registry struct {
	mu       sync.RWMutex
	next     uintptr
	isolates map[Handle]*isolateState
	threads  map[Thread]Handle
}

// NewRegistry creates an empty isolate registry.
func NewRegistry() *Registry {
	return &Registry{
		isolates: make(map[Handle]*isolateState),
		threads:  make(map[Thread]Handle),
	}
}

// Create registers a new isolate with one attached thread and returns both.
func (r *Registry) Create() (Isolate, Thread) {
	r.mu.Lock()
	defer r.mu.Unlock()

	h := Handle(r.issue())
	st := &isolateState{
		info: Isolate{
			Handle:    h,
			ID:        newID(),
			CreatedAt: time.Now().UTC(),
		},
		threads: make(map[Thread]struct{}),
	}
	r.isolates[h] = st
	activeIsolates.Inc()

	th := r.attachLocked(h, st)
	return st.snapshot(), th
}

// Attach adds a new thread to the isolate identified by h.
func (r *Registry) Attach(h Handle) (Thread, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	st, ok := r.isolates[h]
	if !ok {
		return 0, fmt.Errorf("attach to isolate %d: %w", h, ErrUnknownIsolate)
	}
	return r.attachLocked(h, st), nil
}

// Detach removes a single thread. The isolate stays alive even when its last
// thread detaches.
func (r *Registry) Detach(th Thread) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.threads[th]
	if !ok {
		return fmt.Errorf("detach thread %d: %w", th, ErrUnknownThread)
	}
	delete(r.threads, th)
	delete(r.isolates[h].threads, th)
	attachedThreads.Dec()
	return nil
}

// IsolateOf returns the isolate the given thread is attached to.
func (r *Registry) IsolateOf(th Thread) (Isolate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.threads[th]
	if !ok {
		return Isolate{}, fmt.Errorf("lookup thread %d: %w", th, ErrUnknownThread)
	}
	return r.isolates[h].snapshot(), nil
}

// TearDown removes the isolate owning th together with all of its threads.
func (r *Registry) TearDown(th Thread) (Isolate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.threads[th]
	if !ok {
		return Isolate{}, fmt.Errorf("tear down via thread %d: %w", th, ErrUnknownThread)
	}
	st := r.isolates[h]
	info := st.snapshot()

	for t := range st.threads {
		delete(r.threads, t)
	}
	attachedThreads.Sub(float64(len(st.threads)))
	delete(r.isolates, h)
	activeIsolates.Dec()

	return info, nil
}

// Len reports the number of live isolates and attached threads.
func (r *Registry) Len() (isolates, threads int) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.isolates), len(r.threads)
}

// List returns all live isolates sorted by handle.
func (r *Registry) List() []Isolate {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Isolate, 0, len(r.isolates))
	for _, st := range r.isolates {
		out = append(out, st.snapshot())
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Handle < out[j].Handle
	})
	return out
}

// issue returns the next unused handle value. Caller must hold r.mu.
func (r *Registry) issue() uintptr {
	r.next++
	return r.next
}

func (r *Registry) attachLocked(h Handle, st *isolateState) Thread {
	th := Thread(r.issue())
	st.threads[th] = struct{}{}
	r.threads[th] = h
	attachedThreads.Inc()
	return th
}

func (st *isolateState) snapshot() Isolate {
	info := st.info
	info.Threads = len(st.threads)
	return info
}
