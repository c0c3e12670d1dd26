package delegate

import "sync"

// Delegate is the collaborator the entry shim forwards every call to.
// Implementations decide their own thread-safety and failure behavior.
type Delegate interface {
	Noop()
}

// Object is the stateless no-op delegate. It is safe for concurrent use.
type Object struct{}

// Noop does nothing.
func (*Object) Noop() {}

var (
	instance     *Object
	instanceOnce sync.Once
)

// Instance returns the process-wide Object, creating it on first use.
func Instance() *Object {
	instanceOnce.Do(func() {
		instance = &Object{}
	})
	return instance
}
