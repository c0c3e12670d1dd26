package delegate_test

import (
	"sync"
	"testing"

	"github.com/seantiz/nativeshim/internal/delegate"
)

// Compile-time interface check.
var _ delegate.Delegate = (*delegate.Object)(nil)

func TestInstanceReturnsSameObject(t *testing.T) {
	first := delegate.Instance()
	if first == nil {
		t.Fatal("Instance() returned nil")
	}
	if second := delegate.Instance(); second != first {
		t.Errorf("Instance() = %p, want %p", second, first)
	}
}

func TestInstanceConcurrentFirstUse(t *testing.T) {
	const n = 8
	got := make([]*delegate.Object, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			got[i] = delegate.Instance()
			got[i].Noop()
		}()
	}
	wg.Wait()

	for i, obj := range got {
		if obj != got[0] {
			t.Errorf("goroutine %d saw %p, want %p", i, obj, got[0])
		}
	}
}

func TestObjectNoopNilReceiver(t *testing.T) {
	var obj *delegate.Object
	obj.Noop()
}
