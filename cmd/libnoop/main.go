// Command libnoop builds the nativeshim shared library:
//
//	go build -buildmode=c-shared -o libnoop.so ./cmd/libnoop
//
// The generated libnoop.h declares the exported functions below.
package main

/*
#include <stdint.h>

typedef uintptr_t noop_isolate_t;
typedef uintptr_t noop_isolatethread_t;
*/
import "C"

import (
	"github.com/seantiz/nativeshim/internal/entry"
	"github.com/seantiz/nativeshim/internal/isolate"
)

//export noop
func noop(thread C.noop_isolatethread_t) {
	current().shim.Noop(isolate.Thread(thread))
}

//export noop_create_isolate
func noop_create_isolate(iso *C.noop_isolate_t, thread *C.noop_isolatethread_t) C.int {
	h, th := current().shim.CreateIsolate()
	if iso != nil {
		*iso = C.noop_isolate_t(h)
	}
	if thread != nil {
		*thread = C.noop_isolatethread_t(th)
	}
	return C.int(entry.StatusOK)
}

//export noop_attach_thread
func noop_attach_thread(iso C.noop_isolate_t, thread *C.noop_isolatethread_t) C.int {
	if thread == nil {
		return C.int(entry.StatusNullArgument)
	}
	th, st := current().shim.AttachThread(isolate.Handle(iso))
	if st == entry.StatusOK {
		*thread = C.noop_isolatethread_t(th)
	}
	return C.int(st)
}

//export noop_detach_thread
func noop_detach_thread(thread C.noop_isolatethread_t) C.int {
	return C.int(current().shim.DetachThread(isolate.Thread(thread)))
}

//export noop_get_isolate
func noop_get_isolate(thread C.noop_isolatethread_t) C.noop_isolate_t {
	return C.noop_isolate_t(current().shim.IsolateOf(isolate.Thread(thread)))
}

//export noop_tear_down_isolate
func noop_tear_down_isolate(thread C.noop_isolatethread_t) C.int {
	return C.int(current().shim.TearDownIsolate(isolate.Thread(thread)))
}

func main() {}
