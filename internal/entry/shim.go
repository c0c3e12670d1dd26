package entry

import (
	"errors"
	"log/slog"

	"github.com/seantiz/nativeshim/internal/delegate"
	"github.com/seantiz/nativeshim/internal/isolate"
)

// Status is the integer result code returned to C callers of lifecycle exports.
type Status int

const (
	StatusOK            Status = 0
	StatusUnknownHandle Status = 1
	StatusNullArgument  Status = 2
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusUnknownHandle:
		return "unknown_handle"
	case StatusNullArgument:
		return "null_argument"
	default:
		return "unknown"
	}
}

// Shim forwards entry point calls to its delegate and manages the execution
// contexts native hosts pass in.
type Shim struct {
	delegate delegate.Delegate
	isolates *isolate.Registry
	logger   *slog.Logger
}

// NewShim creates a shim that forwards to d. The delegate is used as given;
// a nil delegate fails on first Noop the way a nil interface call does.
func NewShim(d delegate.Delegate, reg *isolate.Registry, logger *slog.Logger) *Shim {
	return &Shim{
		delegate: d,
		isolates: reg,
		logger:   logger,
	}
}

// Noop forwards to the delegate's Noop. The thread handle is not validated;
// passing a live handle is the caller's responsibility. Panics raised by the
// delegate reach the caller unchanged.
func (s *Shim) Noop(th isolate.Thread) {
	s.logger.Debug("noop", "thread", uint64(th))
	s.delegate.Noop()
	noopCallsTotal.Inc()
}

// CreateIsolate creates an isolate with one attached thread.
func (s *Shim) CreateIsolate() (isolate.Handle, isolate.Thread) {
	iso, th := s.isolates.Create()
	lifecycleCallsTotal.WithLabelValues(opCreate, StatusOK.String()).Inc()
	s.logger.Info("isolate created",
		"isolate_id", iso.ID,
		"isolate", uint64(iso.Handle),
		"thread", uint64(th),
	)
	return iso.Handle, th
}

// AttachThread attaches a new thread to the isolate h.
func (s *Shim) AttachThread(h isolate.Handle) (isolate.Thread, Status) {
	th, err := s.isolates.Attach(h)
	if st := s.result(opAttach, err); st != StatusOK {
		return 0, st
	}
	s.logger.Debug("thread attached", "isolate", uint64(h), "thread", uint64(th))
	return th, StatusOK
}

// DetachThread detaches th from its isolate.
func (s *Shim) DetachThread(th isolate.Thread) Status {
	err := s.isolates.Detach(th)
	if st := s.result(opDetach, err); st != StatusOK {
		return st
	}
	s.logger.Debug("thread detached", "thread", uint64(th))
	return StatusOK
}

// IsolateOf returns the isolate th is attached to, or zero if th is unknown.
func (s *Shim) IsolateOf(th isolate.Thread) isolate.Handle {
	iso, err := s.isolates.IsolateOf(th)
	if err != nil {
		return 0
	}
	return iso.Handle
}

// TearDownIsolate destroys the isolate th belongs to, with all its threads.
func (s *Shim) TearDownIsolate(th isolate.Thread) Status {
	iso, err := s.isolates.TearDown(th)
	if st := s.result(opTearDown, err); st != StatusOK {
		return st
	}
	s.logger.Info("isolate torn down",
		"isolate_id", iso.ID,
		"isolate", uint64(iso.Handle),
		"threads", iso.Threads,
	)
	return StatusOK
}

// result records the outcome of a lifecycle op and maps err to a Status.
func (s *Shim) result(op string, err error) Status {
	st := statusFor(err)
	lifecycleCallsTotal.WithLabelValues(op, st.String()).Inc()
	if err != nil {
		s.logger.Warn("lifecycle call failed", "op", op, "status", int(st), "error", err)
	}
	return st
}

func statusFor(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, isolate.ErrUnknownIsolate), errors.Is(err, isolate.ErrUnknownThread):
		return StatusUnknownHandle
	}
	// The registry has no other failure modes.
	return StatusUnknownHandle
}
