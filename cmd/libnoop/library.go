package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/seantiz/nativeshim/internal/config"
	"github.com/seantiz/nativeshim/internal/delegate"
	"github.com/seantiz/nativeshim/internal/diag"
	"github.com/seantiz/nativeshim/internal/entry"
	"github.com/seantiz/nativeshim/internal/isolate"
)

// library holds everything the exported functions share for the lifetime of
// the host process.
type library struct {
	logger   *slog.Logger
	isolates *isolate.Registry
	shim     *entry.Shim
	diag     *diag.Server
	diagAddr string
}

var (
	lib     *library
	libOnce sync.Once
)

// current returns the process-wide library, building it on the first call
// from any exported function.
func current() *library {
	libOnce.Do(func() {
		lib = newLibrary(config.Load(), os.Stderr)
	})
	return lib
}

// newLibrary wires the shim to the delegate singleton. Logs go to w so the
// host's stdout stays untouched.
func newLibrary(cfg config.Config, w io.Writer) *library {
	logger := config.NewLogger(w, cfg.LogFormat, cfg.LogLevel)
	reg := isolate.NewRegistry()

	l := &library{
		logger:   logger,
		isolates: reg,
		shim:     entry.NewShim(delegate.Instance(), reg, logger),
	}

	if cfg.DiagAddr != "" {
		srv := diag.NewServer(cfg.DiagAddr, reg, logger)
		addr, err := srv.Start()
		if err != nil {
			logger.Error("diagnostics disabled", "addr", cfg.DiagAddr, "error", err)
		} else {
			l.diag = srv
			l.diagAddr = addr
		}
	}

	logger.Debug("library initialized", "diag_addr", cfg.DiagAddr)
	return l
}

func (l *library) close(ctx context.Context) error {
	if l.diag == nil {
		return nil
	}
	return l.diag.Shutdown(ctx)
}
