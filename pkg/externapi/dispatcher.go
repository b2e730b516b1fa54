// Package externapi implements the typed-JSON transaction envelope that
// carries values between an untrusted front-end and the UiDriver core.
// Grounded in extern_api.h/extern_api.cpp's ExternApiServer, redesigned
// around idiomatic Go multi-return instead of C++ out-parameters.
package externapi

import (
	"fmt"
	"log"
	"sync"

	"github.com/devicelab-dev/uicore/pkg/model"
	"github.com/devicelab-dev/uicore/pkg/uilog"
)

// Handler processes one function id. It returns handled=false to let a
// later-registered handler try the same call; a non-nil err always stops
// the chain, matching the original's first-error-wins Call() semantics.
type Handler func(functionID string, caller *model.Value, in []model.Value) (out []model.Value, handled bool, err *model.ApiCallErr)

// entry pairs a handler with the id it was registered under, so it can be
// removed later by that id (the original removes by function pointer
// identity, which Go closures don't offer a stable equivalent of).
type entry struct {
	id      string
	handler Handler
}

// Dispatcher holds the ordered chain of registered handlers. The zero value
// is not usable; construct with NewDispatcher.
type Dispatcher struct {
	mu         sync.RWMutex
	entries    []entry
	untrack    model.ErrCode
	untrackMsg string
	untrackM   sync.Mutex
	log        *log.Logger
}

// NewDispatcher builds an empty Dispatcher. Its default logger writes to
// uilog's shared sink, the same sink SetLogger's caller can build their own
// *log.Logger over.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{log: log.New(uilog.GetWriter(), "[externapi] ", log.LstdFlags)}
}

// SetLogger overrides the dispatcher's diagnostic logger, matching
// uidriver.UiDriver.SetLogger's injectable-logger convention.
func (d *Dispatcher) SetLogger(l *log.Logger) {
	d.log = l
}

// AddHandler appends a handler under id, registered before the first Call as
// the original mandates via constructor-time registration.
func (d *Dispatcher) AddHandler(id string, h Handler) {
	if h == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.entries = append(d.entries, entry{id: id, handler: h})
}

// RemoveHandler removes every handler registered under id.
func (d *Dispatcher) RemoveHandler(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	kept := d.entries[:0]
	for _, e := range d.entries {
		if e.id != id {
			kept = append(kept, e)
		}
	}
	d.entries = kept
}

// ReportUntrackedError lets deep helper code signal a failure without
// threading an error return through every call site. ApiTransact takes the
// worse (numerically larger) of this and the handler's own returned error,
// carrying msg into the resulting ApiCallErr instead of a generic string.
func (d *Dispatcher) ReportUntrackedError(code model.ErrCode, msg string) {
	d.untrackM.Lock()
	defer d.untrackM.Unlock()
	if code > d.untrack {
		d.untrack = code
		d.untrackMsg = msg
	}
}

func (d *Dispatcher) resetUntrackedError() {
	d.untrackM.Lock()
	defer d.untrackM.Unlock()
	d.untrack = model.NoError
	d.untrackMsg = ""
}

func (d *Dispatcher) takeUntrackedError() (model.ErrCode, string) {
	d.untrackM.Lock()
	defer d.untrackM.Unlock()
	return d.untrack, d.untrackMsg
}

// Call iterates handlers in registration order; the first one to accept
// (handled=true) wins. A handler panic is recovered and converted to
// InternalError, mirroring the original's try/catch around each invocation.
func (d *Dispatcher) Call(functionID string, caller *model.Value, in []model.Value) (out []model.Value, err *model.ApiCallErr) {
	d.mu.RLock()
	entries := make([]entry, len(d.entries))
	copy(entries, d.entries)
	d.mu.RUnlock()

	for _, e := range entries {
		o, handled, callErr := d.invoke(e, functionID, caller, in)
		if callErr != nil {
			return nil, callErr
		}
		if handled {
			return o, nil
		}
	}
	d.log.Printf("no handler registered for %q", functionID)
	return nil, model.NewApiCallErr(model.InternalError, fmt.Sprintf("No handler found for extern-api: %s", functionID))
}

func (d *Dispatcher) invoke(e entry, functionID string, caller *model.Value, in []model.Value) (out []model.Value, handled bool, err *model.ApiCallErr) {
	defer func() {
		if r := recover(); r != nil {
			d.log.Printf("handler %q panicked handling %q: %v", e.id, functionID, r)
			out, handled = nil, false
			err = model.NewApiCallErr(model.InternalError, fmt.Sprintf("Exception raised when handling '%s': %v", functionID, r))
		}
	}()
	return e.handler(functionID, caller, in)
}
