package controller

import (
	"sync"

	"github.com/devicelab-dev/uicore/pkg/uilog"
)

// Provider installs zero or more Controllers for a given device on demand,
// mirroring the original engine's UiControllerProvider function type.
type Provider func(device string) []Controller

type entry struct {
	priority Priority
	seq      int
	ctrl     Controller
}

// Registry tracks the set of registered controllers and resolves the
// currently active one for a device. All access is serialized by a single
// mutex, matching the original engine's single controllerAccessMutex_.
type Registry struct {
	mu          sync.Mutex
	entries     []entry
	provider    Provider
	installedOn map[string]bool
	nextSeq     int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{installedOn: map[string]bool{}}
}

// RegisterControllerProvider sets the factory used by InstallForDevice.
func (r *Registry) RegisterControllerProvider(p Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.provider = p
}

// RegisterController adds c to the registry at the given priority. Ties
// between equal priorities resolve to insertion order, which a stable sort
// over descending priority preserves automatically.
func (r *Registry) RegisterController(c Controller, priority Priority) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry{priority: priority, seq: r.nextSeq, ctrl: c})
	r.nextSeq++
	r.sortLocked()
}

// RemoveController removes every controller with the given name.
func (r *Registry) RemoveController(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.entries[:0]
	for _, e := range r.entries {
		if e.ctrl.Name() != name {
			kept = append(kept, e)
		}
	}
	r.entries = kept
}

// RemoveAllControllers clears the registry entirely.
func (r *Registry) RemoveAllControllers() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = nil
	r.installedOn = map[string]bool{}
}

// InstallForDevice installs controllers for device via the registered
// provider, at most once per device. The mutex is held for the provider call
// itself, not just the bookkeeping around it, so two concurrent callers for
// the same device can't both observe installedOn[device]==false and both
// invoke provider — matching the original engine's single
// controllerAccessMutex_ serializing every public operation.
func (r *Registry) InstallForDevice(device string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.provider == nil || r.installedOn[device] {
		return
	}
	installed := r.provider(device)
	for _, c := range installed {
		r.entries = append(r.entries, entry{priority: Medium, seq: r.nextSeq, ctrl: c})
		r.nextSeq++
	}
	r.installedOn[device] = true
	r.sortLocked()
	uilog.Info("registry", "installed %d controller(s) for device %q", len(installed), device)
}

// GetController returns the highest-priority workable controller serving
// device (or any device, if a controller's TargetDevice is empty).
func (r *Registry) GetController(device string) (Controller, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.entries {
		target := e.ctrl.TargetDevice()
		if target != "" && target != device {
			continue
		}
		if e.ctrl.IsWorkable() {
			return e.ctrl, true
		}
	}
	return nil, false
}

// sortLocked reorders entries by descending priority, stably preserving
// insertion order within a priority tier. Caller must hold r.mu.
func (r *Registry) sortLocked() {
	entries := r.entries
	for i := 1; i < len(entries); i++ {
		for j := i; j > 0 && entries[j].priority > entries[j-1].priority; j-- {
			entries[j], entries[j-1] = entries[j-1], entries[j]
		}
	}
}
