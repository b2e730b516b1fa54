package controller

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// RegistrationManifest declares controller priorities by name, so that
// priority tuning can live in a YAML file instead of being hardcoded at
// registration call sites. Mirrors pkg/config's Load-a-YAML-struct
// convention.
type RegistrationManifest struct {
	Controllers []ManifestEntry `yaml:"controllers"`
}

// ManifestEntry names a controller and the priority it should run at.
type ManifestEntry struct {
	Name     string `yaml:"name"`
	Priority string `yaml:"priority"` // "high", "medium", or "low"
}

// ParsePriority converts the YAML priority string to a Priority value,
// defaulting to Medium for an empty or unrecognized value.
func (e ManifestEntry) ParsePriority() Priority {
	switch strings.ToLower(e.Priority) {
	case "high":
		return High
	case "low":
		return Low
	default:
		return Medium
	}
}

// ParseManifest parses a RegistrationManifest from YAML data.
func ParseManifest(data []byte) (*RegistrationManifest, error) {
	var m RegistrationManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// ApplyManifest re-prioritizes already-registered controllers whose name
// matches an entry in the manifest, then re-sorts the registry.
func (r *Registry) ApplyManifest(manifest *RegistrationManifest) {
	if manifest == nil {
		return
	}
	priorities := make(map[string]Priority, len(manifest.Controllers))
	for _, e := range manifest.Controllers {
		priorities[e.Name] = e.ParsePriority()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.entries {
		if p, ok := priorities[r.entries[i].ctrl.Name()]; ok {
			r.entries[i].priority = p
		}
	}
	r.sortLocked()
}
