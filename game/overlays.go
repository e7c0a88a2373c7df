package game

import "github.com/pthm-cable/octosurvivors/input"

// OverlayID uniquely identifies an overlay.
type OverlayID string

// Standard overlay IDs.
const (
	OverlayInspector   OverlayID = "inspector"
	OverlayDiagnostics OverlayID = "diagnostics"
)

// OverlayDescriptor defines an overlay that can be toggled.
type OverlayDescriptor struct {
	ID          OverlayID // Unique identifier
	Name        string    // Display name
	Description string    // What this overlay shows
	Key         input.Key // Toggle key (KeyNone = no key)
	Default     bool      // Enabled at startup
}

// OverlayRegistry manages overlay state and metadata.
type OverlayRegistry struct {
	descriptors []OverlayDescriptor
	byID        map[OverlayID]OverlayDescriptor
	enabled     map[OverlayID]bool
}

// NewOverlayRegistry creates a registry with default overlays.
func NewOverlayRegistry() *OverlayRegistry {
	reg := &OverlayRegistry{
		byID:    make(map[OverlayID]OverlayDescriptor),
		enabled: make(map[OverlayID]bool),
	}
	reg.Register(OverlayDescriptor{
		ID:          OverlayInspector,
		Name:        "World Inspector",
		Description: "Entity list and selected entity components",
		Key:         input.KeyF1,
		Default:     true,
	})
	reg.Register(OverlayDescriptor{
		ID:          OverlayDiagnostics,
		Name:        "Diagnostics",
		Description: "Frame time, state machines and system timings",
		Key:         input.KeyF3,
		Default:     true,
	})
	return reg
}

// Register adds an overlay to the registry.
func (r *OverlayRegistry) Register(desc OverlayDescriptor) {
	r.descriptors = append(r.descriptors, desc)
	r.byID[desc.ID] = desc
	r.enabled[desc.ID] = desc.Default
}

// Toggle switches an overlay on/off and returns the new state.
func (r *OverlayRegistry) Toggle(id OverlayID) bool {
	if _, ok := r.byID[id]; !ok {
		return false
	}
	r.enabled[id] = !r.enabled[id]
	return r.enabled[id]
}

// IsEnabled returns whether an overlay is active.
func (r *OverlayRegistry) IsEnabled(id OverlayID) bool {
	return r.enabled[id]
}

// All returns all registered overlays in registration order.
func (r *OverlayRegistry) All() []OverlayDescriptor {
	return r.descriptors
}

// HandleInput toggles every overlay whose key was just pressed.
func (r *OverlayRegistry) HandleInput(t *input.Tracker) {
	for _, desc := range r.descriptors {
		if desc.Key != input.KeyNone && t.JustPressed(desc.Key) {
			r.Toggle(desc.ID)
		}
	}
}
