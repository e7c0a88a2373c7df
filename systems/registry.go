package systems

// SystemInfo describes a simulation system for UI display.
type SystemInfo struct {
	ID          string // Internal identifier (used for perf tracking)
	Name        string // Display name
	Description string // What this system does
	Category    string // Grouping (e.g., "player", "camera")
}

// SystemRegistry holds metadata about all systems.
// This centralizes system naming so the UI and perf tracker stay in sync.
type SystemRegistry struct {
	systems []SystemInfo
	byID    map[string]SystemInfo
}

// NewSystemRegistry creates a registry with all known systems.
func NewSystemRegistry() *SystemRegistry {
	reg := &SystemRegistry{
		byID: make(map[string]SystemInfo),
	}
	reg.registerDefaults()
	return reg
}

// System IDs, also used as perf phase names.
const (
	IDAssets        = "assets"
	IDSpawnPlayer   = "spawn_player"
	IDAnimateSprite = "animate_sprite"
	IDFaceCamera    = "face_camera"
	IDToggleCursor  = "toggle_cursor"
	IDFlyCamera     = "fly_camera"
	IDLifetime      = "lifetime"
	IDTowerShooting = "tower_shooting"
)

// registerDefaults adds all known systems to the registry, in schedule order.
// Update this when adding new systems.
func (r *SystemRegistry) registerDefaults() {
	// Loading
	r.Register(SystemInfo{ID: IDAssets, Name: "Assets", Description: "Polls the asset collection until it resolves", Category: "loading"})

	// Player sprite
	r.Register(SystemInfo{ID: IDSpawnPlayer, Name: "Spawn Player", Description: "Spawns the player sprite once assets are ready", Category: "player"})
	r.Register(SystemInfo{ID: IDAnimateSprite, Name: "Animate Sprite", Description: "Steps atlas frames on a repeating timer", Category: "player"})
	r.Register(SystemInfo{ID: IDFaceCamera, Name: "Face Camera", Description: "Turns billboards toward the camera", Category: "player"})

	// Camera
	r.Register(SystemInfo{ID: IDToggleCursor, Name: "Toggle Cursor", Description: "Switches between locked and free camera", Category: "camera"})
	r.Register(SystemInfo{ID: IDFlyCamera, Name: "Fly Camera", Description: "Moves the camera in free mode", Category: "camera"})

	// Cleanup
	r.Register(SystemInfo{ID: IDLifetime, Name: "Lifetime", Description: "Removes expired entities and their children", Category: "lifecycle"})

	// Combat
	r.Register(SystemInfo{ID: IDTowerShooting, Name: "Tower Shooting", Description: "Spawns bullets from towers", Category: "combat"})
}

// Register adds a system to the registry.
func (r *SystemRegistry) Register(info SystemInfo) {
	r.systems = append(r.systems, info)
	r.byID[info.ID] = info
}

// Get returns system info by ID.
func (r *SystemRegistry) Get(id string) (SystemInfo, bool) {
	info, ok := r.byID[id]
	return info, ok
}

// GetName returns the display name for a system ID.
// Falls back to the ID itself if not found.
func (r *SystemRegistry) GetName(id string) string {
	if info, ok := r.byID[id]; ok {
		return info.Name
	}
	return id
}

// All returns all registered systems.
func (r *SystemRegistry) All() []SystemInfo {
	return r.systems
}

// ByCategory returns systems filtered by category.
func (r *SystemRegistry) ByCategory(category string) []SystemInfo {
	var result []SystemInfo
	for _, info := range r.systems {
		if info.Category == category {
			result = append(result, info)
		}
	}
	return result
}

// Categories returns all unique categories.
func (r *SystemRegistry) Categories() []string {
	seen := make(map[string]bool)
	var cats []string
	for _, info := range r.systems {
		if !seen[info.Category] {
			seen[info.Category] = true
			cats = append(cats, info.Category)
		}
	}
	return cats
}

// IDs returns all system IDs in registration order.
func (r *SystemRegistry) IDs() []string {
	ids := make([]string, len(r.systems))
	for i, info := range r.systems {
		ids[i] = info.ID
	}
	return ids
}
