package systems

import (
	"time"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/octosurvivors/components"
)

// AnimationSystem steps atlas sprites through their frames.
type AnimationSystem struct {
	filter *ecs.Filter2[components.AnimationTimer, components.AtlasSprite]
}

// NewAnimationSystem creates a new animation system.
func NewAnimationSystem(w *ecs.World) *AnimationSystem {
	return &AnimationSystem{
		filter: ecs.NewFilter2[components.AnimationTimer, components.AtlasSprite](w),
	}
}

// Update ticks every animation timer by dt and advances the sprite one
// frame on each completion, wrapping at the atlas length.
func (s *AnimationSystem) Update(dt time.Duration) {
	query := s.filter.Query()
	for query.Next() {
		anim, sprite := query.Get()
		if anim.Timer.Tick(dt).JustFinished() {
			sprite.Advance()
		}
	}
}
