package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/octosurvivors/assets"
	"github.com/pthm-cable/octosurvivors/components"
	"github.com/pthm-cable/octosurvivors/platform"
)

// SpriteRenderer draws atlas sprites as upright billboards.
type SpriteRenderer struct {
	sprites  *ecs.Filter2[components.Transform, components.AtlasSprite]
	textures *platform.Textures
}

// NewSpriteRenderer creates a sprite renderer using textures loaded by the
// asset loader.
func NewSpriteRenderer(w *ecs.World, textures *platform.Textures) *SpriteRenderer {
	return &SpriteRenderer{
		sprites:  ecs.NewFilter2[components.Transform, components.AtlasSprite](w),
		textures: textures,
	}
}

// Draw renders each sprite's current atlas frame. Must be called inside
// BeginMode3D with the same camera.
func (r *SpriteRenderer) Draw(camera rl.Camera3D) {
	query := r.sprites.Query()
	for query.Next() {
		tr, sprite := query.Get()
		tex, ok := r.textures.Get(sprite.Texture)
		if !ok {
			continue
		}

		layout := assets.AtlasLayout{
			TileW:   sprite.TileW,
			TileH:   sprite.TileH,
			Columns: sprite.Columns,
			Rows:    (sprite.Len + sprite.Columns - 1) / max(sprite.Columns, 1),
		}
		fx, fy, fw, fh := layout.Frame(sprite.Index)
		w, h := sprite.Size()

		rl.DrawBillboardPro(
			camera,
			tex,
			rl.NewRectangle(fx, fy, fw, fh),
			vec3(tr.Translation),
			vec3(tr.Up()),
			rl.NewVector2(w, h),
			rl.NewVector2(w/2, h/2),
			0,
			rl.White,
		)
	}
}
