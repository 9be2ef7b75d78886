package squish

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var spriteQuery = donburi.NewQuery(filter.Contains(Transform, Sprite))

// spriteDestination computes where a sprite lands on screen: the position of
// its anchor point and the scaled size. The anchor shift by (1 - scale)
// keeps a shrinking sprite centered on its anchor instead of its top-left
// corner.
func spriteDestination(tr *TransformData, anchor, dims Vec2) (pos, size Vec2) {
	pos = Vec2{
		X: tr.Translation.X + anchor.X*(1-tr.Scale.X),
		Y: tr.Translation.Y + anchor.Y*(1-tr.Scale.Y),
	}
	size = Vec2{X: dims.X * tr.Scale.X, Y: dims.Y * tr.Scale.Y}
	return pos, size
}

// DrawSprites issues one draw call per entity with Transform and Sprite, in
// store iteration order. No sorting, batching, or culling. The transform's
// X-axis Euler angle rotates the sprite around its anchor; the tint is
// submitted as a premultiplied color scale.
func DrawSprites(w donburi.World, screen *ebiten.Image) {
	var op ebiten.DrawImageOptions
	spriteQuery.Each(w, func(entry *donburi.Entry) {
		tr := Transform.Get(entry)
		sp := Sprite.Get(entry)
		img := sp.Texture.Image()
		if img == nil {
			return
		}

		anchor := sp.Anchor.Resolve(sp.Texture.Size())
		pos, _ := spriteDestination(tr, anchor, sp.Texture.Size())

		op.GeoM.Reset()
		op.GeoM.Scale(tr.Scale.X, tr.Scale.Y)
		// The anchor offset is in destination pixels, not scaled with the
		// sprite: it is both the rotation pivot and the point placed at pos.
		op.GeoM.Translate(-anchor.X, -anchor.Y)
		if rot := tr.Rotation.EulerX(); rot != 0 {
			op.GeoM.Rotate(rot)
		}
		op.GeoM.Translate(pos.X, pos.Y)

		op.ColorScale.Reset()
		a := float32(sp.Tint.A / 255)
		op.ColorScale.Scale(float32(sp.Tint.R/255)*a, float32(sp.Tint.G/255)*a, float32(sp.Tint.B/255)*a, a)

		screen.DrawImage(img, &op)
	})
}
