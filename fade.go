package squish

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

const (
	// fadeStep is the per-frame lerp factor pulling tint alpha toward zero.
	fadeStep = 0.025
	// fadeFloor is the alpha (0–255 scale) below which an entity is destroyed.
	fadeFloor = 0.005
)

var fadeQuery = donburi.NewQuery(filter.Contains(Sprite))

// UpdateFade decays every sprite's tint alpha toward zero and destroys
// entities whose alpha was already below the floor when the frame began.
// The floor check runs before the decay, so an entity survives exactly one
// frame past the crossing. Destruction removes all the entity's components
// and releases its texture reference.
//
// Entities are collected during iteration and removed afterwards; the world
// must not be mutated mid-query.
func UpdateFade(w donburi.World) {
	var dead []donburi.Entity
	fadeQuery.Each(w, func(entry *donburi.Entry) {
		sp := Sprite.Get(entry)
		if sp.Tint.A < fadeFloor {
			dead = append(dead, entry.Entity())
			return
		}
		sp.Tint.A += fadeStep * (0 - sp.Tint.A)
	})

	for _, e := range dead {
		entry := w.Entry(e)
		if sp := Sprite.Get(entry); sp.Texture != nil {
			sp.Texture.Release()
		}
		w.Remove(e)
	}
}
