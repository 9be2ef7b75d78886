package squish

import (
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var squishQuery = donburi.NewQuery(filter.Contains(Transform, Sprite, Squish))

// UpdateSquish advances every squish timer by dt seconds and writes the
// oscillating scale into the entity's transform. Only the X and Y scale
// components are written; Z is untouched. Timers reset to exactly 0 once
// they exceed 2π.
//
// The envelope axes cross over: Y oscillates inside the X envelope and X
// inside the Y envelope, which couples the two axes into a single wobble
// rather than two independent pulses.
func UpdateSquish(w donburi.World, dt float64) {
	squishQuery.Each(w, func(entry *donburi.Entry) {
		sq := Squish.Get(entry)
		tr := Transform.Get(entry)

		sq.Timer += dt

		tr.Scale.Y = (math.Sin(sq.Timer*sq.Frequency)/4.5 + 0.5) * sq.Scale.X
		tr.Scale.X = (math.Cos(sq.Timer*sq.Frequency+math.Sin(sq.Timer/2))/4.5 + 0.5) * sq.Scale.Y

		if sq.Timer > 2*math.Pi {
			sq.Timer = 0
		}
	})
}
