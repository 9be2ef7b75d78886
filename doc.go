// Package squish is a small real-time sprite demo built on [Ebitengine] and
// the [Donburi] entity component system.
//
// Pressing any letter key spawns a sprite at a random position. Each sprite
// wobbles with a sinusoidal "squish" scale while its tint alpha decays toward
// zero; once the alpha is effectively gone the entity is destroyed and its
// texture reference released.
//
// The demo runs three systems per frame, in fixed order:
//
//	UpdateSquish — advances each squish timer and writes the oscillating
//	               scale into the entity's transform
//	UpdateFade   — decays tint alpha and destroys fully faded entities
//	DrawSprites  — issues one draw call per sprite entity
//
// Entities are created exclusively through [SpawnSprite], which guarantees
// that every entity carrying a Squish component also carries Transform and
// Sprite. Textures are shared handles from a [TextureStore] and are
// reference counted: the pixel data lives until the last holder releases it.
//
// The runnable demo is in cmd/squish; cmd/squish-stress drives the systems
// headless under a profiler.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package squish
