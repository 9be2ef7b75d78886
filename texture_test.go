package squish

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// writeTestPNG writes a small solid PNG and returns its path.
func writeTestPNG(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 255, G: 100, B: 180, A: 255})
		}
	}
	path := filepath.Join(t.TempDir(), "sprite.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return path
}

func TestTextureStoreAcquireLoadsOnce(t *testing.T) {
	store := NewTextureStore()
	path := writeTestPNG(t, 64, 64)

	t1, err := store.Acquire(path)
	if err != nil {
		t.Fatalf("first acquire: %v", err)
	}
	t2, err := store.Acquire(path)
	if err != nil {
		t.Fatalf("second acquire: %v", err)
	}

	if t1 != t2 {
		t.Error("second acquire returned a different handle")
	}
	if t1.refs != 2 {
		t.Errorf("refs = %d, want 2", t1.refs)
	}
	if store.Len() != 1 {
		t.Errorf("store holds %d textures, want 1", store.Len())
	}
	assertVec2(t, "size", t1.Size(), Vec2{64, 64})
}

func TestTextureStoreAcquireMissingFile(t *testing.T) {
	store := NewTextureStore()
	_, err := store.Acquire(filepath.Join(t.TempDir(), "nope.png"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if store.Len() != 0 {
		t.Error("failed acquire left an entry in the store")
	}
}

func TestTextureStoreAcquireBadData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.png")
	if err := os.WriteFile(path, []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}
	store := NewTextureStore()
	if _, err := store.Acquire(path); err == nil {
		t.Fatal("expected a decode error")
	}
}

func TestTextureReleaseEvictsAtZero(t *testing.T) {
	store := NewTextureStore()
	path := writeTestPNG(t, 16, 16)

	tex, err := store.Acquire(path)
	if err != nil {
		t.Fatal(err)
	}
	tex.Retain()

	tex.Release()
	if store.Len() != 1 || tex.Image() == nil {
		t.Fatal("texture evicted while references remain")
	}

	tex.Release()
	if store.Len() != 0 {
		t.Error("texture not evicted at zero references")
	}
	if tex.Image() != nil {
		t.Error("image still present after final release")
	}
	assertVec2(t, "size after release", tex.Size(), Vec2{0, 0})

	// Extra releases on a dead handle are no-ops.
	tex.Release()
	if tex.refs != 0 {
		t.Errorf("refs after over-release = %d, want 0", tex.refs)
	}
}

func TestTextureStoreReloadsAfterEviction(t *testing.T) {
	store := NewTextureStore()
	path := writeTestPNG(t, 16, 16)

	t1, err := store.Acquire(path)
	if err != nil {
		t.Fatal(err)
	}
	t1.Release()

	t2, err := store.Acquire(path)
	if err != nil {
		t.Fatalf("re-acquire after eviction: %v", err)
	}
	if t2 == t1 {
		t.Error("evicted handle was resurrected instead of reloaded")
	}
	if t2.Image() == nil {
		t.Error("reloaded texture has no image")
	}
}

func TestStandaloneTexture(t *testing.T) {
	tex := NewTexture(ebiten.NewImage(32, 8))
	assertVec2(t, "standalone size", tex.Size(), Vec2{32, 8})
	if tex.refs != 1 {
		t.Errorf("refs = %d, want 1", tex.refs)
	}
	tex.Release()
	if tex.Image() != nil {
		t.Error("standalone texture not deallocated at zero references")
	}
}
