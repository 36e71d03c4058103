package export

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"slimeatlas/internal/geom"
)

func TestNewSurfaceRejectsEmpty(t *testing.T) {
	for _, sz := range []geom.Size{{W: 0, H: 10}, {W: 10, H: 0}, {W: -1, H: -1}} {
		if _, err := NewSurface(sz); !errors.Is(err, ErrEmptySurface) {
			t.Errorf("NewSurface(%v) err = %v, want ErrEmptySurface", sz, err)
		}
	}
}

func TestWriteProducesPNG(t *testing.T) {
	var buf bytes.Buffer
	req := Request{
		Center:  geom.Point{X: 0, Z: 0},
		Scale:   2,
		Size:    geom.Size{W: 128, H: 96},
		Marked:  func(c geom.Chunk) bool { return c.X == 0 && c.Z == 0 },
		Caption: "seed 0",
	}
	f, err := Write(&buf, req)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if len(f.Visible) == 0 || len(f.Marked) != 1 {
		t.Errorf("frame visible=%d marked=%d", len(f.Visible), len(f.Marked))
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 128 || b.Dy() != 96 {
		t.Errorf("bounds = %v", b)
	}
}

func TestRenderLeavesUnpaintedPixelsTransparent(t *testing.T) {
	// Pixel (100,40) lies inside chunk (0,-1), clear of its outline and of the marker.
	img, _, err := Render(Request{Center: geom.Point{X: 8, Z: 8}, Scale: 4, Size: geom.Size{W: 256, H: 256}})
	if err != nil {
		t.Fatal(err)
	}
	if _, _, _, a := img.At(100, 40).RGBA(); a != 0 {
		t.Errorf("alpha at (100,40) = %d, want 0", a)
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	path := FileName(dir, geom.Point{X: 100, Z: -200}, 1.5)
	if filepath.Base(path) != "atlas_100_-200_x1.5.png" {
		t.Errorf("FileName = %s", path)
	}
	if _, err := Save(path, Request{Center: geom.Point{X: 100, Z: -200}, Scale: 1.5, Size: geom.Size{W: 64, H: 64}}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if st, err := os.Stat(path); err != nil || st.Size() == 0 {
		t.Errorf("stat = %v, %v", st, err)
	}
}

func TestSaveBadDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "a.png")
	if _, err := Save(path, Request{Scale: 1, Size: geom.Size{W: 8, H: 8}}); err == nil {
		t.Error("Save into a missing directory should fail")
	}
}
