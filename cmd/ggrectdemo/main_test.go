package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestDemoSceneValid(t *testing.T) {
	if err := demoScene().Validate(); err != nil {
		t.Fatalf("demoScene().Validate() = %v", err)
	}
}

func TestRenderPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	s := demoScene()
	if err := renderPNG(s, path, nil); err != nil {
		t.Fatalf("renderPNG() = %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() = %v", err)
	}
	if b := img.Bounds(); b.Dx() != s.Width || b.Dy() != s.Height {
		t.Errorf("image size = %dx%d, want %dx%d", b.Dx(), b.Dy(), s.Width, s.Height)
	}
	// Inside the first square: opaque yellow over the background.
	r, g, b, a := img.At(120, 120).RGBA()
	if r>>8 != 0xff || g>>8 != 0xcc || b>>8 != 0 || a>>8 != 0xff {
		t.Errorf("At(120, 120) = (%d %d %d %d), want ffcc00ff", r>>8, g>>8, b>>8, a>>8)
	}
}
