// Command ggrectdemo renders a rectangle scene to a PNG file or an
// ebiten window.
//
//	ggrectdemo -scene scene.toml -output out.png
//	ggrectdemo -scene scene.yaml -window
//
// Without -scene a built-in demo is drawn.
package main

import (
	"flag"
	"image/png"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/ggrect"
	"github.com/gogpu/ggrect/backend/raster"
	"github.com/gogpu/ggrect/internal/scenefile"
)

func main() {
	var (
		scenePath = flag.String("scene", "", "scene file (.toml, .yaml or .yml)")
		output    = flag.String("output", "ggrect.png", "output file")
		window    = flag.Bool("window", false, "show the scene in a window instead of writing a PNG")
		segments  = flag.Int("segments", ggrect.DefaultRoundSegments, "segments per round fill corner")
		verbose   = flag.Bool("v", false, "log skipped layers and dropped triangles")
	)
	flag.Parse()

	if *verbose {
		ggrect.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	scene := demoScene()
	if *scenePath != "" {
		s, err := scenefile.Load(*scenePath)
		if err != nil {
			log.Fatalf("Failed to load scene: %v", err)
		}
		scene = s
	}
	opts := []ggrect.DrawOption{ggrect.WithRoundSegments(*segments)}

	if *window {
		if err := runWindow(scene, opts); err != nil {
			log.Fatalf("Window failed: %v", err)
		}
		return
	}

	if err := renderPNG(scene, *output, opts); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	log.Printf("Scene saved to %s (%dx%d)\n", *output, scene.Width, scene.Height)
}

func renderPNG(scene *scenefile.Scene, path string, opts []ggrect.DrawOption) error {
	bg, err := scene.BackgroundColor()
	if err != nil {
		return err
	}
	b := raster.NewImage(scene.Width, scene.Height)
	b.Clear(bg)
	if err := scene.Draw(b, opts...); err != nil {
		return err
	}
	if n := b.Dropped(); n > 0 {
		log.Printf("Dropped %d non-finite triangles", n)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, b.Image()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
