package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/ggrect"
	"github.com/gogpu/ggrect/backend/ebitengine"
	"github.com/gogpu/ggrect/internal/scenefile"
)

// sceneGame shows a static scene.
type sceneGame struct {
	scene   *scenefile.Scene
	bg      ggrect.RGBA
	backend *ebitengine.Backend
	opts    []ggrect.DrawOption
	err     error
}

func (g *sceneGame) Update() error {
	return g.err
}

func (g *sceneGame) Draw(screen *ebiten.Image) {
	screen.Fill(g.bg)
	g.backend.SetTarget(screen)
	g.err = g.scene.Draw(g.backend, g.opts...)
}

func (g *sceneGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.scene.Width, g.scene.Height
}

func runWindow(scene *scenefile.Scene, opts []ggrect.DrawOption) error {
	bg, err := scene.BackgroundColor()
	if err != nil {
		return err
	}
	g := &sceneGame{
		scene:   scene,
		bg:      bg,
		backend: ebitengine.New(nil, ebitengine.WithAntiAlias(true)),
		opts:    opts,
	}
	ebiten.SetWindowSize(scene.Width, scene.Height)
	ebiten.SetWindowTitle("ggrect")
	return ebiten.RunGame(g)
}
