// Command sweptdemo is an interactive visual demo of the engine: one box
// follows the mouse cursor and slides along anything it collides with,
// while a handful of static boxes sit in the world. It is a thin consumer
// of the engine, not part of it.
package main

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/duskfall/swept2d/config"
	"github.com/duskfall/swept2d/world"
)

const (
	screenWidth  = 640
	screenHeight = 480
	playerSize   = 24
)

type demoGame struct {
	w        *world.World[string]
	playerW  float64
	playerH  float64
	lastCols int
}

func newDemoGame() *demoGame {
	w, err := config.NewWorld[string](config.DefaultWorldConfig())
	if err != nil {
		log.Fatalf("sweptdemo: %v", err)
	}

	walls := []struct{ l, t, width, height float64 }{
		{0, 0, screenWidth, 16},
		{0, screenHeight - 16, screenWidth, 16},
		{0, 0, 16, screenHeight},
		{screenWidth - 16, 0, 16, screenHeight},
		{200, 200, 120, 40},
		{400, 100, 40, 160},
	}
	for i, wall := range walls {
		name := "wall" + string(rune('A'+i))
		if err := w.Add(name, wall.l, wall.t, wall.width, wall.height); err != nil {
			log.Printf("sweptdemo: add %s: %v", name, err)
		}
	}

	if err := w.Add("player", screenWidth/2, screenHeight/2, playerSize, playerSize); err != nil {
		log.Fatalf("sweptdemo: add player: %v", err)
	}

	return &demoGame{w: w, playerW: playerSize, playerH: playerSize}
}

func (g *demoGame) Update() error {
	mx, my := ebiten.CursorPosition()
	goalL := float64(mx) - g.playerW/2
	goalT := float64(my) - g.playerH/2

	cols, err := g.w.Move("player", goalL, goalT, nil, nil)
	if err != nil {
		return err
	}
	g.lastCols = len(cols)
	for _, c := range cols {
		slide, err := c.Slide()
		if err != nil {
			continue
		}
		if _, err := g.w.Move("player", slide.X, slide.Y, nil, nil); err != nil {
			return err
		}
	}
	return nil
}

func (g *demoGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{20, 20, 28, 255})

	for _, item := range g.w.QueryBox(0, 0, screenWidth, screenHeight) {
		b, err := g.w.GetBox(item)
		if err != nil {
			continue
		}
		clr := color.RGBA{90, 110, 140, 255}
		if item == "player" {
			clr = color.RGBA{230, 180, 60, 255}
		}
		vector.DrawFilledRect(screen, float32(b.Left), float32(b.Top), float32(b.Width), float32(b.Height), clr, false)
	}
}

func (g *demoGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	game := newDemoGame()

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("swept2d demo")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
