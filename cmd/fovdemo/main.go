// Command fovdemo is a terminal demonstration of the fov package: it digs a
// small cave, drops a player in it, and recomputes field of view as the
// player walks around with the arrow keys, using whichever algorithm the
// user cycles to with Tab.
package main

import (
	"fmt"
	"math/rand"
	"os"

	tcell "github.com/gdamore/tcell/v2"
	runewidth "github.com/mattn/go-runewidth"

	"github.com/anaseto/fov/fov"
	"github.com/anaseto/fov/paths"
)

const (
	mapWidth  = 60
	mapHeight = 25
)

var algorithms = []fov.Algorithm{
	fov.Basic,
	fov.Diamond,
	fov.Shadow,
	fov.Permissive(3),
	fov.Restrictive,
	fov.SymmetricShadowcast,
}

type game struct {
	screen   tcell.Screen
	m        *fov.Map
	player   paths.Point
	algoIdx  int
	radius   int
	lightWls bool
	status   string
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.SetStyle(tcell.StyleDefault)
	screen.HideCursor()

	m, err := fov.NewMap(mapWidth, mapHeight)
	if err != nil {
		return err
	}
	rng := rand.New(rand.NewSource(1))
	digCave(rng, m, 0.45)
	start := findFloor(rng, m)
	pr := paths.NewPathRange(paths.NewRange(0, 0, mapWidth, mapHeight))
	keepMainComponent(m, pr, start)

	g := &game{
		screen:   screen,
		m:        m,
		player:   findFloor(rng, m),
		radius:   8,
		lightWls: true,
	}
	g.recompute()
	g.draw()

	for {
		ev := screen.PollEvent()
		switch tev := ev.(type) {
		case *tcell.EventKey:
			if !g.handleKey(tev) {
				return nil
			}
		case *tcell.EventResize:
			screen.Sync()
		}
		g.draw()
	}
}

func (g *game) handleKey(ev *tcell.EventKey) bool {
	dx, dy := 0, 0
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		dy = -1
	case tcell.KeyDown:
		dy = 1
	case tcell.KeyLeft:
		dx = -1
	case tcell.KeyRight:
		dx = 1
	case tcell.KeyTab:
		g.algoIdx = (g.algoIdx + 1) % len(algorithms)
	}
	switch ev.Rune() {
	case 'q':
		return false
	case 'w':
		g.lightWls = !g.lightWls
	case '+':
		g.radius++
	case '-':
		if g.radius > 0 {
			g.radius--
		}
	}
	if dx != 0 || dy != 0 {
		np := g.player.Shift(dx, dy)
		if g.m.InBounds(np.X, np.Y) && g.m.IsWalkable(np.X, np.Y) {
			g.player = np
		}
	}
	g.recompute()
	return true
}

func (g *game) recompute() {
	err := g.m.ComputeFOV(g.player.X, g.player.Y, g.radius, g.lightWls, algorithms[g.algoIdx])
	if err != nil {
		// A programming error (bad POV or algorithm) would show up here
		// during development; the demo just reports it on the status line.
		g.status = err.Error()
	} else {
		g.status = ""
	}
}

func (g *game) draw() {
	g.screen.Clear()
	for y := 0; y < g.m.Height(); y++ {
		for x := 0; x < g.m.Width(); x++ {
			r, style := g.cellGlyph(x, y)
			g.screen.SetContent(x, y, r, nil, style)
		}
	}
	g.screen.SetContent(g.player.X, g.player.Y, '@',
		nil, tcell.StyleDefault.Foreground(tcell.ColorYellow))
	g.drawStatus()
	g.screen.Show()
}

func (g *game) cellGlyph(x, y int) (rune, tcell.Style) {
	style := tcell.StyleDefault
	if !g.m.IsInFOV(x, y) {
		return ' ', style
	}
	if !g.m.IsWalkable(x, y) {
		return '#', style.Foreground(tcell.ColorGray)
	}
	return '.', style.Foreground(tcell.ColorSilver)
}

func (g *game) drawStatus() {
	line := fmt.Sprintf("algo=%s radius=%d light_walls=%v  arrows move, tab cycles algorithm, w toggles walls, +/- radius, q quits",
		algorithms[g.algoIdx], g.radius, g.lightWls)
	if g.status != "" {
		line = g.status + "  " + line
	}
	col := 0
	for _, r := range line {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			w = 1
		}
		if col+w > g.m.Width() {
			break
		}
		g.screen.SetContent(col, g.m.Height(), r, nil, tcell.StyleDefault.Reverse(true))
		col += w
	}
}
