package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/sectordelve/internal/entity"
	"github.com/samdwyer/sectordelve/internal/mapgen"
)

// Renderer draws a generated level and the player to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the level, the player, and a one-line status bar. When the
// terminal is smaller than the map it shows a notice instead.
func (r *Renderer) Render(level *mapgen.Level, player *entity.Player, depth int, onExit bool) {
	r.screen.beginFrame()

	m := level.Map
	if !r.screen.FitsLevel(m.Width, m.Height) {
		r.putString(0, 0, fmt.Sprintf("terminal too small: need %dx%d", m.Width, m.Height+1))
		r.screen.endFrame()
		return
	}

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			tile := m.At(x, y)
			r.screen.put(x, y, tile.Rune(), tileStyle(tile))
		}
	}

	playerStyle := tcell.StyleDefault.
		Foreground(tcell.ColorYellow).
		Bold(true)
	r.screen.put(player.X, player.Y, player.Symbol, playerStyle)

	status := fmt.Sprintf("depth %d  seed %d  (%d,%d)", depth, level.Seed, player.X, player.Y)
	if onExit {
		status += "  press > to descend"
	}
	r.putString(0, m.Height, status)

	r.screen.endFrame()
}

// tileStyle maps a tile kind to its display style.
func tileStyle(tile mapgen.Tile) tcell.Style {
	switch tile {
	case mapgen.TileWall:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	case mapgen.TileFloor:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	case mapgen.TileHallway:
		return tcell.StyleDefault.Foreground(tcell.ColorSlateGray)
	case mapgen.TileExit:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	default:
		return tcell.StyleDefault
	}
}

// putString writes a plain white message starting at the given cell.
func (r *Renderer) putString(x, y int, msg string) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range msg {
		r.screen.put(x+i, y, ch, style)
	}
}
