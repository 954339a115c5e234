// Package dump prints generated levels to a writer for quick inspection
// without taking over the terminal.
package dump

import (
	"fmt"
	"io"

	"github.com/gookit/color"

	"github.com/samdwyer/sectordelve/internal/mapgen"
)

var (
	colorWall    = color.Style{color.FgGray}
	colorFloor   = color.Style{color.FgWhite}
	colorHallway = color.Style{color.FgBlue}
	colorExit    = color.Style{color.FgGreen, color.OpBold}
	colorSpawn   = color.Style{color.FgYellow, color.OpBold}
)

// Write prints the level with ANSI colors, the spawn marked '@', followed
// by a one-line summary.
func Write(w io.Writer, level *mapgen.Level) error {
	m := level.Map
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			var cell string
			if x == level.Spawn.X && y == level.Spawn.Y {
				cell = colorSpawn.Sprint("@")
			} else {
				cell = styleFor(m.At(x, y)).Sprint(string(m.At(x, y).Rune()))
			}
			if _, err := io.WriteString(w, cell); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "seed %d  rooms %d  hallways %d  exit (%d,%d)\n",
		level.Seed, len(level.Rooms), len(level.Hallways), level.Exit.X, level.Exit.Y)
	return err
}

// Plain renders the level without colors, the spawn marked '@'.
func Plain(level *mapgen.Level) string {
	m := level.Map
	out := make([]rune, 0, (m.Width+1)*m.Height)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if x == level.Spawn.X && y == level.Spawn.Y {
				out = append(out, '@')
				continue
			}
			out = append(out, m.At(x, y).Rune())
		}
		out = append(out, '\n')
	}
	return string(out)
}

func styleFor(tile mapgen.Tile) color.Style {
	switch tile {
	case mapgen.TileFloor:
		return colorFloor
	case mapgen.TileHallway:
		return colorHallway
	case mapgen.TileExit:
		return colorExit
	default:
		return colorWall
	}
}
