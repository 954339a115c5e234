// Package mapgen procedurally generates connected, tile-based dungeon
// maps: the map is partitioned into sectors, each sector gets a room, a
// spanning-tree-plus-extras graph picks which neighbors to link, adjacent
// rooms occasionally fuse, and jagged hallways connect the rest.
package mapgen

import (
	"math/rand"
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// Tile represents a single map tile.
type Tile rune

const (
	// TileWall is impassable rock.
	TileWall Tile = '#'
	// TileFloor is a room interior tile.
	TileFloor Tile = '.'
	// TileHallway is a carved corridor tile.
	TileHallway Tile = ','
	// TileExit is the single level exit; it sits on a room floor tile.
	TileExit Tile = '>'
)

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return t == TileFloor || t == TileHallway || t == TileExit
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}

// TileMap is the finished dense tile grid. Out-of-bounds reads return
// walls, so callers never need their own bounds checks.
type TileMap struct {
	Width  int
	Height int
	Tiles  [][]Tile
}

// newTileMap creates a map filled with walls.
func newTileMap(width, height int) *TileMap {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = TileWall
		}
	}
	return &TileMap{Width: width, Height: height, Tiles: tiles}
}

// At returns the tile at the given position, or TileWall out of bounds.
func (m *TileMap) At(x, y int) Tile {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return TileWall
	}
	return m.Tiles[y][x]
}

// IsPassable returns true if the given position can be walked on.
func (m *TileMap) IsPassable(x, y int) bool {
	return m.At(x, y).IsPassable()
}

// String renders the map as rows of runes, top row first.
func (m *TileMap) String() string {
	var sb strings.Builder
	sb.Grow((m.Width + 1) * m.Height)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			sb.WriteRune(m.Tiles[y][x].Rune())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// assemble rasterizes rooms and hallways into a tile grid and places the
// exit and spawn tiles. Room interiors win over hallways: a hallway tile
// inside an endpoint room stays floor. Hallway crossings (two corridors
// sharing a tile, tolerated near dummy rooms) are counted for telemetry.
func assemble(cfg Config, rooms []*Room, hallways []Hallway, rng *rand.Rand) (m *TileMap, exit, spawn Point, crossings int) {
	m = newTileMap(cfg.Width, cfg.Height)

	var floor []Point
	for _, room := range rooms {
		floor = room.FloorTiles(floor)
	}
	for _, p := range floor {
		m.Tiles[p.Y][p.X] = TileFloor
	}

	carved := mapset.New[Point]()
	var tiles []Point
	for _, h := range hallways {
		tiles = h.Tiles(tiles[:0])
		for _, p := range tiles {
			if m.At(p.X, p.Y) == TileFloor {
				continue
			}
			if carved.Has(p) {
				crossings++
				continue
			}
			carved.Put(p)
			m.Tiles[p.Y][p.X] = TileHallway
		}
	}

	// Exit and spawn are uniform over all rooms' floor tiles. Keep them
	// apart whenever the level has more than one floor tile.
	exit = floor[rng.Intn(len(floor))]
	spawn = exit
	for spawn == exit && len(floor) > 1 {
		spawn = floor[rng.Intn(len(floor))]
	}
	m.Tiles[exit.Y][exit.X] = TileExit
	return m, exit, spawn, crossings
}
