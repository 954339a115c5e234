package mapgen

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// OverlapViolation reports a generator invariant that failed a debug-mode
// check. Seeing one means a generator bug, not bad input; it is never
// produced unless Config.Debug is set.
type OverlapViolation struct {
	Detail string
}

func (e *OverlapViolation) Error() string {
	return "mapgen: invariant violated: " + e.Detail
}

// checkInvariants validates the finished level: rooms disjoint, selected
// edges connected, hallways clear of bystander buffer zones (forced
// routes excepted), exactly one exit inside a room, and every room
// reachable from the spawn over passable tiles.
func checkInvariants(cfg Config, level *Level) error {
	for i := 0; i < len(level.Rooms); i++ {
		for j := i + 1; j < len(level.Rooms); j++ {
			a, b := level.Rooms[i], level.Rooms[j]
			if a.Bounds.Intersects(b.Bounds) {
				return &OverlapViolation{Detail: fmt.Sprintf(
					"rooms %d (%s %+v) and %d (%s %+v) overlap",
					a.ID, a.Kind, a.Bounds, b.ID, b.Kind, b.Bounds)}
			}
		}
	}

	uf := newUnionFind(len(level.Sectors))
	for _, e := range level.Edges {
		if e.Selected {
			uf.union(e.A, e.B)
		}
	}
	root := uf.find(0)
	for i := range level.Sectors {
		if uf.find(i) != root {
			return &OverlapViolation{Detail: fmt.Sprintf("sector %d not in selected-edge subgraph", i)}
		}
	}

	for _, h := range level.Hallways {
		if h.Forced {
			continue
		}
		a, b := level.RoomAt(h.A), level.RoomAt(h.B)
		if hits := countBufferHits(h.Segments, a, b, level.Rooms, cfg.HallwayBuffer); hits > 0 {
			return &OverlapViolation{Detail: fmt.Sprintf(
				"hallway %d-%d clips %d buffered tile(s) on an unforced route", h.A, h.B, hits)}
		}
	}

	exits := 0
	for y := 0; y < level.Map.Height; y++ {
		for x := 0; x < level.Map.Width; x++ {
			if level.Map.Tiles[y][x] == TileExit {
				exits++
			}
		}
	}
	if exits != 1 {
		return &OverlapViolation{Detail: fmt.Sprintf("expected exactly 1 exit tile, found %d", exits)}
	}
	inRoom := false
	for _, r := range level.Rooms {
		if r.Bounds.Contains(level.Exit.X, level.Exit.Y) {
			inRoom = true
			break
		}
	}
	if !inRoom {
		return &OverlapViolation{Detail: fmt.Sprintf("exit %+v outside every room", level.Exit)}
	}

	reached := reachableFrom(level.Map, level.Spawn)
	for _, r := range level.Rooms {
		if !reached.Has(Point{X: r.Bounds.X, Y: r.Bounds.Y}) {
			return &OverlapViolation{Detail: fmt.Sprintf(
				"room %d (%s) unreachable from spawn %+v", r.ID, r.Kind, level.Spawn)}
		}
	}
	return nil
}

// reachableFrom flood-fills passable tiles (4-directional) from start.
func reachableFrom(m *TileMap, start Point) mapset.Set[Point] {
	visited := mapset.New[Point]()
	if !m.IsPassable(start.X, start.Y) {
		return visited
	}
	queue := []Point{start}
	visited.Put(start)
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range [4]Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			n := Point{X: p.X + d.X, Y: p.Y + d.Y}
			if visited.Has(n) || !m.IsPassable(n.X, n.Y) {
				continue
			}
			visited.Put(n)
			queue = append(queue, n)
		}
	}
	return visited
}
