package mapgen

import "math/rand"

// routeAttempts bounds the re-roll loop when a proposed path clips
// another room's buffer zone. After that the least-violating candidate is
// kept; an edge is never left unrouted.
const routeAttempts = 12

// Segment is one axis-aligned straight run of a hallway. Both endpoints
// are inclusive.
type Segment struct {
	From, To Point
}

// Tiles appends every tile on the segment to dst and returns it. The
// segment may run in either direction along its axis.
func (s Segment) Tiles(dst []Point) []Point {
	dx := sign(s.To.X - s.From.X)
	dy := sign(s.To.Y - s.From.Y)
	p := s.From
	for {
		dst = append(dst, p)
		if p == s.To {
			return dst
		}
		p.X += dx
		p.Y += dy
	}
}

// Hallway is an ordered run of segments connecting an exit point on one
// room's boundary to an exit point on another's. Immutable once routed.
// Forced marks a path accepted after all re-roll attempts clipped a
// buffer zone; it is the one case the debug checks tolerate.
type Hallway struct {
	A, B     int // endpoint sector indices
	Segments []Segment
	Forced   bool
}

// Tiles appends every tile of the hallway to dst and returns it.
// Adjacent segments join end-to-start; the shared corner is emitted once.
func (h Hallway) Tiles(dst []Point) []Point {
	for i, s := range h.Segments {
		if i > 0 {
			if s.From == s.To {
				continue
			}
			s.From.X += sign(s.To.X - s.From.X)
			s.From.Y += sign(s.To.Y - s.From.Y)
		}
		dst = s.Tiles(dst)
	}
	return dst
}

// routeHallways computes a jagged path for every selected, non-absorbed
// edge. Endpoint rooms are looked up through the sector slots, so edges
// that originally targeted a since-merged room attach to the retained
// rectangle of that room.
func routeHallways(cfg Config, rooms []*Room, edges []Edge, rng *rand.Rand) []Hallway {
	unique := uniqueRooms(rooms)
	hallways := make([]Hallway, 0, len(edges))
	for i := range edges {
		e := &edges[i]
		if !e.Selected || e.Absorbed {
			continue
		}
		a, b := rooms[e.A], rooms[e.B]
		if a == b {
			// Both sectors collapsed into the same merged room.
			continue
		}
		hallways = append(hallways, routeEdge(cfg, e, a, b, unique, rng))
	}
	return hallways
}

// routeEdge picks exit points on the two facing room edges, extends stubs
// past the clearance buffer, and joins them at a jog coordinate on the
// perpendicular axis. Paths that would cross another room's buffer zone
// are re-rolled; if no clean path exists the best candidate found is
// accepted rather than leaving the edge unrouted.
func routeEdge(cfg Config, e *Edge, a, b *Room, all []*Room, rng *rand.Rand) Hallway {
	arect := a.AttachRect(e.A)
	brect := b.AttachRect(e.B)

	var best []Segment
	bestViolations := -1
	for attempt := 0; attempt < routeAttempts; attempt++ {
		var segs []Segment
		if e.Horizontal {
			segs = proposeHorizontal(arect, brect, cfg.HallwayBuffer, rng)
		} else {
			segs = proposeVertical(arect, brect, cfg.HallwayBuffer, rng)
		}
		v := countBufferHits(segs, a, b, all, cfg.HallwayBuffer)
		if v == 0 {
			return Hallway{A: e.A, B: e.B, Segments: segs}
		}
		if bestViolations < 0 || v < bestViolations {
			best, bestViolations = segs, v
		}
	}
	return Hallway{A: e.A, B: e.B, Segments: best, Forced: true}
}

// proposeHorizontal routes left room to right room. The left exit sits on
// the right edge of arect, the right exit on the left edge of brect; the
// jog column lies between the two stub ends.
func proposeHorizontal(arect, brect Rect, buffer int, rng *rand.Rand) []Segment {
	x1 := arect.Right() - 1
	y1 := arect.Y + rng.Intn(arect.Height)
	x2 := brect.X
	y2 := brect.Y + rng.Intn(brect.Height)

	start := Point{X: x1, Y: y1}
	end := Point{X: x2, Y: y2}
	if y1 == y2 {
		// Exits happen to align; a straight connector is fine.
		return []Segment{{From: start, To: end}}
	}

	jog := chooseJog(x1+buffer, x2-buffer, x1+1, x2-1, rng)
	return []Segment{
		{From: start, To: Point{X: jog, Y: y1}},
		{From: Point{X: jog, Y: y1}, To: Point{X: jog, Y: y2}},
		{From: Point{X: jog, Y: y2}, To: end},
	}
}

// proposeVertical routes upper room to lower room.
func proposeVertical(arect, brect Rect, buffer int, rng *rand.Rand) []Segment {
	y1 := arect.Bottom() - 1
	x1 := arect.X + rng.Intn(arect.Width)
	y2 := brect.Y
	x2 := brect.X + rng.Intn(brect.Width)

	start := Point{X: x1, Y: y1}
	end := Point{X: x2, Y: y2}
	if x1 == x2 {
		return []Segment{{From: start, To: end}}
	}

	jog := chooseJog(y1+buffer, y2-buffer, y1+1, y2-1, rng)
	return []Segment{
		{From: start, To: Point{X: x1, Y: jog}},
		{From: Point{X: x1, Y: jog}, To: Point{X: x2, Y: jog}},
		{From: Point{X: x2, Y: jog}, To: end},
	}
}

// chooseJog picks the perpendicular jog coordinate uniformly from the
// buffered range [lo, hi]. When the stub ranges do not overlap (a sector
// too small for buffer + room + stub) it falls back to the closest
// feasible coordinate clamped strictly between the two rooms.
func chooseJog(lo, hi, minValid, maxValid int, rng *rand.Rand) int {
	if lo <= hi {
		return lo + rng.Intn(hi-lo+1)
	}
	if minValid > maxValid {
		// Rooms are touching; the corner lands on the far room's edge.
		return minValid
	}
	return clamp((lo+hi)/2, minValid, maxValid)
}

// countBufferHits counts path tiles that fall inside the buffer zone of
// any room other than the two endpoints. Hallway-vs-hallway proximity is
// deliberately not checked; two corridors may run adjacent near a dummy
// room and read as one wide corridor.
func countBufferHits(segs []Segment, a, b *Room, all []*Room, buffer int) int {
	hits := 0
	var tiles []Point
	for _, s := range segs {
		tiles = s.Tiles(tiles[:0])
		for _, p := range tiles {
			for _, room := range all {
				if room == a || room == b {
					continue
				}
				if room.Bounds.Inflate(buffer).Contains(p.X, p.Y) {
					hits++
					break
				}
			}
		}
	}
	return hits
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
