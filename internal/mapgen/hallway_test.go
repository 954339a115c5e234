package mapgen

import (
	"math/rand"
	"testing"
)

func TestSegmentTilesBothDirections(t *testing.T) {
	s := Segment{From: Point{X: 3, Y: 5}, To: Point{X: 0, Y: 5}}
	tiles := s.Tiles(nil)
	want := []Point{{3, 5}, {2, 5}, {1, 5}, {0, 5}}
	if len(tiles) != len(want) {
		t.Fatalf("got %d tiles, want %d", len(tiles), len(want))
	}
	for i := range want {
		if tiles[i] != want[i] {
			t.Errorf("tile %d = %+v, want %+v", i, tiles[i], want[i])
		}
	}

	single := Segment{From: Point{X: 1, Y: 1}, To: Point{X: 1, Y: 1}}
	if got := single.Tiles(nil); len(got) != 1 {
		t.Fatalf("zero-length segment should yield its single tile, got %d", len(got))
	}
}

func TestAlignedExitsMakeStraightConnector(t *testing.T) {
	// Height-1 attachment rects force the exits to align.
	arect := Rect{X: 2, Y: 6, Width: 4, Height: 1}
	brect := Rect{X: 14, Y: 6, Width: 4, Height: 1}
	segs := proposeHorizontal(arect, brect, 2, rand.New(rand.NewSource(1)))
	if len(segs) != 1 {
		t.Fatalf("aligned rooms should connect with one segment, got %d", len(segs))
	}
	if segs[0].From != (Point{X: 5, Y: 6}) || segs[0].To != (Point{X: 14, Y: 6}) {
		t.Fatalf("straight connector %+v misses the facing edges", segs[0])
	}
}

func TestJaggedPathIsContiguousAndAxisAligned(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		rng := rand.New(rand.NewSource(seed))
		arect := Rect{X: 2, Y: 2, Width: 5, Height: 6}
		brect := Rect{X: 16, Y: 3, Width: 5, Height: 6}
		segs := proposeHorizontal(arect, brect, 2, rng)

		for i, s := range segs {
			if s.From.X != s.To.X && s.From.Y != s.To.Y {
				t.Fatalf("seed %d: segment %d %+v is not axis-aligned", seed, i, s)
			}
			if i > 0 && segs[i-1].To != s.From {
				t.Fatalf("seed %d: segment %d starts at %+v, previous ended at %+v",
					seed, i, s.From, segs[i-1].To)
			}
		}

		first, last := segs[0].From, segs[len(segs)-1].To
		if !arect.Contains(first.X, first.Y) || first.X != arect.Right()-1 {
			t.Fatalf("seed %d: path starts at %+v, not on the facing edge of %+v", seed, first, arect)
		}
		if !brect.Contains(last.X, last.Y) || last.X != brect.X {
			t.Fatalf("seed %d: path ends at %+v, not on the facing edge of %+v", seed, last, brect)
		}

		// The jog column must clear the buffer on both sides.
		if len(segs) == 3 {
			jog := segs[1].From.X
			if jog < arect.Right()-1+2 || jog > brect.X-2 {
				t.Fatalf("seed %d: jog column %d ignores the buffer", seed, jog)
			}
		}
	}
}

func TestVerticalPathMirrorsHorizontal(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	arect := Rect{X: 3, Y: 2, Width: 6, Height: 4}
	brect := Rect{X: 2, Y: 14, Width: 6, Height: 4}
	segs := proposeVertical(arect, brect, 2, rng)

	first, last := segs[0].From, segs[len(segs)-1].To
	if first.Y != arect.Bottom()-1 {
		t.Fatalf("path starts at %+v, not on the bottom edge of %+v", first, arect)
	}
	if last.Y != brect.Y {
		t.Fatalf("path ends at %+v, not on the top edge of %+v", last, brect)
	}
}

func TestChooseJogFallsBackWhenStubsCannotOverlap(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	// Rooms too close for the buffer: lo > hi, expect a clamped midpoint.
	jog := chooseJog(10, 6, 5, 11, rng)
	if jog < 5 || jog > 11 {
		t.Fatalf("fallback jog %d escapes the valid span", jog)
	}

	// Rooms touching: nothing strictly between them, take the near edge.
	if jog := chooseJog(9, 1, 6, 5, rng); jog != 6 {
		t.Fatalf("touching-room fallback jog = %d, want 6", jog)
	}
}

func TestHallwayTilesEmitEachTileOnce(t *testing.T) {
	// A Z-shaped run: segment joints must not be double-counted.
	h := Hallway{A: 0, B: 1, Segments: []Segment{
		{From: Point{X: 2, Y: 3}, To: Point{X: 6, Y: 3}},
		{From: Point{X: 6, Y: 3}, To: Point{X: 6, Y: 8}},
		{From: Point{X: 6, Y: 8}, To: Point{X: 11, Y: 8}},
	}}
	tiles := h.Tiles(nil)
	seen := make(map[Point]bool, len(tiles))
	for _, p := range tiles {
		if seen[p] {
			t.Errorf("tile %+v emitted twice", p)
		}
		seen[p] = true
	}
	// 5 + 6 + 6 tiles minus the two shared corners.
	if len(tiles) != 15 {
		t.Fatalf("got %d tiles, want 15", len(tiles))
	}
	if tiles[0] != (Point{X: 2, Y: 3}) || tiles[len(tiles)-1] != (Point{X: 11, Y: 8}) {
		t.Fatalf("endpoints %+v .. %+v are wrong", tiles[0], tiles[len(tiles)-1])
	}
}

func TestRouterAvoidsOtherRoomBuffers(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HallwayBuffer = 1

	a := standardRoom(0, Rect{X: 1, Y: 1, Width: 4, Height: 12})
	b := standardRoom(1, Rect{X: 20, Y: 1, Width: 4, Height: 12})
	// A bystander sitting between the two, leaving clean rows above and
	// below its buffer zone.
	bystander := standardRoom(2, Rect{X: 8, Y: 4, Width: 3, Height: 2})

	rooms := []*Room{a, b, bystander}
	edges := []Edge{{A: 0, B: 1, Horizontal: true, Selected: true}}

	for seed := int64(1); seed <= 10; seed++ {
		halls := routeHallways(cfg, rooms, edges, rand.New(rand.NewSource(seed)))
		if len(halls) != 1 {
			t.Fatalf("seed %d: expected 1 hallway, got %d", seed, len(halls))
		}
		zone := bystander.Bounds.Inflate(cfg.HallwayBuffer)
		for _, p := range halls[0].Tiles(nil) {
			if zone.Contains(p.X, p.Y) {
				t.Errorf("seed %d: hallway tile %+v inside bystander buffer %+v", seed, p, zone)
			}
		}
	}
}

func TestEveryNonAbsorbedEdgeGetsRouted(t *testing.T) {
	cfg := DefaultConfig()
	rooms := []*Room{
		standardRoom(0, Rect{X: 2, Y: 2, Width: 4, Height: 4}),
		standardRoom(1, Rect{X: 12, Y: 2, Width: 4, Height: 4}),
		standardRoom(2, Rect{X: 2, Y: 12, Width: 4, Height: 4}),
		standardRoom(3, Rect{X: 12, Y: 12, Width: 4, Height: 4}),
	}
	edges := []Edge{
		{A: 0, B: 1, Horizontal: true, Selected: true},
		{A: 0, B: 2, Selected: true},
		{A: 1, B: 3, Selected: true},
		{A: 2, B: 3, Horizontal: true, Selected: false},
	}
	halls := routeHallways(cfg, rooms, edges, rand.New(rand.NewSource(11)))
	if len(halls) != 3 {
		t.Fatalf("expected 3 hallways for 3 selected edges, got %d", len(halls))
	}
	for _, h := range halls {
		if len(h.Segments) == 0 {
			t.Fatalf("hallway %d-%d has no segments", h.A, h.B)
		}
	}
}
