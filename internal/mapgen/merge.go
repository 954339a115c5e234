package mapgen

import "math/rand"

// mergeRooms walks the selected edges in order and fuses pairs of
// standard rooms with probability cfg.MergeChance. A merged room's bounds
// are the minimal rectangle covering both originals; both originals are
// retained as attachment rectangles for later hallway routing. Each room
// participates in at most one merge (a merged room is no longer standard,
// so later edges skip it). The absorbed edge gets no hallway; the rooms
// are contiguous. Returns the number of merges performed.
//
// rooms is indexed by sector; after a merge both sector slots point at
// the same merged room, so downstream lookups always see current state.
func mergeRooms(cfg Config, rooms []*Room, edges []Edge, rng *rand.Rand) int {
	merges := 0
	for i := range edges {
		e := &edges[i]
		if !e.Selected {
			continue
		}
		a, b := rooms[e.A], rooms[e.B]
		if a.Kind != RoomStandard || b.Kind != RoomStandard {
			continue
		}
		if rng.Float64() >= cfg.MergeChance {
			continue
		}

		merged := &Room{
			ID:      e.A,
			Kind:    RoomMerged,
			Bounds:  a.Bounds.Union(b.Bounds),
			Sectors: [2]int{e.A, e.B},
			Parts:   [2]Rect{a.Bounds, b.Bounds},
		}
		rooms[e.A] = merged
		rooms[e.B] = merged
		e.Absorbed = true
		merges++
	}
	return merges
}
