package mapgen

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/sectordelve/internal/telemetry"
)

// Level is one generated dungeon floor. Map, Exit and Spawn are what the
// game consumes; the intermediate artifacts are retained for inspection
// and tests. A Level is never mutated after Generate returns.
type Level struct {
	Map   *TileMap
	Exit  Point
	Spawn Point

	Seed     int64
	Sectors  []Sector
	Rooms    []*Room // unique rooms, post-merge
	Edges    []Edge
	Hallways []Hallway
}

// RoomAt returns the current room owning the given sector index.
func (l *Level) RoomAt(sector int) *Room {
	for _, r := range l.Rooms {
		if r.Sectors[0] == sector || r.Sectors[1] == sector {
			return r
		}
	}
	return nil
}

// Generate runs the full pipeline: partition, rooms, connectivity graph,
// merges, hallways, tile assembly. The same seed and config always yield
// a bit-identical level. The only failure on a valid configuration is a
// debug-mode invariant violation; callers wanting a different layout must
// change the seed, since retrying reproduces the same map.
func Generate(ctx context.Context, cfg Config) (*Level, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	tracer := telemetry.Tracer("mapgen")
	ctx, span := tracer.Start(ctx, "mapgen.generate")
	defer span.End()
	start := time.Now()

	sectors := partitionSectors(cfg.Width, cfg.Height, cfg.Columns, cfg.Rows)

	bySector, err := generateRooms(ctx, cfg, sectors, seed)
	if err != nil {
		return nil, err
	}

	edges := buildAdjacency(cfg.Columns, cfg.Rows)
	selectEdges(edges, len(sectors), cfg.ExtraEdgeChance, forkRand(seed, streamGraph))

	merges := mergeRooms(cfg, bySector, edges, forkRand(seed, streamMerge))
	hallways := routeHallways(cfg, bySector, edges, forkRand(seed, streamHallway))

	rooms := uniqueRooms(bySector)
	tileMap, exit, spawn, crossings := assemble(cfg, rooms, hallways, forkRand(seed, streamAssemble))

	level := &Level{
		Map:      tileMap,
		Exit:     exit,
		Spawn:    spawn,
		Seed:     seed,
		Sectors:  sectors,
		Rooms:    rooms,
		Edges:    edges,
		Hallways: hallways,
	}

	if cfg.Debug {
		if err := checkInvariants(cfg, level); err != nil {
			return nil, err
		}
	}

	standard, dummy := 0, 0
	for _, r := range rooms {
		switch r.Kind {
		case RoomStandard:
			standard++
		case RoomDummy:
			dummy++
		}
	}
	selected := 0
	for _, e := range edges {
		if e.Selected {
			selected++
		}
	}
	span.SetAttributes(
		attribute.Int("mapgen.width", cfg.Width),
		attribute.Int("mapgen.height", cfg.Height),
		attribute.Int("mapgen.sectors", len(sectors)),
		attribute.Int("mapgen.rooms.standard", standard),
		attribute.Int("mapgen.rooms.dummy", dummy),
		attribute.Int("mapgen.rooms.merged", merges),
		attribute.Int("mapgen.edges.selected", selected),
		attribute.Int("mapgen.hallways", len(hallways)),
		attribute.Int("mapgen.hallway_crossings", crossings),
		attribute.Int64("mapgen.seed", seed),
		attribute.Int64("mapgen.duration_us", time.Since(start).Microseconds()),
	)
	return level, nil
}

// uniqueRooms flattens the sector-indexed slice into one entry per room,
// in sector order. Merged rooms appear once, at their lower sector.
func uniqueRooms(bySector []*Room) []*Room {
	rooms := make([]*Room, 0, len(bySector))
	for i, r := range bySector {
		if r.Kind == RoomMerged && r.Sectors[1] == i {
			continue
		}
		rooms = append(rooms, r)
	}
	return rooms
}
