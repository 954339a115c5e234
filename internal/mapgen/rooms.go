package mapgen

import (
	"context"
	"math/rand"

	"golang.org/x/sync/errgroup"
)

// generateRooms produces exactly one room per sector. Each sector draws
// from its own seed-derived stream, so the parallel and sequential paths
// produce identical rooms. The returned slice is indexed by sector.
func generateRooms(ctx context.Context, cfg Config, sectors []Sector, seed int64) ([]*Room, error) {
	rooms := make([]*Room, len(sectors))

	if !cfg.Parallel {
		for i, sector := range sectors {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			rooms[i] = rollRoom(cfg, sector, forkRand(seed, uint64(i)))
		}
		return rooms, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	for i, sector := range sectors {
		i, sector := i, sector
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rooms[i] = rollRoom(cfg, sector, forkRand(seed, uint64(i)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rooms, nil
}

// rollRoom draws one room for a sector. The draw order is fixed: kind
// first, then width, height, left, top. Changing it would silently break
// seed reproducibility.
func rollRoom(cfg Config, sector Sector, rng *rand.Rand) *Room {
	interior := sector.Bounds.Inset(cfg.RoomMargin)
	id := sector.Index(cfg.Columns)

	if rng.Float64() < cfg.DummyRoomChance {
		x := interior.X + rng.Intn(interior.Width)
		y := interior.Y + rng.Intn(interior.Height)
		return &Room{
			ID:      id,
			Kind:    RoomDummy,
			Bounds:  Rect{X: x, Y: y, Width: 1, Height: 1},
			Sectors: [2]int{id, -1},
		}
	}

	w := cfg.MinRoomSize + rng.Intn(interior.Width-cfg.MinRoomSize+1)
	h := cfg.MinRoomSize + rng.Intn(interior.Height-cfg.MinRoomSize+1)
	x := interior.X + rng.Intn(interior.Width-w+1)
	y := interior.Y + rng.Intn(interior.Height-h+1)
	return &Room{
		ID:      id,
		Kind:    RoomStandard,
		Bounds:  Rect{X: x, Y: y, Width: w, Height: h},
		Sectors: [2]int{id, -1},
	}
}
