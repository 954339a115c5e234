package mapgen

import "fmt"

// Default generation parameters.
const (
	DefaultWidth  = 56
	DefaultHeight = 32

	defaultMinRoomSize   = 4
	defaultRoomMargin    = 2
	defaultHallwayBuffer = 2
)

// Config holds all knobs for a single level generation. The zero value is
// not usable; start from DefaultConfig.
type Config struct {
	// Map dimensions in tiles.
	Width  int
	Height int

	// Sector grid dimensions. Every sector holds exactly one room.
	Columns int
	Rows    int

	// Seed for random number generation. A seed of 0 means a seed will be
	// drawn from the clock; any other value reproduces the same map.
	Seed int64

	// MinRoomSize is the smallest width and height of a standard room.
	MinRoomSize int

	// RoomMargin insets each sector's interior; rooms never touch the
	// margin, which is the first contribution to inter-room clearance.
	RoomMargin int

	// DummyRoomChance is the probability that a sector holds a single-tile
	// dummy room instead of a standard room.
	DummyRoomChance float64

	// ExtraEdgeChance is the probability that each non-tree adjacency edge
	// is added on top of the spanning tree, introducing loops.
	ExtraEdgeChance float64

	// MergeChance is the probability that a selected edge between two
	// standard rooms fuses them into one merged room.
	MergeChance float64

	// HallwayBuffer is the minimum clearance, in tiles, a hallway keeps
	// from any room that is not one of its endpoints.
	HallwayBuffer int

	// Parallel generates per-sector rooms across goroutines. The output is
	// identical either way; each sector draws from its own seeded stream.
	Parallel bool

	// Debug enables post-generation invariant checks. Violations surface
	// as *OverlapViolation errors; release callers leave this unset.
	Debug bool
}

// DefaultConfig returns the configuration used by the demo game.
func DefaultConfig() Config {
	return Config{
		Width:           DefaultWidth,
		Height:          DefaultHeight,
		Columns:         3,
		Rows:            2,
		MinRoomSize:     defaultMinRoomSize,
		RoomMargin:      defaultRoomMargin,
		DummyRoomChance: 0.35,
		ExtraEdgeChance: 0.15,
		MergeChance:     0.10,
		HallwayBuffer:   defaultHallwayBuffer,
	}
}

// ConfigError reports an invalid generation configuration. It is the only
// error Generate returns outside of debug mode.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("mapgen: invalid config field %s: %s", e.Field, e.Reason)
}

// Validate checks the configuration before generation begins. It verifies
// the sector-size precondition: every sector's interior, after the margin
// is applied, must still hold a minimum-size room.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return &ConfigError{Field: "Width/Height", Reason: "map dimensions must be positive"}
	}
	if c.Columns <= 0 || c.Rows <= 0 {
		return &ConfigError{Field: "Columns/Rows", Reason: "sector counts must be positive"}
	}
	if c.MinRoomSize < 1 {
		return &ConfigError{Field: "MinRoomSize", Reason: "must be at least 1"}
	}
	if c.RoomMargin < 0 {
		return &ConfigError{Field: "RoomMargin", Reason: "must not be negative"}
	}
	if c.HallwayBuffer < 0 {
		return &ConfigError{Field: "HallwayBuffer", Reason: "must not be negative"}
	}
	for _, p := range []struct {
		name  string
		value float64
	}{
		{"DummyRoomChance", c.DummyRoomChance},
		{"ExtraEdgeChance", c.ExtraEdgeChance},
		{"MergeChance", c.MergeChance},
	} {
		if p.value < 0 || p.value > 1 {
			return &ConfigError{Field: p.name, Reason: "probability must be in [0, 1]"}
		}
	}

	// The smallest sectors are the non-remainder ones, so base sector size
	// is the binding constraint.
	sectorWidth := c.Width / c.Columns
	sectorHeight := c.Height / c.Rows
	interiorWidth := sectorWidth - 2*c.RoomMargin
	interiorHeight := sectorHeight - 2*c.RoomMargin
	if interiorWidth < c.MinRoomSize || interiorHeight < c.MinRoomSize {
		return &ConfigError{
			Field: "MinRoomSize",
			Reason: fmt.Sprintf("sector interior %dx%d cannot hold a %dx%d room (map %dx%d, grid %dx%d, margin %d)",
				interiorWidth, interiorHeight, c.MinRoomSize, c.MinRoomSize,
				c.Width, c.Height, c.Columns, c.Rows, c.RoomMargin),
		}
	}
	return nil
}
