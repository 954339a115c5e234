package preset

import (
	"fmt"
	"math/rand"

	"github.com/samdwyer/sectordelve/internal/mapgen"
)

// Preset is a named generation profile. Column and row counts are ranges:
// the demo rolls a fresh grid shape per descent, like the reference game.
type Preset struct {
	Name        string `json:"name"`
	Description string `json:"description"`

	Width  int `json:"width"`
	Height int `json:"height"`

	MinColumns int `json:"minColumns"`
	MaxColumns int `json:"maxColumns"`
	MinRows    int `json:"minRows"`
	MaxRows    int `json:"maxRows"`

	MinRoomSize     int     `json:"minRoomSize"`
	RoomMargin      int     `json:"roomMargin"`
	DummyRoomChance float64 `json:"dummyRoomChance"`
	ExtraEdgeChance float64 `json:"extraEdgeChance"`
	MergeChance     float64 `json:"mergeChance"`
	HallwayBuffer   int     `json:"hallwayBuffer"`
}

// Config builds a generation config from the preset, rolling the sector
// grid shape from the given generator and stamping in the seed.
func (p Preset) Config(seed int64, rng *rand.Rand) mapgen.Config {
	cfg := mapgen.DefaultConfig()
	cfg.Width = p.Width
	cfg.Height = p.Height
	cfg.Columns = p.MinColumns + rng.Intn(p.MaxColumns-p.MinColumns+1)
	cfg.Rows = p.MinRows + rng.Intn(p.MaxRows-p.MinRows+1)
	cfg.MinRoomSize = p.MinRoomSize
	cfg.RoomMargin = p.RoomMargin
	cfg.DummyRoomChance = p.DummyRoomChance
	cfg.ExtraEdgeChance = p.ExtraEdgeChance
	cfg.MergeChance = p.MergeChance
	cfg.HallwayBuffer = p.HallwayBuffer
	cfg.Seed = seed
	return cfg
}

// Registry holds the loaded presets in file order.
type Registry struct {
	presets []Preset
}

// LoadRegistry loads presets.json from the embedded filesystem.
func LoadRegistry() (*Registry, error) {
	presets, err := load[[]Preset]("presets.json")
	if err != nil {
		return nil, err
	}
	if len(presets) == 0 {
		return nil, fmt.Errorf("no presets loaded from presets.json")
	}
	return &Registry{presets: presets}, nil
}

// MustLoadRegistry loads the registry, panicking on error. The embedded
// data must be present for the binary to function.
func MustLoadRegistry() *Registry {
	registry, err := LoadRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// Get returns the preset with the given name.
func (r *Registry) Get(name string) (Preset, error) {
	for _, p := range r.presets {
		if p.Name == name {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("unknown preset %q (have %v)", name, r.Names())
}

// Names returns all preset names in file order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.presets))
	for i, p := range r.presets {
		names[i] = p.Name
	}
	return names
}

// All returns all presets.
func (r *Registry) All() []Preset {
	return r.presets
}
