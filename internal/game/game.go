package game

import (
	"context"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/sectordelve/internal/entity"
	"github.com/samdwyer/sectordelve/internal/mapgen"
	"github.com/samdwyer/sectordelve/internal/preset"
	"github.com/samdwyer/sectordelve/internal/telemetry"
	"github.com/samdwyer/sectordelve/internal/ui"
)

// Game holds the demo game state: the current level, the player, and the
// session rng that seeds each new floor.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	profile  preset.Preset
	level    *mapgen.Level
	player   *entity.Player
	depth    int
	state    State
	rng      *rand.Rand
	running  bool
	err      error
}

// New creates a game for the given preset. A session seed of 0 draws one
// from the clock; any other value makes the whole run reproducible, since
// every floor's seed derives from the session rng.
func New(profile preset.Preset, seed int64) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		profile:  profile,
		state:    StateExplore,
		rng:      rand.New(rand.NewSource(seed)),
		running:  true,
	}, nil
}

// Run executes the main game loop until the player quits.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	if err := g.descend(ctx); err != nil {
		return err
	}

	for g.running {
		g.renderer.Render(g.level, g.player, g.depth, g.state == StateOnExit)
		g.handleInput(ctx)
	}
	return g.err
}

// descend generates the next floor and places the player at its spawn.
// Previous floors are discarded; there is no backtracking.
func (g *Game) descend(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.descend")
	defer span.End()

	g.depth++
	cfg := g.profile.Config(g.rng.Int63(), g.rng)
	level, err := mapgen.Generate(ctx, cfg)
	if err != nil {
		return err
	}
	g.level = level
	g.player = entity.NewPlayer(level.Spawn.X, level.Spawn.Y)
	g.state = StateExplore

	span.SetAttributes(
		attribute.Int("game.depth", g.depth),
		attribute.Int64("game.level_seed", level.Seed),
		attribute.Int("game.rooms", len(level.Rooms)),
	)
	return nil
}

// handleInput blocks for the next keystroke and applies it. A nil key
// means the terminal went away; stop the loop.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.NextKey()
	if ev == nil {
		g.running = false
		return
	}
	g.handleKeyEvent(ctx, ev)
}

// handleKeyEvent processes keyboard input. Movement is eight-directional:
// arrows for the cardinals, vi keys (hjkl plus yubn) for all eight.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyUp:
		g.tryMove(0, -1)
	case tcell.KeyDown:
		g.tryMove(0, 1)
	case tcell.KeyLeft:
		g.tryMove(-1, 0)
	case tcell.KeyRight:
		g.tryMove(1, 0)

	case tcell.KeyEnter:
		g.tryDescend(ctx)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
		case 'h':
			g.tryMove(-1, 0)
		case 'l':
			g.tryMove(1, 0)
		case 'k':
			g.tryMove(0, -1)
		case 'j':
			g.tryMove(0, 1)
		case 'y':
			g.tryMove(-1, -1)
		case 'u':
			g.tryMove(1, -1)
		case 'b':
			g.tryMove(-1, 1)
		case 'n':
			g.tryMove(1, 1)
		case '>':
			g.tryDescend(ctx)
		}
	}
}

// tryMove attempts to move the player by the given delta. Diagonal moves
// may not cut corners: both adjacent cardinal tiles must be passable.
func (g *Game) tryMove(dx, dy int) {
	newX := g.player.X + dx
	newY := g.player.Y + dy

	m := g.level.Map
	if !m.IsPassable(newX, newY) {
		return
	}
	if dx != 0 && dy != 0 {
		if !m.IsPassable(g.player.X+dx, g.player.Y) || !m.IsPassable(g.player.X, g.player.Y+dy) {
			return
		}
	}
	g.player.Move(dx, dy)

	if m.At(g.player.X, g.player.Y) == mapgen.TileExit {
		g.state = StateOnExit
	} else {
		g.state = StateExplore
	}
}

// tryDescend moves to the next floor if the player stands on the exit.
// A generation failure ends the run and surfaces from Run after the
// terminal is restored.
func (g *Game) tryDescend(ctx context.Context) {
	if g.state != StateOnExit {
		return
	}
	if err := g.descend(ctx); err != nil {
		g.err = err
		g.running = false
	}
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
