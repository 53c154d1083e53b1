package app

import (
	"testing"

	"space-war/internal/component"
	"space-war/internal/config"
	"space-war/internal/event"
	"space-war/internal/types"
	"space-war/pkg/vec2"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func newTestArena(t *testing.T, tune func(*config.Tuning)) (*Arena, *recorder) {
	t.Helper()
	tuning := config.DefaultTuning()
	if tune != nil {
		tune(&tuning)
	}
	require.NoError(t, tuning.Validate())

	rec := &recorder{}
	d := event.NewDispatcher()
	d.SubscribeAll(rec, event.ProjectileFired, event.CraftDestroyed, event.RoundResolved, event.RoundEnded)
	return NewArena(tuning, [types.SideCount]int{}, d, zerolog.Nop()), rec
}

// crashIntoPlanet ставит корабль стороны в центр планеты
func crashIntoPlanet(a *Arena, side types.SideID) {
	c := a.world.Side(side).Craft
	c.Position = a.world.Gravity.Center().Sub(c.Size.Div(2))
	c.Velocity = vec2.Zero
}

func TestArenaSpawnLayout(t *testing.T) {
	a, _ := newTestArena(t, nil)

	alliance := a.Craft(types.Alliance)
	federation := a.Craft(types.Federation)
	assert.Equal(t, vec2.New(50, 50), alliance.Position)
	assert.Equal(t, vec2.New(1180, 620), federation.Position)
	assert.InDelta(t, 180, vec2.NormalizeDegrees(federation.Direction-alliance.Direction), 1e-9)
	assert.Equal(t, vec2.New(640, 360), a.Gravity().Center())
	assert.True(t, a.IsAlive())
	assert.Equal(t, component.PhaseContested, a.State().Phase)
}

func TestArenaDeterministic(t *testing.T) {
	run := func() (*Arena, []vec2.Vec) {
		a, _ := newTestArena(t, nil)
		var trace []vec2.Vec
		for i := 0; i < 240; i++ {
			rot := types.RotateNone
			if i%40 < 10 {
				rot = types.RotateClockwise
			}
			a.Steer(types.Alliance, rot, i%3 == 0)
			a.Steer(types.Federation, types.RotateAnticlockwise, i%5 == 0)
			if i%25 == 0 {
				a.Fire(types.Alliance)
				a.Fire(types.Federation)
			}
			a.Tick()
			trace = append(trace, a.Craft(types.Alliance).Position, a.Craft(types.Federation).Position)
		}
		return a, trace
	}

	a1, t1 := run()
	a2, t2 := run()
	assert.Equal(t, t1, t2)
	assert.Equal(t, a1.State(), a2.State())
	assert.Equal(t, a1.Scores(), a2.Scores())
	for _, side := range types.Sides {
		p1, p2 := a1.Projectiles(side), a2.Projectiles(side)
		require.Equal(t, len(p1), len(p2))
		for i := range p1 {
			assert.Equal(t, p1[i].Position, p2[i].Position)
			assert.Equal(t, p1[i].Age, p2[i].Age)
		}
	}
}

func TestArenaProjectileCap(t *testing.T) {
	a, rec := newTestArena(t, nil)

	fired := 0
	for i := 0; i < 6; i++ {
		if a.Fire(types.Alliance) {
			fired++
		}
	}

	assert.Equal(t, 5, fired)
	assert.Len(t, a.Projectiles(types.Alliance), 5)
	assert.Empty(t, a.Projectiles(types.Federation))
	assert.Equal(t, 5, rec.count(event.ProjectileFired))
}

func TestArenaProjectileLifetime(t *testing.T) {
	a, _ := newTestArena(t, func(tu *config.Tuning) { tu.Projectile.MaxAge = 10 })
	require.True(t, a.Fire(types.Alliance))

	for i := 0; i < 10; i++ {
		a.Tick()
	}
	require.Len(t, a.Projectiles(types.Alliance), 1)
	assert.Equal(t, 10, a.Projectiles(types.Alliance)[0].Age)

	a.Tick()
	assert.Empty(t, a.Projectiles(types.Alliance))
	// свободный слот снова доступен
	assert.True(t, a.Fire(types.Alliance))
}

func TestArenaOneShotScoring(t *testing.T) {
	a, rec := newTestArena(t, nil)
	crashIntoPlanet(a, types.Federation)

	for i := 0; i < 50; i++ {
		a.Tick()
		// пересечение с планетой держится, но корабль уже уничтожен
		crashIntoPlanet(a, types.Federation)
	}

	assert.Equal(t, [types.SideCount]int{1, 0}, a.Scores())
	assert.Equal(t, types.OutcomeAllianceWin, a.Outcome())
	assert.Equal(t, 1, rec.count(event.RoundResolved))
	assert.Equal(t, 1, rec.count(event.CraftDestroyed))
	assert.True(t, a.Craft(types.Federation).Destroyed())
	assert.False(t, a.Craft(types.Alliance).Destroyed())
}

func TestArenaNoFriendlyFire(t *testing.T) {
	a, _ := newTestArena(t, nil)
	c := a.world.Side(types.Alliance).Craft
	size := vec2.New(10, 10)
	p := component.NewProjectile(a.world.NewEntity(), types.Alliance, c.Center().Sub(size.Div(2)), vec2.Zero, 0, size, 100, 0)
	a.world.Side(types.Alliance).Projectiles = append(a.world.Side(types.Alliance).Projectiles, p)

	for i := 0; i < 5; i++ {
		a.Tick()
	}

	assert.Equal(t, component.PhaseContested, a.State().Phase)
	assert.False(t, c.Destroyed())
	assert.Len(t, a.Projectiles(types.Alliance), 1)
}

func TestArenaOpponentProjectileScores(t *testing.T) {
	a, _ := newTestArena(t, nil)
	c := a.world.Side(types.Alliance).Craft
	size := vec2.New(10, 10)
	p := component.NewProjectile(a.world.NewEntity(), types.Federation, c.Center().Sub(size.Div(2)), vec2.Zero, 0, size, 100, 0)
	a.world.Side(types.Federation).Projectiles = append(a.world.Side(types.Federation).Projectiles, p)

	a.Tick()

	assert.Equal(t, [types.SideCount]int{0, 1}, a.Scores())
	assert.Empty(t, a.Projectiles(types.Federation))
	assert.Len(t, a.Effects(), 1)
}

func TestArenaBothIntoPlanetIsDraw(t *testing.T) {
	a, _ := newTestArena(t, nil)
	crashIntoPlanet(a, types.Alliance)
	crashIntoPlanet(a, types.Federation)

	a.Tick()

	state := a.State()
	assert.Equal(t, component.PhaseResolving, state.Phase)
	assert.Equal(t, types.OutcomeDraw, state.Outcome)
	assert.Equal(t, 300, state.Countdown)
	assert.Equal(t, uint64(1), state.ResolvedAt)
	assert.Equal(t, [types.SideCount]int{0, 0}, a.Scores())
	assert.Len(t, a.Effects(), 2)

	a.Tick()
	assert.Equal(t, 299, a.State().Countdown)
}

func TestArenaTermination(t *testing.T) {
	a, rec := newTestArena(t, func(tu *config.Tuning) { tu.Round.CountdownTicks = 5 })
	crashIntoPlanet(a, types.Alliance)

	ticks := 0
	for a.IsAlive() {
		a.Tick()
		ticks++
		require.Less(t, ticks, 100)
	}
	assert.Equal(t, 6, ticks)
	assert.Equal(t, component.PhaseEnded, a.State().Phase)

	final := a.State()
	scores := a.Scores()
	for i := 0; i < 10; i++ {
		crashIntoPlanet(a, types.Federation)
		a.Tick()
		a.Fire(types.Federation)
	}
	assert.Equal(t, scores, a.Scores())
	assert.Equal(t, final, a.State())
	assert.Empty(t, a.Projectiles(types.Federation))
	assert.Equal(t, 1, rec.count(event.RoundEnded))
}

func TestArenaZeroCountdownEndsOnCollisionTick(t *testing.T) {
	a, _ := newTestArena(t, func(tu *config.Tuning) { tu.Round.CountdownTicks = 0 })
	crashIntoPlanet(a, types.Federation)

	a.Tick()

	assert.False(t, a.IsAlive())
	assert.Equal(t, [types.SideCount]int{1, 0}, a.Scores())
}

func TestArenaEffectsExpire(t *testing.T) {
	a, _ := newTestArena(t, func(tu *config.Tuning) { tu.Effect.MaxAge = 3 })
	crashIntoPlanet(a, types.Alliance)

	a.Tick()
	require.Len(t, a.Effects(), 1)
	for i := 0; i < 3; i++ {
		a.Tick()
	}
	require.Len(t, a.Effects(), 1)
	assert.Equal(t, 3, a.Effects()[0].Age)
	a.Tick()
	assert.Empty(t, a.Effects())
}

func TestArenaDestroyedCraftIgnoresSteering(t *testing.T) {
	a, _ := newTestArena(t, nil)
	crashIntoPlanet(a, types.Alliance)
	a.Tick()

	c := a.Craft(types.Alliance)
	dir := c.Direction
	a.Steer(types.Alliance, types.RotateClockwise, true)
	assert.False(t, a.Fire(types.Alliance))
	a.Tick()

	assert.Equal(t, dir, c.Direction)
	assert.False(t, c.Thrusters)
}

func TestArenaDrawablesOrder(t *testing.T) {
	a, _ := newTestArena(t, nil)
	a.Fire(types.Alliance)

	ds := a.Drawables()
	require.Len(t, ds, 4)
	assert.Equal(t, component.SpritePlanet, ds[0].Sprite().Key)
	assert.Equal(t, component.BulletSprite(types.Alliance), ds[1].Sprite().Key)
	assert.Equal(t, component.FighterSprite(types.Alliance), ds[2].Sprite().Key)
}
