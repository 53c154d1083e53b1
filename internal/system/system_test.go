package system

import (
	"testing"

	"space-war/internal/component"
	"space-war/internal/config"
	"space-war/internal/entity"
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

func (r *recorder) ofType(t event.EventType) []event.Event {
	var out []event.Event
	for _, e := range r.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func newWorld(t *testing.T) *entity.World {
	t.Helper()
	return entity.Spawn(config.DefaultTuning(), [types.SideCount]int{})
}

func newRoundSystem(w *entity.World, countdown int) (*RoundSystem, *recorder) {
	rec := &recorder{}
	d := event.NewDispatcher()
	d.SubscribeAll(rec, event.CraftDestroyed, event.RoundResolved, event.RoundEnded)
	return NewRoundSystem(w, countdown, d, zerolog.Nop()), rec
}

// placeProjectile кладёт снаряд стороны owner прямо на цель
func placeProjectile(w *entity.World, owner types.SideID, target vec2.Rect) *component.Projectile {
	size := vec2.New(10, 10)
	p := component.NewProjectile(w.NewEntity(), owner, target.Center().Sub(size.Div(2)), vec2.Zero, 0, size, 100, 0)
	side := w.Side(owner)
	side.Projectiles = append(side.Projectiles, p)
	return p
}

func TestGravitySystemSkipsDestroyedCrafts(t *testing.T) {
	w := newWorld(t)
	w.Side(types.Federation).Craft.Destroy(w.NewEntity())

	NewGravitySystem(w).Update()

	a := w.Side(types.Alliance).Craft
	assert.False(t, a.Velocity.IsZero())
	assert.InDelta(t, 0.05, a.Velocity.Len(), 1e-9)
	assert.True(t, w.Side(types.Federation).Craft.Velocity.IsZero())
}

func TestCraftOnWellCentreStaysPut(t *testing.T) {
	w := newWorld(t)
	a := w.Side(types.Alliance).Craft
	// центр планеты совпадает с центром корабля
	w.Gravity.Position = a.Center().Sub(w.Gravity.Size.Div(2))
	require.Equal(t, a.Center(), w.Gravity.Center())
	start := a.Position

	NewGravitySystem(w).Update()
	NewMovementSystem(w, true).Update()

	assert.Equal(t, vec2.Zero, a.Velocity)
	assert.Equal(t, start, a.Position)
}

func TestMovementSystemAgesProjectilesAndConfinesCrafts(t *testing.T) {
	w := newWorld(t)
	a := w.Side(types.Alliance).Craft
	a.Position = vec2.New(1, 1)
	a.Velocity = vec2.New(-4, 0)
	p, ok := w.Side(types.Federation).Fire(w.NewEntity())
	require.True(t, ok)
	start := p.Position

	NewMovementSystem(w, true).Update()

	assert.Equal(t, 0.0, a.Position.X)
	assert.Equal(t, 0.0, a.Velocity.X)
	assert.Equal(t, 1, p.Age)
	assert.Equal(t, start.Add(p.Velocity), p.Position)
}

func TestMovementSystemWithoutConfinement(t *testing.T) {
	w := newWorld(t)
	a := w.Side(types.Alliance).Craft
	a.Position = vec2.New(1, 1)
	a.Velocity = vec2.New(-4, 0)

	NewMovementSystem(w, false).Update()

	assert.Equal(t, -3.0, a.Position.X)
}

func TestProjectileSystemExpire(t *testing.T) {
	w := newWorld(t)
	side := w.Side(types.Alliance)
	old, _ := side.Fire(w.NewEntity())
	old.Age = old.MaxAge + 1
	gone, _ := side.Fire(w.NewEntity())
	gone.Position = vec2.New(-100, -100)
	live, _ := side.Fire(w.NewEntity())

	removed := NewProjectileSystem(w).Expire()

	assert.ElementsMatch(t, []*component.Projectile{old, gone}, removed)
	require.Len(t, side.Projectiles, 1)
	assert.Same(t, live, side.Projectiles[0])
}

func TestVisualEffectSystem(t *testing.T) {
	w := newWorld(t)
	e := component.NewEffect(w.NewEntity(), types.Alliance, vec2.NewRect(vec2.Zero, vec2.New(10, 10)), 1)
	require.True(t, w.AddEffect(e))
	s := NewVisualEffectSystem(w)

	s.Update()
	assert.Empty(t, s.Expire())
	s.Update()
	assert.Equal(t, []*component.Effect{e}, s.Expire())
	assert.Empty(t, w.Effects)
}

func TestCollisionNoContacts(t *testing.T) {
	w := newWorld(t)
	c := NewCollisionSystem(w, true).Update()
	assert.False(t, c.Any())
	assert.Equal(t, types.OutcomeNone, c.Outcome())
}

func TestCollisionOwnProjectileNeverHitsOwnCraft(t *testing.T) {
	w := newWorld(t)
	a := w.Side(types.Alliance).Craft
	own := placeProjectile(w, types.Alliance, a.Bounds())

	c := NewCollisionSystem(w, true).Update()

	assert.False(t, c.Any())
	assert.Contains(t, w.Side(types.Alliance).Projectiles, own)
}

func TestCollisionOpponentProjectile(t *testing.T) {
	w := newWorld(t)
	a := w.Side(types.Alliance).Craft
	hit := placeProjectile(w, types.Federation, a.Bounds())

	c := NewCollisionSystem(w, true).Update()

	assert.True(t, c.Collided[types.Alliance])
	assert.False(t, c.Collided[types.Federation])
	assert.Equal(t, types.OutcomeFederationWin, c.Outcome())
	require.Len(t, c.List, 1)
	assert.Equal(t, CauseProjectile, c.List[0].Cause)
	assert.Equal(t, hit.ID, c.List[0].Projectile)
	assert.Empty(t, w.Side(types.Federation).Projectiles, "hit projectile leaves its owner's pool")
}

func TestCollisionCraftsCollideIsDraw(t *testing.T) {
	w := newWorld(t)
	a, f := w.Side(types.Alliance).Craft, w.Side(types.Federation).Craft
	f.Position = a.Position.Add(vec2.New(10, 10))

	c := NewCollisionSystem(w, true).Detect()

	assert.Equal(t, types.OutcomeDraw, c.Outcome())
}

func TestCollisionPlanetAbsorbsProjectiles(t *testing.T) {
	w := newWorld(t)
	p := placeProjectile(w, types.Alliance, w.Gravity.Bounds())

	c := NewCollisionSystem(w, false).Update()
	assert.False(t, c.Any())
	assert.Contains(t, w.Side(types.Alliance).Projectiles, p)

	c = NewCollisionSystem(w, true).Update()
	assert.False(t, c.Any(), "absorbing a projectile never scores")
	assert.Empty(t, w.Side(types.Alliance).Projectiles)
}

func TestCollisionIgnoresDestroyedCrafts(t *testing.T) {
	w := newWorld(t)
	a := w.Side(types.Alliance).Craft
	a.Position = w.Gravity.Position
	a.Destroy(w.NewEntity())

	c := NewCollisionSystem(w, true).Detect()
	assert.False(t, c.Any())
}

func TestRoundSystemScoresOnce(t *testing.T) {
	w := newWorld(t)
	rs, rec := newRoundSystem(w, 3)
	var contacts Contacts
	contacts.add(types.Federation, CauseGravity, 0)

	for i := 0; i < 10; i++ {
		w.Round.Tick++
		rs.Adjudicate(contacts)
	}

	assert.Equal(t, 1, w.Side(types.Alliance).Score)
	assert.Equal(t, 0, w.Side(types.Federation).Score)
	assert.Equal(t, component.PhaseResolving, w.Round.Phase)
	assert.Equal(t, uint64(1), w.Round.ResolvedAt)
	assert.Len(t, rec.ofType(event.RoundResolved), 1)
	assert.Len(t, rec.ofType(event.CraftDestroyed), 1)
	assert.Len(t, w.Effects, 1)
}

func TestRoundSystemBothSidesIsDraw(t *testing.T) {
	w := newWorld(t)
	rs, rec := newRoundSystem(w, 300)
	var contacts Contacts
	contacts.add(types.Alliance, CauseGravity, 0)
	contacts.add(types.Federation, CauseGravity, 0)

	require.True(t, rs.Adjudicate(contacts))

	assert.Equal(t, [types.SideCount]int{0, 0}, rs.Scores())
	assert.Equal(t, types.OutcomeDraw, w.Round.Outcome)
	assert.Equal(t, 300, w.Round.Countdown)
	require.Len(t, rec.ofType(event.RoundResolved), 1)
	data := rec.ofType(event.RoundResolved)[0].Data.(event.RoundResolvedData)
	assert.Equal(t, types.OutcomeDraw, data.Outcome)
	assert.Len(t, w.Effects, 2)
}

func TestRoundSystemLateCollisionDestroysWithoutScoring(t *testing.T) {
	w := newWorld(t)
	rs, _ := newRoundSystem(w, 300)
	var first, second Contacts
	first.add(types.Alliance, CauseProjectile, 0)
	second.add(types.Federation, CauseGravity, 0)

	rs.Adjudicate(first)
	assert.False(t, rs.Adjudicate(second))

	assert.True(t, w.Side(types.Federation).Craft.Destroyed())
	assert.Equal(t, [types.SideCount]int{0, 1}, rs.Scores())
	assert.Equal(t, types.OutcomeFederationWin, w.Round.Outcome)
}

func TestRoundSystemCountdown(t *testing.T) {
	w := newWorld(t)
	rs, rec := newRoundSystem(w, 2)

	rs.Countdown()
	assert.Equal(t, component.PhaseContested, w.Round.Phase, "contested rounds do not count down")

	var contacts Contacts
	contacts.add(types.Alliance, CauseGravity, 0)
	rs.Adjudicate(contacts)

	rs.Countdown()
	assert.Equal(t, 1, w.Round.Countdown)
	assert.True(t, w.Round.Alive())
	rs.Countdown()
	assert.Equal(t, component.PhaseEnded, w.Round.Phase)
	assert.False(t, w.Round.Alive())
	assert.Len(t, rec.ofType(event.RoundEnded), 1)

	rs.Countdown()
	assert.False(t, rs.Adjudicate(contacts))
	assert.Len(t, rec.ofType(event.RoundEnded), 1)
	assert.Equal(t, [types.SideCount]int{0, 1}, rs.Scores())
}

func TestRoundSystemZeroCountdownEndsImmediately(t *testing.T) {
	w := newWorld(t)
	rs, rec := newRoundSystem(w, 0)
	var contacts Contacts
	contacts.add(types.Alliance, CauseCraft, 0)

	rs.Adjudicate(contacts)

	assert.Equal(t, component.PhaseEnded, w.Round.Phase)
	assert.Len(t, rec.ofType(event.RoundEnded), 1)
}

func TestCauseString(t *testing.T) {
	assert.Equal(t, "gravity", CauseGravity.String())
	assert.Equal(t, "projectile", CauseProjectile.String())
	assert.Equal(t, "unknown", Cause(42).String())
}
