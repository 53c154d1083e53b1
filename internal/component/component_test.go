package component

import (
	"testing"

	"space-war/internal/types"
	"space-war/pkg/vec2"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSpec() CraftSpec {
	return CraftSpec{
		RotationSpeed:    5,
		ThrustPower:      0.5,
		MuzzleOffset:     20,
		LaunchSpeed:      5,
		ProjectileSize:   vec2.New(10, 10),
		ProjectileMaxAge: 3,
		EffectMaxAge:     4,
		RotationOffset:   -90,
	}
}

func newTestCraft(side types.SideID) *Craft {
	return NewCraft(1, side, vec2.New(100, 100), 0, vec2.New(50, 50), testSpec())
}

func TestNewBodyNormalizesDirection(t *testing.T) {
	b := NewBody(vec2.Zero, vec2.Zero, -30, vec2.New(1, 1), 0)
	assert.InDelta(t, 330, b.Direction, 1e-9)
}

func TestBodyIntegrateAndAccelerate(t *testing.T) {
	b := NewBody(vec2.New(1, 1), vec2.New(2, 0), 0, vec2.New(4, 4), -90)
	b.Accelerate(vec2.New(0, 1))
	b.Integrate()

	assert.Equal(t, vec2.New(2, 1), b.Velocity)
	assert.Equal(t, vec2.New(3, 2), b.Position)
	assert.Equal(t, vec2.New(5, 4), b.Center())
	assert.InDelta(t, 270, b.Orientation(), 1e-9)
	// orientation is a drawing concern only
	assert.InDelta(t, 0, b.Direction, 1e-9)
}

func TestCraftRotationWraps(t *testing.T) {
	c := newTestCraft(types.Alliance)

	c.RotateClockwise()
	assert.InDelta(t, 355, c.Direction, 1e-9)

	for i := 0; i < 73; i++ {
		c.RotateAnticlockwise()
	}
	assert.InDelta(t, 0, c.Direction, 1e-9)

	for i := 0; i < 1000; i++ {
		c.Rotate(types.RotateClockwise)
		require.GreaterOrEqual(t, c.Direction, 0.0)
		require.Less(t, c.Direction, 360.0)
	}
}

func TestCraftThrustOnlyWhileActive(t *testing.T) {
	c := newTestCraft(types.Alliance)

	c.Integrate()
	assert.Equal(t, vec2.Zero, c.Velocity)

	c.SetThrusters(true)
	c.Integrate()
	assert.InDelta(t, 0.5, c.Velocity.X, 1e-9)
	assert.InDelta(t, 0, c.Velocity.Y, 1e-9)
	assert.InDelta(t, 100.5, c.Position.X, 1e-9)

	c.SetThrusters(false)
	c.Integrate()
	assert.InDelta(t, 0.5, c.Velocity.X, 1e-9)
	assert.InDelta(t, 101, c.Position.X, 1e-9)
}

func TestCraftFireBullet(t *testing.T) {
	c := newTestCraft(types.Alliance)
	c.Velocity = vec2.New(1, 0)

	p := c.FireBullet(7)

	assert.Equal(t, types.EntityID(7), p.ID)
	assert.Equal(t, types.Alliance, p.Owner)
	assert.Equal(t, 0, p.Age)
	// centre of the craft (125,125) plus muzzle offset along heading (1,0)
	assert.InDelta(t, 145, p.Center().X, 1e-9)
	assert.InDelta(t, 125, p.Center().Y, 1e-9)
	assert.InDelta(t, 6, p.Velocity.X, 1e-9)
	assert.InDelta(t, 0, p.Velocity.Y, 1e-9)
}

func TestCraftDestroyIsLatched(t *testing.T) {
	c := newTestCraft(types.Federation)
	c.SetThrusters(true)

	e := c.Destroy(9)
	require.NotNil(t, e)
	assert.True(t, c.Destroyed())
	assert.False(t, c.Thrusters)
	assert.Equal(t, c.Bounds(), e.Target)
	assert.Equal(t, types.Federation, e.Owner)

	assert.Nil(t, c.Destroy(10), "second destroy must not create another effect")

	// a destroyed craft is inert
	pos, dir := c.Position, c.Direction
	c.Accelerate(vec2.New(5, 5))
	c.RotateClockwise()
	c.SetThrusters(true)
	c.Integrate()
	assert.Equal(t, pos, c.Position)
	assert.Equal(t, dir, c.Direction)
	assert.Equal(t, vec2.Zero, c.Velocity)
	assert.False(t, c.Sprite().Visible)
}

func TestCraftConfine(t *testing.T) {
	c := newTestCraft(types.Alliance)
	c.Position = vec2.New(-5, 20)
	c.Velocity = vec2.New(-2, 3)

	c.Confine(vec2.New(200, 200))

	assert.Equal(t, vec2.New(0, 20), c.Position)
	assert.Equal(t, vec2.New(0, 3), c.Velocity)
}

func TestProjectileExpiry(t *testing.T) {
	p := NewProjectile(1, types.Alliance, vec2.Zero, vec2.Zero, 0, vec2.New(1, 1), 2, 0)
	for i := 0; i < 2; i++ {
		p.Tick()
		assert.False(t, p.Expired())
	}
	p.Tick()
	assert.True(t, p.Expired())
}

func TestEffectScaleAndExpiry(t *testing.T) {
	e := NewEffect(1, types.Alliance, vec2.NewRect(vec2.New(0, 0), vec2.New(40, 40)), 4)

	assert.InDelta(t, 0, e.Scale(), 1e-9)
	for i := 0; i < 4; i++ {
		e.Tick()
		assert.GreaterOrEqual(t, e.Scale(), 0.0)
		assert.False(t, e.Expired())
	}
	assert.InDelta(t, 1, e.Scale(), 1e-9)
	s := e.Sprite()
	assert.InDelta(t, 20, s.Bounds.Center().X, 1e-6)
	assert.InDelta(t, 20, s.Bounds.Center().Y, 1e-6)
	assert.InDelta(t, 40, s.Bounds.Size.X, 1e-6)
	assert.InDelta(t, 40, s.Bounds.Size.Y, 1e-6)

	e.Tick()
	assert.True(t, e.Expired())

	zero := NewEffect(2, types.Alliance, vec2.Rect{}, 0)
	assert.Equal(t, 1.0, zero.Scale())
}

func TestGravityPullsTowardCenter(t *testing.T) {
	g := &GravitySource{Position: vec2.New(90, 0), Size: vec2.New(20, 20), Strength: 0.1}
	b := NewBody(vec2.New(0, 5), vec2.Zero, 0, vec2.New(10, 10), 0)

	g.Apply(&b)

	assert.InDelta(t, 0.1, b.Velocity.X, 1e-9)
	assert.InDelta(t, 0, b.Velocity.Y, 1e-9)
}

func TestGravityCoincidentCenterIsSkipped(t *testing.T) {
	g := &GravitySource{Position: vec2.New(-5, -5), Size: vec2.New(10, 10), Strength: 0.05}
	b := NewBody(vec2.New(-5, -5), vec2.Zero, 0, vec2.New(10, 10), 0)

	g.Apply(&b)

	assert.Equal(t, vec2.Zero, b.Velocity)
}

func TestSideFireRespectsCap(t *testing.T) {
	s := NewSide(types.Alliance, newTestCraft(types.Alliance), 0, 5)

	fired := 0
	for i := 0; i < 6; i++ {
		if _, ok := s.Fire(types.EntityID(100 + i)); ok {
			fired++
		}
	}
	assert.Equal(t, 5, fired)
	assert.Len(t, s.Projectiles, 5)
	for i, p := range s.Projectiles {
		assert.Equal(t, types.EntityID(100+i), p.ID, "firing order is kept")
	}
}

func TestSideCannotFireWhenDestroyed(t *testing.T) {
	s := NewSide(types.Alliance, newTestCraft(types.Alliance), 0, 5)
	s.Craft.Destroy(2)

	p, ok := s.Fire(3)
	assert.Nil(t, p)
	assert.False(t, ok)
}

func TestSideRemoveProjectile(t *testing.T) {
	s := NewSide(types.Alliance, newTestCraft(types.Alliance), 0, 5)
	for i := 1; i <= 3; i++ {
		s.Fire(types.EntityID(i))
	}

	assert.True(t, s.RemoveProjectile(2))
	assert.False(t, s.RemoveProjectile(2), "removal is idempotent")
	assert.False(t, s.RemoveProjectile(42))
	require.Len(t, s.Projectiles, 2)
	assert.Equal(t, types.EntityID(1), s.Projectiles[0].ID)
	assert.Equal(t, types.EntityID(3), s.Projectiles[1].ID)

	removed := s.RemoveProjectiles(func(p *Projectile) bool { return p.ID == 3 })
	require.Len(t, removed, 1)
	assert.Equal(t, types.EntityID(3), removed[0].ID)
	require.Len(t, s.Projectiles, 1)
}

func TestSideRemovalClearsBackingArray(t *testing.T) {
	s := NewSide(types.Alliance, newTestCraft(types.Alliance), 0, 5)
	for i := 1; i <= 4; i++ {
		s.Fire(types.EntityID(i))
	}

	require.True(t, s.RemoveProjectile(2))
	tail := s.Projectiles[:cap(s.Projectiles)]
	assert.Nil(t, tail[3], "removed slot must not keep a projectile alive")

	s.RemoveProjectiles(func(p *Projectile) bool { return p.ID == 1 })
	tail = s.Projectiles[:cap(s.Projectiles)]
	assert.Nil(t, tail[2])
	require.Len(t, s.Projectiles, 2)
	assert.Equal(t, types.EntityID(3), s.Projectiles[0].ID)
	assert.Equal(t, types.EntityID(4), s.Projectiles[1].ID)
}

func TestRoundStateAlive(t *testing.T) {
	assert.True(t, RoundState{Phase: PhaseContested}.Alive())
	assert.True(t, RoundState{Phase: PhaseResolving, Countdown: 1}.Alive())
	assert.False(t, RoundState{Phase: PhaseResolving, Countdown: 0}.Alive())
	assert.False(t, RoundState{Phase: PhaseEnded}.Alive())
}
