// internal/entity/spawn.go
package entity

import (
	"space-war/internal/component"
	"space-war/internal/config"
	"space-war/internal/types"
	"space-war/pkg/vec2"
)

// CraftSpecFrom собирает параметры истребителя из настроек
func CraftSpecFrom(t config.Tuning) component.CraftSpec {
	return component.CraftSpec{
		RotationSpeed:    t.Physics.RotationSpeed,
		ThrustPower:      t.Physics.ThrustPower,
		MuzzleOffset:     t.Projectile.MuzzleOffset,
		LaunchSpeed:      t.Projectile.LaunchSpeed,
		ProjectileSize:   vec2.New(t.Projectile.Size, t.Projectile.Size),
		ProjectileMaxAge: t.Projectile.MaxAge,
		EffectMaxAge:     t.Effect.MaxAge,
		RotationOffset:   config.CraftRotOffset,
	}
}

// Spawn builds the starting layout of a round: Alliance in the top-left corner
// heading toward the centre, Federation mirrored in the bottom-right, the well
// in the middle. scores carries each side's running score into the new round.
func Spawn(t config.Tuning, scores [types.SideCount]int) *World {
	bounds := vec2.New(t.Arena.Width, t.Arena.Height)
	w := NewWorld(bounds, t.Effect.Cap)

	craftSize := vec2.New(t.Craft.Size, t.Craft.Size)
	spec := CraftSpecFrom(t)

	alliancePos := craftSize
	allianceDir := vec2.AngleFromNormal(vec2.New(3, 2).Normalize())

	federationPos := bounds.Sub(craftSize.Scale(2))
	federationDir := vec2.AngleFromNormal(vec2.New(-3, -2).Normalize())

	alliance := component.NewCraft(w.NewEntity(), types.Alliance, alliancePos, allianceDir, craftSize, spec)
	federation := component.NewCraft(w.NewEntity(), types.Federation, federationPos, federationDir, craftSize, spec)

	w.Sides[types.Alliance] = component.NewSide(types.Alliance, alliance, scores[types.Alliance], t.Projectile.Cap)
	w.Sides[types.Federation] = component.NewSide(types.Federation, federation, scores[types.Federation], t.Projectile.Cap)

	planetSize := vec2.New(t.Planet.Size, t.Planet.Size)
	w.Gravity = &component.GravitySource{
		Position: bounds.Div(2).Sub(planetSize.Div(2)),
		Size:     planetSize,
		Strength: t.Physics.GravityStrength,
	}
	return w
}
