// internal/event/types.go
package event

import (
	"space-war/internal/component"
	"space-war/internal/types"
)

const (
	ProjectileFired EventType = "ProjectileFired" // Data: ProjectileFiredData
	CraftDestroyed  EventType = "CraftDestroyed"  // Data: CraftDestroyedData
	RoundResolved   EventType = "RoundResolved"   // Data: RoundResolvedData
	RoundEnded      EventType = "RoundEnded"      // Data: RoundEndedData
)

// ProjectileFiredData: кто и каким снарядом выстрелил
type ProjectileFiredData struct {
	Tick       uint64
	Side       types.SideID
	Projectile types.EntityID
	Active     int // снарядов стороны в полёте после выстрела
}

// CraftDestroyedData описывает уничтожение корабля
type CraftDestroyedData struct {
	Tick   uint64
	Side   types.SideID
	Effect *component.Effect
}

// RoundResolvedData: итог раунда на тике перехода в PhaseResolving
type RoundResolvedData struct {
	Tick      uint64
	Outcome   types.Outcome
	Scores    [types.SideCount]int
	Countdown int
}

// RoundEndedData отправляется, когда обратный отсчёт дошёл до нуля
type RoundEndedData struct {
	Tick    uint64
	Outcome types.Outcome
	Scores  [types.SideCount]int
}
