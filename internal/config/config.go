// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	WindowTitle  = "Space War"

	TicksPerSecond = 60 // фиксированная частота ebiten

	HUDMarginX     = 16
	HUDMarginY     = 24
	HUDLineHeight  = 18
	BannerOffsetY  = 40
	StarCount      = 160
	StarSeed       = 7 // фон одинаковый между запусками
	CraftRotOffset = -90.0

	ConfigFileName = "space_war"
	EnvPrefix      = "SPACEWAR"
)

var (
	BackgroundColor = color.RGBA{5, 5, 15, 255}
	StarColor       = color.RGBA{180, 180, 200, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDimColor    = color.RGBA{140, 140, 160, 255}
	PlanetColor     = color.RGBA{70, 130, 180, 255}
	PlanetHaloColor = color.RGBA{70, 130, 180, 60}
	EffectColor     = color.RGBA{255, 170, 40, 255}
	DebugRectColor  = color.RGBA{255, 0, 0, 255}
	SideColors      = [2]color.RGBA{
		{80, 200, 255, 255}, // Alliance
		{255, 90, 90, 255},  // Federation
	}
	BannerColor = color.RGBA{20, 20, 30, 200}
)
