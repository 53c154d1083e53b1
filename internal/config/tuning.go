// internal/config/tuning.go
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Tuning holds every fixed rule constant of a round. All values are per tick.
type Tuning struct {
	Physics    PhysicsTuning    `mapstructure:"physics"`
	Projectile ProjectileTuning `mapstructure:"projectile"`
	Effect     EffectTuning     `mapstructure:"effect"`
	Round      RoundTuning      `mapstructure:"round"`
	Arena      ArenaTuning      `mapstructure:"arena"`
	Craft      CraftTuning      `mapstructure:"craft"`
	Planet     PlanetTuning     `mapstructure:"planet"`
}

type PhysicsTuning struct {
	GravityStrength float64 `mapstructure:"gravityStrength"`
	ThrustPower     float64 `mapstructure:"thrustPower"`
	RotationSpeed   float64 `mapstructure:"rotationSpeed"` // градусов за тик
}

type ProjectileTuning struct {
	Cap          int     `mapstructure:"cap"`
	MaxAge       int     `mapstructure:"maxAge"`
	MuzzleOffset float64 `mapstructure:"muzzleOffset"`
	LaunchSpeed  float64 `mapstructure:"launchSpeed"`
	Size         float64 `mapstructure:"size"`
}

type EffectTuning struct {
	MaxAge int `mapstructure:"maxAge"`
	Cap    int `mapstructure:"cap"`
}

type RoundTuning struct {
	CountdownTicks int `mapstructure:"countdownTicks"`
}

type ArenaTuning struct {
	Width         float64 `mapstructure:"width"`
	Height        float64 `mapstructure:"height"`
	ConfineCrafts bool    `mapstructure:"confineCrafts"`
}

type CraftTuning struct {
	Size float64 `mapstructure:"size"`
}

type PlanetTuning struct {
	Size              float64 `mapstructure:"size"`
	AbsorbProjectiles bool    `mapstructure:"absorbProjectiles"`
}

// Config: полная конфигурация приложения
type Config struct {
	Tuning `mapstructure:",squash"`
	Input  InputConfig `mapstructure:"input"`
	Log    LogConfig   `mapstructure:"log"`
	Audio  AudioConfig `mapstructure:"audio"`
	Debug  DebugConfig `mapstructure:"debug"`
}

type InputConfig struct {
	Mode string `mapstructure:"mode"` // keyboard | gamepad
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type AudioConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	Volume  float64 `mapstructure:"volume"` // 0..1
}

type DebugConfig struct {
	PprofAddr string `mapstructure:"pprofAddr"`
	DrawRects bool   `mapstructure:"drawRects"`
}

const (
	InputModeKeyboard = "keyboard"
	InputModeGamepad  = "gamepad"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("physics.gravityStrength", 0.05)
	v.SetDefault("physics.thrustPower", 0.12)
	v.SetDefault("physics.rotationSpeed", 5.0)

	v.SetDefault("projectile.cap", 5)
	v.SetDefault("projectile.maxAge", 150)
	v.SetDefault("projectile.muzzleOffset", 30.0)
	v.SetDefault("projectile.launchSpeed", 5.0)
	v.SetDefault("projectile.size", 10.0)

	v.SetDefault("effect.maxAge", 90)
	v.SetDefault("effect.cap", 4)

	v.SetDefault("round.countdownTicks", 300)

	v.SetDefault("arena.width", float64(ScreenWidth))
	v.SetDefault("arena.height", float64(ScreenHeight))
	v.SetDefault("arena.confineCrafts", true)

	v.SetDefault("craft.size", 50.0)

	v.SetDefault("planet.size", 120.0)
	v.SetDefault("planet.absorbProjectiles", true)

	v.SetDefault("input.mode", InputModeKeyboard)
	v.SetDefault("log.level", "info")
	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", 0.5)
	v.SetDefault("debug.pprofAddr", "")
	v.SetDefault("debug.drawRects", false)
}

// Default returns the built-in configuration without reading files or the environment.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	// только значения по умолчанию, ошибка невозможна
	_ = v.Unmarshal(&cfg)
	return cfg
}

// DefaultTuning: сокращение для тестов и инструментов
func DefaultTuning() Tuning {
	return Default().Tuning
}

// Load reads space_war.{json,yaml,toml} from configDir (if present), applies
// SPACEWAR_* environment overrides and validates the result.
// Env keys are the dotted keys upper-cased with dots replaced by underscores,
// e.g. SPACEWAR_PHYSICS_GRAVITYSTRENGTH.
func Load(configDir string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(ConfigFileName)
	if configDir != "" {
		v.AddConfigPath(configDir)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate проверяет, что значения имеют смысл
func (c Config) Validate() error {
	if err := c.Tuning.Validate(); err != nil {
		return err
	}
	switch c.Input.Mode {
	case InputModeKeyboard, InputModeGamepad:
	default:
		return fmt.Errorf("invalid input.mode %q", c.Input.Mode)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume must be within [0,1], got %v", c.Audio.Volume)
	}
	return nil
}

// Validate rejects tunings the simulation cannot run with.
func (t Tuning) Validate() error {
	var errs []error
	if t.Arena.Width <= 0 || t.Arena.Height <= 0 {
		errs = append(errs, fmt.Errorf("arena size must be positive, got %vx%v", t.Arena.Width, t.Arena.Height))
	}
	if t.Craft.Size <= 0 {
		errs = append(errs, fmt.Errorf("craft.size must be positive, got %v", t.Craft.Size))
	}
	if t.Projectile.Size <= 0 {
		errs = append(errs, fmt.Errorf("projectile.size must be positive, got %v", t.Projectile.Size))
	}
	if t.Planet.Size <= 0 {
		errs = append(errs, fmt.Errorf("planet.size must be positive, got %v", t.Planet.Size))
	}
	if t.Projectile.Cap < 0 {
		errs = append(errs, fmt.Errorf("projectile.cap must not be negative, got %d", t.Projectile.Cap))
	}
	if t.Projectile.MaxAge < 0 || t.Effect.MaxAge < 0 {
		errs = append(errs, errors.New("max ages must not be negative"))
	}
	if t.Effect.Cap < 0 {
		errs = append(errs, fmt.Errorf("effect.cap must not be negative, got %d", t.Effect.Cap))
	}
	if t.Round.CountdownTicks < 0 {
		errs = append(errs, fmt.Errorf("round.countdownTicks must not be negative, got %d", t.Round.CountdownTicks))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid tuning: %w", errors.Join(errs...))
	}
	return nil
}
