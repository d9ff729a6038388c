// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

const (
	DefaultPath      = "config.toml"
	WindowTitle      = "Planes"
	ScreenMargin     = 32.0 // world units outside the view before auto destroy
	ProjectileOffset = 15.0 // spawn distance in front of the shooter
	PlayerDepth      = 100.0
	EnemyDepth       = 50.0
	ProjectileDepth  = 90.0
	EffectDepth      = 110.0
	CollectableDepth = 40.0

	DamageFlashDuration = 0.1

	HUDMargin       = 10
	HealthBarWidth  = 120
	HealthBarHeight = 10
)

var (
	BackgroundColor   = color.RGBA{26, 26, 26, 255}
	GroundColor       = color.RGBA{40, 60, 45, 255}
	PlayerColor       = color.RGBA{220, 220, 230, 255}
	PlayerBankColor   = color.RGBA{170, 190, 255, 255}
	ShadowColor       = color.RGBA{0, 0, 0, 128}
	EnemyColor        = color.RGBA{200, 70, 60, 255}
	PlayerShotColor   = color.RGBA{255, 230, 90, 255}
	EnemyShotColor    = color.RGBA{255, 120, 40, 255}
	CollectableColors = []color.RGBA{
		{255, 215, 0, 255},
		{255, 235, 120, 255},
		{200, 160, 0, 255},
	}
	ExplosionColors = []color.RGBA{
		{255, 255, 200, 255},
		{255, 200, 80, 255},
		{255, 120, 40, 255},
		{120, 60, 40, 200},
	}
	TextColor      = color.RGBA{240, 240, 240, 255}
	HealthColor    = color.RGBA{50, 205, 50, 255}
	HealthLowColor = color.RGBA{220, 60, 60, 255}
	OverlayColor   = color.RGBA{0, 0, 0, 128}
	FlashColor     = color.RGBA{255, 255, 255, 255}
)

// ErrInvalid is returned when a decoded config carries unusable values.
var ErrInvalid = errors.New("invalid config")

// Config holds the tunables read from the TOML file.
type Config struct {
	General      General      `toml:"general"`
	Player       Player       `toml:"player"`
	Animations   Animations   `toml:"animations"`
	Enemies      Enemies      `toml:"enemies"`
	Projectiles  Projectiles  `toml:"projectiles"`
	Collision    Collision    `toml:"collision"`
	Spawner      Spawner      `toml:"spawner"`
	Collectables Collectables `toml:"collectables"`
}

type General struct {
	BaseAspectRatio float64 `toml:"base_aspect_ratio"`
	ScreenHeight    float64 `toml:"screen_height"`
	ScrollSpeed     float64 `toml:"scroll_speed"`
	MaxDeltaTime    float64 `toml:"max_delta_time"`
}

type Player struct {
	BaseHealth    int     `toml:"base_health"`
	MovementSpeed float64 `toml:"movement_speed"`
	MaxSpeed      float64 `toml:"max_speed"`
}

type Animations struct {
	DefaultFrameDuration   float64 `toml:"default_frame_duration"`
	ExplosionFrameDuration float64 `toml:"explosion_frame_duration"`
}

type Enemies struct {
	MovementSpeed float64 `toml:"movement_speed"`
	BaseHealth    int     `toml:"base_health"`
	ShootInterval float64 `toml:"shoot_interval"`
	ScoreValue    int64   `toml:"score_value"`
}

type Projectiles struct {
	Speed    float64 `toml:"speed"`
	Damage   int     `toml:"damage"`
	Interval float64 `toml:"interval"`
}

type Collision struct {
	HalfExtent float64 `toml:"half_extent"`
}

type Spawner struct {
	Interval  float64 `toml:"interval"`
	WavesFile string  `toml:"waves_file"`
}

type Collectables struct {
	Value      int64   `toml:"value"`
	DropChance float64 `toml:"drop_chance"`
}

// Default returns the values the game runs with when the file omits a key.
func Default() Config {
	return Config{
		General: General{
			BaseAspectRatio: 0.5625,
			ScreenHeight:    480,
			ScrollSpeed:     10,
			MaxDeltaTime:    0.06,
		},
		Player: Player{
			BaseHealth:    100,
			MovementSpeed: 150,
			MaxSpeed:      250,
		},
		Animations: Animations{
			DefaultFrameDuration:   0.2,
			ExplosionFrameDuration: 0.08,
		},
		Enemies: Enemies{
			MovementSpeed: 60,
			BaseHealth:    30,
			ShootInterval: 1.5,
			ScoreValue:    100,
		},
		Projectiles: Projectiles{
			Speed:    250,
			Damage:   15,
			Interval: 0.5,
		},
		Collision: Collision{
			HalfExtent: 8,
		},
		Spawner: Spawner{
			Interval: 0.5,
		},
		Collectables: Collectables{
			Value:      10,
			DropChance: 1,
		},
	}
}

// ScreenWidth is derived from the height and aspect ratio.
func (c Config) ScreenWidth() float64 {
	return c.General.ScreenHeight * c.General.BaseAspectRatio
}

// Validate rejects values that would stall or break the game loop.
func (c Config) Validate() error {
	switch {
	case c.General.ScreenHeight <= 0:
		return fmt.Errorf("%w: general.screen_height must be positive", ErrInvalid)
	case c.General.BaseAspectRatio <= 0:
		return fmt.Errorf("%w: general.base_aspect_ratio must be positive", ErrInvalid)
	case c.General.MaxDeltaTime <= 0:
		return fmt.Errorf("%w: general.max_delta_time must be positive", ErrInvalid)
	case c.General.ScrollSpeed <= 0:
		return fmt.Errorf("%w: general.scroll_speed must be positive", ErrInvalid)
	case c.Player.BaseHealth <= 0:
		return fmt.Errorf("%w: player.base_health must be positive", ErrInvalid)
	case c.Player.MovementSpeed < 0 || c.Player.MaxSpeed < c.Player.MovementSpeed:
		return fmt.Errorf("%w: player speeds must satisfy 0 <= movement_speed <= max_speed", ErrInvalid)
	case c.Animations.DefaultFrameDuration <= 0 || c.Animations.ExplosionFrameDuration <= 0:
		return fmt.Errorf("%w: animation frame durations must be positive", ErrInvalid)
	case c.Enemies.BaseHealth <= 0:
		return fmt.Errorf("%w: enemies.base_health must be positive", ErrInvalid)
	case c.Enemies.MovementSpeed <= 0:
		return fmt.Errorf("%w: enemies.movement_speed must be positive", ErrInvalid)
	case c.Projectiles.Speed <= 0:
		return fmt.Errorf("%w: projectiles.speed must be positive", ErrInvalid)
	case c.Projectiles.Damage < 0:
		return fmt.Errorf("%w: projectiles.damage must not be negative", ErrInvalid)
	case c.Projectiles.Interval <= 0 || c.Enemies.ShootInterval <= 0:
		return fmt.Errorf("%w: shooting intervals must be positive", ErrInvalid)
	case c.Collision.HalfExtent <= 0:
		return fmt.Errorf("%w: collision.half_extent must be positive", ErrInvalid)
	case c.Spawner.Interval <= 0:
		return fmt.Errorf("%w: spawner.interval must be positive", ErrInvalid)
	case c.Collectables.DropChance < 0 || c.Collectables.DropChance > 1:
		return fmt.Errorf("%w: collectables.drop_chance must be within [0, 1]", ErrInvalid)
	}
	return nil
}

// Decode reads TOML from r on top of the defaults.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%w: unknown key %q", ErrInvalid, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and validates the config file at path.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
