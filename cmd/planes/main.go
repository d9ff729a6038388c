// cmd/planes/main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"time"

	"go-planes/internal/config"
	"go-planes/internal/defs"
	"go-planes/internal/input"
	"go-planes/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/basicfont"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	session        *state.Session
	watcher        *config.Watcher
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	a.pollConfig()

	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if maxDelta := a.session.Config.General.MaxDeltaTime; deltaTime > maxDelta {
		deltaTime = maxDelta
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

// pollConfig applies a pending reload between ticks.
func (a *AppGame) pollConfig() {
	if a.watcher == nil {
		return
	}
	select {
	case cfg := <-a.watcher.Updates:
		a.stateMachine.ApplyConfig(a.session, cfg)
	case err := <-a.watcher.Errors:
		log.Printf("config reload failed, keeping previous settings: %v", err)
	default:
	}
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := a.session.Config
	return int(cfg.ScreenWidth()), int(cfg.General.ScreenHeight)
}

// loadSettings reads the config and the wave list it points at. A missing
// config at the default location falls back to built-in defaults.
func loadSettings(path string, explicit bool) (config.Config, []defs.WaveDefinition, error) {
	cfg, err := config.Load(path)
	switch {
	case err == nil:
	case !explicit && errors.Is(err, fs.ErrNotExist):
		cfg = config.Default()
	default:
		return config.Config{}, nil, err
	}

	if cfg.Spawner.WavesFile == "" {
		return cfg, defs.DefaultWaves(), nil
	}
	wavesPath := cfg.Spawner.WavesFile
	if !filepath.IsAbs(wavesPath) {
		wavesPath = filepath.Join(filepath.Dir(path), wavesPath)
	}
	waves, err := defs.LoadWaves(wavesPath)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("%s: %w", wavesPath, err)
	}
	return cfg, waves, nil
}

func run(args []string, stderr io.Writer) int {
	flags := flag.NewFlagSet("planes", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configPath := flags.String("config", config.DefaultPath, "path to the TOML config file")
	watch := flags.Bool("watch", false, "reload the config file when it changes")
	seed := flags.Int64("seed", 0, "random seed, 0 for a random run")
	if err := flags.Parse(args); err != nil {
		return 2
	}
	explicit := false
	flags.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			explicit = true
		}
	})

	cfg, waves, err := loadSettings(*configPath, explicit)
	if err != nil {
		fmt.Fprintf(stderr, "planes: %v\n", err)
		return 1
	}

	session := &state.Session{
		Config:   cfg,
		Waves:    waves,
		Input:    input.NewKeyboard(input.DefaultActionMap()),
		FontFace: basicfont.Face7x13,
		Seed:     *seed,
	}
	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, session, 0))
	app := &AppGame{
		stateMachine:   sm,
		session:        session,
		lastUpdateTime: time.Now(),
	}

	if *watch {
		w, err := config.Watch(*configPath)
		if err != nil {
			log.Printf("config watch disabled: %v", err)
		} else {
			app.watcher = w
			defer w.Close()
		}
	}

	ebiten.SetWindowSize(int(cfg.ScreenWidth()), int(cfg.General.ScreenHeight))
	ebiten.SetWindowTitle(config.WindowTitle)
	if err := ebiten.RunGame(app); err != nil {
		fmt.Fprintf(stderr, "planes: %v\n", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}
