// internal/state/session.go
package state

import (
	"go-planes/internal/config"
	"go-planes/internal/defs"
	"go-planes/internal/input"

	"golang.org/x/image/font"
)

// Session is what outlives a single run: settings, level data and devices.
type Session struct {
	Config   config.Config
	Waves    []defs.WaveDefinition
	Input    input.Source
	FontFace font.Face
	Seed     int64 // 0 seeds every run from the clock
}

// ConfigApplier is implemented by states that can take a reloaded config
// without restarting.
type ConfigApplier interface {
	ApplyConfig(cfg config.Config)
}

// ApplyConfig stores cfg for future runs and hands it to the current state.
func (sm *StateMachine) ApplyConfig(session *Session, cfg config.Config) {
	session.Config = cfg
	if applier, ok := sm.current.(ConfigApplier); ok {
		applier.ApplyConfig(cfg)
	}
}
