package app

import (
	"fmt"

	"efiboy/adapter"
	"efiboy/hal"
	"efiboy/internal/buildinfo"
	"efiboy/interp"
	"efiboy/interp/testcard"
	"efiboy/rom"
)

type Config struct {
	Adapter     adapter.Config
	Interpreter interp.Interpreter
	Image       []byte
	// NativeSpeed runs the interpreter unpaced.
	NativeSpeed bool
}

// DefaultConfig runs the embedded test card at full speed.
func DefaultConfig() Config {
	return Config{
		Adapter:     adapter.DefaultConfig(),
		Interpreter: testcard.New(),
		Image:       rom.TestCard,
		NativeSpeed: true,
	}
}

// Run sets up the adapter, runs the interpreter and powers off. It does not
// return on real firmware.
func Run(h hal.HAL, cfg Config) {
	log := h.Logger()
	if log != nil {
		log.WriteLineString("efiboy " + buildinfo.String())
	}

	cfg.Adapter.Unthrottled = cfg.NativeSpeed
	s, err := adapter.Open(h, cfg.Adapter)
	if err != nil {
		if log != nil {
			log.WriteLineString(fmt.Sprintf("setup: %v", err))
		}
		h.Reset(hal.ResetShutdown, hal.StatusAborted)
		return
	}

	err = s.Run(func(hw interp.Hardware) error {
		return cfg.Interpreter.Run(interp.Config{NativeSpeed: cfg.NativeSpeed}, cfg.Image, hw)
	})
	s.Close(err)
}
